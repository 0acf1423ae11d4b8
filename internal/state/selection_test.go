package state

import (
	"reflect"
	"sync"
	"testing"
)

func TestSelection_ActiveUserLifecycle(t *testing.T) {
	sel := NewSelection()

	if _, ok := sel.ActiveUser(); ok {
		t.Fatal("new selection reports an active user")
	}

	sel.SetActiveUser(7)
	if id, ok := sel.ActiveUser(); !ok || id != 7 {
		t.Fatalf("ActiveUser = (%d, %v), want (7, true)", id, ok)
	}

	sel.SetActiveUser(9)
	if id, _ := sel.ActiveUser(); id != 9 {
		t.Fatalf("ActiveUser = %d after reassignment, want 9", id)
	}

	sel.ClearActiveUser()
	if _, ok := sel.ActiveUser(); ok {
		t.Fatal("ActiveUser still set after clear")
	}
}

func TestSelection_EditTargetsArePerKind(t *testing.T) {
	sel := NewSelection()

	sel.SetEditTarget(KindFilm, 3)
	sel.SetEditTarget(KindReview, 11)

	if id, ok := sel.EditTarget(KindFilm); !ok || id != 3 {
		t.Fatalf("EditTarget(KindFilm) = (%d, %v), want (3, true)", id, ok)
	}
	if _, ok := sel.EditTarget(KindUser); ok {
		t.Fatal("EditTarget(KindUser) set without assignment")
	}

	sel.ClearEditTarget(KindFilm)
	if _, ok := sel.EditTarget(KindFilm); ok {
		t.Fatal("EditTarget(KindFilm) survived clear")
	}
	if id, ok := sel.EditTarget(KindReview); !ok || id != 11 {
		t.Fatalf("EditTarget(KindReview) = (%d, %v), clearing one kind touched another", id, ok)
	}
}

func TestSelection_MpaSingleSlot(t *testing.T) {
	sel := NewSelection()

	if _, ok := sel.Mpa(); ok {
		t.Fatal("new selection reports an MPA rating")
	}

	sel.SetMpa(2)
	sel.SetMpa(5)
	if id, ok := sel.Mpa(); !ok || id != 5 {
		t.Fatalf("Mpa = (%d, %v), want the later choice (5, true)", id, ok)
	}

	sel.ClearMpa()
	if _, ok := sel.Mpa(); ok {
		t.Fatal("Mpa still set after clear")
	}
}

func TestSelection_ToggleGenreIsSetSemantics(t *testing.T) {
	sel := NewSelection()

	sel.ToggleGenre(4)
	sel.ToggleGenre(1)
	sel.ToggleGenre(6)
	if !sel.HasGenre(4) || !sel.HasGenre(1) || !sel.HasGenre(6) {
		t.Fatal("toggled genres not reported present")
	}

	// Toggling twice is a no-op pair.
	sel.ToggleGenre(6)
	if sel.HasGenre(6) {
		t.Fatal("genre present after an even number of toggles")
	}

	if got := sel.SelectedGenres(); !reflect.DeepEqual(got, []int64{1, 4}) {
		t.Fatalf("SelectedGenres = %v, want ascending [1 4]", got)
	}
}

// Submissions read and consume the selection from command goroutines while
// the event loop keeps handling form key presses; the race detector verifies
// the two sides never touch the genre set unsynchronized.
func TestSelection_ConcurrentComposeAndConsume(t *testing.T) {
	sel := NewSelection()
	sel.SetEditTarget(KindFilm, 42)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := int64(1); i <= 200; i++ {
			sel.ToggleGenre(i % 6)
			sel.SetMpa(i%5 + 1)
			sel.HasGenre(i % 6)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			sel.SelectedGenres()
			sel.Mpa()
			sel.EditTarget(KindFilm)
			if i%50 == 0 {
				sel.ClearComposite()
				sel.ClearEditTarget(KindFilm)
			}
		}
	}()

	wg.Wait()
}

func TestSelection_ClearCompositeResetsMpaAndGenres(t *testing.T) {
	sel := NewSelection()
	sel.SetActiveUser(7)
	sel.SetMpa(3)
	sel.ToggleGenre(1)
	sel.ToggleGenre(2)

	sel.ClearComposite()

	if _, ok := sel.Mpa(); ok {
		t.Fatal("Mpa survived ClearComposite")
	}
	if sel.SelectedGenres() != nil {
		t.Fatal("genres survived ClearComposite")
	}
	if id, ok := sel.ActiveUser(); !ok || id != 7 {
		t.Fatal("ClearComposite touched the active user")
	}
}
