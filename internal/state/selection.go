package state

import (
	"sort"
	"sync"
)

// Kind names an editable entity type for edit-target bookkeeping.
type Kind int

const (
	KindFilm Kind = iota
	KindUser
	KindReview
)

// Selection tracks the operator's current working context: the active user,
// per-kind edit targets, and the composite film selection (one MPA rating,
// a set of genres). The event loop mutates it on key presses while
// controller commands read and consume it from their own goroutines, so
// access is guarded the same way the Store guards its snapshot.
type Selection struct {
	mu            sync.RWMutex
	activeUser    int64
	hasActiveUser bool
	editTargets   map[Kind]int64
	mpaID         int64
	genres        map[int64]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{
		editTargets: make(map[Kind]int64),
		genres:      make(map[int64]struct{}),
	}
}

// SetActiveUser makes id the context for likes, friend operations, reviews
// and the feed.
func (s *Selection) SetActiveUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeUser = id
	s.hasActiveUser = true
}

// ClearActiveUser drops the active user context.
func (s *Selection) ClearActiveUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeUser = 0
	s.hasActiveUser = false
}

// ActiveUser reports the active user id, when one is set.
func (s *Selection) ActiveUser() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeUser, s.hasActiveUser
}

// SetEditTarget marks id as the entity being edited for the given kind,
// which routes the next submission to an update instead of a create.
func (s *Selection) SetEditTarget(kind Kind, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editTargets[kind] = id
}

// ClearEditTarget returns the given kind to create semantics.
func (s *Selection) ClearEditTarget(kind Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.editTargets, kind)
}

// EditTarget reports the entity id being edited for the given kind.
func (s *Selection) EditTarget(kind Kind) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.editTargets[kind]
	return id, ok
}

// SetMpa selects the single MPA rating for the film being composed,
// replacing any previous choice.
func (s *Selection) SetMpa(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mpaID = id
}

// ClearMpa drops the MPA selection.
func (s *Selection) ClearMpa() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mpaID = 0
}

// Mpa reports the selected MPA rating id, when one is chosen.
func (s *Selection) Mpa() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mpaID == 0 {
		return 0, false
	}
	return s.mpaID, true
}

// ToggleGenre adds the genre to the selection when absent and removes it
// when present. The selection is a set keyed by id; toggling twice is a
// no-op pair.
func (s *Selection) ToggleGenre(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.genres[id]; ok {
		delete(s.genres, id)
		return
	}
	s.genres[id] = struct{}{}
}

// HasGenre reports whether the genre is currently selected.
func (s *Selection) HasGenre(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.genres[id]
	return ok
}

// SelectedGenres returns the chosen genre ids in ascending order. Order is
// irrelevant to the service; sorting keeps payloads reproducible.
func (s *Selection) SelectedGenres() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.genres) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(s.genres))
	for id := range s.genres {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ClearComposite resets the MPA and genre selection, used after a
// successful film submission or an explicit cancel.
func (s *Selection) ClearComposite() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mpaID = 0
	s.genres = make(map[int64]struct{})
}
