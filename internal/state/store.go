package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/dkozyrev/reeler/internal/filmorate"
)

// Snapshot represents the latest server data available to the UI. Every
// collection is the most recent full fetch; nothing is patched in place.
type Snapshot struct {
	Films   []filmorate.Film
	Users   []filmorate.User
	Friends []filmorate.User
	Genres  []filmorate.Genre
	Mpa     []filmorate.MpaRating
	Reviews []filmorate.Review
	Feed    []filmorate.FeedEvent

	LastUpdated time.Time
	LastError   error

	// Version increases on every store mutation. Renderers compare it
	// against the version they last drew to detect change.
	Version uint64
}

// FilmByID returns the film with the given id, if present.
func (s Snapshot) FilmByID(id int64) (filmorate.Film, bool) {
	for _, f := range s.Films {
		if f.ID == id {
			return f, true
		}
	}
	return filmorate.Film{}, false
}

// UserByID returns the user with the given id, if present.
func (s Snapshot) UserByID(id int64) (filmorate.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return filmorate.User{}, false
}

// GenreByID returns the genre with the given id, if present.
func (s Snapshot) GenreByID(id int64) (filmorate.Genre, bool) {
	for _, g := range s.Genres {
		if g.ID == id {
			return g, true
		}
	}
	return filmorate.Genre{}, false
}

// MpaByID returns the MPA rating with the given id, if present.
func (s Snapshot) MpaByID(id int64) (filmorate.MpaRating, bool) {
	for _, m := range s.Mpa {
		if m.ID == id {
			return m, true
		}
	}
	return filmorate.MpaRating{}, false
}

// ReviewByID returns the review with the given id, if present.
func (s Snapshot) ReviewByID(id int64) (filmorate.Review, bool) {
	for _, r := range s.Reviews {
		if r.ReviewID == id {
			return r, true
		}
	}
	return filmorate.Review{}, false
}

// UserName resolves a display name for a raw user id: the user's name,
// their login, or a numeric placeholder when the user is not cached.
func (s Snapshot) UserName(id int64) string {
	if u, ok := s.UserByID(id); ok {
		return u.DisplayName()
	}
	return fmt.Sprintf("user #%d", id)
}

// Store coordinates concurrent access to the entity snapshot. Collections
// are replaced wholesale on each successful fetch; there is no merging.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// ReplaceFilms overwrites the cached film collection.
func (s *Store) ReplaceFilms(films []filmorate.Film) {
	s.replace(func(snap *Snapshot) { snap.Films = cloneFilms(films) })
}

// ReplaceUsers overwrites the cached user collection.
func (s *Store) ReplaceUsers(users []filmorate.User) {
	s.replace(func(snap *Snapshot) { snap.Users = cloneSlice(users) })
}

// ReplaceFriends overwrites the cached friend list of the active user.
func (s *Store) ReplaceFriends(friends []filmorate.User) {
	s.replace(func(snap *Snapshot) { snap.Friends = cloneSlice(friends) })
}

// ReplaceGenres overwrites the cached genre reference data.
func (s *Store) ReplaceGenres(genres []filmorate.Genre) {
	s.replace(func(snap *Snapshot) { snap.Genres = cloneSlice(genres) })
}

// ReplaceMpa overwrites the cached MPA rating reference data.
func (s *Store) ReplaceMpa(ratings []filmorate.MpaRating) {
	s.replace(func(snap *Snapshot) { snap.Mpa = cloneSlice(ratings) })
}

// ReplaceReviews overwrites the cached review collection.
func (s *Store) ReplaceReviews(reviews []filmorate.Review) {
	s.replace(func(snap *Snapshot) { snap.Reviews = cloneSlice(reviews) })
}

// ReplaceFeed overwrites the cached feed events.
func (s *Store) ReplaceFeed(events []filmorate.FeedEvent) {
	s.replace(func(snap *Snapshot) { snap.Feed = cloneSlice(events) })
}

// ClearFeed drops the cached feed, returning the feed view to its empty
// state when the input user changes or the view is left.
func (s *Store) ClearFeed() {
	s.replace(func(snap *Snapshot) { snap.Feed = nil })
}

// SetError records a failed fetch or mutation. Collections are left
// untouched so the UI keeps showing the last good data.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.Version++
}

// Snapshot returns a copy of the current snapshot, independent of the
// stored one.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Films = cloneFilms(s.snapshot.Films)
	snap.Users = cloneSlice(s.snapshot.Users)
	snap.Friends = cloneSlice(s.snapshot.Friends)
	snap.Genres = cloneSlice(s.snapshot.Genres)
	snap.Mpa = cloneSlice(s.snapshot.Mpa)
	snap.Reviews = cloneSlice(s.snapshot.Reviews)
	snap.Feed = cloneSlice(s.snapshot.Feed)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Version returns the current snapshot version without copying collections.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Version
}

func (s *Store) replace(apply func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply(&s.snapshot)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.Version++
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}

// cloneFilms copies the nested genre and like slices too; films are the one
// entity with reference slices worth isolating from snapshot holders.
func cloneFilms(films []filmorate.Film) []filmorate.Film {
	if len(films) == 0 {
		return nil
	}
	dup := make([]filmorate.Film, len(films))
	copy(dup, films)
	for i := range dup {
		dup[i].Genres = cloneSlice(dup[i].Genres)
		dup[i].Likes = cloneSlice(dup[i].Likes)
	}
	return dup
}
