// Package feed maps heterogeneous raw feed events into a uniform
// renderable representation: an icon, a human action phrase, and the
// referenced entity. Unknown event shapes map to a generic fallback rather
// than failing; the feed keeps rendering whatever the service adds later.
package feed

import (
	"sort"
	"time"

	"github.com/dkozyrev/reeler/internal/filmorate"
)

// Entry is the display form of a single feed event.
type Entry struct {
	Icon      string
	Phrase    string
	EventType string
	Operation string
	UserID    int64
	EntityID  int64
	At        time.Time
}

// Fallback display for events outside the known type/operation matrix.
const (
	FallbackIcon   = "•"
	FallbackPhrase = "did something"
)

// Normalize maps one event to its display triple. Coverage is total over
// the known event types (LIKE and FRIEND take ADD/REMOVE, REVIEW
// additionally takes UPDATE); everything else gets the fallback.
func Normalize(ev filmorate.FeedEvent) Entry {
	entry := Entry{
		Icon:      FallbackIcon,
		Phrase:    FallbackPhrase,
		EventType: ev.EventType,
		Operation: ev.Operation,
		UserID:    ev.UserID,
		EntityID:  ev.EntityID,
		At:        ev.Time(),
	}

	switch ev.EventType {
	case filmorate.EventLike:
		switch ev.Operation {
		case filmorate.OpAdd:
			entry.Icon, entry.Phrase = "♥", "liked a film"
		case filmorate.OpRemove:
			entry.Icon, entry.Phrase = "♡", "unliked a film"
		}
	case filmorate.EventReview:
		switch ev.Operation {
		case filmorate.OpAdd:
			entry.Icon, entry.Phrase = "✎", "posted a review"
		case filmorate.OpRemove:
			entry.Icon, entry.Phrase = "✗", "deleted a review"
		case filmorate.OpUpdate:
			entry.Icon, entry.Phrase = "✎", "updated a review"
		}
	case filmorate.EventFriend:
		switch ev.Operation {
		case filmorate.OpAdd:
			entry.Icon, entry.Phrase = "+", "added a friend"
		case filmorate.OpRemove:
			entry.Icon, entry.Phrase = "−", "removed from friends"
		}
	}

	return entry
}

// NormalizeAll maps events and orders them most recent first for the
// chronological feed. The sort is stable, so events sharing a timestamp
// keep their server order. Plain-list rendering paths should map events
// one at a time with Normalize and trust server order instead.
func NormalizeAll(events []filmorate.FeedEvent) []Entry {
	entries := make([]Entry, len(events))
	for i, ev := range events {
		entries[i] = Normalize(ev)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.After(entries[j].At)
	})
	return entries
}

// Latest returns at most n normalized entries, most recent first.
func Latest(events []filmorate.FeedEvent, n int) []Entry {
	entries := NormalizeAll(events)
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
