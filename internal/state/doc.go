// Package state provides the client-side mirror of server entities and the
// operator's selection context.
//
// # Overview
//
// Two concerns live here. Store is the in-memory cache of everything the
// film service returned last: films, users, reference data, reviews, feed
// events. Selection is the operator's working context: the active user, the
// entity currently being edited, and the composite film selection (MPA
// rating plus genre set).
//
// # Store Semantics
//
// The store is a read-mostly cache keyed by full replacement:
//
//	// Success case: replace one collection wholesale
//	store.ReplaceFilms(films)
//	→ snapshot.Films = films
//	→ snapshot.LastError = nil
//	→ snapshot.Version++
//
//	// Failure case: keep all data, record the error
//	store.SetError(err)
//	→ collections unchanged
//	→ snapshot.LastError = err
//	→ snapshot.Version++
//
// There are no partial updates. The source of truth is always the server;
// after every successful mutation the owning collection is re-fetched in
// full, so the snapshot never contains locally-patched entries and
// server-computed fields (like counts, review usefulness) are never
// recomputed client-side.
//
// # Snapshots
//
// Snapshot() returns a defensive deep copy. Renderers can hold a snapshot
// across frames without observing later store writes; the Version counter
// is the "snapshot changed" signal they compare against.
//
// # Concurrency
//
// Store uses a readers-writer lock: controller refreshes may complete on
// arbitrary goroutines while the UI reads snapshots from the event loop.
// Selection is different: it is mutated only from the single UI event loop,
// each mutation runs to completion before the loop yields, and it therefore
// carries no lock at all.
//
// # Selection Invariants
//
//   - selected genres form a set keyed by genre id; toggling an
//     already-selected genre removes it
//   - exactly one MPA rating may be selected at a time (single slot,
//     overwrite on re-select)
//   - the active user is the single context for likes, friend operations,
//     reviews and the feed; actions requiring it fail fast when unset
//   - a present edit target routes the next submission to an update, an
//     absent one to a create
package state
