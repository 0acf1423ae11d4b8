// Package syncctl orchestrates fetch → store → render cycles and turns
// user intents into outbound requests against the film service.
//
// # Overview
//
// The Controller is the only component that talks to the service. Each
// intent (submit a form, like a film, vote on a review, delete something)
// becomes exactly one request; on success the owning collection is
// re-fetched wholesale before anything renders. Failures surface as a
// single error per attempt and never leave the store partially updated.
//
// # Create-or-Update Routing
//
// Submission methods share one binary branch: a non-empty edit target on
// the selection routes to an update (PUT, id attached to the payload), an
// empty one routes to a create (POST, no id field). The branch is the same
// for films, users, and reviews.
//
// # Post-Mutation Resync
//
// The controller performs no optimistic cache mutation. Film mutations
// re-fetch films, user mutations re-fetch users, review mutations and
// votes re-fetch the last requested review window. This keeps
// server-computed derived fields (like counts, review usefulness) correct
// without duplicating their computation client-side. The pattern is a
// design decision, not an optimization target.
//
// # Error Taxonomy
//
//   - *filmorate.ValidationError: client-detected, pre-request; the
//     request is never issued
//   - ErrNoActiveUser / ErrSelfFriend: missing or invalid context,
//     blocked before any request with a corrective message
//   - *filmorate.APIError and transport failures: surfaced once with the
//     best-available server message; the store keeps its last good data
//
// No automatic retries anywhere: every failure is terminal for that
// attempt and the operator re-triggers the action.
//
// # Destructive Actions
//
// Deletes and friend removal go through a two-step protocol: the
// controller returns a Pending action carrying a confirmation label, and
// the request is only issued when the UI confirms it. Declining discards
// the Pending silently.
//
// # Concurrency
//
// Methods are synchronous and safe to run from UI-dispatched goroutines.
// In-flight requests are not fenced by identity: when two refreshes race,
// the later response wins wholesale. That is an accepted simplification
// for a single-operator session.
package syncctl
