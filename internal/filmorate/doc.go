// Package filmorate provides an HTTP client for the film service REST API.
//
// # Overview
//
// This package defines the API client for the Filmorate-style film service:
// films, users, genres, MPA ratings, reviews, friendships, and the activity
// feed. It handles HTTP communication, JSON serialization, structured error
// decoding, and client-side payload validation.
//
// # Architecture
//
// The package is split into four files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the service API schema
//   - validate.go: Draft types with field constraints checked before any request
//   - errors.go: APIError / ValidationError and the service error body shapes
//
// # Client Usage
//
// Create a client using the base URL from configuration:
//
//	client, err := filmorate.NewClient("http://127.0.0.1:8080")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	films, err := client.Films(ctx)
//	created, err := client.CreateFilm(ctx, draft)
//
// The base URL may carry a path prefix ("/api") when the service is deployed
// behind one; all endpoint paths are joined onto it.
//
// # Request Handling
//
// All requests use context for cancellation, set Accept and User-Agent
// headers, carry Content-Type: application/json when a body is sent, and
// time out after 5 seconds.
//
// # Error Handling
//
// Non-2xx responses become *APIError carrying the HTTP status and the best
// message the response body offered. The service emits two error shapes --
// {"error", "description"} for missing resources and {"violations":
// [{fieldName, message}]} for rejected payloads -- and both are decoded.
// When the body is absent or unparseable the message falls back to a generic
// one keyed by the attempted operation ("create film failed").
//
// Client-side validation failures become *ValidationError before any request
// is issued. The one rule beyond field tags is the release-date floor:
// films cannot predate 1895-12-28, the first public film screening.
//
// # Mutations
//
// Create and update share payload shapes. Create (POST) strips the id;
// update (PUT) requires it attached. Nested mpa and genre references are
// reduced to {"id": n} objects and the genre set is de-duplicated by id.
// Server-computed fields (likes, useful) are never sent outbound.
package filmorate
