// Package app provides the orchestration layer for the Reeler application.
//
// # Overview
//
// This package wires together configuration, the Filmorate HTTP client, the
// entity mirror, the sync controller, and the UI to create the complete
// Reeler TUI experience. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/reeler/config.toml
//  2. Apply the REELER_BASE_URL environment override and any CLI override
//  3. Load display preferences from ~/.config/reeler/prefs.toml
//  4. Initialize the HTTP client for the Filmorate service
//  5. Create the shared state.Store and the keyboard-owned state.Selection
//  6. Fetch reference data (genres, MPA ratings) once up front
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()         Read service address and limits
//	       ├─────> prefs.Load()          Read theme preference
//	       ├─────> filmorate.NewClient() Create HTTP client
//	       ├─────> state.Store{}         Shared entity mirror
//	       ├─────> state.NewSelection()  Keyboard-owned selection state
//	       ├─────> syncctl.New()         Controller over client + store
//	       ├─────> ctrl.LoadReference()  Genres and MPA ratings, best effort
//	       └─────> ui.Run()              Start TUI (blocks)
//
// There is no background poller: every collection is re-fetched on view
// entry and after each successful mutation, so the mirror only changes in
// response to an operator action.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - Client initialization failure (malformed base URL)
//
// Recoverable conditions:
//   - The reference-data fetch may fail at startup; the service may come up
//     later, and subsequent refreshes repopulate the mirror.
//   - Refresh failures inside the UI surface on the status line and keep the
//     previous data on screen.
package app
