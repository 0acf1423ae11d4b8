// Package ui provides the terminal user interface for Reeler.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program following the Elm architecture: Model holds
// all UI state, Update reacts to keyboard and completion messages, and View
// renders from an immutable snapshot of the entity mirror. Controller calls
// run off the event loop as tea.Cmd functions; their completion messages pull
// a fresh snapshot back onto the loop, so the screen never observes a
// half-applied update.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Model definition, message types, global key dispatch, view
//     switching, cursor movement, and the Run function
//   - input_handlers.go: Per-view key handlers and the confirmation step for
//     destructive actions
//   - form.go: In-place entity forms for films, users and reviews, including
//     the genre and MPA picker rows backed by the composite selection
//   - views.go: List rendering for every view plus the header, status line
//     and footer hints
//   - help.go: Full-screen key reference
//   - theme.go: Color themes and pre-built lipgloss styles
//
// # Views
//
// Six views share one cursor and one list surface:
//
//   - Films: The film catalog, or the popular / recommended slice after P
//     and R. Likes, deletion and per-film review filtering operate on the
//     cursor row.
//   - Users: The user roster. Enter marks the cursor row as the active user,
//     the identity that likes, reviews, friendship changes and the feed are
//     attributed to.
//   - Friends: The active user's friend list.
//   - Reviews: Reviews, optionally filtered to one film, with vote actions.
//   - Feed: The active user's activity feed, normalized into icon and phrase
//     rows, newest first. Leaving the view drops the cached feed.
//   - Reference: Genres and MPA ratings, loaded once at startup.
//
// # Modes
//
// The keyboard is driven by one of four modes. Browse dispatches global and
// per-view keys. Form routes input into the open form. Confirm holds a
// pending destructive request until y or n resolves it. Help swallows any
// key to close.
//
// # Error Display
//
// Refresh failures surface through the snapshot's LastError on the status
// line and keep the previous collections on screen. Action failures arrive
// as actionErrMsg and show as a transient notice; a failed form submission
// keeps the form open for correction.
package ui
