// Package config handles loading the reeler configuration file.
//
// # Overview
//
// Reeler needs exactly one thing to run: the base URL of the film service.
// The config file additionally tunes the popular-films count and the feed
// display limit.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/reeler/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. REELER_BASE_URL (optionally from a .env file in the working
//     directory) overrides base_url from any source
//
// # TOML Format
//
// Example config.toml:
//
//	base_url = "http://127.0.0.1:8080/api"
//	popular_count = 10
//	feed_limit = 50
//
// All fields are optional. The base URL may carry a path prefix when the
// service is deployed behind one. Tilde expansion is performed on the
// config path.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, and
// TOML parse errors. A missing config file is NOT an error - defaults are
// used instead, so reeler works out-of-the-box against a local service.
//
// The package is read-only and stateless: configuration is loaded once at
// startup into an immutable Config struct.
package config
