// Package store holds the ordered, read-only collection of clients for one
// invocation and the loaders that build it from data files.
//
// A Store is built once and never mutated. Clients keeps input order, which
// the query engine relies on for result ordering.
//
// # Sources
//
// Load picks a decoder from the file extension:
//   - .json (and unknown extensions): JSON list of client objects
//   - .yaml, .yml: YAML sequence of client mappings
//   - .cue: CUE list, either top-level or under a "clients" field
//   - .db, .sqlite, .sqlite3: SQLite table opened read-only
//
// A trailing .gz or .zst decompresses the file before decoding
// (not supported for SQLite).
//
// # Errors
//
// Loaders never print or exit. Every failure is a *LoadError carrying a code
// and a user-facing message; the CLI maps codes to exit statuses.
package store
