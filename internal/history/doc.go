// Package history persists a record of every ripgrep invocation the
// server performed: the pattern, the exact command line, exit code, match
// count and duration. The search_history MCP tool reads it back.
//
// Storage is a single SQLite database. Two drivers are supported, chosen
// at build time:
//
//   - default (or the purego tag): modernc.org/sqlite, no C compiler needed
//   - sqlite_cgo tag: github.com/mattn/go-sqlite3, CGO required
//
// Schema changes go through versioned migrations; see migrations.go.
package history
