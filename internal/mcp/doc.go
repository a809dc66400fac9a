// Package mcp implements the Model Context Protocol (MCP) server for
// grippy.
//
// The server exposes ripgrep-backed search to AI coding assistants over
// stdio as four tools:
//   - search: run a pattern over one or more paths, structured results
//   - count_matches: per-file match counts without match content
//   - list_file_types: rg's supported file types and their globs
//   - search_history: recent recorded runs and aggregate stats
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport; stdout is reserved
// for protocol messages, so all logging goes to stderr.
//
// The server needs a working rg binary at startup (configurable through
// GRIPPY_RG_PATH) and keeps its run history in a SQLite database under the
// configured state directory.
package mcp
