// Package searcher runs ripgrep searches on behalf of the MCP tools.
//
// It translates a tool-level Request into one rg command per search path,
// runs the paths concurrently, merges the structured matches in path
// order, and remembers what happened: completed runs go to the history
// store, and whole responses sit in an LRU cache keyed by the exact
// command lines, so a repeated request with an unchanged option set is
// answered without spawning processes.
//
// The command assembly itself lives in pkg/rg; this package decides which
// options to set and what to do with the output.
package searcher
