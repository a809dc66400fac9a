//go:build !sqlite_cgo

package history

// Compiled when building without the sqlite_cgo tag. Uses a pure Go SQLite
// implementation, so no C compiler is required and cross-compilation works
// out of the box.
//
// Driver used: modernc.org/sqlite

import (
	_ "modernc.org/sqlite"
)

const (
	// DriverName is the SQLite driver to use
	DriverName = "sqlite"

	// BuildMode describes the current build configuration
	BuildMode = "purego"
)
