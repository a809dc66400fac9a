package rg

import (
	"errors"
	"fmt"
)

var (
	// ErrRipgrepNotFound is returned by New when the rg binary cannot be
	// located on the execution search path.
	ErrRipgrepNotFound = errors.New("ripgrep binary not found")

	// ErrNotJSONMode is returned by the structured output accessors when
	// the command line was built without the JSON option.
	ErrNotJSONMode = errors.New("output is not in JSON mode, use the JSON() option")

	// ErrBadShortOption is returned by Run when Short was called with an
	// unknown alias or a malformed argument.
	ErrBadShortOption = errors.New("bad short option")
)

// DecodeError reports a captured output line that could not be decoded as
// a JSON record. Line is 1-based within the captured output.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode output line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
