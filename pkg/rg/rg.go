package rg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultBinary is the binary name looked up on PATH when no override is
// given.
const DefaultBinary = "rg"

// Ripgrep accumulates the tokens of one rg command line. Construct it with
// New, chain option methods, then call Run. The zero value is not usable.
//
// A Ripgrep is not safe for concurrent use; callers wanting parallel
// searches should build one instance per search.
type Ripgrep struct {
	pattern string // already quoted for shell tokenization
	path    string // home-expanded search path
	binPath string // resolved executable path
	tokens  []string
	runner  Runner
	err     error // latched by Short, reported by Run
}

// Option configures a Ripgrep at construction time.
type Option func(*Ripgrep)

// WithBinary overrides the rg executable name or path. The override is
// still resolved against PATH by New.
func WithBinary(name string) Option {
	return func(r *Ripgrep) { r.binPath = name }
}

// WithRunner replaces the process execution seam. Intended for tests.
func WithRunner(runner Runner) Option {
	return func(r *Ripgrep) { r.runner = runner }
}

// New creates a builder for searching pattern under path. A leading ~ in
// path is expanded to the user home directory, and the pattern is quoted
// so the shell passes it to rg as a single argument. New fails with
// ErrRipgrepNotFound if the rg binary cannot be located; no process is
// spawned before Run.
func New(pattern, path string, opts ...Option) (*Ripgrep, error) {
	r := &Ripgrep{
		pattern: strconv.Quote(pattern),
		path:    expandHome(path),
		binPath: DefaultBinary,
		runner:  shellRunner{},
	}
	for _, opt := range opts {
		opt(r)
	}

	resolved, err := exec.LookPath(r.binPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrRipgrepNotFound, r.binPath)
	}
	r.binPath = resolved
	r.tokens = []string{r.binPath}
	return r, nil
}

// Run serializes the command line and executes it through the platform
// shell, blocking until the process exits. The quoted pattern and the
// search path are appended after the accumulated flag tokens, in that
// order; the builder's own token sequence is not modified, so the builder
// stays usable for further chaining and re-running.
//
// A non-zero exit is not an error: rg exits 1 when nothing matched and 2
// on search errors, and both are reported through Output.ExitCode. Run
// returns an error only when the process could not be started or the
// builder holds a latched Short error.
func (r *Ripgrep) Run(ctx context.Context) (*Output, error) {
	defer timed("run")()

	if r.err != nil {
		return nil, r.err
	}

	tokens := r.commandTokens()
	line := strings.Join(tokens, " ")

	result, err := r.runner.Run(ctx, line)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", line, err)
	}
	return &Output{
		stdout:      result.Stdout,
		stderr:      result.Stderr,
		exitCode:    result.ExitCode,
		tokens:      tokens,
		commandLine: line,
	}, nil
}

// Reset drops all accumulated flag tokens and any latched Short error,
// restoring the builder to its just-constructed state. The pattern and
// search path given to New are kept.
func (r *Ripgrep) Reset() *Ripgrep {
	r.tokens = []string{r.binPath}
	r.err = nil
	return r
}

// Tokens returns a copy of the full token sequence Run would execute:
// the binary path, the flag tokens in call order, then the quoted pattern
// and the search path.
func (r *Ripgrep) Tokens() []string {
	return r.commandTokens()
}

// CommandLine returns the serialized command line Run would execute.
func (r *Ripgrep) CommandLine() string {
	return strings.Join(r.commandTokens(), " ")
}

// commandTokens builds the final token sequence without mutating r.tokens.
// Pattern and path are skipped when an option cleared them (Regexp,
// Pcre2Version, TypeList), since those modes take no positional arguments.
func (r *Ripgrep) commandTokens() []string {
	tokens := make([]string, 0, len(r.tokens)+2)
	tokens = append(tokens, r.tokens...)
	if r.pattern != "" {
		tokens = append(tokens, r.pattern)
	}
	if r.path != "" {
		tokens = append(tokens, r.path)
	}
	return tokens
}

// appendFlag records a flag that takes no argument.
func (r *Ripgrep) appendFlag(flag string) *Ripgrep {
	r.tokens = append(r.tokens, flag)
	return r
}

// appendInt records a flag with a numeric argument, rendered unquoted.
func (r *Ripgrep) appendInt(flag string, n int) *Ripgrep {
	r.tokens = append(r.tokens, fmt.Sprintf("%s %d", flag, n))
	return r
}

// appendRaw records a flag whose argument is rendered unquoted, for
// number-with-suffix values such as 10M.
func (r *Ripgrep) appendRaw(flag, value string) *Ripgrep {
	r.tokens = append(r.tokens, flag+" "+value)
	return r
}

// appendString records a flag with a free-form string argument. The value
// is quoted so globs, replacement text and paths survive shell
// tokenization.
func (r *Ripgrep) appendString(flag, value string) *Ripgrep {
	r.tokens = append(r.tokens, fmt.Sprintf("%s %s", flag, strconv.Quote(value)))
	return r
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
