package rg

import (
	"encoding/json"
	"strings"
)

// Output is the immutable result of one Run: the captured streams, the
// process exit code, and the exact command line that produced them. The
// command tokens are retained so the structured accessors can verify that
// JSON mode was actually requested.
type Output struct {
	stdout      string
	stderr      string
	exitCode    int
	tokens      []string
	commandLine string
}

// AsString returns the captured stdout text unchanged, byte for byte.
// Always available regardless of which flags were used.
func (o *Output) AsString() string {
	return o.stdout
}

// Stderr returns the captured standard error text. rg writes flag errors,
// pattern syntax errors and permission problems here.
func (o *Output) Stderr() string {
	return o.stderr
}

// ExitCode returns the rg process exit code: 0 for matches found, 1 for
// no matches, 2 for a search error.
func (o *Output) ExitCode() int {
	return o.exitCode
}

// CommandLine returns the serialized command that produced this output.
func (o *Output) CommandLine() string {
	return o.commandLine
}

// AsMatches decodes the captured JSON Lines output and returns the records
// of type "match" in emission order; begin, end, context and summary
// records are discarded. It fails with ErrNotJSONMode when the command was
// built without the JSON option, and with *DecodeError when any line is
// not valid JSON; partial results are never returned. Empty output yields
// an empty slice.
func (o *Output) AsMatches() ([]Match, error) {
	defer timed("as-matches")()

	if !o.jsonMode() {
		return nil, ErrNotJSONMode
	}

	matches := make([]Match, 0)
	for i, line := range strings.Split(o.stdout, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var m Match
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			return nil, &DecodeError{Line: i + 1, Err: err}
		}
		if m.Type == "match" {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// AsMatchesJSON returns the AsMatches records re-serialized as one JSON
// array. Same availability and failure behavior as AsMatches.
func (o *Output) AsMatchesJSON() (string, error) {
	defer timed("as-matches-json")()

	matches, err := o.AsMatches()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(matches)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (o *Output) jsonMode() bool {
	for _, token := range o.tokens {
		if token == "--json" {
			return true
		}
	}
	return false
}
