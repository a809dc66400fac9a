// Package rg provides a fluent builder for ripgrep command lines and a
// parser for ripgrep's --json output.
//
// No searching happens in this package: every option method maps directly
// to a documented rg flag, and Run shells out to the rg binary. The value
// of the package is assembling a correct command line and giving structured
// access to what rg printed.
//
// # Basic Usage
//
//	cmd, err := rg.New("func \\w+Handler", "~/src/api")
//	if err != nil {
//	    log.Fatal(err) // rg binary not on PATH
//	}
//
//	out, err := cmd.JSON().IgnoreCase().LineNumber().Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches, err := out.AsMatches()
//	for _, m := range matches {
//	    fmt.Printf("%s:%d: %s", m.Data.Path.Text, m.Data.LineNumber, m.Data.Lines.Text)
//	}
//
// # Option Methods
//
// Each option method appends exactly one formatted token and returns the
// builder, so calls chain. Later flags override earlier conflicting ones,
// following rg's own precedence rules:
//
//	cmd.CaseSensitive().IgnoreCase() // --ignore-case wins
//
// Arguments are not validated here. rg is the source of truth for what a
// valid sort key, encoding label or size suffix is; bad values surface in
// Output.Stderr and the exit code when the command runs.
//
// Short applies rg's single-letter spellings through a lookup table:
//
//	cmd.Short("i").Short("C", "2") // IgnoreCase().Context(2)
//
// # Running
//
// Run serializes the accumulated tokens, then the quoted pattern, then the
// search path, and executes the line through the platform shell. It blocks
// until rg exits. Stdout and stderr are captured separately and the exit
// code is exposed, so "no matches" (exit 1, empty stdout) is
// distinguishable from a search error (exit 2, stderr text):
//
//	out, err := cmd.Run(ctx)
//	if err != nil { ... }        // could not start the process
//	if out.ExitCode() == 2 { ... } // rg reported an error
//
// Run does not consume the builder. The token sequence is left untouched,
// so a builder can be refined and run again; Reset drops accumulated
// tokens when a clean slate is wanted.
//
// # Structured Output
//
// AsMatches and AsMatchesJSON require that --json was part of the command
// line; they fail with ErrNotJSONMode otherwise. Only records with
// type "match" are surfaced; begin, end, context and summary records are
// discarded. A malformed line fails the whole call with *DecodeError.
package rg
