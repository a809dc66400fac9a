package rg

import (
	"fmt"
	"strconv"
)

// shortOption dispatches one of rg's single-letter flag spellings to its
// long-form method. The table is static: aliases are pure synonyms and
// carry no state of their own.
type shortOption struct {
	long  string
	apply func(r *Ripgrep, args []string) error
}

func noArg(long string, method func(*Ripgrep) *Ripgrep) shortOption {
	return shortOption{long: long, apply: func(r *Ripgrep, args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("%s takes no argument", long)
		}
		method(r)
		return nil
	}}
}

func strArg(long string, method func(*Ripgrep, string) *Ripgrep) shortOption {
	return shortOption{long: long, apply: func(r *Ripgrep, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%s takes exactly one argument", long)
		}
		method(r, args[0])
		return nil
	}}
}

func intArg(long string, method func(*Ripgrep, int) *Ripgrep) shortOption {
	return shortOption{long: long, apply: func(r *Ripgrep, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%s takes exactly one argument", long)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%s wants a number, got %q", long, args[0])
		}
		method(r, n)
		return nil
	}}
}

// shortOptions maps rg's short flags to the long-form option methods.
// Names are case sensitive, matching rg itself: i is IgnoreCase while I is
// NoFilename.
var shortOptions = map[string]shortOption{
	"A": intArg("after-context", (*Ripgrep).AfterContext),
	"B": intArg("before-context", (*Ripgrep).BeforeContext),
	"C": intArg("context", (*Ripgrep).Context),
	"E": strArg("encoding", (*Ripgrep).Encoding),
	"F": noArg("fixed-strings", (*Ripgrep).FixedStrings),
	"H": noArg("with-filename", (*Ripgrep).WithFilename),
	"I": noArg("no-filename", (*Ripgrep).NoFilename),
	"L": noArg("follow", (*Ripgrep).Follow),
	"M": intArg("max-columns", (*Ripgrep).MaxColumns),
	"N": noArg("no-line-number", (*Ripgrep).NoLineNumber),
	"P": noArg("pcre2", (*Ripgrep).Pcre2),
	"S": noArg("smart-case", (*Ripgrep).SmartCase),
	"T": strArg("type-not", (*Ripgrep).TypeNot),
	"U": noArg("multiline", (*Ripgrep).Multiline),
	"a": noArg("text", (*Ripgrep).Text),
	"b": noArg("byte-offset", (*Ripgrep).ByteOffset),
	"e": strArg("regexp", (*Ripgrep).Regexp),
	"f": strArg("file", (*Ripgrep).File),
	"g": strArg("glob", (*Ripgrep).Glob),
	"i": noArg("ignore-case", (*Ripgrep).IgnoreCase),
	"j": intArg("threads", (*Ripgrep).Threads),
	"l": noArg("files-with-matches", (*Ripgrep).FilesWithMatches),
	"m": intArg("max-count", (*Ripgrep).MaxCount),
	"n": noArg("line-number", (*Ripgrep).LineNumber),
	"o": noArg("only-matching", (*Ripgrep).OnlyMatching),
	"p": noArg("pretty", (*Ripgrep).Pretty),
	"q": noArg("quiet", (*Ripgrep).Quiet),
	"r": strArg("replace", (*Ripgrep).Replace),
	"s": noArg("case-sensitive", (*Ripgrep).CaseSensitive),
	"u": noArg("unrestricted", (*Ripgrep).Unrestricted),
	"v": noArg("invert-match", (*Ripgrep).InvertMatch),
	"w": noArg("word-regexp", (*Ripgrep).WordRegexp),
	"x": noArg("line-regexp", (*Ripgrep).LineRegexp),
	"z": noArg("search-zip", (*Ripgrep).SearchZip),
}

// Short applies an option through its single-letter rg spelling, for
// callers who think in rg's own flag vocabulary:
//
//	cmd.Short("i").Short("A", "3") // IgnoreCase().AfterContext(3)
//
// Options that take a value receive it as the sole args element; numeric
// values are given as decimal strings. An unknown name or a malformed
// argument appends no token and latches an error that the next Run
// reports, so a chain stays chainable.
func (r *Ripgrep) Short(name string, args ...string) *Ripgrep {
	opt, ok := shortOptions[name]
	if !ok {
		r.latch(fmt.Errorf("%w: unknown option %q", ErrBadShortOption, name))
		return r
	}
	if err := opt.apply(r, args); err != nil {
		r.latch(fmt.Errorf("%w: %v", ErrBadShortOption, err))
	}
	return r
}

// latch records the first Short failure; later ones are dropped.
func (r *Ripgrep) latch(err error) {
	if r.err == nil {
		r.err = err
	}
}
