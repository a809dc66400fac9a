package rg

// One method per documented rg flag during assembly of the command line.
// Arguments are passed through unvalidated: rg itself decides what a legal
// sort key, encoding label or size suffix is, and rejects bad values at
// run time through its exit code and stderr.

// AfterContext shows n lines after each match (--after-context).
// This overrides the --context flag.
func (r *Ripgrep) AfterContext(n int) *Ripgrep {
	return r.appendInt("--after-context", n)
}

// BeforeContext shows n lines before each match (--before-context).
// This overrides the --context flag.
func (r *Ripgrep) BeforeContext(n int) *Ripgrep {
	return r.appendInt("--before-context", n)
}

// Context shows n lines before and after each match (--context).
// Equivalent to AfterContext(n) plus BeforeContext(n).
func (r *Ripgrep) Context(n int) *Ripgrep {
	return r.appendInt("--context", n)
}

// AutoHybridRegex lets rg choose between supported regex engines per
// pattern (--auto-hybrid-regex).
func (r *Ripgrep) AutoHybridRegex() *Ripgrep {
	return r.appendFlag("--auto-hybrid-regex")
}

// Binary searches binary files instead of skipping them (--binary).
func (r *Ripgrep) Binary() *Ripgrep {
	return r.appendFlag("--binary")
}

// BlockBuffered forces block buffering on stdout (--block-buffered).
func (r *Ripgrep) BlockBuffered() *Ripgrep {
	return r.appendFlag("--block-buffered")
}

// ByteOffset prints the 0-based byte offset before each matching line
// (--byte-offset).
func (r *Ripgrep) ByteOffset() *Ripgrep {
	return r.appendFlag("--byte-offset")
}

// CaseSensitive searches case sensitively, overriding earlier
// --ignore-case and --smart-case flags (--case-sensitive).
func (r *Ripgrep) CaseSensitive() *Ripgrep {
	return r.appendFlag("--case-sensitive")
}

// CountMatches prints the number of individual matches per file
// (--count-matches).
func (r *Ripgrep) CountMatches() *Ripgrep {
	return r.appendFlag("--count-matches")
}

// Crlf treats \r\n as a line terminator (--crlf).
func (r *Ripgrep) Crlf() *Ripgrep {
	return r.appendFlag("--crlf")
}

// Debug makes rg print debugging messages to stderr (--debug).
func (r *Ripgrep) Debug() *Ripgrep {
	return r.appendFlag("--debug")
}

// DfaSizeLimit caps the regex DFA size; size takes an optional suffix such
// as 10M (--dfa-size-limit).
func (r *Ripgrep) DfaSizeLimit(size string) *Ripgrep {
	return r.appendRaw("--dfa-size-limit", size)
}

// Encoding sets the text encoding used on all searched files; the default
// "auto" sniffs BOMs per file (--encoding).
func (r *Ripgrep) Encoding(encoding string) *Ripgrep {
	return r.appendString("--encoding", encoding)
}

// File reads patterns from the given file, one per line (--file).
func (r *Ripgrep) File(path string) *Ripgrep {
	return r.appendString("--file", path)
}

// Files prints each file that would be searched, without searching
// (--files).
func (r *Ripgrep) Files() *Ripgrep {
	return r.appendFlag("--files")
}

// FilesWithMatches prints only the paths with at least one match
// (--files-with-matches). Overrides --files-without-match.
func (r *Ripgrep) FilesWithMatches() *Ripgrep {
	return r.appendFlag("--files-with-matches")
}

// FilesWithoutMatch prints only the paths containing zero matches
// (--files-without-match).
func (r *Ripgrep) FilesWithoutMatch() *Ripgrep {
	return r.appendFlag("--files-without-match")
}

// FixedStrings treats the pattern as a literal string (--fixed-strings).
func (r *Ripgrep) FixedStrings() *Ripgrep {
	return r.appendFlag("--fixed-strings")
}

// Follow follows symbolic links while traversing directories (--follow).
func (r *Ripgrep) Follow() *Ripgrep {
	return r.appendFlag("--follow")
}

// Glob includes or excludes files matching the given glob; precede the
// glob with ! for exclusion (--glob).
func (r *Ripgrep) Glob(glob string) *Ripgrep {
	return r.appendString("--glob", glob)
}

// Hidden searches hidden files and directories (--hidden).
func (r *Ripgrep) Hidden() *Ripgrep {
	return r.appendFlag("--hidden")
}

// Iglob is Glob with case-insensitive matching (--iglob).
func (r *Ripgrep) Iglob(glob string) *Ripgrep {
	return r.appendString("--iglob", glob)
}

// IgnoreCase searches case insensitively, overriding earlier
// --case-sensitive flags (--ignore-case).
func (r *Ripgrep) IgnoreCase() *Ripgrep {
	return r.appendFlag("--ignore-case")
}

// IgnoreFile adds ignore rules from the given gitignore-format file
// (--ignore-file).
func (r *Ripgrep) IgnoreFile(path string) *Ripgrep {
	return r.appendString("--ignore-file", path)
}

// IgnoreFileCaseInsensitive processes ignore files case insensitively
// (--ignore-file-case-insensitive).
func (r *Ripgrep) IgnoreFileCaseInsensitive() *Ripgrep {
	return r.appendFlag("--ignore-file-case-insensitive")
}

// InvertMatch prints lines that do not match the pattern (--invert-match).
func (r *Ripgrep) InvertMatch() *Ripgrep {
	return r.appendFlag("--invert-match")
}

// JSON makes rg emit results in JSON Lines format (--json). Required
// before Output.AsMatches and Output.AsMatchesJSON can be used.
func (r *Ripgrep) JSON() *Ripgrep {
	return r.appendFlag("--json")
}

// LineBuffered forces line buffering on stdout (--line-buffered).
func (r *Ripgrep) LineBuffered() *Ripgrep {
	return r.appendFlag("--line-buffered")
}

// LineNumber shows line numbers, 1-based (--line-number).
func (r *Ripgrep) LineNumber() *Ripgrep {
	return r.appendFlag("--line-number")
}

// LineRegexp requires the pattern to match a whole line (--line-regexp).
func (r *Ripgrep) LineRegexp() *Ripgrep {
	return r.appendFlag("--line-regexp")
}

// MaxColumns omits lines longer than n bytes from the output
// (--max-columns).
func (r *Ripgrep) MaxColumns(n int) *Ripgrep {
	return r.appendInt("--max-columns", n)
}

// MaxColumnsPreview prints a preview of lines suppressed by MaxColumns
// instead of dropping them (--max-columns-preview).
func (r *Ripgrep) MaxColumnsPreview() *Ripgrep {
	return r.appendFlag("--max-columns-preview")
}

// MaxCount stops searching a file after n matches (--max-count).
func (r *Ripgrep) MaxCount(n int) *Ripgrep {
	return r.appendInt("--max-count", n)
}

// MaxDepth limits directory traversal to n levels (--max-depth).
func (r *Ripgrep) MaxDepth(n int) *Ripgrep {
	return r.appendInt("--max-depth", n)
}

// MaxFilesize skips files larger than the given size; size takes an
// optional suffix such as 50K or 10M (--max-filesize).
func (r *Ripgrep) MaxFilesize(size string) *Ripgrep {
	return r.appendRaw("--max-filesize", size)
}

// Mmap searches with memory maps when rg decides it is faster (--mmap).
func (r *Ripgrep) Mmap() *Ripgrep {
	return r.appendFlag("--mmap")
}

// Multiline lets a match span multiple lines (--multiline).
func (r *Ripgrep) Multiline() *Ripgrep {
	return r.appendFlag("--multiline")
}

// MultilineDotall makes . match line terminators in multiline mode
// (--multiline-dotall).
func (r *Ripgrep) MultilineDotall() *Ripgrep {
	return r.appendFlag("--multiline-dotall")
}

// NoConfig makes rg ignore RIPGREP_CONFIG_PATH (--no-config).
func (r *Ripgrep) NoConfig() *Ripgrep {
	return r.appendFlag("--no-config")
}

// NoFilename never prints file paths with matched lines (--no-filename).
func (r *Ripgrep) NoFilename() *Ripgrep {
	return r.appendFlag("--no-filename")
}

// NoHeading prints the file path on every line instead of grouping
// matches under a heading (--no-heading).
func (r *Ripgrep) NoHeading() *Ripgrep {
	return r.appendFlag("--no-heading")
}

// NoIgnore disables all ignore-file handling (--no-ignore).
func (r *Ripgrep) NoIgnore() *Ripgrep {
	return r.appendFlag("--no-ignore")
}

// NoIgnoreDot skips .ignore files (--no-ignore-dot).
func (r *Ripgrep) NoIgnoreDot() *Ripgrep {
	return r.appendFlag("--no-ignore-dot")
}

// NoIgnoreGlobal skips global gitignore sources (--no-ignore-global).
func (r *Ripgrep) NoIgnoreGlobal() *Ripgrep {
	return r.appendFlag("--no-ignore-global")
}

// NoIgnoreMessages suppresses errors about ignore-file parsing
// (--no-ignore-messages).
func (r *Ripgrep) NoIgnoreMessages() *Ripgrep {
	return r.appendFlag("--no-ignore-messages")
}

// NoIgnoreParent skips ignore files in parent directories
// (--no-ignore-parent).
func (r *Ripgrep) NoIgnoreParent() *Ripgrep {
	return r.appendFlag("--no-ignore-parent")
}

// NoIgnoreVcs skips version-control ignore files such as .gitignore
// (--no-ignore-vcs).
func (r *Ripgrep) NoIgnoreVcs() *Ripgrep {
	return r.appendFlag("--no-ignore-vcs")
}

// NoLineNumber suppresses line numbers (--no-line-number).
func (r *Ripgrep) NoLineNumber() *Ripgrep {
	return r.appendFlag("--no-line-number")
}

// NoMessages suppresses error messages about failures to open and read
// files (--no-messages).
func (r *Ripgrep) NoMessages() *Ripgrep {
	return r.appendFlag("--no-messages")
}

// NoMmap never searches with memory maps (--no-mmap).
func (r *Ripgrep) NoMmap() *Ripgrep {
	return r.appendFlag("--no-mmap")
}

// NoPcre2Unicode disables Unicode mode in the PCRE2 engine
// (--no-pcre2-unicode).
func (r *Ripgrep) NoPcre2Unicode() *Ripgrep {
	return r.appendFlag("--no-pcre2-unicode")
}

// NoUnicode disables Unicode mode for all patterns (--no-unicode).
func (r *Ripgrep) NoUnicode() *Ripgrep {
	return r.appendFlag("--no-unicode")
}

// Null follows each printed file path with a NUL byte, for use with
// xargs (--null).
func (r *Ripgrep) Null() *Ripgrep {
	return r.appendFlag("--null")
}

// NullData uses NUL as the line terminator instead of \n (--null-data).
func (r *Ripgrep) NullData() *Ripgrep {
	return r.appendFlag("--null-data")
}

// OneFileSystem keeps traversal on one file system (--one-file-system).
func (r *Ripgrep) OneFileSystem() *Ripgrep {
	return r.appendFlag("--one-file-system")
}

// OnlyMatching prints only the matched parts of lines (--only-matching).
func (r *Ripgrep) OnlyMatching() *Ripgrep {
	return r.appendFlag("--only-matching")
}

// Passthru prints both matching and non-matching lines (--passthru).
func (r *Ripgrep) Passthru() *Ripgrep {
	return r.appendFlag("--passthru")
}

// PathSeparator sets the separator used when printing file paths; limited
// to a single byte (--path-separator).
func (r *Ripgrep) PathSeparator(separator string) *Ripgrep {
	return r.appendString("--path-separator", separator)
}

// Pcre2 switches matching to the PCRE2 engine, enabling look-around and
// backreferences (--pcre2).
func (r *Ripgrep) Pcre2() *Ripgrep {
	return r.appendFlag("--pcre2")
}

// Pcre2Version makes rg print its PCRE2 version and exit
// (--pcre2-version). The positional pattern is meaningless in this mode
// and is cleared.
func (r *Ripgrep) Pcre2Version() *Ripgrep {
	r.pattern = ""
	return r.appendFlag("--pcre2-version")
}

// Pre searches the stdout of "command FILE" instead of each file's
// contents (--pre).
func (r *Ripgrep) Pre(command string) *Ripgrep {
	return r.appendString("--pre", command)
}

// PreGlob limits the Pre preprocessor to files matching the glob
// (--pre-glob).
func (r *Ripgrep) PreGlob(glob string) *Ripgrep {
	return r.appendString("--pre-glob", glob)
}

// Pretty is shorthand for colors, headings and line numbers (--pretty).
func (r *Ripgrep) Pretty() *Ripgrep {
	return r.appendFlag("--pretty")
}

// Quiet suppresses all output; the exit code alone reports whether a match
// was found (--quiet).
func (r *Ripgrep) Quiet() *Ripgrep {
	return r.appendFlag("--quiet")
}

// RegexSizeLimit caps the compiled regex size; size takes an optional
// suffix such as 10M (--regex-size-limit).
func (r *Ripgrep) RegexSizeLimit(size string) *Ripgrep {
	return r.appendRaw("--regex-size-limit", size)
}

// Regexp supplies a pattern through the flag form instead of the
// positional argument, which is what rg wants for patterns that start
// with a dash (--regexp). The positional pattern is cleared.
func (r *Ripgrep) Regexp(pattern string) *Ripgrep {
	r.pattern = ""
	return r.appendString("--regexp", pattern)
}

// Replace replaces every match with the given text when printing results;
// capture group indices and names are supported (--replace). Files are
// never modified.
func (r *Ripgrep) Replace(replacement string) *Ripgrep {
	return r.appendString("--replace", replacement)
}

// SearchZip searches inside compressed files (--search-zip).
func (r *Ripgrep) SearchZip() *Ripgrep {
	return r.appendFlag("--search-zip")
}

// SmartCase searches case insensitively unless the pattern contains an
// uppercase character (--smart-case).
func (r *Ripgrep) SmartCase() *Ripgrep {
	return r.appendFlag("--smart-case")
}

// Sort sorts results ascending by the given key, such as path or modified
// (--sort). Forces single-threaded searching.
func (r *Ripgrep) Sort(by string) *Ripgrep {
	return r.appendString("--sort", by)
}

// Sortr sorts results descending by the given key (--sortr).
func (r *Ripgrep) Sortr(by string) *Ripgrep {
	return r.appendString("--sortr", by)
}

// Stats prints aggregate statistics after the search results (--stats).
func (r *Ripgrep) Stats() *Ripgrep {
	return r.appendFlag("--stats")
}

// Text searches binary files as if they were text (--text).
func (r *Ripgrep) Text() *Ripgrep {
	return r.appendFlag("--text")
}

// Threads sets the approximate number of search threads; 0 lets rg choose
// (--threads).
func (r *Ripgrep) Threads(n int) *Ripgrep {
	return r.appendInt("--threads", n)
}

// Trim strips leading whitespace from printed lines (--trim).
func (r *Ripgrep) Trim() *Ripgrep {
	return r.appendFlag("--trim")
}

// Type searches only files matching the given type; TypeList names the
// available types (--type).
func (r *Ripgrep) Type(fileType string) *Ripgrep {
	return r.appendString("--type", fileType)
}

// TypeAdd registers a new glob for a file type, such as "foo:*.foo"
// (--type-add). Type settings are not persisted across invocations.
func (r *Ripgrep) TypeAdd(typeSpec string) *Ripgrep {
	return r.appendString("--type-add", typeSpec)
}

// TypeClear clears the globs for the given file type (--type-clear).
func (r *Ripgrep) TypeClear(fileType string) *Ripgrep {
	return r.appendString("--type-clear", fileType)
}

// TypeList makes rg print all supported file types with their globs and
// exit (--type-list). The positional pattern and path are meaningless in
// this mode and are cleared.
func (r *Ripgrep) TypeList() *Ripgrep {
	r.pattern = ""
	r.path = ""
	return r.appendFlag("--type-list")
}

// TypeNot excludes files matching the given type (--type-not).
func (r *Ripgrep) TypeNot(fileType string) *Ripgrep {
	return r.appendString("--type-not", fileType)
}

// Unrestricted reduces smart filtering; repeat for successively rawer
// searches, rg -uuu being roughly grep -r (--unrestricted).
func (r *Ripgrep) Unrestricted() *Ripgrep {
	return r.appendFlag("--unrestricted")
}

// Vimgrep prints every match on its own line with line and column numbers
// (--vimgrep).
func (r *Ripgrep) Vimgrep() *Ripgrep {
	return r.appendFlag("--vimgrep")
}

// WithFilename prints the file path with each matched line
// (--with-filename).
func (r *Ripgrep) WithFilename() *Ripgrep {
	return r.appendFlag("--with-filename")
}

// WordRegexp only matches the pattern at word boundaries (--word-regexp).
func (r *Ripgrep) WordRegexp() *Ripgrep {
	return r.appendFlag("--word-regexp")
}

// Engine selects the regex engine: default, pcre2 or auto (--engine).
// Overrides previous --pcre2 and --auto-hybrid-regex flags.
func (r *Ripgrep) Engine(engine string) *Ripgrep {
	return r.appendString("--engine", engine)
}
