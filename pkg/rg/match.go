package rg

// Match is one decoded record from rg's --json output stream. rg emits
// five record types (begin, end, match, context, summary); the structured
// accessors surface only those with Type "match".
type Match struct {
	Type string    `json:"type"`
	Data MatchData `json:"data"`
}

// MatchData carries the location and content of a single match.
type MatchData struct {
	// Path is the file the match was found in.
	Path Text `json:"path"`
	// Lines is the full text of the matched line, including the newline.
	Lines Text `json:"lines"`
	// LineNumber is 1-based.
	LineNumber int `json:"line_number"`
	// AbsoluteOffset is the 0-based byte offset of the line in the file.
	AbsoluteOffset int64 `json:"absolute_offset"`
	// Submatches locates each hit of the pattern within Lines.
	Submatches []Submatch `json:"submatches"`
}

// Text wraps rg's data elements. rg emits either a "text" key (valid
// UTF-8) or a base64 "bytes" key; only the text form is decoded here.
type Text struct {
	Text string `json:"text"`
}

// Submatch is one span of matched text within a line, with byte offsets
// relative to the start of the line.
type Submatch struct {
	Match Text `json:"match"`
	Start int  `json:"start"`
	End   int  `json:"end"`
}
