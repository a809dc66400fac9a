package rg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSONOutput = `{"type":"begin","data":{"path":{"text":"/tmp/test/test.lol"}}}
{"type":"match","data":{"path":{"text":"/tmp/test/test.lol"},"lines":{"text":"teststring\n"},"line_number":3,"absolute_offset":12,"submatches":[{"match":{"text":"test"},"start":0,"end":4}]}}
{"type":"end","data":{"path":{"text":"/tmp/test/test.lol"}}}
{"type":"summary","data":{"elapsed_total":{"secs":0,"nanos":68889,"human":"0.000069s"}}}
`

func jsonOutput(stdout string) *Output {
	return &Output{stdout: stdout, tokens: []string{"rg", "--json"}, commandLine: "rg --json"}
}

func TestAsStringReturnsRawOutput(t *testing.T) {
	raw := "anything rg printed\nincluding \"quotes\" and partial {json\n"
	out := &Output{stdout: raw, tokens: []string{"rg", "--ignore-case"}}
	assert.Equal(t, raw, out.AsString())

	// available in JSON mode too, unchanged
	out = jsonOutput(sampleJSONOutput)
	assert.Equal(t, sampleJSONOutput, out.AsString())
}

func TestAsMatchesFiltersToMatchRecords(t *testing.T) {
	out := jsonOutput(sampleJSONOutput)

	matches, err := out.AsMatches()
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, "match", m.Type)
	assert.Equal(t, "/tmp/test/test.lol", m.Data.Path.Text)
	assert.Equal(t, "teststring\n", m.Data.Lines.Text)
	assert.Equal(t, 3, m.Data.LineNumber)
	assert.Equal(t, int64(12), m.Data.AbsoluteOffset)
	require.Len(t, m.Data.Submatches, 1)
	assert.Equal(t, "test", m.Data.Submatches[0].Match.Text)
	assert.Equal(t, 0, m.Data.Submatches[0].Start)
	assert.Equal(t, 4, m.Data.Submatches[0].End)
}

func TestAsMatchesPreservesEmissionOrder(t *testing.T) {
	out := jsonOutput(`{"type":"match","data":{"path":{"text":"a"},"line_number":1}}
{"type":"match","data":{"path":{"text":"b"},"line_number":9}}
{"type":"match","data":{"path":{"text":"a"},"line_number":4}}
`)

	matches, err := out.AsMatches()
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, 1, matches[0].Data.LineNumber)
	assert.Equal(t, 9, matches[1].Data.LineNumber)
	assert.Equal(t, 4, matches[2].Data.LineNumber)
}

func TestAsMatchesEmptyOutput(t *testing.T) {
	matches, err := jsonOutput("").AsMatches()
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestAsMatchesWithoutJSONFlag(t *testing.T) {
	out := &Output{stdout: sampleJSONOutput, tokens: []string{"rg", "--ignore-case"}}

	matches, err := out.AsMatches()
	assert.Nil(t, matches)
	assert.ErrorIs(t, err, ErrNotJSONMode)

	_, err = out.AsMatchesJSON()
	assert.ErrorIs(t, err, ErrNotJSONMode)
}

func TestAsMatchesMalformedLine(t *testing.T) {
	out := jsonOutput(`{"type":"match","data":{"line_number":1}}
{"type":"match","data":{"line_number":2}
{"type":"match","data":{"line_number":3}}
`)

	matches, err := out.AsMatches()
	assert.Nil(t, matches, "no partial results")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 2, decodeErr.Line)
	assert.Error(t, decodeErr.Unwrap())
}

func TestAsMatchesJSONRoundTrip(t *testing.T) {
	out := jsonOutput(sampleJSONOutput)

	matches, err := out.AsMatches()
	require.NoError(t, err)

	text, err := out.AsMatchesJSON()
	require.NoError(t, err)

	var decoded []Match
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	assert.Equal(t, matches, decoded)
}

func TestAsMatchesJSONEmptyIsArray(t *testing.T) {
	text, err := jsonOutput("").AsMatchesJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", text)
}
