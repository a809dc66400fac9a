package mcp

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nreed/grippy/internal/history"
	"github.com/nreed/grippy/internal/searcher"
	"github.com/nreed/grippy/pkg/rg"
)

// fakeRunner answers command lines from a substring-keyed table, so tests
// never spawn ripgrep.
type fakeRunner struct {
	mu      sync.Mutex
	results map[string]rg.RunResult // keyed by a substring of the command line
}

func (f *fakeRunner) Run(_ context.Context, commandLine string) (rg.RunResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, result := range f.results {
		if strings.Contains(commandLine, key) {
			return result, nil
		}
	}
	return rg.RunResult{ExitCode: 1}, nil // no matches
}

func matchLine(path string, lineNumber int) string {
	return `{"type":"match","data":{"path":{"text":"` + path +
		`"},"lines":{"text":"hit\n"},"line_number":` + strconv.Itoa(lineNumber) +
		`,"absolute_offset":0,"submatches":[{"match":{"text":"hit"},"start":0,"end":3}]}}` + "\n"
}

// newTestServer builds a Server whose searcher never spawns a process and
// whose history lives in memory.
func newTestServer(t *testing.T, runner *fakeRunner) *Server {
	t.Helper()
	store, err := history.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	srch := searcher.New(searcher.Config{
		Binary:  "sh", // present on every test host; execution is stubbed
		Runner:  runner,
		History: store,
	})
	return &Server{history: store, searcher: srch}
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// resultJSON decodes the text payload of a tool result.
func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "tool result should be text content")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &decoded))
	return decoded
}

func TestHandleSearch(t *testing.T) {
	t.Run("requires pattern", func(t *testing.T) {
		srv := newTestServer(t, &fakeRunner{})

		_, err := srv.handleSearch(context.Background(), callRequest("search", map[string]interface{}{}))
		require.Error(t, err)

		var mcpErr *MCPError
		require.ErrorAs(t, err, &mcpErr)
		assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
		assert.Contains(t, mcpErr.Message, "pattern")
	})

	t.Run("rejects non-map arguments", func(t *testing.T) {
		srv := newTestServer(t, &fakeRunner{})

		request := mcp.CallToolRequest{}
		request.Params.Name = "search"
		request.Params.Arguments = "not a map"

		_, err := srv.handleSearch(context.Background(), request)
		require.Error(t, err)

		var mcpErr *MCPError
		require.ErrorAs(t, err, &mcpErr)
		assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
	})

	t.Run("returns matches", func(t *testing.T) {
		runner := &fakeRunner{results: map[string]rg.RunResult{
			"/src": {Stdout: matchLine("/src/a.go", 3), ExitCode: 0},
		}}
		srv := newTestServer(t, runner)

		result, err := srv.handleSearch(context.Background(), callRequest("search", map[string]interface{}{
			"pattern": "hit",
			"paths":   []interface{}{"/src"},
		}))
		require.NoError(t, err)

		response := resultJSON(t, result)
		assert.Equal(t, "hit", response["pattern"])
		assert.Equal(t, float64(1), response["match_count"])
		assert.Equal(t, false, response["cache_hit"])

		matches, ok := response["matches"].([]interface{})
		require.True(t, ok)
		require.Len(t, matches, 1)
		match := matches[0].(map[string]interface{})
		assert.Equal(t, "/src/a.go", match["path"])
		assert.Equal(t, float64(3), match["line_number"])
	})

	t.Run("surfaces ripgrep errors", func(t *testing.T) {
		runner := &fakeRunner{results: map[string]rg.RunResult{
			"/src": {Stderr: "regex parse error", ExitCode: 2},
		}}
		srv := newTestServer(t, runner)

		_, err := srv.handleSearch(context.Background(), callRequest("search", map[string]interface{}{
			"pattern": "hit(",
			"paths":   []interface{}{"/src"},
		}))
		require.Error(t, err)

		var mcpErr *MCPError
		require.ErrorAs(t, err, &mcpErr)
		assert.Equal(t, ErrorCodeSearchFailed, mcpErr.Code)
	})
}

func TestHandleCountMatches(t *testing.T) {
	t.Run("requires pattern", func(t *testing.T) {
		srv := newTestServer(t, &fakeRunner{})

		_, err := srv.handleCountMatches(context.Background(), callRequest("count_matches", map[string]interface{}{}))
		require.Error(t, err)

		var mcpErr *MCPError
		require.ErrorAs(t, err, &mcpErr)
		assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
	})

	t.Run("sums per-file counts", func(t *testing.T) {
		runner := &fakeRunner{results: map[string]rg.RunResult{
			"--count-matches": {Stdout: "a.go:3\nb.go:1\n", ExitCode: 0},
		}}
		srv := newTestServer(t, runner)

		result, err := srv.handleCountMatches(context.Background(), callRequest("count_matches", map[string]interface{}{
			"pattern": "hit",
			"paths":   []interface{}{"/src"},
		}))
		require.NoError(t, err)

		response := resultJSON(t, result)
		assert.Equal(t, float64(4), response["total_matches"])

		files, ok := response["files"].([]interface{})
		require.True(t, ok)
		require.Len(t, files, 2)
		first := files[0].(map[string]interface{})
		assert.Equal(t, "a.go", first["path"])
		assert.Equal(t, float64(3), first["count"])
	})
}

func TestHandleListFileTypes(t *testing.T) {
	runner := &fakeRunner{results: map[string]rg.RunResult{
		"--type-list": {Stdout: "go: *.go\npy: *.py, *.pyi\n", ExitCode: 0},
	}}
	srv := newTestServer(t, runner)

	result, err := srv.handleListFileTypes(context.Background(), callRequest("list_file_types", map[string]interface{}{}))
	require.NoError(t, err)

	response := resultJSON(t, result)
	assert.Equal(t, float64(2), response["type_count"])

	types, ok := response["types"].([]interface{})
	require.True(t, ok)
	second := types[1].(map[string]interface{})
	assert.Equal(t, "py", second["name"])
	assert.Equal(t, []interface{}{"*.py", "*.pyi"}, second["globs"])
}

func TestHandleSearchHistory(t *testing.T) {
	t.Run("validates limit", func(t *testing.T) {
		srv := newTestServer(t, &fakeRunner{})

		for _, limit := range []int{0, -1, 101} {
			_, err := srv.handleSearchHistory(context.Background(), callRequest("search_history", map[string]interface{}{
				"limit": limit,
			}))
			require.Error(t, err, "limit %d should be rejected", limit)

			var mcpErr *MCPError
			require.ErrorAs(t, err, &mcpErr)
			assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
		}
	})

	t.Run("empty history", func(t *testing.T) {
		srv := newTestServer(t, &fakeRunner{})

		result, err := srv.handleSearchHistory(context.Background(), callRequest("search_history", map[string]interface{}{}))
		require.NoError(t, err)

		response := resultJSON(t, result)
		assert.Empty(t, response["runs"])

		stats := response["statistics"].(map[string]interface{})
		assert.Equal(t, float64(0), stats["total_runs"])
		assert.NotContains(t, stats, "last_run_at")
	})

	t.Run("returns recorded runs", func(t *testing.T) {
		runner := &fakeRunner{results: map[string]rg.RunResult{
			"/src": {Stdout: matchLine("/src/a.go", 3), ExitCode: 0},
		}}
		srv := newTestServer(t, runner)

		_, err := srv.handleSearch(context.Background(), callRequest("search", map[string]interface{}{
			"pattern": "hit",
			"paths":   []interface{}{"/src"},
		}))
		require.NoError(t, err)

		result, err := srv.handleSearchHistory(context.Background(), callRequest("search_history", map[string]interface{}{
			"limit": 10,
		}))
		require.NoError(t, err)

		response := resultJSON(t, result)
		runs, ok := response["runs"].([]interface{})
		require.True(t, ok)
		require.Len(t, runs, 1)

		run := runs[0].(map[string]interface{})
		assert.Equal(t, "hit", run["pattern"])
		assert.Equal(t, "/src", run["path"])
		assert.Equal(t, float64(1), run["match_count"])

		stats := response["statistics"].(map[string]interface{})
		assert.Equal(t, float64(1), stats["total_runs"])
		assert.Equal(t, float64(1), stats["total_matches"])
		assert.Contains(t, stats, "last_run_at")
	})
}
