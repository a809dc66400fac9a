package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nreed/grippy/internal/searcher"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeSearchFailed  = -32001 // ripgrep exited with an error
	ErrorCodeHistoryFailed = -32002 // history store query failed
)

// handleSearch handles the search tool invocation
func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	pattern, ok := args["pattern"].(string)
	if !ok || pattern == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "pattern parameter is required", map[string]interface{}{
			"param":  "pattern",
			"reason": "missing or empty",
		})
	}

	paths := getStringSlice(args, "paths")
	if len(paths) == 0 {
		paths = []string{"."}
	}

	req := searcher.Request{
		Pattern:  pattern,
		Paths:    paths,
		UseCache: getBoolDefault(args, "use_cache", true),
		Options: searcher.Options{
			IgnoreCase:   getBoolDefault(args, "ignore_case", false),
			SmartCase:    getBoolDefault(args, "smart_case", false),
			FixedStrings: getBoolDefault(args, "fixed_strings", false),
			WordRegexp:   getBoolDefault(args, "word_regexp", false),
			Multiline:    getBoolDefault(args, "multiline", false),
			Hidden:       getBoolDefault(args, "hidden", false),
			NoIgnore:     getBoolDefault(args, "no_ignore", false),
			Globs:        getStringSlice(args, "globs"),
			Types:        getStringSlice(args, "types"),
			Context:      getIntDefault(args, "context", 0),
			MaxCount:     getIntDefault(args, "max_count", 0),
		},
	}

	result, err := s.searcher.Search(ctx, req)
	if err != nil {
		return nil, newMCPError(ErrorCodeSearchFailed, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	matches := make([]map[string]interface{}, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, map[string]interface{}{
			"path":        m.Data.Path.Text,
			"line_number": m.Data.LineNumber,
			"line":        m.Data.Lines.Text,
		})
	}

	runs := make([]map[string]interface{}, 0, len(result.Runs))
	for _, r := range result.Runs {
		runs = append(runs, map[string]interface{}{
			"path":        r.Path,
			"exit_code":   r.ExitCode,
			"match_count": r.MatchCount,
		})
	}

	response := map[string]interface{}{
		"pattern":     pattern,
		"match_count": len(result.Matches),
		"matches":     matches,
		"runs":        runs,
		"cache_hit":   result.CacheHit,
		"duration_ms": result.Duration.Milliseconds(),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleCountMatches handles the count_matches tool invocation
func (s *Server) handleCountMatches(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	pattern, ok := args["pattern"].(string)
	if !ok || pattern == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "pattern parameter is required", map[string]interface{}{
			"param":  "pattern",
			"reason": "missing or empty",
		})
	}

	paths := getStringSlice(args, "paths")
	if len(paths) == 0 {
		paths = []string{"."}
	}

	req := searcher.Request{
		Pattern: pattern,
		Paths:   paths,
		Options: searcher.Options{
			IgnoreCase: getBoolDefault(args, "ignore_case", false),
			Globs:      getStringSlice(args, "globs"),
		},
	}

	counts, err := s.searcher.CountMatches(ctx, req)
	if err != nil {
		return nil, newMCPError(ErrorCodeSearchFailed, "count failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	files := make([]map[string]interface{}, 0, len(counts))
	total := 0
	for _, fc := range counts {
		files = append(files, map[string]interface{}{
			"path":  fc.Path,
			"count": fc.Count,
		})
		total += fc.Count
	}

	response := map[string]interface{}{
		"pattern":       pattern,
		"total_matches": total,
		"files":         files,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListFileTypes handles the list_file_types tool invocation
func (s *Server) handleListFileTypes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	types, err := s.searcher.ListFileTypes(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list file types", map[string]interface{}{
			"error": err.Error(),
		})
	}

	entries := make([]map[string]interface{}, 0, len(types))
	for _, ft := range types {
		entries = append(entries, map[string]interface{}{
			"name":  ft.Name,
			"globs": ft.Globs,
		})
	}

	response := map[string]interface{}{
		"type_count": len(entries),
		"types":      entries,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleSearchHistory handles the search_history tool invocation
func (s *Server) handleSearchHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		args = map[string]interface{}{}
	}

	limit := getIntDefault(args, "limit", 20)
	if limit < 1 || limit > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	runs, err := s.history.RecentRuns(ctx, limit)
	if err != nil {
		return nil, newMCPError(ErrorCodeHistoryFailed, "failed to read history", map[string]interface{}{
			"error": err.Error(),
		})
	}

	stats, err := s.history.Stats(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeHistoryFailed, "failed to read history stats", map[string]interface{}{
			"error": err.Error(),
		})
	}

	entries := make([]map[string]interface{}, 0, len(runs))
	for _, run := range runs {
		entries = append(entries, map[string]interface{}{
			"pattern":      run.Pattern,
			"path":         run.SearchPath,
			"command_line": run.CommandLine,
			"exit_code":    run.ExitCode,
			"match_count":  run.MatchCount,
			"duration_ms":  run.Duration.Milliseconds(),
			"created_at":   run.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	response := map[string]interface{}{
		"runs": entries,
		"statistics": map[string]interface{}{
			"total_runs":    stats.TotalRuns,
			"total_matches": stats.TotalMatches,
		},
	}
	if !stats.LastRunAt.IsZero() {
		response["statistics"].(map[string]interface{})["last_run_at"] =
			stats.LastRunAt.Format("2006-01-02T15:04:05Z07:00")
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringSlice extracts a string array parameter; non-string elements
// are skipped.
func getStringSlice(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
