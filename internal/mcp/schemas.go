package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchTool returns the tool definition for search
func searchTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search",
		Description: "Search file contents with ripgrep and return structured matches",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"pattern": map[string]interface{}{
					"type":        "string",
					"description": "Regular expression to search for (rg syntax)",
				},
				"paths": map[string]interface{}{
					"type":        "array",
					"description": "Files or directories to search (default: current directory)",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"ignore_case": map[string]interface{}{
					"type":        "boolean",
					"description": "Case insensitive search (--ignore-case)",
					"default":     false,
				},
				"smart_case": map[string]interface{}{
					"type":        "boolean",
					"description": "Case insensitive unless the pattern has uppercase (--smart-case)",
					"default":     false,
				},
				"fixed_strings": map[string]interface{}{
					"type":        "boolean",
					"description": "Treat the pattern as a literal string (--fixed-strings)",
					"default":     false,
				},
				"word_regexp": map[string]interface{}{
					"type":        "boolean",
					"description": "Only match at word boundaries (--word-regexp)",
					"default":     false,
				},
				"multiline": map[string]interface{}{
					"type":        "boolean",
					"description": "Allow matches to span lines (--multiline)",
					"default":     false,
				},
				"hidden": map[string]interface{}{
					"type":        "boolean",
					"description": "Search hidden files and directories (--hidden)",
					"default":     false,
				},
				"no_ignore": map[string]interface{}{
					"type":        "boolean",
					"description": "Ignore .gitignore and friends (--no-ignore)",
					"default":     false,
				},
				"globs": map[string]interface{}{
					"type":        "array",
					"description": "Include/exclude globs, ! prefix excludes (--glob)",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"types": map[string]interface{}{
					"type":        "array",
					"description": "Only search these rg file types (--type)",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"context": map[string]interface{}{
					"type":        "integer",
					"description": "Lines of context around each match (--context)",
					"default":     0,
				},
				"max_count": map[string]interface{}{
					"type":        "integer",
					"description": "Stop after this many matches per file (--max-count)",
					"default":     0,
				},
				"use_cache": map[string]interface{}{
					"type":        "boolean",
					"description": "Serve repeated identical requests from a short-lived cache",
					"default":     true,
				},
			},
			Required: []string{"pattern"},
		},
	}
}

// countMatchesTool returns the tool definition for count_matches
func countMatchesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "count_matches",
		Description: "Count ripgrep matches per file without returning match content",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"pattern": map[string]interface{}{
					"type":        "string",
					"description": "Regular expression to count (rg syntax)",
				},
				"paths": map[string]interface{}{
					"type":        "array",
					"description": "Files or directories to search (default: current directory)",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"ignore_case": map[string]interface{}{
					"type":        "boolean",
					"description": "Case insensitive search (--ignore-case)",
					"default":     false,
				},
				"globs": map[string]interface{}{
					"type":        "array",
					"description": "Include/exclude globs, ! prefix excludes (--glob)",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
			},
			Required: []string{"pattern"},
		},
	}
}

// listFileTypesTool returns the tool definition for list_file_types
func listFileTypesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_file_types",
		Description: "List the file types ripgrep supports and their globs",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// searchHistoryTool returns the tool definition for search_history
func searchHistoryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_history",
		Description: "Show recent recorded searches and aggregate statistics",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of runs to return (1-100)",
					"default":     20,
					"minimum":     1,
					"maximum":     100,
				},
			},
		},
	}
}
