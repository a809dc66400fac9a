package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"github.com/nreed/grippy/internal/history"
	"github.com/nreed/grippy/internal/searcher"
	"github.com/nreed/grippy/pkg/rg"
)

const (
	// ServerName is the MCP server name
	ServerName = "grippy"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultStateDir is the default location for the history database
	DefaultStateDir = "~/.grippy"
)

// Config configures the server.
type Config struct {
	// StateDir holds the history database; a leading ~ is expanded.
	StateDir string
	// RgBinary overrides the rg executable name or path.
	RgBinary string
}

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	history  history.Store
	searcher *searcher.Searcher
}

// NewServer creates a new MCP server instance. It fails fast when the rg
// binary cannot be found: a search server without its search tool is not
// worth starting.
func NewServer(cfg Config) (*Server, error) {
	binary := cfg.RgBinary
	if binary == "" {
		binary = rg.DefaultBinary
	}
	if _, err := rg.New("", ".", rg.WithBinary(binary)); err != nil {
		return nil, err
	}

	stateDir, err := expandStateDir(cfg.StateDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	store, err := history.NewSQLiteStore(filepath.Join(stateDir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize history store: %w", err)
	}

	srch := searcher.New(searcher.Config{
		Binary:  cfg.RgBinary,
		History: store,
	})

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:      mcpServer,
		history:  store,
		searcher: srch,
	}

	s.registerTools()
	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.history.Close() }()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(searchTool(), s.handleSearch)
	s.mcp.AddTool(countMatchesTool(), s.handleCountMatches)
	s.mcp.AddTool(listFileTypesTool(), s.handleListFileTypes)
	s.mcp.AddTool(searchHistoryTool(), s.handleSearchHistory)
}

func expandStateDir(dir string) (string, error) {
	if dir == "" {
		dir = DefaultStateDir
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if dir == "~" {
			return home, nil
		}
		return filepath.Join(home, dir[2:]), nil
	}
	return dir, nil
}
