package mcp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("creates all components", func(t *testing.T) {
		tmpDir := t.TempDir()

		srv, err := NewServer(Config{StateDir: tmpDir, RgBinary: "sh"})
		require.NoError(t, err)
		defer srv.history.Close()

		assert.NotNil(t, srv.mcp, "MCP server should be initialized")
		assert.NotNil(t, srv.history, "history store should be initialized")
		assert.NotNil(t, srv.searcher, "searcher should be initialized")
	})

	t.Run("creates state directory and database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "nested", "state")

		srv, err := NewServer(Config{StateDir: tmpDir, RgBinary: "sh"})
		require.NoError(t, err)
		defer srv.history.Close()

		info, err := os.Stat(tmpDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		_, err = os.Stat(filepath.Join(tmpDir, "history.db"))
		assert.NoError(t, err)
	})

	t.Run("fails fast when binary is missing", func(t *testing.T) {
		_, err := NewServer(Config{
			StateDir: t.TempDir(),
			RgBinary: "definitely-not-a-real-binary",
		})
		require.Error(t, err)
	})
}

func TestExpandStateDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty uses default", in: "", want: filepath.Join(home, ".grippy")},
		{name: "bare tilde", in: "~", want: home},
		{name: "tilde prefix", in: "~/state", want: filepath.Join(home, "state")},
		{name: "absolute untouched", in: "/var/lib/grippy", want: "/var/lib/grippy"},
		{name: "relative untouched", in: "state", want: "state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandStateDir(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
