package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	type pool struct {
		Version string `json:"version"`
		Count   int    `json:"count"`
	}

	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "pool.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		return path
	}

	t.Run("loads valid JSON file", func(t *testing.T) {
		var got pool
		require.NoError(t, LoadJSON(write(t, `{"version":"1.0","count":8}`), &got))
		assert.Equal(t, pool{Version: "1.0", Count: 8}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		var got pool
		err := LoadJSON(filepath.Join(t.TempDir(), "absent.json"), &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read ")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		var got pool
		err := LoadJSON(write(t, `{"version":`), &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode ")
	})
}
