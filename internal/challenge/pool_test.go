package challenge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Milestone_Go/internal/domain"
)

func TestDefaultPool(t *testing.T) {
	pool := DefaultPool()
	require.Len(t, pool, 8)
	assert.Equal(t, "Tap Master", pool[0].Title)
	assert.Equal(t, "Search Specialist", pool[7].Title)
	for _, tpl := range pool {
		assert.Positive(t, tpl.TargetValue, tpl.Title)
	}
}

func TestLoadPool(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}

	t.Run("empty path uses default", func(t *testing.T) {
		pool, err := LoadPool("")
		require.NoError(t, err)
		assert.Len(t, pool, 8)
	})

	t.Run("custom pool", func(t *testing.T) {
		path := write("ok.json", `{"version":"2","templates":[{"title":"Tap Sprint","description":"Tap 5 times","target_value":5,"reward_points":3}]}`)
		pool, err := LoadPool(path)
		require.NoError(t, err)
		require.Len(t, pool, 1)
		assert.Equal(t, "Tap Sprint", pool[0].Title)
	})

	t.Run("zero target rejected", func(t *testing.T) {
		path := write("bad.json", `{"templates":[{"title":"x","description":"y","target_value":0,"reward_points":1}]}`)
		_, err := LoadPool(path)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("empty pool rejected", func(t *testing.T) {
		path := write("empty.json", `{"templates":[]}`)
		_, err := LoadPool(path)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown field rejected by schema", func(t *testing.T) {
		path := write("extra.json", `{"templates":[{"title":"x","description":"y","target_value":2,"reward_points":1,"bonus":true}]}`)
		_, err := LoadPool(path)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "additionalProperties")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPool(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}
