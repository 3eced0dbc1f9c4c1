package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ddz.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	c, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.NoError(t, c.Validate())
	assert.True(t, c.Parallel())
	assert.True(t, c.Color())
	assert.True(t, c.ShowSuit())
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
deck {
  hand_size = 20
  seed      = 42
}

finder {
  parallel = false
  workers  = 8
}

log {
  level  = "debug"
  format = "json"
}

render {
  color = false
}
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, 20, c.Deck.HandSize)
	assert.Equal(t, int64(42), c.Deck.Seed)
	assert.False(t, c.Parallel())
	assert.Equal(t, 8, c.Finder.Workers)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.False(t, c.Color())
	assert.True(t, c.ShowSuit())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()
	c, err := Load(writeConfig(t, "log {\n  level = \"warn\"\n}\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, DefaultFormat, c.Log.Format)
	assert.Equal(t, DefaultHandSize, c.Deck.HandSize)
	assert.Equal(t, DefaultWorkers, c.Finder.Workers)
	assert.True(t, c.Parallel())
}

func TestLoadFinderBlockWithoutParallelStaysParallel(t *testing.T) {
	t.Parallel()
	c, err := Load(writeConfig(t, "finder {\n  workers = 8\n}\n"))
	require.NoError(t, err)

	assert.Equal(t, 8, c.Finder.Workers)
	assert.True(t, c.Parallel())
}

func TestLoadRejectsBadHCL(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "deck {"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "deck {\n  hand_size = \"many\"\n}\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "table \"main\" {}\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"whole deck", func(c *Config) { c.Deck.HandSize = 54 }, true},
		{"hand too large", func(c *Config) { c.Deck.HandSize = 55 }, false},
		{"hand too small", func(c *Config) { c.Deck.HandSize = -1 }, false},
		{"no workers", func(c *Config) { c.Finder.Workers = 0 }, false},
		{"unknown level", func(c *Config) { c.Log.Level = "chatty" }, false},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if tt.ok {
				assert.NoError(t, c.Validate())
			} else {
				assert.Error(t, c.Validate())
			}
		})
	}
}
