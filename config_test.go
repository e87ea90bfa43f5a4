package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	home := t.TempDir()
	rc := `
# octalysis settings
save_directory = ~/charts
locale = RU
theme = Light
confirmations = false
db = ~/data/state.db
debug = true
bogus line
`
	c := parseConfig(strings.NewReader(rc), home)
	assert.Equal(t, filepath.Join(home, "charts"), c.SaveDirectory)
	assert.Equal(t, "ru", c.Locale)
	assert.Equal(t, "light", c.Theme)
	assert.False(t, c.Confirmations)
	assert.True(t, c.Debug)
	assert.Equal(t, filepath.Join(home, "data", "state.db"), c.DatabasePath())
}

func TestConfigDefaults(t *testing.T) {
	home := t.TempDir()
	c := parseConfig(strings.NewReader(""), home)
	assert.Equal(t, "auto", c.Theme)
	assert.True(t, c.Confirmations)
	assert.False(t, c.Debug)
	assert.Equal(t, filepath.Join(home, ".octalysis", "octalysis.db"), c.DatabasePath())
	assert.Equal(t, filepath.Join(home, ".octalysis", "octalysis.log"), c.LogPath())
	path, err := c.GetSavePath("chart.png")
	require.NoError(t, err)
	assert.Equal(t, "chart.png", path)
}

func TestConfigIgnoresUnknownTheme(t *testing.T) {
	c := parseConfig(strings.NewReader("theme = neon"), t.TempDir())
	assert.Equal(t, "auto", c.Theme)
}

func TestGetSavePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	c := &Config{SaveDirectory: dir}
	path, err := c.GetSavePath("chart.svg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chart.svg"), path)
	assert.DirExists(t, dir)

	path, err = c.GetSavePath("/tmp/abs.png")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/abs.png", path)
}

func TestGetSavePathReportsUnusableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	c := &Config{SaveDirectory: filepath.Join(blocker, "exports")}
	_, err := c.GetSavePath("chart.svg")
	assert.ErrorContains(t, err, "create save directory")
}
