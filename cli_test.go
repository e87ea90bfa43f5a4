package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--db", db, "--locale", "en", "--debug=false"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCLISetSummaryReset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "octalysis.db")

	out, err := runCLI(t, db, "set", "scarcity", "80.4", "--note", "limited drops", "--name", "Shop")
	require.NoError(t, err)
	assert.Equal(t, "scarcity = 80\n", out)

	out, err = runCLI(t, db, "summary", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "# Shop")
	assert.Contains(t, out, "| Scarcity | 80 |")
	assert.Contains(t, out, "limited drops")

	_, err = runCLI(t, db, "reset")
	require.NoError(t, err)
	out, err = runCLI(t, db, "summary", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "| Scarcity | 50 |")
	assert.Contains(t, out, "# Untitled project")
}

func TestCLISetRejectsUnknownDriver(t *testing.T) {
	db := filepath.Join(t.TempDir(), "octalysis.db")
	_, err := runCLI(t, db, "set", "fun", "10")
	assert.ErrorContains(t, err, "unknown driver")

	_, err = runCLI(t, db, "set", "scarcity", "lots")
	assert.ErrorContains(t, err, "invalid value")
}

func TestCLIExport(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "octalysis.db")
	target := filepath.Join(dir, "chart.svg")

	out, err := runCLI(t, db, "export", "-o", target, "--theme", "light")
	require.NoError(t, err)
	assert.Equal(t, target+"\n", out)
	assert.FileExists(t, target)

	txt := filepath.Join(dir, "chart.out")
	_, err = runCLI(t, db, "export", "-f", "txt", "-o", txt)
	require.NoError(t, err)
	assert.FileExists(t, txt)

	_, err = runCLI(t, db, "export", "-f", "pdf", "-o", txt)
	assert.Error(t, err)
}
