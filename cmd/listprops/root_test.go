package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/listprops/internal/config"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvSchema, "")

	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestHelp(t *testing.T) {
	for _, args := range [][]string{nil, {"-h"}, {"-?"}, {"-H", "-l"}} {
		out := execute(t, args...)
		assert.True(t, strings.HasPrefix(out, helpText), "args %v", args)
		assert.Contains(t, out, versionLine())
	}
}

func TestLicense(t *testing.T) {
	out := execute(t, "-L", "ignored.txt")
	assert.Equal(t, licenseText+"\n", out)
}

func TestListing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	out := execute(t, "-c", "-f", path, filepath.Join(dir, "*.none"))

	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, path, lines[0])
	assert.Contains(t, out, "   SI-V System.ItemNameDisplay:")
	assert.Contains(t, out, "no matching files")
}

func TestListingBadOverlay(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvSchema, filepath.Join(t.TempDir(), "missing.yaml"))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"x"})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "missing.yaml")
}
