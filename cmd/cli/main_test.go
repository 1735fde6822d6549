package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/pathtree/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EndToEnd(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	paths := filepath.Join(dir, "paths.txt")
	rules := filepath.Join(dir, "rules.hcl")
	require.NoError(t, os.WriteFile(paths, []byte("/Request/Date\n/Request/Time\n"), 0o600))
	require.NoError(t, os.WriteFile(rules, []byte(`meta "/Request/Date" { descriptor = "NC||12|M" }`), 0o600))

	out, errW := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(strings.NewReader("/Response#status\n"), out, errW,
		[]string{"--color", "never", "--meta", rules, paths, "-"})

	// --- Assert ---
	require.NoError(t, err)
	expected := strings.Join([]string{
		"/",
		"├── Request",
		"│   ├── Date [string(12) mandatory=M]",
		"│   └── Time",
		"└── Response #status",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestRun_StartupError(t *testing.T) {
	// --- Arrange ---
	// A syntax error in the rules file must fail startup with a clear reason.
	dir := t.TempDir()
	rules := filepath.Join(dir, "rules.hcl")
	require.NoError(t, os.WriteFile(rules, []byte(`meta "/a" {`), 0o600))

	// --- Act ---
	err := run(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--meta", rules, "-"})

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application startup failed")
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	_, ok := err.(*cli.ExitError)
	require.True(t, ok)
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestEnvironMap(t *testing.T) {
	env := environMap([]string{"A=1", "B=x=y", "BROKEN"})
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y"}, env)
}
