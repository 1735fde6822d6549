package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFiles(t *testing.T) {
	// --- Arrange ---
	root := t.TempDir()
	for _, name := range []string{"a.hcl", "nested/b.hcl", "nested/deeper/c.hcl", "nested/skip.txt"} {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}

	// --- Act ---
	files, err := FindFiles(".hcl", root, filepath.Join(root, "a.hcl"), filepath.Join(root, "missing"))

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "nested", "b.hcl"),
		filepath.Join(root, "nested", "deeper", "c.hcl"),
	}, files)
}

func TestFindFiles_SingleFileWrongExtension(t *testing.T) {
	p := filepath.Join(t.TempDir(), "rules.txt")
	require.NoError(t, os.WriteFile(p, nil, 0o644))

	files, err := FindFiles(".hcl", p)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFiles_EmptyExtensionPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFiles("", ".") })
}
