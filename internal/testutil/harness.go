// Package testutil holds helpers shared by package and CLI tests.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/pathtree/internal/app"
	"github.com/specialistvlad/pathtree/internal/hcl_adapter"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteFiles creates a temporary directory holding the given files, keyed by
// relative path, and returns its root.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

// HarnessResult holds the outcomes of an app run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunApp writes files into a temporary directory, resolves relative Inputs
// and MetaPaths of cfg against it, and runs the app with stdin as "-".
func RunApp(t *testing.T, files map[string]string, stdin string, cfg app.Config) *HarnessResult {
	t.Helper()

	root := WriteFiles(t, files)
	cfg.Inputs = resolve(root, cfg.Inputs)
	cfg.MetaPaths = resolve(root, cfg.MetaPaths)
	if cfg.History == 0 {
		cfg.History = 16
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	appCfg, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	a, err := app.NewApp(strings.NewReader(stdin), out, logs, appCfg, hcl_adapter.NewLoader(nil))
	if err != nil {
		return &HarnessResult{LogOutput: logs.String(), Err: err}
	}

	runErr := a.Run(context.Background())
	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		App:       a,
	}
}

func resolve(root string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "-" || filepath.IsAbs(p) {
			out = append(out, p)
			continue
		}
		out = append(out, filepath.Join(root, p))
	}
	return out
}
