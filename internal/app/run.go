package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/pathtree/internal/ctxlog"
	"github.com/specialistvlad/pathtree/internal/importer"
	"github.com/specialistvlad/pathtree/internal/render"
	"github.com/specialistvlad/pathtree/internal/tree"
)

// Run imports every configured input in order and renders the resulting tree.
// Each input becomes one history revision; revision 0 is the empty root.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "inputs", len(a.config.Inputs))

	root := tree.New(a.config.RootName)
	prevRev := a.history.Record(root)

	for _, input := range a.config.Inputs {
		next, err := a.importInput(ctx, root, input)
		if err != nil {
			if next != root {
				rev := a.history.Record(next)
				a.logger.Error("Import failed, partial tree kept in history.",
					"input", input, "revision", rev, "nodes", tree.Count(next))
			} else {
				a.logger.Error("Import failed before any line was merged.", "input", input)
			}
			return fmt.Errorf("failed to import %s: %w", input, err)
		}

		next = a.decorate(ctx, next)
		rev := a.history.Record(next)
		a.logger.Info("Input imported.", "input", input, "revision", rev, "nodes", tree.Count(next), "depth", tree.Depth(next))

		if a.config.Diff {
			if err := a.writeDiff(input, prevRev, rev); err != nil {
				return err
			}
		}
		root, prevRev = next, rev
	}

	for _, r := range a.rules {
		if !r.matched {
			a.logger.Warn("Metadata rule did not match any node.", "path", r.Path, "source", r.Source)
		}
	}

	if err := render.Write(a.outW, a.config.Format, root, render.Options{Color: a.color}); err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// importInput folds one input into root. On failure the partial tree is
// returned alongside the error.
func (a *App) importInput(ctx context.Context, root *tree.Node, input string) (*tree.Node, error) {
	logger := ctxlog.FromContext(ctx).With("input", input)

	var r io.Reader
	if input == "-" {
		r = a.in
	} else {
		f, err := os.Open(input)
		if err != nil {
			return root, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	im := importer.Importer{
		OnMerge: func(line int, text string, _ *tree.Node) {
			logger.Debug("Merged path line.", "line", line, "path", text)
		},
	}
	return im.ImportLines(root, importer.Lines(r))
}

// decorate applies every metadata rule whose node exists in root.
func (a *App) decorate(ctx context.Context, root *tree.Node) *tree.Node {
	logger := ctxlog.FromContext(ctx)
	for _, r := range a.rules {
		next, ok := tree.Decorate(root, r.path, r.meta)
		if !ok {
			continue
		}
		if !r.matched {
			logger.Debug("Metadata rule applied.", "path", r.Path, "meta", r.meta.String())
		}
		r.matched = true
		root = next
	}
	return root
}

func (a *App) writeDiff(input string, fromRev, toRev int) error {
	before, ok := a.history.Get(fromRev)
	if !ok {
		return fmt.Errorf("revision %d is no longer in history", fromRev)
	}
	after, _ := a.history.Get(toRev)

	fmt.Fprintf(a.outW, "# %s (revision %d -> %d)\n", input, fromRev, toRev)
	if _, err := render.Diff(a.outW, before, after); err != nil {
		return fmt.Errorf("failed to diff revisions: %w", err)
	}
	return nil
}
