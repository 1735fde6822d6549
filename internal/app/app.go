package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/specialistvlad/pathtree/internal/config"
	"github.com/specialistvlad/pathtree/internal/ctxlog"
	"github.com/specialistvlad/pathtree/internal/history"
	"github.com/specialistvlad/pathtree/internal/nodemeta"
	"github.com/specialistvlad/pathtree/internal/segment"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in      io.Reader
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	rules   []*metaRule
	history *history.Store
	color   bool
}

// metaRule is a loaded rule with its path and descriptor already decoded.
type metaRule struct {
	config.MetaRule
	path    []segment.Segment
	meta    nodemeta.Meta
	matched bool
}

// NewApp is the constructor for the main application. Logs go to logW, the
// rendered tree to outW. stdin backs the "-" input.
func NewApp(stdin io.Reader, outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	if err != nil {
		return nil, err
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var rules []*metaRule
	if len(cfg.MetaPaths) > 0 {
		model, err := loader.Load(ctx, cfg.MetaPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load metadata rules: %w", err)
		}
		if rules, err = compileRules(model); err != nil {
			return nil, err
		}
		logger.Debug("Metadata rules loaded.", "count", len(rules))
	}

	store, err := history.New(cfg.History)
	if err != nil {
		return nil, err
	}

	return &App{
		in:      stdin,
		outW:    outW,
		logger:  logger,
		config:  cfg,
		rules:   rules,
		history: store,
		color:   useColor(cfg.Color, outW),
	}, nil
}

// History returns the revision store. This is primarily for testing.
func (a *App) History() *history.Store {
	return a.history
}

func compileRules(model *config.Model) ([]*metaRule, error) {
	rules := make([]*metaRule, 0, len(model.Rules))
	for _, r := range model.Rules {
		meta, err := nodemeta.Parse(r.Descriptor)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Source, err)
		}
		path := segment.ParseLine(r.Path)
		for _, s := range path {
			if s.IsAttribute() {
				return nil, fmt.Errorf("%s: meta path %q must address a node, not an attribute", r.Source, r.Path)
			}
		}
		rules = append(rules, &metaRule{MetaRule: r, path: path, meta: meta})
	}
	return rules, nil
}

// useColor resolves a color mode against the output writer.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
