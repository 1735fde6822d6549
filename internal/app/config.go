package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/pathtree/internal/render"
)

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Inputs    []string // path files, "-" for stdin
	MetaPaths []string // hcl files or directories

	Format   render.Format
	RootName string
	Color    string
	Diff     bool
	History  int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("at least one input is required")
	}
	if cfg.RootName == "" {
		cfg.RootName = "/"
	}
	if cfg.Format == "" {
		cfg.Format = render.FormatText
	}
	if _, err := render.ParseFormat(string(cfg.Format)); err != nil {
		return nil, err
	}

	switch cfg.Color {
	case "":
		cfg.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("invalid color mode %q: must be 'auto', 'always' or 'never'", cfg.Color)
	}

	if cfg.History < 1 {
		return nil, fmt.Errorf("history must keep at least 1 revision, got %d", cfg.History)
	}
	if cfg.Diff && cfg.History < 2 {
		return nil, errors.New("diff output needs a history of at least 2 revisions")
	}

	stdinCount := 0
	for _, in := range cfg.Inputs {
		if in == "-" {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return nil, errors.New("stdin ('-') can only be given once")
	}

	return &cfg, nil
}
