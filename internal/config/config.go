package config

import (
	"context"
	"fmt"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given files or directories and
	// translates it into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Model is the unified representation of all loaded metadata rules.
type Model struct {
	Rules []MetaRule
}

// MetaRule attaches the metadata described by Descriptor to the node at Path.
type MetaRule struct {
	Path       string
	Descriptor string
	// Source points at the definition, e.g. `meta.hcl:3,1-20`.
	Source string
}

// String implements fmt.Stringer for log output.
func (r MetaRule) String() string {
	return fmt.Sprintf("%s => %q (%s)", r.Path, r.Descriptor, r.Source)
}
