// Package render writes trees in human and machine readable forms.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/pathtree/internal/tree"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatYAML, FormatHCL}
}

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Options tune rendering.
type Options struct {
	// Color enables ANSI colors for the text format. Other formats ignore it.
	Color bool
}

// Write renders root to w in the given format.
func Write(w io.Writer, f Format, root *tree.Node, opts Options) error {
	switch f {
	case FormatText:
		return Text(w, root, opts.Color)
	case FormatYAML:
		return YAML(w, root)
	case FormatHCL:
		return HCL(w, root)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}
