package render

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/specialistvlad/pathtree/internal/tree"
)

// YAML writes the tree as a YAML document. Key and sibling order follow the
// tree.
func YAML(w io.Writer, root *tree.Node) error {
	out, err := yaml.Marshal(ToDoc(root).mapSlice())
	if err != nil {
		return fmt.Errorf("failed to encode tree as YAML: %w", err)
	}
	_, err = w.Write(out)
	return err
}
