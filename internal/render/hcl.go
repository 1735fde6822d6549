package render

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/pathtree/internal/tree"
	"github.com/zclconf/go-cty/cty"
)

// HCL writes the tree as nested `node "<name>" { ... }` blocks.
func HCL(w io.Writer, root *tree.Node) error {
	f := hclwrite.NewEmptyFile()
	appendNode(f.Body(), ToDoc(root))
	_, err := w.Write(f.Bytes())
	return err
}

func appendNode(body *hclwrite.Body, d Doc) {
	block := body.AppendNewBlock("node", []string{d.Name})
	b := block.Body()

	if m := d.Meta; m != nil {
		if m.Type != "" {
			b.SetAttributeValue("type", cty.StringVal(m.Type))
			b.SetAttributeValue("format", cty.StringVal(m.Format))
		}
		if m.Iteration {
			b.SetAttributeValue("iteration", cty.True)
		}
		if m.Attribute {
			b.SetAttributeValue("attribute", cty.True)
		}
		if m.Mandatory != "" {
			b.SetAttributeValue("mandatory", cty.StringVal(m.Mandatory))
		}
	}
	if len(d.Attributes) > 0 {
		vals := make([]cty.Value, 0, len(d.Attributes))
		for _, a := range d.Attributes {
			vals = append(vals, cty.StringVal(a))
		}
		b.SetAttributeValue("attributes", cty.ListVal(vals))
	}
	for _, c := range d.Children {
		appendNode(b, c)
	}
}
