package render

import (
	"github.com/goccy/go-yaml"
	"github.com/specialistvlad/pathtree/internal/nodemeta"
	"github.com/specialistvlad/pathtree/internal/tree"
)

// Doc is a plain, exported mirror of a tree node.
type Doc struct {
	Name       string
	Meta       *MetaDoc
	Attributes []string
	Children   []Doc
}

// MetaDoc mirrors nodemeta.Meta with display-friendly values.
type MetaDoc struct {
	Type      string
	Format    string
	Iteration bool
	Attribute bool
	Mandatory string
}

// ToDoc converts a tree into its Doc mirror.
func ToDoc(n *tree.Node) Doc {
	d := Doc{Name: n.Name()}
	if m, ok := n.Meta(); ok {
		d.Meta = toMetaDoc(m)
	}
	for _, a := range n.Attributes() {
		d.Attributes = append(d.Attributes, a.Name)
	}
	for _, c := range n.Children() {
		d.Children = append(d.Children, ToDoc(c))
	}
	return d
}

func toMetaDoc(m nodemeta.Meta) *MetaDoc {
	md := &MetaDoc{
		Iteration: m.Iteration,
		Attribute: m.Attribute,
		Mandatory: m.Mandatory,
	}
	if !m.Type.IsAbsent() {
		md.Type = m.Type.Kind.String()
		md.Format = m.Type.Format
	}
	return md
}

// mapSlice converts a Doc into an ordered YAML mapping. Empty parts are left
// out so leaves stay short.
func (d Doc) mapSlice() yaml.MapSlice {
	ms := yaml.MapSlice{{Key: "name", Value: d.Name}}
	if d.Meta != nil {
		ms = append(ms, yaml.MapItem{Key: "meta", Value: d.Meta.mapSlice()})
	}
	if len(d.Attributes) > 0 {
		ms = append(ms, yaml.MapItem{Key: "attributes", Value: d.Attributes})
	}
	if len(d.Children) > 0 {
		children := make([]yaml.MapSlice, 0, len(d.Children))
		for _, c := range d.Children {
			children = append(children, c.mapSlice())
		}
		ms = append(ms, yaml.MapItem{Key: "children", Value: children})
	}
	return ms
}

func (m *MetaDoc) mapSlice() yaml.MapSlice {
	var ms yaml.MapSlice
	if m.Type != "" {
		ms = append(ms,
			yaml.MapItem{Key: "type", Value: m.Type},
			yaml.MapItem{Key: "format", Value: m.Format},
		)
	}
	if m.Iteration {
		ms = append(ms, yaml.MapItem{Key: "iteration", Value: true})
	}
	if m.Attribute {
		ms = append(ms, yaml.MapItem{Key: "attribute", Value: true})
	}
	if m.Mandatory != "" {
		ms = append(ms, yaml.MapItem{Key: "mandatory", Value: m.Mandatory})
	}
	return ms
}
