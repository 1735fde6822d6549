package tree

import (
	"slices"

	"github.com/specialistvlad/pathtree/internal/nodemeta"
)

// RootName is the name given to roots created by NewRoot.
const RootName = "/"

// Attribute is a named leaf fact attached to a node.
type Attribute struct {
	Name string
}

// Node is an immutable tree node. Its name is unique among its siblings.
type Node struct {
	name       string
	meta       *nodemeta.Meta
	attributes []Attribute
	children   []*Node
}

// New creates an empty node without metadata.
func New(name string) *Node {
	return &Node{name: name}
}

// NewRoot creates an empty root named RootName.
func NewRoot() *Node {
	return New(RootName)
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// Meta returns a copy of the node metadata and whether it is present.
func (n *Node) Meta() (nodemeta.Meta, bool) {
	if n.meta == nil {
		return nodemeta.Meta{}, false
	}
	return *n.meta, true
}

// Attributes returns a copy of the attribute list in insertion order.
func (n *Node) Attributes() []Attribute {
	return slices.Clone(n.attributes)
}

// NumAttributes returns the number of attributes.
func (n *Node) NumAttributes() int {
	return len(n.attributes)
}

// Children returns a copy of the child list in insertion order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the first child with the given name.
func (n *Node) Child(name string) (*Node, bool) {
	if i := n.index(name); i >= 0 {
		return n.children[i], true
	}
	return nil, false
}

func (n *Node) index(name string) int {
	return slices.IndexFunc(n.children, func(c *Node) bool { return c.name == name })
}

// clone returns a shallow copy whose slices no longer alias the original.
// Children are shared.
func (n *Node) clone() *Node {
	return &Node{
		name:       n.name,
		meta:       n.meta,
		attributes: slices.Clone(n.attributes),
		children:   slices.Clone(n.children),
	}
}

func (n *Node) withMeta(m nodemeta.Meta) *Node {
	next := n.clone()
	next.meta = &m
	return next
}
