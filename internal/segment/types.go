// internal/segment/types.go
package segment

// Kind tags the variant of a Segment. The set is closed.
type Kind int

const (
	// NodeKind references a child node by name.
	NodeKind Kind = iota
	// AttributeKind references an attribute of the current node.
	AttributeKind
)

// String returns a short name for the kind.
func (k Kind) String() string {
	if k == AttributeKind {
		return "attribute"
	}
	return "node"
}

const (
	// Separator splits a path line into tokens.
	Separator = "/"
	// AttributeMarker prefixes an attribute token.
	AttributeMarker = "#"
	// RepeatableMarker suffixes a repeatable node token.
	RepeatableMarker = "[]"
)

// Segment is a single parsed unit of a path.
type Segment struct {
	Kind Kind
	Name string
	// Iterable is only meaningful for NodeKind.
	Iterable bool
}

// Node creates a plain node segment.
func Node(name string) Segment {
	return Segment{Kind: NodeKind, Name: name}
}

// Repeatable creates a node segment carrying the repeatable marker.
func Repeatable(name string) Segment {
	return Segment{Kind: NodeKind, Name: name, Iterable: true}
}

// Attribute creates an attribute segment.
func Attribute(name string) Segment {
	return Segment{Kind: AttributeKind, Name: name}
}

// IsAttribute reports whether the segment references an attribute.
func (s Segment) IsAttribute() bool {
	return s.Kind == AttributeKind
}

// String serializes the segment back into its token form.
func (s Segment) String() string {
	switch {
	case s.Kind == AttributeKind:
		return AttributeMarker + s.Name
	case s.Iterable:
		return s.Name + RepeatableMarker
	default:
		return s.Name
	}
}
