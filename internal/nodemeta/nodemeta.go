// Package nodemeta classifies pipe-delimited node descriptors into typed
// node metadata.
//
// A descriptor has exactly four fields, `TYPE|FLAG|FORMAT|MANDATORY`, e.g.
// `NC||12|M`. TYPE selects the value kind, FORMAT is carried along with it and
// MANDATORY is stored verbatim. FLAG is accepted but not interpreted.
package nodemeta

import (
	"fmt"
	"strings"
)

// Delimiter separates descriptor fields.
const Delimiter = "|"

// fieldCount is the exact number of fields a descriptor must carry.
const fieldCount = 4

// Kind is the value kind of a node. KindNone means the type is absent.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindCurrency
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindCurrency:
		return "currency"
	default:
		return "none"
	}
}

// ValueType is the typed part of the metadata. Format is meaningless when
// Kind is KindNone.
type ValueType struct {
	Kind   Kind
	Format string
}

// IsAbsent reports whether no type was classified.
func (t ValueType) IsAbsent() bool {
	return t.Kind == KindNone
}

// String renders the type as `kind(format)`, or an empty string when absent.
func (t ValueType) String() string {
	if t.IsAbsent() {
		return ""
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Format)
}

// Meta is the metadata attached to a node.
type Meta struct {
	Type ValueType
	// Iteration marks a repeatable node.
	Iteration bool
	// Attribute is reserved.
	Attribute bool
	// Mandatory is a caller-defined tag.
	Mandatory string
}

// String renders a compact summary used by the renderers.
func (m Meta) String() string {
	var parts []string
	if !m.Type.IsAbsent() {
		parts = append(parts, m.Type.String())
	}
	if m.Iteration {
		parts = append(parts, "iteration")
	}
	if m.Attribute {
		parts = append(parts, "attribute")
	}
	if m.Mandatory != "" {
		parts = append(parts, "mandatory="+m.Mandatory)
	}
	return strings.Join(parts, " ")
}

// FormatError is returned when a descriptor does not split into exactly four
// fields.
type FormatError struct {
	Descriptor string
	Fields     int
}

// Error implements the error interface for FormatError.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid node descriptor %q: expected %d %q-separated fields, got %d",
		e.Descriptor, fieldCount, Delimiter, e.Fields)
}

// Parse classifies a descriptor string.
func Parse(descriptor string) (Meta, error) {
	fields := strings.Split(descriptor, Delimiter)
	if len(fields) != fieldCount {
		return Meta{}, &FormatError{Descriptor: descriptor, Fields: len(fields)}
	}

	typeName, format, mandatory := fields[0], fields[2], fields[3]
	return Meta{
		Type:      classify(typeName, format),
		Mandatory: mandatory,
	}, nil
}

func classify(typeName, format string) ValueType {
	switch typeName {
	case "NC", "C":
		return ValueType{Kind: KindString, Format: format}
	case "BigDecimal", "Currency":
		return ValueType{Kind: KindCurrency, Format: format}
	default:
		return ValueType{}
	}
}
