// internal/segment/parser.go
package segment

import (
	"strings"
)

// Parse decodes one already-split token. Rules are checked in order: the
// attribute marker prefix, then the repeatable suffix, then a plain node.
func Parse(token string) Segment {
	if name, ok := strings.CutPrefix(token, AttributeMarker); ok {
		return Attribute(name)
	}
	if name, ok := strings.CutSuffix(token, RepeatableMarker); ok {
		return Repeatable(name)
	}
	return Node(token)
}

// Tokenize splits a path line into raw tokens. Attribute markers glued to a
// node token (`Request#id`) start a token of their own. The leading root token
// is kept; empty tokens are kept as well so callers see the raw shape.
func Tokenize(line string) []string {
	var tokens []string
	for _, part := range strings.Split(line, Separator) {
		tokens = append(tokens, splitAttributes(part)...)
	}
	return tokens
}

// splitAttributes cuts a token before every attribute marker that is not its
// first character.
func splitAttributes(part string) []string {
	var out []string
	for {
		idx := strings.Index(part[min(1, len(part)):], AttributeMarker)
		if idx < 0 {
			return append(out, part)
		}
		idx++
		out = append(out, part[:idx])
		part = part[idx:]
	}
}

// ParseLine tokenizes a full path line and decodes every token. The first
// token is the implicit root and is discarded, as are empty tokens produced by
// doubled or trailing separators.
func ParseLine(line string) []Segment {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil
	}

	segments := make([]Segment, 0, len(tokens)-1)
	for _, token := range tokens[1:] {
		if token == "" {
			continue
		}
		segments = append(segments, Parse(token))
	}
	return segments
}

// Format renders segments as a canonical path line rooted at Separator.
func Format(segments []Segment) string {
	var sb strings.Builder
	for i, s := range segments {
		if i == 0 || !s.IsAttribute() {
			sb.WriteString(Separator)
		}
		sb.WriteString(s.String())
	}
	if sb.Len() == 0 {
		return Separator
	}
	return sb.String()
}
