package tree

import (
	"github.com/specialistvlad/pathtree/internal/nodemeta"
	"github.com/specialistvlad/pathtree/internal/segment"
)

// Merge applies segments to n depth-first, left to right, and returns the
// resulting tree. n is not modified.
//
// A node segment descends into the first child with the same name, or into a
// new child appended after the existing ones. An attribute segment appends an
// attribute to the current node and the remaining segments keep applying to
// that same node. A repeatable node segment does not allow duplicate
// siblings; it marks the node's metadata with Iteration instead.
func Merge(n *Node, segments []segment.Segment) *Node {
	if len(segments) == 0 {
		return n
	}
	head, rest := segments[0], segments[1:]

	if head.IsAttribute() {
		next := n.clone()
		next.attributes = append(next.attributes, Attribute{Name: head.Name})
		return Merge(next, rest)
	}

	idx := n.index(head.Name)
	var child *Node
	if idx < 0 {
		child = New(head.Name)
	} else {
		child = n.children[idx]
	}
	if head.Iterable {
		child = markIteration(child)
	}
	child = Merge(child, rest)

	next := n.clone()
	if idx < 0 {
		next.children = append(next.children, child)
	} else {
		next.children[idx] = child
	}
	return next
}

func markIteration(n *Node) *Node {
	m, _ := n.Meta()
	if m.Iteration {
		return n
	}
	m.Iteration = true
	return n.withMeta(m)
}

// Decorate returns a tree in which the node addressed by segments carries
// meta. An Iteration mark already present on that node is kept. When no node
// sits at that path, or the path contains an attribute segment, n is returned
// unchanged with false.
func Decorate(n *Node, segments []segment.Segment, meta nodemeta.Meta) (*Node, bool) {
	if len(segments) == 0 {
		if prev, ok := n.Meta(); ok && prev.Iteration {
			meta.Iteration = true
		}
		return n.withMeta(meta), true
	}

	head := segments[0]
	if head.IsAttribute() {
		return n, false
	}
	idx := n.index(head.Name)
	if idx < 0 {
		return n, false
	}
	child, ok := Decorate(n.children[idx], segments[1:], meta)
	if !ok {
		return n, false
	}

	next := n.clone()
	next.children[idx] = child
	return next, true
}
