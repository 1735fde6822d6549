package tree

import (
	"slices"

	"github.com/specialistvlad/pathtree/internal/segment"
)

// Find returns the node addressed by the node segments of a path.
func Find(n *Node, segments []segment.Segment) (*Node, bool) {
	cur := n
	for _, s := range segments {
		if s.IsAttribute() {
			return nil, false
		}
		next, ok := cur.Child(s.Name)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Walk visits n and its descendants in pre-order. depth is 0 for n. Returning
// false from fn skips the children of the visited node.
func Walk(n *Node, fn func(depth int, n *Node) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(int, *Node) bool) {
	if !fn(depth, n) {
		return
	}
	for _, c := range n.children {
		walk(c, depth+1, fn)
	}
}

// Count returns the number of nodes in the tree, n included.
func Count(n *Node) int {
	total := 0
	Walk(n, func(int, *Node) bool {
		total++
		return true
	})
	return total
}

// Depth returns the number of edges on the longest path from n to a leaf.
func Depth(n *Node) int {
	deepest := 0
	Walk(n, func(depth int, _ *Node) bool {
		deepest = max(deepest, depth)
		return true
	})
	return deepest
}

// Equal reports whether two trees have the same structure, names, metadata
// and attributes, in the same order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.name != b.name || !slices.Equal(a.attributes, b.attributes) {
		return false
	}
	am, aok := a.Meta()
	bm, bok := b.Meta()
	if aok != bok || am != bm {
		return false
	}
	return slices.EqualFunc(a.children, b.children, Equal)
}
