// Package tree implements the path-driven hierarchical tree and the pure merge
// operation that folds parsed path segments into it.
//
// Trees are persistent values. A Node is never changed after construction:
// Merge and Decorate build new nodes along the touched path and share every
// untouched subtree with the input, so earlier roots stay valid snapshots.
package tree
