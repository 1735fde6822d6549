// Package history keeps a bounded, thread-safe record of tree revisions.
//
// Every recorded tree is an immutable snapshot, so the store can hand the same
// value to any number of readers. When the capacity is reached the oldest
// revision is evicted.
package history
