package history

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/specialistvlad/pathtree/internal/tree"
)

// Store maps revision numbers to tree snapshots. Revisions are assigned in
// recording order starting at 0.
type Store struct {
	mu    sync.Mutex
	next  int
	cache *lru.Cache[int, *tree.Node]
}

// New creates a store that retains at most capacity revisions.
func New(capacity int) (*Store, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("history capacity must be at least 1, got %d", capacity)
	}
	cache, err := lru.New[int, *tree.Node](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache}, nil
}

// Record stores root as the next revision and returns its number.
func (s *Store) Record(root *tree.Node) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	rev := s.next
	s.next++
	s.cache.Add(rev, root)
	return rev
}

// Get retrieves a revision. Evicted and unknown revisions report false.
// Lookups do not refresh recency, so eviction stays oldest-first.
func (s *Store) Get(rev int) (*tree.Node, bool) {
	return s.cache.Peek(rev)
}

// Latest returns the most recently recorded revision.
func (s *Store) Latest() (int, *tree.Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next == 0 {
		return 0, nil, false
	}
	rev := s.next - 1
	root, ok := s.cache.Peek(rev)
	return rev, root, ok
}

// Revisions lists the retained revision numbers, oldest first.
func (s *Store) Revisions() []int {
	return s.cache.Keys()
}

// Len returns the number of retained revisions.
func (s *Store) Len() int {
	return s.cache.Len()
}
