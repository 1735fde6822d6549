package history

import (
	"sync"
	"testing"

	"github.com/specialistvlad/pathtree/internal/segment"
	"github.com/specialistvlad/pathtree/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RecordAndGet(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	_, _, ok := s.Latest()
	assert.False(t, ok)

	r0 := tree.NewRoot()
	r1 := tree.Merge(r0, segment.ParseLine("/a"))

	assert.Equal(t, 0, s.Record(r0))
	assert.Equal(t, 1, s.Record(r1))

	got, ok := s.Get(0)
	require.True(t, ok)
	assert.Same(t, r0, got)
	assert.Zero(t, got.Len(), "older snapshot must stay untouched")

	rev, latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, 1, rev)
	assert.Same(t, r1, latest)

	_, ok = s.Get(7)
	assert.False(t, ok)
}

func TestStore_EvictsOldest(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)

	root := tree.NewRoot()
	for _, line := range []string{"/a", "/b", "/c"} {
		root = tree.Merge(root, segment.ParseLine(line))
		s.Record(root)
	}
	// Reading revision 1 must not protect it from eviction.
	_, _ = s.Get(1)
	root = tree.Merge(root, segment.ParseLine("/d"))
	s.Record(root)

	assert.Equal(t, []int{2, 3}, s.Revisions())
	assert.Equal(t, 2, s.Len())
	_, ok := s.Get(0)
	assert.False(t, ok)
}

func TestStore_InvalidCapacity(t *testing.T) {
	_, err := New(0)
	require.Error(t, err)
}

func TestStore_ConcurrentRecord(t *testing.T) {
	s, err := New(128)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Record(tree.NewRoot())
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, s.Len())
	rev, _, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, 99, rev)
}
