package nodestore

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(s *Store[int, string]) []int {
	var out []int
	for h := range s.All() {
		out = append(out, s.Key(h))
	}
	return out
}

func TestStore_PushBackAndTraverse(t *testing.T) {
	s := New[int, string]()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, End, s.Begin())

	h1 := s.PushBack(1, "a")
	h2 := s.PushBack(2, "b")
	h3 := s.PushBack(3, "c")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{1, 2, 3}, keys(s))
	assert.Equal(t, h1, s.Begin())
	assert.Equal(t, h2, s.Next(h1))
	assert.Equal(t, End, s.Next(h3))
	assert.Equal(t, h3, s.Prev(End))
	assert.Equal(t, End, s.Prev(h1))
	assert.Equal(t, "b", s.Value(h2))
}

func TestStore_InsertBefore(t *testing.T) {
	s := New[int, string]()
	h3 := s.PushBack(3, "")
	h1 := s.InsertBefore(h3, 1, "")
	s.InsertBefore(h3, 2, "")
	s.InsertBefore(End, 4, "")

	assert.Equal(t, []int{1, 2, 3, 4}, keys(s))
	assert.Equal(t, h1, s.Begin())
}

func TestStore_EraseKeepsOtherHandles(t *testing.T) {
	s := New[int, string]()
	hs := make([]Handle, 5)
	for i := range hs {
		hs[i] = s.PushBack(i, "v")
	}

	next := s.Erase(hs[2])
	assert.Equal(t, hs[3], next)
	assert.False(t, s.Contains(hs[2]))
	assert.Equal(t, []int{0, 1, 3, 4}, keys(s))

	for _, i := range []int{0, 1, 3, 4} {
		require.True(t, s.Contains(hs[i]))
		assert.Equal(t, i, s.Key(hs[i]))
	}
}

func TestStore_SlotReuseInvalidatesStaleHandle(t *testing.T) {
	s := New[int, string]()
	old := s.PushBack(1, "old")
	s.Erase(old)

	fresh := s.PushBack(2, "fresh")
	assert.Equal(t, old.Slot(), fresh.Slot(), "lowest free slot is reused")
	assert.NotEqual(t, old, fresh)
	assert.False(t, s.Contains(old))
	assert.True(t, s.Contains(fresh))
	assert.Panics(t, func() { s.Key(old) })
}

func TestStore_EraseRange(t *testing.T) {
	s := New[int, string]()
	var hs []Handle
	for i := 0; i < 6; i++ {
		hs = append(hs, s.PushBack(i, ""))
	}

	last := s.EraseRange(hs[1], hs[4])
	assert.Equal(t, hs[4], last)
	assert.Equal(t, []int{0, 4, 5}, keys(s))
	assert.Equal(t, 3, s.Len())

	assert.Equal(t, End, s.EraseRange(s.Begin(), End))
	assert.Equal(t, 0, s.Len())
}

func TestStore_Splice(t *testing.T) {
	s := New[int, string]()
	var hs []Handle
	for i := 0; i < 6; i++ {
		hs = append(hs, s.PushBack(i, ""))
	}

	// Move [1,3) to the back.
	s.Splice(End, hs[1], hs[3])
	assert.Equal(t, []int{0, 3, 4, 5, 1, 2}, keys(s))

	// Move [4,end) in front of 0.
	s.Splice(hs[0], hs[4], hs[1])
	assert.Equal(t, []int{4, 5, 0, 3, 1, 2}, keys(s))

	// Handles survive the moves.
	for i, h := range hs {
		assert.Equal(t, i, s.Key(h))
	}

	// No-ops.
	s.Splice(hs[3], hs[3], hs[3])
	s.Splice(hs[1], hs[0], hs[1])
	assert.Equal(t, []int{4, 5, 0, 3, 1, 2}, keys(s))

	assert.Panics(t, func() { s.Splice(hs[0], hs[5], hs[1]) })
}

func TestStore_OffsetAndAt(t *testing.T) {
	s := New[int, string]()
	var hs []Handle
	for i := 0; i < 9; i++ {
		hs = append(hs, s.PushBack(i*10, ""))
	}

	for i, h := range hs {
		assert.Equal(t, i, s.Offset(h))
		got, ok := s.At(i)
		require.True(t, ok)
		assert.Equal(t, h, got)
	}
	assert.Equal(t, 9, s.Offset(End))

	_, ok := s.At(-1)
	assert.False(t, ok)
	_, ok = s.At(9)
	assert.False(t, ok)
}

func TestStore_ValueAndUID(t *testing.T) {
	s := New[string, int]()
	h := s.PushBack("k", 1)
	s.SetValue(h, 42)
	s.SetUID(h, 7)
	s.SetHash(h, 99)
	assert.Equal(t, 42, s.Value(h))
	assert.Equal(t, uint64(7), s.UID(h))
	assert.Equal(t, uint64(99), s.Hash(h))
	assert.Panics(t, func() { s.Value(End) })
}

func TestStore_Clear(t *testing.T) {
	s := New[int, string]()
	for i := 0; i < 100; i++ {
		s.PushBack(i, "")
	}
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, End, s.Begin())

	s.PushBack(7, "")
	assert.Equal(t, []int{7}, keys(s))
}

func TestStore_ClearInvalidatesHandles(t *testing.T) {
	s := New[int, string]()
	old := s.PushBack(1, "")
	s.Clear()

	// The new record reuses the slot under a newer generation.
	h := s.PushBack(42, "")
	assert.Equal(t, old.Slot(), h.Slot())
	assert.NotEqual(t, old, h)

	assert.False(t, s.Contains(old))
	assert.True(t, s.Contains(h))
	assert.Panics(t, func() { s.Key(old) })
	assert.Panics(t, func() { s.Erase(old) })
	assert.Equal(t, []int{42}, keys(s))
}

func TestStore_ManyInsertsAndErases(t *testing.T) {
	s := New[int, string]()
	live := map[int]Handle{}
	for i := 0; i < 5000; i++ {
		live[i] = s.PushBack(i, "")
	}
	for i := 0; i < 5000; i += 2 {
		s.Erase(live[i])
		delete(live, i)
	}
	for i := 5000; i < 6000; i++ {
		live[i] = s.PushBack(i, "")
	}

	got := keys(s)
	assert.Len(t, got, len(live))
	assert.True(t, slices.IsSorted(got[:2500]))
	for k, h := range live {
		assert.Equal(t, k, s.Key(h))
	}
}
