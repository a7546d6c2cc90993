package assoc

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSet(t *testing.T) {
	t.Run("Unique", func(t *testing.T) {
		s := NewHashSet[string]()

		assert.Equal(t, 3, s.InsertAll(slices.Values([]string{"x", "y", "x", "z"})))
		assert.Equal(t, []string{"x", "y", "z"}, slices.Collect(s.Keys()))
		assert.Equal(t, 1, s.Count("x"))
		require.NoError(t, s.Check())
	})

	t.Run("Multi", func(t *testing.T) {
		s := NewHashMultiSet[int]()
		for _, k := range []int{1, 3, 2, 3} {
			s.Insert(k)
		}

		assert.Equal(t, 2, s.Count(3))
		s.EraseAt(s.Find(3))
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(s.Keys()))
		require.NoError(t, s.Check())
	})

	t.Run("SwapCarriesBuckets", func(t *testing.T) {
		a := NewHashSet[int](WithBucketCount(128))
		a.Insert(1)
		b := NewHashSet[int]()

		a.Swap(b)
		assert.Equal(t, 10, a.BucketCount())
		assert.Equal(t, 128, b.BucketCount())
		assert.True(t, b.Has(1))
		assert.False(t, a.Has(1))
	})

	t.Run("CustomHash", func(t *testing.T) {
		type point struct{ x, y int }
		s := NewHashSetFunc(
			func(p point) uint64 { return uint64(p.x*31 + p.y) },
			func(a, b point) bool { return a == b },
		)

		s.Insert(point{1, 2})
		_, ok := s.Insert(point{1, 2})
		assert.False(t, ok)
		assert.True(t, s.Has(point{1, 2}))
		assert.False(t, s.Has(point{2, 1}))
	})

	t.Run("Merge", func(t *testing.T) {
		a := NewHashSet[int]()
		a.Insert(1)
		b := NewHashSet[int]()
		b.InsertAll(slices.Values([]int{1, 2, 3}))

		assert.Equal(t, 2, a.Merge(b))
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(a.Keys()))
		assert.Equal(t, []int{1}, slices.Collect(b.Keys()))
	})

	t.Run("InsertHint", func(t *testing.T) {
		s := NewHashSet[int]()
		s.Insert(1)
		s.InsertHint(s.Begin(), 0)

		assert.Equal(t, []int{0, 1}, slices.Collect(s.Keys()))
	})
}

func TestHashSet_NaNKeys(t *testing.T) {
	s := NewHashSet[float64]()

	a, ok := s.Insert(math.NaN())
	require.True(t, ok)
	_, ok = s.Insert(math.NaN())
	require.True(t, ok, "NaN never equals NaN")
	s.Insert(2)
	require.NoError(t, s.Check())

	assert.False(t, s.Has(math.NaN()))
	assert.Equal(t, 0, s.Erase(math.NaN()))

	s.Rehash(64)
	require.NoError(t, s.Check())
	for i := range 20 {
		s.Insert(float64(i + 10))
	}
	require.NoError(t, s.Check())

	next := s.EraseAt(a)
	assert.True(t, math.IsNaN(next.Key()))
	s.EraseAt(next)
	require.NoError(t, s.Check())

	assert.Equal(t, 21, s.Len())
	assert.False(t, slices.ContainsFunc(slices.Collect(s.Keys()), math.IsNaN))
}
