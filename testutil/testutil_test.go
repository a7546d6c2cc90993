package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_ResetReplaysSequence(t *testing.T) {
	rng := NewRNG(4711)

	first := rng.Keys(16, 100)
	rng.Reset()
	second := rng.Keys(16, 100)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(4711), rng.Seed())
	for _, k := range first {
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, 100)
	}
}

func TestRNG_Perm(t *testing.T) {
	rng := NewRNG(1)

	p := rng.Perm(10)
	rng.Shuffle(p)

	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, p)
}

func TestModel_Unique(t *testing.T) {
	m := NewModel(false)

	assert.True(t, m.Insert(3))
	assert.True(t, m.Insert(1))
	assert.False(t, m.Insert(3))

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []int{1, 3}, m.Sorted())
	assert.Equal(t, []int{3, 1}, m.InsertionOrder())
}

func TestModel_Multi(t *testing.T) {
	m := NewModel(true)
	for _, k := range []int{1, 3, 2, 3} {
		m.Insert(k)
	}

	assert.Equal(t, 2, m.Count(3))
	assert.True(t, m.EraseOne(3))
	assert.Equal(t, []int{1, 2, 3}, m.Sorted())
	assert.Equal(t, []int{1, 2, 3}, m.InsertionOrder())

	m.Insert(2)
	assert.Equal(t, 2, m.Erase(2))
	assert.Equal(t, 0, m.Count(2))
	assert.False(t, m.EraseOne(2))

	m.Clear()
	assert.Zero(t, m.Len())
}
