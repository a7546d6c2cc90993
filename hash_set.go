package assoc

import (
	"iter"
	"slices"
)

// HashSet is a key-only HashMap.
type HashSet[K any] struct {
	hashCore[K, struct{}]
}

// NewHashSet creates a HashSet hashing K with a randomly seeded hash.
func NewHashSet[K comparable](opts ...Option) *HashSet[K] {
	return NewHashSetFunc[K](Hash[K](), Equal[K], opts...)
}

// NewHashMultiSet creates a HashSet with the Multi key policy.
func NewHashMultiSet[K comparable](opts ...Option) *HashSet[K] {
	return NewHashSetFunc[K](Hash[K](), Equal[K], append(slices.Clip(opts), WithKeyPolicy(Multi))...)
}

// NewHashSetFunc creates a HashSet with a custom hash function and key
// equality.
func NewHashSetFunc[K any](hash func(K) uint64, equal func(a, b K) bool, opts ...Option) *HashSet[K] {
	if hash == nil || equal == nil {
		panic("assoc: nil hash or equal function")
	}
	s := &HashSet[K]{}
	s.initHash(newOptions(opts), hash, equal)
	return s
}

// Insert appends key to the sequence. A unique set that already holds key
// is left untouched and returns the existing record with false.
func (s *HashSet[K]) Insert(key K) (SetIterator[K], bool) {
	h, ok := s.insert(key, struct{}{})
	return s.iter(h), ok
}

// InsertHint inserts key in front of hint in the sequence.
func (s *HashSet[K]) InsertHint(hint SetIterator[K], key K) SetIterator[K] {
	return s.iter(s.insertHint(hint, key, struct{}{}))
}

// InsertAll appends every key of seq and returns the number inserted.
func (s *HashSet[K]) InsertAll(seq iter.Seq[K]) int {
	return s.insertAll(withEmpty(seq))
}

// Merge moves into s every key of other that s accepts.
func (s *HashSet[K]) Merge(other *HashSet[K]) int {
	return s.merge(&other.core)
}

// Swap exchanges the contents of s and other in O(1).
func (s *HashSet[K]) Swap(other *HashSet[K]) {
	s.swap(&other.core)
}
