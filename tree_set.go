package assoc

import (
	"cmp"
	"iter"
	"slices"

	"github.com/hupe1980/assoc/internal/nodestore"
)

// SetIterator is the iterator of key-only containers.
type SetIterator[K any] = Iterator[K, struct{}]

// TreeSet is a key-only TreeMap.
//
// A TreeSet is not safe for concurrent use.
type TreeSet[K any] struct {
	core[K, struct{}]
}

// NewTreeSet creates a TreeSet ordered by the natural order of K.
func NewTreeSet[K cmp.Ordered](opts ...Option) *TreeSet[K] {
	return NewTreeSetFunc[K](Less[K], opts...)
}

// NewTreeMultiSet creates a TreeSet with the Multi key policy.
func NewTreeMultiSet[K cmp.Ordered](opts ...Option) *TreeSet[K] {
	return NewTreeSetFunc[K](Less[K], append(slices.Clip(opts), WithKeyPolicy(Multi))...)
}

// NewTreeSetFunc creates a TreeSet ordered by less.
func NewTreeSetFunc[K any](less func(a, b K) bool, opts ...Option) *TreeSet[K] {
	if less == nil {
		panic("assoc: nil less function")
	}
	o := newOptions(opts)
	s := &TreeSet[K]{}
	s.init(o, func(st *nodestore.Store[K, struct{}]) strategy[K] {
		return newTreeIndex(st, less, o.policy == Multi)
	})
	return s
}

func (s *TreeSet[K]) tree() *treeIndex[K, struct{}] {
	return s.index.(*treeIndex[K, struct{}])
}

// Insert adds key. A unique set that already holds key is left untouched
// and returns the existing record with false.
func (s *TreeSet[K]) Insert(key K) (SetIterator[K], bool) {
	h, ok := s.insert(key, struct{}{})
	return s.iter(h), ok
}

// InsertHint is Insert with a position hint; see TreeMap.InsertHint.
func (s *TreeSet[K]) InsertHint(hint SetIterator[K], key K) SetIterator[K] {
	return s.iter(s.insertHint(hint, key, struct{}{}))
}

// InsertAll inserts every key of seq and returns the number inserted.
func (s *TreeSet[K]) InsertAll(seq iter.Seq[K]) int {
	return s.insertAll(withEmpty(seq))
}

// Merge moves into s every key of other that s accepts.
func (s *TreeSet[K]) Merge(other *TreeSet[K]) int {
	return s.merge(&other.core)
}

// Swap exchanges the contents of s and other in O(1).
func (s *TreeSet[K]) Swap(other *TreeSet[K]) {
	s.swap(&other.core)
}

// LowerBound returns the first key not less than key.
func (s *TreeSet[K]) LowerBound(key K) SetIterator[K] {
	return s.iter(s.tree().LowerBound(key))
}

// UpperBound returns the first key greater than key.
func (s *TreeSet[K]) UpperBound(key K) SetIterator[K] {
	return s.iter(s.tree().UpperBound(key))
}

// EqualRange returns [LowerBound(key), UpperBound(key)).
func (s *TreeSet[K]) EqualRange(key K) (SetIterator[K], SetIterator[K]) {
	return s.LowerBound(key), s.UpperBound(key)
}

// Less returns the key comparator.
func (s *TreeSet[K]) Less() func(a, b K) bool {
	return s.tree().Less()
}

// Check verifies the set; see TreeMap.Check.
func (s *TreeSet[K]) Check() error {
	return s.check()
}

func withEmpty[K any](seq iter.Seq[K]) iter.Seq2[K, struct{}] {
	return func(yield func(K, struct{}) bool) {
		for k := range seq {
			if !yield(k, struct{}{}) {
				return
			}
		}
	}
}
