package assoc

import (
	"cmp"
	"iter"
	"slices"

	"github.com/hupe1980/assoc/internal/nodestore"
)

// TreeMap is an associative container ordered by a comparator. Traversal
// yields records in non-decreasing key order; with the Multi policy equal
// keys appear in insertion order.
//
// A TreeMap is not safe for concurrent use.
type TreeMap[K, V any] struct {
	core[K, V]
}

// NewTreeMap creates a TreeMap ordered by the natural order of K.
func NewTreeMap[K cmp.Ordered, V any](opts ...Option) *TreeMap[K, V] {
	return NewTreeMapFunc[K, V](Less[K], opts...)
}

// NewTreeMultiMap creates a TreeMap with the Multi key policy.
func NewTreeMultiMap[K cmp.Ordered, V any](opts ...Option) *TreeMap[K, V] {
	return NewTreeMapFunc[K, V](Less[K], append(slices.Clip(opts), WithKeyPolicy(Multi))...)
}

// NewTreeMapFunc creates a TreeMap ordered by less, which must be a strict
// weak ordering.
func NewTreeMapFunc[K, V any](less func(a, b K) bool, opts ...Option) *TreeMap[K, V] {
	if less == nil {
		panic("assoc: nil less function")
	}
	o := newOptions(opts)
	m := &TreeMap[K, V]{}
	m.init(o, func(s *nodestore.Store[K, V]) strategy[K] {
		return newTreeIndex(s, less, o.policy == Multi)
	})
	return m
}

func (m *TreeMap[K, V]) tree() *treeIndex[K, V] {
	return m.index.(*treeIndex[K, V])
}

// Insert adds a record. A unique map that already holds key is left
// untouched and returns the existing record with false.
func (m *TreeMap[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	h, ok := m.insert(key, value)
	return m.iter(h), ok
}

// InsertHint is Insert with a position hint. When the record belongs right in
// front of hint the placement search is skipped; a wrong hint is ignored.
// It returns the inserted record, or the existing one in a unique map.
func (m *TreeMap[K, V]) InsertHint(hint Iterator[K, V], key K, value V) Iterator[K, V] {
	return m.iter(m.insertHint(hint, key, value))
}

// InsertAll inserts every pair of seq and returns the number inserted.
func (m *TreeMap[K, V]) InsertAll(seq iter.Seq2[K, V]) int {
	return m.insertAll(seq)
}

// Get returns the value of the first record with key.
func (m *TreeMap[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// Set assigns value to the first record with key, inserting it if absent.
func (m *TreeMap[K, V]) Set(key K, value V) Iterator[K, V] {
	return m.iter(m.set(key, value))
}

// Merge moves into m every record of other that m accepts and returns how
// many moved. Records whose keys m already holds (unique maps) stay in other.
func (m *TreeMap[K, V]) Merge(other *TreeMap[K, V]) int {
	return m.merge(&other.core)
}

// Swap exchanges the contents of m and other in O(1).
func (m *TreeMap[K, V]) Swap(other *TreeMap[K, V]) {
	m.swap(&other.core)
}

// LowerBound returns the first record whose key is not less than key.
func (m *TreeMap[K, V]) LowerBound(key K) Iterator[K, V] {
	return m.iter(m.tree().LowerBound(key))
}

// UpperBound returns the first record whose key is greater than key.
func (m *TreeMap[K, V]) UpperBound(key K) Iterator[K, V] {
	return m.iter(m.tree().UpperBound(key))
}

// EqualRange returns [LowerBound(key), UpperBound(key)).
func (m *TreeMap[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	return m.LowerBound(key), m.UpperBound(key)
}

// Less returns the key comparator.
func (m *TreeMap[K, V]) Less() func(a, b K) bool {
	return m.tree().Less()
}

// Check verifies that the node store and the tree agree and that the tree
// is a valid red-black tree.
func (m *TreeMap[K, V]) Check() error {
	return m.check()
}
