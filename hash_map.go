package assoc

import (
	"iter"
	"slices"
)

// HashMap is an associative container indexed by a hash function. Its
// sequence order is insertion order, changed only by Splice. Rehashing never
// reorders the sequence nor invalidates iterators.
//
// A HashMap is not safe for concurrent use.
type HashMap[K, V any] struct {
	hashCore[K, V]
}

// NewHashMap creates a HashMap hashing K with a randomly seeded hash.
func NewHashMap[K comparable, V any](opts ...Option) *HashMap[K, V] {
	return NewHashMapFunc[K, V](Hash[K](), Equal[K], opts...)
}

// NewHashMultiMap creates a HashMap with the Multi key policy.
func NewHashMultiMap[K comparable, V any](opts ...Option) *HashMap[K, V] {
	return NewHashMapFunc[K, V](Hash[K](), Equal[K], append(slices.Clip(opts), WithKeyPolicy(Multi))...)
}

// NewHashMapFunc creates a HashMap with a custom hash function and key
// equality. Keys that are equal must hash equally.
func NewHashMapFunc[K, V any](hash func(K) uint64, equal func(a, b K) bool, opts ...Option) *HashMap[K, V] {
	if hash == nil || equal == nil {
		panic("assoc: nil hash or equal function")
	}
	m := &HashMap[K, V]{}
	m.initHash(newOptions(opts), hash, equal)
	return m
}

// Insert appends a record to the sequence. A unique map that already holds
// key is left untouched and returns the existing record with false.
func (m *HashMap[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	h, ok := m.insert(key, value)
	return m.iter(h), ok
}

// InsertHint inserts the record in front of hint in the sequence.
func (m *HashMap[K, V]) InsertHint(hint Iterator[K, V], key K, value V) Iterator[K, V] {
	return m.iter(m.insertHint(hint, key, value))
}

// InsertAll appends every pair of seq and returns the number inserted. The
// buckets are sized once for the whole batch.
func (m *HashMap[K, V]) InsertAll(seq iter.Seq2[K, V]) int {
	return m.insertAll(seq)
}

// Get returns the value of the first record with key.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// Set assigns value to the first record with key, inserting it if absent.
func (m *HashMap[K, V]) Set(key K, value V) Iterator[K, V] {
	return m.iter(m.set(key, value))
}

// Merge moves into m every record of other that m accepts.
func (m *HashMap[K, V]) Merge(other *HashMap[K, V]) int {
	return m.merge(&other.core)
}

// Swap exchanges the contents of m and other in O(1).
func (m *HashMap[K, V]) Swap(other *HashMap[K, V]) {
	m.swap(&other.core)
}
