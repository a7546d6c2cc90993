package assoc

import (
	"github.com/hupe1980/assoc/internal/hashindex"
	"github.com/hupe1980/assoc/internal/nodestore"
)

// Iterator is an immutable cursor over the records of a container.
//
// Two iterators are equal when they refer to the same record (or are both
// End) of the same container contents. An iterator stays valid until the
// record it refers to is erased; inserts, other erasures, tree rebalancing
// and rehashing never invalidate it. After Swap an iterator keeps referring
// to its record, which now belongs to the other container.
//
// Key, Value and SetValue panic on End.
type Iterator[K, V any] struct {
	store *nodestore.Store[K, V]
	h     nodestore.Handle
}

// Key returns the key of the record.
func (it Iterator[K, V]) Key() K {
	return it.store.Key(it.h)
}

// Value returns the value of the record.
func (it Iterator[K, V]) Value() V {
	return it.store.Value(it.h)
}

// SetValue replaces the value of the record. Keys are immutable.
func (it Iterator[K, V]) SetValue(v V) {
	it.store.SetValue(it.h, v)
}

// Next returns an iterator to the following record, or End.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{store: it.store, h: it.store.Next(it.h)}
}

// Prev returns an iterator to the preceding record. Prev of End is the last
// record.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	return Iterator[K, V]{store: it.store, h: it.store.Prev(it.h)}
}

// IsEnd reports whether it is the one-past-the-last position.
func (it Iterator[K, V]) IsEnd() bool {
	return it.h == nodestore.End
}

// Equal reports whether both iterators denote the same position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.store == other.store && it.h == other.h
}

// Reverse returns the reverse iterator whose base is it. It dereferences to
// the record in front of it.
func (it Iterator[K, V]) Reverse() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{base: it}
}

// ReverseIterator is a read-only adapter walking a container backwards.
//
// It holds a forward iterator and dereferences the record before it, so
// RBegin wraps End and REnd wraps Begin; both directions always agree on a
// single underlying position.
type ReverseIterator[K, V any] struct {
	base Iterator[K, V]
}

// Base returns the underlying forward iterator.
func (r ReverseIterator[K, V]) Base() Iterator[K, V] {
	return r.base
}

// Key returns the key of the record in front of the base.
func (r ReverseIterator[K, V]) Key() K {
	return r.base.Prev().Key()
}

// Value returns the value of the record in front of the base.
func (r ReverseIterator[K, V]) Value() V {
	return r.base.Prev().Value()
}

// Next moves toward the front of the container.
func (r ReverseIterator[K, V]) Next() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{base: r.base.Prev()}
}

// Prev moves toward the back of the container.
func (r ReverseIterator[K, V]) Prev() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{base: r.base.Next()}
}

// Equal reports whether both reverse iterators share a base.
func (r ReverseIterator[K, V]) Equal(other ReverseIterator[K, V]) bool {
	return r.base.Equal(other.base)
}

// LocalIterator walks the chain of a single bucket of a hash container.
//
// Unlike Iterator it is invalidated by any insert or erase that touches its
// bucket and by every rehash.
type LocalIterator[K, V any] struct {
	store   *nodestore.Store[K, V]
	buckets *hashindex.Buckets[K]
	bucket  int
	pos     int
}

func (it LocalIterator[K, V]) handle() nodestore.Handle {
	return it.buckets.At(it.bucket)[it.pos]
}

// Key returns the key of the record.
func (it LocalIterator[K, V]) Key() K {
	return it.store.Key(it.handle())
}

// Value returns the value of the record.
func (it LocalIterator[K, V]) Value() V {
	return it.store.Value(it.handle())
}

// Next returns an iterator to the following record of the bucket.
func (it LocalIterator[K, V]) Next() LocalIterator[K, V] {
	it.pos++
	return it
}

// IsEnd reports whether it is past the last record of its bucket.
func (it LocalIterator[K, V]) IsEnd() bool {
	return it.pos >= it.buckets.BucketSize(it.bucket)
}

// Equal reports whether both iterators denote the same bucket position.
func (it LocalIterator[K, V]) Equal(other LocalIterator[K, V]) bool {
	return it.buckets == other.buckets && it.bucket == other.bucket && it.pos == other.pos
}

// Iterator converts it into a container iterator to the same record.
func (it LocalIterator[K, V]) Iterator() Iterator[K, V] {
	if it.IsEnd() {
		return Iterator[K, V]{store: it.store, h: nodestore.End}
	}
	return Iterator[K, V]{store: it.store, h: it.handle()}
}
