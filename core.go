package assoc

import (
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/assoc/internal/nodestore"
)

// core composes one node store with one index strategy under a key policy.
// It carries every operation shared by the four container types.
type core[K, V any] struct {
	store   *nodestore.Store[K, V]
	index   strategy[K]
	opts    *options
	nextUID uint64
}

func (c *core[K, V]) init(o *options, mk func(*nodestore.Store[K, V]) strategy[K]) {
	c.store = nodestore.New[K, V]()
	c.index = mk(c.store)
	c.opts = o
}

func (c *core[K, V]) multi() bool {
	return c.opts.policy == Multi
}

func (c *core[K, V]) iter(h nodestore.Handle) Iterator[K, V] {
	return Iterator[K, V]{store: c.store, h: h}
}

// owns panics unless it was issued by this container.
func (c *core[K, V]) owns(it Iterator[K, V]) nodestore.Handle {
	if it.store != c.store {
		panic("assoc: iterator does not belong to this container")
	}
	if it.h != nodestore.End && !c.store.Contains(it.h) {
		panic(fmt.Sprintf("assoc: stale iterator %v", it.h))
	}
	return it.h
}

func (c *core[K, V]) start() time.Time {
	if c.opts.metricsCollector == nil {
		return time.Time{}
	}
	return time.Now()
}

// Policy returns the key policy of the container.
func (c *core[K, V]) Policy() KeyPolicy {
	return c.opts.policy
}

// Len returns the number of records.
func (c *core[K, V]) Len() int {
	return c.store.Len()
}

// Empty reports whether the container holds no records.
func (c *core[K, V]) Empty() bool {
	return c.store.Len() == 0
}

// Begin returns an iterator to the first record.
func (c *core[K, V]) Begin() Iterator[K, V] {
	return c.iter(c.store.Begin())
}

// End returns the one-past-the-last iterator.
func (c *core[K, V]) End() Iterator[K, V] {
	return c.iter(nodestore.End)
}

// RBegin returns a reverse iterator to the last record.
func (c *core[K, V]) RBegin() ReverseIterator[K, V] {
	return c.End().Reverse()
}

// REnd returns the reverse iterator one before the first record.
func (c *core[K, V]) REnd() ReverseIterator[K, V] {
	return c.Begin().Reverse()
}

// Find returns an iterator to the first record with key, or End.
func (c *core[K, V]) Find(key K) Iterator[K, V] {
	start := c.start()
	h, ok := c.index.Find(key)
	if c.opts.metricsCollector != nil {
		c.opts.metricsCollector.RecordLookup(ok, time.Since(start))
	}
	return c.iter(h)
}

// Has reports whether a record with key exists.
func (c *core[K, V]) Has(key K) bool {
	_, ok := c.index.Find(key)
	return ok
}

// Count returns the number of records with key.
func (c *core[K, V]) Count(key K) int {
	return c.index.Count(key)
}

func (c *core[K, V]) insert(key K, value V) (nodestore.Handle, bool) {
	start := c.start()
	pos, dup, found := c.index.locate(key)
	h, ok := c.place(pos, dup, found, key, value)
	if c.opts.metricsCollector != nil {
		c.opts.metricsCollector.RecordInsert(time.Since(start), ok)
	}
	return h, ok
}

func (c *core[K, V]) insertHint(hint Iterator[K, V], key K, value V) nodestore.Handle {
	start := c.start()
	pos, dup, found := c.index.locateHint(c.owns(hint), key)
	h, ok := c.place(pos, dup, found, key, value)
	if c.opts.metricsCollector != nil {
		c.opts.metricsCollector.RecordInsert(time.Since(start), ok)
	}
	return h
}

// place creates the record in front of pos and files it, unless found.
func (c *core[K, V]) place(pos, dup nodestore.Handle, found bool, key K, value V) (nodestore.Handle, bool) {
	if found {
		return dup, false
	}
	h := c.store.InsertBefore(pos, key, value)
	c.stamp(h)
	if _, ok := c.index.Insert(h); !ok {
		panic("assoc: index rejected a located insert")
	}
	return h, true
}

// stamp issues the tie-break id that orders equal keys in multi containers.
func (c *core[K, V]) stamp(h nodestore.Handle) {
	if c.multi() {
		c.nextUID++
		c.store.SetUID(h, c.nextUID)
	}
}

// reserver is implemented by strategies that can pre-size for a batch.
type reserver interface {
	ReserveFor(items int)
}

func (c *core[K, V]) insertAll(seq iter.Seq2[K, V]) int {
	start := c.start()
	count, inserted := 0, 0

	if r, ok := c.index.(reserver); ok && !c.index.ordered() {
		// Seed the store first, size the buckets once, then file every new
		// handle in a single pass.
		mark := c.store.Prev(nodestore.End)
		for k, v := range seq {
			c.stamp(c.store.PushBack(k, v))
			count++
		}
		r.ReserveFor(c.index.Len() + count)
		for h := c.store.Next(mark); h != nodestore.End; {
			next := c.store.Next(h)
			if _, ok := c.index.Insert(h); ok {
				inserted++
			} else {
				c.store.Erase(h)
			}
			h = next
		}
	} else {
		for k, v := range seq {
			count++
			if _, ok := c.insert(k, v); ok {
				inserted++
			}
		}
	}

	c.opts.logger.LogBulkInsert(count, inserted)
	if c.opts.metricsCollector != nil {
		c.opts.metricsCollector.RecordBulkInsert(count, inserted, time.Since(start))
	}
	return inserted
}

func (c *core[K, V]) erase(h nodestore.Handle) nodestore.Handle {
	if !c.index.Erase(h) {
		panic(fmt.Sprintf("assoc: handle %v missing from index", h))
	}
	return c.store.Erase(h)
}

// Erase removes every record with key and returns how many were removed.
func (c *core[K, V]) Erase(key K) int {
	start := c.start()
	n := 0
	for {
		h, ok := c.index.Find(key)
		if !ok {
			break
		}
		c.erase(h)
		n++
		if !c.multi() {
			break
		}
	}
	if c.opts.metricsCollector != nil {
		c.opts.metricsCollector.RecordErase(n, time.Since(start))
	}
	return n
}

// EraseAt removes the record at it and returns an iterator to the record
// that followed it.
func (c *core[K, V]) EraseAt(it Iterator[K, V]) Iterator[K, V] {
	h := c.owns(it)
	if h == nodestore.End {
		panic("assoc: erase at end iterator")
	}
	start := c.start()
	next := c.erase(h)
	if c.opts.metricsCollector != nil {
		c.opts.metricsCollector.RecordErase(1, time.Since(start))
	}
	return c.iter(next)
}

// EraseRange removes the records in [first, last) and returns last.
func (c *core[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	h, end := c.owns(first), c.owns(last)
	start := c.start()
	n := 0
	for h != end {
		if h == nodestore.End {
			panic("assoc: erase range does not end at last")
		}
		h = c.erase(h)
		n++
	}
	if c.opts.metricsCollector != nil {
		c.opts.metricsCollector.RecordErase(n, time.Since(start))
	}
	return last
}

// Clear removes every record. The store and the index are emptied together.
func (c *core[K, V]) Clear() {
	n := c.store.Len()
	c.store.Clear()
	c.index.Clear()
	c.nextUID = 0
	c.opts.logger.LogClear(n)
}

// swap exchanges the whole store and index pair, tie-break counter and
// options with other in O(1).
func (c *core[K, V]) swap(other *core[K, V]) {
	*c, *other = *other, *c
}

// Nth returns an iterator to the record at the zero-based position i.
// It walks the sequence and is meant for diagnostics.
func (c *core[K, V]) Nth(i int) (Iterator[K, V], error) {
	h, ok := c.store.At(i)
	if !ok {
		return c.End(), &OutOfRangeError{Index: i, Size: c.store.Len()}
	}
	return c.iter(h), nil
}

// Offset returns the zero-based position of it. Offset(End()) is Len().
// It walks the sequence and is meant for diagnostics.
func (c *core[K, V]) Offset(it Iterator[K, V]) int {
	return c.store.Offset(c.owns(it))
}

// Distance returns the number of Next steps from first to last.
func (c *core[K, V]) Distance(first, last Iterator[K, V]) int {
	h, end := c.owns(first), c.owns(last)
	n := 0
	for ; h != end; h = c.store.Next(h) {
		if h == nodestore.End {
			panic("assoc: last is not reachable from first")
		}
		n++
	}
	return n
}

// All yields every key/value pair in sequence order.
func (c *core[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for h := range c.store.All() {
			if !yield(c.store.Key(h), c.store.Value(h)) {
				return
			}
		}
	}
}

// Keys yields every key in sequence order.
func (c *core[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for h := range c.store.All() {
			if !yield(c.store.Key(h)) {
				return
			}
		}
	}
}

// Backward yields every key/value pair in reverse sequence order.
func (c *core[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for h := c.store.Prev(nodestore.End); h != nodestore.End; h = c.store.Prev(h) {
			if !yield(c.store.Key(h), c.store.Value(h)) {
				return
			}
		}
	}
}

func (c *core[K, V]) get(key K) (V, bool) {
	h, ok := c.index.Find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return c.store.Value(h), true
}

// set assigns value to the first record with key, inserting one if absent.
func (c *core[K, V]) set(key K, value V) nodestore.Handle {
	if h, ok := c.index.Find(key); ok {
		c.store.SetValue(h, value)
		return h
	}
	h, _ := c.insert(key, value)
	return h
}

// merge moves every record of other that this container accepts. Rejected
// records (duplicate keys in a unique container) stay in other.
func (c *core[K, V]) merge(other *core[K, V]) int {
	if other == c {
		return 0
	}
	moved := 0
	for h := other.store.Begin(); h != nodestore.End; {
		next := other.store.Next(h)
		if _, ok := c.insert(other.store.Key(h), other.store.Value(h)); ok {
			other.erase(h)
			moved++
		}
		h = next
	}
	return moved
}
