package nodestore

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/assoc/internal/container"
	"github.com/hupe1980/assoc/internal/conv"
)

type slot[K, V any] struct {
	key   K
	value V
	uid   uint64
	hash  uint64
	prev  uint32
	next  uint32
	gen   uint32
}

// Store is a sequence of key/value records addressed by handles.
type Store[K, V any] struct {
	slots *container.SegmentedArray[slot[K, V]]
	free  *bitset.BitSet
	n     int
}

// New creates an empty Store.
func New[K, V any]() *Store[K, V] {
	s := &Store[K, V]{}
	s.reset()
	return s
}

func (s *Store[K, V]) reset() {
	s.slots = container.NewSegmentedArray[slot[K, V]]()
	s.slots.Append(slot[K, V]{}) // sentinel: prev = next = 0, gen 0
	s.free = bitset.New(0)
	s.n = 0
}

// Len returns the number of live records.
func (s *Store[K, V]) Len() int {
	return s.n
}

// Begin returns the handle of the first record, or End if the store is empty.
func (s *Store[K, V]) Begin() Handle {
	return s.handleOf(s.at(0).next)
}

// End returns the sentinel handle.
func (s *Store[K, V]) End() Handle {
	return End
}

// Next returns the handle following h. Next(End) is Begin.
func (s *Store[K, V]) Next(h Handle) Handle {
	return s.handleOf(s.resolve(h).next)
}

// Prev returns the handle preceding h. Prev(Begin) is End.
func (s *Store[K, V]) Prev(h Handle) Handle {
	return s.handleOf(s.resolve(h).prev)
}

// Contains reports whether h refers to a live record of this store.
func (s *Store[K, V]) Contains(h Handle) bool {
	if h == End {
		return false
	}
	sl := s.slots.At(int(h.Slot()))
	return sl != nil && sl.gen == h.gen() && !s.free.Test(uint(h.Slot()))
}

// Key returns the key of the record at h.
func (s *Store[K, V]) Key(h Handle) K {
	return s.record(h).key
}

// Value returns the value of the record at h.
func (s *Store[K, V]) Value(h Handle) V {
	return s.record(h).value
}

// SetValue replaces the value of the record at h.
func (s *Store[K, V]) SetValue(h Handle, value V) {
	s.record(h).value = value
}

// UID returns the tie-break id stamped on the record at h.
func (s *Store[K, V]) UID(h Handle) uint64 {
	return s.record(h).uid
}

// SetUID stamps a tie-break id on the record at h.
func (s *Store[K, V]) SetUID(h Handle, uid uint64) {
	s.record(h).uid = uid
}

// Hash returns the hash an index filed the record at h under.
func (s *Store[K, V]) Hash(h Handle) uint64 {
	return s.record(h).hash
}

// SetHash records the hash the record at h was filed under.
func (s *Store[K, V]) SetHash(h Handle, hash uint64) {
	s.record(h).hash = hash
}

// PushBack appends a record and returns its handle.
func (s *Store[K, V]) PushBack(key K, value V) Handle {
	return s.InsertBefore(End, key, value)
}

// InsertBefore inserts a record in front of pos and returns its handle.
func (s *Store[K, V]) InsertBefore(pos Handle, key K, value V) Handle {
	s.resolve(pos)
	idx := s.alloc(key, value)
	s.link(idx, pos.Slot())
	s.n++
	return s.handleOf(idx)
}

// Erase removes the record at h and returns the handle that followed it.
func (s *Store[K, V]) Erase(h Handle) Handle {
	sl := s.record(h)
	next := sl.next
	s.unlink(h.Slot())
	s.release(h.Slot())
	s.n--
	return s.handleOf(next)
}

// EraseRange removes the records in [first, last) and returns last.
func (s *Store[K, V]) EraseRange(first, last Handle) Handle {
	for first != last {
		first = s.Erase(first)
	}
	return last
}

// Splice moves the records in [first, last) in front of pos, preserving
// their handles. pos must not lie inside [first, last).
func (s *Store[K, V]) Splice(pos, first, last Handle) {
	s.resolve(pos)
	if first == last || pos == last || pos == first {
		return
	}

	tail := first
	for {
		if tail == End {
			panic("nodestore: splice range does not end at last")
		}
		if tail == pos {
			panic(fmt.Sprintf("nodestore: splice position %v inside moved range", pos))
		}
		if s.Next(tail) == last {
			break
		}
		tail = s.Next(tail)
	}

	fs, ts, ls := first.Slot(), tail.Slot(), last.Slot()

	// Detach [first, tail].
	before := s.at(fs).prev
	s.at(before).next = ls
	s.at(ls).prev = before

	// Reattach in front of pos.
	ps := pos.Slot()
	pp := s.at(ps).prev
	s.at(pp).next = fs
	s.at(fs).prev = pp
	s.at(ts).next = ps
	s.at(ps).prev = ts
}

// Offset returns the zero-based position of h, counted from Begin.
// Offset(End) is Len(). It walks the list and is meant for diagnostics.
func (s *Store[K, V]) Offset(h Handle) int {
	s.resolve(h)
	n := 0
	for it := s.Begin(); it != h; it = s.Next(it) {
		n++
	}
	return n
}

// At returns the handle at the zero-based position i. It walks from the
// nearer end of the list.
func (s *Store[K, V]) At(i int) (Handle, bool) {
	if i < 0 || i >= s.n {
		return End, false
	}
	if i <= s.n/2 {
		h := s.Begin()
		for ; i > 0; i-- {
			h = s.Next(h)
		}
		return h, true
	}
	h := s.Prev(End)
	for j := s.n - 1; j > i; j-- {
		h = s.Prev(h)
	}
	return h, true
}

// All yields every live handle in sequence order.
func (s *Store[K, V]) All() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for h := s.Begin(); h != End; h = s.Next(h) {
			if !yield(h) {
				return
			}
		}
	}
}

// Clear drops every record. Slots and their generations are kept, so every
// handle issued before Clear is stale afterwards.
func (s *Store[K, V]) Clear() {
	for idx := s.at(0).next; idx != 0; {
		next := s.at(idx).next
		s.release(idx)
		idx = next
	}
	end := s.at(0)
	end.prev, end.next = 0, 0
	s.n = 0
}

func (s *Store[K, V]) at(idx uint32) *slot[K, V] {
	return s.slots.At(int(idx))
}

func (s *Store[K, V]) handleOf(idx uint32) Handle {
	if idx == 0 {
		return End
	}
	return makeHandle(idx, s.at(idx).gen)
}

// resolve returns the slot for h, which may be End.
func (s *Store[K, V]) resolve(h Handle) *slot[K, V] {
	sl := s.slots.At(int(h.Slot()))
	if sl == nil || sl.gen != h.gen() {
		panic(fmt.Sprintf("nodestore: stale or foreign handle %v", h))
	}
	return sl
}

// record returns the slot for h, which must not be End.
func (s *Store[K, V]) record(h Handle) *slot[K, V] {
	if h == End {
		panic("nodestore: end handle has no record")
	}
	return s.resolve(h)
}

func (s *Store[K, V]) alloc(key K, value V) uint32 {
	if i, ok := s.free.NextSet(0); ok {
		s.free.Clear(i)
		idx := uint32(i)
		sl := s.at(idx)
		*sl = slot[K, V]{key: key, value: value, gen: sl.gen}
		return idx
	}
	idx := conv.MustIntToUint32(s.slots.Len())
	s.slots.Append(slot[K, V]{key: key, value: value, gen: 1})
	return idx
}

func (s *Store[K, V]) release(idx uint32) {
	sl := s.at(idx)
	gen := sl.gen + 1
	if gen == 0 {
		gen = 1
	}
	*sl = slot[K, V]{gen: gen}
	s.free.Set(uint(idx))
}

// link inserts the detached slot idx in front of slot before.
func (s *Store[K, V]) link(idx, before uint32) {
	b := s.at(before)
	p := b.prev
	sl := s.at(idx)
	sl.prev = p
	sl.next = before
	s.at(p).next = idx
	b.prev = idx
}

func (s *Store[K, V]) unlink(idx uint32) {
	sl := s.at(idx)
	s.at(sl.prev).next = sl.next
	s.at(sl.next).prev = sl.prev
	sl.prev, sl.next = 0, 0
}
