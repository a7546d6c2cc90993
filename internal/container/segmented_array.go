// Package container implements container data structures.
package container

const (
	// segmentBits determines the size of each segment.
	// 10 bits = 1024 items per segment.
	segmentBits = 10
	segmentSize = 1 << segmentBits
	segmentMask = segmentSize - 1
)

// SegmentedArray is an append-only array split into fixed-size segments.
// Growing never moves existing items, so a pointer returned by At stays
// valid for the lifetime of the array (until Reset).
//
// It is not safe for concurrent use.
type SegmentedArray[T any] struct {
	segments []*Segment[T]
	n        int
}

// Segment is a fixed-size array of items.
type Segment[T any] struct {
	items [segmentSize]T
}

// NewSegmentedArray creates a new SegmentedArray.
func NewSegmentedArray[T any]() *SegmentedArray[T] {
	return &SegmentedArray[T]{}
}

// Len returns the number of items appended so far.
func (sa *SegmentedArray[T]) Len() int {
	return sa.n
}

// Append stores value at index Len() and returns that index.
func (sa *SegmentedArray[T]) Append(value T) int {
	idx := sa.n
	segIdx := idx >> segmentBits
	if segIdx == len(sa.segments) {
		sa.segments = append(sa.segments, &Segment[T]{})
	}
	sa.segments[segIdx].items[idx&segmentMask] = value
	sa.n++
	return idx
}

// At returns a pointer to the item at the given index.
// It returns nil if the index is out of bounds.
func (sa *SegmentedArray[T]) At(index int) *T {
	if index < 0 || index >= sa.n {
		return nil
	}
	return &sa.segments[index>>segmentBits].items[index&segmentMask]
}

// Reset drops every segment.
func (sa *SegmentedArray[T]) Reset() {
	sa.segments = nil
	sa.n = 0
}
