package nodestore

import "fmt"

// Handle is a stable reference to a record in a Store.
//
// The zero Handle is End, the one-past-the-last position.
type Handle uint64

// End is the sentinel position of every store.
const End Handle = 0

func makeHandle(idx, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(idx))
}

// Slot returns the slot index the handle refers to.
func (h Handle) Slot() uint32 {
	return uint32(h)
}

func (h Handle) gen() uint32 {
	return uint32(h >> 32)
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	if h == End {
		return "end"
	}
	return fmt.Sprintf("%d@%d", h.Slot(), h.gen())
}
