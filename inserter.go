package assoc

import "iter"

// Inserter is an output adapter that inserts records at a moving position
// hint. Each Put inserts in front of the hint and moves the hint past the
// record it produced, so feeding it sorted input appends to a tree in
// amortized constant time.
type Inserter[K, V any] struct {
	c   *core[K, V]
	pos Iterator[K, V]
}

// Inserter returns an Inserter whose first hint is pos.
func (c *core[K, V]) Inserter(pos Iterator[K, V]) *Inserter[K, V] {
	c.owns(pos)
	return &Inserter[K, V]{c: c, pos: pos}
}

// Put inserts one record and reports whether it was accepted.
func (in *Inserter[K, V]) Put(key K, value V) bool {
	before := in.c.Len()
	h := in.c.insertHint(in.pos, key, value)
	in.pos = in.c.iter(h).Next()
	return in.c.Len() > before
}

// Collect puts every pair of seq and returns how many were accepted.
func (in *Inserter[K, V]) Collect(seq iter.Seq2[K, V]) int {
	n := 0
	for k, v := range seq {
		if in.Put(k, v) {
			n++
		}
	}
	return n
}

// Pos returns the current hint.
func (in *Inserter[K, V]) Pos() Iterator[K, V] {
	return in.pos
}
