package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Shuffle shuffles s in place.
func (r *RNG) Shuffle(s []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

// Keys returns n keys drawn uniformly from [0, domain).
func (r *RNG) Keys(n, domain int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.rand.Intn(domain)
	}
	return keys
}

// Model is a reference multiset of int keys. It answers the questions a
// container must answer, the slow and obvious way.
type Model struct {
	counts map[int]int
	order  []int
	multi  bool
}

// NewModel creates an empty model. multi admits duplicate keys.
func NewModel(multi bool) *Model {
	return &Model{counts: make(map[int]int), multi: multi}
}

// Insert adds k and reports whether it was accepted.
func (m *Model) Insert(k int) bool {
	if !m.multi && m.counts[k] > 0 {
		return false
	}
	m.counts[k]++
	m.order = append(m.order, k)
	return true
}

// EraseOne removes the earliest inserted occurrence of k.
func (m *Model) EraseOne(k int) bool {
	i := slices.Index(m.order, k)
	if i < 0 {
		return false
	}
	m.order = slices.Delete(m.order, i, i+1)
	if m.counts[k]--; m.counts[k] == 0 {
		delete(m.counts, k)
	}
	return true
}

// Erase removes every occurrence of k and returns how many were removed.
func (m *Model) Erase(k int) int {
	n := m.counts[k]
	delete(m.counts, k)
	m.order = slices.DeleteFunc(m.order, func(x int) bool { return x == k })
	return n
}

// Count returns the number of occurrences of k.
func (m *Model) Count(k int) int {
	return m.counts[k]
}

// Len returns the number of stored keys.
func (m *Model) Len() int {
	return len(m.order)
}

// Clear removes every key.
func (m *Model) Clear() {
	clear(m.counts)
	m.order = m.order[:0]
}

// Sorted returns the keys in non-decreasing order.
func (m *Model) Sorted() []int {
	s := slices.Clone(m.order)
	slices.Sort(s)
	return s
}

// InsertionOrder returns the keys in the order they were inserted.
func (m *Model) InsertionOrder() []int {
	return slices.Clone(m.order)
}
