package assoc

import (
	"cmp"

	"github.com/hupe1980/assoc/internal/hash"
)

// Less is the default comparator of ordered containers.
func Less[K cmp.Ordered](a, b K) bool {
	return cmp.Less(a, b)
}

// Equal is the default key equality of hash containers.
func Equal[K comparable](a, b K) bool {
	return a == b
}

// Hash returns the default hash function of hash containers: a seeded
// hash/maphash hash. Every call draws a fresh seed.
func Hash[K comparable]() func(K) uint64 {
	seed := hash.NewSeed()
	return func(k K) uint64 {
		return hash.Comparable(seed, k)
	}
}

// HashString hashes s with CRC32-Castagnoli. Unlike Hash it yields the same
// value in every process, which makes bucket layouts reproducible.
func HashString(s string) uint64 {
	return hash.String(s)
}

// HashBytes is HashString for byte slices.
func HashBytes(b []byte) uint64 {
	return hash.Bytes(b)
}
