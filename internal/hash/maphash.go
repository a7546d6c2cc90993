package hash

import "hash/maphash"

// NewSeed returns a random seed for Comparable.
func NewSeed() maphash.Seed {
	return maphash.MakeSeed()
}

// Comparable hashes any comparable key under seed. Equal keys hash equally
// for the same seed.
func Comparable[K comparable](seed maphash.Seed, k K) uint64 {
	return maphash.Comparable(seed, k)
}
