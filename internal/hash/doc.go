// Package hash provides the default key hash functions of the unordered
// index.
//
// # Comparable keys
//
// Keys of comparable types are hashed with hash/maphash under a seed drawn
// once per container. Seeds differ between containers and between runs, so
// bucket placement must never be relied upon across processes.
//
//	seed := hash.NewSeed()
//	h := hash.Comparable(seed, key)
//
// # Deterministic hashing
//
// String and Bytes hash with CRC32-Castagnoli, which is hardware accelerated
// on x86 (SSE4.2) and ARM (CRC extension) and yields the same value in every
// process. Use them when reproducible bucket layouts matter more than
// resistance to crafted inputs.
package hash
