// Package testutil provides testing utilities for assoc.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and a reference model that randomized
// tests compare containers against.
//
// # Random Workloads
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Keys(1000, 100) // 1000 keys drawn from [0, 100)
//
// # Reference Model
//
//	model := testutil.NewModel(true) // multi keys
//	model.Insert(3)
//	model.Sorted()                   // [3]
package testutil
