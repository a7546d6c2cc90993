// Package assoc provides generic associative containers: ordered and hashed
// maps and sets, each with unique or multi key policy.
//
// Every container pairs a node store, which owns the records and keeps them
// in one doubly linked sequence, with an index that files handles to those
// records: a red-black tree for the ordered containers, a bucket array for
// the hashed ones. Records never move once created, so an Iterator stays
// valid until its own record is erased, across any number of inserts,
// erasures of other records, rehashes and Swap calls.
//
// # Containers
//
//	m := assoc.NewTreeMap[string, int]()          // sorted, unique keys
//	ms := assoc.NewTreeMultiSet[int]()            // sorted, duplicates kept
//	h := assoc.NewHashMap[string, int]()          // insertion order, unique keys
//	hs := assoc.NewHashMultiSet[int]()            // insertion order, duplicates kept
//
// Tree containers traverse in key order; equal keys in a multi container
// keep insertion order. Hash containers traverse in insertion order, which
// only Splice changes.
//
// # Iteration
//
//	for k, v := range m.All() {
//	    fmt.Println(k, v)
//	}
//	for it := m.LowerBound("b"); !it.Equal(m.UpperBound("d")); it = it.Next() {
//	    fmt.Println(it.Key())
//	}
//
// # Hash tuning
//
// Hash containers grow their bucket array whenever an insert pushes the load
// factor above MaxLoadFactor (1.0 by default), multiplying the bucket count by
// the growth factor (2 by default). The bucket count never drops below 10.
//
//	h := assoc.NewHashMap[string, int](
//	    assoc.WithBucketCount(1024),
//	    assoc.WithMaxLoadFactor(0.75),
//	)
//
// # Observability
//
// WithLogger enables slog-based logging of coarse events (rehash, bulk
// insert, clear, failed checks). WithMetricsCollector receives timings of
// every mutating operation and lookup. Check audits the internal structure
// and returns a *CorruptionError if the store and the index disagree.
//
// # Concurrency
//
// Containers are not safe for concurrent use. Guard them externally.
package assoc
