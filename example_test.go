package assoc_test

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/hupe1980/assoc"
)

// Example_treeMap demonstrates an ordered map.
func Example_treeMap() {
	m := assoc.NewTreeMap[string, int]()
	m.Insert("cherry", 3)
	m.Insert("apple", 1)
	m.Insert("banana", 2)

	for k, v := range m.All() {
		fmt.Println(k, v)
	}
	// Output:
	// apple 1
	// banana 2
	// cherry 3
}

// Example_multiSet demonstrates duplicate keys and range queries.
func Example_multiSet() {
	s := assoc.NewTreeMultiSet[int]()
	s.InsertAll(slices.Values([]int{1, 3, 2, 3}))

	fmt.Println(slices.Collect(s.Keys()))
	fmt.Println(s.Count(3))

	s.EraseAt(s.Find(3))
	fmt.Println(slices.Collect(s.Keys()))
	// Output:
	// [1 2 3 3]
	// 2
	// [1 2 3]
}

// Example_bounds demonstrates LowerBound and UpperBound.
func Example_bounds() {
	s := assoc.NewTreeSet[int]()
	s.InsertAll(slices.Values([]int{10, 20, 30, 40}))

	for it := s.LowerBound(15); !it.Equal(s.UpperBound(30)); it = it.Next() {
		fmt.Println(it.Key())
	}
	// Output:
	// 20
	// 30
}

// Example_hashMap demonstrates insertion order and bucket growth.
func Example_hashMap() {
	m := assoc.NewHashMap[string, int]()
	for i, k := range []string{"x", "a", "m"} {
		m.Insert(k, i)
	}
	fmt.Println(slices.Collect(m.Keys()))

	m.Reserve(100)
	fmt.Println(m.BucketCount(), slices.Collect(m.Keys()))
	// Output:
	// [x a m]
	// 100 [x a m]
}

// Example_reverse demonstrates reverse iteration.
func Example_reverse() {
	s := assoc.NewTreeSet[string]()
	s.InsertAll(slices.Values([]string{"b", "c", "a"}))

	for r := s.RBegin(); !r.Equal(s.REnd()); r = r.Next() {
		fmt.Print(r.Key(), " ")
	}
	fmt.Println()
	// Output: c b a
}

// Example_observability demonstrates logging and metrics.
func Example_observability() {
	mc := &assoc.BasicMetricsCollector{}
	logger := assoc.NewLogger(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	m := assoc.NewHashMap[int, int](
		assoc.WithLogger(logger.WithName("sessions")),
		assoc.WithMetricsCollector(mc),
	)
	for i := range 20 {
		m.Insert(i, i)
	}
	m.Find(3)

	stats := mc.GetStats()
	fmt.Println(stats.InsertCount, stats.LookupHits, stats.RehashCount, stats.MaxBucketCount)
	// Output: 20 1 1 20
}
