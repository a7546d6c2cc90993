package assoc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A collector may be shared by containers living on different goroutines, so
// implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordInsert is called after each single insert. inserted is false
	// when a unique container rejected a duplicate key.
	RecordInsert(duration time.Duration, inserted bool)

	// RecordBulkInsert is called after each range insert. count is the
	// number of records offered, inserted the number kept.
	RecordBulkInsert(count, inserted int, duration time.Duration)

	// RecordErase is called after each erase by key, iterator or range.
	RecordErase(removed int, duration time.Duration)

	// RecordLookup is called after each Find.
	RecordLookup(hit bool, duration time.Duration)

	// RecordRehash is called after each bucket array rebuild.
	RecordRehash(from, to int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, bool)          {}
func (NoopMetricsCollector) RecordBulkInsert(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordErase(int, time.Duration)           {}
func (NoopMetricsCollector) RecordLookup(bool, time.Duration)         {}
func (NoopMetricsCollector) RecordRehash(int, int, time.Duration)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount          atomic.Int64
	InsertRejected       atomic.Int64
	InsertTotalNanos     atomic.Int64
	BulkInsertCount      atomic.Int64
	BulkInsertItems      atomic.Int64
	BulkInsertKept       atomic.Int64
	BulkInsertTotalNanos atomic.Int64
	EraseCount           atomic.Int64
	ErasedItems          atomic.Int64
	EraseTotalNanos      atomic.Int64
	LookupCount          atomic.Int64
	LookupHits           atomic.Int64
	LookupTotalNanos     atomic.Int64
	RehashCount          atomic.Int64
	RehashTotalNanos     atomic.Int64
	MaxBucketCount       atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, inserted bool) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if !inserted {
		b.InsertRejected.Add(1)
	}
}

// RecordBulkInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBulkInsert(count, inserted int, duration time.Duration) {
	b.BulkInsertCount.Add(1)
	b.BulkInsertItems.Add(int64(count))
	b.BulkInsertKept.Add(int64(inserted))
	b.BulkInsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordErase implements MetricsCollector.
func (b *BasicMetricsCollector) RecordErase(removed int, duration time.Duration) {
	b.EraseCount.Add(1)
	b.ErasedItems.Add(int64(removed))
	b.EraseTotalNanos.Add(duration.Nanoseconds())
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(hit bool, duration time.Duration) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	if hit {
		b.LookupHits.Add(1)
	}
}

// RecordRehash implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRehash(from, to int, duration time.Duration) {
	b.RehashCount.Add(1)
	b.RehashTotalNanos.Add(duration.Nanoseconds())
	for {
		cur := b.MaxBucketCount.Load()
		if int64(to) <= cur || b.MaxBucketCount.CompareAndSwap(cur, int64(to)) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:        b.InsertCount.Load(),
		InsertRejected:     b.InsertRejected.Load(),
		InsertAvgNanos:     avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		BulkInsertCount:    b.BulkInsertCount.Load(),
		BulkInsertItems:    b.BulkInsertItems.Load(),
		BulkInsertKept:     b.BulkInsertKept.Load(),
		BulkInsertAvgNanos: avg(b.BulkInsertTotalNanos.Load(), b.BulkInsertCount.Load()),
		EraseCount:         b.EraseCount.Load(),
		ErasedItems:        b.ErasedItems.Load(),
		EraseAvgNanos:      avg(b.EraseTotalNanos.Load(), b.EraseCount.Load()),
		LookupCount:        b.LookupCount.Load(),
		LookupHits:         b.LookupHits.Load(),
		LookupAvgNanos:     avg(b.LookupTotalNanos.Load(), b.LookupCount.Load()),
		RehashCount:        b.RehashCount.Load(),
		RehashAvgNanos:     avg(b.RehashTotalNanos.Load(), b.RehashCount.Load()),
		MaxBucketCount:     b.MaxBucketCount.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount        int64
	InsertRejected     int64
	InsertAvgNanos     int64
	BulkInsertCount    int64
	BulkInsertItems    int64
	BulkInsertKept     int64
	BulkInsertAvgNanos int64
	EraseCount         int64
	ErasedItems        int64
	EraseAvgNanos      int64
	LookupCount        int64
	LookupHits         int64
	LookupAvgNanos     int64
	RehashCount        int64
	RehashAvgNanos     int64
	MaxBucketCount     int64
}
