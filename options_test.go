package assoc

import (
	"bytes"
	"log/slog"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPolicy_String(t *testing.T) {
	assert.Equal(t, "unique", Unique.String())
	assert.Equal(t, "multi", Multi.String())
	assert.Equal(t, "KeyPolicy(7)", KeyPolicy(7).String())
}

func TestOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		o := newOptions(nil)

		assert.Equal(t, Unique, o.policy)
		assert.NotNil(t, o.logger)
		assert.Nil(t, o.metricsCollector)
	})

	t.Run("UnknownPolicyPanics", func(t *testing.T) {
		assert.Panics(t, func() { NewTreeSet[int](WithKeyPolicy(KeyPolicy(3))) })
	})

	t.Run("NilLoggerDisablesLogging", func(t *testing.T) {
		o := newOptions([]Option{WithLogger(nil)})
		require.NotNil(t, o.logger)
		o.logger.LogClear(1)
	})

	t.Run("HashTuning", func(t *testing.T) {
		m := NewHashMap[int, int](
			WithBucketCount(3),
			WithMaxLoadFactor(2),
			WithGrowthFactor(4),
		)
		assert.Equal(t, 10, m.BucketCount())
		assert.Equal(t, 2.0, m.MaxLoadFactor())

		for i := range 21 {
			m.Insert(i, i)
		}
		assert.Equal(t, 40, m.BucketCount())
	})

	t.Run("InvalidMaxLoadFactorPanics", func(t *testing.T) {
		m := NewHashMap[int, int]()
		for _, z := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
			assert.Panics(t, func() { WithMaxLoadFactor(z) }, "option z=%v", z)
			assert.Panics(t, func() { m.SetMaxLoadFactor(z) }, "setter z=%v", z)
		}
		assert.Equal(t, 1.0, m.MaxLoadFactor())
	})

	t.Run("ConstructorOptionsNotAliased", func(t *testing.T) {
		opts := make([]Option, 1, 4)
		opts[0] = WithBucketCount(64)

		multi := NewHashMultiSet[int](opts...)
		unique := NewHashSet[int](opts...)

		assert.Equal(t, Multi, multi.Policy())
		assert.Equal(t, Unique, unique.Policy())
		assert.Equal(t, 1, len(opts))
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := NewHashSet[int](WithLogger(logger.WithName("ids")))
	m.InsertAll(slices.Values([]int{1, 2, 2}))
	for i := range 20 {
		m.Insert(i)
	}
	m.Clear()

	out := buf.String()
	assert.Contains(t, out, `"container":"ids"`)
	assert.Contains(t, out, "bulk insert completed with duplicates skipped")
	assert.Contains(t, out, "rehash completed")
	assert.Contains(t, out, `"to_buckets":20`)
	assert.Contains(t, out, "container cleared")
}

func TestLogger_Constructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))
	assert.NotNil(t, NoopLogger())
}

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	m := NewTreeMap[int, int](WithMetricsCollector(mc))

	m.Insert(1, 1)
	m.Insert(1, 2)
	m.InsertAll(func(yield func(int, int) bool) {
		for i := 2; i < 5; i++ {
			if !yield(i, i) {
				return
			}
		}
	})
	m.Find(1)
	m.Find(9)
	m.Erase(2)
	m.EraseRange(m.Begin(), m.End())

	stats := mc.GetStats()
	// Tree bulk inserts run through single inserts.
	assert.Equal(t, int64(5), stats.InsertCount)
	assert.Equal(t, int64(1), stats.InsertRejected)
	assert.Equal(t, int64(1), stats.BulkInsertCount)
	assert.Equal(t, int64(3), stats.BulkInsertItems)
	assert.Equal(t, int64(3), stats.BulkInsertKept)
	assert.Equal(t, int64(2), stats.LookupCount)
	assert.Equal(t, int64(1), stats.LookupHits)
	assert.Equal(t, int64(2), stats.EraseCount)
	assert.Equal(t, int64(4), stats.ErasedItems)
	assert.Zero(t, stats.RehashCount)
}

func TestBasicMetricsCollector_Durations(t *testing.T) {
	mc := &BasicMetricsCollector{}
	mc.RecordBulkInsert(3, 2, 10*time.Nanosecond)
	mc.RecordBulkInsert(4, 4, 30*time.Nanosecond)
	mc.RecordErase(1, 4*time.Nanosecond)
	mc.RecordErase(0, 8*time.Nanosecond)

	assert.Equal(t, int64(40), mc.BulkInsertTotalNanos.Load())
	assert.Equal(t, int64(12), mc.EraseTotalNanos.Load())

	stats := mc.GetStats()
	assert.Equal(t, int64(20), stats.BulkInsertAvgNanos)
	assert.Equal(t, int64(6), stats.EraseAvgNanos)
	assert.Equal(t, int64(7), stats.BulkInsertItems)
	assert.Equal(t, int64(6), stats.BulkInsertKept)
	assert.Equal(t, int64(1), stats.ErasedItems)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	m := NewHashMap[int, int](WithMetricsCollector(mc))
	for i := range 50 {
		m.Insert(i, i)
	}
	assert.Equal(t, 50, m.Len())
}
