package assoc

import (
	"fmt"

	"github.com/hupe1980/assoc/internal/hashindex"
)

// KeyPolicy selects whether a container admits duplicate keys.
type KeyPolicy uint8

const (
	// Unique containers hold at most one record per key.
	Unique KeyPolicy = iota
	// Multi containers keep every inserted record; equal keys are kept in
	// insertion order.
	Multi
)

// String implements fmt.Stringer.
func (p KeyPolicy) String() string {
	switch p {
	case Unique:
		return "unique"
	case Multi:
		return "multi"
	default:
		return fmt.Sprintf("KeyPolicy(%d)", uint8(p))
	}
}

type options struct {
	policy           KeyPolicy
	logger           *Logger
	metricsCollector MetricsCollector
	bucketCount      int
	maxLoadFactor    float64
	growthFactor     float64
}

// Option configures a container at construction.
//
// Hash tuning options are ignored by tree containers.
type Option func(*options)

// WithKeyPolicy selects unique or multi keys. The default is Unique.
func WithKeyPolicy(p KeyPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLogger configures structured logging of coarse container events
// (rehash, bulk insert, clear, failed checks).
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures operational metrics collection.
//
// If nil is passed (the default), no timings are taken at all.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithBucketCount sets the initial bucket count of a hash container. Values
// below the bucket floor are raised to it.
func WithBucketCount(n int) Option {
	return func(o *options) {
		o.bucketCount = n
	}
}

// WithMaxLoadFactor sets the items-per-bucket ceiling of a hash container.
// Default: 1.0. Like SetMaxLoadFactor it panics unless z is positive and
// finite.
func WithMaxLoadFactor(z float64) Option {
	if !hashindex.ValidMaxLoadFactor(z) {
		panic(fmt.Sprintf("assoc: invalid max load factor %v", z))
	}
	return func(o *options) {
		o.maxLoadFactor = z
	}
}

// WithGrowthFactor sets how much a hash container multiplies its bucket count
// by when the load factor ceiling is exceeded. Default: 2.
func WithGrowthFactor(g float64) Option {
	return func(o *options) {
		o.growthFactor = g
	}
}

func newOptions(optFns []Option) *options {
	o := &options{
		policy: Unique,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(o)
	}
	if o.policy != Unique && o.policy != Multi {
		panic(fmt.Sprintf("assoc: unknown key policy %d", o.policy))
	}
	return o
}
