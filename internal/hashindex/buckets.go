package hashindex

import (
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/hupe1980/assoc/internal/nodestore"
)

const (
	// MinBucketCount is the floor for the bucket array size.
	MinBucketCount = 10
	// DefaultMaxLoadFactor is the default ceiling for items per bucket.
	DefaultMaxLoadFactor = 1.0
	// DefaultGrowthFactor scales the bucket count on automatic growth.
	DefaultGrowthFactor = 2.0
)

// Keys gives the index access to the records it files. The hash of a record
// is computed once, when it is filed, and kept with the record; rebuilding
// and erasing use the kept value and never hash a filed key again.
type Keys[K any] interface {
	Key(h nodestore.Handle) K
	Hash(h nodestore.Handle) uint64
	SetHash(h nodestore.Handle, hash uint64)
}

// Options configures a bucket array.
type Options struct {
	// BucketCount is the initial number of buckets (raised to MinBucketCount).
	BucketCount int
	// MaxLoadFactor defaults to DefaultMaxLoadFactor when zero. New panics
	// unless it is then positive and finite.
	MaxLoadFactor float64
	// GrowthFactor defaults to DefaultGrowthFactor; values <= 1, NaN and
	// +Inf are replaced.
	GrowthFactor float64
	// Multi keeps several handles with equal keys.
	Multi bool
	// OnRehash, if set, is called after every bucket array rebuild.
	OnRehash func(from, to, items int, took time.Duration)
}

// Buckets is a hash index over node store handles.
type Buckets[K any] struct {
	buckets  [][]nodestore.Handle
	size     int
	hash     func(K) uint64
	equal    func(a, b K) bool
	keys     Keys[K]
	maxLoad  float64
	growth   float64
	multi    bool
	onRehash func(from, to, items int, took time.Duration)
}

// New creates an empty bucket array.
func New[K any](keys Keys[K], hash func(K) uint64, equal func(a, b K) bool, opts Options) *Buckets[K] {
	if hash == nil || equal == nil {
		panic("hashindex: nil hash or equal function")
	}
	if opts.MaxLoadFactor == 0 {
		opts.MaxLoadFactor = DefaultMaxLoadFactor
	}
	if !ValidMaxLoadFactor(opts.MaxLoadFactor) {
		panic(fmt.Sprintf("hashindex: invalid max load factor %v", opts.MaxLoadFactor))
	}
	if !(opts.GrowthFactor > 1) || math.IsInf(opts.GrowthFactor, 1) {
		opts.GrowthFactor = DefaultGrowthFactor
	}
	b := &Buckets[K]{
		hash:     hash,
		equal:    equal,
		keys:     keys,
		maxLoad:  opts.MaxLoadFactor,
		growth:   opts.GrowthFactor,
		multi:    opts.Multi,
		onRehash: opts.OnRehash,
	}
	b.buckets = make([][]nodestore.Handle, max(opts.BucketCount, MinBucketCount))
	return b
}

// Len returns the number of filed handles.
func (b *Buckets[K]) Len() int {
	return b.size
}

// BucketCount returns the size of the bucket array.
func (b *Buckets[K]) BucketCount() int {
	return len(b.buckets)
}

// BucketSize returns the chain length of bucket i.
func (b *Buckets[K]) BucketSize(i int) int {
	return len(b.buckets[i])
}

// At returns the chain of bucket i. The slice must not be modified.
func (b *Buckets[K]) At(i int) []nodestore.Handle {
	return b.buckets[i]
}

// Bucket returns the bucket index for key.
func (b *Buckets[K]) Bucket(key K) int {
	return b.slot(b.hash(key))
}

func (b *Buckets[K]) slot(hash uint64) int {
	return int(hash % uint64(len(b.buckets)))
}

// LoadFactor returns items per bucket.
func (b *Buckets[K]) LoadFactor() float64 {
	return float64(b.size) / float64(len(b.buckets))
}

// MaxLoadFactor returns the load factor ceiling.
func (b *Buckets[K]) MaxLoadFactor() float64 {
	return b.maxLoad
}

// SetMaxLoadFactor changes the ceiling and grows the array at once if the
// current load exceeds it.
func (b *Buckets[K]) SetMaxLoadFactor(z float64) {
	if !ValidMaxLoadFactor(z) {
		panic(fmt.Sprintf("hashindex: invalid max load factor %v", z))
	}
	b.maxLoad = z
	if b.LoadFactor() > z {
		b.Reserve(b.required(b.size))
	}
}

// ValidMaxLoadFactor reports whether z is usable as a load factor ceiling:
// positive and finite.
func ValidMaxLoadFactor(z float64) bool {
	return z > 0 && !math.IsInf(z, 1)
}

// Hash returns the hash function.
func (b *Buckets[K]) Hash() func(K) uint64 {
	return b.hash
}

// Equal returns the key equality predicate.
func (b *Buckets[K]) Equal() func(a, b K) bool {
	return b.equal
}

// required is the smallest bucket count that keeps items within the ceiling.
func (b *Buckets[K]) required(items int) int {
	return int(math.Ceil(float64(items) / b.maxLoad))
}

// Reserve rebuilds the bucket array with at least n buckets, never fewer than
// MinBucketCount nor fewer than the current load factor ceiling requires.
func (b *Buckets[K]) Reserve(n int) {
	n = max(n, MinBucketCount, b.required(b.size))
	from := len(b.buckets)

	var start time.Time
	if b.onRehash != nil {
		start = time.Now()
	}

	old := b.buckets
	b.buckets = make([][]nodestore.Handle, n)
	for _, chain := range old {
		for _, h := range chain {
			i := b.slot(b.keys.Hash(h))
			b.buckets[i] = append(b.buckets[i], h)
		}
	}

	if b.onRehash != nil {
		b.onRehash(from, n, b.size, time.Since(start))
	}
}

// Rehash is Reserve, except that it does nothing when n does not exceed the
// current bucket count.
func (b *Buckets[K]) Rehash(n int) {
	if n <= len(b.buckets) {
		return
	}
	b.Reserve(n)
}

// ReserveFor makes room for items handles in total without growth on the
// way, rebuilding at most once.
func (b *Buckets[K]) ReserveFor(items int) {
	if need := b.required(items); need > len(b.buckets) {
		b.Reserve(need)
	}
}

// Find returns the first filed handle whose key equals key.
func (b *Buckets[K]) Find(key K) (nodestore.Handle, bool) {
	for _, h := range b.buckets[b.Bucket(key)] {
		if b.equal(b.keys.Key(h), key) {
			return h, true
		}
	}
	return nodestore.End, false
}

// Count returns the number of filed handles whose key equals key.
func (b *Buckets[K]) Count(key K) int {
	c := 0
	for _, h := range b.buckets[b.Bucket(key)] {
		if b.equal(b.keys.Key(h), key) {
			c++
		}
	}
	return c
}

// Insert files h. In unique mode it fails without mutation if an equal key
// is already filed and returns the handle holding that key.
func (b *Buckets[K]) Insert(h nodestore.Handle) (nodestore.Handle, bool) {
	key := b.keys.Key(h)
	hash := b.hash(key)
	i := b.slot(hash)
	if !b.multi {
		for _, other := range b.buckets[i] {
			if b.equal(b.keys.Key(other), key) {
				return other, false
			}
		}
	}
	b.keys.SetHash(h, hash)
	b.buckets[i] = append(b.buckets[i], h)
	b.size++

	if float64(b.size) > float64(len(b.buckets))*b.maxLoad {
		b.Reserve(max(b.size, int(float64(len(b.buckets))*b.growth)))
	}
	return h, true
}

// Erase removes h from its chain. It returns false if h is not filed.
func (b *Buckets[K]) Erase(h nodestore.Handle) bool {
	i := b.slot(b.keys.Hash(h))
	chain := b.buckets[i]
	for j, other := range chain {
		if other == h {
			b.buckets[i] = append(chain[:j], chain[j+1:]...)
			b.size--
			return true
		}
	}
	return false
}

// EraseKey removes the first filed handle whose key equals key and returns
// it. It returns false when no key matches.
func (b *Buckets[K]) EraseKey(key K) (nodestore.Handle, bool) {
	h, ok := b.Find(key)
	if !ok {
		return nodestore.End, false
	}
	b.Erase(h)
	return h, true
}

// Clear empties every chain and shrinks the array back to the floor.
func (b *Buckets[K]) Clear() {
	b.buckets = make([][]nodestore.Handle, MinBucketCount)
	b.size = 0
}

// All yields every filed handle, bucket by bucket.
func (b *Buckets[K]) All() iter.Seq[nodestore.Handle] {
	return func(yield func(nodestore.Handle) bool) {
		for _, chain := range b.buckets {
			for _, h := range chain {
				if !yield(h) {
					return
				}
			}
		}
	}
}

// Validate checks that every handle sits in the bucket its key hashes to,
// that the item count matches, and that unique mode holds no duplicates.
func (b *Buckets[K]) Validate() error {
	n := 0
	for i, chain := range b.buckets {
		for j, h := range chain {
			n++
			key := b.keys.Key(h)
			if want := b.slot(b.keys.Hash(h)); want != i {
				return fmt.Errorf("hashindex: handle %v filed in bucket %d, belongs in %d", h, i, want)
			}
			if b.multi {
				continue
			}
			for _, other := range chain[j+1:] {
				if b.equal(b.keys.Key(other), key) {
					return fmt.Errorf("hashindex: duplicate key in bucket %d", i)
				}
			}
		}
	}
	if n != b.size {
		return fmt.Errorf("hashindex: counted %d handles, size %d", n, b.size)
	}
	if b.LoadFactor() > b.maxLoad {
		return fmt.Errorf("hashindex: load factor %.3f exceeds %.3f", b.LoadFactor(), b.maxLoad)
	}
	return nil
}
