package assoc

import (
	"fmt"

	"github.com/hupe1980/assoc/internal/hashindex"
	"github.com/hupe1980/assoc/internal/nodestore"
)

// hashCore adds the bucket interface shared by HashMap and HashSet.
type hashCore[K, V any] struct {
	core[K, V]
}

func (c *hashCore[K, V]) initHash(o *options, hash func(K) uint64, equal func(a, b K) bool) {
	c.init(o, func(s *nodestore.Store[K, V]) strategy[K] {
		return newHashIndex(s, hash, equal, o)
	})
}

func (c *hashCore[K, V]) buckets() *hashindex.Buckets[K] {
	return c.index.(*hashIndex[K, V]).Buckets
}

// BucketCount returns the number of buckets.
func (c *hashCore[K, V]) BucketCount() int {
	return c.buckets().BucketCount()
}

// BucketSize returns the number of records filed in bucket i.
func (c *hashCore[K, V]) BucketSize(i int) int {
	c.checkBucket(i)
	return c.buckets().BucketSize(i)
}

// Bucket returns the bucket index key maps to.
func (c *hashCore[K, V]) Bucket(key K) int {
	return c.buckets().Bucket(key)
}

// LoadFactor returns Len() / BucketCount().
func (c *hashCore[K, V]) LoadFactor() float64 {
	return c.buckets().LoadFactor()
}

// MaxLoadFactor returns the load factor ceiling.
func (c *hashCore[K, V]) MaxLoadFactor() float64 {
	return c.buckets().MaxLoadFactor()
}

// SetMaxLoadFactor changes the load factor ceiling. If the current load
// already exceeds z the buckets grow immediately. It panics unless z is
// positive and finite.
func (c *hashCore[K, V]) SetMaxLoadFactor(z float64) {
	c.buckets().SetMaxLoadFactor(z)
}

// Reserve rebuilds the bucket array with at least n buckets. The result is
// never below the bucket floor nor below what the load factor ceiling
// requires for the current records, so Reserve can shrink the array but
// never overload it. Sequence order is unaffected.
func (c *hashCore[K, V]) Reserve(n int) {
	c.buckets().Reserve(n)
}

// Rehash is Reserve, but does nothing when n does not exceed BucketCount().
func (c *hashCore[K, V]) Rehash(n int) {
	c.buckets().Rehash(n)
}

// BucketBegin returns a local iterator to the first record of bucket i.
func (c *hashCore[K, V]) BucketBegin(i int) LocalIterator[K, V] {
	c.checkBucket(i)
	return LocalIterator[K, V]{store: c.store, buckets: c.buckets(), bucket: i}
}

// BucketEnd returns the local iterator past the last record of bucket i.
func (c *hashCore[K, V]) BucketEnd(i int) LocalIterator[K, V] {
	it := c.BucketBegin(i)
	it.pos = c.buckets().BucketSize(i)
	return it
}

func (c *hashCore[K, V]) checkBucket(i int) {
	if i < 0 || i >= c.buckets().BucketCount() {
		panic(fmt.Sprintf("assoc: bucket %d out of range [0, %d)", i, c.buckets().BucketCount()))
	}
}

// Splice moves the records in [first, last) in front of pos. Only the
// sequence order changes; buckets, keys and iterators are unaffected.
// pos must not lie inside [first, last).
func (c *hashCore[K, V]) Splice(pos, first, last Iterator[K, V]) {
	c.store.Splice(c.owns(pos), c.owns(first), c.owns(last))
}

// HashFunction returns the hash function of the container.
func (c *hashCore[K, V]) HashFunction() func(K) uint64 {
	return c.buckets().Hash()
}

// KeyEqual returns the key equality predicate of the container.
func (c *hashCore[K, V]) KeyEqual() func(a, b K) bool {
	return c.buckets().Equal()
}

// Check verifies that the node store and the buckets agree and that every
// record is filed in the bucket its key hashes to.
func (c *hashCore[K, V]) Check() error {
	return c.check()
}
