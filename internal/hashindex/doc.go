// Package hashindex implements the unordered index: a resizable array of
// bucket chains holding node store handles.
//
// A handle is filed under hash(key) mod BucketCount. The hash is taken once,
// when the handle is filed, and stored with the record; rebuilds and erasure
// by handle reuse it, so keys whose hash is not stable (NaN under a seeded
// hash) can always be removed again. After a successful
// insert, when the item count exceeds BucketCount*MaxLoadFactor, the array is
// rebuilt at max(items, BucketCount*GrowthFactor) buckets. Rebuilding
// re-files handles only; records stay put in the node store, so iterators
// over the store survive every rehash.
package hashindex
