package assoc

import (
	"iter"
	"time"

	"github.com/hupe1980/assoc/internal/hashindex"
	"github.com/hupe1980/assoc/internal/nodestore"
	"github.com/hupe1980/assoc/internal/rbtree"
)

// strategy is the index half of a container. The facade places records in
// the node store and then files their handles through a strategy.
type strategy[K any] interface {
	// locate returns where a new record with key goes in the store, or the
	// conflicting handle when a unique container already holds key.
	locate(key K) (pos nodestore.Handle, dup nodestore.Handle, found bool)
	// locateHint is locate, taking hint as the position when acceptable.
	locateHint(hint nodestore.Handle, key K) (pos nodestore.Handle, dup nodestore.Handle, found bool)
	// ordered reports whether store order must follow key order.
	ordered() bool
	handles() iter.Seq[nodestore.Handle]

	Find(key K) (nodestore.Handle, bool)
	Count(key K) int
	Insert(h nodestore.Handle) (nodestore.Handle, bool)
	Erase(h nodestore.Handle) bool
	Len() int
	Clear()
	Validate() error
}

type treeIndex[K, V any] struct {
	*rbtree.Tree[K]
	store *nodestore.Store[K, V]
	multi bool
}

func newTreeIndex[K, V any](store *nodestore.Store[K, V], less func(a, b K) bool, multi bool) *treeIndex[K, V] {
	return &treeIndex[K, V]{
		Tree:  rbtree.New[K](store, less, multi),
		store: store,
		multi: multi,
	}
}

func (t *treeIndex[K, V]) locate(key K) (nodestore.Handle, nodestore.Handle, bool) {
	if t.multi {
		// After every equal key: equal keys stay in insertion order.
		return t.UpperBound(key), nodestore.End, false
	}
	lb := t.LowerBound(key)
	if lb != nodestore.End && !t.Less()(key, t.store.Key(lb)) {
		return nodestore.End, lb, true
	}
	return lb, nodestore.End, false
}

// locateHint accepts hint when the new record belongs right in front of it:
// prev < key < hint for unique keys, prev <= key < hint for multi keys.
func (t *treeIndex[K, V]) locateHint(hint nodestore.Handle, key K) (nodestore.Handle, nodestore.Handle, bool) {
	less := t.Less()
	if hint != nodestore.End && !less(key, t.store.Key(hint)) {
		return t.locate(key)
	}
	if prev := t.store.Prev(hint); prev != nodestore.End {
		pk := t.store.Key(prev)
		if t.multi && less(key, pk) || !t.multi && !less(pk, key) {
			return t.locate(key)
		}
	}
	return hint, nodestore.End, false
}

func (t *treeIndex[K, V]) ordered() bool { return true }

func (t *treeIndex[K, V]) handles() iter.Seq[nodestore.Handle] { return t.Ascend() }

type hashIndex[K, V any] struct {
	*hashindex.Buckets[K]
	multi bool
}

func newHashIndex[K, V any](store *nodestore.Store[K, V], hash func(K) uint64, equal func(a, b K) bool, o *options) *hashIndex[K, V] {
	return &hashIndex[K, V]{
		Buckets: hashindex.New[K](store, hash, equal, hashindex.Options{
			BucketCount:   o.bucketCount,
			MaxLoadFactor: o.maxLoadFactor,
			GrowthFactor:  o.growthFactor,
			Multi:         o.policy == Multi,
			OnRehash: func(from, to, items int, d time.Duration) {
				o.logger.LogRehash(from, to, items, d)
				if o.metricsCollector != nil {
					o.metricsCollector.RecordRehash(from, to, d)
				}
			},
		}),
		multi: o.policy == Multi,
	}
}

func (h *hashIndex[K, V]) locate(key K) (nodestore.Handle, nodestore.Handle, bool) {
	return h.locateHint(nodestore.End, key)
}

func (h *hashIndex[K, V]) locateHint(hint nodestore.Handle, key K) (nodestore.Handle, nodestore.Handle, bool) {
	if !h.multi {
		if dup, ok := h.Find(key); ok {
			return nodestore.End, dup, true
		}
	}
	return hint, nodestore.End, false
}

func (h *hashIndex[K, V]) ordered() bool { return false }

func (h *hashIndex[K, V]) handles() iter.Seq[nodestore.Handle] { return h.All() }
