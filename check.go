package assoc

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/assoc/internal/nodestore"
)

// check audits the pairing of node store and index:
//
//   - the index holds exactly the live store slots, each once, none stale
//   - the index passes its own structural validation
//   - ordered containers traverse the store in index order
//
// Failures are logged and returned as *CorruptionError.
func (c *core[K, V]) check() error {
	err := c.audit()
	c.opts.logger.LogCheck(c.store.Len(), err)
	return err
}

func (c *core[K, V]) audit() error {
	if n, m := c.store.Len(), c.index.Len(); n != m {
		return corrupted("size", nil, "store holds %d records, index %d", n, m)
	}

	live := roaring.New()
	for h := range c.store.All() {
		live.Add(h.Slot())
	}
	if live.GetCardinality() != uint64(c.store.Len()) {
		return corrupted("store", nil, "sequence visits %d slots, size %d", live.GetCardinality(), c.store.Len())
	}

	filed := roaring.New()
	for h := range c.index.handles() {
		if !c.store.Contains(h) {
			return corrupted("index", nil, "stale handle %v", h)
		}
		if !filed.CheckedAdd(h.Slot()) {
			return corrupted("index", nil, "handle %v filed twice", h)
		}
	}
	if !live.Equals(filed) {
		missing := roaring.AndNot(live, filed)
		extra := roaring.AndNot(filed, live)
		return corrupted("index", nil, "%d records unindexed, %d foreign handles", missing.GetCardinality(), extra.GetCardinality())
	}

	if err := c.index.Validate(); err != nil {
		return corrupted("index", err, "%v", err)
	}

	if c.index.ordered() {
		h := c.store.Begin()
		for ih := range c.index.handles() {
			if h != ih {
				return corrupted("order", nil, "store holds %v where the index expects %v", h, ih)
			}
			h = c.store.Next(h)
		}
		if h != nodestore.End {
			return corrupted("order", nil, "store continues past the index at %v", h)
		}
	}
	return nil
}
