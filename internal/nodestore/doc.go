// Package nodestore owns the records of an associative container.
//
// Records live in slots of a pointer-stable segmented array and are chained
// into a circular doubly-linked list through slot 0, the end sentinel. A
// record is addressed by a Handle, which packs the slot index together with a
// generation number. Erasing a record bumps the generation of its slot, so a
// handle only ever resolves to the record it was issued for; freed slots are
// reused lowest-index-first.
//
// Indexes (rbtree, hashindex) never hold records. They hold handles and read
// keys back through the store, so rebalancing or rehashing an index never
// moves a record or changes its identity.
//
// The store is not safe for concurrent use.
package nodestore
