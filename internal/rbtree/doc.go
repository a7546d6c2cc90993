// Package rbtree implements the ordered index: a red-black tree whose nodes
// carry node store handles instead of records.
//
// Keys are read back through a caller-supplied accessor, so the tree never
// owns or moves a record. In multi mode the comparator is extended with the
// tie-break id stamped on each record, which makes equal keys a strict total
// order in insertion order; no two tree nodes ever compare equal.
//
// Deletion follows the usual successor-substitution scheme. Substitution
// rewrites the handle carried by a tree node; the records themselves stay
// where they are in the node store.
package rbtree
