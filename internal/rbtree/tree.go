package rbtree

import (
	"errors"
	"fmt"
	"iter"

	"github.com/hupe1980/assoc/internal/nodestore"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("rbtree: invariant violated")

type node struct {
	h      nodestore.Handle
	left   *node
	right  *node
	parent *node
	red    bool
}

// Records gives the tree read access to the records it indexes.
type Records[K any] interface {
	Key(h nodestore.Handle) K
	UID(h nodestore.Handle) uint64
}

// Tree is an ordered index over node store handles.
type Tree[K any] struct {
	root  *node
	size  int
	less  func(a, b K) bool
	recs  Records[K]
	multi bool
}

// New creates an empty tree ordered by less. In multi mode equal keys are
// kept and ordered by their tie-break ids.
func New[K any](recs Records[K], less func(a, b K) bool, multi bool) *Tree[K] {
	if less == nil {
		panic("rbtree: nil less function")
	}
	return &Tree[K]{less: less, recs: recs, multi: multi}
}

// Len returns the number of indexed handles.
func (t *Tree[K]) Len() int {
	return t.size
}

// Less returns the key comparator.
func (t *Tree[K]) Less() func(a, b K) bool {
	return t.less
}

// Clear drops every tree node.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// before is the effective comparator between two indexed records.
func (t *Tree[K]) before(a, b nodestore.Handle) bool {
	ka, kb := t.recs.Key(a), t.recs.Key(b)
	if t.less(ka, kb) {
		return true
	}
	if !t.multi || t.less(kb, ka) {
		return false
	}
	return t.recs.UID(a) < t.recs.UID(b)
}

// Insert links h into the tree. In unique mode it fails without mutation if
// an equal key is already indexed and returns the handle holding that key.
func (t *Tree[K]) Insert(h nodestore.Handle) (nodestore.Handle, bool) {
	if t.root == nil {
		t.root = &node{h: h}
		t.size = 1
		return h, true
	}

	parent := t.root
	var goLeft bool
	for x := t.root; x != nil; {
		parent = x
		switch {
		case t.before(h, x.h):
			goLeft = true
			x = x.left
		case t.before(x.h, h):
			goLeft = false
			x = x.right
		default:
			return x.h, false
		}
	}

	n := &node{h: h, parent: parent, red: true}
	if goLeft {
		parent.left = n
	} else {
		parent.right = n
	}
	t.size++
	t.fixAfterInsert(n)
	return h, true
}

// Erase unlinks h. It returns false if h is not indexed.
func (t *Tree[K]) Erase(h nodestore.Handle) bool {
	p := t.lookup(h)
	if p == nil {
		return false
	}
	t.delete(p)
	return true
}

// lookup descends with the effective comparator to the node carrying h.
func (t *Tree[K]) lookup(h nodestore.Handle) *node {
	x := t.root
	for x != nil {
		if x.h == h {
			return x
		}
		if t.before(h, x.h) {
			x = x.left
		} else {
			x = x.right
		}
	}
	return nil
}

// nearest descends by key. On an equal key it records the match and keeps
// moving left (toward the first equal) or right (toward the last equal).
// It returns the match if any, else the last node visited, else nil.
func (t *Tree[K]) nearest(key K, towardLast bool) *node {
	if t.root == nil {
		return nil
	}
	ret := t.root
	var matched *node
	for {
		var next *node
		k := t.recs.Key(ret.h)
		switch {
		case t.less(key, k):
			next = ret.left
		case t.less(k, key):
			next = ret.right
		default:
			matched = ret
			if towardLast {
				next = ret.right
			} else {
				next = ret.left
			}
		}
		if next == nil {
			break
		}
		ret = next
	}
	if matched != nil {
		return matched
	}
	return ret
}

// NearestByKey returns the first (or, with towardLast, the last) handle whose
// key equals key, or else the would-be insertion neighbour. It returns End
// for an empty tree.
func (t *Tree[K]) NearestByKey(key K, towardLast bool) nodestore.Handle {
	n := t.nearest(key, towardLast)
	if n == nil {
		return nodestore.End
	}
	return n.h
}

// Find returns the first handle whose key equals key.
func (t *Tree[K]) Find(key K) (nodestore.Handle, bool) {
	n := t.nearest(key, false)
	if n == nil || t.less(t.recs.Key(n.h), key) || t.less(key, t.recs.Key(n.h)) {
		return nodestore.End, false
	}
	return n.h, true
}

// LowerBound returns the first handle whose key is not less than key, or End.
func (t *Tree[K]) LowerBound(key K) nodestore.Handle {
	n := t.nearest(key, false)
	if n == nil {
		return nodestore.End
	}
	if t.less(t.recs.Key(n.h), key) {
		n = successor(n)
	}
	return handleOf(n)
}

// UpperBound returns the first handle whose key is greater than key, or End.
func (t *Tree[K]) UpperBound(key K) nodestore.Handle {
	n := t.nearest(key, true)
	if n == nil {
		return nodestore.End
	}
	if !t.less(key, t.recs.Key(n.h)) {
		n = successor(n)
	}
	return handleOf(n)
}

// Count returns the number of handles whose key equals key.
func (t *Tree[K]) Count(key K) int {
	n := t.nearest(key, false)
	c := 0
	for ; n != nil; n = successor(n) {
		k := t.recs.Key(n.h)
		if t.less(k, key) {
			continue // insertion neighbour left of the range
		}
		if t.less(key, k) {
			break
		}
		c++
	}
	return c
}

// First returns the smallest handle, or End.
func (t *Tree[K]) First() nodestore.Handle {
	if t.root == nil {
		return nodestore.End
	}
	return minimum(t.root).h
}

// Ascend yields every handle in order.
func (t *Tree[K]) Ascend() iter.Seq[nodestore.Handle] {
	return func(yield func(nodestore.Handle) bool) {
		if t.root == nil {
			return
		}
		for n := minimum(t.root); n != nil; n = successor(n) {
			if !yield(n.h) {
				return
			}
		}
	}
}

// Validate checks ordering, parent links, the red rule and black height.
func (t *Tree[K]) Validate() error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree with size %d", ErrInvalid, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvalid)
	}
	if t.root.red {
		return fmt.Errorf("%w: red root", ErrInvalid)
	}
	count := 0
	if _, err := t.validate(t.root, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, size %d", ErrInvalid, count, t.size)
	}
	var prev *node
	for n := minimum(t.root); n != nil; n = successor(n) {
		if prev != nil && !t.before(prev.h, n.h) {
			return fmt.Errorf("%w: %v not ordered before %v", ErrInvalid, prev.h, n.h)
		}
		prev = n
	}
	return nil
}

func (t *Tree[K]) validate(n *node, count *int) (int, error) {
	if n == nil {
		return 1, nil
	}
	*count++
	for _, c := range []*node{n.left, n.right} {
		if c == nil {
			continue
		}
		if c.parent != n {
			return 0, fmt.Errorf("%w: broken parent link at %v", ErrInvalid, c.h)
		}
		if n.red && c.red {
			return 0, fmt.Errorf("%w: consecutive red nodes at %v", ErrInvalid, c.h)
		}
	}
	lh, err := t.validate(n.left, count)
	if err != nil {
		return 0, err
	}
	rh, err := t.validate(n.right, count)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black height %d != %d below %v", ErrInvalid, lh, rh, n.h)
	}
	if !n.red {
		lh++
	}
	return lh, nil
}

func handleOf(n *node) nodestore.Handle {
	if n == nil {
		return nodestore.End
	}
	return n.h
}

func minimum(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func successor(n *node) *node {
	if n.right != nil {
		return minimum(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}
