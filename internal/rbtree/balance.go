package rbtree

// Helpers treat nil children as black leaves.

func isRed(n *node) bool {
	return n != nil && n.red
}

func parentOf(n *node) *node {
	if n == nil {
		return nil
	}
	return n.parent
}

func leftOf(n *node) *node {
	if n == nil {
		return nil
	}
	return n.left
}

func rightOf(n *node) *node {
	if n == nil {
		return nil
	}
	return n.right
}

func setRed(n *node, red bool) {
	if n != nil {
		n.red = red
	}
}

func (t *Tree[K]) rotateLeft(p *node) {
	if p == nil {
		return
	}
	r := p.right
	p.right = r.left
	if r.left != nil {
		r.left.parent = p
	}
	r.parent = p.parent
	switch {
	case p.parent == nil:
		t.root = r
	case p.parent.left == p:
		p.parent.left = r
	default:
		p.parent.right = r
	}
	r.left = p
	p.parent = r
}

func (t *Tree[K]) rotateRight(p *node) {
	if p == nil {
		return
	}
	l := p.left
	p.left = l.right
	if l.right != nil {
		l.right.parent = p
	}
	l.parent = p.parent
	switch {
	case p.parent == nil:
		t.root = l
	case p.parent.right == p:
		p.parent.right = l
	default:
		p.parent.left = l
	}
	l.right = p
	p.parent = l
}

func (t *Tree[K]) fixAfterInsert(x *node) {
	x.red = true
	for x != nil && x != t.root && x.parent.red {
		if parentOf(x) == leftOf(parentOf(parentOf(x))) {
			y := rightOf(parentOf(parentOf(x)))
			if isRed(y) {
				setRed(parentOf(x), false)
				setRed(y, false)
				setRed(parentOf(parentOf(x)), true)
				x = parentOf(parentOf(x))
			} else {
				if x == rightOf(parentOf(x)) {
					x = parentOf(x)
					t.rotateLeft(x)
				}
				setRed(parentOf(x), false)
				setRed(parentOf(parentOf(x)), true)
				t.rotateRight(parentOf(parentOf(x)))
			}
		} else {
			y := leftOf(parentOf(parentOf(x)))
			if isRed(y) {
				setRed(parentOf(x), false)
				setRed(y, false)
				setRed(parentOf(parentOf(x)), true)
				x = parentOf(parentOf(x))
			} else {
				if x == leftOf(parentOf(x)) {
					x = parentOf(x)
					t.rotateRight(x)
				}
				setRed(parentOf(x), false)
				setRed(parentOf(parentOf(x)), true)
				t.rotateLeft(parentOf(parentOf(x)))
			}
		}
	}
	t.root.red = false
}

// delete unlinks p, substituting its in-order successor when p has two
// children.
func (t *Tree[K]) delete(p *node) {
	t.size--

	if p.left != nil && p.right != nil {
		s := successor(p)
		p.h = s.h
		p = s
	}

	replacement := p.left
	if replacement == nil {
		replacement = p.right
	}

	switch {
	case replacement != nil:
		replacement.parent = p.parent
		switch {
		case p.parent == nil:
			t.root = replacement
		case p == p.parent.left:
			p.parent.left = replacement
		default:
			p.parent.right = replacement
		}
		p.left, p.right, p.parent = nil, nil, nil
		if !p.red {
			t.fixAfterDelete(replacement)
		}
	case p.parent == nil:
		t.root = nil
	default:
		if !p.red {
			t.fixAfterDelete(p)
		}
		if p.parent != nil {
			if p == p.parent.left {
				p.parent.left = nil
			} else if p == p.parent.right {
				p.parent.right = nil
			}
			p.parent = nil
		}
	}
}

func (t *Tree[K]) fixAfterDelete(x *node) {
	for x != t.root && !isRed(x) {
		if x == leftOf(parentOf(x)) {
			sib := rightOf(parentOf(x))
			if isRed(sib) {
				setRed(sib, false)
				setRed(parentOf(x), true)
				t.rotateLeft(parentOf(x))
				sib = rightOf(parentOf(x))
			}
			if !isRed(leftOf(sib)) && !isRed(rightOf(sib)) {
				setRed(sib, true)
				x = parentOf(x)
			} else {
				if !isRed(rightOf(sib)) {
					setRed(leftOf(sib), false)
					setRed(sib, true)
					t.rotateRight(sib)
					sib = rightOf(parentOf(x))
				}
				setRed(sib, isRed(parentOf(x)))
				setRed(parentOf(x), false)
				setRed(rightOf(sib), false)
				t.rotateLeft(parentOf(x))
				x = t.root
			}
		} else {
			sib := leftOf(parentOf(x))
			if isRed(sib) {
				setRed(sib, false)
				setRed(parentOf(x), true)
				t.rotateRight(parentOf(x))
				sib = leftOf(parentOf(x))
			}
			if !isRed(rightOf(sib)) && !isRed(leftOf(sib)) {
				setRed(sib, true)
				x = parentOf(x)
			} else {
				if !isRed(leftOf(sib)) {
					setRed(rightOf(sib), false)
					setRed(sib, true)
					t.rotateLeft(sib)
					sib = leftOf(parentOf(x))
				}
				setRed(sib, isRed(parentOf(x)))
				setRed(parentOf(x), false)
				setRed(leftOf(sib), false)
				t.rotateRight(parentOf(x))
				x = t.root
			}
		}
	}
	setRed(x, false)
}
