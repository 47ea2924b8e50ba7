package prtree

import (
	"fmt"

	"github.com/gotrees/prbtree/vnode"
)

// Validate checks every red-black invariant against the tree as it stood at
// version v: binary-search ordering, a black root, no red node with a red
// child, and equal black-height on every root-to-nil path. It returns the
// first violation found, or nil if version v is a genuine red-black tree.
//
// Intended for tests; production callers have no reason to call it.
func (t *Tree[K]) Validate(v int) error {
	v, err := t.checkVersion(v)
	if err != nil {
		return err
	}
	root := t.roots[v]
	if root == nil {
		return nil
	}
	if root.Color(v) != vnode.Black {
		return fmt.Errorf("prtree: root %v is not black at version %d", root.Key(), v)
	}
	_, err = t.validateNode(root, nil, nil, v)
	return err
}

// validateNode checks the subtree rooted at n, whose keys must all lie
// strictly between the keys of lo and hi (a nil bound is open), and returns
// its black-height (the number of black nodes on any root-to-nil path within
// it, counting n itself) alongside the first violation found.
func (t *Tree[K]) validateNode(n, lo, hi *vnode.Node[K], v int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && !t.less(lo.Key(), n.Key()) {
		return 0, fmt.Errorf("prtree: key %v is not greater than ancestor %v at version %d", n.Key(), lo.Key(), v)
	}
	if hi != nil && !t.less(n.Key(), hi.Key()) {
		return 0, fmt.Errorf("prtree: key %v is not less than ancestor %v at version %d", n.Key(), hi.Key(), v)
	}

	left := n.Left(v)
	right := n.Right(v)

	if left != nil && !t.less(left.Key(), n.Key()) {
		return 0, fmt.Errorf("prtree: left child %v is not less than parent %v at version %d", left.Key(), n.Key(), v)
	}
	if right != nil && !t.less(n.Key(), right.Key()) {
		return 0, fmt.Errorf("prtree: right child %v is not greater than parent %v at version %d", right.Key(), n.Key(), v)
	}

	if n.Color(v) == vnode.Red {
		if isRed(left, v) {
			return 0, fmt.Errorf("prtree: red node %v has red left child %v at version %d", n.Key(), left.Key(), v)
		}
		if isRed(right, v) {
			return 0, fmt.Errorf("prtree: red node %v has red right child %v at version %d", n.Key(), right.Key(), v)
		}
	}

	leftHeight, err := t.validateNode(left, lo, n, v)
	if err != nil {
		return 0, err
	}
	rightHeight, err := t.validateNode(right, n, hi, v)
	if err != nil {
		return 0, err
	}
	if leftHeight != rightHeight {
		return 0, fmt.Errorf("prtree: unequal black-height under %v at version %d (left %d, right %d)", n.Key(), v, leftHeight, rightHeight)
	}

	height := leftHeight
	if n.Color(v) == vnode.Black {
		height++
	}
	return height, nil
}
