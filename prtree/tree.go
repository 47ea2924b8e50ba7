// Package prtree implements a partially persistent red-black tree: an
// ordered set of keys that retains every historical version produced by a
// linear sequence of insertions and deletions. Only the latest version is
// mutable; every earlier version remains fully queryable -- successor
// lookups and in-order enumeration with depth and color -- without
// reconstructing it.
//
// The tree owns a set of vnode.Node values and a version-to-root table.
// Mutating a node never clones it: each insert or delete writes a new
// history entry into the fields of the nodes it touches (see package
// vnode), so old versions keep reading exactly what was true for them while
// the newest version keeps accepting writes.
package prtree

import "github.com/gotrees/prbtree/vnode"

// LessFunc reports whether a is ordered before b. It must define a strict
// weak ordering over K.
type LessFunc[K any] func(a, b K) bool

// Tree is a partially persistent red-black tree keyed by K.
//
// The zero value is not usable; construct one with New.
type Tree[K any] struct {
	less    LessFunc[K]
	roots   []*vnode.Node[K] // roots[v] is the root of version v, or nil for an empty tree
	current int
}

// New creates an empty tree. Version 0 is the empty tree.
func New[K any](less LessFunc[K]) *Tree[K] {
	return &Tree[K]{
		less:  less,
		roots: []*vnode.Node[K]{nil},
	}
}

// CurrentVersion returns the most recently installed version.
func (t *Tree[K]) CurrentVersion() int {
	return t.current
}

// clamp resolves a requested version against the tree's range: negative
// versions are rejected by the caller before reaching here (see each
// operation's doc comment), and versions beyond the latest silently clamp
// down to it.
func (t *Tree[K]) clamp(v int) int {
	if v > t.current {
		return t.current
	}
	return v
}

func (t *Tree[K]) keyEqual(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}

// colorOf returns a node's color at v, treating a nil node (i.e. the
// conceptual "none" link) as Black, matching the structural default used
// throughout the red-black invariants.
func colorOf[K any](n *vnode.Node[K], v int) vnode.Color {
	if n == nil {
		return vnode.Black
	}
	return n.Color(v)
}

func isRed[K any](n *vnode.Node[K], v int) bool {
	return n != nil && n.Color(v) == vnode.Red
}

// attachLeft sets parent's left child to child at version v and, if child is
// non-nil, points child's parent back at parent. Keeping both ends of a link
// in sync in one call is the discipline that keeps parent pointers correct
// through every rotation and rebalance.
func attachLeft[K any](parent, child *vnode.Node[K], v int) {
	parent.SetLeft(child, v)
	if child != nil {
		child.SetParent(parent, v)
	}
}

// attachRight is attachLeft's mirror image for the right child.
func attachRight[K any](parent, child *vnode.Node[K], v int) {
	parent.SetRight(child, v)
	if child != nil {
		child.SetParent(parent, v)
	}
}

// attachChildren sets both of parent's children at once, keeping both
// children's parent links in sync.
func attachChildren[K any](parent, left, right *vnode.Node[K], v int) {
	parent.SetChildren(left, right, v)
	if left != nil {
		left.SetParent(parent, v)
	}
	if right != nil {
		right.SetParent(parent, v)
	}
}

// search walks version v looking for key, descending only through nodes
// alive at v. It returns the node and true if found.
func (t *Tree[K]) search(v int, key K) (*vnode.Node[K], bool) {
	n := t.roots[v]
	for n != nil && n.Alive(v) {
		if t.keyEqual(n.Key(), key) {
			return n, true
		}
		if t.less(key, n.Key()) {
			n = n.Left(v)
		} else {
			n = n.Right(v)
		}
	}
	return nil, false
}

// Search reports whether key is alive in the tree at version v.
//
// v must be non-negative; a version beyond current clamps down to it.
func (t *Tree[K]) Search(v int, key K) (bool, error) {
	v, err := t.checkVersion(v)
	if err != nil {
		return false, err
	}
	_, found := t.search(v, key)
	return found, nil
}
