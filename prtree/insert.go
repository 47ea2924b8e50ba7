package prtree

import "github.com/gotrees/prbtree/vnode"

// Insert adds key to the tree.
//
// If key is already alive at the current version, the tree is unchanged and
// no new version is produced: current_version counts effective mutations,
// not attempts (see the package-level Open Question note in DESIGN.md).
// Otherwise a new version is stamped, the key is inserted as a fresh red
// leaf, and the path from the insertion point to the root is rebalanced
// using Okasaki-style case rewrites so that no red node ends up with a red
// child.
//
// Returns true if a new node was inserted.
func (t *Tree[K]) Insert(key K) bool {
	v := t.current
	if _, found := t.search(v, key); found {
		return false
	}

	next := v + 1
	newRoot := t.insertRec(t.roots[v], key, v, next)
	newRoot.SetParent(nil, next)
	newRoot.SetColor(vnode.Black, next)

	t.roots = append(t.roots, newRoot)
	t.current = next
	return true
}

// insertRec descends the subtree rooted at node as it stood at version v,
// looking for where key belongs, and returns the subtree root as it should
// stand at version next. Every visited ancestor receives a new link entry
// at version next; the read side of the descent always uses v, since the
// nodes involved have no entries at next yet until this call writes them.
func (t *Tree[K]) insertRec(node *vnode.Node[K], key K, v, next int) *vnode.Node[K] {
	if node == nil {
		leaf := vnode.New(key, next)
		leaf.SetColor(vnode.Red, next)
		return leaf
	}

	switch {
	case t.less(key, node.Key()):
		child := t.insertRec(node.Left(v), key, v, next)
		attachLeft(node, child, next)
		return t.balanceAfterInsert(node, next)
	case t.less(node.Key(), key):
		child := t.insertRec(node.Right(v), key, v, next)
		attachRight(node, child, next)
		return t.balanceAfterInsert(node, next)
	default:
		// Equal key reached mid-descent. The caller already checked for a
		// duplicate before starting the walk, so this only happens if a
		// retired node with this key is no longer part of the live
		// structure (it shouldn't be reachable at all); treat it
		// defensively as "nothing to do" rather than inserting a sibling.
		return node
	}
}

// balanceAfterInsert restores the red-black invariant at node, at version v,
// after one of its children may have just become red-on-red with a
// grandchild. It handles the four classic shapes (left-left, left-right,
// right-left, right-right), each collapsing to the same canonical outcome:
// the local middle key becomes the new subtree root, colored Red, with its
// two children colored Black. The red root then propagates the violation
// one level further up the recursion, where the next balanceAfterInsert call
// resolves it the same way; Insert forces the final root Black once the
// recursion unwinds.
func (t *Tree[K]) balanceAfterInsert(n *vnode.Node[K], v int) *vnode.Node[K] {
	left := n.Left(v)
	if isRed(left, v) {
		if isRed(left.Left(v), v) {
			return t.balanceLeftLeft(n, v)
		}
		if isRed(left.Right(v), v) {
			return t.balanceLeftRight(n, v)
		}
	}
	right := n.Right(v)
	if isRed(right, v) {
		if isRed(right.Left(v), v) {
			return t.balanceRightLeft(n, v)
		}
		if isRed(right.Right(v), v) {
			return t.balanceRightRight(n, v)
		}
	}
	return n
}

// balanceLeftLeft handles n (black) with red left child L and red
// grandchild L.Left. L becomes the new local root, colored Red, with n and
// L.Left both recolored Black.
func (t *Tree[K]) balanceLeftLeft(n *vnode.Node[K], v int) *vnode.Node[K] {
	left := n.Left(v)
	ll := left.Left(v)
	lr := left.Right(v)
	nr := n.Right(v)

	left.SetColor(vnode.Red, v)
	ll.SetColor(vnode.Black, v)
	n.SetColor(vnode.Black, v)

	attachChildren(n, lr, nr, v)
	attachChildren(left, ll, n, v)
	return left
}

// balanceLeftRight handles n (black) with red left child L and red
// grandchild L.Right (the inner child). The grandchild becomes the new
// local root, colored Red, with n and L both recolored Black.
func (t *Tree[K]) balanceLeftRight(n *vnode.Node[K], v int) *vnode.Node[K] {
	left := n.Left(v)
	mid := left.Right(v)
	midLeft := mid.Left(v)
	midRight := mid.Right(v)
	ll := left.Left(v)
	nr := n.Right(v)

	mid.SetColor(vnode.Red, v)
	left.SetColor(vnode.Black, v)
	n.SetColor(vnode.Black, v)

	attachChildren(left, ll, midLeft, v)
	attachChildren(n, midRight, nr, v)
	attachChildren(mid, left, n, v)
	return mid
}

// balanceRightLeft is balanceLeftRight's mirror image.
func (t *Tree[K]) balanceRightLeft(n *vnode.Node[K], v int) *vnode.Node[K] {
	right := n.Right(v)
	mid := right.Left(v)
	midLeft := mid.Left(v)
	midRight := mid.Right(v)
	rr := right.Right(v)
	nl := n.Left(v)

	mid.SetColor(vnode.Red, v)
	n.SetColor(vnode.Black, v)
	right.SetColor(vnode.Black, v)

	attachChildren(n, nl, midLeft, v)
	attachChildren(right, midRight, rr, v)
	attachChildren(mid, n, right, v)
	return mid
}

// balanceRightRight is balanceLeftLeft's mirror image.
func (t *Tree[K]) balanceRightRight(n *vnode.Node[K], v int) *vnode.Node[K] {
	right := n.Right(v)
	rl := right.Left(v)
	rr := right.Right(v)
	nl := n.Left(v)

	right.SetColor(vnode.Red, v)
	n.SetColor(vnode.Black, v)
	rr.SetColor(vnode.Black, v)

	attachChildren(n, nl, rl, v)
	attachChildren(right, n, rr, v)
	return right
}
