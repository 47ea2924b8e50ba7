package prtree

import "github.com/gotrees/prbtree/vnode"

// Remove deletes key from the tree.
//
// If key is not alive at the current version, the tree is unchanged and no
// new version is produced. Otherwise a new version is stamped: the node
// holding key is spliced out (or, if it has two children, its key is
// overwritten with its in-order successor's key and the successor is
// spliced out instead -- see vnode.Node.OverwriteKey), the spliced node is
// retired, and the double-black fix-up runs along the path back to the
// root so that the red rule and the equal-black-height rule both hold
// afterward.
//
// The fix-up implements the full sibling-red, sibling-black-with-red-nephew,
// and sibling-black-with-black-nephews cases, so every version this tree
// produces is a genuine red-black tree rather than a BST with leftover
// coloring.
func (t *Tree[K]) Remove(key K) bool {
	v := t.current
	z, found := t.search(v, key)
	if !found {
		return false
	}

	next := v + 1

	// y is the node that will actually be spliced out of the structure: z
	// itself if it has at most one child, or its in-order successor if it
	// has two.
	y := z
	if z.Left(v) != nil && z.Right(v) != nil {
		y = t.minimum(z.Right(v), v)
	}

	// x is y's single surviving child (possibly nil), which takes y's place.
	var x *vnode.Node[K]
	if y.Left(v) != nil {
		x = y.Left(v)
	} else {
		x = y.Right(v)
	}

	yParent := y.Parent(v)
	yWasLeftChild := yParent != nil && yParent.Left(v) == y
	yWasBlack := y.Color(v) == vnode.Black

	var root *vnode.Node[K]
	if yParent == nil {
		root = x
	} else {
		root = t.roots[v]
	}

	if x != nil {
		x.SetParent(yParent, next)
	}
	if yParent != nil {
		if yWasLeftChild {
			attachLeft(yParent, x, next)
		} else {
			attachRight(yParent, x, next)
		}
	}

	if y != z {
		z.OverwriteKey(y.Key())
	}
	if err := y.Retire(next); err != nil {
		panic(err)
	}

	if yWasBlack {
		root = t.deleteFixup(x, yParent, yWasLeftChild, root, next)
	}

	if root != nil {
		root.SetParent(nil, next)
		root.SetColor(vnode.Black, next)
	}

	t.roots = append(t.roots, root)
	t.current = next
	return true
}

// minimum returns the leftmost alive node of the subtree rooted at node, as
// of version v.
func (t *Tree[K]) minimum(node *vnode.Node[K], v int) *vnode.Node[K] {
	for node.Left(v) != nil {
		node = node.Left(v)
	}
	return node
}

// deleteFixup restores the red rule and the black-height rule after a
// splice that removed a black node. x is the node that took the spliced
// node's place (possibly nil), parent is x's parent (tracked explicitly
// since x may be nil and so cannot carry its own parent pointer), xIsLeft
// records which of parent's children x occupies, and root is the current
// candidate root of the whole tree (so a rotation at the top can update it).
//
// This is the standard CLRS RB-DELETE-FIXUP, adapted to read every link at
// version v and write every change at version v, and to track parent/side
// explicitly in place of the sentinel node the unversioned textbook
// algorithm relies on.
func (t *Tree[K]) deleteFixup(x, parent *vnode.Node[K], xIsLeft bool, root *vnode.Node[K], v int) *vnode.Node[K] {
	for parent != nil && colorOf(x, v) == vnode.Black {
		if xIsLeft {
			w := parent.Right(v)
			if isRed(w, v) {
				// Case 1: red sibling. Rotate it out of the way so the
				// remaining cases can assume a black sibling.
				w.SetColor(vnode.Black, v)
				parent.SetColor(vnode.Red, v)
				wasRoot := parent == root
				newTop := t.rotateLeft(parent, v)
				if wasRoot {
					root = newTop
				}
				w = parent.Right(v)
			}
			if colorOf(w.Left(v), v) == vnode.Black && colorOf(w.Right(v), v) == vnode.Black {
				// Case 2: sibling and both nephews black. Push the
				// double-black up to the parent.
				w.SetColor(vnode.Red, v)
				x = parent
				gp := parent.Parent(v)
				xIsLeft = gp != nil && gp.Left(v) == parent
				parent = gp
			} else {
				if colorOf(w.Right(v), v) == vnode.Black {
					// Case 3: near nephew red, far nephew black. Rotate the
					// sibling so the red nephew ends up on the far side.
					wl := w.Left(v)
					wl.SetColor(vnode.Black, v)
					w.SetColor(vnode.Red, v)
					t.rotateRight(w, v)
					w = parent.Right(v)
				}
				// Case 4: far nephew red. One rotation at parent resolves
				// the double-black for good.
				w.SetColor(parent.Color(v), v)
				parent.SetColor(vnode.Black, v)
				if w.Right(v) != nil {
					w.Right(v).SetColor(vnode.Black, v)
				}
				wasRoot := parent == root
				newTop := t.rotateLeft(parent, v)
				if wasRoot {
					root = newTop
				}
				x = root
				parent = nil
			}
		} else {
			w := parent.Left(v)
			if isRed(w, v) {
				w.SetColor(vnode.Black, v)
				parent.SetColor(vnode.Red, v)
				wasRoot := parent == root
				newTop := t.rotateRight(parent, v)
				if wasRoot {
					root = newTop
				}
				w = parent.Left(v)
			}
			if colorOf(w.Right(v), v) == vnode.Black && colorOf(w.Left(v), v) == vnode.Black {
				w.SetColor(vnode.Red, v)
				x = parent
				gp := parent.Parent(v)
				xIsLeft = gp != nil && gp.Left(v) == parent
				parent = gp
			} else {
				if colorOf(w.Left(v), v) == vnode.Black {
					wr := w.Right(v)
					wr.SetColor(vnode.Black, v)
					w.SetColor(vnode.Red, v)
					t.rotateLeft(w, v)
					w = parent.Left(v)
				}
				w.SetColor(parent.Color(v), v)
				parent.SetColor(vnode.Black, v)
				if w.Left(v) != nil {
					w.Left(v).SetColor(vnode.Black, v)
				}
				wasRoot := parent == root
				newTop := t.rotateRight(parent, v)
				if wasRoot {
					root = newTop
				}
				x = root
				parent = nil
			}
		}
	}
	if x != nil {
		x.SetColor(vnode.Black, v)
	}
	return root
}

// rotateLeft performs a standard BST left rotation at n, at version v,
// rewriting every child and parent link it touches -- including relinking
// n's former parent to the promoted node. It returns the promoted node
// (n's former right child), which callers compare against their own
// root-tracking variable to notice when the rotation happened at the top
// of the tree.
func (t *Tree[K]) rotateLeft(n *vnode.Node[K], v int) *vnode.Node[K] {
	r := n.Right(v)
	if r == nil {
		return n
	}
	gp := n.Parent(v)

	attachRight(n, r.Left(v), v)
	attachLeft(r, n, v)

	r.SetParent(gp, v)
	if gp != nil {
		if gp.Left(v) == n {
			attachLeft(gp, r, v)
		} else {
			attachRight(gp, r, v)
		}
	}
	return r
}

// rotateRight is rotateLeft's mirror image.
func (t *Tree[K]) rotateRight(n *vnode.Node[K], v int) *vnode.Node[K] {
	l := n.Left(v)
	if l == nil {
		return n
	}
	gp := n.Parent(v)

	attachLeft(n, l.Right(v), v)
	attachRight(l, n, v)

	l.SetParent(gp, v)
	if gp != nil {
		if gp.Left(v) == n {
			attachLeft(gp, l, v)
		} else {
			attachRight(gp, l, v)
		}
	}
	return l
}
