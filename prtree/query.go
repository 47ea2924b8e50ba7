package prtree

import "github.com/gotrees/prbtree/vnode"

// Successor returns the least key alive at version v that is strictly
// greater than key, and true if such a key exists. The zero value is
// returned alongside false when no successor exists (the positive-infinity
// case).
//
// v must be non-negative; a version beyond current clamps down to it.
func (t *Tree[K]) Successor(key K, v int) (K, bool, error) {
	v, err := t.checkVersion(v)
	if err != nil {
		var zero K
		return zero, false, err
	}

	var best K
	found := false

	n := t.roots[v]
	for n != nil && n.Alive(v) {
		switch {
		case t.less(key, n.Key()):
			best = n.Key()
			found = true
			n = n.Left(v)
		default:
			n = n.Right(v)
		}
	}
	return best, found, nil
}

// Entry is one row of an in-order listing: a key, its depth from the root
// of the queried version (the root sits at depth 0), and its color at that
// version, rendered as "R" or "N".
type Entry[K any] struct {
	Key   K
	Depth int
	Color string
}

// InOrder returns every key alive at version v, in ascending order, each
// paired with its depth and color as of that version.
//
// v must be non-negative; a version beyond current clamps down to it.
func (t *Tree[K]) InOrder(v int) ([]Entry[K], error) {
	v, err := t.checkVersion(v)
	if err != nil {
		return nil, err
	}
	var out []Entry[K]
	walkInOrder(t.roots[v], v, 0, &out)
	return out, nil
}

func walkInOrder[K any](n *vnode.Node[K], v, depth int, out *[]Entry[K]) {
	if n == nil || !n.Alive(v) {
		return
	}
	walkInOrder(n.Left(v), v, depth+1, out)
	*out = append(*out, Entry[K]{
		Key:   n.Key(),
		Depth: depth,
		Color: n.Color(v).String(),
	})
	walkInOrder(n.Right(v), v, depth+1, out)
}
