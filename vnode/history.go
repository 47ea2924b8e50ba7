package vnode

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// history is an append-only, version-indexed record of a single field's
// values. Querying at version v returns the value written at the greatest
// recorded version <= v ("floor"), which is exactly what a partially
// persistent structure needs: every past version keeps reading whatever was
// true at the time, while the latest version keeps accepting new writes.
//
// The backing store is a github.com/emirpasic/gods treemap, itself a
// red-black tree keyed by version number, so floor lookups cost
// O(log(history length)) rather than a linear scan of every write the field
// has ever received.
type history[V any] struct {
	zero V
	m    *treemap.Map
}

func newHistory[V any](zero V) *history[V] {
	return &history[V]{
		zero: zero,
		m:    treemap.NewWith(utils.IntComparator),
	}
}

// set records value as effective from version v onward, overwriting any
// existing entry at the same v (latest write at a version wins).
func (h *history[V]) set(v int, value V) {
	h.m.Put(v, value)
}

// at returns the value effective at version v: the value written at the
// greatest recorded version <= v, or the zero value if the field was never
// written at or before v.
func (h *history[V]) at(v int) V {
	floorKey, floorValue := h.m.Floor(v)
	if floorKey == nil {
		return h.zero
	}
	return floorValue.(V)
}
