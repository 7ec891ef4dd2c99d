// Package aabbtree implements the flat, array-backed static bounding-volume
// hierarchy used both as the "wall" segment tree during hole-bridge stitching
// and as the solid-containment tree during hierarchy assignment. It is built
// once per query set and never mutated, matching the "build, query, discard"
// lifecycle the whole engine follows: no shared state survives one slice
// invocation.
//
// The tree is generic over its leaf payload so the same median-partition,
// in-place-reordering machinery serves segments (bounds = the segment's own
// padded AABB) and solids (bounds = the solid polygon's AABB, payload = a
// solid index) without duplicating the traversal code.
package aabbtree

import "github.com/wrenfield/polyslice/geom"

// MaxLeaf is the maximum number of items a leaf node may hold before the
// builder must split it further.
const MaxLeaf = 4

type node struct {
	box          geom.AABB
	left, right  int32 // child node indices, -1 for a leaf
	start, count int32 // leaf item range, into the reordered items slice
}

// Tree is a static bounding-volume hierarchy over a slice of T.
type Tree[T any] struct {
	nodes []node
	items []T
	bound func(T) geom.AABB
}

// Build partitions items into a flat BVH. items is copied and reordered
// in place inside the tree; the caller's slice is left untouched. bound
// extracts an item's AABB.
func Build[T any](items []T, bound func(T) geom.AABB) *Tree[T] {
	t := &Tree[T]{
		items: append([]T(nil), items...),
		bound: bound,
	}
	if len(t.items) == 0 {
		return t
	}
	t.build(0, len(t.items))
	return t
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int { return len(t.items) }

// build recursively partitions the item range [lo, hi) and returns the index
// of the node covering it.
func (t *Tree[T]) build(lo, hi int) int32 {
	box := geom.EmptyAABB()
	for i := lo; i < hi; i++ {
		itemBox := t.bound(t.items[i])
		box = box.Union(itemBox)
	}

	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{box: box, left: -1, right: -1})

	if hi-lo <= MaxLeaf {
		t.nodes[idx].start = int32(lo)
		t.nodes[idx].count = int32(hi - lo)
		return idx
	}

	axis := 0 // 0 = X, 1 = Y
	if box.Height() > box.Width() {
		axis = 1
	}

	mid := t.partition(lo, hi, axis, box.Center())
	if mid == lo || mid == hi {
		// Degenerate: every item center fell on the same side. Fall back to
		// an even half-count split instead of infinite recursion.
		mid = lo + (hi-lo)/2
	}

	left := t.build(lo, mid)
	right := t.build(mid, hi)
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

// partition performs a Hoare-style in-place partition of items[lo:hi] by
// whether the item's center falls below or above center on the chosen axis.
// It returns the boundary index between the two halves.
func (t *Tree[T]) partition(lo, hi, axis int, center geom.Point) int {
	pivot := center.X
	if axis == 1 {
		pivot = center.Y
	}

	i, j := lo, hi-1
	for i <= j {
		for i <= j && axisValue(t.bound(t.items[i]), axis) < pivot {
			i++
		}
		for i <= j && axisValue(t.bound(t.items[j]), axis) >= pivot {
			j--
		}
		if i < j {
			t.items[i], t.items[j] = t.items[j], t.items[i]
			i++
			j--
		}
	}
	return i
}

func axisValue(box geom.AABB, axis int) float64 {
	c := box.Center()
	if axis == 1 {
		return c.Y
	}
	return c.X
}

// VisitOverlapping calls visit for every item whose bounds overlap q, in
// tree order, stopping early if visit returns false. It returns false if
// visit ever returned false (a "hit found" style early exit).
func (t *Tree[T]) VisitOverlapping(q geom.AABB, visit func(T) bool) bool {
	if len(t.nodes) == 0 {
		return true
	}
	return t.visit(0, q, visit)
}

func (t *Tree[T]) visit(idx int32, q geom.AABB, visit func(T) bool) bool {
	n := &t.nodes[idx]
	if !n.box.Overlaps(q) {
		return true
	}
	if n.left < 0 { // leaf
		for i := n.start; i < n.start+n.count; i++ {
			if !t.bound(t.items[i]).Overlaps(q) {
				continue
			}
			if !visit(t.items[i]) {
				return false
			}
		}
		return true
	}
	if !t.visit(n.left, q, visit) {
		return false
	}
	return t.visit(n.right, q, visit)
}

// VisitContaining calls visit for every item whose bounds contain p,
// descending only into nodes whose own bounds contain p. Used by hierarchy
// assignment, which only ever needs solids whose AABB contains a hole's
// centroid.
func (t *Tree[T]) VisitContaining(p geom.Point, visit func(T) bool) {
	if len(t.nodes) == 0 {
		return
	}
	t.visitContaining(0, p, visit)
}

func (t *Tree[T]) visitContaining(idx int32, p geom.Point, visit func(T) bool) bool {
	n := &t.nodes[idx]
	if !n.box.Contains(p) {
		return true
	}
	if n.left < 0 {
		for i := n.start; i < n.start+n.count; i++ {
			if t.bound(t.items[i]).Contains(p) {
				if !visit(t.items[i]) {
					return false
				}
			}
		}
		return true
	}
	if !t.visitContaining(n.left, p, visit) {
		return false
	}
	return t.visitContaining(n.right, p, visit)
}
