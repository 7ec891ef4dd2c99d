// Package triangulate implements grid-accelerated ear-clipping over a simple
// polygon boundary (as produced by the hole merger, including its
// duplicated bridge-junction vertices). It never sees holes directly: by
// the time a boundary reaches this package it is already a single simple
// cycle.
package triangulate

import (
	"github.com/wrenfield/polyslice/geom"
	"github.com/wrenfield/polyslice/internal/grid"
	"github.com/wrenfield/polyslice/internal/ring"
)

type vnode struct {
	pos       geom.Point
	origIndex int
	reflex    bool
	candidate bool
}

// Triangulate ear-clips points (implicitly closed) and returns a flat
// triangle-index buffer referencing positions in points by their original
// index. onWarn, if non-nil, is called once if the watchdog or an empty
// candidate list forces an early return with a partial result.
func Triangulate(points []geom.Point, onWarn func(string)) []uint32 {
	n := len(points)
	if n < 3 {
		return nil
	}
	if n == 3 {
		return []uint32{0, 1, 2}
	}

	ordered, origIndex := ensureCCW(points)

	nodes := make([]vnode, n)
	for i, p := range ordered {
		nodes[i] = vnode{pos: p, origIndex: origIndex[i]}
	}
	r, start := ring.FromSlice(nodes)

	bounds := geom.BoundPoints(points)
	var stack []ring.Handle
	reflexCount := 0

	for h, first := start, true; first || h != start; h, first = r.Next(h), false {
		v := r.Value(h)
		v.reflex = geom.IsReflex(r.Value(r.Prev(h)).pos, v.pos, r.Value(r.Next(h)).pos)
		if v.reflex {
			reflexCount++
		} else {
			v.candidate = true
		}
		r.SetValue(h, v)
	}

	g := grid.NewFor[ring.Handle](bounds, reflexCount)
	for h, first := start, true; first || h != start; h, first = r.Next(h), false {
		v := r.Value(h)
		if v.reflex {
			g.Insert(h, v.pos)
		} else {
			stack = append(stack, h)
		}
	}

	var triangles []uint32
	pointCount := n
	cur := start
	watchdog := 2 * n
	exhausted := false

	for pointCount > 3 {
		if len(stack) == 0 {
			exhausted = true
			break
		}
		watchdog--
		if watchdog <= 0 {
			exhausted = true
			break
		}

		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v := r.Value(h)
		v.candidate = false
		r.SetValue(h, v)
		if v.reflex || !r.Live(h) {
			continue
		}

		prevH, nextH := r.Prev(h), r.Next(h)
		tri := geom.Triangle{A: r.Value(prevH).pos, B: v.pos, C: r.Value(nextH).pos}

		if !isEar(r, g, tri, prevH, nextH) {
			continue
		}

		triangles = append(triangles,
			uint32(r.Value(prevH).origIndex),
			uint32(v.origIndex),
			uint32(r.Value(nextH).origIndex),
		)

		if h == cur {
			cur = nextH
		}
		r.Remove(h)
		pointCount--

		reevaluate(r, g, &stack, prevH)
		reevaluate(r, g, &stack, nextH)
	}

	if exhausted {
		if onWarn != nil {
			onWarn("triangulate: candidate list exhausted before completion, returning partial result")
		}
		return triangles
	}

	if pointCount == 3 {
		a := cur
		b := r.Next(a)
		c := r.Next(b)
		triangles = append(triangles,
			uint32(r.Value(a).origIndex),
			uint32(r.Value(b).origIndex),
			uint32(r.Value(c).origIndex),
		)
	}
	return triangles
}

// isEar reports whether the triangle (prev,v,next) contains no reflex
// vertex other than its own three corners, using the grid to enumerate only
// the reflex vertices whose position overlaps the triangle's AABB.
func isEar(r *ring.Ring[vnode], g *grid.Grid[ring.Handle], tri geom.Triangle, prevH, nextH ring.Handle) bool {
	box := geom.BoundPoints([]geom.Point{tri.A, tri.B, tri.C})
	var window []ring.Handle
	window = g.EnumerateWindow(box, window)

	for _, rh := range window {
		if rh == prevH || rh == nextH {
			continue
		}
		p := r.Value(rh).pos
		if coincidesWithCorner(p, tri) {
			continue
		}
		if pointInTriangleStrict(p, tri) {
			return false
		}
	}
	return true
}

func coincidesWithCorner(p geom.Point, tri geom.Triangle) bool {
	return p.DistSq(tri.A) <= geom.EarEpsSq ||
		p.DistSq(tri.B) <= geom.EarEpsSq ||
		p.DistSq(tri.C) <= geom.EarEpsSq
}

func pointInTriangleStrict(p geom.Point, tri geom.Triangle) bool {
	d1 := geom.Orient(tri.A, tri.B, p)
	d2 := geom.Orient(tri.B, tri.C, p)
	d3 := geom.Orient(tri.C, tri.A, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// reevaluate recomputes h's reflex status after one of its ring neighbors
// changed, moving it between the grid and the candidate stack as needed.
func reevaluate(r *ring.Ring[vnode], g *grid.Grid[ring.Handle], stack *[]ring.Handle, h ring.Handle) {
	v := r.Value(h)
	wasReflex := v.reflex
	v.reflex = geom.IsReflex(r.Value(r.Prev(h)).pos, v.pos, r.Value(r.Next(h)).pos)

	switch {
	case wasReflex && !v.reflex:
		g.Remove(h)
		if !v.candidate {
			v.candidate = true
			*stack = append(*stack, h)
		}
	case !wasReflex && v.reflex:
		v.candidate = false
		g.Insert(h, v.pos)
	case !wasReflex && !v.reflex && !v.candidate:
		v.candidate = true
		*stack = append(*stack, h)
	}
	r.SetValue(h, v)
}

// ensureCCW returns points in CCW order along with, for each returned
// point, its index in the original (possibly CW) input slice.
func ensureCCW(points []geom.Point) ([]geom.Point, []int) {
	n := len(points)
	origIndex := make([]int, n)
	for i := range origIndex {
		origIndex[i] = i
	}
	if geom.IsCCW(points) {
		return points, origIndex
	}
	ordered := geom.Reverse(points)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		origIndex[i], origIndex[j] = origIndex[j], origIndex[i]
	}
	return ordered, origIndex
}
