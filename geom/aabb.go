package geom

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Point
}

// EmptyAABB returns an AABB primed for accumulation via Extend.
func EmptyAABB() AABB {
	return AABB{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
}

// Extend grows the box to include p.
func (b AABB) Extend(p Point) AABB {
	return AABB{
		Min: Point{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)},
		Max: Point{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: Point{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)},
		Max: Point{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Expand returns b padded by margin on every side.
func (b AABB) Expand(margin float64) AABB {
	return AABB{
		Min: Point{b.Min.X - margin, b.Min.Y - margin},
		Max: Point{b.Max.X + margin, b.Max.Y + margin},
	}
}

// Overlaps reports whether b and o share any area (touching counts).
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// Contains reports whether p lies within b (inclusive).
func (b AABB) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Center returns the midpoint of the box.
func (b AABB) Center() Point {
	return Point{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// Width and Height return the box's extents.
func (b AABB) Width() float64  { return b.Max.X - b.Min.X }
func (b AABB) Height() float64 { return b.Max.Y - b.Min.Y }

// BoundPoints computes the AABB of a point loop.
func BoundPoints(pts []Point) AABB {
	box := EmptyAABB()
	for _, p := range pts {
		box = box.Extend(p)
	}
	return box
}

// BoundSegment computes a segment's AABB, expanded by pad on each side.
func BoundSegment(a, b Point, pad float64) AABB {
	box := EmptyAABB().Extend(a).Extend(b)
	return box.Expand(pad)
}
