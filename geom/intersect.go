package geom

// SegIntersect computes the strict-interior intersection of segment a-b with
// segment c-d. "Strict interior" means both parameters must fall in the open
// interval (IntersectEps, 1-IntersectEps); collinear segments always report
// no intersection, matching the source's treatment of degenerate overlaps.
func SegIntersect(a, b, c, d Point) (Point, bool) {
	rX, rY := b.X-a.X, b.Y-a.Y
	sX, sY := d.X-c.X, d.Y-c.Y

	denom := rX*sY - rY*sX
	if denom == 0 {
		return Point{}, false // parallel or collinear
	}

	acX, acY := c.X-a.X, c.Y-a.Y
	t := (acX*sY - acY*sX) / denom
	u := (acX*rY - acY*rX) / denom

	if t <= IntersectEps || t >= 1-IntersectEps || u <= IntersectEps || u >= 1-IntersectEps {
		return Point{}, false
	}

	return Point{a.X + t*rX, a.Y + t*rY}, true
}

// LineHitsSegment computes the intersection parameters (u, v) of the
// infinite-in-tolerance segments p1->p2 and q1->q2, tolerantly accepting
// endpoints: u and v are each accepted in [-1e-4, 1+1e-4] and then clamped to
// [0,1]. This is used to compute cut intersections against polygon edges
// where an exact endpoint hit must not be missed due to floating point noise.
func LineHitsSegment(p1, p2, q1, q2 Point) (u, v float64, ok bool) {
	const tol = 1e-4

	rX, rY := p2.X-p1.X, p2.Y-p1.Y
	sX, sY := q2.X-q1.X, q2.Y-q1.Y

	denom := rX*sY - rY*sX
	if denom == 0 {
		return 0, 0, false
	}

	dX, dY := q1.X-p1.X, q1.Y-p1.Y
	t := (dX*sY - dY*sX) / denom
	w := (dX*rY - dY*rX) / denom

	if t < -tol || t > 1+tol || w < -tol || w > 1+tol {
		return 0, 0, false
	}

	return clamp01(t), clamp01(w), true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PointInPolygon performs an even-odd ray-casting test along +x. Behavior is
// undefined for points exactly on the boundary.
func PointInPolygon(p Point, loop []Point) bool {
	inside := false
	n := len(loop)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := loop[i], loop[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			xCross := vj.X + (p.Y-vj.Y)*(vi.X-vj.X)/(vi.Y-vj.Y)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
