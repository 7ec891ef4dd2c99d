package geom

// Orient returns the sign of the 2D cross product (b-a)x(c-a): positive when
// a,b,c turn counter-clockwise, negative when clockwise, zero when collinear.
func Orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// IsReflex reports whether curr is a reflex vertex of a CCW polygon, i.e.
// orient(prev, curr, next) <= 0.
func IsReflex(prev, curr, next Point) bool {
	return Orient(prev, curr, next) <= 0
}

// SignedArea computes the shoelace signed area of a loop (implicitly
// closed). Positive means counter-clockwise.
func SignedArea(loop []Point) float64 {
	if len(loop) < 3 {
		return 0
	}
	var sum float64
	n := len(loop)
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[CircularIndex(i+1, n)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the absolute area of loop.
func Area(loop []Point) float64 {
	a := SignedArea(loop)
	if a < 0 {
		return -a
	}
	return a
}

// IsCCW reports whether loop winds counter-clockwise.
func IsCCW(loop []Point) bool { return SignedArea(loop) > 0 }

// IsCW reports whether loop winds clockwise.
func IsCW(loop []Point) bool { return SignedArea(loop) < 0 }

// Reverse returns a new loop with reversed point order.
func Reverse(loop []Point) []Point {
	out := make([]Point, len(loop))
	for i, p := range loop {
		out[len(loop)-1-i] = p
	}
	return out
}

// EnsureWinding returns loop reversed if its CCW-ness doesn't match ccw.
func EnsureWinding(loop []Point, ccw bool) []Point {
	if IsCCW(loop) == ccw {
		return loop
	}
	return Reverse(loop)
}

// Centroid returns the area-weighted centroid of loop. Callers must not pass
// a zero-area loop.
func Centroid(loop []Point) Point {
	if len(loop) == 0 {
		return Point{}
	}
	var cx, cy, areaSum float64
	n := len(loop)
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[CircularIndex(i+1, n)]
		cross := a.X*b.Y - b.X*a.Y
		areaSum += cross
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	if areaSum == 0 {
		// Degenerate: fall back to the arithmetic mean.
		for _, p := range loop {
			cx += p.X
			cy += p.Y
		}
		return Point{cx / float64(n), cy / float64(n)}
	}
	factor := 1 / (3 * areaSum)
	return Point{cx * factor, cy * factor}
}
