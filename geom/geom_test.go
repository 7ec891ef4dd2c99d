package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expected := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		assert.Equal(t, expected[i+3], CircularIndex(i, n))
	}
}

func TestSignedAreaSquare(t *testing.T) {
	square := []Point{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	assert.InDelta(t, 4.0, SignedArea(square), 1e-9)
	assert.True(t, IsCCW(square))
	assert.False(t, IsCW(square))

	reversed := Reverse(square)
	assert.InDelta(t, -4.0, SignedArea(reversed), 1e-9)
	assert.True(t, IsCW(reversed))
}

func TestSignedAreaRotationInvariant(t *testing.T) {
	tri := []Point{{0, -1}, {1, 0}, {0, 1}}
	angle := math.Pi / 7
	for i := 0; i < 14; i++ {
		for j := range tri {
			tri[j] = rotate(tri[j], angle)
		}
		assert.InDelta(t, 1.0, SignedArea(tri), 1e-9)
	}
}

func rotate(p Point, angle float64) Point {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

func TestOrient(t *testing.T) {
	assert.Greater(t, Orient(Point{0, 0}, Point{1, 0}, Point{1, 1}), 0.0)
	assert.Less(t, Orient(Point{0, 0}, Point{1, 1}, Point{1, 0}), 0.0)
	assert.Equal(t, 0.0, Orient(Point{0, 0}, Point{1, 0}, Point{2, 0}))
}

func TestSegIntersectStrictInterior(t *testing.T) {
	p, ok := SegIntersect(Point{-1, 0}, Point{1, 0}, Point{0, -1}, Point{0, 1})
	assert.True(t, ok)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	// Parallel segments never intersect.
	_, ok = SegIntersect(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1})
	assert.False(t, ok)

	// Touching only at an endpoint is not a strict-interior hit.
	_, ok = SegIntersect(Point{-1, 0}, Point{0, 0}, Point{0, -1}, Point{0, 1})
	assert.False(t, ok)
}

func TestLineHitsSegmentTolerantEndpoint(t *testing.T) {
	// The cut line passes exactly through the segment's endpoint.
	u, v, ok := LineHitsSegment(Point{-5, 0}, Point{5, 0}, Point{2, 0}, Point{2, 5})
	assert.True(t, ok)
	assert.InDelta(t, 0.7, u, 1e-9)
	assert.InDelta(t, 0, v, 1e-9)
}

func TestPointInPolygonSquare(t *testing.T) {
	square := []Point{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	assert.True(t, PointInPolygon(Point{0, 0}, square))
	assert.False(t, PointInPolygon(Point{2, 2}, square))
}

func TestCentroidSquare(t *testing.T) {
	square := []Point{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	c := Centroid(square)
	assert.InDelta(t, 0, c.X, 1e-9)
	assert.InDelta(t, 0, c.Y, 1e-9)
}

func TestSimplifyCollapsesCoincidentAndCollinear(t *testing.T) {
	loop := []Point{
		{0, 0}, {0, 0.001}, // coincident with the first point
		{2, 0}, // collinear with its neighbors
		{4, 0},
		{4, 4},
	}
	simplified := Simplify(loop)
	assert.Len(t, simplified, 3)
	assert.Equal(t, Point{0, 0}, simplified[0])
	assert.Equal(t, Point{4, 0}, simplified[1])
	assert.Equal(t, Point{4, 4}, simplified[2])
}

func TestQuantizeCollapsesNearbyPoints(t *testing.T) {
	assert.Equal(t, Quantize(Point{1.001, 2.002}), Quantize(Point{1.0015, 2.0021}))
}

func TestPolygonWithHolesArea(t *testing.T) {
	p := PolygonWithHoles{
		Outer: []Point{{-2, -2}, {2, -2}, {2, 2}, {-2, 2}},
		Holes: [][]Point{{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}},
	}
	assert.InDelta(t, 12.0, p.Area(), 1e-9)
}
