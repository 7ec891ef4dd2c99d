// Package geom holds the primitive types and numeric-tolerance functions that
// every other package builds on: points, segments, triangles, axis-aligned
// bounding boxes, and the handful of predicates (orientation, intersection,
// point-in-polygon) that touch floating point tolerances directly. Nothing
// above this package should compare coordinates without going through it.
package geom

import "math"

// Tolerance constants. These are a contract: changing them changes observable
// behavior on near-degenerate inputs, so callers that need bug-for-bug
// compatibility with a particular tolerance regime should not tune them
// lightly.
const (
	// EpsCoincide is the linear distance below which two points are treated
	// as the same vertex.
	EpsCoincide = 1e-2
	// EpsCoincideSq is EpsCoincide squared, used wherever a squared-distance
	// comparison avoids a sqrt.
	EpsCoincideSq = EpsCoincide * EpsCoincide
	// AreaMin is the minimum absolute signed area a loop must have to be
	// treated as a real face rather than numerical noise.
	AreaMin = 1e-2
	// IntersectEps bounds the open interval a strict-interior segment
	// intersection parameter must fall within.
	IntersectEps = 1e-5
	// SegmentAABBPad is how far a segment's precomputed AABB is expanded on
	// each side, to avoid false negatives on axis-aligned edges.
	SegmentAABBPad = 1e-3
	// TreeEndpointEpsSq is the squared-distance tolerance the AABB tree uses
	// to decide a stored segment shares an endpoint with a query segment.
	TreeEndpointEpsSq = 1e-7
	// EarEpsSq is the squared-distance tolerance the ear-clip point-in-
	// triangle test uses to ignore vertices coincident with a triangle
	// corner (this is what makes duplicated bridge-junction vertices from
	// the hole merger non-blocking).
	EarEpsSq = 1e-6
	// QuantizeScale is the factor coordinates are multiplied by before
	// truncation when computing a planar-graph node key.
	QuantizeScale = 100
)

// Point is a coordinate pair. The engine commits to IEEE-754 float64 storage
// internally (the host's own vectors are float32; conversion happens at the
// API boundary) with the tolerances above standing in for exact arithmetic.
type Point struct {
	X, Y float64
}

// Segment is an ordered pair of points with a precomputed, padded AABB.
type Segment struct {
	Start, End Point
	Box        AABB
}

// NewSegment builds a Segment with its AABB precomputed per SegmentAABBPad.
func NewSegment(a, b Point) Segment {
	return Segment{Start: a, End: b, Box: BoundSegment(a, b, SegmentAABBPad)}
}

// Triangle is three points in CCW winding once validated.
type Triangle struct {
	A, B, C Point
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// DistSq returns the squared distance between p and q.
func (p Point) DistSq(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Sqrt(p.DistSq(q)) }

// Lerp linearly interpolates between p and q at parameter t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Coincident reports whether p and q are within EpsCoincide of each other.
func (p Point) Coincident(q Point) bool { return p.DistSq(q) <= EpsCoincideSq }

// QKey is the coincidence-quantized integer key used to collapse points
// within ~EpsCoincide into a single planar-graph node.
type QKey struct {
	X, Y int32
}

// Quantize computes the QKey for p: multiply by QuantizeScale and truncate.
func Quantize(p Point) QKey {
	return QKey{X: int32(p.X * QuantizeScale), Y: int32(p.Y * QuantizeScale)}
}

// PolygonWithHoles is one outer CCW loop plus zero or more CW hole loops.
type PolygonWithHoles struct {
	Outer []Point
	Holes [][]Point
}

// Area returns the outer loop's area minus the sum of the holes' areas.
func (p PolygonWithHoles) Area() float64 {
	total := Area(p.Outer)
	for _, h := range p.Holes {
		total -= Area(h)
	}
	return total
}
