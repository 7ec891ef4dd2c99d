// Package polyslice cuts a 2D polygon-with-holes along a directed segment
// and produces the resulting polygons, each ready for triangulation: planar
// graph construction and face extraction, solid/hole classification with
// containment hierarchy, hole-to-outer bridge stitching, and
// grid-accelerated ear-clip triangulation.
package polyslice

import (
	"math"
	"sync"

	"github.com/pkg/errors"

	"github.com/wrenfield/polyslice/geom"
	"github.com/wrenfield/polyslice/internal/merge"
	"github.com/wrenfield/polyslice/internal/slicer"
	"github.com/wrenfield/polyslice/internal/throw"
	"github.com/wrenfield/polyslice/internal/triangulate"
)

// ErrTooFewPoints is the one condition the public API treats as a genuine
// contract violation rather than an informational, localized failure: every
// other degenerate-input category (zero-length cut, unclosed walk, an
// unbridgeable hole, ear-clip watchdog exhaustion) resolves to an empty or
// partial result reported through Options.Warnf instead, and is never
// returned as an error, matching the "no error is fatal to the host"
// contract for runtime inputs. Triangulate called with fewer than 3 points
// is not a runtime-degenerate input; it is a caller mistake.
var ErrTooFewPoints = errors.New("polyslice: fewer than 3 points to triangulate")

// PolygonWithHoles re-exports geom.PolygonWithHoles as the public shape of
// the API: one CCW outer loop plus zero or more CW hole loops.
type PolygonWithHoles = geom.PolygonWithHoles

// UVRect is a host-supplied reference rectangle used only to compute UV
// coordinates; polyslice never alters it. Callers slicing a fragment of a
// previous slice should pass the same UVRect back in unchanged, so nested
// fragments inherit the ancestral rectangle rather than drifting.
type UVRect struct {
	MinX, MinY, Width, Height float64
}

// UV maps p into the rectangle's normalized [0,1]x[0,1] space. Behavior is
// undefined (division by zero) for a zero-width or zero-height rectangle.
func (r UVRect) UV(p geom.Point) (u, v float64) {
	return (p.X - r.MinX) / r.Width, (p.Y - r.MinY) / r.Height
}

// Options configures a Slice call.
type Options struct {
	// ParallelMerge runs each output polygon's merge+triangulate stage
	// concurrently via a bounded sync.WaitGroup fan-out instead of
	// sequentially. Default false, matching the deterministic default.
	ParallelMerge bool
	// Warnf, if non-nil, receives one call per informational condition the
	// pipeline recovers from on its own (an orphaned hole, an unbridgeable
	// hole, an ear-clip watchdog exhaustion). Defaults to a no-op.
	Warnf func(format string, args ...any)
}

// Option mutates an Options value.
type Option func(*Options)

// WithParallelMerge enables concurrent merge+triangulate across a slice's
// output polygons.
func WithParallelMerge() Option {
	return func(o *Options) { o.ParallelMerge = true }
}

// WithWarnf installs a callback for informational warnings.
func WithWarnf(f func(format string, args ...any)) Option {
	return func(o *Options) { o.Warnf = f }
}

func resolveOptions(opts []Option) Options {
	o := Options{Warnf: func(string, ...any) {}}
	for _, apply := range opts {
		apply(&o)
	}
	if o.Warnf == nil {
		o.Warnf = func(string, ...any) {}
	}
	return o
}

// Mesh is one output polygon's triangulated mesh plus its collider paths,
// handed back to the host so it can spawn a fragment object. UV holds one
// (u,v) pair per entry of Vertices, computed from the UVRect the caller
// passed to Slice.
type Mesh struct {
	Polygon  geom.PolygonWithHoles
	Vertices []geom.Point
	UV       []geom.Point
	Indices  []uint32
}

// cutClearance returns the distance the cut segment is extended past each of
// its original endpoints so that it clears ref's bounding box regardless of
// where cutStart/cutEnd fall relative to poly.
func cutClearance(ref UVRect) float64 {
	longer := ref.Width
	if ref.Height > longer {
		longer = ref.Height
	}
	return 1.5*longer + 1.0
}

// extendCut pushes cutStart and cutEnd outward along their shared direction
// by cutClearance(ref) on each side.
func extendCut(cutStart, cutEnd geom.Point, ref UVRect) (geom.Point, geom.Point) {
	dir := cutEnd.Sub(cutStart)
	length := math.Hypot(dir.X, dir.Y)
	if length == 0 {
		return cutStart, cutEnd
	}
	unit := dir.Scale(1 / length)
	extra := unit.Scale(cutClearance(ref))
	return cutStart.Sub(extra), cutEnd.Add(extra)
}

// Slice inserts the segment cutStart-cutEnd into poly and returns the
// resulting fragments, each merged and triangulated. ref is the host's UV
// reference rectangle: it is used only to size the cut-segment extension and
// to compute each output vertex's UV, never mutated or derived from poly. A
// result of length 0 or 1 means no cut occurred and the caller must leave
// the input intact.
func Slice(poly geom.PolygonWithHoles, cutStart, cutEnd geom.Point, ref UVRect, opts ...Option) (result []Mesh, err error) {
	o := resolveOptions(opts)
	defer func() { err = throw.Recover(recover()) }()

	if cutStart.Coincident(cutEnd) {
		return nil, nil
	}
	cutStart, cutEnd = extendCut(cutStart, cutEnd, ref)

	poly = normalizeIngress(poly)
	polys := slicer.Slice(poly, cutStart, cutEnd, warnAdapter(o.Warnf))
	if len(polys) < 2 {
		return nil, nil
	}

	meshes := make([]Mesh, len(polys))
	if o.ParallelMerge {
		var wg sync.WaitGroup
		wg.Add(len(polys))
		for i, p := range polys {
			go func(i int, p geom.PolygonWithHoles) {
				defer wg.Done()
				meshes[i] = mergeAndTriangulate(p, ref, o.Warnf)
			}(i, p)
		}
		wg.Wait()
	} else {
		for i, p := range polys {
			meshes[i] = mergeAndTriangulate(p, ref, o.Warnf)
		}
	}
	return meshes, nil
}

// normalizeIngress simplifies and re-enforces winding on poly's outer and
// hole loops before they reach the planar graph, per spec.md §3's
// "normalization step enforces winding at ingress": collapsing
// near-duplicate vertices here keeps them from ever producing a spurious
// zero-length edge in the planar graph.
func normalizeIngress(poly geom.PolygonWithHoles) geom.PolygonWithHoles {
	out := geom.PolygonWithHoles{
		Outer: geom.EnsureWinding(geom.Simplify(poly.Outer), true),
		Holes: make([][]geom.Point, len(poly.Holes)),
	}
	for i, h := range poly.Holes {
		out.Holes[i] = geom.EnsureWinding(geom.Simplify(h), false)
	}
	return out
}

func mergeAndTriangulate(p geom.PolygonWithHoles, ref UVRect, warnf func(string, ...any)) Mesh {
	boundary := merge.Merge(p.Outer, p.Holes, warnAdapter(warnf))
	indices := triangulate.Triangulate(boundary, warnAdapter(warnf))
	uv := make([]geom.Point, len(boundary))
	for i, v := range boundary {
		u, w := ref.UV(v)
		uv[i] = geom.Point{X: u, Y: w}
	}
	return Mesh{Polygon: p, Vertices: boundary, UV: uv, Indices: indices}
}

// Merge stitches holes into outer and returns a single simple-polygon
// vertex sequence suitable for Triangulate.
func Merge(outer []geom.Point, holes [][]geom.Point, opts ...Option) (result []geom.Point, err error) {
	o := resolveOptions(opts)
	defer func() { err = throw.Recover(recover()) }()
	return merge.Merge(outer, holes, warnAdapter(o.Warnf)), nil
}

// Triangulate ear-clips a simple polygon vertex sequence of any winding and
// returns a triangle index list of length 3*(N-2) when successful, or
// shorter on degenerate input that exhausts the watchdog.
func Triangulate(points []geom.Point, opts ...Option) (result []uint32, err error) {
	o := resolveOptions(opts)
	defer func() { err = throw.Recover(recover()) }()
	if len(points) < 3 {
		throw.Wrap(ErrTooFewPoints, "Triangulate")
	}
	return triangulate.Triangulate(points, warnAdapter(o.Warnf)), nil
}

// warnAdapter turns a printf-style Warnf into the plain func(string) hook
// the internal packages call through, so they stay free of the public
// API's formatting conventions.
func warnAdapter(warnf func(string, ...any)) func(string) {
	if warnf == nil {
		return nil
	}
	return func(msg string) { warnf("%s", msg) }
}
