// Package slicer builds the planar subdivision produced by inserting a cut
// segment into a polygon-with-holes and extracts the resulting faces, each
// with its holes reattached to the solid that contains it. It implements the
// graph-construction, cut-seam injection, loop-extraction, classification,
// and hierarchy-assignment stages that sit between the raw cut request and
// the hole merger.
package slicer

import (
	"github.com/wrenfield/polyslice/geom"
	"github.com/wrenfield/polyslice/internal/pgraph"
)

// Slice inserts the segment cutStart-cutEnd into poly and returns the
// resulting polygons with their holes reassigned. onWarn, if non-nil,
// receives one message per dropped walk or orphaned hole; it is never
// called for the ordinary "cut missed the polygon" no-op case, which simply
// returns nil.
func Slice(poly geom.PolygonWithHoles, cutStart, cutEnd geom.Point, onWarn func(string)) []geom.PolygonWithHoles {
	if cutStart.Coincident(cutEnd) {
		return nil
	}

	paths := make([][]geom.Point, 0, 1+len(poly.Holes))
	paths = append(paths, poly.Outer)
	paths = append(paths, poly.Holes...)

	g := pgraph.New()
	var allHits []geom.Point
	for _, path := range paths {
		hits := edgeIntersections(path, cutStart, cutEnd)
		for _, h := range hits {
			allHits = append(allHits, h.point)
		}
		addPathEdges(g, spliceVertices(path, hits))
	}

	uniqHits := dedupUnordered(allHits)
	if len(uniqHits) < 2 {
		return nil
	}
	injectSeam(g, uniqHits, cutStart, cutEnd)

	loops := pgraph.ExtractLoops(g, onWarn)
	solids, holes := classify(loops)
	// An input hole's own interior is a bounded face of the graph and is
	// walked CCW like a solid; a probe just inside each face's first edge
	// tells such empty faces apart from filled ones.
	filled := solids[:0]
	for _, s := range solids {
		a, b := s[0], s[1]
		probe := a.Lerp(b, 0.5).Add(geom.Point{X: a.Y - b.Y, Y: b.X - a.X}.Scale(1e-3))
		inHole := false
		for _, h := range poly.Holes {
			inHole = inHole || geom.PointInPolygon(probe, h)
		}
		if !inHole {
			filled = append(filled, s)
		}
	}
	solids = filled
	if len(solids) == 0 {
		return nil
	}
	return assignHoles(solids, holes, onWarn)
}

func addPathEdges(g *pgraph.Graph, pts []geom.Point) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		g.AddEdge(pts[i], pts[geom.CircularIndex(i+1, n)])
	}
}
