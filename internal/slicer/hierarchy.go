package slicer

import (
	"math"

	"github.com/wrenfield/polyslice/geom"
	"github.com/wrenfield/polyslice/internal/aabbtree"
)

type solidRef struct {
	idx int
	box geom.AABB
}

// assignHoles builds a solid-containment AABB tree and, for each hole,
// queries for the smallest-area solid whose bounds contain the hole's
// centroid, whose area exceeds the hole's own, and whose polygon actually
// contains the centroid by ray casting. Holes with no qualifying parent are
// discarded and reported through onWarn.
func assignHoles(solids, holes [][]geom.Point, onWarn func(string)) []geom.PolygonWithHoles {
	refs := make([]solidRef, len(solids))
	for i, s := range solids {
		refs[i] = solidRef{idx: i, box: geom.BoundPoints(s)}
	}
	tree := aabbtree.Build(refs, func(r solidRef) geom.AABB { return r.box })

	result := make([]geom.PolygonWithHoles, len(solids))
	for i, s := range solids {
		result[i] = geom.PolygonWithHoles{Outer: s}
	}

	for _, hole := range holes {
		centroid := geom.Centroid(hole)
		holeArea := geom.Area(hole)

		best := -1
		bestArea := math.Inf(1)
		tree.VisitContaining(centroid, func(r solidRef) bool {
			solid := solids[r.idx]
			area := geom.Area(solid)
			if area <= holeArea || area >= bestArea {
				return true
			}
			if !geom.PointInPolygon(centroid, solid) {
				return true
			}
			best, bestArea = r.idx, area
			return true
		})

		if best < 0 {
			if onWarn != nil {
				onWarn("slicer: discarding orphan hole with no qualifying parent solid")
			}
			continue
		}
		result[best].Holes = append(result[best].Holes, hole)
	}
	return result
}
