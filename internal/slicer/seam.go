package slicer

import (
	"sort"

	"github.com/wrenfield/polyslice/geom"
	"github.com/wrenfield/polyslice/internal/pgraph"
)

// edgeHit records one cut-line intersection against a single edge of a path,
// keyed by the edge's index within the path and its squared distance from
// the edge's start vertex (the tie-break used when an edge is crossed more
// than once).
type edgeHit struct {
	edgeIdx int
	distSq  float64
	point   geom.Point
}

// edgeIntersections computes every tolerant intersection of the cut segment
// with each edge of path, in edge-index order.
func edgeIntersections(path []geom.Point, cutStart, cutEnd geom.Point) []edgeHit {
	n := len(path)
	if n < 2 {
		return nil
	}
	var hits []edgeHit
	for i := 0; i < n; i++ {
		a := path[i]
		b := path[geom.CircularIndex(i+1, n)]
		_, v, ok := geom.LineHitsSegment(cutStart, cutEnd, a, b)
		if !ok {
			continue
		}
		p := a.Lerp(b, v)
		hits = append(hits, edgeHit{edgeIdx: i, distSq: p.DistSq(a), point: p})
	}
	return hits
}

// spliceVertices builds the new vertex sequence for path: each edge's
// intersections are inserted, sorted by squared distance from the edge's
// start vertex, immediately after that edge's start vertex. Consecutive
// (circularly) coincident vertices are then collapsed.
func spliceVertices(path []geom.Point, hits []edgeHit) []geom.Point {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].edgeIdx != hits[j].edgeIdx {
			return hits[i].edgeIdx < hits[j].edgeIdx
		}
		return hits[i].distSq < hits[j].distSq
	})

	byEdge := make(map[int][]geom.Point, len(hits))
	for _, h := range hits {
		byEdge[h.edgeIdx] = append(byEdge[h.edgeIdx], h.point)
	}

	out := make([]geom.Point, 0, len(path)+len(hits))
	for i, p := range path {
		out = append(out, p)
		out = append(out, byEdge[i]...)
	}
	return dedupConsecutive(out)
}

// dedupConsecutive drops points coincident with their predecessor, treating
// the sequence as circularly closed (the last point is compared against the
// first).
func dedupConsecutive(pts []geom.Point) []geom.Point {
	if len(pts) == 0 {
		return pts
	}
	out := make([]geom.Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if !p.Coincident(out[len(out)-1]) {
			out = append(out, p)
		}
	}
	if len(out) > 1 && out[0].Coincident(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// dedupUnordered collapses coincident points anywhere in pts, keeping the
// first occurrence. Intersection counts are small enough per slice that the
// O(n^2) scan is not worth indexing.
func dedupUnordered(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Coincident(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// injectSeam applies the odd-even cut-seam rule: the deduplicated
// intersection points are sorted by scalar projection onto the cut
// direction and paired consecutively, with an odd point out discarded. Each
// pair becomes an edge in both directions.
func injectSeam(g *pgraph.Graph, uniqHits []geom.Point, cutStart, cutEnd geom.Point) {
	dir := cutEnd.Sub(cutStart)
	sorted := append([]geom.Point(nil), uniqHits...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Sub(cutStart).Dot(dir) < sorted[j].Sub(cutStart).Dot(dir)
	})
	for i := 0; i+1 < len(sorted); i += 2 {
		g.AddEdge(sorted[i], sorted[i+1])
	}
}
