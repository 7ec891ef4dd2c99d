// Package merge stitches a set of hole loops into an outer loop, producing a
// single simple closed polygon suitable for ear-clip triangulation. Each
// hole is connected to the outer boundary by a bridge: a pair of edges
// traversed once in each direction, threaded through two nodes that are
// geometrically coincident with the bridge's endpoints but topologically
// distinct, so the result remains a single traversable cycle.
package merge

import (
	"math"
	"sort"

	"github.com/wrenfield/polyslice/geom"
	"github.com/wrenfield/polyslice/internal/aabbtree"
	"github.com/wrenfield/polyslice/internal/ring"
)

// ringSafetyCap bounds ring traversal against a corrupted or non-terminating
// cycle; no legitimate input approaches this many nodes.
const ringSafetyCap = 100_000

// Merge stitches holes into outer and returns the single resulting boundary
// as a flat point sequence. Holes that cannot be bridged (no unobstructed
// candidate found) are dropped and reported through onWarn.
func Merge(outer []geom.Point, holes [][]geom.Point, onWarn func(string)) []geom.Point {
	if len(holes) == 0 {
		return append([]geom.Point(nil), outer...)
	}

	wall := aabbtree.BuildSegTree(collectSegments(outer, holes))
	r, start := ring.FromSlice(outer)

	var placedBridges []geom.Segment
	for _, idx := range orderByMaxXDescending(holes) {
		hole := holes[idx]
		mIdx := maxXIndex(hole)
		m := hole[mIdx]

		target, ok := findBridgeTarget(r, start, m, wall, placedBridges)
		if !ok {
			if onWarn != nil {
				onWarn("merge: no unobstructed bridge target found for hole, skipping")
			}
			continue
		}
		p := r.Value(target)

		chain := make([]geom.Point, 0, len(hole)+2)
		chain = append(chain, rotateStartingAt(hole, mIdx)...)
		chain = append(chain, m, p) // M', P'
		chainStart, chainEnd := r.PushChain(chain)
		r.SpliceChainAfter(target, chainStart, chainEnd)

		placedBridges = append(placedBridges, geom.NewSegment(m, p))
	}

	flat, _ := ring.Flatten(r, start, ringSafetyCap)
	return flat
}

// findBridgeTarget scans every node of the ring currently rooted at start
// for the nearest point P with P.X > m.X such that segment M-P crosses
// neither the wall tree nor any previously placed bridge.
func findBridgeTarget(r *ring.Ring[geom.Point], start ring.Handle, m geom.Point, wall *aabbtree.SegTree, placed []geom.Segment) (ring.Handle, bool) {
	handles, _ := enumerateHandles(r, start, ringSafetyCap)

	best := ring.Handle(0)
	bestDistSq := math.Inf(1)
	found := false

	for _, h := range handles {
		p := r.Value(h)
		if p.X <= m.X {
			continue
		}
		d := p.DistSq(m)
		if d >= bestDistSq {
			continue
		}
		if wall.Intersects(m, p) {
			continue
		}
		if intersectsAny(m, p, placed) {
			continue
		}
		best, bestDistSq, found = h, d, true
	}
	return best, found
}

func intersectsAny(a, b geom.Point, segs []geom.Segment) bool {
	for _, s := range segs {
		if _, ok := geom.SegIntersect(a, b, s.Start, s.End); ok {
			return true
		}
	}
	return false
}

func enumerateHandles(r *ring.Ring[geom.Point], start ring.Handle, cap int) ([]ring.Handle, bool) {
	if start == 0 {
		return nil, true
	}
	handles := []ring.Handle{start}
	h := r.Next(start)
	for h != start {
		if len(handles) >= cap {
			return handles, false
		}
		handles = append(handles, h)
		h = r.Next(h)
	}
	return handles, true
}

func collectSegments(outer []geom.Point, holes [][]geom.Point) []geom.Segment {
	segs := loopSegments(outer)
	for _, h := range holes {
		segs = append(segs, loopSegments(h)...)
	}
	return segs
}

func loopSegments(loop []geom.Point) []geom.Segment {
	n := len(loop)
	segs := make([]geom.Segment, n)
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[geom.CircularIndex(i+1, n)]
		segs[i] = geom.NewSegment(a, b)
	}
	return segs
}

func maxXIndex(loop []geom.Point) int {
	best := 0
	for i, p := range loop {
		if p.X > loop[best].X {
			best = i
		}
	}
	return best
}

func rotateStartingAt(loop []geom.Point, idx int) []geom.Point {
	n := len(loop)
	out := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		out[i] = loop[geom.CircularIndex(idx+i, n)]
	}
	return out
}

// orderByMaxXDescending returns hole indices sorted by their own MaxX
// vertex, rightmost first: bridging the rightmost hole first maximizes the
// chance its bridge target lies unobstructed to the right.
func orderByMaxXDescending(holes [][]geom.Point) []int {
	idx := make([]int, len(holes))
	maxX := make([]float64, len(holes))
	for i, h := range holes {
		idx[i] = i
		maxX[i] = h[maxXIndex(h)].X
	}
	sort.Slice(idx, func(i, j int) bool { return maxX[idx[i]] > maxX[idx[j]] })
	return idx
}
