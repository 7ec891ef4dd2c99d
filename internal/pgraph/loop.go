package pgraph

import (
	"math"

	"github.com/wrenfield/polyslice/geom"
)

type directedEdge struct{ from, to geom.QKey }

// ExtractLoops walks every directed edge of g exactly once, following the
// left-most-turn rule at each junction, and returns the resulting closed
// loops as sequences of points. Unclosed walks (a watchdog-exhausted or
// dead-ended traversal) and loops shorter than 3 points are dropped; onWarn,
// if non-nil, is called once per dropped walk.
func ExtractLoops(g *Graph, onWarn func(string)) [][]geom.Point {
	visited := make(map[directedEdge]bool)
	var loops [][]geom.Point

	for _, start := range g.Nodes() {
		for _, firstNeighbor := range g.Neighbors(start) {
			edge := directedEdge{start, firstNeighbor}
			if visited[edge] {
				continue
			}
			loop, ok := walk(g, visited, start, firstNeighbor)
			if !ok {
				if onWarn != nil {
					onWarn("pgraph: dropped unclosed or degenerate walk")
				}
				continue
			}
			if len(loop) >= 3 {
				loops = append(loops, loop)
			}
		}
	}
	return loops
}

// walk performs one left-most-turn traversal starting with the directed edge
// (start, firstNeighbor), marking every directed edge it crosses as visited
// regardless of whether the walk ultimately closes.
func walk(g *Graph, visited map[directedEdge]bool, start, firstNeighbor geom.QKey) ([]geom.Point, bool) {
	watchdog := 2*g.EdgeCount() + 100

	visited[directedEdge{start, firstNeighbor}] = true
	path := []geom.QKey{start, firstNeighbor}
	prev, curr := start, firstNeighbor

	for curr != start {
		watchdog--
		if watchdog <= 0 {
			return nil, false
		}

		next, ok := leftmostTurn(g, prev, curr)
		if !ok {
			return nil, false // isolated vertex, nothing to continue on
		}
		visited[directedEdge{curr, next}] = true
		path = append(path, next)
		prev, curr = curr, next
	}

	pts := make([]geom.Point, len(path)-1) // drop the repeated start vertex
	for i := 0; i < len(path)-1; i++ {
		pts[i] = g.Position(path[i])
	}
	return pts, true
}

// leftmostTurn picks the neighbor of curr that makes the largest
// counter-clockwise angle measured from the reverse of the incoming
// direction (prev->curr). Ties are broken by first-in-adjacency-list order.
// A dead end (only the reverse edge available) returns that reverse edge,
// allowing the walk to backtrack.
func leftmostTurn(g *Graph, prev, curr geom.QKey) (geom.QKey, bool) {
	neighbors := g.Neighbors(curr)
	if len(neighbors) == 0 {
		return geom.QKey{}, false
	}

	incoming := g.Position(curr).Sub(g.Position(prev))
	refAngle := math.Atan2(-incoming.Y, -incoming.X)

	hasOther := false
	for _, n := range neighbors {
		if n != prev {
			hasOther = true
			break
		}
	}
	if !hasOther {
		return prev, true // dead end: backtrack
	}

	var best geom.QKey
	bestAngle := math.Inf(-1)
	found := false
	for _, n := range neighbors {
		if n == prev {
			continue
		}
		out := g.Position(n).Sub(g.Position(curr))
		angle := normalizeAngle(math.Atan2(out.Y, out.X) - refAngle)
		if angle > bestAngle {
			bestAngle = angle
			best = n
			found = true
		}
	}
	if !found {
		return prev, true
	}
	return best, true
}

// normalizeAngle folds a into [0, 2*pi).
func normalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
