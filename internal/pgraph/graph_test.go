package pgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wrenfield/polyslice/geom"
)

func square() []geom.Point {
	return []geom.Point{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
}

func addLoop(g *Graph, loop []geom.Point) {
	n := len(loop)
	for i := 0; i < n; i++ {
		g.AddEdge(loop[i], loop[geom.CircularIndex(i+1, n)])
	}
}

func TestExtractLoopsSingleSquareBothOrientations(t *testing.T) {
	g := New()
	addLoop(g, square())

	loops := ExtractLoops(g, nil)
	// A single undirected square cycle produces exactly two directed faces:
	// the CCW interior and the CW exterior.
	assert.Len(t, loops, 2)

	var sawCCW, sawCW bool
	for _, loop := range loops {
		assert.Len(t, loop, 4)
		if geom.IsCCW(loop) {
			sawCCW = true
		}
		if geom.IsCW(loop) {
			sawCW = true
		}
	}
	assert.True(t, sawCCW)
	assert.True(t, sawCW)
}

func TestAddEdgeDoesNotDuplicateDirectedEdges(t *testing.T) {
	g := New()
	a, b := geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}
	g.AddEdge(a, b)
	g.AddEdge(a, b)
	g.AddEdge(b, a)

	ka := geom.Quantize(a)
	assert.Len(t, g.Neighbors(ka), 1)
}

func TestAddEdgeSkipsDegenerateEdge(t *testing.T) {
	g := New()
	p := geom.Point{X: 0, Y: 0}
	g.AddEdge(p, geom.Point{X: 0.0001, Y: 0.0001})
	assert.Equal(t, 0, g.EdgeCount())
}

func TestStringReportsNodeAndEdgeCounts(t *testing.T) {
	g := New()
	g.AddEdge(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0})
	s := g.String()
	assert.Contains(t, s, "2 nodes")
	assert.Contains(t, s, "2 edges")
}
