package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wrenfield/polyslice/geom"
)

func TestLoadSquareIsCCWWithFourPoints(t *testing.T) {
	pts := Load("square")
	assert.Len(t, pts, 4)
	assert.True(t, geom.IsCCW(pts))
}

func TestLoadConcaveArrowHasReflexVertex(t *testing.T) {
	pts := Load("concave-arrow")
	assert.Len(t, pts, 5)

	sawReflex := false
	n := len(pts)
	for i := 0; i < n; i++ {
		prev := pts[geom.CircularIndex(i-1, n)]
		curr := pts[i]
		next := pts[geom.CircularIndex(i+1, n)]
		if geom.IsReflex(prev, curr, next) {
			sawReflex = true
		}
	}
	assert.True(t, sawReflex)
}

func TestLoadScenarioGridFourHolesHasOuterAndFourHoles(t *testing.T) {
	poly, cutStart, cutEnd := LoadScenario("grid-four-holes")
	assert.True(t, geom.IsCCW(poly.Outer))
	assert.Len(t, poly.Holes, 4)
	for _, h := range poly.Holes {
		assert.True(t, geom.IsCW(h))
	}
	assert.Equal(t, geom.Point{X: -4, Y: 0}, cutStart)
	assert.Equal(t, geom.Point{X: 4, Y: 0}, cutEnd)
}

func TestLoadScenarioConcaveVertexCutHasNoHoles(t *testing.T) {
	poly, cutStart, cutEnd := LoadScenario("concave-vertex-cut")
	assert.True(t, geom.IsCCW(poly.Outer))
	assert.Empty(t, poly.Holes)
	assert.Equal(t, geom.Point{X: 2, Y: -1}, cutStart)
	assert.Equal(t, geom.Point{X: 2, Y: 3}, cutEnd)
}
