package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wrenfield/polyslice/geom"
)

func square(cx, cy, half float64) []geom.Point {
	return []geom.Point{
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
		{X: cx - half, Y: cy + half},
	}
}

func TestMergeNoHolesReturnsOuterUnchanged(t *testing.T) {
	outer := square(0, 0, 2)
	out := Merge(outer, nil, nil)
	assert.Equal(t, outer, out)
}

func TestMergeSingleHolePreservesAreaAndLength(t *testing.T) {
	outer := square(0, 0, 2)
	hole := geom.Reverse(square(0, 0, 1)) // CW

	out := Merge(outer, [][]geom.Point{hole}, nil)

	assert.Len(t, out, len(outer)+len(hole)+2)
	assert.InDelta(t, geom.SignedArea(outer)+geom.SignedArea(hole), geom.SignedArea(out), 1e-9)
	assert.True(t, geom.IsCCW(out))
}

func TestMergeTwoHolesBothBridgedWithoutCrossing(t *testing.T) {
	outer := square(0, 0, 5)
	holeA := geom.Reverse(square(-2, 0, 1))
	holeB := geom.Reverse(square(2, 0, 1))

	out := Merge(outer, [][]geom.Point{holeA, holeB}, nil)

	expectedLen := len(outer) + len(holeA) + 2 + len(holeB) + 2
	assert.Len(t, out, expectedLen)
	assert.InDelta(t, geom.SignedArea(outer)+geom.SignedArea(holeA)+geom.SignedArea(holeB), geom.SignedArea(out), 1e-9)
}
