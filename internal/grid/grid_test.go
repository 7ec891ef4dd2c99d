package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wrenfield/polyslice/geom"
)

func TestInsertEnumerateRemove(t *testing.T) {
	bounds := geom.AABB{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 10, Y: 10}}
	g := NewFor[int](bounds, 4)

	positions := map[int]geom.Point{
		1: {X: 1, Y: 1},
		2: {X: 9, Y: 9},
		3: {X: 5, Y: 5},
	}
	for k, p := range positions {
		g.Insert(k, p)
	}

	found := g.EnumerateWindow(geom.AABB{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 2, Y: 2}}, nil)
	assert.Contains(t, found, 1)
	assert.NotContains(t, found, 2)

	g.Remove(1)
	found = g.EnumerateWindow(bounds, nil)
	assert.NotContains(t, found, 1)
	assert.Contains(t, found, 2)
	assert.Contains(t, found, 3)
}

func TestClampsOutOfRangeQueries(t *testing.T) {
	bounds := geom.AABB{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 10, Y: 10}}
	g := NewFor[string](bounds, 1)
	g.Insert("corner", geom.Point{X: 0, Y: 0})

	found := g.EnumerateWindow(geom.AABB{Min: geom.Point{X: -100, Y: -100}, Max: geom.Point{X: -50, Y: -50}}, nil)
	assert.Contains(t, found, "corner")
}

func TestCellCountCappedForSparseInput(t *testing.T) {
	bounds := geom.AABB{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 1e6, Y: 1e6}}
	g := NewFor[int](bounds, 1)
	assert.LessOrEqual(t, g.cols*g.rows, MaxCells)
}
