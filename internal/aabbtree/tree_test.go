package aabbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wrenfield/polyslice/geom"
)

func pointBound(p geom.Point) geom.AABB { return geom.AABB{Min: p, Max: p} }

func TestBuildEmptyItemsIsQueryable(t *testing.T) {
	tree := Build([]geom.Point(nil), pointBound)
	assert.Equal(t, 0, tree.Len())

	visited := 0
	tree.VisitOverlapping(geom.AABB{Min: geom.Point{X: -10, Y: -10}, Max: geom.Point{X: 10, Y: 10}}, func(geom.Point) bool {
		visited++
		return true
	})
	assert.Zero(t, visited)

	tree.VisitContaining(geom.Point{}, func(geom.Point) bool {
		visited++
		return true
	})
	assert.Zero(t, visited)
}

func TestVisitOverlappingFindsOnlyOverlappingItems(t *testing.T) {
	items := []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 5}, {X: 5, Y: 5}, {X: 10, Y: 10}}
	tree := Build(items, pointBound)

	query := geom.AABB{Min: geom.Point{X: -1, Y: -1}, Max: geom.Point{X: 1, Y: 1}}
	var hit []geom.Point
	tree.VisitOverlapping(query, func(p geom.Point) bool {
		hit = append(hit, p)
		return true
	})
	assert.ElementsMatch(t, []geom.Point{{X: 0, Y: 0}}, hit)
}

func TestVisitOverlappingStopsEarlyWhenVisitReturnsFalse(t *testing.T) {
	items := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}
	tree := Build(items, pointBound)

	full := geom.AABB{Min: geom.Point{X: -10, Y: -10}, Max: geom.Point{X: 10, Y: 10}}
	visited := 0
	complete := tree.VisitOverlapping(full, func(geom.Point) bool {
		visited++
		return visited < 2 // ask the tree to stop after the second item
	})

	assert.False(t, complete)
	assert.Equal(t, 2, visited)
}

func TestVisitContainingOnlyReturnsItemsWhoseBoundsContainPoint(t *testing.T) {
	type box struct {
		id   int
		aabb geom.AABB
	}
	boxes := []box{
		{id: 0, aabb: geom.AABB{Min: geom.Point{X: -5, Y: -5}, Max: geom.Point{X: 5, Y: 5}}},
		{id: 1, aabb: geom.AABB{Min: geom.Point{X: -1, Y: -1}, Max: geom.Point{X: 1, Y: 1}}},
		{id: 2, aabb: geom.AABB{Min: geom.Point{X: 10, Y: 10}, Max: geom.Point{X: 20, Y: 20}}},
	}
	tree := Build(boxes, func(b box) geom.AABB { return b.aabb })

	var ids []int
	tree.VisitContaining(geom.Point{X: 0.5, Y: 0.5}, func(b box) bool {
		ids = append(ids, b.id)
		return true
	})
	assert.ElementsMatch(t, []int{0, 1}, ids)
}

func TestBuildPartitionsBeyondMaxLeafIntoMultipleNodes(t *testing.T) {
	items := make([]geom.Point, 0, MaxLeaf*4)
	for i := 0; i < MaxLeaf*4; i++ {
		items = append(items, geom.Point{X: float64(i), Y: 0})
	}
	tree := Build(items, pointBound)
	assert.Equal(t, len(items), tree.Len())
	assert.Greater(t, len(tree.nodes), 1, "spreading MaxLeaf*4 items out should force at least one split")

	full := geom.AABB{Min: geom.Point{X: -1, Y: -1}, Max: geom.Point{X: float64(len(items)) + 1, Y: 1}}
	visited := 0
	tree.VisitOverlapping(full, func(geom.Point) bool {
		visited++
		return true
	})
	assert.Equal(t, len(items), visited)
}

func TestBuildDegenerateCenterFallsBackToEvenSplit(t *testing.T) {
	// Every item shares the same position, so the median-partition would
	// otherwise put everything on one side of the split and recurse forever.
	items := make([]geom.Point, 0, MaxLeaf*3)
	for i := 0; i < MaxLeaf*3; i++ {
		items = append(items, geom.Point{X: 0, Y: 0})
	}
	tree := Build(items, pointBound)
	assert.Equal(t, len(items), tree.Len())

	visited := 0
	tree.VisitOverlapping(geom.AABB{Min: geom.Point{X: -1, Y: -1}, Max: geom.Point{X: 1, Y: 1}}, func(geom.Point) bool {
		visited++
		return true
	})
	assert.Equal(t, len(items), visited)
}
