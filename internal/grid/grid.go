// Package grid implements the uniform spatial hash used to accelerate the
// ear-clip test: a bucket array over reflex-vertex positions supporting O(1)
// insertion, O(k) removal (k = bucket occupancy) and AABB-window
// enumeration. It is built once per triangulation and discarded with it.
package grid

import (
	"math"

	"github.com/wrenfield/polyslice/geom"
)

// MaxCells caps the total number of buckets a Grid may allocate; cell size is
// enlarged uniformly to stay under this bound on very sparse inputs.
const MaxCells = 200_000

// MinCellSize is the smallest cell size the grid will use, regardless of how
// few reflex vertices there are.
const MinCellSize = 1e-4

// Grid buckets keys of type K by the cell their registered position falls
// in. K is typically a pointer or small handle identifying a ring vertex;
// the grid itself never dereferences it beyond the position given to Insert.
type Grid[K comparable] struct {
	bounds   geom.AABB
	cellSize float64
	cols     int
	rows     int
	buckets  [][]K
	cellOf   map[K]int
}

// NewFor builds a Grid[K] sized for reflexCount vertices within bounds, per
// the cell-size formula of the source: sqrt(area/(reflexCount+1)), clamped
// to MinCellSize and capped so cols*rows <= MaxCells.
func NewFor[K comparable](bounds geom.AABB, reflexCount int) *Grid[K] {
	area := bounds.Width() * bounds.Height()
	if area <= 0 {
		area = MinCellSize * MinCellSize
	}
	cellSize := math.Sqrt(area / float64(reflexCount+1))
	if cellSize < MinCellSize {
		cellSize = MinCellSize
	}

	cols := int(bounds.Width()/cellSize) + 1
	rows := int(bounds.Height()/cellSize) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	for cols*rows > MaxCells {
		cellSize *= 1.5
		cols = int(bounds.Width()/cellSize) + 1
		rows = int(bounds.Height()/cellSize) + 1
		if cols < 1 {
			cols = 1
		}
		if rows < 1 {
			rows = 1
		}
	}

	return &Grid[K]{
		bounds:   bounds,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		buckets:  make([][]K, cols*rows),
		cellOf:   make(map[K]int),
	}
}

func (g *Grid[K]) cellIndex(p geom.Point) int {
	cx := int((p.X - g.bounds.Min.X) / g.cellSize)
	cy := int((p.Y - g.bounds.Min.Y) / g.cellSize)
	if cx < 0 {
		cx = 0
	}
	if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= g.rows {
		cy = g.rows - 1
	}
	return cy*g.cols + cx
}

// Insert registers k at position p. O(1).
func (g *Grid[K]) Insert(k K, p geom.Point) {
	cell := g.cellIndex(p)
	g.buckets[cell] = append(g.buckets[cell], k)
	g.cellOf[k] = cell
}

// Remove unregisters k, which must have been previously inserted. O(bucket
// occupancy).
func (g *Grid[K]) Remove(k K) {
	cell, ok := g.cellOf[k]
	if !ok {
		return
	}
	bucket := g.buckets[cell]
	for i, v := range bucket {
		if v == k {
			bucket[i] = bucket[len(bucket)-1]
			g.buckets[cell] = bucket[:len(bucket)-1]
			break
		}
	}
	delete(g.cellOf, k)
}

// EnumerateWindow appends every key registered in a cell overlapped by box
// to dst and returns the result. Coordinates outside the grid clamp to the
// border cells.
func (g *Grid[K]) EnumerateWindow(box geom.AABB, dst []K) []K {
	minCx, minCy := g.cellCoords(box.Min)
	maxCx, maxCy := g.cellCoords(box.Max)
	for cy := minCy; cy <= maxCy; cy++ {
		for cx := minCx; cx <= maxCx; cx++ {
			dst = append(dst, g.buckets[cy*g.cols+cx]...)
		}
	}
	return dst
}

func (g *Grid[K]) cellCoords(p geom.Point) (int, int) {
	cx := int((p.X - g.bounds.Min.X) / g.cellSize)
	cy := int((p.Y - g.bounds.Min.Y) / g.cellSize)
	if cx < 0 {
		cx = 0
	}
	if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= g.rows {
		cy = g.rows - 1
	}
	return cx, cy
}
