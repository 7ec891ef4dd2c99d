package slicer

import (
	"math"

	"github.com/wrenfield/polyslice/geom"
)

// classify splits extracted loops into solid (CCW) and hole (CW) candidates,
// dropping any loop whose absolute signed area falls below geom.AreaMin
// regardless of winding: too small to be a real face, only numerical noise
// from near-degenerate cuts.
func classify(loops [][]geom.Point) (solids, holes [][]geom.Point) {
	for _, loop := range loops {
		area := geom.SignedArea(loop)
		if math.Abs(area) < geom.AreaMin {
			continue
		}
		if area > 0 {
			solids = append(solids, loop)
		} else {
			holes = append(holes, loop)
		}
	}
	return solids, holes
}
