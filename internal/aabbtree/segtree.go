package aabbtree

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/wrenfield/polyslice/geom"
	"github.com/wrenfield/polyslice/internal/dbgname"
)

// SegTree is the "wall" tree of the hole merger: a static BVH over segments
// with the specific endpoint-skip query contract of the source.
type SegTree struct {
	tree *Tree[geom.Segment]
}

// BuildSegTree builds a SegTree over segs.
func BuildSegTree(segs []geom.Segment) *SegTree {
	return &SegTree{tree: Build(segs, func(s geom.Segment) geom.AABB { return s.Box })}
}

// Intersects reports whether segment p-q strictly crosses any stored segment
// that does not share an endpoint with it. It returns on the first hit.
func (st *SegTree) Intersects(p, q geom.Point) bool {
	queryBox := geom.BoundSegment(p, q, geom.SegmentAABBPad)
	hit := false
	st.tree.VisitOverlapping(queryBox, func(s geom.Segment) bool {
		if sharesEndpoint(p, q, s) {
			return true // keep visiting
		}
		if _, ok := geom.SegIntersect(p, q, s.Start, s.End); ok {
			hit = true
			return false // stop: first hit is enough
		}
		return true
	})
	return hit
}

func sharesEndpoint(p, q Point, s geom.Segment) bool {
	return p.DistSq(s.Start) <= geom.TreeEndpointEpsSq ||
		p.DistSq(s.End) <= geom.TreeEndpointEpsSq ||
		q.DistSq(s.Start) <= geom.TreeEndpointEpsSq ||
		q.DistSq(s.End) <= geom.TreeEndpointEpsSq
}

// Point is a local alias so sharesEndpoint's signature reads naturally
// without importing geom.Point twice under two names.
type Point = geom.Point

// String renders the tree's segment count for debug logs, colorized the way
// the teacher colorizes its own trapezoid dumps.
func (st *SegTree) String() string {
	var parts []string
	if st.tree != nil {
		parts = append(parts, fmt.Sprintf("%d segments", st.tree.Len()))
	}
	return aurora.Cyan(fmt.Sprintf("SegTree(%s) %s", dbgname.Of(st), strings.Join(parts, ", "))).String()
}
