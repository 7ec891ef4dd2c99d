// Package ring implements the arena-indexed doubly-linked circular list
// shared by the hole merger (bridge stitching) and the triangulator
// (ear-clip working polygon). Both need to insert nodes that are
// geometrically coincident with an existing node but topologically
// distinct, which an index-based arena makes trivial: a duplicate is just
// another slot holding the same value.
package ring

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/wrenfield/polyslice/internal/dbgname"
)

// Handle identifies a node within a Ring. The zero Handle is never valid;
// handles returned by this package start at 1.
type Handle int

type entry[T any] struct {
	value      T
	prev, next Handle
	live       bool
}

// Ring is a circular doubly-linked list of values of type T, addressed by
// Handle rather than pointer.
type Ring[T any] struct {
	entries []entry[T]
}

// New returns an empty ring.
func New[T any]() *Ring[T] {
	return &Ring[T]{entries: []entry[T]{{}}} // index 0 is unused, so Handle 0 stays invalid
}

// FromSlice builds a ring from vals in order and returns the handle of the
// first node.
func FromSlice[T any](vals []T) (*Ring[T], Handle) {
	r := New[T]()
	if len(vals) == 0 {
		return r, 0
	}
	first := r.push(vals[0])
	prev := first
	for _, v := range vals[1:] {
		h := r.push(v)
		r.link(prev, h)
		prev = h
	}
	r.link(prev, first)
	return r, first
}

func (r *Ring[T]) push(v T) Handle {
	r.entries = append(r.entries, entry[T]{value: v, live: true})
	return Handle(len(r.entries) - 1)
}

func (r *Ring[T]) link(a, b Handle) {
	r.entries[a].next = b
	r.entries[b].prev = a
}

// Value returns the value stored at h.
func (r *Ring[T]) Value(h Handle) T { return r.entries[h].value }

// SetValue overwrites the value stored at h.
func (r *Ring[T]) SetValue(h Handle, v T) { r.entries[h].value = v }

// Next and Prev traverse the ring.
func (r *Ring[T]) Next(h Handle) Handle { return r.entries[h].next }
func (r *Ring[T]) Prev(h Handle) Handle { return r.entries[h].prev }

// Live reports whether h has not been unlinked by Remove.
func (r *Ring[T]) Live(h Handle) bool { return r.entries[h].live }

// InsertAfter creates a new node holding v immediately after h and returns
// its handle.
func (r *Ring[T]) InsertAfter(h Handle, v T) Handle {
	nh := r.push(v)
	old := r.entries[h].next
	r.link(h, nh)
	r.link(nh, old)
	return nh
}

// PushChain appends vals as a new linear chain of nodes, not yet linked into
// any cycle, and returns the handles of its first and last nodes. Used by
// callers (the hole merger) that need to build a chain in one ring's arena
// before splicing it into an existing cycle with SpliceChainAfter.
func (r *Ring[T]) PushChain(vals []T) (start, end Handle) {
	if len(vals) == 0 {
		return 0, 0
	}
	start = r.push(vals[0])
	prev := start
	for _, v := range vals[1:] {
		h := r.push(v)
		r.link(prev, h)
		prev = h
	}
	return start, prev
}

// SpliceChainAfter inserts the handles in chain, already linked to each
// other in order, as a block immediately after h. The caller is responsible
// for chain[i].next already pointing at chain[i+1]; only the block's
// boundary links to the rest of the ring are set here.
func (r *Ring[T]) SpliceChainAfter(h Handle, chainStart, chainEnd Handle) {
	old := r.entries[h].next
	r.link(h, chainStart)
	r.link(chainEnd, old)
}

// Remove unlinks h from the ring, stitching its neighbors together. h itself
// remains a valid (but Live()==false) handle whose Value is unchanged, so
// callers that keep a handle around after removal (e.g. a stale grid or
// candidate-list entry) can still detect it.
func (r *Ring[T]) Remove(h Handle) {
	p, n := r.entries[h].prev, r.entries[h].next
	r.link(p, n)
	r.entries[h].live = false
}

// String renders the ring's slot count and live-node count for debug logs,
// colorized the way the AABB tree's own dump is.
func (r *Ring[T]) String() string {
	live := 0
	for _, e := range r.entries {
		if e.live {
			live++
		}
	}
	return aurora.Cyan(fmt.Sprintf("Ring(%s) %d slots, %d live", dbgname.Of(r), len(r.entries)-1, live)).String()
}

// Flatten walks the ring starting at start and returns the sequence of
// values, stopping when it returns to start. cap bounds the walk to guard
// against a corrupted or non-terminating cycle.
func Flatten[T any](r *Ring[T], start Handle, cap int) ([]T, bool) {
	if start == 0 {
		return nil, true
	}
	out := []T{r.Value(start)}
	h := r.Next(start)
	for h != start {
		if len(out) >= cap {
			return out, false
		}
		out = append(out, r.Value(h))
		h = r.Next(h)
	}
	return out, true
}
