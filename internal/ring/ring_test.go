package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSliceFlatten(t *testing.T) {
	r, start := FromSlice([]int{1, 2, 3, 4})
	vals, closed := Flatten(r, start, 100)
	assert.True(t, closed)
	assert.Equal(t, []int{1, 2, 3, 4}, vals)
}

func TestInsertAfterAndRemove(t *testing.T) {
	r, start := FromSlice([]int{1, 2, 3})
	two := r.Next(start)
	r.InsertAfter(two, 99)
	vals, _ := Flatten(r, start, 100)
	assert.Equal(t, []int{1, 2, 99, 3}, vals)

	r.Remove(two)
	vals, _ = Flatten(r, start, 100)
	assert.Equal(t, []int{1, 99, 3}, vals)
	assert.False(t, r.Live(two))
}

func TestFlattenRespectsCap(t *testing.T) {
	r, start := FromSlice([]int{1, 2, 3, 4, 5})
	_, closed := Flatten(r, start, 3)
	assert.False(t, closed)
}

func TestSpliceChainAfter(t *testing.T) {
	r, start := FromSlice([]int{1, 2})
	// Build a detached two-node chain and splice it in after start.
	a := r.push(10)
	b := r.push(20)
	r.link(a, b)
	r.SpliceChainAfter(start, a, b)

	vals, closed := Flatten(r, start, 100)
	assert.True(t, closed)
	assert.Equal(t, []int{1, 10, 20, 2}, vals)
}

func TestPushChainAndSplice(t *testing.T) {
	r, start := FromSlice([]int{1, 2})
	chainStart, chainEnd := r.PushChain([]int{10, 20, 30})
	r.SpliceChainAfter(start, chainStart, chainEnd)

	vals, closed := Flatten(r, start, 100)
	assert.True(t, closed)
	assert.Equal(t, []int{1, 10, 20, 30, 2}, vals)
}

func TestStringReportsLiveCount(t *testing.T) {
	r, start := FromSlice([]int{1, 2, 3})
	r.Remove(r.Next(start))
	s := r.String()
	assert.Contains(t, s, "3 slots")
	assert.Contains(t, s, "2 live")
}
