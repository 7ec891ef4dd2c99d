// Package pgraph implements the undirected multigraph over
// coincidence-quantized 2D points used by the slicer to insert a cut and
// extract the resulting faces. Nodes are keyed by geom.QKey so points within
// ~EpsCoincide collapse to a single vertex; edges carry no data beyond their
// endpoints.
package pgraph

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/wrenfield/polyslice/geom"
	"github.com/wrenfield/polyslice/internal/dbgname"
)

// Graph is an adjacency-list multigraph keyed by quantized coordinate.
type Graph struct {
	pos  map[geom.QKey]geom.Point
	adj  map[geom.QKey][]geom.QKey
	order []geom.QKey // insertion order, for deterministic iteration
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		pos: make(map[geom.QKey]geom.Point),
		adj: make(map[geom.QKey][]geom.QKey),
	}
}

func (g *Graph) ensureNode(p geom.Point) geom.QKey {
	k := geom.Quantize(p)
	if _, ok := g.pos[k]; !ok {
		g.pos[k] = p
		g.order = append(g.order, k)
	}
	return k
}

// Position returns the representative point stored for k.
func (g *Graph) Position(k geom.QKey) geom.Point { return g.pos[k] }

// Neighbors returns k's adjacency list in insertion order.
func (g *Graph) Neighbors(k geom.QKey) []geom.QKey { return g.adj[k] }

// AddEdge inserts an undirected edge between a and b, adding either endpoint
// as a node if it doesn't already exist. The same directed edge is never
// duplicated: adding (a,b) twice leaves the adjacency lists unchanged the
// second time.
func (g *Graph) AddEdge(a, b geom.Point) {
	if a.Coincident(b) {
		return // degenerate edge
	}
	ka := g.ensureNode(a)
	kb := g.ensureNode(b)
	if ka == kb {
		return
	}
	g.addDirected(ka, kb)
	g.addDirected(kb, ka)
}

func (g *Graph) addDirected(from, to geom.QKey) {
	for _, n := range g.adj[from] {
		if n == to {
			return
		}
	}
	g.adj[from] = append(g.adj[from], to)
}

// Nodes returns every node key in insertion order.
func (g *Graph) Nodes() []geom.QKey { return g.order }

// EdgeCount returns the number of distinct directed edges in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}
	return n
}

// String renders the graph's node and edge counts for debug logs, colorized
// the way the AABB tree's own dump is.
func (g *Graph) String() string {
	return aurora.Cyan(fmt.Sprintf("Graph(%s) %d nodes, %d edges", dbgname.Of(g), len(g.order), g.EdgeCount())).String()
}
