package graph

import (
	"math"

	"github.com/rhartert/sparsesets"
)

// Disconnected is the spanning-tree weight reported for a graph that has no
// spanning tree.
const Disconnected = math.MaxFloat64

// MinimumSpanningTree runs Prim's algorithm from vertex 0 and returns the tree
// as a new graph (each tree edge stored in both directions) together with its
// total weight. Vertex colors are carried over to the tree.
//
// If some vertex cannot be reached the result is an empty graph and
// Disconnected. Edge directions are taken as stored, so a graph that is not
// symmetric yields the arborescence reachable from vertex 0.
func MinimumSpanningTree(g *Graph) (*Graph, float64) {
	n := g.Len()
	if n == 0 {
		return New(0), 0
	}

	tree := New(n)
	for v := 0; v < n; v++ {
		tree.vertices[v].color = g.VertexColor(v)
	}

	inTree := sparsesets.New(n)
	frontier := NewFrontier[Edge](nil)
	grow := func(v int) {
		inTree.Insert(v)
		for _, e := range g.Edges(v) {
			if !inTree.Contains(e.To) {
				frontier.Insert(e, e.Weight)
			}
		}
	}

	grow(0)
	total := 0.0
	for !frontier.Empty() && len(inTree.Content()) < n {
		e, _ := frontier.PopMin()
		if inTree.Contains(e.To) {
			continue
		}
		tree.AddUndirected(e.From, e.To, e.Weight, e.Color)
		total += e.Weight
		grow(e.To)
	}

	if len(inTree.Content()) < n {
		return New(0), Disconnected
	}
	return tree, total
}
