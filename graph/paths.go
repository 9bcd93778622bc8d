package graph

import (
	"hex/utils"

	"github.com/rhartert/sparsesets"
)

// NoPath is returned by distance queries when the target cannot be reached.
const NoPath = -1.0

// Path is a route from a fixed source along with its accumulated weight.
type Path struct {
	vertices []int
	weight   float64
}

// NewPath returns the trivial path that starts and ends at start.
func NewPath(start int) Path {
	return Path{vertices: []int{start}}
}

// Extend returns a new path that follows e from the end of p. p is not
// modified.
func (p Path) Extend(e Edge) Path {
	vertices := make([]int, len(p.vertices), len(p.vertices)+1)
	copy(vertices, p.vertices)
	return Path{
		vertices: append(vertices, e.To),
		weight:   p.weight + e.Weight,
	}
}

// Vertices returns the vertices of the path, source first.
func (p Path) Vertices() []int {
	return p.vertices
}

func (p Path) Weight() float64 {
	return p.weight
}

// Final returns the last vertex of the path.
func (p Path) Final() int {
	return p.vertices[len(p.vertices)-1]
}

// Len returns the number of vertices on the path.
func (p Path) Len() int {
	return len(p.vertices)
}

// SameFinal reports whether both paths end at the same vertex. Search sets use
// this as path equality: two routes to one vertex are interchangeable.
func (p Path) SameFinal(other Path) bool {
	return p.Final() == other.Final()
}

// ShortestLength returns the length of the shortest path from u to v, or
// NoPath if v is unreachable. Edge weights must be non-negative.
func ShortestLength(g *Graph, u, v int) float64 {
	if u == v {
		return 0
	}

	open := sparsesets.New(g.Len())
	frontier := newVertexFrontier()
	seed(g, u, open, frontier)

	for !frontier.Empty() {
		vertex, dist := frontier.PopMin()
		if vertex == v {
			return dist
		}
		if open.Contains(vertex) {
			continue
		}
		open.Insert(vertex)
		relax(g, vertex, dist, open, frontier)
	}

	return NoPath
}

// AverageShortestPath returns the mean shortest-path length from u to every
// other vertex reachable from it, or NoPath if no other vertex is reachable.
func AverageShortestPath(g *Graph, u int) float64 {
	open := sparsesets.New(g.Len())
	frontier := newVertexFrontier()
	seed(g, u, open, frontier)

	var dists []float64
	for !frontier.Empty() {
		vertex, dist := frontier.PopMin()
		if open.Contains(vertex) {
			continue
		}
		open.Insert(vertex)
		dists = append(dists, dist)
		relax(g, vertex, dist, open, frontier)
	}

	if len(dists) == 0 {
		return NoPath
	}
	return utils.Mean(dists)
}

// newVertexFrontier keys entries by vertex, so InsertIfBetter only queues a
// vertex again when its tentative distance improves. Stale entries are skipped
// through the open set when popped.
func newVertexFrontier() *Frontier[int] {
	return NewFrontier(func(v int) int { return v })
}

func seed(g *Graph, u int, open *sparsesets.Set, frontier *Frontier[int]) {
	open.Insert(u)
	for _, e := range g.Edges(u) {
		if e.To != u {
			frontier.InsertIfBetter(e.To, e.Weight)
		}
	}
}

func relax(g *Graph, vertex int, dist float64, open *sparsesets.Set, frontier *Frontier[int]) {
	for _, e := range g.Edges(vertex) {
		if !open.Contains(e.To) {
			frontier.InsertIfBetter(e.To, dist+e.Weight)
		}
	}
}

// ShortestPath returns the shortest route from u to v. If v is unreachable the
// trivial path holding only u is returned.
func ShortestPath(g *Graph, u, v int) Path {
	start := NewPath(u)
	if u == v {
		return start
	}

	open := sparsesets.New(g.Len())
	open.Insert(u)
	frontier := NewFrontier(Path.Final)
	for _, e := range g.Edges(u) {
		if e.To != u {
			next := start.Extend(e)
			frontier.InsertIfBetter(next, next.Weight())
		}
	}

	for !frontier.Empty() {
		current, _ := frontier.PopMin()
		final := current.Final()
		if final == v {
			return current
		}
		if open.Contains(final) {
			continue
		}
		open.Insert(final)
		for _, e := range g.Edges(final) {
			if !open.Contains(e.To) {
				next := current.Extend(e)
				frontier.InsertIfBetter(next, next.Weight())
			}
		}
	}

	return start
}
