// Package graph implements a fixed-size weighted graph whose vertices and edges
// carry a player color, together with the shortest-path, spanning-tree and
// color-connectivity algorithms that run over it.
//
// Vertices are identified by their index in [0, Len()). Each vertex owns the
// list of its outgoing edges; an undirected relationship is two mirrored
// directed edges, one stored on each endpoint.
package graph

// Color tags a vertex (cell ownership) or an edge (a confirmed connection).
type Color int8

const (
	None Color = iota
	Blue
	Red
)

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Red:
		return "red"
	default:
		return "none"
	}
}

// Opponent returns the other player color. None has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		return None
	}
}

// NoEdge is returned by EdgeWeight when the edge does not exist.
const NoEdge = -1.0

// Edge is a directed arc From -> To.
type Edge struct {
	From   int
	To     int
	Weight float64
	Color  Color
}

type vertex struct {
	color Color
	edges []Edge
}

// Graph is an arena of vertices; edges reference vertices by index only, so a
// copy of the vertex slice (with its edge slices) is a full deep copy.
type Graph struct {
	vertices []vertex
	nEdges   int
}

// New returns a graph with n uncolored vertices and no edges.
func New(n int) *Graph {
	return &Graph{vertices: make([]vertex, n)}
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.vertices)
}

// EdgeCount returns the number of directed edges, which is the sum of the
// sizes of every adjacency list.
func (g *Graph) EdgeCount() int {
	return g.nEdges
}

// Clone returns a deep copy that shares no storage with g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		vertices: make([]vertex, len(g.vertices)),
		nEdges:   g.nEdges,
	}
	for i, v := range g.vertices {
		c.vertices[i].color = v.color
		if len(v.edges) > 0 {
			c.vertices[i].edges = make([]Edge, len(v.edges))
			copy(c.vertices[i].edges, v.edges)
		}
	}
	return c
}

func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < len(g.vertices)
}

// find returns the position of edge u->v in u's adjacency list, or -1.
func (g *Graph) find(u, v int) int {
	for i, e := range g.vertices[u].edges {
		if e.To == v {
			return i
		}
	}
	return -1
}

// Adjacent reports whether the edge u->v exists. Indices outside the graph
// are reported as not adjacent instead of panicking; callers should still
// bound-check since every other accessor treats them as a programming error.
func (g *Graph) Adjacent(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	return g.find(u, v) >= 0
}

// EdgeWeight returns the weight of u->v, or NoEdge if there is none.
func (g *Graph) EdgeWeight(u, v int) float64 {
	if !g.Adjacent(u, v) {
		return NoEdge
	}
	return g.vertices[u].edges[g.find(u, v)].Weight
}

// EdgeColor returns the color of u->v, or None if there is no such edge.
func (g *Graph) EdgeColor(u, v int) Color {
	if !g.Adjacent(u, v) {
		return None
	}
	return g.vertices[u].edges[g.find(u, v)].Color
}

// AddEdge inserts the directed edge u->v. An existing u->v edge is left
// untouched, so the call is idempotent and never overwrites.
func (g *Graph) AddEdge(u, v int, weight float64, color Color) {
	if g.find(u, v) >= 0 {
		return
	}
	g.vertices[u].edges = append(g.vertices[u].edges, Edge{From: u, To: v, Weight: weight, Color: color})
	g.nEdges++
}

// AddUndirected inserts u->v and v->u with the same weight and color.
func (g *Graph) AddUndirected(u, v int, weight float64, color Color) {
	g.AddEdge(u, v, weight, color)
	g.AddEdge(v, u, weight, color)
}

// DeleteEdge removes u->v and its mirror v->u. Self-loops are never removed.
func (g *Graph) DeleteEdge(u, v int) {
	if u == v {
		return
	}
	g.remove(u, v)
	g.remove(v, u)
}

func (g *Graph) remove(u, v int) {
	i := g.find(u, v)
	if i < 0 {
		return
	}
	edges := g.vertices[u].edges
	g.vertices[u].edges = append(edges[:i], edges[i+1:]...)
	g.nEdges--
}

// VertexColor returns the color of v.
func (g *Graph) VertexColor(v int) Color {
	return g.vertices[v].color
}

// SetVertexColor colors v. A vertex is colored at most once: the call fails
// and leaves the color unchanged if v already has a color.
func (g *Graph) SetVertexColor(v int, color Color) bool {
	if g.vertices[v].color != None {
		return false
	}
	g.vertices[v].color = color
	return true
}

// SetEdgeColor recolors u->v only; the mirror edge is not touched. It fails if
// the edge does not exist.
func (g *Graph) SetEdgeColor(u, v int, color Color) bool {
	i := g.find(u, v)
	if i < 0 {
		return false
	}
	g.vertices[u].edges[i].Color = color
	return true
}

// SetEdgeWeight changes the weight of u->v only. It fails if the edge does not
// exist.
func (g *Graph) SetEdgeWeight(u, v int, weight float64) bool {
	i := g.find(u, v)
	if i < 0 {
		return false
	}
	g.vertices[u].edges[i].Weight = weight
	return true
}

// Edges returns the outgoing edges of v. The slice is the graph's own storage
// and must be treated as read-only.
func (g *Graph) Edges(v int) []Edge {
	return g.vertices[v].edges
}
