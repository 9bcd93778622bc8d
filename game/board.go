// Package game adapts the colored graph to a Hex board: cell coordinates,
// move application and win detection.
//
// Blue owns the LEFT and RIGHT sides and wins by connecting them; Red owns TOP
// and BOTTOM. Each side is a virtual vertex appended after the playable cells
// and joined to every cell along its edge, so a win is a same-color path
// between the two virtual vertices of one player.
package game

import (
	"fmt"
	"hex/graph"
)

// Virtual vertex offsets past the last playable cell.
const (
	Left = iota
	Right
	Top
	Bottom
	numVirtual
)

// Board is a Hex position backed by a graph.Graph.
type Board struct {
	size  int
	g     *graph.Graph
	empty int
}

// NewBoard returns an empty size x size board. It panics if size is outside
// [1, MaxSize].
func NewBoard(size int) *Board {
	if size < 1 || size > MaxSize {
		panic(fmt.Sprintf("board size must be in [1, %d], got %d", MaxSize, size))
	}

	b := &Board{
		size:  size,
		g:     graph.New(size*size + numVirtual),
		empty: size * size,
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := Coord{Row: row, Col: col}
			for _, n := range c.Neighbors(size) {
				b.g.AddEdge(b.Index(c), b.Index(n), 1, graph.None)
			}
		}
	}

	b.g.SetVertexColor(b.virtual(Left), graph.Blue)
	b.g.SetVertexColor(b.virtual(Right), graph.Blue)
	b.g.SetVertexColor(b.virtual(Top), graph.Red)
	b.g.SetVertexColor(b.virtual(Bottom), graph.Red)
	for i := 0; i < size; i++ {
		b.g.AddUndirected(b.virtual(Left), b.Index(Coord{Row: i, Col: 0}), 1, graph.None)
		b.g.AddUndirected(b.virtual(Right), b.Index(Coord{Row: i, Col: size - 1}), 1, graph.None)
		b.g.AddUndirected(b.virtual(Top), b.Index(Coord{Row: 0, Col: i}), 1, graph.None)
		b.g.AddUndirected(b.virtual(Bottom), b.Index(Coord{Row: size - 1, Col: i}), 1, graph.None)
	}

	return b
}

func (b *Board) virtual(side int) int {
	return b.size*b.size + side
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// Index returns the graph vertex of cell c.
func (b *Board) Index(c Coord) int {
	return c.Row*b.size + c.Col
}

// Side returns the graph vertex of a virtual side (Left, Right, Top, Bottom).
func (b *Board) Side(side int) int {
	return b.virtual(side)
}

// Graph exposes the underlying graph for read-only analysis.
func (b *Board) Graph() *graph.Graph {
	return b.g
}

// Color returns the owner of cell c, or graph.None if it is empty.
func (b *Board) Color(c Coord) graph.Color {
	return b.g.VertexColor(b.Index(c))
}

// EmptyCount returns the number of unclaimed cells.
func (b *Board) EmptyCount() int {
	return b.empty
}

// EmptyCells returns every unclaimed cell in row-major order.
func (b *Board) EmptyCells() []Coord {
	cells := make([]Coord, 0, b.empty)
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			c := Coord{Row: row, Col: col}
			if b.Color(c) == graph.None {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// Play claims cell c for color. It fails if c is off the board or already
// claimed. On success every edge between c and a same-colored neighbor,
// virtual sides included, is colored in both directions.
func (b *Board) Play(c Coord, color graph.Color) bool {
	if !c.In(b.size) || color == graph.None {
		return false
	}
	v := b.Index(c)
	if !b.g.SetVertexColor(v, color) {
		return false
	}
	b.empty--

	for _, e := range b.g.Edges(v) {
		if b.g.VertexColor(e.To) == color {
			b.g.SetEdgeColor(v, e.To, color)
			b.g.SetEdgeColor(e.To, v, color)
		}
	}
	return true
}

// Winner returns the color that has connected its two sides, or graph.None.
func (b *Board) Winner() graph.Color {
	if graph.Connections(b.g, b.virtual(Left)).Contains(b.virtual(Right)) {
		return b.g.VertexColor(b.virtual(Left))
	}
	if graph.Connections(b.g, b.virtual(Top)).Contains(b.virtual(Bottom)) {
		return b.g.VertexColor(b.virtual(Top))
	}
	return graph.None
}

// Over reports whether the game has ended.
func (b *Board) Over() bool {
	return b.empty == 0 || b.Winner() != graph.None
}

// Clone returns an independent copy of the position.
func (b *Board) Clone() *Board {
	return &Board{
		size:  b.size,
		g:     b.g.Clone(),
		empty: b.empty,
	}
}
