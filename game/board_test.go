package game

import (
	"hex/graph"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(3)

	require.Equal(t, graph.None, b.Winner())
	require.Equal(t, 9, b.EmptyCount())
	require.Len(t, b.EmptyCells(), 9)
	require.Equal(t, 13, b.Graph().Len())
	require.False(t, b.Over())

	t.Run("sides are pre-colored", func(t *testing.T) {
		require.Equal(t, graph.Blue, b.Graph().VertexColor(b.Side(Left)))
		require.Equal(t, graph.Blue, b.Graph().VertexColor(b.Side(Right)))
		require.Equal(t, graph.Red, b.Graph().VertexColor(b.Side(Top)))
		require.Equal(t, graph.Red, b.Graph().VertexColor(b.Side(Bottom)))
	})

	t.Run("side edges start uncolored", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			cell := b.Index(Coord{Row: i, Col: 0})
			require.True(t, b.Graph().Adjacent(b.Side(Left), cell))
			require.True(t, b.Graph().Adjacent(cell, b.Side(Left)))
			require.Equal(t, graph.None, b.Graph().EdgeColor(b.Side(Left), cell))
		}
	})

	t.Run("hex adjacency", func(t *testing.T) {
		center := b.Index(Coord{Row: 1, Col: 1})
		want := []int{1, 2, 3, 5, 6, 7}
		var got []int
		for _, e := range b.Graph().Edges(center) {
			got = append(got, e.To)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Edges(center): mismatch (-want +got):\n%s", diff)
		}

		// corner (0,0): E and SE, plus LEFT and TOP.
		require.Len(t, b.Graph().Edges(b.Index(Coord{Row: 0, Col: 0})), 4)
		// corner (0,2): W, SW, SE; plus RIGHT and TOP.
		require.Len(t, b.Graph().Edges(b.Index(Coord{Row: 0, Col: 2})), 5)
	})

	t.Run("invalid size", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(0) })
		require.Panics(t, func() { NewBoard(MaxSize + 1) })
	})
}

func TestPlay(t *testing.T) {
	t.Run("claims a cell once", func(t *testing.T) {
		b := NewBoard(3)
		c := Coord{Row: 1, Col: 2}

		require.True(t, b.Play(c, graph.Red))
		require.Equal(t, graph.Red, b.Color(c))
		require.Equal(t, 8, b.EmptyCount())

		require.False(t, b.Play(c, graph.Blue), "an occupied cell cannot be claimed")
		require.False(t, b.Play(c, graph.Red))
		require.Equal(t, graph.Red, b.Color(c))
		require.Equal(t, 8, b.EmptyCount())
	})

	t.Run("rejects cells off the board", func(t *testing.T) {
		b := NewBoard(3)

		require.False(t, b.Play(Coord{Row: 3, Col: 0}, graph.Blue))
		require.False(t, b.Play(Coord{Row: 0, Col: -1}, graph.Blue))
		require.Equal(t, 9, b.EmptyCount())
	})

	t.Run("colors edges to same-colored neighbors", func(t *testing.T) {
		b := NewBoard(3)
		a, c := Coord{Row: 0, Col: 0}, Coord{Row: 0, Col: 1}
		b.Play(a, graph.Blue)
		b.Play(c, graph.Blue)

		g := b.Graph()
		require.Equal(t, graph.Blue, g.EdgeColor(b.Index(a), b.Index(c)))
		require.Equal(t, graph.Blue, g.EdgeColor(b.Index(c), b.Index(a)))
		require.Equal(t, graph.Blue, g.EdgeColor(b.Index(a), b.Side(Left)))
		require.Equal(t, graph.Blue, g.EdgeColor(b.Side(Left), b.Index(a)))
		require.Equal(t, graph.None, g.EdgeColor(b.Index(a), b.Side(Top)),
			"edge to the opponent's side should stay uncolored")
	})

	t.Run("does not color edges to opponent stones", func(t *testing.T) {
		b := NewBoard(3)
		a, c := Coord{Row: 1, Col: 1}, Coord{Row: 1, Col: 2}
		b.Play(a, graph.Blue)
		b.Play(c, graph.Red)

		require.Equal(t, graph.None, b.Graph().EdgeColor(b.Index(a), b.Index(c)))
	})
}

func TestWinner(t *testing.T) {
	testCases := []struct {
		desc  string
		moves []Coord
		color graph.Color
		want  graph.Color
	}{
		{
			desc:  "blue anti-diagonal connects left and right",
			moves: []Coord{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}},
			color: graph.Blue,
			want:  graph.Blue,
		},
		{
			desc:  "blue row connects left and right",
			moves: []Coord{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
			color: graph.Blue,
			want:  graph.Blue,
		},
		{
			desc:  "red column connects top and bottom",
			moves: []Coord{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
			color: graph.Red,
			want:  graph.Red,
		},
		{
			desc:  "red row does not connect top and bottom",
			moves: []Coord{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
			color: graph.Red,
			want:  graph.None,
		},
		{
			desc:  "main diagonal cells are not adjacent",
			moves: []Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
			color: graph.Blue,
			want:  graph.None,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			b := NewBoard(3)
			for _, m := range tc.moves {
				require.True(t, b.Play(m, tc.color))
			}

			require.Equal(t, tc.want, b.Winner())
			require.Equal(t, tc.want != graph.None, b.Over())
		})
	}
}

func TestWinnerOnFullBoard(t *testing.T) {
	// Red fills column 1; every other cell is Blue.
	b := NewBoard(3)
	for _, c := range b.EmptyCells() {
		color := graph.Blue
		if c.Col == 1 {
			color = graph.Red
		}
		b.Play(c, color)
	}

	require.Equal(t, 0, b.EmptyCount())
	require.Equal(t, graph.Red, b.Winner())
	require.True(t, b.Over())
}

func TestEmptyRegion(t *testing.T) {
	b := NewBoard(2)
	b.Play(Coord{Row: 0, Col: 1}, graph.Red)

	got := graph.Connections(b.Graph(), b.Index(Coord{Row: 0, Col: 0}))

	// Empty cells reach each other over uncolored edges, sides are never members.
	require.Equal(t, []int{0, 2, 3}, got.Members())
	for _, side := range []int{Left, Right, Top, Bottom} {
		require.False(t, got.Contains(b.Side(side)))
	}
}

func TestClone(t *testing.T) {
	b := NewBoard(3)
	b.Play(Coord{Row: 0, Col: 0}, graph.Blue)

	c := b.Clone()
	c.Play(Coord{Row: 0, Col: 1}, graph.Blue)

	require.Equal(t, graph.None, b.Color(Coord{Row: 0, Col: 1}))
	require.Equal(t, graph.None, b.Graph().EdgeColor(0, 1))
	require.Equal(t, 8, b.EmptyCount())
	require.Equal(t, 7, c.EmptyCount())
}

func TestEmptyCells(t *testing.T) {
	b := NewBoard(2)
	b.Play(Coord{Row: 0, Col: 1}, graph.Red)

	want := []Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	if diff := cmp.Diff(want, b.EmptyCells()); diff != "" {
		t.Errorf("EmptyCells(): mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate(t *testing.T) {
	b := NewBoard(2)
	require.Equal(t, 0.0, Evaluate(b, graph.Blue))

	b.Play(Coord{Row: 0, Col: 0}, graph.Blue)
	b.Play(Coord{Row: 0, Col: 1}, graph.Blue)
	require.Equal(t, WinScore, Evaluate(b, graph.Blue))
	require.Equal(t, -WinScore, Evaluate(b, graph.Red))
}
