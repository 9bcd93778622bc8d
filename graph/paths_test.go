package graph

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// newLineGraph returns 0 -> 1 -> 2 with a costly shortcut 0 -> 2 and an
// isolated vertex 3.
func newLineGraph() *Graph {
	g := New(4)
	g.AddEdge(0, 1, 1, None)
	g.AddEdge(1, 2, 1, None)
	g.AddEdge(0, 2, 5, None)
	return g
}

func TestShortestLength(t *testing.T) {
	testCases := []struct {
		desc string
		u, v int
		want float64
	}{
		{desc: "two hops beat the shortcut", u: 0, v: 2, want: 2},
		{desc: "direct neighbor", u: 0, v: 1, want: 1},
		{desc: "source is target", u: 1, v: 1, want: 0},
		{desc: "edges are directed", u: 2, v: 0, want: NoPath},
		{desc: "isolated target", u: 0, v: 3, want: NoPath},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.want, ShortestLength(newLineGraph(), tc.u, tc.v))
		})
	}
}

func TestShortestLengthSelfLoops(t *testing.T) {
	g := New(3)
	for v := 0; v < 3; v++ {
		g.AddEdge(v, v, 0, None)
	}
	g.AddUndirected(0, 1, 2, None)
	g.AddUndirected(1, 2, 2, None)

	require.Equal(t, 4.0, ShortestLength(g, 0, 2))
	require.Equal(t, 4.0, ShortestLength(g, 2, 0))
}

func TestAverageShortestPath(t *testing.T) {
	g := newLineGraph()

	require.Equal(t, 1.5, AverageShortestPath(g, 0))
	require.Equal(t, 1.0, AverageShortestPath(g, 1))
	require.Equal(t, NoPath, AverageShortestPath(g, 2), "no vertex is reachable from 2")
	require.Equal(t, NoPath, AverageShortestPath(g, 3))
}

func TestShortestPath(t *testing.T) {
	testCases := []struct {
		desc       string
		u, v       int
		want       []int
		wantWeight float64
	}{
		{desc: "reconstructs the cheapest route", u: 0, v: 2, want: []int{0, 1, 2}, wantWeight: 2},
		{desc: "source is target", u: 2, v: 2, want: []int{2}},
		{desc: "unreachable target yields the trivial path", u: 0, v: 3, want: []int{0}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := ShortestPath(newLineGraph(), tc.u, tc.v)

			if diff := cmp.Diff(tc.want, got.Vertices()); diff != "" {
				t.Errorf("ShortestPath(%d, %d): mismatch (-want +got):\n%s", tc.u, tc.v, diff)
			}
			require.Equal(t, tc.wantWeight, got.Weight())
		})
	}
}

func TestPath(t *testing.T) {
	p := NewPath(0)
	q := p.Extend(Edge{From: 0, To: 4, Weight: 2})
	r := q.Extend(Edge{From: 4, To: 1, Weight: 3})

	require.Equal(t, []int{0}, p.Vertices(), "Extend should not modify the receiver")
	require.Equal(t, 3, r.Len())
	require.Equal(t, 1, r.Final())
	require.Equal(t, 5.0, r.Weight())
	require.True(t, r.SameFinal(NewPath(7).Extend(Edge{From: 7, To: 1})))
	require.False(t, r.SameFinal(q))
}

// newDecreaseKeyGraph lowers a tentative distance after a pop: from 0, vertex
// 2 is queued at 3.08 and drops to 0.84+1.89 once 3 is popped.
func newDecreaseKeyGraph() *Graph {
	g := New(4)
	g.AddUndirected(0, 2, 3.08, None)
	g.AddUndirected(0, 3, 0.84, None)
	g.AddUndirected(1, 2, 2.88, None)
	g.AddUndirected(1, 3, 4.55, None)
	g.AddUndirected(2, 3, 1.89, None)
	return g
}

func TestShortestLengthDecreaseKey(t *testing.T) {
	g := newDecreaseKeyGraph()

	require.InDelta(t, 5.39, ShortestLength(g, 0, 1), 1e-9)
	require.InDelta(t, 2.73, ShortestLength(g, 0, 2), 1e-9)
	require.InDelta(t, 0.84, ShortestLength(g, 0, 3), 1e-9)
	require.InDelta(t, (5.39+2.73+0.84)/3, AverageShortestPath(g, 0), 1e-9)

	path := ShortestPath(g, 0, 1)
	require.Equal(t, []int{0, 3, 1}, path.Vertices())
	require.InDelta(t, 5.39, path.Weight(), 1e-9)
}

// floydWarshall returns all-pairs shortest distances, +Inf when unreachable.
func floydWarshall(g *Graph) [][]float64 {
	n := g.Len()
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Inf(1)
		}
		dist[i][i] = 0
		for _, e := range g.Edges(i) {
			dist[i][e.To] = min(dist[i][e.To], e.Weight)
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				dist[i][j] = min(dist[i][j], dist[i][k]+dist[k][j])
			}
		}
	}
	return dist
}

func TestShortestPathsMatchFloydWarshall(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		n := 2 + rng.Intn(9)
		g := NewRandom(n, 0.2+rng.Float64()*0.6, 0.1, 10, rng)
		want := floydWarshall(g)

		for u := 0; u < n; u++ {
			var reachable []float64
			for v := 0; v < n; v++ {
				got := ShortestLength(g, u, v)
				if math.IsInf(want[u][v], 1) {
					require.Equal(t, NoPath, got, "graph %d: %d -> %d", i, u, v)
					require.Equal(t, []int{u}, ShortestPath(g, u, v).Vertices())
					continue
				}
				require.InDelta(t, want[u][v], got, 1e-9, "graph %d: %d -> %d", i, u, v)
				require.InDelta(t, want[u][v], ShortestPath(g, u, v).Weight(), 1e-9, "graph %d: %d -> %d", i, u, v)
				if v != u {
					reachable = append(reachable, want[u][v])
				}
			}

			if len(reachable) == 0 {
				require.Equal(t, NoPath, AverageShortestPath(g, u))
				continue
			}
			mean := 0.0
			for _, d := range reachable {
				mean += d
			}
			mean /= float64(len(reachable))
			require.InDelta(t, mean, AverageShortestPath(g, u), 1e-9, "graph %d: average from %d", i, u)
		}
	}
}
