package graph

import "golang.org/x/exp/rand"

// NewRandom returns an undirected graph of n vertices. Every vertex gets a
// zero-weight self-loop, and every unordered pair is connected with
// probability density by a mirrored pair of edges whose weight is drawn
// uniformly from [minWeight, maxWeight).
func NewRandom(n int, density, minWeight, maxWeight float64, rng *rand.Rand) *Graph {
	g := New(n)
	for i := 0; i < n; i++ {
		g.AddEdge(i, i, 0, None)
		for j := i + 1; j < n; j++ {
			if rng.Float64() < density {
				w := minWeight + rng.Float64()*(maxWeight-minWeight)
				g.AddUndirected(i, j, w, None)
			}
		}
	}
	return g
}
