package searcher

import (
	"hex/game"
	"hex/graph"
	"hex/utils"
	"sync"

	"golang.org/x/exp/rand"
)

// estimate averages the outcome of r.simulations random playouts from b,
// toMove playing first. The playouts are spread over r.goroutines goroutines,
// each drawing from its own random source seeded by the search.
func (r *run) estimate(b *game.Board, toMove graph.Color) float64 {
	workers := min(r.goroutines, r.simulations)
	task := make(chan any, r.simulations)
	for i := 0; i < r.simulations; i++ {
		task <- nil
	}
	close(task)

	sums := make([]float64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		rng := rand.New(rand.NewSource(r.rng.Uint64()))
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			for range task {
				sums[i] += playout(b, r.color, toMove, rng)
				r.metrics.AddRollout()
			}
		}(i)
	}

	wg.Wait()
	return utils.Sum(sums) / float64(r.simulations)
}

// playout fills every empty cell of a copy of b in random order, alternating
// colors from toMove, and scores the finished board for player. A Hex winner
// never changes once it exists, so checking only the full board yields the
// same outcome as checking after every move. b is only read.
func playout(b *game.Board, player, toMove graph.Color, rng *rand.Rand) float64 {
	if winner := b.Winner(); winner != graph.None {
		return reward(winner, player)
	}

	cells := b.EmptyCells()
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	sim := b.Clone()
	color := toMove
	for _, c := range cells {
		sim.Play(c, color)
		color = color.Opponent()
	}
	return reward(sim.Winner(), player)
}
