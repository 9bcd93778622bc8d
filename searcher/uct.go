package searcher

import (
	"hex/game"
	"hex/graph"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// treeSearch runs UCT episodes from b in parallel, using virtual loss to keep
// goroutines apart, and returns the most visited root move.
func (s *Searcher) treeSearch(b *game.Board, color graph.Color) (float64, game.Coord) {
	root := newNode(nil, b, color.Opponent())
	if len(root.moves) == 0 {
		return game.Evaluate(b, color), game.Coord{}
	}

	if s.iterations > 0 {
		s.iterate(root, b)
	} else {
		s.countdown(root, b)
	}

	move, score := root.bestMove()
	return score, move
}

func (s *Searcher) iterate(root *node, b *game.Board) {
	task := make(chan any, s.iterations)
	for i := 0; i < s.iterations; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		rng := rand.New(rand.NewSource(s.rng.Uint64()))
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				s.episode(root, b, rng)
			}
		}()
	}

	wg.Wait()
}

func (s *Searcher) countdown(root *node, b *game.Board) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		rng := rand.New(rand.NewSource(s.rng.Uint64()))
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					s.episode(root, b, rng)
				}
			}
		}()
	}

	<-time.After(s.duration)
	close(done)
	wg.Wait()
}

func (s *Searcher) episode(root *node, b *game.Board, rng *rand.Rand) {
	leaf, position := selectThenExpand(root, b)
	if leaf != root {
		s.metrics.AddNode()
	}

	winner := position.Winner()
	if winner == graph.None {
		// The playout is scored for the side that moved into the leaf, which
		// leaves the other side to move first.
		if playout(position, leaf.player, leaf.player.Opponent(), rng) == WIN {
			winner = leaf.player
		} else {
			winner = leaf.player.Opponent()
		}
		s.metrics.AddRollout()
	}

	backup(leaf, winner)
}

func selectThenExpand(root *node, b *game.Board) (*node, *game.Board) {
	child, b, selected := root.SelectOrExpand(b)
	for selected {
		child, b, selected = child.SelectOrExpand(b)
	}
	return child, b
}

func backup(leaf *node, winner graph.Color) {
	n := leaf
	for n != nil {
		n = n.Backup(winner)
	}
}
