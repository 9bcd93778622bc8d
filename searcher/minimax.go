package searcher

import (
	"hex/game"
	"hex/graph"
	"math"
	"time"
)

// run holds the state of one minimax-family search.
type run struct {
	*Searcher
	color    graph.Color // Searching player, the Max side
	top      int
	deadline time.Time
	leaf     func(b *game.Board, toMove graph.Color) float64
}

func (s *Searcher) newRun(b *game.Board, color graph.Color, depth int) *run {
	r := &run{Searcher: s, color: color, top: depth}
	if s.duration > 0 {
		r.deadline = time.Now().Add(s.duration)
	}
	switch s.strategy {
	case MonteCarlo, Hybrid:
		r.leaf = r.estimate
	default:
		r.leaf = r.evaluate
	}
	return r
}

func (r *run) root(b *game.Board) (float64, game.Coord) {
	switch r.strategy {
	case AlphaBeta, Hybrid:
		return r.maxAB(b, r.top, math.Inf(-1), math.Inf(1))
	default:
		return r.max(b, r.top)
	}
}

func (r *run) evaluate(b *game.Board, _ graph.Color) float64 {
	return game.Evaluate(b, r.color)
}

// expired reports whether the root should stop before trying its ith move.
// The first root move is always searched so there is a move to return.
func (r *run) expired(level, i int) bool {
	return level == r.top && i > 0 && !r.deadline.IsZero() && time.Now().After(r.deadline)
}

// terminal reports whether the recursion bottoms out at b. A position with a
// winner keeps that winner whatever is played next, so it is scored as is.
func terminal(b *game.Board, level int) bool {
	return level == 0 || b.Over()
}

func (r *run) max(b *game.Board, level int) (float64, game.Coord) {
	r.metrics.AddNode()
	if terminal(b, level) {
		return r.leaf(b, r.color), game.Coord{}
	}

	best, move := math.Inf(-1), game.Coord{}
	for i, c := range b.EmptyCells() {
		if r.expired(level, i) {
			break
		}
		score, _ := r.min(successor(b, c, r.color), level-1)
		if score > best {
			best, move = score, c
		}
	}
	return best, move
}

func (r *run) min(b *game.Board, level int) (float64, game.Coord) {
	r.metrics.AddNode()
	opponent := r.color.Opponent()
	if terminal(b, level) {
		return r.leaf(b, opponent), game.Coord{}
	}

	best, move := math.Inf(1), game.Coord{}
	for _, c := range b.EmptyCells() {
		score, _ := r.max(successor(b, c, opponent), level-1)
		if score < best {
			best, move = score, c
		}
	}
	return best, move
}

// maxAB is fail-hard: the returned score is clamped to [alpha, beta].
func (r *run) maxAB(b *game.Board, level int, alpha, beta float64) (float64, game.Coord) {
	r.metrics.AddNode()
	if terminal(b, level) {
		return r.leaf(b, r.color), game.Coord{}
	}

	best, move := alpha, game.Coord{}
	for i, c := range b.EmptyCells() {
		if r.expired(level, i) {
			break
		}
		score, _ := r.minAB(successor(b, c, r.color), level-1, best, beta)
		if score > best {
			best, move = score, c
		}
		if best >= beta {
			r.metrics.AddCutoff()
			return best, move
		}
	}
	return best, move
}

func (r *run) minAB(b *game.Board, level int, alpha, beta float64) (float64, game.Coord) {
	r.metrics.AddNode()
	opponent := r.color.Opponent()
	if terminal(b, level) {
		return r.leaf(b, opponent), game.Coord{}
	}

	best, move := beta, game.Coord{}
	for _, c := range b.EmptyCells() {
		score, _ := r.maxAB(successor(b, c, opponent), level-1, alpha, best)
		if score < best {
			best, move = score, c
		}
		if best <= alpha {
			r.metrics.AddCutoff()
			return best, move
		}
	}
	return best, move
}
