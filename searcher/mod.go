// Package searcher chooses Hex moves by adversarial search: plain minimax,
// alpha-beta pruned minimax, Monte-Carlo rollouts at the minimax horizon, a
// Monte-Carlo/alpha-beta hybrid, and a parallel UCT tree search.
package searcher

import (
	"hex/experiments/metrics"
	"hex/game"
	"hex/graph"
	"math"
)

type Strategy int

const (
	Minimax Strategy = iota
	AlphaBeta
	MonteCarlo
	Hybrid
	TreeSearch
)

func (s Strategy) String() string {
	switch s {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	case MonteCarlo:
		return "montecarlo"
	case Hybrid:
		return "hybrid"
	case TreeSearch:
		return "uct"
	default:
		return "unknown"
	}
}

// Playout rewards, from the point of view of the searching player.
const (
	WIN  = 1.0
	LOSS = -WIN
	DRAW = 0.0
)

// Hyperparameters for UCT
const CSquared = 2.0 // Exploration constant

type Result struct {
	Move   game.Coord
	Score  float64
	Metric metrics.SearchMetric
}

// Successor is a position reached by one move.
type Successor struct {
	Board *game.Board
	Move  game.Coord
}

// Successors returns, for every empty cell in row-major order, a copy of b
// with that cell claimed by color.
func Successors(b *game.Board, color graph.Color) []Successor {
	cells := b.EmptyCells()
	out := make([]Successor, len(cells))
	for i, c := range cells {
		out[i] = Successor{Board: successor(b, c, color), Move: c}
	}
	return out
}

func successor(b *game.Board, c game.Coord, color graph.Color) *game.Board {
	next := b.Clone()
	next.Play(c, color)
	return next
}

// reward scores a finished playout for player.
func reward(winner, player graph.Color) float64 {
	switch winner {
	case graph.None:
		return DRAW
	case player:
		return WIN
	default:
		return LOSS
	}
}

func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}
