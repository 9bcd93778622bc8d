// Package engine runs a local game of Hex between two agents.
package engine

import (
	"errors"
	"fmt"
	"hex/experiments/metrics"
	"hex/game"
	"hex/graph"
	"hex/meta"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrIllegalMove = errors.New("engine: illegal move")
	ErrGameOver    = errors.New("engine: game is over")
)

// Agent chooses moves for one side. It must not modify the board.
type Agent interface {
	ChooseMove(b *game.Board, color graph.Color) (game.Coord, metrics.SearchMetric, error)
}

type Option func(e *Engine)

// WithOutput renders the board to w before the first move and after every
// move.
func WithOutput(w io.Writer, colored bool) Option {
	return func(e *Engine) {
		e.out = w
		e.colored = colored
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

type Engine struct {
	ID       string
	board    *game.Board
	agents   [2]Agent // Blue, Red
	turn     graph.Color
	step     int
	maxTurns int
	out      io.Writer
	colored  bool
	moves    []metrics.MoveMetric
}

// New sets up a game on an empty size x size board. Blue moves first.
func New(size int, blue, red Agent, options ...Option) *Engine {
	e := &Engine{
		ID:       uuid.New().String(),
		board:    game.NewBoard(size),
		agents:   [2]Agent{blue, red},
		turn:     graph.Blue,
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Board returns the current position. Callers must not modify it.
func (e *Engine) Board() *game.Board {
	return e.board
}

// Turn returns the color to move.
func (e *Engine) Turn() graph.Color {
	return e.turn
}

// Play applies move for the side to move and passes the turn.
func (e *Engine) Play(move game.Coord) error {
	if e.board.Over() {
		return ErrGameOver
	}
	if !e.board.Play(move, e.turn) {
		return fmt.Errorf("%w: %s cannot play %s", ErrIllegalMove, e.turn, move)
	}
	e.step++
	e.turn = e.turn.Opponent()
	return nil
}

func (e *Engine) agent(color graph.Color) Agent {
	if color == graph.Blue {
		return e.agents[0]
	}
	return e.agents[1]
}

// Run plays until a side wins or the turn limit is reached, and returns the
// winner (graph.None if the limit was hit) with the game and move metrics.
func (e *Engine) Run() (graph.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        e.ID,
		Size:      e.board.Size(),
		Blue:      name(e.agents[0]),
		Red:       name(e.agents[1]),
		StartTime: time.Now(),
	}
	log.Info().Msgf("game %s: %s (blue) vs %s (red) on %dx%d", e.ID, gameMetric.Blue, gameMetric.Red, e.board.Size(), e.board.Size())

	if err := e.render(); err != nil {
		return graph.None, gameMetric, e.moves, err
	}

	for !e.board.Over() && e.step < e.maxTurns {
		color := e.turn
		move, searchMetric, err := e.agent(color).ChooseMove(e.board, color)
		if err != nil {
			return graph.None, gameMetric, e.moves, fmt.Errorf("%s failed to choose a move: %w", color, err)
		}
		if err := e.Play(move); err != nil {
			return graph.None, gameMetric, e.moves, err
		}

		e.moves = append(e.moves, metrics.MoveMetric{
			Step:         e.step,
			Player:       color.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("game %s move %d: %s plays %s", e.ID, e.step, color, move)

		if err := e.render(); err != nil {
			return graph.None, gameMetric, e.moves, err
		}
	}

	winner := e.board.Winner()
	if winner == graph.None {
		log.Warn().Msgf("game %s stopped after %d moves without a winner", e.ID, e.step)
	} else {
		log.Info().Msgf("game %s won by %s after %d moves", e.ID, winner, e.step)
	}

	gameMetric.Winner = winner.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.step
	return winner, gameMetric, e.moves, nil
}

func (e *Engine) render() error {
	if e.out == nil {
		return nil
	}
	if err := e.board.Render(e.out, e.colored); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	return nil
}

func name(a Agent) string {
	if s, ok := a.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", a)
}
