// Package player selects a move for one side of a game. A Player is a closed
// set of strategies chosen when it is built: a human at a terminal, uniform
// random play, or one of the searcher strategies.
package player

import (
	"bufio"
	"errors"
	"fmt"
	"hex/experiments/metrics"
	"hex/game"
	"hex/graph"
	"hex/meta"
	"hex/searcher"
	"hex/utils"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/rand"
)

var (
	ErrUnknownKind = errors.New("player: unknown strategy kind")
	ErrNoMoves     = errors.New("player: no empty cell left")
)

type Kind int

const (
	Human Kind = iota
	Random
	Minimax
	AlphaBeta
	MonteCarlo
	Hybrid
	UCT
)

var kindNames = []string{"human", "random", "minimax", "alphabeta", "montecarlo", "hybrid", "uct"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns the name of every strategy kind.
func Kinds() []string {
	return append([]string(nil), kindNames...)
}

// ParseKind accepts the names returned by Kinds, case-insensitively.
func ParseKind(s string) (Kind, error) {
	i := utils.FindIndex(kindNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return Kind(i), nil
}

func (k Kind) strategy() (searcher.Strategy, bool) {
	switch k {
	case Minimax:
		return searcher.Minimax, true
	case AlphaBeta:
		return searcher.AlphaBeta, true
	case MonteCarlo:
		return searcher.MonteCarlo, true
	case Hybrid:
		return searcher.Hybrid, true
	case UCT:
		return searcher.TreeSearch, true
	default:
		return 0, false
	}
}

// Config selects and tunes a strategy. Search fields left at zero fall back
// to the defaults in package meta. In and Out default to stdin and stdout.
type Config struct {
	Kind        Kind
	Depth       int
	Simulations int
	Iterations  int
	Goroutines  int
	Duration    time.Duration
	Seed        uint64
	Metrics     bool
	In          io.Reader
	Out         io.Writer
}

type Player struct {
	kind   Kind
	search *searcher.Searcher
	rng    *rand.Rand
	in     *bufio.Scanner
	out    io.Writer
}

func New(config Config) (*Player, error) {
	p := &Player{kind: config.Kind}

	switch config.Kind {
	case Human:
		in, out := config.In, config.Out
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		p.in = bufio.NewScanner(in)
		p.out = out
	case Random:
		seed := config.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		p.rng = rand.New(rand.NewSource(seed))
	default:
		strategy, ok := config.Kind.strategy()
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownKind, config.Kind)
		}
		p.search = searcher.New(strategy, searchOptions(config)...)
	}

	return p, nil
}

func searchOptions(config Config) []searcher.Option {
	switch config.Kind {
	case MonteCarlo, Hybrid:
		if config.Simulations <= 0 {
			config.Simulations = meta.DefaultSimulations
		}
	case UCT:
		if config.Iterations <= 0 && config.Duration <= 0 {
			config.Iterations = meta.DefaultIterations
		}
	}

	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithSimulations(config.Simulations),
		searcher.WithIterations(config.Iterations),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithDuration(config.Duration),
		searcher.WithSeed(config.Seed),
	}
	if config.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	return options
}

func (p *Player) Kind() Kind {
	return p.kind
}

// ChooseMove returns the cell p plays for color on b. b is not modified.
func (p *Player) ChooseMove(b *game.Board, color graph.Color) (game.Coord, metrics.SearchMetric, error) {
	if b.EmptyCount() == 0 {
		return game.Coord{}, metrics.SearchMetric{}, ErrNoMoves
	}

	switch p.kind {
	case Human:
		return p.ask(b, color)
	case Random:
		start := time.Now()
		cells := b.EmptyCells()
		move := cells[p.rng.Intn(len(cells))]
		return move, metrics.SearchMetric{Strategy: p.kind.String(), Duration: time.Since(start)}, nil
	default:
		result := p.search.Search(b, color)
		return result.Move, result.Metric, nil
	}
}

func (p *Player) ask(b *game.Board, color graph.Color) (game.Coord, metrics.SearchMetric, error) {
	start := time.Now()
	for {
		fmt.Fprintf(p.out, "%s to move (e.g. 3B): ", color)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return game.Coord{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Coord{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", io.EOF)
		}

		move, ok := game.ParseCoord(p.in.Text(), b.Size())
		if !ok {
			fmt.Fprintln(p.out, "No such hex on the board! Try again.")
			continue
		}
		if b.Color(move) != graph.None {
			fmt.Fprintln(p.out, "This hex is already occupied. Try again.")
			continue
		}
		return move, metrics.SearchMetric{Strategy: p.kind.String(), Duration: time.Since(start)}, nil
	}
}

func (p *Player) String() string {
	return p.kind.String()
}
