package searcher

import (
	"hex/experiments/metrics"
	"hex/game"
	"hex/graph"
	"hex/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// Searcher picks moves with one strategy. A Searcher owns its random source
// and must not be used by several goroutines at once.
type Searcher struct {
	strategy    Strategy
	depth       int
	simulations int
	iterations  int
	goroutines  int
	duration    time.Duration
	seed        uint64
	rng         *rand.Rand
	metrics     metrics.Collector
}

// WithDepth sets the search horizon of the minimax family.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithSimulations sets the number of random playouts averaged at each
// rollout leaf.
func WithSimulations(simulations int) Option {
	return func(s *Searcher) {
		if simulations > 0 {
			s.simulations = simulations
		}
	}
}

// WithIterations sets the number of tree search episodes.
func WithIterations(iterations int) Option {
	return func(s *Searcher) {
		if iterations > 0 {
			s.iterations = iterations
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithDuration bounds the wall-clock time of one search. The minimax family
// stops exploring new root moves once it runs out and returns the best move
// found so far; the tree search runs episodes until it runs out.
func WithDuration(duration time.Duration) Option {
	return func(s *Searcher) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		if seed > 0 {
			s.seed = seed
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(strategy Strategy, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		strategy:   strategy,
		depth:      meta.DefaultDepth,
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}

	switch strategy {
	case MonteCarlo, Hybrid:
		if s.simulations <= 0 {
			panic("Must specify rollout simulations")
		}
	case TreeSearch:
		if s.iterations <= 0 && s.duration <= 0 {
			panic("Must specify search iterations or duration")
		}
	}

	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	return s
}

func (s *Searcher) Strategy() Strategy {
	return s.strategy
}

// Search returns the move color should play on b together with its score from
// color's point of view. On a finished board the move is the zero Coord.
func (s *Searcher) Search(b *game.Board, color graph.Color) Result {
	depth := min(s.depth, b.EmptyCount(), meta.MaxDepth)
	s.metrics.Start(s.strategy.String(), depth, s.simulations, s.goroutines)

	var score float64
	var move game.Coord
	if s.strategy == TreeSearch {
		score, move = s.treeSearch(b, color)
	} else {
		score, move = s.newRun(b, color, depth).root(b)
	}

	metric := s.metrics.Complete()
	metric.Score = score
	log.Trace().Msgf("%s search for %s: move=%s score=%.3f nodes=%d cutoffs=%d rollouts=%d duration=%s",
		s.strategy, color, move, score, metric.Nodes, metric.Cutoffs, metric.Rollouts, metric.Duration)

	return Result{Move: move, Score: score, Metric: metric}
}
