package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy    string
	Depth       int
	Simulations int
	Goroutines  int
	Duration    time.Duration
	Nodes       int
	Cutoffs     int
	Rollouts    int
	Score       float64
}

type MoveMetric struct {
	Step   int
	Player string // Color name
	Move   string // Board notation
	SearchMetric
}

type GameMetric struct {
	ID         string
	Size       int
	Blue       string // Strategy kind
	Red        string // Strategy kind
	Winner     string // Color name
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(strategy string, depth, simulations, goroutines int)
	AddNode()
	AddCutoff()
	AddRollout()
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	depth       int
	simulations int
	goroutines  int
	startTime   time.Time
	nodes       atomic.Int64
	cutoffs     atomic.Int64
	rollouts    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters, so one collector can be reused across searches.
func (m *collector) Start(strategy string, depth, simulations, goroutines int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.depth = depth
	m.simulations = simulations
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.rollouts.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Depth:       m.depth,
		Simulations: m.simulations,
		Goroutines:  m.goroutines,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		Rollouts:    int(m.rollouts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth, simulations, goroutines int) {}
func (m *dummyCollector) AddNode()                                                  {}
func (m *dummyCollector) AddCutoff()                                                {}
func (m *dummyCollector) AddRollout()                                               {}
func (m *dummyCollector) Complete() SearchMetric                                    { return SearchMetric{} }
