package metrics

import "time"

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID          int           `json:"id"`
	Kind        string        `json:"kind"`
	Depth       int           `json:"depth,omitempty"`
	Simulations int           `json:"simulations,omitempty"`
	Iterations  int           `json:"iterations,omitempty"`
	Goroutines  int           `json:"goroutines,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
	Seed        uint64        `json:"seed,omitempty"`
}
