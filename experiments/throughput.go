package experiments

import (
	"hex/experiments/metrics"
	"hex/player"
	"io"
	"time"
)

// RunThroughputExperiment measures how many rollouts parallel UCT completes
// under a fixed per-move duration as the goroutine count grows.
func RunThroughputExperiment(outDir string, size, games int, progress io.Writer) (Summary, error) {
	const Duration = 10 * time.Millisecond
	configs := []metrics.AgentConfig{}
	for i, goroutines := range []int{1, 2, 4, 8, 16} {
		configs = append(configs, metrics.AgentConfig{
			ID:         i + 1,
			Kind:       player.UCT.String(),
			Goroutines: goroutines,
			Duration:   Duration,
		})
	}
	// Same config for both players in each game
	// for the same playing strength and similar game length
	matchUps := [][2]int{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]int{config.ID, config.ID})
	}

	return Run(Setup{
		Name:     "throughput",
		Size:     size,
		Games:    games,
		Configs:  configs,
		MatchUps: matchUps,
		OutDir:   outDir,
		Progress: progress,
	})
}
