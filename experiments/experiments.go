// Package experiments plays tournaments between strategy configurations and
// stores the results as CSV and JSON records.
package experiments

import (
	"fmt"
	"hex/engine"
	"hex/experiments/metrics"
	"hex/graph"
	"hex/meta"
	"hex/player"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/rhartert/yagh"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

type Setup struct {
	Name     string                `json:"name"`
	Size     int                   `json:"size"`
	Games    int                   `json:"games"` // Per match up
	Configs  []metrics.AgentConfig `json:"configs"`
	MatchUps [][2]int              `json:"match_ups"` // Pairs of AgentConfig.ID
	OutDir   string                `json:"-"`
	Progress io.Writer             `json:"-"` // Progress bar output, none if nil
}

type Summary struct {
	Name  string      `json:"name"`
	Games int         `json:"games"`
	Wins  map[int]int `json:"wins"` // By AgentConfig.ID
	Dir   string      `json:"-"`
}

// Run plays setup.Games games for every match up, swapping colors after each
// game so both agents play Blue (who moves first) equally often, then writes
// agent_configs.csv, game_records.csv, move_records.csv, setup.json and
// summary.json into a fresh directory under setup.OutDir.
func Run(setup Setup) (Summary, error) {
	configs := make(map[int]metrics.AgentConfig, len(setup.Configs))
	for _, config := range setup.Configs {
		if config.ID < 0 {
			return Summary{}, fmt.Errorf("agent config ID must be non-negative, got %d", config.ID)
		}
		configs[config.ID] = config
	}
	for _, matchUp := range setup.MatchUps {
		for _, id := range matchUp {
			if _, ok := configs[id]; !ok {
				return Summary{}, fmt.Errorf("match up references unknown agent config %d", id)
			}
		}
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summary := Summary{Name: setup.Name, Wins: make(map[int]int)}
	for _, matchUp := range setup.MatchUps {
		for _, id := range matchUp {
			summary.Wins[id] = 0
		}
	}

	bar := newBar(setup.Progress, setup.Name, len(setup.MatchUps)*setup.Games)
	log.Info().Msgf("starting %s experiment...", setup.Name)

	for mi, matchUp := range setup.MatchUps {
		config1, config2 := configs[matchUp[0]], configs[matchUp[1]]
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(setup.MatchUps), config1, config2)

		for i := 0; i < setup.Games; i++ {
			blue, red := config1, config2
			if i%2 == 1 {
				blue, red = config2, config1
			}

			winner, gameMetric, moveMetrics, err := runGame(setup.Size, blue, red)
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     blue.ID,
				Agent2:     red.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			switch winner {
			case graph.Blue:
				summary.Wins[blue.ID]++
			case graph.Red:
				summary.Wins[red.ID]++
			}
			summary.Games++
			bar.Add(1)

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(setup.MatchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(setup.MatchUps))
	}
	bar.Finish()
	bar.Close()

	log.Info().Msgf("completed %s experiment", setup.Name)
	logStandings(summary)

	dir, err := store(setup, summary, gameRecords, moveRecords)
	summary.Dir = dir
	return summary, err
}

func store(setup Setup, summary Summary, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(setup.OutDir, setup.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(setup)
	if err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	err = writer.WriteAgentConfigs(setup.Configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	err = writer.WriteSummary(summary)
	if err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}
	return writer.Dir(), nil
}

// Ranking returns the config IDs by decreasing number of wins, lower IDs
// first on ties.
func (s Summary) Ranking() []int {
	n := 0
	for id := range s.Wins {
		n = max(n, id+1)
	}

	h := yagh.New[int](n)
	for id, wins := range s.Wins {
		h.Put(id, -wins*n+id)
	}
	ranking := make([]int, 0, len(s.Wins))
	for h.Size() > 0 {
		ranking = append(ranking, h.Pop().Elem)
	}
	return ranking
}

func logStandings(summary Summary) {
	for i, id := range summary.Ranking() {
		log.Info().Msgf("#%d: agent %d won %d of %d games", i+1, id, summary.Wins[id], summary.Games)
	}
}

// runGame executes a single game between two agents and returns the winner
func runGame(size int, blue, red metrics.AgentConfig) (graph.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	bluePlayer, err := createPlayer(blue)
	if err != nil {
		return graph.None, metrics.GameMetric{}, nil, err
	}
	redPlayer, err := createPlayer(red)
	if err != nil {
		return graph.None, metrics.GameMetric{}, nil, err
	}

	e := engine.New(size, bluePlayer, redPlayer)
	return e.Run()
}

func createPlayer(config metrics.AgentConfig) (*player.Player, error) {
	kind, err := player.ParseKind(config.Kind)
	if err != nil {
		return nil, err
	}
	if kind == player.Human {
		return nil, fmt.Errorf("agent config %d: human players cannot take part in experiments", config.ID)
	}

	return player.New(player.Config{
		Kind:        kind,
		Depth:       config.Depth,
		Simulations: config.Simulations,
		Iterations:  config.Iterations,
		Goroutines:  config.Goroutines,
		Duration:    config.Duration,
		Seed:        config.Seed,
		Metrics:     true,
	})
}

func newBar(w io.Writer, description string, total int) *progressbar.ProgressBar {
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// RoundRobin returns every unordered pair of config IDs.
func RoundRobin(configs []metrics.AgentConfig) [][2]int {
	matchUps := [][2]int{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, [2]int{configs[i].ID, configs[j].ID})
		}
	}
	return matchUps
}

// Against pairs the baseline with every other config.
func Against(baseline metrics.AgentConfig, configs []metrics.AgentConfig) [][2]int {
	matchUps := [][2]int{}
	for _, config := range configs {
		if config.ID != baseline.ID {
			matchUps = append(matchUps, [2]int{baseline.ID, config.ID})
		}
	}
	return matchUps
}

// RunStrategyExperiment plays every strategy against every other one under
// the same per-move time budget.
func RunStrategyExperiment(outDir string, size, games int, progress io.Writer) (Summary, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: player.Random.String()},
		{ID: 2, Kind: player.AlphaBeta.String(), Depth: meta.DefaultDepth, Duration: meta.TimeBudget},
		{ID: 3, Kind: player.MonteCarlo.String(), Depth: 1, Simulations: meta.DefaultSimulations, Goroutines: meta.DefaultGoroutines, Duration: meta.TimeBudget},
		{ID: 4, Kind: player.Hybrid.String(), Depth: 2, Simulations: meta.DefaultSimulations, Goroutines: meta.DefaultGoroutines, Duration: meta.TimeBudget},
		{ID: 5, Kind: player.UCT.String(), Goroutines: meta.DefaultGoroutines, Duration: meta.TimeBudget},
	}

	return Run(Setup{
		Name:     "strategies",
		Size:     size,
		Games:    games,
		Configs:  configs,
		MatchUps: RoundRobin(configs),
		OutDir:   outDir,
		Progress: progress,
	})
}

// RunDepthExperiment pairs a depth-1 alpha-beta agent against deeper ones.
func RunDepthExperiment(outDir string, size, games int, progress io.Writer) (Summary, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: player.AlphaBeta.String(), Depth: 1}
	configs := []metrics.AgentConfig{baseline}
	for depth := 2; depth <= 4; depth++ {
		configs = append(configs, metrics.AgentConfig{ID: depth - 1, Kind: player.AlphaBeta.String(), Depth: depth, Duration: meta.TimeBudget})
	}

	return Run(Setup{
		Name:     "depth",
		Size:     size,
		Games:    games,
		Configs:  configs,
		MatchUps: Against(baseline, configs),
		OutDir:   outDir,
		Progress: progress,
	})
}
