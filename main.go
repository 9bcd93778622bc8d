package main

import (
	"flag"
	"fmt"
	"hex/engine"
	"hex/experiments"
	"hex/meta"
	"hex/player"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var flagSize = flag.Int(
	"size",
	meta.DefaultSize,
	"Side length of the board",
)

var flagBlue = flag.String(
	"blue",
	player.Human.String(),
	"Strategy of the first player: "+strings.Join(player.Kinds(), "|"),
)

var flagRed = flag.String(
	"red",
	player.AlphaBeta.String(),
	"Strategy of the second player: "+strings.Join(player.Kinds(), "|"),
)

var flagDepth = flag.Int(
	"depth",
	meta.DefaultDepth,
	"Search depth of minimax, alphabeta, montecarlo and hybrid players",
)

var flagSimulations = flag.Int(
	"simulations",
	meta.DefaultSimulations,
	"Random playouts per leaf of montecarlo and hybrid players",
)

var flagIterations = flag.Int(
	"iterations",
	meta.DefaultIterations,
	"Episodes per move of uct players",
)

var flagGoroutines = flag.Int(
	"goroutines",
	meta.DefaultGoroutines,
	"Goroutines sharing the rollouts of one search",
)

var flagDuration = flag.Duration(
	"duration",
	0,
	"Wall-clock budget per move, 0 for none",
)

var flagSeed = flag.Uint64(
	"seed",
	0,
	"Seed of the random number generators, 0 for a time-based seed",
)

var flagExperiment = flag.String(
	"experiment",
	"",
	"Run a tournament instead of a game: strategies|depth|throughput",
)

var flagGames = flag.Int(
	"games",
	10,
	"Games per match up of an experiment",
)

var flagOut = flag.String(
	"out",
	"results",
	"Output directory of experiment records",
)

var flagLogLevel = flag.String(
	"log-level",
	"info",
	"Log level: trace|debug|info|warn|error",
)

var flagNoColor = flag.Bool(
	"no-color",
	false,
	"Render the board without colors",
)

func validateFlags() error {
	if n := *flagSize; n < 1 || n > 26 {
		return fmt.Errorf("size must be between 1 and 26, got %d", n)
	}
	if n := *flagDepth; n <= 0 {
		return fmt.Errorf("depth must be greater than 0, got %d", n)
	}
	if n := *flagSimulations; n <= 0 {
		return fmt.Errorf("simulations must be greater than 0, got %d", n)
	}
	if n := *flagGoroutines; n <= 0 {
		return fmt.Errorf("goroutines must be greater than 0, got %d", n)
	}
	if n := *flagGames; n <= 0 {
		return fmt.Errorf("games must be greater than 0, got %d", n)
	}
	if d := *flagDuration; d < 0 {
		return fmt.Errorf("duration must be non-negative, got %s", d)
	}
	return nil
}

func setupLogger() error {
	level, err := zerolog.ParseLevel(*flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", *flagLogLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    *flagNoColor,
	})
	return nil
}

func newPlayer(kind string) (*player.Player, error) {
	k, err := player.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return player.New(player.Config{
		Kind:        k,
		Depth:       *flagDepth,
		Simulations: *flagSimulations,
		Iterations:  *flagIterations,
		Goroutines:  *flagGoroutines,
		Duration:    *flagDuration,
		Seed:        *flagSeed,
	})
}

func playGame() error {
	blue, err := newPlayer(*flagBlue)
	if err != nil {
		return fmt.Errorf("blue player: %w", err)
	}
	red, err := newPlayer(*flagRed)
	if err != nil {
		return fmt.Errorf("red player: %w", err)
	}

	colored := !*flagNoColor && termenv.EnvColorProfile() != termenv.Ascii
	e := engine.New(*flagSize, blue, red, engine.WithOutput(os.Stdout, colored))
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Printf("%s wins after %d moves (%s)\n", winner, gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond))
	return nil
}

func runExperiment() error {
	var progress io.Writer = os.Stderr
	run := map[string]func(string, int, int, io.Writer) (experiments.Summary, error){
		"strategies": experiments.RunStrategyExperiment,
		"depth":      experiments.RunDepthExperiment,
		"throughput": experiments.RunThroughputExperiment,
	}[*flagExperiment]
	if run == nil {
		return fmt.Errorf("unknown experiment %q", *flagExperiment)
	}

	summary, err := run(*flagOut, *flagSize, *flagGames, progress)
	if err != nil {
		return err
	}
	log.Info().Msgf("stored %d games in %s", summary.Games, summary.Dir)
	return nil
}

func main() {
	flag.Parse()

	if err := validateFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flags: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}
	if err := setupLogger(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var err error
	if *flagExperiment != "" {
		err = runExperiment()
	} else {
		err = playGame()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("hex failed")
	}
}
