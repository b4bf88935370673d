package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"pursuit/config"
	"pursuit/engine"
	"pursuit/experiments"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/gamemaster"
	"pursuit/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML game config file")
	seed := flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	verbose := flag.Bool("verbose", false, "Log every move")
	delay := flag.Duration("delay", meta.STEP_DELAY, "Pause between automatic steps")
	experiment := flag.String("experiment", "", "Run an experiment batch: standard or scaling")
	games := flag.Int("games", experiments.NumGames, "Games per config in an experiment")
	out := flag.String("out", "experiments", "Experiment output directory")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *experiment != "" {
		runExperiment(*experiment, *games, *seed, *out)
		return
	}
	runGame(ctx, *configPath, *seed, *delay)
}

func runGame(ctx context.Context, configPath string, seed uint64, delay time.Duration) {
	cfg := game.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.ThiefMode == game.ThiefManual {
		// The CLI has no way to read thief moves
		log.Warn().Msg("manual thieves need an interactive front end, playing them automatically")
		cfg.ThiefMode = game.ThiefAutomatic
	}

	e := engine.New(cfg)
	driver := gamemaster.NewDriver(e, gamemaster.WithStepDelay(delay))
	status := driver.Run(ctx)

	stats := game.ComputeStats(status.Moves, status.Turn)
	event := log.Info().
		Str("state", status.State.String()).
		Int("turns", status.Turn).
		Int("police_moves", stats.PoliceMoves).
		Int("thief_moves", stats.ThiefMoves)
	if status.Result != nil {
		event = event.Str("reason", string(status.Result.Reason))
		event.Msg(status.Result.Message)
		return
	}
	event.Msg("game interrupted")
}

func runExperiment(name string, games int, seed uint64, out string) {
	configs, ok := experiments.Batches[name]
	if !ok {
		log.Fatal().Msgf("unknown experiment %q", name)
	}

	writer, err := metrics.NewWriter(out, name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create experiment writer")
	}
	if seed == 0 {
		seed = 1
	}
	if _, err := experiments.Run(name, configs, games, seed, writer); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
