package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"checkers/config"
	"checkers/engine"
	"checkers/experiments"
	"checkers/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML config file (defaults are used when empty)")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the config (0 picks one from the clock)")
	games := flag.Int("games", 1, "Number of games; more than one runs a batch experiment")
	out := flag.String("out", "checkers", "Experiment name used for the output directory")
	verbose := flag.Bool("verbose", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *games > 1 {
		summary, err := experiments.Run(ctx, "experiments", *out, cfg, *games)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		fmt.Printf("White wins: %d, Black wins: %d, Undecided: %d, Mean rounds: %.1f\n",
			summary.WhiteWins, summary.BlackWins, summary.Undecided, summary.MeanRounds)
		return
	}

	status, err := runGame(ctx, cfg)
	if err != nil && !errors.Is(err, engine.ErrStalled) && !errors.Is(err, engine.ErrMaxRounds) {
		log.Fatal().Err(err).Msg("game failed")
	}
	fmt.Printf("Final State: %s\n", status)
}

// runGame sets up a single game from cfg, plays it and returns its final state
func runGame(ctx context.Context, cfg config.Config) (game.Status, error) {
	log.Info().Msgf("using seed %d", cfg.Seed)
	g, err := game.New(cfg.Rules(), game.NewRand(cfg.Seed))
	if err != nil {
		return game.Running, err
	}
	if err := g.Init(); err != nil {
		return game.Running, err
	}
	fmt.Print(g)

	e := engine.NewLocalEngine(g,
		engine.WithMaxRounds(cfg.MaxRounds),
		engine.WithObserver(engine.NewLogObserver(log.Logger)),
	)
	status, _, err := e.Run(ctx)
	fmt.Print(g)
	return status, err
}
