package experiments

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"checkers/config"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Run plays games simulations with seeds cfg.Seed, cfg.Seed+1, ... across
// runtime.NumCPU goroutines and stores the records under root/name.
func Run(ctx context.Context, root, name string, cfg config.Config, games int) (metrics.Summary, error) {
	if games <= 0 {
		return metrics.Summary{}, fmt.Errorf("need at least one game, got %d", games)
	}
	if err := cfg.Validate(); err != nil {
		return metrics.Summary{}, err
	}

	log.Info().Msgf("starting %s experiment with %d games...", name, games)
	records, err := playAll(ctx, cfg, games)
	if err != nil {
		return metrics.Summary{}, err
	}
	summary := metrics.Summarize(records)
	log.Info().Msgf("completed %s experiment: %+v", name, summary)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteRules(cfg.Rules(), cfg.Seed, games); err != nil {
		return summary, fmt.Errorf("failed to store rules: %w", err)
	}
	log.Info().Msg("stored rules")
	if err := writer.WriteGameRecords(records); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msgf("stored game records in %s", writer.Dir())

	return summary, nil
}

func playAll(ctx context.Context, cfg config.Config, games int) ([]metrics.GameRecord, error) {
	task := make(chan int, games)
	for i := 0; i < games; i++ {
		task <- i
	}
	close(task)

	records := make([]metrics.GameRecord, games)
	errs := make([]error, games)

	var wg sync.WaitGroup
	for w := 0; w < min(runtime.NumCPU(), games); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				records[i], errs[i] = playOne(ctx, cfg, i)
			}
		}()
	}
	wg.Wait()

	return records, errors.Join(errs...)
}

func playOne(ctx context.Context, cfg config.Config, i int) (metrics.GameRecord, error) {
	seed := cfg.Seed + uint64(i)
	g, err := game.New(cfg.Rules(), game.NewRand(seed))
	if err != nil {
		return metrics.GameRecord{}, err
	}
	if err := g.Init(); err != nil {
		return metrics.GameRecord{}, fmt.Errorf("game %d: %w", i, err)
	}

	e := engine.NewLocalEngine(g, engine.WithMaxRounds(cfg.MaxRounds), engine.WithMetrics())
	_, gameMetric, err := e.Run(ctx)
	if err != nil && !errors.Is(err, engine.ErrStalled) && !errors.Is(err, engine.ErrMaxRounds) {
		return metrics.GameRecord{}, fmt.Errorf("game %d: %w", i, err)
	}

	return metrics.GameRecord{
		ID:         uuid.New(),
		Game:       i,
		Seed:       seed,
		GameMetric: gameMetric,
	}, nil
}
