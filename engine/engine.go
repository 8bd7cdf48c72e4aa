package engine

import (
	"context"
	"errors"

	"checkers/experiments/metrics"
	"checkers/game"
)

var (
	// ErrStalled is returned when no piece can ever move again but the game is undecided.
	ErrStalled = errors.New("game stalled")
	// ErrMaxRounds is returned when the round limit is reached before a winner.
	ErrMaxRounds = errors.New("round limit reached")
)

type Engine interface {
	// Run plays rounds until the game is decided, stalls, hits the round limit
	// or ctx is done
	Run(ctx context.Context) (status game.Status, gameMetric metrics.GameMetric, err error)
}
