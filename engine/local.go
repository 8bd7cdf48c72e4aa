package engine

import (
	"context"
	"fmt"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// LocalEngine drives a single game in the calling goroutine.
type LocalEngine struct {
	Game      *game.Game
	maxRounds int
	observers []Observer
	metrics   metrics.Collector
}

func WithMaxRounds(rounds int) Option {
	return func(e *LocalEngine) {
		if rounds > 0 {
			e.maxRounds = rounds
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *LocalEngine) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

func WithMetrics() Option {
	return func(e *LocalEngine) {
		e.metrics = metrics.NewCollector()
	}
}

func NewLocalEngine(g *game.Game, options ...Option) *LocalEngine {
	e := &LocalEngine{ // Default values
		Game:      g,
		maxRounds: meta.MAX_ROUNDS,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes black, white and the win check each round until the game is
// decided. Black only acts while one of its pieces is eligible.
func (e *LocalEngine) Run(ctx context.Context) (game.Status, metrics.GameMetric, error) {
	g := e.Game
	if !g.Initialized() {
		return g.Status(), metrics.GameMetric{}, game.ErrNotInitialized
	}

	log.Info().Msgf("starting game with %d black pieces on %dx%d", len(g.Black), g.Board.Columns, g.Board.Rows)
	e.metrics.Start()

	for round := 1; g.IsRunning(); round++ {
		if err := ctx.Err(); err != nil {
			return e.stop(fmt.Errorf("game interrupted after %d rounds: %w", round-1, err))
		}
		if round > e.maxRounds {
			log.Warn().Msgf("stopped after %d rounds (no winner yet)", e.maxRounds)
			return e.stop(fmt.Errorf("%w: %d", ErrMaxRounds, e.maxRounds))
		}

		action, acted := g.DoBlackTeamActions()
		if acted {
			e.metrics.AddBlackAction(action.Moved)
			eventType := BlackMoved
			if !action.Moved {
				eventType = BlackIdle
			}
			e.notify(Event{Round: round, Type: eventType, Black: action, Status: g.Status()})
		}

		capture, captured := g.DoWhiteTeamActions()
		if captured {
			e.metrics.AddCapture()
			e.notify(Event{Round: round, Type: WhiteCaptured, Capture: capture, Status: g.Status()})
		}

		status := g.UpdateGameState()
		e.metrics.AddRound()
		if status.Terminal() {
			e.notify(Event{Round: round, Type: GameDecided, Status: status})
			break
		}
		if !acted && !captured {
			// nothing changed, so nothing ever will
			log.Warn().Msgf("game stalled after %d rounds", round)
			e.metrics.SetStalled(true)
			return e.stop(ErrStalled)
		}
	}

	log.Info().Msgf("completed game with final state: %s", g.Status())
	return e.stop(nil)
}

func (e *LocalEngine) stop(err error) (game.Status, metrics.GameMetric, error) {
	return e.Game.Status(), e.metrics.Complete(e.Game), err
}

func (e *LocalEngine) notify(event Event) {
	for _, o := range e.observers {
		o.Notify(event)
	}
}
