package engine

import (
	"checkers/game"

	"github.com/rs/zerolog"
)

type EventType int

const (
	BlackMoved EventType = iota
	BlackIdle
	WhiteCaptured
	GameDecided
)

func (t EventType) String() string {
	switch t {
	case BlackMoved:
		return "black_moved"
	case BlackIdle:
		return "black_idle"
	case WhiteCaptured:
		return "white_captured"
	case GameDecided:
		return "game_decided"
	}
	return "unknown"
}

// Event is sent to observers after every mutation of the game.
type Event struct {
	Round   int
	Type    EventType
	Black   game.BlackAction // BlackMoved, BlackIdle
	Capture game.Capture     // WhiteCaptured
	Status  game.Status
}

// Observer receives game events, e.g. to render the board. Notify is called
// on the engine goroutine and should return quickly.
type Observer interface {
	Notify(event Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) Notify(event Event) {
	f(event)
}

type logObserver struct {
	logger zerolog.Logger
}

// NewLogObserver returns an observer that logs every event at debug level.
func NewLogObserver(logger zerolog.Logger) Observer {
	return logObserver{logger: logger}
}

func (o logObserver) Notify(event Event) {
	e := o.logger.Debug().Int("round", event.Round).Stringer("event", event.Type)
	switch event.Type {
	case BlackMoved, BlackIdle:
		b := event.Black
		e.Int("piece", b.Piece).Msgf("black (%d, %d) -> (%d, %d)", b.FromX, b.FromY, b.ToX, b.ToY)
	case WhiteCaptured:
		c := event.Capture
		e.Int("piece", c.Piece).Msgf("white (%d, %d) jumps (%d, %d) -> (%d, %d)", c.FromX, c.FromY, c.OverX, c.OverY, c.ToX, c.ToY)
	default:
		e.Stringer("status", event.Status).Msg("game decided")
	}
}
