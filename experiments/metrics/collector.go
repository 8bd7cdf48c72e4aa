package metrics

import (
	"time"

	"checkers/game"
	"checkers/utils"
)

type GameMetric struct {
	Status     game.Status
	Rounds     int
	BlackMoves int // coins spent on a diagonal move
	BlackIdle  int // coins spent without a valid target
	Captures   int
	Survivors  int // black pieces still active
	CoinsLeft  int
	Stalled    bool
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// Collector records the course of one game. It is used from the engine
// goroutine only.
type Collector interface {
	Start()
	AddRound()
	AddBlackAction(moved bool)
	AddCapture()
	SetStalled(value bool)
	Complete(g *game.Game) GameMetric
}

type collector struct {
	startTime  time.Time
	rounds     int
	blackMoves int
	blackIdle  int
	captures   int
	stalled    bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddRound() {
	m.rounds++
}

func (m *collector) AddBlackAction(moved bool) {
	if moved {
		m.blackMoves++
	} else {
		m.blackIdle++
	}
}

func (m *collector) AddCapture() {
	m.captures++
}

func (m *collector) SetStalled(value bool) {
	m.stalled = value
}

func (m *collector) Complete(g *game.Game) GameMetric {
	end := time.Now()
	coins := 0
	for _, p := range g.Black {
		coins += p.Coins
	}
	return GameMetric{
		Status:     g.Status(),
		Rounds:     m.rounds,
		BlackMoves: m.blackMoves,
		BlackIdle:  m.blackIdle,
		Captures:   m.captures,
		Survivors:  utils.Count(g.Black, func(p *game.Piece) bool { return p.Active }),
		CoinsLeft:  coins,
		Stalled:    m.stalled,
		StartTime:  m.startTime,
		EndTime:    end,
		Duration:   end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                           {}
func (m *dummyCollector) AddRound()                        {}
func (m *dummyCollector) AddBlackAction(moved bool)        {}
func (m *dummyCollector) AddCapture()                      {}
func (m *dummyCollector) SetStalled(value bool)            {}
func (m *dummyCollector) Complete(g *game.Game) GameMetric { return GameMetric{Status: g.Status()} }
