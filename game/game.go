package game

import (
	"errors"
	"fmt"
	"strings"

	"checkers/utils"
)

var (
	// ErrNotInitialized is returned when a game is played before its pieces are placed.
	ErrNotInitialized = errors.New("game is not initialized")
	// ErrInvalidPosition is returned when a piece is set up outside the board
	// or an active black piece shares the white cell.
	ErrInvalidPosition = errors.New("invalid piece position")
	// ErrInvalidFacing is returned when a piece is set up with an unknown direction.
	ErrInvalidFacing = errors.New("invalid piece facing")
	// ErrNegativeCoins is returned when a piece is set up with a negative coin count.
	ErrNegativeCoins = errors.New("coin count must not be negative")
)

// Game is a single simulation: one white piece hunting a team of black pieces.
// A Game is not safe for concurrent use; run one game per goroutine.
type Game struct {
	Rules  Rules
	Board  Board
	White  *Piece
	Black  []*Piece
	status Status
	rng    Rand
}

// New validates the rules and returns a game without pieces. Call Init or
// Setup before playing.
func New(rules Rules, rng Rand) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	return &Game{
		Rules: rules,
		Board: rules.Board(),
		rng:   rng,
	}, nil
}

// Init places the white piece and the black team at random.
func (g *Game) Init() error {
	white, err := g.placeWhite()
	if err != nil {
		return err
	}
	occupied := map[cell]bool{{white.X, white.Y}: true}
	black := make([]*Piece, g.Rules.BlackPieces)
	for i := range black {
		black[i], err = g.placeBlack(i, occupied)
		if err != nil {
			return err
		}
		if g.Rules.StrictPlacement {
			occupied[cell{black[i].X, black[i].Y}] = true
		}
	}
	g.White = white
	g.Black = black
	g.status = Running
	return nil
}

// Setup places the given pieces instead of random ones. Team and ID fields are
// overwritten; the white piece is always active. Active black pieces may not
// start on the white cell.
func (g *Game) Setup(white Piece, black []Piece) error {
	if len(black) == 0 {
		return ErrInvalidTeam
	}
	if err := g.checkPiece("white", white); err != nil {
		return err
	}
	w := white
	w.ID, w.Team, w.Active = 0, White, true
	team := make([]*Piece, len(black))
	for i := range black {
		b := black[i]
		if err := g.checkPiece(fmt.Sprintf("black %d", i), b); err != nil {
			return err
		}
		if b.Active && b.X == w.X && b.Y == w.Y {
			return fmt.Errorf("%w: black %d on the white cell (%d, %d)", ErrInvalidPosition, i, b.X, b.Y)
		}
		b.ID, b.Team = i, Black
		team[i] = &b
	}
	g.White = &w
	g.Black = team
	g.status = Running
	return nil
}

func (g *Game) checkPiece(name string, p Piece) error {
	if !g.Board.Contains(p.X, p.Y) {
		return fmt.Errorf("%w: %s at (%d, %d)", ErrInvalidPosition, name, p.X, p.Y)
	}
	if !p.Facing.Valid() {
		return fmt.Errorf("%w: %s facing %d", ErrInvalidFacing, name, int(p.Facing))
	}
	if p.Coins < 0 {
		return fmt.Errorf("%w: %s has %d", ErrNegativeCoins, name, p.Coins)
	}
	return nil
}

func (g *Game) Initialized() bool {
	return g.White != nil && len(g.Black) > 0
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) IsRunning() bool {
	return g.status == Running
}

// HasEligibleBlack reports whether some black piece can still act.
func (g *Game) HasEligibleBlack() bool {
	return utils.Any(g.Black, (*Piece).Eligible)
}

// UpdateGameState decides the game once every black piece is captured (white
// wins) or broke (black wins). White wins when both hold. A decided game keeps
// its status, and a game without pieces stays running.
func (g *Game) UpdateGameState() Status {
	if g.status.Terminal() || !g.Initialized() {
		return g.status
	}
	captured := utils.All(g.Black, func(p *Piece) bool { return !p.Active })
	broke := utils.All(g.Black, func(p *Piece) bool { return p.Coins == 0 })
	if captured {
		g.status = WhiteWin
	} else if broke {
		g.status = BlackWin
	}
	return g.status
}

// String draws the board with the highest row first.
func (g *Game) String() string {
	var sb strings.Builder
	for y := g.Board.Rows - 1; y >= 0; y-- {
		for x := 0; x < g.Board.Columns; x++ {
			sb.WriteByte(g.symbolAt(x, y))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Game) symbolAt(x, y int) byte {
	if g.White != nil && g.White.X == x && g.White.Y == y {
		return 'W'
	}
	for _, p := range g.Black {
		if p.At(x, y) {
			return 'B'
		}
	}
	if IsDark(x, y) {
		return '.'
	}
	return ' '
}

func (g *Game) assertOnBoard(p *Piece) {
	if !g.Board.Contains(p.X, p.Y) {
		panic(fmt.Sprintf("%s piece %d left the board at (%d, %d)", p.Team, p.ID, p.X, p.Y))
	}
}
