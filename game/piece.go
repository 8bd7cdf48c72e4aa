package game

// Team tells white and black pieces apart.
type Team int

const (
	White Team = iota
	Black
)

func (t Team) String() string {
	if t == White {
		return "WHITE"
	}
	return "BLACK"
}

// Piece is a single stone on the board. Captured black pieces stay in the
// team with Active set to false.
type Piece struct {
	ID     int // index within its team
	Team   Team
	X      int
	Y      int
	Facing Direction
	Coins  int
	Active bool
}

// At reports whether the piece is active and sits on (x, y).
func (p *Piece) At(x, y int) bool {
	return p.Active && p.X == x && p.Y == y
}

// Eligible reports whether a black piece may take a turn.
func (p *Piece) Eligible() bool {
	return p.Active && p.Coins > 0
}

// Move steps one cell forward in the facing direction.
func (p *Piece) Move() {
	dx, dy := p.Facing.Step()
	p.X += dx
	p.Y += dy
}

func (p *Piece) TurnLeft() {
	p.Facing = p.Facing.TurnLeft()
}

func (p *Piece) spendCoin() {
	if p.Coins <= 0 {
		panic("piece has no coins to spend")
	}
	p.Coins--
}
