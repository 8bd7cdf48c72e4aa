package game

// maneuver describes a diagonal move built from two orthogonal steps: pre
// left turns, a step, mid left turns, a step.
type maneuver struct {
	pre, mid int
}

// Black candidates in preference order: forward-right, forward-left,
// back-left, back-right relative to the piece's facing.
var maneuvers = [4]maneuver{
	{pre: 0, mid: 3},
	{pre: 0, mid: 1},
	{pre: 1, mid: 1},
	{pre: 2, mid: 1},
}

// target returns the offset reached from facing f and the facing afterwards.
func (m maneuver) target(f Direction) (dx, dy int, facing Direction) {
	first := f.rotate(-m.pre)
	second := first.rotate(-m.mid)
	dx1, dy1 := first.Step()
	dx2, dy2 := second.Step()
	return dx1 + dx2, dy1 + dy2, second
}

func (m maneuver) perform(p *Piece) {
	for i := 0; i < m.pre; i++ {
		p.TurnLeft()
	}
	p.Move()
	for i := 0; i < m.mid; i++ {
		p.TurnLeft()
	}
	p.Move()
}

// BlackAction describes one black turn.
type BlackAction struct {
	Piece        int
	FromX, FromY int
	ToX, ToY     int
	Moved        bool // false when the coin was spent without a valid target
}

// DoBlackTeamActions picks a random eligible black piece, spends one of its
// coins and moves it to the first valid diagonal candidate. It returns false
// without touching the game when no black piece is eligible or no pieces are
// placed yet.
func (g *Game) DoBlackTeamActions() (BlackAction, bool) {
	if !g.Initialized() || !g.HasEligibleBlack() {
		return BlackAction{}, false
	}
	var p *Piece
	for p == nil || !p.Eligible() {
		p = g.Black[g.rng.Intn(len(g.Black))]
	}
	p.spendCoin()

	action := BlackAction{Piece: p.ID, FromX: p.X, FromY: p.Y, ToX: p.X, ToY: p.Y}
	for _, m := range maneuvers {
		dx, dy, _ := m.target(p.Facing)
		x, y := p.X+dx, p.Y+dy
		if !g.Board.Contains(x, y) || (x == g.White.X && y == g.White.Y) {
			continue
		}
		m.perform(p)
		g.assertOnBoard(p)
		action.ToX, action.ToY, action.Moved = p.X, p.Y, true
		break
	}
	return action, true
}
