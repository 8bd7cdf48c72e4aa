package game

// diagonals in the order white searches them
var diagonals = [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

// Capture describes a white jump over a black piece.
type Capture struct {
	Piece        int
	FromX, FromY int
	OverX, OverY int
	ToX, ToY     int
}

// DoWhiteTeamActions walks the four diagonals from the white piece and jumps
// the nearest active black piece whose landing cell is on the board and free
// of other active black pieces. At most one capture is made per call; it
// returns false when there is nothing to capture.
func (g *Game) DoWhiteTeamActions() (Capture, bool) {
	if !g.Initialized() {
		return Capture{}, false
	}
	wx, wy := g.White.X, g.White.Y
	for _, d := range diagonals {
		dx, dy := d[0], d[1]
		for x, y := wx+dx, wy+dy; g.Board.Contains(x+dx, y+dy); x, y = x+dx, y+dy {
			victim := g.capturable(x, y, x+dx, y+dy)
			if victim == nil {
				continue
			}
			victim.Active = false
			g.White.X, g.White.Y = x+dx, y+dy
			g.assertOnBoard(g.White)
			return Capture{
				Piece: victim.ID,
				FromX: wx, FromY: wy,
				OverX: x, OverY: y,
				ToX: x + dx, ToY: y + dy,
			}, true
		}
	}
	return Capture{}, false
}

// capturable returns the first active black piece on (x, y) if no other
// active black piece blocks the landing cell (lx, ly).
func (g *Game) capturable(x, y, lx, ly int) *Piece {
	for _, p := range g.Black {
		if !p.At(x, y) {
			continue
		}
		for _, other := range g.Black {
			if other != p && other.At(lx, ly) {
				return nil
			}
		}
		return p
	}
	return nil
}
