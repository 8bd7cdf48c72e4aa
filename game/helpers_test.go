package game

// scriptedRand replays fixed values (modulo n) and returns 0 once exhausted.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	r.calls++
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

func newTestGame(columns, rows int, rng Rand) *Game {
	return &Game{
		Rules: Rules{Columns: columns, Rows: rows, MinCoins: 1, MaxCoins: 1, BlackPieces: 1},
		Board: Board{Columns: columns, Rows: rows},
		rng:   rng,
	}
}

func setup(g *Game, white Piece, black ...Piece) *Game {
	if err := g.Setup(white, black); err != nil {
		panic(err)
	}
	return g
}

func black(x, y int, facing Direction, coins int) Piece {
	return Piece{X: x, Y: y, Facing: facing, Coins: coins, Active: true}
}
