package game

// Board holds the fixed dimensions of the playing field.
type Board struct {
	Columns int
	Rows    int
}

// Contains reports whether (x, y) is a cell of the board.
func (b Board) Contains(x, y int) bool {
	return x >= 0 && x < b.Columns && y >= 0 && y < b.Rows
}

// IsDark reports whether (x, y) is a legal resting square (x+y odd).
func IsDark(x, y int) bool {
	return (x+y)%2 != 0
}

// DarkSquares counts the cells on which pieces may be placed.
func (b Board) DarkSquares() int {
	return b.Columns * b.Rows / 2
}
