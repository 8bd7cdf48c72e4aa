package game

import (
	"errors"
	"fmt"

	"checkers/meta"
)

var (
	// ErrInvalidBoard is returned when a board dimension is not positive.
	ErrInvalidBoard = errors.New("board dimensions must be positive")
	// ErrInvalidCoins is returned when the coin range is empty or not positive.
	ErrInvalidCoins = errors.New("coin range must satisfy 0 < min <= max")
	// ErrInvalidTeam is returned when the black team has no pieces.
	ErrInvalidTeam = errors.New("black team needs at least one piece")
	// ErrBoardTooSmall is returned when the board has fewer dark squares than pieces need.
	ErrBoardTooSmall = errors.New("board has too few dark squares for the pieces")
)

// Rules holds the parameters of a game. They never change once a game is created.
type Rules struct {
	Columns     int
	Rows        int
	MinCoins    int
	MaxCoins    int
	BlackPieces int
	// StrictPlacement keeps black pieces off each other's starting cells.
	// When false, black spawns are only checked against the white piece.
	StrictPlacement bool
}

func NewStandardRules() Rules {
	return Rules{
		Columns:         meta.NUMBER_OF_COLUMNS,
		Rows:            meta.NUMBER_OF_ROWS,
		MinCoins:        meta.MIN_NUMBER_OF_COINS,
		MaxCoins:        meta.MAX_NUMBER_OF_COINS,
		BlackPieces:     meta.BLACK_PIECES,
		StrictPlacement: true,
	}
}

func (r Rules) Board() Board {
	return Board{Columns: r.Columns, Rows: r.Rows}
}

// Validate checks that a game with these rules can be set up.
func (r Rules) Validate() error {
	if r.Columns <= 0 || r.Rows <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidBoard, r.Columns, r.Rows)
	}
	if r.MinCoins <= 0 || r.MinCoins > r.MaxCoins {
		return fmt.Errorf("%w: got [%d, %d]", ErrInvalidCoins, r.MinCoins, r.MaxCoins)
	}
	if r.BlackPieces <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTeam, r.BlackPieces)
	}
	needed := 2 // white plus one black cell
	if r.StrictPlacement {
		needed = 1 + r.BlackPieces
	}
	if dark := r.Board().DarkSquares(); dark < needed {
		return fmt.Errorf("%w: %dx%d has %d, need %d", ErrBoardTooSmall, r.Columns, r.Rows, dark, needed)
	}
	return nil
}
