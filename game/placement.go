package game

import (
	"errors"
	"fmt"
)

// ErrPlacementExhausted is returned when no free dark square was drawn in time.
var ErrPlacementExhausted = errors.New("placement exhausted")

// minimum number of draws per piece; larger boards get 100 draws per cell
const minPlacementAttempts = 10000

func (g *Game) placementAttempts() int {
	return max(minPlacementAttempts, 100*g.Board.Columns*g.Board.Rows)
}

type cell struct {
	x, y int
}

// placeWhite draws a white piece on a random dark square.
func (g *Game) placeWhite() (*Piece, error) {
	x, y, err := g.randomCell(nil)
	if err != nil {
		return nil, fmt.Errorf("cannot place white piece: %w", err)
	}
	return &Piece{
		Team:   White,
		X:      x,
		Y:      y,
		Facing: g.randomDirection(),
		Active: true,
	}, nil
}

// placeBlack draws a black piece on a random dark square outside occupied.
func (g *Game) placeBlack(id int, occupied map[cell]bool) (*Piece, error) {
	x, y, err := g.randomCell(occupied)
	if err != nil {
		return nil, fmt.Errorf("cannot place black piece %d: %w", id, err)
	}
	return &Piece{
		ID:     id,
		Team:   Black,
		X:      x,
		Y:      y,
		Facing: g.randomDirection(),
		Coins:  intBetween(g.rng, g.Rules.MinCoins, g.Rules.MaxCoins),
		Active: true,
	}, nil
}

func (g *Game) randomCell(occupied map[cell]bool) (int, int, error) {
	attempts := g.placementAttempts()
	for attempt := 0; attempt < attempts; attempt++ {
		x := g.rng.Intn(g.Board.Columns)
		y := g.rng.Intn(g.Board.Rows)
		if IsDark(x, y) && !occupied[cell{x, y}] {
			return x, y, nil
		}
	}
	return 0, 0, fmt.Errorf("%w after %d attempts", ErrPlacementExhausted, attempts)
}

func (g *Game) randomDirection() Direction {
	return Directions[g.rng.Intn(len(Directions))]
}
