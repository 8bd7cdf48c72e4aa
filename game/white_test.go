package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoWhiteTeamActions(t *testing.T) {
	t.Run("capturing an adjacent piece", func(t *testing.T) {
		g := setup(newTestGame(8, 8, &scriptedRand{}), Piece{X: 2, Y: 2}, black(3, 3, Up, 2))

		capture, captured := g.DoWhiteTeamActions()

		require.True(t, captured)
		require.False(t, g.Black[0].Active, "Jumped piece should be turned off")
		require.Equal(t, 4, g.White.X)
		require.Equal(t, 4, g.White.Y)
		require.Equal(t, Capture{Piece: 0, FromX: 2, FromY: 2, OverX: 3, OverY: 3, ToX: 4, ToY: 4}, capture)
		require.Equal(t, 2, g.Black[0].Coins, "Captured piece should keep its coins")
	})

	t.Run("leaving the board unchanged without a capture", func(t *testing.T) {
		g := setup(newTestGame(5, 5, &scriptedRand{}), Piece{X: 2, Y: 2}, black(3, 3, Up, 2), black(4, 4, Up, 2))

		_, captured := g.DoWhiteTeamActions()

		require.False(t, captured)
		require.Equal(t, 2, g.White.X)
		require.Equal(t, 2, g.White.Y)
		require.True(t, g.Black[0].Active)
		require.True(t, g.Black[1].Active)
	})

	t.Run("needing room to land", func(t *testing.T) {
		g := setup(newTestGame(4, 4, &scriptedRand{}), Piece{X: 2, Y: 2}, black(3, 3, Up, 2))

		_, captured := g.DoWhiteTeamActions()

		require.False(t, captured, "Landing cell (4, 4) is off the board")
	})

	t.Run("scanning diagonals in order", func(t *testing.T) {
		g := setup(newTestGame(8, 8, &scriptedRand{}), Piece{X: 2, Y: 2}, black(1, 1, Up, 2), black(3, 1, Up, 2))

		capture, _ := g.DoWhiteTeamActions()

		require.Equal(t, 1, capture.Piece, "Diagonal (+1, -1) is searched before (-1, -1)")
		require.Equal(t, 4, g.White.X)
		require.Equal(t, 0, g.White.Y)
		require.True(t, g.Black[0].Active, "Only one piece is captured per turn")
	})

	t.Run("preferring the nearest piece on a diagonal", func(t *testing.T) {
		g := setup(newTestGame(8, 8, &scriptedRand{}), Piece{X: 0, Y: 0}, black(4, 4, Up, 2), black(2, 2, Up, 2))

		capture, _ := g.DoWhiteTeamActions()

		require.Equal(t, 1, capture.Piece)
		require.Equal(t, 3, g.White.X)
		require.Equal(t, 3, g.White.Y)
	})

	t.Run("jumping over empty cells", func(t *testing.T) {
		g := setup(newTestGame(8, 8, &scriptedRand{}), Piece{X: 0, Y: 0}, black(3, 3, Up, 2))

		capture, captured := g.DoWhiteTeamActions()

		require.True(t, captured)
		require.Equal(t, Capture{Piece: 0, OverX: 3, OverY: 3, ToX: 4, ToY: 4}, capture)
	})

	t.Run("ignoring captured pieces", func(t *testing.T) {
		off := black(1, 1, Up, 2)
		off.Active = false
		g := setup(newTestGame(8, 8, &scriptedRand{}), Piece{X: 0, Y: 0}, off)

		_, captured := g.DoWhiteTeamActions()

		require.False(t, captured)
		require.Equal(t, 0, g.White.X)
	})

	t.Run("landing on a captured piece", func(t *testing.T) {
		off := black(2, 2, Up, 2)
		off.Active = false
		g := setup(newTestGame(8, 8, &scriptedRand{}), Piece{X: 0, Y: 0}, off, black(1, 1, Up, 2))

		_, captured := g.DoWhiteTeamActions()

		require.True(t, captured, "Captured pieces do not block the landing cell")
		require.Equal(t, 2, g.White.X)
		require.Equal(t, 2, g.White.Y)
	})
}
