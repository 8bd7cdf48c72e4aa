package config

import (
	"os"
	"path/filepath"
	"testing"

	"checkers/game"
	"checkers/meta"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("reading every field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "checkers.yaml")
		data := `
board:
  columns: 10
  rows: 6
coins:
  min: 2
  max: 4
black_pieces: 3
strict_placement: false
seed: 99
max_rounds: 50
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		c, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, game.Rules{Columns: 10, Rows: 6, MinCoins: 2, MaxCoins: 4, BlackPieces: 3, StrictPlacement: false}, c.Rules())
		require.Equal(t, uint64(99), c.Seed)
		require.Equal(t, 50, c.MaxRounds)
	})

	t.Run("failing on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParse(t *testing.T) {
	t.Run("filling in defaults", func(t *testing.T) {
		c, err := Parse([]byte("board:\n  columns: 6\n"))

		require.NoError(t, err)
		require.Equal(t, 6, c.Board.Columns)
		require.Equal(t, meta.NUMBER_OF_ROWS, c.Board.Rows)
		require.Equal(t, Coins{Min: meta.MIN_NUMBER_OF_COINS, Max: meta.MAX_NUMBER_OF_COINS}, c.Coins)
		require.Equal(t, meta.BLACK_PIECES, c.BlackPieces)
		require.True(t, c.Rules().StrictPlacement)
		require.Equal(t, meta.MAX_ROUNDS, c.MaxRounds)
		require.Zero(t, c.Seed)
	})

	t.Run("matching the standard rules by default", func(t *testing.T) {
		require.Equal(t, game.NewStandardRules(), Default().Rules())
	})

	t.Run("rejecting an empty coin range", func(t *testing.T) {
		_, err := Parse([]byte("coins: {min: 5, max: 2}\n"))

		require.ErrorIs(t, err, game.ErrInvalidCoins)
	})

	t.Run("rejecting a board without room", func(t *testing.T) {
		_, err := Parse([]byte("board: {columns: 2, rows: 2}\n"))

		require.ErrorIs(t, err, game.ErrBoardTooSmall)
	})

	t.Run("rejecting a negative round limit", func(t *testing.T) {
		_, err := Parse([]byte("max_rounds: -1\n"))

		require.ErrorIs(t, err, ErrInvalidMaxRounds)
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("board: [1, 2\n"))

		require.Error(t, err)
	})
}
