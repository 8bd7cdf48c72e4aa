package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"checkers/config"
	"checkers/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func TestRun(t *testing.T) {
	t.Run("playing and storing every game", func(t *testing.T) {
		root := t.TempDir()
		cfg := config.Default()
		cfg.Seed = 1

		summary, err := Run(context.Background(), root, "batch", cfg, 20)

		require.NoError(t, err)
		require.Equal(t, 20, summary.Games)
		require.Equal(t, 20, summary.WhiteWins+summary.BlackWins+summary.Undecided)
		require.Greater(t, summary.MeanRounds, 0.0)

		files, err := filepath.Glob(filepath.Join(root, "batch", "*", "*.csv"))
		require.NoError(t, err)
		require.Len(t, files, 2, "Should store rules and game records")
	})

	t.Run("replaying a seed", func(t *testing.T) {
		cfg := config.Default()
		cfg.Seed = 7

		first, err := playOne(context.Background(), cfg, 3)
		require.NoError(t, err)
		second, err := playOne(context.Background(), cfg, 3)
		require.NoError(t, err)

		require.Equal(t, uint64(10), first.Seed)
		require.Equal(t, first.Status, second.Status)
		require.Equal(t, first.Rounds, second.Rounds)
		require.Equal(t, first.Captures, second.Captures)
		require.NotEqual(t, first.ID, second.ID)
	})

	t.Run("rejecting bad input", func(t *testing.T) {
		_, err := Run(context.Background(), t.TempDir(), "none", config.Default(), 0)
		require.Error(t, err)

		cfg := config.Default()
		cfg.Coins.Min = 9
		_, err = Run(context.Background(), t.TempDir(), "bad", cfg, 1)
		require.ErrorIs(t, err, game.ErrInvalidCoins)
	})

	t.Run("surfacing cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Run(ctx, t.TempDir(), "cancelled", config.Default(), 2)

		require.ErrorIs(t, err, context.Canceled)
	})
}
