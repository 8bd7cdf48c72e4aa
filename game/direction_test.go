package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionTurns(t *testing.T) {
	t.Run("turning left cycles counter-clockwise", func(t *testing.T) {
		require.Equal(t, Left, Up.TurnLeft())
		require.Equal(t, Down, Left.TurnLeft())
		require.Equal(t, Right, Down.TurnLeft())
		require.Equal(t, Up, Right.TurnLeft())
	})

	t.Run("turning right undoes turning left", func(t *testing.T) {
		for _, d := range Directions {
			require.Equal(t, d, d.TurnLeft().TurnRight(), "Direction %s should round trip", d)
		}
	})

	t.Run("steps are unit offsets with y growing upwards", func(t *testing.T) {
		dx, dy := Up.Step()
		require.Equal(t, [2]int{0, 1}, [2]int{dx, dy})
		dx, dy = Left.Step()
		require.Equal(t, [2]int{-1, 0}, [2]int{dx, dy})
	})
}
