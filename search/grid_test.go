package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statlearn/modelselect/pkg/errors"
)

func TestGridCombinations(t *testing.T) {
	t.Run("cartesian product in declaration order", func(t *testing.T) {
		g := NewGrid().
			AddInts("size", 2, 3).
			AddFloats("cost", 0.1, 1, 10)

		assert.Equal(t, []string{"size", "cost"}, g.Names())
		assert.Equal(t, 6, g.Size())

		combos, err := g.Combinations()
		require.NoError(t, err)
		require.Len(t, combos, 6)

		// Leftmost parameter varies slowest.
		expected := []Combination{
			{"size": 2, "cost": 0.1},
			{"size": 2, "cost": 1.0},
			{"size": 2, "cost": 10.0},
			{"size": 3, "cost": 0.1},
			{"size": 3, "cost": 1.0},
			{"size": 3, "cost": 10.0},
		}
		assert.Equal(t, expected, combos)
	})

	t.Run("single parameter", func(t *testing.T) {
		combos, err := NewGrid().AddInts("size", 2, 3, 4).Combinations()
		require.NoError(t, err)
		require.Len(t, combos, 3)
		assert.Equal(t, 2, combos[0].Int("size"))
		assert.Equal(t, 4, combos[2].Int("size"))
	})

	t.Run("empty grid", func(t *testing.T) {
		_, err := NewGrid().Combinations()
		var gridErr *errors.InvalidGridError
		require.True(t, errors.As(err, &gridErr))
	})

	t.Run("empty value sequence", func(t *testing.T) {
		_, err := NewGrid().AddInts("size", 2).AddFloats("cost").Combinations()
		var gridErr *errors.InvalidGridError
		require.True(t, errors.As(err, &gridErr))
		assert.Equal(t, "cost", gridErr.Param)
	})

	t.Run("duplicate parameter", func(t *testing.T) {
		_, err := NewGrid().AddInts("size", 2).AddInts("size", 3).Combinations()
		var gridErr *errors.InvalidGridError
		require.True(t, errors.As(err, &gridErr))
		assert.Equal(t, "size", gridErr.Param)
	})
}

func TestCombinationAccessors(t *testing.T) {
	c := Combination{"size": 5, "cost": 0.5}

	assert.Equal(t, 5.0, c.Float("size"))
	assert.Equal(t, 0.5, c.Float("cost"))
	assert.Equal(t, 5, c.Int("size"))
	assert.Equal(t, 0, c.Int("cost"))

	assert.Panics(t, func() { Combination{"kernel": "radial"}.Float("kernel") })
}
