package agent

import (
	"testing"

	"github.com/hailam/qchess/internal/board"
	"github.com/stretchr/testify/require"
)

func TestValueTable(t *testing.T) {
	tbl := NewValueTable()
	state := board.StateKey("s")
	a, b := mv(6, 0, 5, 0), mv(6, 1, 5, 1)

	t.Run("absent reads as zero", func(t *testing.T) {
		require.False(t, tbl.Has(state))
		require.Equal(t, 0.0, tbl.Get(state, a))
		require.Equal(t, 0.0, tbl.MaxValue(state))
		_, ok := tbl.Best(state)
		require.False(t, ok)
		require.Nil(t, tbl.Entries(state))
	})

	t.Run("set keeps recorded order", func(t *testing.T) {
		tbl.Set(state, a, -1)
		tbl.Set(state, b, -3)
		tbl.Set(state, a, -2)

		require.True(t, tbl.Has(state))
		require.Equal(t, []Entry{{Move: a, Value: -2}, {Move: b, Value: -3}}, tbl.Entries(state))
		require.Equal(t, -2.0, tbl.MaxValue(state), "max of negative values is not clamped to 0")

		best, ok := tbl.Best(state)
		require.True(t, ok)
		require.Equal(t, a, best)
	})

	t.Run("entries are a copy", func(t *testing.T) {
		entries := tbl.Entries(state)
		entries[0].Value = 100
		require.Equal(t, -2.0, tbl.Get(state, a))
	})

	t.Run("counts", func(t *testing.T) {
		tbl.Set("other", a, 1)
		require.Equal(t, 2, tbl.States())
		require.Equal(t, 3, tbl.Size())
	})
}
