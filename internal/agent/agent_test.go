package agent

import (
	"testing"

	"github.com/hailam/qchess/internal/board"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestAgent(epsilon float64) *Agent {
	cfg := DefaultConfig()
	cfg.Epsilon = epsilon
	cfg.Seed = 42
	return New(cfg)
}

func mv(r1, c1, r2, c2 int) board.Move {
	return board.NewMove(board.NewSquare(r1, c1), board.NewSquare(r2, c2))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 0.1, cfg.Alpha)
	require.Equal(t, 0.9, cfg.Gamma)
	require.Equal(t, 0.1, cfg.Epsilon)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Alpha: -0.1, Gamma: 1.5, Epsilon: 0.5}
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "alpha")
	require.Contains(t, err.Error(), "gamma")
	require.NotContains(t, err.Error(), "epsilon")
}

func TestSelectActionUnseenStateReturnsNone(t *testing.T) {
	a := newTestAgent(0)
	b := board.NewBoard()

	for i := 0; i < 10; i++ {
		_, ok := a.SelectAction(b, board.Black)
		require.False(t, ok, "no random fallback when exploiting an unseen state")
	}
}

func TestSelectActionExploitsBestValue(t *testing.T) {
	a := newTestAgent(0)
	b := board.NewBoard()
	state := b.Key()

	a.RecordTransition(state, mv(1, 0, 2, 0), 1, "")
	a.RecordTransition(state, mv(1, 1, 3, 1), 5, "")
	a.RecordTransition(state, mv(0, 1, 2, 2), 2, "")

	m, ok := a.SelectAction(b, board.Black)
	require.True(t, ok)
	require.Equal(t, mv(1, 1, 3, 1), m)
}

func TestSelectActionTiesGoToFirstRecorded(t *testing.T) {
	a := newTestAgent(0)
	b := board.NewBoard()
	state := b.Key()

	a.RecordTransition(state, mv(1, 4, 3, 4), 1, "")
	a.RecordTransition(state, mv(1, 3, 3, 3), 1, "")

	m, ok := a.SelectAction(b, board.Black)
	require.True(t, ok)
	require.Equal(t, mv(1, 4, 3, 4), m)
}

func TestSelectActionExploresLegalMoves(t *testing.T) {
	a := newTestAgent(1)
	b := board.NewBoard()
	legal := board.MovesFor(b, board.Black)

	seen := map[board.Move]bool{}
	for i := 0; i < 200; i++ {
		m, ok := a.SelectAction(b, board.Black)
		require.True(t, ok)
		require.Contains(t, legal, m)
		seen[m] = true
	}
	require.Greater(t, len(seen), 1, "exploration should not always pick the same move")
}

func TestSelectActionExploreWithNoMoves(t *testing.T) {
	a := newTestAgent(1)
	b, err := board.ParseBoard([]string{
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	})
	require.NoError(t, err)

	_, ok := a.SelectAction(b, board.Black)
	require.False(t, ok)
}

func TestWithSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epsilon = 1
	b := board.NewBoard()

	a1 := New(cfg, WithSource(rand.NewSource(7)))
	a2 := New(cfg, WithSource(rand.NewSource(7)))
	for i := 0; i < 20; i++ {
		m1, _ := a1.SelectAction(b, board.White)
		m2, _ := a2.SelectAction(b, board.White)
		require.Equal(t, m1, m2)
	}
}

func TestRecordTransitionFirstUpdate(t *testing.T) {
	a := newTestAgent(0)
	state := board.NewBoard().Key()
	m := mv(6, 4, 4, 4)

	a.RecordTransition(state, m, 3, "unseen")
	require.InDelta(t, 0.1*3, a.Table().Get(state, m), 1e-12, "α·reward for an unseen entry")
}

func TestRecordTransitionUsesFutureValue(t *testing.T) {
	a := newTestAgent(0)
	b := board.NewBoard()
	state := b.Key()
	m := mv(6, 4, 4, 4)

	after := b.Copy()
	after.Apply(m)
	next := after.Key()

	a.Table().Set(next, mv(1, 4, 3, 4), 2)
	a.Table().Set(next, mv(1, 3, 3, 3), -4)

	a.RecordTransition(state, m, 1, next)
	// 0 + 0.1 * (1 + 0.9*2 - 0)
	require.InDelta(t, 0.28, a.Table().Get(state, m), 1e-12)

	a.RecordTransition(state, m, 1, next)
	// 0.28 + 0.1 * (1 + 1.8 - 0.28)
	require.InDelta(t, 0.532, a.Table().Get(state, m), 1e-12)
}

func TestRecordTransitionOneUpdatePerCall(t *testing.T) {
	a := newTestAgent(0)
	state := board.NewBoard().Key()

	a.RecordTransition(state, mv(6, 0, 5, 0), 0, "")
	require.Equal(t, 1, a.Table().States())
	require.Equal(t, 1, a.Table().Size())

	a.RecordTransition(state, mv(6, 1, 5, 1), 0, "")
	require.Equal(t, 1, a.Table().States())
	require.Equal(t, 2, a.Table().Size())
}

func TestMaterialReward(t *testing.T) {
	b, err := board.ParseBoard([]string{
		"....k...",
		"........",
		"........",
		"...q....",
		"....P...",
		"........",
		"........",
		"....K...",
	})
	require.NoError(t, err)

	require.Equal(t, 9.0, MaterialReward(b, mv(4, 4, 3, 3)))
	require.Equal(t, 0.0, MaterialReward(b, mv(4, 4, 3, 4)))
	require.Equal(t, 0.0, NoReward(b, mv(4, 4, 3, 3)))
}
