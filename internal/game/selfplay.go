package game

import (
	"context"

	"github.com/hailam/qchess/internal/agent"
	"github.com/hailam/qchess/internal/board"
)

// SelfPlayOptions bounds a self-play session.
type SelfPlayOptions struct {
	MaxPlies    int              // stop after this many applied moves
	MaxAttempts int              // consecutive empty SelectAction results before giving up
	Reward      agent.RewardFunc // nil means NoReward
}

// SelfPlayResult summarizes a finished session.
type SelfPlayResult struct {
	Plies     int
	Captures  int
	Stalled   bool        // the side to move ran out of attempts
	KingTaken bool        // a king was captured
	Loser     board.Color // valid when KingTaken
}

// SelfPlay pits two agents against each other on a fresh board, each
// learning from its own moves. The agents must not be shared with other
// goroutines while it runs.
func SelfPlay(ctx context.Context, white, black *agent.Agent, opts SelfPlayOptions) (SelfPlayResult, error) {
	reward := opts.Reward
	if reward == nil {
		reward = agent.NoReward
	}
	attempts := max(opts.MaxAttempts, 1)

	b := board.NewBoard()
	players := [2]*agent.Agent{board.White: white, board.Black: black}
	var res SelfPlayResult

	for res.Plies < opts.MaxPlies {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		color := b.Turn()
		a := players[color]

		var m board.Move
		var ok bool
		for i := 0; i < attempts && !ok; i++ {
			m, ok = a.SelectAction(b, color)
		}
		if !ok {
			res.Stalled = true
			return res, nil
		}

		state := b.Key()
		r := reward(b, m)
		if !b.At(m.To).IsEmpty() {
			res.Captures++
		}

		b.Apply(m)
		b.SwitchTurn()
		res.Plies++
		a.RecordTransition(state, m, r, b.Key())

		if !b.HasKing(color.Other()) {
			res.KingTaken = true
			res.Loser = color.Other()
			return res, nil
		}
	}
	return res, nil
}
