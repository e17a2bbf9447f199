package agent

import "github.com/hailam/qchess/internal/board"

// RewardFunc scores a move about to be applied to before.
type RewardFunc func(before *board.Board, m board.Move) float64

// NoReward always returns 0.
func NoReward(*board.Board, board.Move) float64 {
	return 0
}

// MaterialReward returns the value of the piece captured by m, 0 if none.
func MaterialReward(before *board.Board, m board.Move) float64 {
	target := before.At(m.To)
	if target.IsEmpty() {
		return 0
	}
	return target.Value()
}
