// Package game hands turns between a human player and the learning agent.
package game

import (
	"github.com/hailam/qchess/internal/agent"
	"github.com/hailam/qchess/internal/board"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	// ErrNotYourTurn is returned when the human moves on the agent's turn.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrIllegalMove is returned for a move the rules reject.
	ErrIllegalMove = errors.New("illegal move")
)

// Option customizes a Controller.
type Option func(c *Controller)

// WithHumanColor sets the side the human plays (White by default).
func WithHumanColor(color board.Color) Option {
	return func(c *Controller) {
		c.human = color
	}
}

// WithLearning makes the controller report every agent move to the agent
// using the given reward function. A nil function disables learning.
func WithLearning(reward agent.RewardFunc) Option {
	return func(c *Controller) {
		c.reward = reward
	}
}

// WithLogger sets the controller's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// Controller owns the board. It is the only writer of board state and
// must be driven from a single goroutine.
type Controller struct {
	board   *board.Board
	agent   *agent.Agent
	human   board.Color
	reward  agent.RewardFunc
	history []board.Move
	log     zerolog.Logger
}

// NewController starts a game from the initial layout with White to move.
func NewController(a *agent.Agent, options ...Option) *Controller {
	c := &Controller{
		board: board.NewBoard(),
		agent: a,
		human: board.White,
		log:   zerolog.Nop(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Reset restores the initial layout and clears the history.
// The agent's value table is kept.
func (c *Controller) Reset() {
	c.board = board.NewBoard()
	c.history = nil
	c.log.Info().Msg("new game")
}

// Board returns the live board. Callers must not modify it.
func (c *Controller) Board() *board.Board {
	return c.board
}

// Agent returns the automated player.
func (c *Controller) Agent() *agent.Agent {
	return c.agent
}

// Turn returns the side to move.
func (c *Controller) Turn() board.Color {
	return c.board.Turn()
}

// HumanColor returns the side the human plays.
func (c *Controller) HumanColor() board.Color {
	return c.human
}

// HumanToMove returns true if the front end should wait for human input.
func (c *Controller) HumanToMove() bool {
	return c.board.Turn() == c.human
}

// Learning returns true if agent moves feed the value table.
func (c *Controller) Learning() bool {
	return c.reward != nil
}

// History returns the moves applied so far.
func (c *Controller) History() []board.Move {
	return append([]board.Move(nil), c.history...)
}

// SubmitMove validates and applies a human move. On error the board is
// unchanged.
func (c *Controller) SubmitMove(from, to board.Square) error {
	if !c.HumanToMove() {
		return ErrNotYourTurn
	}
	if !board.IsLegal(c.board, from, to) {
		return errors.Wrapf(ErrIllegalMove, "%s%s", from, to)
	}

	m := board.NewMove(from, to)
	c.apply(m)
	c.log.Info().Stringer("move", m).Msg("human moved")
	return nil
}

// AgentMove lets the agent play if it owns the turn. When the agent has
// no move the board and turn are left as they are and ok is false; the
// caller may try again later.
func (c *Controller) AgentMove() (m board.Move, ok bool) {
	if c.HumanToMove() {
		return board.Move{}, false
	}

	color := c.board.Turn()
	m, ok = c.agent.SelectAction(c.board, color)
	if !ok {
		return board.Move{}, false
	}

	state := c.board.Key()
	var reward float64
	if c.reward != nil {
		reward = c.reward(c.board, m)
	}

	c.apply(m)
	c.log.Info().Stringer("move", m).Str("color", color.String()).Msg("agent moved")

	if c.reward != nil {
		c.agent.RecordTransition(state, m, reward, c.board.Key())
	}
	return m, true
}

// KingCaptured reports a side whose king is no longer on the board.
func (c *Controller) KingCaptured() (board.Color, bool) {
	for _, color := range []board.Color{board.White, board.Black} {
		if !c.board.HasKing(color) {
			return color, true
		}
	}
	return board.White, false
}

func (c *Controller) apply(m board.Move) {
	c.board.Apply(m)
	c.board.SwitchTurn()
	c.history = append(c.history, m)
}
