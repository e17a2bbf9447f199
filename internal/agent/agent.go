// Package agent implements the tabular Q-learning player.
package agent

import (
	"fmt"
	"time"

	"github.com/hailam/qchess/internal/board"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Config holds the learning parameters. They are fixed for the life of an Agent.
type Config struct {
	Alpha   float64 `yaml:"alpha"`   // learning rate
	Gamma   float64 `yaml:"gamma"`   // discount factor
	Epsilon float64 `yaml:"epsilon"` // exploration probability
	Seed    uint64  `yaml:"seed"`    // 0 seeds from the clock
}

// DefaultConfig returns α=0.1, γ=0.9, ε=0.1.
func DefaultConfig() Config {
	return Config{
		Alpha:   0.1,
		Gamma:   0.9,
		Epsilon: 0.1,
	}
}

// Validate checks that every parameter lies in [0, 1].
func (c Config) Validate() error {
	var errs error
	check := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = multierror.Append(errs, fmt.Errorf("agent: %s must be in [0, 1], got %g", name, v))
		}
	}
	check("alpha", c.Alpha)
	check("gamma", c.Gamma)
	check("epsilon", c.Epsilon)
	return errs
}

// Option customizes an Agent.
type Option func(a *Agent)

// WithLogger sets the logger used for per-decision debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Agent) {
		a.log = l
	}
}

// WithSource replaces the random source used for exploration.
func WithSource(src rand.Source) Option {
	return func(a *Agent) {
		if src != nil {
			a.rng = rand.New(src)
		}
	}
}

// Agent picks moves from its value table and learns from transitions.
// It is not safe for concurrent use.
type Agent struct {
	cfg   Config
	table *ValueTable
	rng   *rand.Rand
	log   zerolog.Logger
}

// New creates an agent with an empty value table.
func New(cfg Config, options ...Option) *Agent {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	a := &Agent{
		cfg:   cfg,
		table: NewValueTable(),
		rng:   rand.New(rand.NewSource(seed)),
		log:   zerolog.Nop(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Config returns the agent's parameters.
func (a *Agent) Config() Config {
	return a.cfg
}

// Table returns the agent's value table.
func (a *Agent) Table() *ValueTable {
	return a.table
}

// SelectAction chooses a move for color on b.
//
// With probability ε it returns a uniformly random legal move. Otherwise it
// returns the best recorded move for the current placement. If the
// placement has never been recorded it returns ok == false rather than
// falling back to a random move; callers then take no action this turn.
func (a *Agent) SelectAction(b *board.Board, color board.Color) (m board.Move, ok bool) {
	if a.rng.Float64() < a.cfg.Epsilon {
		moves := board.MovesFor(b, color)
		if len(moves) == 0 {
			a.log.Debug().Str("color", color.String()).Msg("explore: no legal moves")
			return board.Move{}, false
		}
		m = moves[a.rng.Intn(len(moves))]
		a.log.Debug().Str("color", color.String()).Stringer("move", m).Int("choices", len(moves)).Msg("explore")
		return m, true
	}

	m, ok = a.table.Best(b.Key())
	if !ok {
		a.log.Debug().Str("color", color.String()).Msg("exploit: unseen state")
		return board.Move{}, false
	}
	a.log.Debug().Str("color", color.String()).Stringer("move", m).Msg("exploit")
	return m, true
}

// RecordTransition applies one Q-learning update:
//
//	Q[s][a] += α · (r + γ · max Q[s'][·] − Q[s][a])
//
// Missing entries read as 0.
func (a *Agent) RecordTransition(state board.StateKey, action board.Move, reward float64, next board.StateKey) {
	current := a.table.Get(state, action)
	future := a.table.MaxValue(next)
	updated := current + a.cfg.Alpha*(reward+a.cfg.Gamma*future-current)
	a.table.Set(state, action, updated)

	a.log.Debug().
		Stringer("move", action).
		Float64("reward", reward).
		Float64("old", current).
		Float64("new", updated).
		Msg("update")
}
