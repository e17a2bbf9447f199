// Package console implements a line-oriented front end: the human types
// moves, the agent answers.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hailam/qchess/internal/board"
	"github.com/hailam/qchess/internal/game"
	"github.com/hailam/qchess/internal/storage"
	"github.com/rs/zerolog"
)

// Console drives a Controller from text commands.
type Console struct {
	ctrl        *game.Controller
	store       *storage.Storage
	out         io.Writer
	maxAttempts int
	log         zerolog.Logger

	started  time.Time
	gameOver bool
}

// New creates a console. store may be nil, in which case games are not recorded.
func New(ctrl *game.Controller, store *storage.Storage, out io.Writer, maxAttempts int, log zerolog.Logger) *Console {
	return &Console{
		ctrl:        ctrl,
		store:       store,
		out:         out,
		maxAttempts: max(maxAttempts, 1),
		log:         log,
		started:     time.Now(),
	}
}

// Run reads commands from in until EOF or "quit".
func (c *Console) Run(in io.Reader) error {
	c.println(c.ctrl.Board().String())
	c.agentTurn()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "quit", "exit":
			c.finish(storage.Unfinished)
			return nil
		case "new":
			c.handleNewGame()
		case "d", "board":
			c.println(c.ctrl.Board().String())
		case "moves":
			c.handleMoves()
		case "move":
			if len(args) != 1 {
				c.println("usage: move e2e4")
				continue
			}
			c.handleMove(args[0])
		case "go":
			c.agentTurn()
		case "stats":
			c.handleStats()
		case "help":
			c.handleHelp()
		default:
			if len(cmd) == 4 {
				c.handleMove(cmd)
				continue
			}
			c.printf("unknown command: %s\n", cmd)
		}
	}

	c.finish(storage.Unfinished)
	return scanner.Err()
}

func (c *Console) handleHelp() {
	c.println("commands:")
	c.println("  e2e4 | move e2e4   play a move")
	c.println("  moves              list your legal moves")
	c.println("  d | board          show the board")
	c.println("  go                 ask the agent to move again")
	c.println("  new                start a new game")
	c.println("  stats              show recorded results")
	c.println("  quit               leave")
}

func (c *Console) handleNewGame() {
	c.finish(storage.Unfinished)
	c.ctrl.Reset()
	c.gameOver = false
	c.started = time.Now()
	c.println(c.ctrl.Board().String())
	c.agentTurn()
}

func (c *Console) handleMoves() {
	moves := board.MovesFor(c.ctrl.Board(), c.ctrl.HumanColor())
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	c.printf("%d moves: %s\n", len(moves), strings.Join(names, " "))
}

func (c *Console) handleMove(s string) {
	if c.gameOver {
		c.println("game over, type new to play again")
		return
	}

	m, err := board.ParseMove(s)
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	if err := c.ctrl.SubmitMove(m.From, m.To); err != nil {
		c.printf("error: %v\n", err)
		return
	}
	c.printf("you: %s\n", m)

	if c.checkGameEnd() {
		return
	}
	c.agentTurn()
}

// agentTurn asks the agent for a move up to maxAttempts times. The agent
// returns nothing for positions it has never valued unless it happens to
// explore.
func (c *Console) agentTurn() {
	if c.gameOver || c.ctrl.HumanToMove() {
		return
	}

	for i := 0; i < c.maxAttempts; i++ {
		m, ok := c.ctrl.AgentMove()
		if !ok {
			continue
		}
		c.log.Debug().Int("attempts", i+1).Msg("agent found a move")
		c.printf("agent: %s\n", m)
		c.println(c.ctrl.Board().String())
		c.checkGameEnd()
		return
	}

	c.printf("agent has no move after %d attempts, type go to retry\n", c.maxAttempts)
}

func (c *Console) checkGameEnd() bool {
	lost, ok := c.ctrl.KingCaptured()
	if !ok {
		return false
	}

	c.printf("game over: %s king captured\n", lost)
	if lost == c.ctrl.HumanColor() {
		c.finish(storage.AgentWon)
	} else {
		c.finish(storage.HumanWon)
	}
	c.gameOver = true
	return true
}

// finish records the current game once. Games without moves are skipped.
func (c *Console) finish(outcome storage.Outcome) {
	if c.gameOver || c.store == nil {
		return
	}
	moves := len(c.ctrl.History())
	if moves == 0 {
		return
	}

	err := c.store.RecordGame(storage.GameResult{
		Outcome:  outcome,
		Moves:    moves,
		Duration: time.Since(c.started),
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to record game")
	}
}

func (c *Console) handleStats() {
	if c.store == nil {
		c.println("no storage")
		return
	}
	stats, err := c.store.LoadStats()
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	tbl := c.ctrl.Agent().Table()
	c.printf("games %d  you %d  agent %d  unfinished %d  win rate %.1f%%\n",
		stats.GamesPlayed, stats.HumanWins, stats.AgentWins, stats.Unfinished, stats.GetWinRate())
	c.printf("value table: %d states, %d entries\n", tbl.States(), tbl.Size())
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
