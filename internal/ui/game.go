package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/qchess/internal/board"
	"github.com/hailam/qchess/internal/game"
	"github.com/hailam/qchess/internal/storage"
	"github.com/rs/zerolog"
)

// UI Constants
const (
	ScreenWidth  = 640
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / 8
)

// Game implements ebiten.Game interface.
type Game struct {
	ctrl  *game.Controller
	store *storage.Storage
	log   zerolog.Logger

	// UI state
	selected *board.Square
	targets  []board.Move
	lastMove *board.Move
	status   string

	// Components
	renderer *Renderer
	input    *InputHandler

	// Game state
	gameOver bool
	started  time.Time

	// HiDPI scaling
	scale float64
}

// NewGame creates the window state around a controller. store may be nil.
func NewGame(ctrl *game.Controller, store *storage.Storage, log zerolog.Logger) *Game {
	g := &Game{
		ctrl:     ctrl,
		store:    store,
		log:      log,
		renderer: NewRenderer(BoardSize, SquareSize),
		input:    NewInputHandler(),
		started:  time.Now(),
		scale:    1.0,
	}
	g.renderer.SetFlipped(ctrl.HumanColor() == board.Black)
	g.status = g.turnStatus()
	return g
}

// Update handles game logic updates. The agent is polled once per frame
// while it owns the turn.
func (g *Game) Update() error {
	g.input.Update()

	if IsKeyJustPressed(ebiten.KeyN) {
		g.NewGameAction()
		return nil
	}

	if g.gameOver {
		return nil
	}

	if g.ctrl.HumanToMove() {
		g.handleBoardInput()
		return nil
	}

	if m, ok := g.ctrl.AgentMove(); ok {
		g.lastMove = &m
		g.status = fmt.Sprintf("agent: %s  |  %s", m, g.turnStatus())
		g.checkGameEnd()
	}
	return nil
}

// Draw draws the board, highlights, pieces and status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	g.renderer.DrawBoard(screen)
	g.renderer.DrawHighlights(screen, g.selected, g.targets, g.lastMove)
	g.renderer.DrawPieces(screen, g.ctrl.Board())
	g.renderer.DrawStatus(screen, g.status)
}

// Layout returns the scaled screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Get and store device scale factor (2.0 on Retina, 1.0 on standard displays)
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0 // Ensure minimum scale of 1.0
	}
	g.input.SetScale(g.scale)

	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// handleBoardInput selects a piece on the first click and submits the
// move on the second.
func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() {
		return
	}

	mx, my := g.input.MousePosition()
	sq, ok := g.renderer.ScreenToSquare(mx, my)
	if !ok {
		return
	}

	piece := g.ctrl.Board().At(sq)
	if !piece.IsEmpty() && piece.Color == g.ctrl.HumanColor() {
		g.selectSquare(sq)
		return
	}

	if g.selected == nil {
		return
	}

	from := *g.selected
	g.clearSelection()
	if err := g.ctrl.SubmitMove(from, sq); err != nil {
		g.status = err.Error()
		return
	}

	m := board.NewMove(from, sq)
	g.lastMove = &m
	g.status = fmt.Sprintf("you: %s", m)
	g.checkGameEnd()
}

// selectSquare selects a square and collects its legal targets.
func (g *Game) selectSquare(sq board.Square) {
	g.selected = &sq
	g.targets = board.MovesFrom(g.ctrl.Board(), sq)
}

// clearSelection clears the current selection.
func (g *Game) clearSelection() {
	g.selected = nil
	g.targets = nil
}

func (g *Game) turnStatus() string {
	if g.ctrl.HumanToMove() {
		return fmt.Sprintf("your move (%s)", g.ctrl.HumanColor())
	}
	return "agent to move"
}

// checkGameEnd stops play once a king has been taken.
func (g *Game) checkGameEnd() {
	lost, ok := g.ctrl.KingCaptured()
	if !ok {
		return
	}

	outcome := storage.HumanWon
	if lost == g.ctrl.HumanColor() {
		outcome = storage.AgentWon
	}
	g.gameOver = true
	g.status = fmt.Sprintf("%s king captured, press N for a new game", lost)
	g.recordGame(outcome)
}

// NewGameAction resets the game to the starting position.
func (g *Game) NewGameAction() {
	if !g.gameOver {
		g.recordGame(storage.Unfinished)
	}
	g.ctrl.Reset()
	g.clearSelection()
	g.lastMove = nil
	g.gameOver = false
	g.started = time.Now()
	g.status = g.turnStatus()
}

func (g *Game) recordGame(outcome storage.Outcome) {
	moves := len(g.ctrl.History())
	if g.store == nil || moves == 0 {
		return
	}
	err := g.store.RecordGame(storage.GameResult{
		Outcome:  outcome,
		Moves:    moves,
		Duration: time.Since(g.started),
	})
	if err != nil {
		g.log.Warn().Err(err).Msg("failed to record game")
	}
}

// Close records an unfinished game.
func (g *Game) Close() {
	if !g.gameOver {
		g.recordGame(storage.Unfinished)
	}
}
