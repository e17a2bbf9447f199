package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/qchess/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	StatusBar      color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns a black-and-white board like the classic layout.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{235, 235, 235, 255},
		DarkSquare:     color.RGBA{90, 90, 90, 255},
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		StatusBar:      color.RGBA{40, 44, 52, 200},
		TextColor:      color.RGBA{220, 220, 220, 255},
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	scale      float64 // HiDPI scale factor
	flipped    bool    // draw row 7 at the top
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// SetFlipped turns the board so the human's pieces are at the bottom.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the board squares. (0,0) is a dark square.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := r.theme.LightSquare
			if (row+col)%2 == 0 {
				c = r.theme.DarkSquare
			}
			r.highlightSquare(screen, board.NewSquare(row, col), c)
		}
	}
}

// DrawHighlights draws the last move, the selection and its targets.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected *board.Square, targets []board.Move, lastMove *board.Move) {
	if lastMove != nil {
		r.highlightSquare(screen, lastMove.From, r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To, r.theme.LastMoveColor)
	}

	if selected != nil {
		r.highlightSquare(screen, *selected, r.theme.SelectedSquare)
	}

	for _, m := range targets {
		r.drawLegalMoveIndicator(screen, m.To)
	}
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
}

// drawLegalMoveIndicator draws a circle on legal move squares.
func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	cx := r.s(x) + r.s(r.squareSize)/2
	cy := r.s(y) + r.s(r.squareSize)/2
	radius := r.s(r.squareSize) * 0.15

	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.LegalMoveColor, false)
}

// DrawPieces draws all pieces on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := board.NewSquare(row, col)
			piece := b.At(sq)
			if piece.IsEmpty() {
				continue
			}
			x, y := r.SquareToScreen(sq)
			r.sprites.DrawPieceAt(screen, piece, int(r.s(x)), int(r.s(y)))
		}
	}
}

// DrawStatus draws a one-line message across the bottom of the board.
func (r *Renderer) DrawStatus(screen *ebiten.Image, msg string) {
	if msg == "" {
		return
	}
	face := GetRegularFace()
	if face == nil {
		return
	}

	barHeight := 24
	vector.DrawFilledRect(screen, 0, r.s(r.boardSize-barHeight), r.s(r.boardSize), r.s(barHeight), r.theme.StatusBar, false)

	scaled := &text.GoTextFace{Source: face.Source, Size: face.Size * r.scale}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.s(8)), float64(r.s(r.boardSize-barHeight/2)))
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(r.theme.TextColor)
	text.Draw(screen, msg, scaled, op)
}

// SquareToScreen converts a board square to logical screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	row, col := sq.Row, sq.Col
	if r.flipped {
		row, col = 7-row, 7-col
	}
	return col * r.squareSize, row * r.squareSize
}

// ScreenToSquare converts logical screen coordinates to a board square.
// ok is false outside the board.
func (r *Renderer) ScreenToSquare(x, y int) (sq board.Square, ok bool) {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.Square{}, false
	}
	row, col := y/r.squareSize, x/r.squareSize
	if r.flipped {
		row, col = 7-row, 7-col
	}
	return board.NewSquare(row, col), true
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
