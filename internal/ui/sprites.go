// Package ui implements the chess board window using Ebitengine.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hailam/qchess/internal/board"
	"github.com/rs/zerolog/log"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// tokenSVG is the disc every piece is drawn on; the letter goes on top.
const tokenSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<circle cx="50" cy="50" r="40" fill="%s" stroke="%s" stroke-width="5"/>
</svg>`

// tokenStyle is the fill, outline and letter color for one side.
type tokenStyle struct {
	fill, stroke string
	letter       color.RGBA
}

var tokenStyles = [2]tokenStyle{
	board.White: {fill: "#f4f1ea", stroke: "#2b2b2b", letter: color.RGBA{30, 30, 30, 255}},
	board.Black: {fill: "#2b2b2b", stroke: "#f4f1ea", letter: color.RGBA{240, 240, 240, 255}},
}

// SpriteManager manages piece tokens.
type SpriteManager struct {
	tokens      [2]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
	scale       float64 // HiDPI scale factor
}

// NewSpriteManager creates a new sprite manager with tokens of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
		scale:       1.0,
	}
	sm.loadTokens()
	return sm
}

// SetScale sets the HiDPI scale factor.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.scale = scale
}

// loadTokens rasterizes the token SVG once per color.
func (sm *SpriteManager) loadTokens() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, c := range []board.Color{board.White, board.Black} {
		style := tokenStyles[c]
		src := fmt.Sprintf(tokenSVG, style.fill, style.stroke)

		icon, err := oksvg.ReadIconStream(strings.NewReader(src))
		if err != nil {
			log.Warn().Err(err).Stringer("color", c).Msg("failed to parse token SVG")
			continue
		}
		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.tokens[c] = ebiten.NewImageFromImage(rgba)
	}
}

// DrawPieceAt draws a piece at the given pixel coordinates (already scaled).
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	if p.IsEmpty() {
		return
	}

	if token := sm.tokens[p.Color]; token != nil {
		op := &ebiten.DrawImageOptions{}
		scale := sm.scale / sm.renderScale
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(x), float64(y))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(token, op)
	}

	face := GetFaceWithSize(float64(sm.size) * 0.45 * sm.scale)
	if face == nil {
		return
	}
	half := float64(sm.size) * sm.scale / 2
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+half, float64(y)+half)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(tokenStyles[p.Color].letter)
	text.Draw(screen, strings.ToUpper(p.String()), face, op)
}

// Size returns the size of piece tokens.
func (sm *SpriteManager) Size() int {
	return sm.size
}
