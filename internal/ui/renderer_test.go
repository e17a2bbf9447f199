package ui

import (
	"testing"

	"github.com/hailam/qchess/internal/board"
	"github.com/stretchr/testify/require"
)

func TestSquareMapping(t *testing.T) {
	tests := []struct {
		name    string
		flipped bool
		sq      board.Square
		x, y    int
	}{
		{"a8 top left", false, board.NewSquare(0, 0), 0, 0},
		{"e2", false, board.NewSquare(6, 4), 320, 480},
		{"h1 bottom right", false, board.NewSquare(7, 7), 560, 560},
		{"flipped h1 top left", true, board.NewSquare(7, 7), 0, 0},
		{"flipped e7", true, board.NewSquare(1, 4), 240, 480},
		{"flipped a8 bottom right", true, board.NewSquare(0, 0), 560, 560},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Renderer{boardSize: 640, squareSize: 80, flipped: tt.flipped}

			x, y := r.SquareToScreen(tt.sq)
			require.Equal(t, tt.x, x)
			require.Equal(t, tt.y, y)

			// Any point inside the square maps back to it.
			for _, d := range []int{0, 40, 79} {
				sq, ok := r.ScreenToSquare(x+d, y+d)
				require.True(t, ok)
				require.Equal(t, tt.sq, sq)
			}
		})
	}
}

func TestScreenToSquareOffBoard(t *testing.T) {
	for _, flipped := range []bool{false, true} {
		r := &Renderer{boardSize: 640, squareSize: 80, flipped: flipped}
		for _, p := range [][2]int{{-1, 0}, {0, -1}, {640, 0}, {0, 640}, {700, 700}} {
			_, ok := r.ScreenToSquare(p[0], p[1])
			require.False(t, ok, "flipped=%v point %v", flipped, p)
		}
	}
}
