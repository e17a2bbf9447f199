package board

import (
	"fmt"
	"strings"
)

// StartLayout is the initial placement, row 0 first.
var StartLayout = []string{
	"rnbqkbnr",
	"pppppppp",
	"........",
	"........",
	"........",
	"........",
	"PPPPPPPP",
	"RNBQKBNR",
}

// StateKey is a deterministic encoding of all 64 cells, row-major.
// Boards with identical placement produce equal keys.
type StateKey string

// Board holds the 8x8 grid and the side to move.
type Board struct {
	cells [8][8]Piece
	turn  Color
}

// NewBoard creates the starting position with White to move.
func NewBoard() *Board {
	b, _ := ParseBoard(StartLayout)
	return b
}

// EmptyBoard creates a board with no pieces and White to move.
func EmptyBoard() *Board {
	return &Board{turn: White}
}

// ParseBoard builds a board from eight rows of eight letters each,
// row 0 first. '.' marks an empty square.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) != 8 {
		return nil, fmt.Errorf("invalid layout: %d rows", len(rows))
	}

	b := EmptyBoard()
	for r, line := range rows {
		if len(line) != 8 {
			return nil, fmt.Errorf("invalid layout: row %d has %d cells", r, len(line))
		}
		for c := 0; c < 8; c++ {
			ch := line[c]
			p := PieceFromChar(ch)
			if p.IsEmpty() && ch != '.' {
				return nil, fmt.Errorf("invalid layout: unknown piece %q at row %d", ch, r)
			}
			b.cells[r][c] = p
		}
	}
	return b, nil
}

// At returns the occupant of the square.
func (b *Board) At(sq Square) Piece {
	return b.cells[sq.Row][sq.Col]
}

// Set places p on the square, replacing whatever was there.
func (b *Board) Set(sq Square, p Piece) {
	b.cells[sq.Row][sq.Col] = p
}

// Apply relocates the occupant of m.From to m.To, capturing anything there,
// and leaves m.From empty. It does not check legality and does not change
// the side to move.
func (b *Board) Apply(m Move) {
	p := b.At(m.From)
	b.Set(m.From, Empty)
	b.Set(m.To, p)
}

// Turn returns the side to move.
func (b *Board) Turn() Color {
	return b.turn
}

// SetTurn sets the side to move.
func (b *Board) SetTurn(c Color) {
	b.turn = c
}

// SwitchTurn hands the move to the other side.
func (b *Board) SwitchTurn() {
	b.turn = b.turn.Other()
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Key returns the StateKey snapshot of the current placement.
func (b *Board) Key() StateKey {
	var sb strings.Builder
	sb.Grow(64)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			sb.WriteByte(b.cells[r][c].Char())
		}
	}
	return StateKey(sb.String())
}

// HasKing returns true if a king of the given color is on the board.
func (b *Board) HasKing(c Color) bool {
	king := NewPiece(King, c)
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			if b.cells[r][col] == king {
				return true
			}
		}
	}
	return false
}

// Count returns the number of pieces of the given color.
func (b *Board) Count(c Color) int {
	n := 0
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			p := b.cells[r][col]
			if !p.IsEmpty() && p.Color == c {
				n++
			}
		}
	}
	return n
}

// String returns an ASCII diagram of the board, row 0 on top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  +-----------------+\n")
	for r := 0; r < 8; r++ {
		fmt.Fprintf(&sb, "%d | ", 8-r)
		for c := 0; c < 8; c++ {
			sb.WriteByte(b.cells[r][c].Char())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    a b c d e f g h\n")
	fmt.Fprintf(&sb, "%s to move\n", b.turn)
	return sb.String()
}
