package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// ParseColor parses "white"/"black" (or "w"/"b").
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "White", "w":
		return White, true
	case "black", "Black", "b":
		return Black, true
	}
	return White, false
}

// PieceType represents the type of a chess piece.
// The zero value is NoPieceType so that a zero Piece is an empty square.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the lowercase letter for the piece type.
func (pt PieceType) Char() byte {
	chars := []byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}
	if pt > King {
		return '.'
	}
	return chars[pt]
}

// PieceValue is the material value of each piece type, in pawns.
// Indexed by PieceType; the king is worth more than everything else combined.
var PieceValue = [7]float64{0, 1, 3, 3, 5, 9, 100}

// Piece is the occupant of a square: a type and a color.
// The zero value is Empty.
type Piece struct {
	Type  PieceType
	Color Color
}

// Empty is the occupant of an unoccupied square.
var Empty = Piece{}

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	return Piece{Type: pt, Color: c}
}

// IsEmpty returns true if p is not a piece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Char returns the FEN letter for the piece.
// Uppercase for white, lowercase for black, '.' for empty.
func (p Piece) Char() byte {
	c := p.Type.Char()
	if p.Type != NoPieceType && p.Color == White {
		c -= 'a' - 'A'
	}
	return c
}

// String returns the FEN letter for the piece.
func (p Piece) String() string {
	return string(p.Char())
}

// Value returns the material value of the piece.
func (p Piece) Value() float64 {
	return PieceValue[p.Type]
}

// PieceFromChar converts a FEN letter to a Piece. Anything else is Empty.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return NewPiece(Pawn, White)
	case 'N':
		return NewPiece(Knight, White)
	case 'B':
		return NewPiece(Bishop, White)
	case 'R':
		return NewPiece(Rook, White)
	case 'Q':
		return NewPiece(Queen, White)
	case 'K':
		return NewPiece(King, White)
	case 'p':
		return NewPiece(Pawn, Black)
	case 'n':
		return NewPiece(Knight, Black)
	case 'b':
		return NewPiece(Bishop, Black)
	case 'r':
		return NewPiece(Rook, Black)
	case 'q':
		return NewPiece(Queen, Black)
	case 'k':
		return NewPiece(King, Black)
	default:
		return Empty
	}
}
