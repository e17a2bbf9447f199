package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, White, b.Turn())
	require.Equal(t, NewPiece(Rook, Black), b.At(NewSquare(0, 0)))
	require.Equal(t, NewPiece(King, Black), b.At(NewSquare(0, 4)))
	require.Equal(t, NewPiece(Pawn, Black), b.At(NewSquare(1, 3)))
	require.Equal(t, NewPiece(Pawn, White), b.At(NewSquare(6, 3)))
	require.Equal(t, NewPiece(Queen, White), b.At(NewSquare(7, 3)))
	require.Equal(t, NewPiece(King, White), b.At(NewSquare(7, 4)))
	require.True(t, b.At(NewSquare(4, 4)).IsEmpty())

	require.Equal(t, 16, b.Count(White))
	require.Equal(t, 16, b.Count(Black))
	require.True(t, b.HasKing(White))
	require.True(t, b.HasKing(Black))
}

func TestParseBoard(t *testing.T) {
	t.Run("round trips through the key", func(t *testing.T) {
		b, err := ParseBoard(StartLayout)
		require.NoError(t, err)
		require.Equal(t, NewBoard().Key(), b.Key())
	})

	t.Run("rejects wrong row count", func(t *testing.T) {
		_, err := ParseBoard(StartLayout[:7])
		require.Error(t, err)
	})

	t.Run("rejects short rows", func(t *testing.T) {
		rows := append([]string{}, StartLayout...)
		rows[3] = "...."
		_, err := ParseBoard(rows)
		require.Error(t, err)
	})

	t.Run("rejects unknown letters", func(t *testing.T) {
		rows := append([]string{}, StartLayout...)
		rows[3] = "...x...."
		_, err := ParseBoard(rows)
		require.Error(t, err)
	})
}

func TestApply(t *testing.T) {
	b := NewBoard()

	b.Apply(NewMove(NewSquare(6, 4), NewSquare(4, 4)))
	require.True(t, b.At(NewSquare(6, 4)).IsEmpty())
	require.Equal(t, NewPiece(Pawn, White), b.At(NewSquare(4, 4)))
	require.Equal(t, White, b.Turn(), "Apply must not flip the turn")

	// Capture overwrites the destination
	b.Apply(NewMove(NewSquare(7, 3), NewSquare(0, 3)))
	require.Equal(t, NewPiece(Queen, White), b.At(NewSquare(0, 3)))
	require.Equal(t, 15, b.Count(Black))
}

func TestSwitchTurn(t *testing.T) {
	b := NewBoard()
	b.SwitchTurn()
	require.Equal(t, Black, b.Turn())
	b.SwitchTurn()
	require.Equal(t, White, b.Turn())
}

func TestKey(t *testing.T) {
	a := NewBoard()
	b := NewBoard()
	require.Equal(t, a.Key(), b.Key())
	require.Len(t, string(a.Key()), 64)
	require.Equal(t, StateKey("rnbqkbnr"), a.Key()[:8])

	// Same placement reached by different routes
	m1 := NewMove(NewSquare(7, 1), NewSquare(5, 2))
	m2 := NewMove(NewSquare(5, 2), NewSquare(7, 1))
	a.Apply(m1)
	require.NotEqual(t, a.Key(), b.Key())
	a.Apply(m2)
	require.Equal(t, a.Key(), b.Key())
}

func TestCopy(t *testing.T) {
	a := NewBoard()
	b := a.Copy()
	b.Set(NewSquare(6, 0), Empty)
	b.SwitchTurn()

	require.Equal(t, NewPiece(Pawn, White), a.At(NewSquare(6, 0)))
	require.Equal(t, White, a.Turn())
}

func TestKingCaptureRemovesKing(t *testing.T) {
	b, err := ParseBoard([]string{
		"....k...",
		"....Q...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	})
	require.NoError(t, err)

	b.Apply(NewMove(NewSquare(1, 4), NewSquare(0, 4)))
	require.False(t, b.HasKing(Black))
	require.True(t, b.HasKing(White))
}

func TestSquareNotation(t *testing.T) {
	tests := []struct {
		sq   Square
		name string
	}{
		{NewSquare(0, 0), "a8"},
		{NewSquare(7, 7), "h1"},
		{NewSquare(6, 4), "e2"},
		{NewSquare(4, 4), "e4"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.name, tc.sq.String())
		sq, err := ParseSquare(tc.name)
		require.NoError(t, err)
		require.Equal(t, tc.sq, sq)
	}

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		_, err := ParseSquare(bad)
		require.Error(t, err, "expected %q to be rejected", bad)
	}
	require.Equal(t, "-", NewSquare(8, 0).String())
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("e2e4")
	require.NoError(t, err)
	require.Equal(t, NewMove(NewSquare(6, 4), NewSquare(4, 4)), m)
	require.Equal(t, "e2e4", m.String())

	_, err = ParseMove("e2e")
	require.Error(t, err)
	_, err = ParseMove("z2e4")
	require.Error(t, err)
}

func TestPieceChars(t *testing.T) {
	for _, ch := range []byte("PNBRQKpnbrqk") {
		p := PieceFromChar(ch)
		require.False(t, p.IsEmpty())
		require.Equal(t, ch, p.Char())
	}
	require.Equal(t, byte('.'), Empty.Char())
	require.True(t, PieceFromChar('.').IsEmpty())
	require.Equal(t, Black, PieceFromChar('q').Color)
	require.Equal(t, White, PieceFromChar('Q').Color)
}
