package board

// pawnDirection is the row delta of a single pawn advance.
// White's pawns sit on the high rows and move toward row 0.
var pawnDirection = [2]int{White: -1, Black: 1}

// pawnStartRow is the row from which a two-square advance is allowed.
var pawnStartRow = [2]int{White: 6, Black: 1}

// IsLegal reports whether the piece on from may move to to.
// Only the simplified rule set is checked: no castling, en passant,
// promotion or check detection. A king may be captured.
func IsLegal(b *Board, from, to Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}

	piece := b.At(from)
	target := b.At(to)

	if piece.IsEmpty() {
		return false
	}
	// No self-capture. This also rules out from == to.
	if !target.IsEmpty() && target.Color == piece.Color {
		return false
	}

	dRow := to.Row - from.Row
	dCol := to.Col - from.Col

	switch piece.Type {
	case Pawn:
		return isLegalPawn(b, piece.Color, from, to, dRow, dCol)
	case Knight:
		aRow, aCol := abs(dRow), abs(dCol)
		return (aRow == 2 && aCol == 1) || (aRow == 1 && aCol == 2)
	case Bishop:
		return isDiagonal(dRow, dCol) && !isPathBlocked(b, from, to)
	case Rook:
		return isStraight(dRow, dCol) && !isPathBlocked(b, from, to)
	case Queen:
		return (isStraight(dRow, dCol) || isDiagonal(dRow, dCol)) && !isPathBlocked(b, from, to)
	case King:
		return max(abs(dRow), abs(dCol)) == 1
	}
	return false
}

func isLegalPawn(b *Board, c Color, from, to Square, dRow, dCol int) bool {
	dir := pawnDirection[c]
	target := b.At(to)

	// Single advance
	if dCol == 0 && dRow == dir && target.IsEmpty() {
		return true
	}

	// Double advance from the start row
	if dCol == 0 && dRow == 2*dir && from.Row == pawnStartRow[c] {
		mid := NewSquare(from.Row+dir, from.Col)
		if b.At(mid).IsEmpty() && target.IsEmpty() {
			return true
		}
	}

	// Diagonal capture
	if abs(dCol) == 1 && dRow == dir && !target.IsEmpty() && target.Color != c {
		return true
	}

	return false
}

func isStraight(dRow, dCol int) bool {
	return (dRow == 0) != (dCol == 0)
}

func isDiagonal(dRow, dCol int) bool {
	return dRow != 0 && abs(dRow) == abs(dCol)
}

// isPathBlocked reports whether any square strictly between from and to is
// occupied. It walks one square at a time along the sign of each delta;
// the endpoints are never inspected.
func isPathBlocked(b *Board, from, to Square) bool {
	stepRow := sign(to.Row - from.Row)
	stepCol := sign(to.Col - from.Col)

	row, col := from.Row+stepRow, from.Col+stepCol
	for row != to.Row || col != to.Col {
		if !b.cells[row][col].IsEmpty() {
			return true
		}
		row += stepRow
		col += stepCol
	}
	return false
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
