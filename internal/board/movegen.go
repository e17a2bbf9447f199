package board

// MovesFrom returns every legal move of the piece on sq, destinations in
// row-major order. An empty square yields no moves.
func MovesFrom(b *Board, sq Square) []Move {
	var moves []Move
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			to := NewSquare(r, c)
			if IsLegal(b, sq, to) {
				moves = append(moves, NewMove(sq, to))
			}
		}
	}
	return moves
}

// MovesFor returns every legal move for the given side: origins in
// row-major order, then destinations in row-major order. The order is
// stable and the agent's tie-breaking depends on it.
func MovesFor(b *Board, c Color) []Move {
	var moves []Move
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			sq := NewSquare(r, col)
			p := b.At(sq)
			if p.IsEmpty() || p.Color != c {
				continue
			}
			moves = append(moves, MovesFrom(b, sq)...)
		}
	}
	return moves
}

// HasMoves returns true if the given side has at least one legal move.
func HasMoves(b *Board, c Color) bool {
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			from := NewSquare(r, col)
			p := b.At(from)
			if p.IsEmpty() || p.Color != c {
				continue
			}
			for tr := 0; tr < 8; tr++ {
				for tc := 0; tc < 8; tc++ {
					if IsLegal(b, from, NewSquare(tr, tc)) {
						return true
					}
				}
			}
		}
	}
	return false
}
