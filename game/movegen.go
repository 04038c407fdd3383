package game

// LegalMoves returns every legal placement and relocation for color c.
// Order is deterministic: placements by kind then square, then relocations by origin then destination.
func LegalMoves(gs *GameState, c Color) []Move {
	var moves []Move

	kinds := gs.Hands[c].Distinct()
	for _, k := range kinds {
		for _, sq := range allSquares {
			if gs.Board.At(sq) == nil {
				moves = append(moves, NewPlacement(k, sq))
			}
		}
	}

	for _, from := range allSquares {
		p := gs.Board.At(from)
		if p == nil || p.Color != c {
			continue
		}
		for _, to := range allSquares {
			if Validate(gs, *p, from, to) != nil {
				continue
			}
			m := NewRelocation(p.Kind, from, to)
			m.PieceID = p.ID
			m.Captured = gs.Board.At(to)
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMove reports whether color c has at least one legal move.
func HasLegalMove(gs *GameState, c Color) bool {
	if len(gs.Hands[c]) > 0 {
		for _, sq := range allSquares {
			if gs.Board.At(sq) == nil {
				return true
			}
		}
	}
	for _, from := range allSquares {
		p := gs.Board.At(from)
		if p == nil || p.Color != c {
			continue
		}
		for _, to := range allSquares {
			if Validate(gs, *p, from, to) == nil {
				return true
			}
		}
	}
	return false
}
