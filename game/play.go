package game

import "fmt"

// RepetitionLimit is the number of occurrences of a position that ends the game in a draw.
const RepetitionLimit = 3

// Apply returns the state after m. It trusts that m is legal: callers validate first.
// Structurally impossible moves (placing a kind not in hand, relocating from an empty
// square) and moves on a finished game return gs unchanged.
func Apply(gs *GameState, m Move) *GameState {
	if gs.IsOver() || !m.To.InBounds() {
		return gs
	}

	next := gs.Copy()
	var (
		mover Color
		piece *Piece
	)

	switch m.Type {
	case Place:
		mover = gs.Turn
		hand, ok := gs.Hands[mover].Without(m.Kind)
		if !ok {
			return gs
		}
		next.Hands[mover] = hand
		id := m.PieceID
		if id == 0 {
			id = next.NextID
		}
		if id >= next.NextID {
			next.NextID = id + 1
		}
		piece = &Piece{Kind: m.Kind, Color: mover, ID: id}
	case Relocate:
		if !m.From.InBounds() {
			return gs
		}
		piece = gs.Board.At(m.From)
		if piece == nil {
			return gs
		}
		mover = piece.Color
		next.Board.set(m.From, nil)
	default:
		return gs
	}

	m.Kind = piece.Kind
	m.PieceID = piece.ID
	m.Captured = nil
	if captured := next.Board.At(m.To); captured != nil {
		// The kind goes back to the player who lost it.
		next.Hands[captured.Color] = next.Hands[captured.Color].With(captured.Kind)
		m.Captured = captured
	}
	next.Board.set(m.To, piece)

	if m.Type == Relocate && piece.Kind == Pawn && reachedFarEdge(m.To, next.PawnDirs[mover]) {
		next.PawnDirs[mover] = -next.PawnDirs[mover]
	}

	next.History = append(next.History, m)

	if line, ok := WinningLine(next.Board, mover); ok {
		next.Result = WinFor(mover)
		next.WinningLine = line
		next.Status = fmt.Sprintf(statusWinPattern, capitalize(mover.String()))
		return next
	}

	next.Turn = mover.Opponent()
	key := next.Key()
	next.PositionCounts[key]++
	switch {
	case next.PositionCounts[key] >= RepetitionLimit:
		next.Result = Draw
		next.Status = StatusDraw
	case !HasLegalMove(next, next.Turn):
		next.Result = Draw
		next.Status = StatusStalemate
	case m.Note != "":
		next.Status = m.Note
	default:
		next.Status = fmt.Sprintf(statusTurn, capitalize(next.Turn.String()))
	}
	return next
}

// reachedFarEdge reports whether a pawn travelling in dir stands on the last row of its travel.
func reachedFarEdge(sq Square, dir int) bool {
	if dir < 0 {
		return sq.Row == 0
	}
	return sq.Row == Size-1
}
