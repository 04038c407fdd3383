package searcher

import "tictacchess/game"

const (
	noteWin     = "Four in a row."
	noteBlock   = "Blocking your line."
	noteCapture = "Taking a piece."
)

// medium looks one ply ahead: win now, else block a line the opponent is about to complete,
// else capture, else play at random. It does not see threats that need two moves to set up.
func (s *Searcher) medium(state *game.GameState, moves []game.Move) game.Move {
	me := state.Turn

	for _, m := range moves {
		s.metrics.AddNode()
		if game.Apply(state, m).Result == game.WinFor(me) {
			m.Note = noteWin
			return m
		}
	}

	for _, target := range threats(&state.Board, me.Opponent()) {
		for _, m := range moves {
			if m.To == target {
				m.Note = noteBlock
				return m
			}
		}
	}

	for _, m := range moves {
		if m.IsCapture() {
			m.Note = noteCapture
			return m
		}
	}

	return s.random(moves)
}

// threats returns, in line order, the empty square of every line where c holds all other squares.
func threats(b *game.Board, c game.Color) []game.Square {
	var out []game.Square
	for _, line := range game.Lines() {
		var (
			own   int
			empty []game.Square
		)
		for _, sq := range line {
			switch p := b.At(sq); {
			case p == nil:
				empty = append(empty, sq)
			case p.Color == c:
				own++
			}
		}
		if own == game.Size-1 && len(empty) == 1 {
			out = append(out, empty[0])
		}
	}
	return out
}
