package searcher

import "tictacchess/game"

// random picks uniformly among moves.
func (s *Searcher) random(moves []game.Move) game.Move {
	return moves[s.rng.Intn(len(moves))]
}
