package searcher

import (
	"math"

	"tictacchess/game"
)

const (
	noteWinning = "I see a winning line."
	noteLosing  = "This looks grim."
)

// hard runs alpha-beta minimax below every root move and returns the first move with the
// highest score, along with that score.
func (s *Searcher) hard(state *game.GameState, moves []game.Move) (game.Move, float64) {
	me := state.Turn
	alpha, beta := math.Inf(-1), math.Inf(1)

	best := moves[0]
	bestScore := math.Inf(-1)
	for _, m := range moves {
		score := s.alphaBeta(game.Apply(state, m), s.depth-1, alpha, beta, me)
		if score > bestScore {
			bestScore = score
			best = m
		}
		alpha = math.Max(alpha, bestScore)
	}

	switch {
	case bestScore >= game.WinScore:
		best.Note = noteWinning
	case bestScore <= -game.WinScore:
		best.Note = noteLosing
	}
	return best, bestScore
}

// alphaBeta scores state for me, maximizing on my turns and minimizing on the opponent's.
func (s *Searcher) alphaBeta(state *game.GameState, depth int, alpha, beta float64, me game.Color) float64 {
	s.metrics.AddNode()
	if depth <= 0 || state.IsOver() {
		s.metrics.AddLeaf()
		return s.leaf(state, depth, me)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		s.metrics.AddLeaf()
		return s.leaf(state, depth, me)
	}

	if state.Turn == me {
		value := math.Inf(-1)
		for _, m := range moves {
			value = math.Max(value, s.alphaBeta(game.Apply(state, m), depth-1, alpha, beta, me))
			alpha = math.Max(alpha, value)
			if beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, m := range moves {
		value = math.Min(value, s.alphaBeta(game.Apply(state, m), depth-1, alpha, beta, me))
		beta = math.Min(beta, value)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return value
}

// leaf evaluates a leaf. Wins found with more depth left to search happened sooner and
// score higher; losses found sooner score lower.
func (s *Searcher) leaf(state *game.GameState, depth int, me game.Color) float64 {
	score := s.evaluate(state, me)
	switch state.Result {
	case game.WinFor(me):
		score += float64(depth)
	case game.WinFor(me.Opponent()):
		score -= float64(depth)
	}
	return score
}
