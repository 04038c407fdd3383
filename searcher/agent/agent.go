package agent

import (
	"tictacchess/experiments/metrics"
	"tictacchess/game"
	"tictacchess/searcher"
)

type Agent interface {
	// FindMove returns the agent's move and the search metrics (if collected) behind it
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error)
	Difficulty() searcher.Difficulty
}

type searchAgent struct {
	finder     searcher.MoveFinder
	difficulty searcher.Difficulty
}

// NewAgent returns an agent that always plays at the given difficulty.
func NewAgent(finder searcher.MoveFinder, difficulty searcher.Difficulty) Agent {
	return searchAgent{finder: finder, difficulty: difficulty}
}

func (a searchAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	return a.finder.FindMove(state, a.difficulty)
}

func (a searchAgent) Difficulty() searcher.Difficulty {
	return a.difficulty
}
