package agent

import (
	"tictacchess/experiments/metrics"
	"tictacchess/game"
	"tictacchess/searcher"
)

type openingAgent struct {
	Agent
	opening Agent
	plies   int
}

// NewOpeningAgent plays the first plies moves of a game with opening and the rest with main.
// Medium and Hard are deterministic, so experiments use a seeded Easy opening to get distinct games.
func NewOpeningAgent(main Agent, opening Agent, plies int) Agent {
	return openingAgent{Agent: main, opening: opening, plies: plies}
}

func (a openingAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	if len(state.History) < a.plies {
		return a.opening.FindMove(state)
	}
	return a.Agent.FindMove(state)
}

func (a openingAgent) Difficulty() searcher.Difficulty {
	return a.Agent.Difficulty()
}
