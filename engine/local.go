package engine

import (
	"errors"
	"fmt"
	"time"

	"tictacchess/experiments/metrics"
	"tictacchess/game"
	"tictacchess/searcher"
	"tictacchess/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Local plays two agents against each other in process.
type Local struct {
	State  *game.GameState
	Agents [2]agent.Agent // Indexed by game.Color
}

func LocalEngine(white, black agent.Agent, options ...game.StateOption) *Local {
	return &Local{
		State:  game.NewGameState(options...),
		Agents: [2]agent.Agent{white, black},
	}
}

// Run executes the entire game loop until a result or MaxTurns.
func (e *Local) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric) {
	start := e.State
	startTime := time.Now()
	log.Info().Msgf("%s (%s) vs %s (%s), %s starts", game.White, e.Agents[game.White].Difficulty(),
		game.Black, e.Agents[game.Black].Difficulty(), start.Turn)

	var moveMetrics []metrics.MoveMetric
	for turn := 1; !e.State.IsOver() && turn <= MaxTurns; turn++ {
		player := e.State.Turn
		move, searchMetric, err := e.Agents[player].FindMove(e.State)
		if errors.Is(err, searcher.ErrNoLegalMoves) {
			// Apply already declares these positions drawn; reaching this means the rules changed.
			log.Warn().Msgf("%s has no legal moves at turn %d, scoring a draw", player, turn)
			e.State = e.State.Copy()
			e.State.Result = game.Draw
			e.State.Status = game.StatusStalemate
			break
		}
		if err != nil {
			panic(fmt.Sprintf("agent for %s failed: %v", player, err))
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		e.State = e.State.Play(move)
		log.Debug().Msgf("turn %d: %s played %s", turn, player, move)
	}

	if e.State.IsOver() {
		log.Info().Msgf("game ended after %d moves: %s", len(e.State.History), e.State.Status)
	} else {
		log.Info().Msgf("stopped after %d turns without a result", MaxTurns)
	}
	return e.State.Result, gameMetric(start, e.State, startTime), moveMetrics
}
