package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tictacchess/communication"
	"tictacchess/experiments/metrics"
	"tictacchess/game"
	"tictacchess/searcher/agent"

	"github.com/rs/zerolog/log"
)

var ErrDesync = errors.New("local and remote positions differ")

// Remote plays a local agent against the AI of a remote server. The server holds the
// authoritative game; State mirrors it and every step is checked against the server's key.
type Remote struct {
	State *game.GameState
	Agent agent.Agent
	Color game.Color // The side Agent plays
	Comm  communication.Communicator
}

func RemoteEngine(a agent.Agent, color game.Color, comm communication.Communicator, options ...game.StateOption) *Remote {
	return &Remote{
		State: game.NewGameState(options...),
		Agent: a,
		Color: color,
		Comm:  comm,
	}
}

func (e *Remote) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric) {
	result, gameMetric, moveMetrics, err := e.RunContext(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("remote game aborted")
	}
	return result, gameMetric, moveMetrics
}

// RunContext is Run that stops at the first transport error or desync.
func (e *Remote) RunContext(ctx context.Context) (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := e.State
	startTime := time.Now()

	var moveMetrics []metrics.MoveMetric
	for turn := 1; !e.State.IsOver() && turn <= MaxTurns; turn++ {
		var (
			move game.Move
			view communication.StateView
			err  error
		)
		player := e.State.Turn
		if player == e.Color {
			var searchMetric metrics.SearchMetric
			move, searchMetric, err = e.Agent.FindMove(e.State)
			if err != nil {
				return e.finish(start, startTime, moveMetrics, err)
			}
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         turn,
				Player:       player.String(),
				Move:         move.String(),
				SearchMetric: searchMetric,
			})
			view, err = e.Comm.SendMove(ctx, communication.FromMove(move))
		} else {
			var wire communication.WireMove
			wire, view, err = e.Comm.RequestAIMove(ctx)
			if err == nil {
				move, err = wire.ToMove()
			}
		}
		if err != nil {
			return e.finish(start, startTime, moveMetrics, fmt.Errorf("turn %d: %w", turn, err))
		}

		e.State = e.State.Play(move)
		if e.State.Key() != view.Key {
			return e.finish(start, startTime, moveMetrics, fmt.Errorf("%w after %s", ErrDesync, move))
		}
		log.Debug().Msgf("turn %d: %s played %s", turn, player, move)
	}

	return e.finish(start, startTime, moveMetrics, nil)
}

func (e *Remote) finish(start *game.GameState, startTime time.Time, moveMetrics []metrics.MoveMetric, err error) (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	return e.State.Result, gameMetric(start, e.State, startTime), moveMetrics, err
}
