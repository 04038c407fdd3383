package engine

import (
	"time"

	"tictacchess/experiments/metrics"
	"tictacchess/game"
)

// MaxTurns bounds a game; repetition draws normally end games long before.
const MaxTurns = 500

type Engine interface {
	// Run plays a game till there's a result or MaxTurns moves were made
	Run() (result game.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

func gameMetric(start *game.GameState, end *game.GameState, startTime time.Time) metrics.GameMetric {
	endTime := time.Now()
	return metrics.GameMetric{
		StartingPlayer: start.Turn.String(),
		Winner:         end.Result.String(),
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     len(end.History) - len(start.History),
	}
}
