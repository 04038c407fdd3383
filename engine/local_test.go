package engine

import (
	"testing"

	"tictacchess/game"
	"tictacchess/searcher"
	"tictacchess/searcher/agent"

	"github.com/stretchr/testify/require"
)

func newAgent(difficulty searcher.Difficulty, seed uint64) agent.Agent {
	return agent.NewAgent(searcher.New(searcher.WithSeed(seed), searcher.WithDepth(2), searcher.WithMetrics()), difficulty)
}

func TestLocalEngine(t *testing.T) {
	t.Run("easy self-play", func(t *testing.T) {
		e := LocalEngine(newAgent(searcher.Easy, 1), newAgent(searcher.Easy, 2))
		result, gameMetric, moveMetrics := e.Run()

		require.Equal(t, e.State.Result, result)
		require.Equal(t, len(e.State.History), gameMetric.TotalMoves)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, "white", gameMetric.StartingPlayer)
		require.Equal(t, result.String(), gameMetric.Winner)
		require.LessOrEqual(t, gameMetric.TotalMoves, MaxTurns)
		if result == game.InProgress {
			require.Equal(t, MaxTurns, gameMetric.TotalMoves)
		}

		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			require.Equal(t, e.State.History[i].String(), mm.Move)
		}
	})

	t.Run("players alternate", func(t *testing.T) {
		e := LocalEngine(newAgent(searcher.Medium, 3), newAgent(searcher.Easy, 4))
		_, _, moveMetrics := e.Run()

		for i, mm := range moveMetrics {
			want := game.White
			if i%2 == 1 {
				want = game.Black
			}
			require.Equal(t, want.String(), mm.Player)
		}
	})

	t.Run("metrics follow each agent", func(t *testing.T) {
		e := LocalEngine(newAgent(searcher.Hard, 5), newAgent(searcher.Easy, 6))
		_, _, moveMetrics := e.Run()

		require.NotEmpty(t, moveMetrics)
		for i, mm := range moveMetrics {
			if i%2 == 0 {
				require.Equal(t, "hard", mm.Difficulty)
				require.Equal(t, 2, mm.Depth)
				require.Greater(t, mm.Nodes, 0)
			} else {
				require.Equal(t, "easy", mm.Difficulty)
				require.Zero(t, mm.Nodes)
			}
		}
	})
}
