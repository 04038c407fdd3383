package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"tictacchess/experiments/metrics"
	"tictacchess/searcher"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	easy := metrics.AgentConfig{ID: 1, Difficulty: "easy", Seed: 4}
	hard := metrics.AgentConfig{ID: 2, Difficulty: "hard", Depth: 1, Seed: 5}

	dir, err := Run(t.TempDir(), "smoke", []metrics.AgentConfig{easy, hard}, [][2]metrics.AgentConfig{{easy, hard}}, 2)
	require.NoError(t, err)

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, 3)

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 3)
	require.Equal(t, []string{"1", "1", "2"}, games[1][:3], "Agent1 plays white in the first game")
	require.Equal(t, []string{"2", "2", "1"}, games[2][:3], "Colors swap in the second game")

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 1)
}

func TestCreateAgent(t *testing.T) {
	a, err := createAgent(metrics.AgentConfig{ID: 1, Difficulty: "hard", Depth: 2}, 0)
	require.NoError(t, err)
	require.Equal(t, searcher.Hard, a.Difficulty())

	_, err = createAgent(metrics.AgentConfig{ID: 2, Difficulty: "impossible"}, 0)
	require.Error(t, err)
}

func TestGamesAreReproducible(t *testing.T) {
	config := metrics.AgentConfig{ID: 1, Difficulty: "easy", Seed: 1}
	_, first, _, err := runGame(config, config, 0)
	require.NoError(t, err)
	_, same, _, err := runGame(config, config, 0)
	require.NoError(t, err)
	require.Equal(t, first.TotalMoves, same.TotalMoves, "Same round, same seeds, same game")
}
