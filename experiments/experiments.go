package experiments

import (
	"fmt"

	"tictacchess/engine"
	"tictacchess/experiments/metrics"
	"tictacchess/game"
	"tictacchess/searcher"
	"tictacchess/searcher/agent"

	"github.com/rs/zerolog/log"
)

const (
	NumGames     = 20 // Per match up, colors alternate
	OpeningPlies = 2  // Random moves at the start of each game, see agent.NewOpeningAgent
)

var difficultyConfigs = []metrics.AgentConfig{
	{ID: 1, Difficulty: "easy", Seed: 1},
	{ID: 2, Difficulty: "medium", Seed: 2},
	{ID: 3, Difficulty: "hard", Depth: searcher.DefaultDepth, Seed: 3},
}

// RunDifficultyExperiment plays every difficulty against every other.
func RunDifficultyExperiment(root string) (string, error) {
	matchUps := [][2]metrics.AgentConfig{}
	for i, config1 := range difficultyConfigs {
		for _, config2 := range difficultyConfigs[i+1:] {
			matchUps = append(matchUps, [2]metrics.AgentConfig{config1, config2})
		}
	}
	return Run(root, "difficulty", difficultyConfigs, matchUps, NumGames)
}

// RunDepthExperiment pairs Hard at increasing depths against the Medium baseline.
func RunDepthExperiment(root string) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Difficulty: "medium", Seed: 1}
	depthConfigs := []metrics.AgentConfig{}
	for depth := 1; depth <= 4; depth++ {
		depthConfigs = append(depthConfigs, metrics.AgentConfig{ID: depth, Difficulty: "hard", Depth: depth, Seed: uint64(depth)})
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Run(root, "depth", append(depthConfigs, baseline), matchUps, NumGames)
}

// Run plays games per matchup and writes the agent configs, game records and move records
// under root/name/<timestamp>, which it returns.
func Run(root, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < games; i++ {
			white, black := matchup[0], matchup[1]
			if i%2 == 1 {
				white, black = black, white
			}

			result, gameMetric, moveMetrics, err := runGame(white, black, i)
			if err != nil {
				return "", err
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     white.ID,
				Agent2:     black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with result: %s", mi+1, len(matchUps), i+1, describe(result))
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored %d games and %d moves in %s", len(gameRecords), len(moveRecords), writer.Dir())
	return writer.Dir(), nil
}

// runGame plays a single game; round varies the seeds so repeated matchups differ.
func runGame(white, black metrics.AgentConfig, round int) (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	whiteAgent, err := createAgent(white, round)
	if err != nil {
		return game.InProgress, metrics.GameMetric{}, nil, err
	}
	blackAgent, err := createAgent(black, round)
	if err != nil {
		return game.InProgress, metrics.GameMetric{}, nil, err
	}

	result, gameMetric, moveMetrics := engine.LocalEngine(whiteAgent, blackAgent).Run()
	return result, gameMetric, moveMetrics, nil
}

func createAgent(config metrics.AgentConfig, round int) (agent.Agent, error) {
	difficulty, err := searcher.ParseDifficulty(config.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}

	seed := config.Seed*1000 + uint64(round)
	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}

	player := agent.NewAgent(searcher.New(options...), difficulty)
	if difficulty == searcher.Easy {
		return player, nil
	}
	opening := agent.NewAgent(searcher.New(searcher.WithSeed(seed)), searcher.Easy)
	return agent.NewOpeningAgent(player, opening, OpeningPlies), nil
}

func describe(result game.Result) string {
	if result == game.InProgress {
		return "turn limit"
	}
	return result.String()
}
