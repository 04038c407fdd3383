package config

import "tictacchess/searcher"

// MaxHandCount keeps both hands placeable on the 16 squares.
const MaxHandCount = 2

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		Server: ServerConfig{
			Addr:         ":3000",
			ThinkDelayMs: 600,
		},
		Game: GameConfig{
			HandCount:  1,
			Difficulty: searcher.Medium.String(),
			Depth:      searcher.DefaultDepth,
		},
		LogLevel: "info",
		Experiments: ExperimentConfig{
			OutputDir: "results",
		},
	}
}
