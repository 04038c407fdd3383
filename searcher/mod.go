package searcher

import (
	"errors"
	"fmt"
	"strings"

	"tictacchess/experiments/metrics"
	"tictacchess/game"
)

// ErrNoLegalMoves signals that the side to move cannot move; callers treat it as a draw.
var ErrNoLegalMoves = errors.New("no legal moves")

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// MoveFinder is anything that can pick a move for the side to move.
type MoveFinder interface {
	FindMove(state *game.GameState, difficulty Difficulty) (game.Move, metrics.SearchMetric, error)
}
