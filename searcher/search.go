package searcher

import (
	"time"

	"tictacchess/experiments/metrics"
	"tictacchess/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// Searcher picks moves for the side to move. It keeps no state between calls other than
// its random source and metrics collector, and is not safe for concurrent use.
type Searcher struct {
	depth    int
	rng      *rand.Rand
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = min(depth, MaxDepth)
		}
	}
}

// WithSeed makes Easy and Medium reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:    DefaultDepth,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		evaluate: game.EvaluateState,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// ChooseMove returns a legal move for the side to move, or ErrNoLegalMoves.
func (s *Searcher) ChooseMove(state *game.GameState, difficulty Difficulty) (game.Move, error) {
	move, _, err := s.FindMove(state, difficulty)
	return move, err
}

// FindMove returns the chosen move with the metrics collected while searching for it.
func (s *Searcher) FindMove(state *game.GameState, difficulty Difficulty) (game.Move, metrics.SearchMetric, error) {
	depth := 1
	if difficulty == Hard {
		depth = s.depth
	}
	s.metrics.Start(difficulty.String(), depth)

	moves := state.LegalMoves()
	if len(moves) == 0 {
		log.Warn().Msgf("%s has no legal moves", state.Turn)
		return game.Move{}, s.metrics.Complete(), ErrNoLegalMoves
	}

	var move game.Move
	switch difficulty {
	case Easy:
		move = s.random(moves)
	case Medium:
		move = s.medium(state, moves)
	default:
		var score float64
		move, score = s.hard(state, moves)
		s.metrics.SetScore(score)
	}

	metric := s.metrics.Complete()
	log.Debug().Msgf("%s %s chose %s among %d moves", difficulty, state.Turn, move, len(moves))
	return move, metric, nil
}
