package gamemaster

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tictacchess/game"
	"tictacchess/searcher"

	"github.com/rs/zerolog/log"
)

type UpdateType string

const (
	UpdateMove  UpdateType = "move"
	UpdateReset UpdateType = "reset"
)

type Update struct {
	Type  UpdateType
	Move  game.Move // Zero for resets
	State *game.GameState
}

const subscriberBuffer = 16

// Session is one game with its authoritative state. All methods are safe for concurrent use.
type Session struct {
	ID         string
	Mode       Mode
	Difficulty searcher.Difficulty

	mu          sync.Mutex
	state       *game.GameState
	handCount   int
	thinkDelay  time.Duration
	searcher    *searcher.Searcher
	epoch       uint64 // Bumped on every change of state
	thinking    bool
	subscribers map[int]chan Update
	nextSub     int
}

func newSession(id string, mode Mode, difficulty searcher.Difficulty, handCount int, thinkDelay time.Duration, s *searcher.Searcher) *Session {
	session := &Session{
		ID:          id,
		Mode:        mode,
		Difficulty:  difficulty,
		handCount:   handCount,
		thinkDelay:  thinkDelay,
		searcher:    s,
		subscribers: make(map[int]chan Update),
	}
	session.state = session.newState()
	return session
}

func (s *Session) newState() *game.GameState {
	return game.NewGameState(game.WithHandCount(s.handCount), game.WithTags(string(s.Mode), s.Difficulty.String()))
}

// State returns a copy of the current state.
func (s *Session) State() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Copy()
}

func (s *Session) LegalMoves() []game.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LegalMoves()
}

// Validate checks m for the side to move without applying it.
func (s *Session) Validate(m game.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsOver() {
		return ErrGameOver
	}
	return game.ValidateMove(s.state, m)
}

// Play applies a move made on this server. Piece ids are minted here.
func (s *Session) Play(m game.Move) (game.Move, *game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Mode == ModeAI && s.state.Turn == AIColor {
		return game.Move{}, nil, ErrNotYourTurn
	}
	m.PieceID = 0
	return s.apply(m)
}

// ApplyRemote applies a move a peer already played, keeping the piece id it minted.
func (s *Session) ApplyRemote(m game.Move) (game.Move, *game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(m)
}

func (s *Session) apply(m game.Move) (game.Move, *game.GameState, error) {
	if s.state.IsOver() {
		return game.Move{}, nil, ErrGameOver
	}
	if err := game.ValidateMove(s.state, m); err != nil {
		return game.Move{}, nil, fmt.Errorf("%w %s: %w", ErrIllegalMove, m, err)
	}

	next := s.state.Play(m)
	if next == s.state {
		return game.Move{}, nil, fmt.Errorf("%w %s", ErrIllegalMove, m)
	}
	s.state = next
	s.epoch++

	applied := next.History[len(next.History)-1]
	s.publish(Update{Type: UpdateMove, Move: applied, State: next})
	if next.IsOver() {
		log.Info().Msgf("game %s finished: %s", s.ID, next.Status)
	}
	return applied, next.Copy(), nil
}

// RequestAIMove lets the AI play for the side to move. At most one search runs per session;
// the think delay before Hard answers ends early when ctx is done.
func (s *Session) RequestAIMove(ctx context.Context) (game.Move, *game.GameState, error) {
	s.mu.Lock()
	switch {
	case s.state.IsOver():
		s.mu.Unlock()
		return game.Move{}, nil, ErrGameOver
	case s.Mode == ModeAI && s.state.Turn != AIColor:
		s.mu.Unlock()
		return game.Move{}, nil, ErrNotYourTurn
	case s.thinking:
		s.mu.Unlock()
		return game.Move{}, nil, ErrSearchInFlight
	}
	s.thinking = true
	epoch := s.epoch
	snapshot := s.state
	s.mu.Unlock()

	move, err := s.think(ctx, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.thinking = false
	if err != nil {
		return game.Move{}, nil, err
	}
	if s.epoch != epoch {
		log.Warn().Msgf("game %s: discarding %s, the game moved on", s.ID, move)
		return game.Move{}, nil, ErrStaleSearch
	}
	return s.apply(move)
}

func (s *Session) think(ctx context.Context, state *game.GameState) (game.Move, error) {
	if s.Difficulty == searcher.Hard && s.thinkDelay > 0 {
		select {
		case <-ctx.Done():
			return game.Move{}, ctx.Err()
		case <-time.After(s.thinkDelay):
		}
	}

	move, err := s.searcher.ChooseMove(state, s.Difficulty)
	if err != nil {
		return game.Move{}, fmt.Errorf("game %s: %w", s.ID, err)
	}
	return move, nil
}

// Reset starts a rematch in place. A search in flight is discarded when it returns.
func (s *Session) Reset() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.newState()
	s.epoch++
	s.publish(Update{Type: UpdateReset, State: s.state})
	log.Info().Msgf("game %s reset", s.ID)
	return s.state.Copy()
}

// Subscribe returns a channel of applied moves and resets, and a function to stop receiving.
func (s *Session) Subscribe() (<-chan Update, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Update, subscriberBuffer)
	s.subscribers[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if ch, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(ch)
		}
	}
}

// publish must be called with s.mu held. Slow subscribers miss updates rather than block play.
func (s *Session) publish(u Update) {
	for id, ch := range s.subscribers {
		select {
		case ch <- u:
		default:
			log.Warn().Msgf("game %s: subscriber %d is full, dropping %s update", s.ID, id, u.Type)
		}
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}
