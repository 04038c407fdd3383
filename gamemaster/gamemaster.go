package gamemaster

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"tictacchess/game"
	"tictacchess/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrSessionNotFound = errors.New("game not found")
	ErrGameOver        = errors.New("game is over")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrSearchInFlight  = errors.New("AI is already thinking")
	ErrStaleSearch     = errors.New("game changed while the AI was thinking")
	ErrIllegalMove     = errors.New("illegal move")
	ErrUnknownMode     = errors.New("unknown mode")
)

// Mode decides who may move in a session.
type Mode string

const (
	ModeLocal  Mode = "local"  // Both sides play on one device
	ModeAI     Mode = "ai"     // The human plays White against the AI
	ModeOnline Mode = "online" // Two peers relay moves through the server
)

// AIColor is the side the AI plays in ModeAI.
const AIColor = game.Black

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLocal, ModeAI, ModeOnline:
		return m, nil
	case "":
		return ModeLocal, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMode, s)
}

type Option func(m *Manager)

// WithThinkDelay sets the pause before Hard answers.
func WithThinkDelay(delay time.Duration) Option {
	return func(m *Manager) {
		m.thinkDelay = delay
	}
}

func WithHandCount(n int) Option {
	return func(m *Manager) {
		m.handCount = n
	}
}

func WithSearcherOptions(options ...searcher.Option) Option {
	return func(m *Manager) {
		m.searcherOptions = append(m.searcherOptions, options...)
	}
}

// Manager owns every live session.
type Manager struct {
	mu              sync.RWMutex
	sessions        map[string]*Session
	thinkDelay      time.Duration
	handCount       int
	searcherOptions []searcher.Option
}

func NewManager(options ...Option) *Manager {
	m := &Manager{
		sessions:  make(map[string]*Session),
		handCount: game.DefaultHandCount,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Create starts a new session with a fresh id.
func (m *Manager) Create(mode Mode, difficulty searcher.Difficulty) *Session {
	s := newSession(uuid.New().String(), mode, difficulty, m.handCount, m.thinkDelay, searcher.New(m.searcherOptions...))

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	log.Info().Msgf("created %s game %s at %s difficulty", mode, s.ID, difficulty)
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Remove forgets a session and closes its subscribers. A search in flight still finishes,
// but its move reaches no one.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.close()
	log.Info().Msgf("removed game %s", id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
