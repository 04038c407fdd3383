package game

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Result int

const (
	InProgress Result = iota
	WhiteWins
	BlackWins
	Draw
)

func WinFor(c Color) Result {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

func (r Result) String() string {
	switch r {
	case InProgress:
		return ""
	case WhiteWins:
		return "white"
	case BlackWins:
		return "black"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// PawnDirs holds the forward row delta of each color's pawns, indexed by Color.
type PawnDirs [2]int

const (
	StatusDraw       = "Draw by threefold repetition."
	StatusStalemate  = "Draw: no legal moves."
	statusWinPattern = "%s wins!"
	statusTurn       = "%s to move."
)

// GameState represents the full position at any point of the game.
type GameState struct {
	Board          Board          `json:"board"`
	Hands          [2]Hand        `json:"hands"`
	PawnDirs       PawnDirs       `json:"pawnDirs"`
	Turn           Color          `json:"turn"`
	Result         Result         `json:"result"`
	WinningLine    []Square       `json:"winningLine"`
	History        []Move         `json:"history"`
	Status         string         `json:"status"`
	Mode           string         `json:"mode"`       // Opaque to the rules
	Difficulty     string         `json:"difficulty"` // Opaque to the rules
	// PositionCounts maps canonical keys to how often the position occurred with the side to move.
	PositionCounts map[string]int `json:"-"`
	NextID         PieceID        `json:"-"`
}

type StateOption func(gs *GameState)

// WithHandCount overrides how many pieces of each kind both players start with.
func WithHandCount(n int) StateOption {
	return func(gs *GameState) {
		if n > 0 {
			gs.Hands = [2]Hand{NewHand(n), NewHand(n)}
		}
	}
}

func WithTags(mode, difficulty string) StateOption {
	return func(gs *GameState) {
		gs.Mode = mode
		gs.Difficulty = difficulty
	}
}

// NewGameState returns the starting position: empty board, full hands, White to move.
func NewGameState(options ...StateOption) *GameState {
	gs := &GameState{
		Hands:    [2]Hand{NewHand(DefaultHandCount), NewHand(DefaultHandCount)},
		PawnDirs: PawnDirs{White: -1, Black: 1},
		Turn:     White,
		NextID:   1,
	}
	for _, option := range options {
		option(gs)
	}
	gs.Status = fmt.Sprintf(statusTurn, capitalize(gs.Turn.String()))
	gs.PositionCounts = map[string]int{gs.Key(): 1}
	return gs
}

func (gs *GameState) Copy() *GameState {
	out := *gs
	out.Hands = [2]Hand{slices.Clone(gs.Hands[White]), slices.Clone(gs.Hands[Black])}
	out.WinningLine = slices.Clone(gs.WinningLine)
	out.History = slices.Clone(gs.History)
	out.PositionCounts = maps.Clone(gs.PositionCounts)
	return &out
}

func (gs *GameState) IsOver() bool {
	return gs.Result != InProgress
}

func (gs *GameState) LegalMoves() []Move {
	if gs.IsOver() {
		return nil
	}
	return LegalMoves(gs, gs.Turn)
}

// Play returns the state after move; gs is left untouched.
func (gs *GameState) Play(move Move) *GameState {
	return Apply(gs, move)
}

// Key is the canonical repetition key of the position.
func (gs *GameState) Key() string {
	return CanonicalKey(gs.Board, gs.Hands, gs.Turn, gs.PawnDirs)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
