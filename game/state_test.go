package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// put moves a kind from the color's hand onto the board, keeping piece conservation intact.
func put(t *testing.T, gs *GameState, k Kind, c Color, row, col int) *Piece {
	t.Helper()
	hand, ok := gs.Hands[c].Without(k)
	require.True(t, ok, "%s must hold a %s", c, k)
	gs.Hands[c] = hand
	p := &Piece{Kind: k, Color: c, ID: gs.NextID}
	gs.NextID++
	gs.Board[row][col] = p
	return p
}

func sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// playout applies random legal moves and calls visit on every state reached.
func playout(seed uint64, plies int, visit func(gs *GameState)) {
	rng := rand.New(rand.NewSource(seed))
	gs := NewGameState()
	visit(gs)
	for i := 0; i < plies && !gs.IsOver(); i++ {
		moves := gs.LegalMoves()
		if len(moves) == 0 {
			return
		}
		gs = Apply(gs, moves[rng.Intn(len(moves))])
		visit(gs)
	}
}

func TestNewGameState(t *testing.T) {
	t.Run("starting position", func(t *testing.T) {
		gs := NewGameState()

		require.Equal(t, White, gs.Turn)
		require.Equal(t, InProgress, gs.Result)
		require.Equal(t, PawnDirs{White: -1, Black: 1}, gs.PawnDirs)
		require.ElementsMatch(t, []Kind{Pawn, Rook, Knight, Bishop}, gs.Hands[White])
		require.ElementsMatch(t, []Kind{Pawn, Rook, Knight, Bishop}, gs.Hands[Black])
		require.Equal(t, 0, gs.Board.Count(White)+gs.Board.Count(Black), "Board should start empty")
		require.Equal(t, map[string]int{gs.Key(): 1}, gs.PositionCounts, "Start position should be counted once")
		require.Equal(t, "White to move.", gs.Status)
	})

	t.Run("configurable hand count", func(t *testing.T) {
		gs := NewGameState(WithHandCount(2), WithTags("local", "hard"))

		require.Len(t, gs.Hands[White], 8)
		require.Len(t, gs.Hands[Black], 8)
		require.Equal(t, "local", gs.Mode)
		require.Equal(t, "hard", gs.Difficulty)
	})
}

func TestCopyIsIndependent(t *testing.T) {
	gs := NewGameState()
	put(t, gs, Rook, White, 0, 0)

	cp := gs.Copy()
	cp.Hands[White][0] = Bishop
	cp.Board[0][0] = nil
	cp.PositionCounts["x"] = 5

	require.NotNil(t, gs.Board[0][0], "Original board should not change")
	require.NotContains(t, gs.PositionCounts, "x", "Original counts should not change")
	require.Equal(t, Pawn, gs.Hands[White][0], "Original hand should not change")
}

func TestPlay(t *testing.T) {
	gs := NewGameState()
	before := gs.Copy()
	m := NewPlacement(Knight, sq(1, 1))

	next := gs.Play(m)

	require.Equal(t, Apply(gs, m), next)
	require.Equal(t, before, gs, "Play must leave the receiver untouched")
	require.NotEqual(t, gs.Key(), next.Key())
}
