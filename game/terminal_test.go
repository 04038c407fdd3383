package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	require.Len(t, Lines(), 2*Size+2)
	for _, line := range Lines() {
		require.Len(t, line, Size)
	}
}

func TestWinningLine(t *testing.T) {
	t.Run("finds a full column", func(t *testing.T) {
		gs := NewGameState()
		for row, k := range Kinds {
			put(t, gs, k, Black, row, 2)
		}

		line, ok := WinningLine(gs.Board, Black)

		require.True(t, ok)
		require.Equal(t, []Square{sq(0, 2), sq(1, 2), sq(2, 2), sq(3, 2)}, line)
		_, ok = WinningLine(gs.Board, White)
		require.False(t, ok, "Line belongs to black only")
	})

	t.Run("finds the anti-diagonal", func(t *testing.T) {
		gs := NewGameState()
		for i, k := range Kinds {
			put(t, gs, k, White, i, Size-1-i)
		}

		line, ok := WinningLine(gs.Board, White)

		require.True(t, ok)
		require.Equal(t, []Square{sq(0, 3), sq(1, 2), sq(2, 1), sq(3, 0)}, line)
	})

	t.Run("three in a row is not a win", func(t *testing.T) {
		gs := NewGameState()
		put(t, gs, Rook, White, 1, 0)
		put(t, gs, Knight, White, 1, 1)
		put(t, gs, Bishop, White, 1, 2)

		_, ok := WinningLine(gs.Board, White)
		require.False(t, ok)
	})

	t.Run("an opposing piece spoils the line", func(t *testing.T) {
		gs := NewGameState()
		put(t, gs, Rook, White, 1, 0)
		put(t, gs, Knight, White, 1, 1)
		put(t, gs, Bishop, White, 1, 2)
		put(t, gs, Pawn, Black, 1, 3)

		_, ok := WinningLine(gs.Board, White)
		require.False(t, ok)
	})

	t.Run("rows are reported before columns", func(t *testing.T) {
		gs := NewGameState(WithHandCount(2))
		for col, k := range Kinds {
			put(t, gs, k, White, 0, col)
		}
		put(t, gs, Pawn, White, 1, 0)
		put(t, gs, Rook, White, 2, 0)
		put(t, gs, Knight, White, 3, 0)

		line, ok := WinningLine(gs.Board, White)

		require.True(t, ok)
		require.Equal(t, []Square{sq(0, 0), sq(0, 1), sq(0, 2), sq(0, 3)}, line)
	})
}
