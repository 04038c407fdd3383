package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalKey(t *testing.T) {
	t.Run("hand order does not matter", func(t *testing.T) {
		var b Board
		a := CanonicalKey(b, [2]Hand{{Pawn, Rook}, {Knight}}, White, PawnDirs{-1, 1})
		c := CanonicalKey(b, [2]Hand{{Rook, Pawn}, {Knight}}, White, PawnDirs{-1, 1})

		require.Equal(t, a, c)
	})

	t.Run("piece ids do not matter", func(t *testing.T) {
		var a, b Board
		a[1][1] = &Piece{Kind: Rook, Color: White, ID: 3}
		b[1][1] = &Piece{Kind: Rook, Color: White, ID: 17}

		require.Equal(t, CanonicalKey(a, [2]Hand{}, Black, PawnDirs{-1, 1}), CanonicalKey(b, [2]Hand{}, Black, PawnDirs{-1, 1}))
	})

	t.Run("every compared component changes the key", func(t *testing.T) {
		var b Board
		hands := [2]Hand{{Pawn}, {Rook}}
		base := CanonicalKey(b, hands, White, PawnDirs{-1, 1})

		moved := b
		moved[0][0] = &Piece{Kind: Pawn, Color: White}
		require.NotEqual(t, base, CanonicalKey(moved, hands, White, PawnDirs{-1, 1}), "board")
		require.NotEqual(t, base, CanonicalKey(b, [2]Hand{{Rook}, {Pawn}}, White, PawnDirs{-1, 1}), "hands per color")
		require.NotEqual(t, base, CanonicalKey(b, hands, Black, PawnDirs{-1, 1}), "side to move")
		require.NotEqual(t, base, CanonicalKey(b, hands, White, PawnDirs{1, 1}), "pawn directions")
	})

	t.Run("owner of a piece matters", func(t *testing.T) {
		var a, b Board
		a[2][3] = &Piece{Kind: Bishop, Color: White}
		b[2][3] = &Piece{Kind: Bishop, Color: Black}

		require.NotEqual(t, CanonicalKey(a, [2]Hand{}, White, PawnDirs{-1, 1}), CanonicalKey(b, [2]Hand{}, White, PawnDirs{-1, 1}))
	})
}
