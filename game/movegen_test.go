package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Run("opening moves are all placements", func(t *testing.T) {
		gs := NewGameState()

		moves := LegalMoves(gs, White)

		require.Len(t, moves, len(Kinds)*Size*Size)
		for _, m := range moves {
			require.Equal(t, Place, m.Type)
		}
		require.Equal(t, NewPlacement(Pawn, sq(0, 0)), moves[0], "Placements come first, by kind then square")
	})

	t.Run("duplicate kinds in hand yield one placement per square", func(t *testing.T) {
		gs := NewGameState(WithHandCount(3))

		moves := LegalMoves(gs, White)

		require.Len(t, moves, len(Kinds)*Size*Size)
	})

	t.Run("relocations carry the prospective capture", func(t *testing.T) {
		gs := NewGameState()
		rook := put(t, gs, Rook, White, 0, 0)
		victim := put(t, gs, Bishop, Black, 0, 2)

		var found bool
		for _, m := range LegalMoves(gs, White) {
			if m.Type == Relocate && m.To == sq(0, 2) {
				found = true
				require.Equal(t, victim, m.Captured)
				require.Equal(t, rook.ID, m.PieceID)
			}
			if m.Type == Relocate {
				require.NotEqual(t, sq(0, 3), m.To, "Rook cannot jump the bishop")
			} else {
				require.NotEqual(t, sq(0, 2), m.To, "Placements skip occupied squares")
			}
		}
		require.True(t, found, "Capture should be generated")
	})

	t.Run("generation is deterministic", func(t *testing.T) {
		playout(3, 40, func(gs *GameState) {
			require.Equal(t, LegalMoves(gs, gs.Turn), LegalMoves(gs, gs.Turn))
		})
	})
}

func TestLegalMovesAgreeWithValidate(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		playout(seed, 80, func(gs *GameState) {
			for _, m := range LegalMoves(gs, gs.Turn) {
				if m.Type == Place {
					require.NoError(t, ValidatePlacement(gs, gs.Turn, m.Kind, m.To), "placement %s", m)
					continue
				}
				p := gs.Board.At(m.From)
				require.NotNil(t, p)
				require.NoError(t, Validate(gs, *p, m.From, m.To), "relocation %s", m)
			}
		})
	}
}

func TestHasLegalMove(t *testing.T) {
	t.Run("true while the hand can be placed", func(t *testing.T) {
		require.True(t, HasLegalMove(NewGameState(), White))
	})

	t.Run("false when every piece is stuck", func(t *testing.T) {
		gs := NewGameState()
		gs.Hands[White] = nil
		// A lone white pawn facing a black piece straight ahead, with nothing to capture.
		gs.Board[1][0] = &Piece{Kind: Pawn, Color: White, ID: 1}
		gs.Board[0][0] = &Piece{Kind: Rook, Color: Black, ID: 2}

		require.False(t, HasLegalMove(gs, White))
		require.Empty(t, LegalMoves(gs, White))
	})
}
