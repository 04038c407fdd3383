package communication

import (
	"encoding/json"
	"errors"
	"testing"

	"tictacchess/game"

	"github.com/stretchr/testify/require"
)

func TestWireMove(t *testing.T) {
	t.Run("placement keeps the minted id", func(t *testing.T) {
		m := game.NewPlacement(game.Knight, game.Square{Row: 1, Col: 2})
		m.PieceID = 7

		w := FromMove(m)
		require.Equal(t, "place", w.Type)
		require.Nil(t, w.From)

		got, err := w.ToMove()
		require.NoError(t, err)
		require.Equal(t, m, got)
	})

	t.Run("relocation with capture", func(t *testing.T) {
		m := game.NewRelocation(game.Rook, game.Square{Row: 0, Col: 0}, game.Square{Row: 0, Col: 3})
		m.Captured = &game.Piece{Kind: game.Bishop, Color: game.Black, ID: 4}
		m.Note = "Taking a piece."

		data, err := json.Marshal(FromMove(m))
		require.NoError(t, err)
		require.JSONEq(t, `{
			"type": "relocate",
			"piece": "rook",
			"from": {"row": 0, "col": 0},
			"to": {"row": 0, "col": 3},
			"captured": {"piece": "bishop", "color": "black", "id": 4},
			"note": "Taking a piece."
		}`, string(data))

		var w WireMove
		require.NoError(t, json.Unmarshal(data, &w))
		got, err := w.ToMove()
		require.NoError(t, err)
		require.Equal(t, m, got)
	})

	t.Run("malformed", func(t *testing.T) {
		cases := map[string]WireMove{
			"unknown type":     {Type: "teleport", Piece: "rook"},
			"unknown piece":    {Type: "place", Piece: "queen"},
			"missing origin":   {Type: "relocate", Piece: "rook"},
			"bad capture kind": {Type: "place", Piece: "rook", Captured: &WirePiece{Piece: "king", Color: "black"}},
			"bad capture side": {Type: "place", Piece: "rook", Captured: &WirePiece{Piece: "pawn", Color: "red"}},
		}
		for name, w := range cases {
			_, err := w.ToMove()
			require.True(t, errors.Is(err, ErrMalformedMove), name)
		}
	})
}

func TestNewStateView(t *testing.T) {
	gs := game.NewGameState(game.WithTags("ai", "hard"))
	gs = game.Apply(gs, game.NewPlacement(game.Rook, game.Square{Row: 3, Col: 0}))

	view := NewStateView("g1", gs)
	require.Equal(t, "g1", view.ID)
	require.Equal(t, "black", view.Turn)
	require.Empty(t, view.Result)
	require.Equal(t, 1, view.Plies)
	require.Equal(t, gs.Key(), view.Key)
	require.Equal(t, &WirePiece{Piece: "rook", Color: "white", ID: 1}, view.Board[3][0])
	require.Nil(t, view.Board[0][0])
	require.Equal(t, []string{"pawn", "knight", "bishop"}, view.Hands["white"])
	require.Len(t, view.Hands["black"], 4)
	require.Equal(t, "ai", view.Mode)
}

func TestMessage(t *testing.T) {
	msg, err := NewMessage(MessageTypeMove, FromMove(game.NewPlacement(game.Pawn, game.Square{Row: 2, Col: 2})))
	require.NoError(t, err)

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded Message
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, MessageTypeMove, decoded.Type)

	var w WireMove
	require.NoError(t, json.Unmarshal(decoded.Payload, &w))
	require.Equal(t, "pawn", w.Piece)

	errMsg := ErrorMessage(errors.New("boom"))
	require.Equal(t, MessageTypeError, errMsg.Type)
	require.JSONEq(t, `{"error":"boom"}`, string(errMsg.Payload))
}
