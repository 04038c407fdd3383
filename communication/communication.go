package communication

import (
	"context"
	"encoding/json"

	"tictacchess/game"
)

// Communicator abstracts how moves reach the authoritative copy of a game.
type Communicator interface {
	GetGameState(ctx context.Context) (StateView, error)
	SendMove(ctx context.Context, move WireMove) (StateView, error)
	// RequestAIMove asks the other side's AI to move and returns the move it played.
	RequestAIMove(ctx context.Context) (WireMove, StateView, error)
}

type MessageType string

const (
	MessageTypeMove  MessageType = "move"
	MessageTypeState MessageType = "state"
	MessageTypeError MessageType = "error"
	MessageTypeReset MessageType = "reset"
)

// Message is the envelope of everything exchanged over a websocket.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func NewMessage(t MessageType, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: data}, nil
}

func ErrorMessage(err error) Message {
	msg, _ := NewMessage(MessageTypeError, ErrorResponse{Error: err.Error()})
	return msg
}

type CreateRequest struct {
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidateResponse struct {
	Legal  bool   `json:"legal"`
	Reason string `json:"reason,omitempty"`
}

// MoveResponse is returned after a move was applied.
type MoveResponse struct {
	Move  WireMove  `json:"move"`
	State StateView `json:"state"`
}

// StateView is the snapshot of a game sent to clients.
type StateView struct {
	ID          string                           `json:"id"`
	Board       [game.Size][game.Size]*WirePiece `json:"board"`
	Hands       map[string][]string              `json:"hands"`
	Turn        string                           `json:"turn"`
	Result      string                           `json:"result,omitempty"`
	WinningLine []WireSquare                     `json:"winningLine,omitempty"`
	Status      string                           `json:"status"`
	Mode        string                           `json:"mode,omitempty"`
	Difficulty  string                           `json:"difficulty,omitempty"`
	Plies       int                              `json:"plies"`
	Key         string                           `json:"key"`
}

func NewStateView(id string, gs *game.GameState) StateView {
	view := StateView{
		ID:         id,
		Hands:      make(map[string][]string, 2),
		Turn:       gs.Turn.String(),
		Result:     gs.Result.String(),
		Status:     gs.Status,
		Mode:       gs.Mode,
		Difficulty: gs.Difficulty,
		Plies:      len(gs.History),
		Key:        gs.Key(),
	}
	for _, sq := range game.Squares() {
		if p := gs.Board.At(sq); p != nil {
			view.Board[sq.Row][sq.Col] = wirePiece(p)
		}
	}
	for _, c := range []game.Color{game.White, game.Black} {
		kinds := []string{}
		for _, k := range gs.Hands[c].Sorted() {
			kinds = append(kinds, k.String())
		}
		view.Hands[c.String()] = kinds
	}
	for _, sq := range gs.WinningLine {
		view.WinningLine = append(view.WinningLine, wireSquare(sq))
	}
	return view
}
