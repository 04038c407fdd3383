package communication

import (
	"errors"
	"fmt"

	"tictacchess/game"
)

var ErrMalformedMove = errors.New("malformed move")

type WireSquare struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type WirePiece struct {
	Piece string       `json:"piece"`
	Color string       `json:"color"`
	ID    game.PieceID `json:"id"`
}

// WireMove is the JSON form of a move exchanged between peers. Placements carry the id the
// sender minted so that both sides name pieces identically.
type WireMove struct {
	Type     string       `json:"type"`
	Piece    string       `json:"piece"`
	From     *WireSquare  `json:"from,omitempty"`
	To       WireSquare   `json:"to"`
	Captured *WirePiece   `json:"captured,omitempty"`
	ID       game.PieceID `json:"id,omitempty"`
	Note     string       `json:"note,omitempty"`
}

func wireSquare(sq game.Square) WireSquare {
	return WireSquare{Row: sq.Row, Col: sq.Col}
}

func wirePiece(p *game.Piece) *WirePiece {
	return &WirePiece{Piece: p.Kind.String(), Color: p.Color.String(), ID: p.ID}
}

func (s WireSquare) square() game.Square {
	return game.Square{Row: s.Row, Col: s.Col}
}

func FromMove(m game.Move) WireMove {
	w := WireMove{
		Type:  m.Type.String(),
		Piece: m.Kind.String(),
		To:    wireSquare(m.To),
		ID:    m.PieceID,
		Note:  m.Note,
	}
	if m.Type == game.Relocate {
		from := wireSquare(m.From)
		w.From = &from
	}
	if m.Captured != nil {
		w.Captured = wirePiece(m.Captured)
	}
	return w
}

// ToMove decodes w. Legality is not checked here.
func (w WireMove) ToMove() (game.Move, error) {
	kind, err := game.ParseKind(w.Piece)
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %w", ErrMalformedMove, err)
	}

	var m game.Move
	switch w.Type {
	case "place":
		m = game.NewPlacement(kind, w.To.square())
	case "relocate":
		if w.From == nil {
			return game.Move{}, fmt.Errorf("%w: relocation without origin", ErrMalformedMove)
		}
		m = game.NewRelocation(kind, w.From.square(), w.To.square())
	default:
		return game.Move{}, fmt.Errorf("%w: unknown move type %q", ErrMalformedMove, w.Type)
	}

	if w.Captured != nil {
		capturedKind, err := game.ParseKind(w.Captured.Piece)
		if err != nil {
			return game.Move{}, fmt.Errorf("%w: %w", ErrMalformedMove, err)
		}
		color, err := game.ParseColor(w.Captured.Color)
		if err != nil {
			return game.Move{}, fmt.Errorf("%w: %w", ErrMalformedMove, err)
		}
		m.Captured = &game.Piece{Kind: capturedKind, Color: color, ID: w.Captured.ID}
	}
	m.PieceID = w.ID
	m.Note = w.Note
	return m, nil
}
