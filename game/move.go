package game

import "fmt"

type MoveType int

const (
	Place MoveType = iota
	Relocate
)

func (t MoveType) String() string {
	if t == Place {
		return "place"
	}
	return "relocate"
}

// Move is either a placement from hand or a relocation on the board.
// From is ignored for placements. Captured holds the prospective or actual capture.
type Move struct {
	Type     MoveType
	Kind     Kind
	From     Square
	To       Square
	Captured *Piece
	// PieceID is the identity the placed or moved piece carries; zero means "mint one".
	PieceID PieceID
	// Note is an optional explanation attached by an AI.
	Note string
}

func NewPlacement(k Kind, to Square) Move {
	return Move{Type: Place, Kind: k, To: to}
}

func NewRelocation(k Kind, from, to Square) Move {
	return Move{Type: Relocate, Kind: k, From: from, To: to}
}

func (m Move) IsCapture() bool {
	return m.Captured != nil
}

func (m Move) String() string {
	suffix := ""
	if m.Captured != nil {
		suffix = "x" + m.Captured.Kind.String()
	}
	if m.Type == Place {
		return fmt.Sprintf("%s@%s%s", m.Kind, m.To, suffix)
	}
	return fmt.Sprintf("%s %s-%s%s", m.Kind, m.From, m.To, suffix)
}
