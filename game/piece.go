package game

import "fmt"

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func ParseColor(s string) (Color, error) {
	switch s {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("unknown color %q", s)
}

// Kind is the closed set of piece types.
type Kind int

const (
	Pawn Kind = iota
	Rook
	Knight
	Bishop
)

// Kinds lists every kind in generation order.
var Kinds = [...]Kind{Pawn, Rook, Knight, Bishop}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Letter is the single character notation used in canonical keys.
func (k Kind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Rook:
		return 'R'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	}
	return '?'
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return Pawn, fmt.Errorf("unknown piece kind %q", s)
}

// PieceID identifies one physical piece while it stays on the board or in transit to a peer.
// Captured pieces lose their id; the next placement of that kind gets a fresh one.
type PieceID uint32

// Piece is never mutated after creation, so boards may share pointers.
type Piece struct {
	Kind  Kind    `json:"kind"`
	Color Color   `json:"color"`
	ID    PieceID `json:"id"`
}

type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// String renders the square in file/rank notation with rank 1 at the bottom row.
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, Size-s.Row)
}
