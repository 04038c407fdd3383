package game

import "errors"

// Reasons a move is illegal. Validate returns nil when a move is legal.
var (
	ErrOutOfBounds       = errors.New("out of bounds")
	ErrNoMovement        = errors.New("origin equals destination")
	ErrFriendlyFire      = errors.New("destination holds a friendly piece")
	ErrPathBlocked       = errors.New("path is blocked")
	ErrInvalidRookMove   = errors.New("rook must move along a row or column")
	ErrInvalidBishopMove = errors.New("bishop must move diagonally")
	ErrInvalidKnightMove = errors.New("knight must move in an L shape")
	ErrInvalidPawnMove   = errors.New("invalid pawn move")
	ErrUnknownPieceType  = errors.New("unknown piece type")
	ErrNotInHand         = errors.New("piece kind is not in hand")
	ErrSquareOccupied    = errors.New("square is occupied")
)

// Validate checks whether p may move from one square to another in the given state.
func Validate(gs *GameState, p Piece, from, to Square) error {
	if !from.InBounds() || !to.InBounds() {
		return ErrOutOfBounds
	}
	if from == to {
		return ErrNoMovement
	}
	target := gs.Board.At(to)
	if target != nil && target.Color == p.Color {
		return ErrFriendlyFire
	}

	dr, dc := to.Row-from.Row, to.Col-from.Col
	switch p.Kind {
	case Rook:
		if dr != 0 && dc != 0 {
			return ErrInvalidRookMove
		}
		return checkPath(&gs.Board, from, to)
	case Bishop:
		if abs(dr) != abs(dc) {
			return ErrInvalidBishopMove
		}
		return checkPath(&gs.Board, from, to)
	case Knight:
		if (abs(dr) == 2 && abs(dc) == 1) || (abs(dr) == 1 && abs(dc) == 2) {
			return nil
		}
		return ErrInvalidKnightMove
	case Pawn:
		if dr != gs.PawnDirs[p.Color] {
			return ErrInvalidPawnMove
		}
		switch {
		case dc == 0 && target == nil:
			return nil
		case abs(dc) == 1 && target != nil:
			return nil
		}
		return ErrInvalidPawnMove
	default:
		return ErrUnknownPieceType
	}
}

// ValidatePlacement checks whether color may place a piece of kind k on to.
func ValidatePlacement(gs *GameState, c Color, k Kind, to Square) error {
	if !to.InBounds() {
		return ErrOutOfBounds
	}
	if !gs.Hands[c].Has(k) {
		return ErrNotInHand
	}
	if gs.Board.At(to) != nil {
		return ErrSquareOccupied
	}
	return nil
}

// ValidateMove checks a move for the side to move, whichever its type.
func ValidateMove(gs *GameState, m Move) error {
	if m.Type == Place {
		return ValidatePlacement(gs, gs.Turn, m.Kind, m.To)
	}
	if !m.From.InBounds() {
		return ErrOutOfBounds
	}
	p := gs.Board.At(m.From)
	if p == nil || p.Color != gs.Turn {
		return ErrNoPiece
	}
	return Validate(gs, *p, m.From, m.To)
}

// ErrNoPiece is returned when a relocation does not start on a piece of the side to move.
var ErrNoPiece = errors.New("no piece of the side to move on origin square")

// checkPath walks from one square to another, one step at a time, and reports the first blocker.
func checkPath(b *Board, from, to Square) error {
	stepR, stepC := sign(to.Row-from.Row), sign(to.Col-from.Col)
	sq := Square{Row: from.Row + stepR, Col: from.Col + stepC}
	for sq != to {
		if b.At(sq) != nil {
			return ErrPathBlocked
		}
		sq = Square{Row: sq.Row + stepR, Col: sq.Col + stepC}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
