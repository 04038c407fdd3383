package game

import (
	"tictacchess/utils"

	"golang.org/x/exp/slices"
)

// Board maps each square to its occupant, nil when empty. Copying a Board copies the grid.
type Board [Size][Size]*Piece

func (b *Board) At(sq Square) *Piece {
	return b[sq.Row][sq.Col]
}

func (b *Board) set(sq Square, p *Piece) {
	b[sq.Row][sq.Col] = p
}

// Squares returns every square in row-major order.
func Squares() []Square {
	squares := make([]Square, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			squares = append(squares, Square{Row: row, Col: col})
		}
	}
	return squares
}

var allSquares = Squares()

// Count returns how many pieces of the color are on the board.
func (b *Board) Count(c Color) int {
	n := 0
	for _, sq := range allSquares {
		if p := b.At(sq); p != nil && p.Color == c {
			n++
		}
	}
	return n
}

// Hand is the multiset of kinds a player may still place. Order carries no meaning.
type Hand []Kind

func NewHand(perKind int) Hand {
	hand := make(Hand, 0, perKind*len(Kinds))
	for _, k := range Kinds {
		for i := 0; i < perKind; i++ {
			hand = append(hand, k)
		}
	}
	return hand
}

func (h Hand) Has(k Kind) bool {
	return utils.FindIndex(h, k) >= 0
}

// Without returns a copy of the hand with one instance of k removed.
func (h Hand) Without(k Kind) (Hand, bool) {
	i := utils.FindIndex(h, k)
	if i < 0 {
		return h, false
	}
	out := make(Hand, 0, len(h)-1)
	out = append(out, h[:i]...)
	return append(out, h[i+1:]...), true
}

// With returns a copy of the hand with k added.
func (h Hand) With(k Kind) Hand {
	out := make(Hand, len(h), len(h)+1)
	copy(out, h)
	return append(out, k)
}

// Distinct returns each kind present in the hand once, in Kinds order.
func (h Hand) Distinct() []Kind {
	kinds := make([]Kind, 0, len(Kinds))
	for _, k := range Kinds {
		if h.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (h Hand) Sorted() Hand {
	out := slices.Clone(h)
	slices.Sort(out)
	return out
}
