package game

import (
	"strconv"
	"strings"
)

// CanonicalKey encodes everything the repetition rule compares: board contents, hand multisets,
// the side to move and pawn directions. Piece ids are deliberately left out.
func CanonicalKey(b Board, hands [2]Hand, next Color, dirs PawnDirs) string {
	var sb strings.Builder
	sb.Grow(Size*Size*2 + 32)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := b[row][col]
			if p == nil {
				sb.WriteString("..")
				continue
			}
			sb.WriteByte(p.Kind.Letter())
			sb.WriteByte(colorLetter(p.Color))
		}
		sb.WriteByte('/')
	}
	for _, c := range []Color{White, Black} {
		sb.WriteByte('|')
		sb.WriteByte(colorLetter(c))
		for _, k := range hands[c].Sorted() {
			sb.WriteByte(k.Letter())
		}
	}
	sb.WriteByte('|')
	sb.WriteByte(colorLetter(next))
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(dirs[White]))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(dirs[Black]))
	return sb.String()
}

func colorLetter(c Color) byte {
	if c == White {
		return 'w'
	}
	return 'b'
}
