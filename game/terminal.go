package game

import "golang.org/x/exp/slices"

var lines = buildLines()

// Lines returns the 2*Size+2 candidate winning lines: rows, columns, main diagonal, anti-diagonal.
func Lines() [][]Square {
	return lines
}

func buildLines() [][]Square {
	out := make([][]Square, 0, 2*Size+2)
	for row := 0; row < Size; row++ {
		line := make([]Square, Size)
		for col := range line {
			line[col] = Square{Row: row, Col: col}
		}
		out = append(out, line)
	}
	for col := 0; col < Size; col++ {
		line := make([]Square, Size)
		for row := range line {
			line[row] = Square{Row: row, Col: col}
		}
		out = append(out, line)
	}
	diag := make([]Square, Size)
	anti := make([]Square, Size)
	for i := 0; i < Size; i++ {
		diag[i] = Square{Row: i, Col: i}
		anti[i] = Square{Row: i, Col: Size - 1 - i}
	}
	return append(out, diag, anti)
}

// WinningLine returns the first line fully occupied by color c.
func WinningLine(b Board, c Color) ([]Square, bool) {
	for _, line := range lines {
		if lineOwnedBy(&b, line, c) {
			return slices.Clone(line), true
		}
	}
	return nil, false
}

func lineOwnedBy(b *Board, line []Square, c Color) bool {
	for _, sq := range line {
		p := b.At(sq)
		if p == nil || p.Color != c {
			return false
		}
	}
	return true
}

// lineCounts tallies pieces of color c, opposing pieces and empty squares on a line.
func lineCounts(b *Board, line []Square, c Color) (own, opp, empty int) {
	for _, sq := range line {
		switch p := b.At(sq); {
		case p == nil:
			empty++
		case p.Color == c:
			own++
		default:
			opp++
		}
	}
	return own, opp, empty
}
