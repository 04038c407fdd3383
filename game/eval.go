package game

// Evaluation weights. A realized win must dominate every other term.
const (
	WinScore       = 100000.0
	NearLineBonus  = 50.0 // Size-1 own pieces, no opposing piece
	HalfLineBonus  = 10.0 // Size-2 own pieces, no opposing piece
	NearLineThreat = 80.0 // Opponent Size-1 line; heavier than NearLineBonus to favor blocking
	HalfLineThreat = 10.0
	OnBoardValue   = 10.0
	CenterBonus    = 4.0
	ReserveValue   = 3.0
)

// Score is a heuristic value of the position for color c. Higher is better for c.
func Score(b Board, hands [2]Hand, c Color) float64 {
	opp := c.Opponent()
	if _, ok := WinningLine(b, c); ok {
		return WinScore
	}
	if _, ok := WinningLine(b, opp); ok {
		return -WinScore
	}

	score := 0.0
	for _, line := range lines {
		own, theirs, _ := lineCounts(&b, line, c)
		switch {
		case theirs == 0 && own == Size-1:
			score += NearLineBonus
		case theirs == 0 && own == Size-2:
			score += HalfLineBonus
		case own == 0 && theirs == Size-1:
			score -= NearLineThreat
		case own == 0 && theirs == Size-2:
			score -= HalfLineThreat
		}
	}

	score += OnBoardValue * float64(b.Count(c)-b.Count(opp))
	for _, sq := range allSquares {
		p := b.At(sq)
		if p == nil || !isCenter(sq) {
			continue
		}
		if p.Color == c {
			score += CenterBonus
		} else {
			score -= CenterBonus
		}
	}

	score += ReserveValue * float64(len(hands[c]))
	score -= ReserveValue * float64(len(hands[opp]))
	return score
}

// EvaluateState scores a state for c; drawn positions are worth nothing to either side.
func EvaluateState(gs *GameState, c Color) float64 {
	if gs.Result == Draw {
		return 0
	}
	return Score(gs.Board, gs.Hands, c)
}

// isCenter reports whether sq lies in the central (Size-2)x(Size-2) block.
func isCenter(sq Square) bool {
	return sq.Row > 0 && sq.Row < Size-1 && sq.Col > 0 && sq.Col < Size-1
}
