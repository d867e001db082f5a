package poker

// StartingHandStrength scores two hole cards on [0,1] before any community
// cards are known.
//
// Pairs score 0.5 + (rank-2)/24, so deuces are 0.5 and aces 1.0. Other hands
// weight the high card at 0.7 and the low card at 0.3 (ranks over 14) and
// collect bonuses: +0.1 suited, +0.1 connected, +0.05 one-gapped, and +0.1
// for ace-king. The score is capped at 1.0.
func StartingHandStrength(a, b Card) float64 {
	high, low := a.Rank, b.Rank
	if low > high {
		high, low = low, high
	}

	if high == low {
		return 0.5 + float64(high-Two)/24
	}

	score := float64(high)/14*0.7 + float64(low)/14*0.3
	if a.Suit == b.Suit {
		score += 0.1
	}
	switch high - low {
	case 1:
		score += 0.1
	case 2:
		score += 0.05
	}
	if high == Ace && low == King {
		score += 0.1
	}
	return min(score, 1.0)
}
