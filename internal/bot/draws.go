package bot

import "github.com/lox/holdem-sim/poker"

const (
	flushDrawBonus   = 0.06
	openEndedBonus   = 0.05
	gutshotDrawBonus = 0.02
)

// drawBonus credits unmade flush and straight draws on the flop and turn.
// Draws only count when a hole card takes part.
func drawBonus(hole, board []poker.Card) float64 {
	if len(hole) != 2 || len(board) < 3 || len(board) > 4 {
		return 0
	}
	made := poker.Evaluate(hole, board).Category
	bonus := 0.0

	if made < poker.Flush && hasFlushDraw(hole, board) {
		bonus += flushDrawBonus
	}
	if made < poker.Straight {
		switch straightOuts(hole, board) {
		case 8:
			bonus += openEndedBonus
		case 4:
			bonus += gutshotDrawBonus
		}
	}
	return bonus
}

func hasFlushDraw(hole, board []poker.Card) bool {
	for _, suit := range poker.Suits {
		count, fromHole := 0, false
		for _, c := range hole {
			if c.Suit == suit {
				count++
				fromHole = true
			}
		}
		for _, c := range board {
			if c.Suit == suit {
				count++
			}
		}
		if count == 4 && fromHole {
			return true
		}
	}
	return false
}

// straightOuts returns 8 for an open-ended draw, 4 for a gutshot, 0 otherwise
func straightOuts(hole, board []poker.Card) int {
	var present [15]bool
	holeRank := map[poker.Rank]bool{}
	for _, c := range hole {
		present[c.Rank] = true
		holeRank[c.Rank] = true
	}
	for _, c := range board {
		present[c.Rank] = true
	}
	present[1] = present[poker.Ace]

	// Each window of five ranks missing exactly one card is a draw; two
	// windows completed by different ranks make an open-ender
	completing := map[int]bool{}
	for low := 1; low <= 10; low++ {
		have, missing, usesHole := 0, 0, false
		for r := low; r < low+5; r++ {
			if present[r] {
				have++
				rank := poker.Rank(r)
				if r == 1 {
					rank = poker.Ace
				}
				if holeRank[rank] {
					usesHole = true
				}
			} else {
				missing = r
			}
		}
		if have == 4 && usesHole {
			completing[missing] = true
		}
	}
	switch {
	case len(completing) >= 2:
		return 8
	case len(completing) == 1:
		return 4
	}
	return 0
}
