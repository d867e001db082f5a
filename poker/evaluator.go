package poker

import (
	"fmt"
	"slices"
)

// Category is a made-hand category ordered from weakest to strongest
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumCategories is the number of hand categories
const NumCategories = int(RoyalFlush) + 1

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// categoryMass is the frequency of each category as the best five of seven
// cards. It sizes each category's slice of the [0,1] strength scale.
var categoryMass = [NumCategories]float64{
	HighCard:      0.174,
	OnePair:       0.438,
	TwoPair:       0.235,
	ThreeOfAKind:  0.0483,
	Straight:      0.0462,
	Flush:         0.0303,
	FullHouse:     0.026,
	FourOfAKind:   0.00168,
	StraightFlush: 0.00031,
	RoyalFlush:    0.0000015,
}

// categoryBase holds the cumulative mass of all weaker categories
var categoryBase = func() [NumCategories]float64 {
	var base [NumCategories]float64
	cumulative := 0.0
	for c := range NumCategories {
		base[c] = cumulative
		cumulative += categoryMass[c]
	}
	return base
}()

// CategoryBase returns the lowest strength any hand of the category can have
func CategoryBase(c Category) float64 {
	return categoryBase[c]
}

// CategoryMass returns the width of the category on the strength scale
func CategoryMass(c Category) float64 {
	return categoryMass[c]
}

// Result is the outcome of evaluating a hand
type Result struct {
	Category Category
	// Strength places the hand on [0,1]. Any hand of a higher category is
	// strictly stronger than every hand of a lower one.
	Strength float64
	// Ranks are the tie-break ranks in order of significance (pair rank
	// before kickers, trips before pair, straight high card, ...). Empty for
	// the preflop heuristic.
	Ranks []Rank
	// Best holds the five cards making the hand, or the hole cards preflop.
	Best []Card
}

// String returns a description such as "Two Pair [As Ad Ks Kd 7c]"
func (r Result) String() string {
	return fmt.Sprintf("%s [%s]", r.Category, FormatCards(r.Best))
}

// Compare returns 1 if a beats b, -1 if b beats a, and 0 on an exact tie.
// Made hands are compared on category then tie-break ranks so the result
// never depends on floating point. Preflop heuristics fall back to Strength.
func Compare(a, b Result) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	if len(a.Ranks) == 0 || len(b.Ranks) == 0 {
		switch {
		case a.Strength > b.Strength:
			return 1
		case a.Strength < b.Strength:
			return -1
		}
		return 0
	}
	for i := 0; i < len(a.Ranks) && i < len(b.Ranks); i++ {
		if a.Ranks[i] != b.Ranks[i] {
			if a.Ranks[i] > b.Ranks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Evaluate ranks hole cards together with the community cards.
// With fewer than five cards in total a starting-hand heuristic is returned
// and the category is HighCard. With five or more cards the best five-card
// combination is chosen. The result does not depend on input order.
func Evaluate(hole, board []Card) Result {
	all := make([]Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)

	if len(all) < 5 {
		if len(hole) == 2 {
			return Result{
				Category: HighCard,
				Strength: StartingHandStrength(hole[0], hole[1]),
				Best:     append([]Card(nil), hole...),
			}
		}
		return Result{Category: HighCard, Best: sortedDesc(all)}
	}

	return bestOf(sortedDesc(all))
}

// Evaluate7 is a convenience wrapper for exactly two hole cards and a full board
func Evaluate7(hole [2]Card, board [5]Card) Result {
	return Evaluate(hole[:], board[:])
}

// bestOf evaluates every five-card subset of cards, which must already be in
// canonical order. The first best subset wins, making the chosen cards
// deterministic.
func bestOf(cards []Card) Result {
	n := len(cards)
	var best Result
	found := false
	var five [5]Card

	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						five = [5]Card{cards[a], cards[b], cards[c], cards[d], cards[e]}
						r := evaluate5(five)
						if !found || Compare(r, best) > 0 {
							best = r
							found = true
						}
					}
				}
			}
		}
	}
	return best
}

// evaluate5 classifies exactly five cards sorted by descending rank
func evaluate5(five [5]Card) Result {
	flush := true
	for i := 1; i < 5; i++ {
		if five[i].Suit != five[0].Suit {
			flush = false
			break
		}
	}

	straightHigh, isStraight := straightHighCard(five)

	groups := groupByRank(five[:])

	var (
		category Category
		ranks    []Rank
		best     []Card
	)

	switch {
	case flush && isStraight:
		category = StraightFlush
		if straightHigh == Ace {
			category = RoyalFlush
		}
		ranks = []Rank{straightHigh}
		best = straightOrder(five, straightHigh)
	case groups[0].count == 4:
		category = FourOfAKind
		ranks = groupRanks(groups)
		best = groupOrder(groups)
	case groups[0].count == 3 && groups[1].count == 2:
		category = FullHouse
		ranks = groupRanks(groups)
		best = groupOrder(groups)
	case flush:
		category = Flush
		ranks = groupRanks(groups)
		best = groupOrder(groups)
	case isStraight:
		category = Straight
		ranks = []Rank{straightHigh}
		best = straightOrder(five, straightHigh)
	case groups[0].count == 3:
		category = ThreeOfAKind
		ranks = groupRanks(groups)
		best = groupOrder(groups)
	case groups[0].count == 2 && groups[1].count == 2:
		category = TwoPair
		ranks = groupRanks(groups)
		best = groupOrder(groups)
	case groups[0].count == 2:
		category = OnePair
		ranks = groupRanks(groups)
		best = groupOrder(groups)
	default:
		category = HighCard
		ranks = groupRanks(groups)
		best = groupOrder(groups)
	}

	return Result{
		Category: category,
		Strength: strength(category, ranks),
		Ranks:    ranks,
		Best:     best,
	}
}

// strength maps a category and its tie-break ranks onto [0,1]:
// base(category) + kickerFraction * mass(category). The kicker fraction is
// a base-13 positional encoding of up to five ranks, normalised to [0,1).
func strength(c Category, ranks []Rank) float64 {
	return categoryBase[c] + KickerFraction(ranks)*categoryMass[c]
}

// KickerFraction encodes up to five ranks (most significant first) as a
// fraction in [0,1)
func KickerFraction(ranks []Rank) float64 {
	const denom = 13.0 * 13 * 13 * 13 * 13
	value := 0.0
	for i := range 5 {
		value *= 13
		if i < len(ranks) {
			value += float64(ranks[i] - Two)
		}
	}
	return value / denom
}

// straightHighCard reports the top card of a straight, treating the
// A-2-3-4-5 wheel as five-high
func straightHighCard(five [5]Card) (Rank, bool) {
	for i := 1; i < 5; i++ {
		if five[i].Rank == five[i-1].Rank {
			return 0, false
		}
	}
	if five[0].Rank-five[4].Rank == 4 {
		return five[0].Rank, true
	}
	if five[0].Rank == Ace && five[1].Rank == Five && five[4].Rank == Two {
		return Five, true
	}
	return 0, false
}

// straightOrder lists a straight from its high card down, with the ace last in a wheel
func straightOrder(five [5]Card, high Rank) []Card {
	out := make([]Card, 0, 5)
	if high == Five {
		out = append(out, five[1:]...)
		return append(out, five[0])
	}
	return append(out, five[:]...)
}

type rankGroup struct {
	rank  Rank
	count int
	cards []Card
}

// groupByRank groups cards by rank, ordered by group size then rank, both descending
func groupByRank(cards []Card) []rankGroup {
	groups := make([]rankGroup, 0, len(cards))
	for _, c := range cards {
		idx := slices.IndexFunc(groups, func(g rankGroup) bool { return g.rank == c.Rank })
		if idx < 0 {
			groups = append(groups, rankGroup{rank: c.Rank})
			idx = len(groups) - 1
		}
		groups[idx].count++
		groups[idx].cards = append(groups[idx].cards, c)
	}
	slices.SortStableFunc(groups, func(a, b rankGroup) int {
		if a.count != b.count {
			return b.count - a.count
		}
		return int(b.rank) - int(a.rank)
	})
	return groups
}

func groupRanks(groups []rankGroup) []Rank {
	ranks := make([]Rank, len(groups))
	for i, g := range groups {
		ranks[i] = g.rank
	}
	return ranks
}

func groupOrder(groups []rankGroup) []Card {
	out := make([]Card, 0, 5)
	for _, g := range groups {
		out = append(out, g.cards...)
	}
	return out
}

// sortedDesc returns a copy ordered by rank then suit, both descending
func sortedDesc(cards []Card) []Card {
	out := append([]Card(nil), cards...)
	slices.SortFunc(out, func(a, b Card) int {
		if a.Rank != b.Rank {
			return int(b.Rank) - int(a.Rank)
		}
		return int(b.Suit) - int(a.Suit)
	})
	return out
}
