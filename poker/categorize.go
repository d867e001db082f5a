package poker

// Tier buckets a starting hand for display and bot reasoning
type Tier uint8

const (
	TierUnknown Tier = iota
	TierTrash
	TierWeak
	TierMedium
	TierStrong
	TierPremium
)

var tierNames = [...]string{"Unknown", "Trash", "Weak", "Medium", "Strong", "Premium"}

func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "Unknown"
}

// TierOf places two hole cards in a tier:
//
//	Premium  JJ+, AK
//	Strong   TT, AQ, AJ
//	Medium   77-99, suited broadway
//	Weak     small pairs, suited connectors and one-gappers
//	Trash    everything else
func TierOf(a, b Card) Tier {
	if !a.IsValid() || !b.IsValid() || a == b {
		return TierUnknown
	}

	lo, hi := a.Rank, b.Rank
	if lo > hi {
		lo, hi = hi, lo
	}
	pair := lo == hi
	suited := a.Suit == b.Suit

	switch {
	case pair && lo >= Jack, lo == King && hi == Ace:
		return TierPremium
	case pair && lo == Ten, hi == Ace && lo >= Jack:
		return TierStrong
	case pair && lo >= Seven, suited && lo >= Ten:
		return TierMedium
	case pair, suited && hi-lo <= 2:
		return TierWeak
	}
	return TierTrash
}
