package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/holdem-sim/internal/game"
)

// BigPotBB is the pot size, in big blinds, at which a hand counts as a big pot
const BigPotBB = 50

// HandResult represents the outcome of a single hand for one seat
type HandResult struct {
	HandNumber     int
	Seat           int
	NetBB          float64       // Net big blinds won/lost for the seat
	Position       game.Position // Seat's position for the hand
	WentToShowdown bool          // Did the seat reach showdown without folding?
	FinalPot       game.Chips    // Pot awarded at the end of the hand
	BigBlind       game.Chips    // Blind used to convert FinalPot into big blinds
	StreetReached  game.Phase    // Furthest phase the hand reached
}

// PositionStats tracks statistics for a specific table position
type PositionStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Statistics tracks simulation results for a single seat
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	ShowdownWins    int     // Hands won at showdown
	NonShowdownWins int     // Hands won without showdown
	ShowdownBB      float64 // BB from showdown (wins AND losses)
	NonShowdownBB   float64 // BB from hands that ended before showdown
	AllBB           float64

	PositionResults [game.MaxSeats]PositionStats // Indexed by game.Position

	// Number of hands that ended on each phase
	StreetCounts [game.Showdown + 1]int

	MaxPotChips game.Chips
	MaxPotBB    float64
	BigPots     int     // Pots >= BigPotBB
	BigPotsBB   float64 // BB from big pots
}

// Mean returns the arithmetic mean of all results in big blinds per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new hand result into the statistics
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if netBB > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}

	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB

	if pos := result.Position; int(pos) < len(s.PositionResults) {
		s.PositionResults[pos].Hands++
		s.PositionResults[pos].SumBB += netBB
		s.PositionResults[pos].SumBB2 += netBB * netBB
	}

	if st := result.StreetReached; int(st) < len(s.StreetCounts) {
		s.StreetCounts[st]++
	}

	potBB := result.FinalPot.BB(result.BigBlind)
	if result.FinalPot > s.MaxPotChips {
		s.MaxPotChips = result.FinalPot
		s.MaxPotBB = potBB
	}
	if potBB >= BigPotBB {
		s.BigPots++
		s.BigPotsBB += netBB
	}
}

// Merge folds the results of other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)
	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	s.AllBB += other.AllBB
	for i := range s.PositionResults {
		s.PositionResults[i].Hands += other.PositionResults[i].Hands
		s.PositionResults[i].SumBB += other.PositionResults[i].SumBB
		s.PositionResults[i].SumBB2 += other.PositionResults[i].SumBB2
	}
	for i := range s.StreetCounts {
		s.StreetCounts[i] += other.StreetCounts[i]
	}
	if other.MaxPotChips > s.MaxPotChips {
		s.MaxPotChips = other.MaxPotChips
		s.MaxPotBB = other.MaxPotBB
	}
	s.BigPots += other.BigPots
	s.BigPotsBB += other.BigPotsBB
}

func (s *Statistics) sortedValues() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sortedValues()

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sortedValues()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PositionMean returns the mean result for a specific position
func (s *Statistics) PositionMean(pos game.Position) float64 {
	if int(pos) >= len(s.PositionResults) {
		return 0
	}
	ps := s.PositionResults[pos]
	if ps.Hands == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Hands)
}

// IsLedgerBalanced checks if the accounting is consistent
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}

	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}

	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}

	totalWins := s.ShowdownWins + s.NonShowdownWins
	if totalWins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", totalWins, s.Hands)
	}

	totalPositionHands := 0
	for _, ps := range s.PositionResults {
		totalPositionHands += ps.Hands
	}
	if totalPositionHands != s.Hands {
		return fmt.Errorf("position hands total (%d) does not match total hands (%d)",
			totalPositionHands, s.Hands)
	}

	return nil
}
