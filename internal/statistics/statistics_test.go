package statistics

import (
	"math"
	"strings"
	"testing"

	"github.com/lox/holdem-sim/internal/game"
)

func TestStatistics_Empty(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdDev() != 0 {
		t.Errorf("Expected stddev of 0 for empty stats, got %f", stats.StdDev())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.Percentile(0.5) != 0 {
		t.Errorf("Expected percentile of 0 for empty stats, got %f", stats.Percentile(0.5))
	}
}

func TestStatistics_SingleValue(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	stats.Add(HandResult{
		HandNumber:     1,
		NetBB:          2.5,
		Position:       game.BB,
		WentToShowdown: true,
		FinalPot:       20,
		BigBlind:       4,
		StreetReached:  game.Showdown,
	})

	if stats.Hands != 1 {
		t.Errorf("Expected 1 hand, got %d", stats.Hands)
	}
	if stats.Mean() != 2.5 {
		t.Errorf("Expected mean of 2.5, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.Median() != 2.5 {
		t.Errorf("Expected median of 2.5, got %f", stats.Median())
	}
	if stats.ShowdownWins != 1 {
		t.Errorf("Expected 1 showdown win, got %d", stats.ShowdownWins)
	}
	if stats.NonShowdownWins != 0 {
		t.Errorf("Expected 0 non-showdown wins, got %d", stats.NonShowdownWins)
	}
	if stats.StreetCounts[game.Showdown] != 1 {
		t.Errorf("Expected 1 hand ending at showdown, got %d", stats.StreetCounts[game.Showdown])
	}
	if !stats.IsLedgerBalanced() {
		t.Error("Expected ledger to be balanced")
	}
}

func TestStatistics_MultipleValues(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}

	results := []HandResult{
		{NetBB: 1.0, Position: game.BTN, WentToShowdown: false, FinalPot: 16, BigBlind: 4},
		{NetBB: -2.0, Position: game.SB, WentToShowdown: true, FinalPot: 32, BigBlind: 4},
		{NetBB: 3.0, Position: game.BB, WentToShowdown: true, FinalPot: 48, BigBlind: 4},
		{NetBB: 0.0, Position: game.BTN, WentToShowdown: false, FinalPot: 8, BigBlind: 4},
		{NetBB: -1.0, Position: game.SB, WentToShowdown: false, FinalPot: 24, BigBlind: 4},
	}
	for _, result := range results {
		stats.Add(result)
	}

	expectedMean := (1.0 - 2.0 + 3.0 + 0.0 - 1.0) / 5.0
	if math.Abs(stats.Mean()-expectedMean) > 1e-9 {
		t.Errorf("Expected mean of %f, got %f", expectedMean, stats.Mean())
	}
	if stats.Hands != 5 {
		t.Errorf("Expected 5 hands, got %d", stats.Hands)
	}

	// sorted values: -2, -1, 0, 1, 3
	if stats.Median() != 0.0 {
		t.Errorf("Expected median of 0.0, got %f", stats.Median())
	}

	if stats.ShowdownWins != 1 {
		t.Errorf("Expected 1 showdown win, got %d", stats.ShowdownWins)
	}
	if stats.NonShowdownWins != 1 {
		t.Errorf("Expected 1 non-showdown win, got %d", stats.NonShowdownWins)
	}

	if stats.PositionResults[game.BTN].Hands != 2 {
		t.Errorf("Expected 2 hands on the button, got %d", stats.PositionResults[game.BTN].Hands)
	}
	if stats.PositionResults[game.SB].Hands != 2 {
		t.Errorf("Expected 2 hands in the small blind, got %d", stats.PositionResults[game.SB].Hands)
	}
	if stats.PositionResults[game.BB].Hands != 1 {
		t.Errorf("Expected 1 hand in the big blind, got %d", stats.PositionResults[game.BB].Hands)
	}

	if !stats.IsLedgerBalanced() {
		t.Error("Expected ledger to be balanced")
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_Percentiles(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	for i := 1; i <= 5; i++ {
		stats.Add(HandResult{NetBB: float64(i), Position: game.BTN})
	}

	tests := []struct {
		percentile float64
		expected   float64
	}{
		{0.0, 1.0},
		{0.25, 2.0},
		{0.5, 3.0},
		{0.75, 4.0},
		{1.0, 5.0},
		{0.125, 1.5},
	}

	for _, test := range tests {
		result := stats.Percentile(test.percentile)
		if math.Abs(result-test.expected) > 1e-9 {
			t.Errorf("Percentile %.3f: expected %f, got %f", test.percentile, test.expected, result)
		}
	}
}

func TestStatistics_ConfidenceInterval(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	for _, v := range []float64{1, 2, 3, 4, 5} {
		stats.Add(HandResult{NetBB: v})
	}

	low, high := stats.ConfidenceInterval95()
	mean := stats.Mean()

	if math.Abs((low+high)/2-mean) > 1e-9 {
		t.Errorf("Confidence interval not symmetric around mean. Low: %f, High: %f, Mean: %f", low, high, mean)
	}
	if high-low <= 0 {
		t.Errorf("Confidence interval should be positive width, got %f", high-low)
	}
}

func TestStatistics_PositionAnalysis(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	stats.Add(HandResult{NetBB: 2.0, Position: game.CO})
	stats.Add(HandResult{NetBB: 3.0, Position: game.CO})
	stats.Add(HandResult{NetBB: -1.0, Position: game.UTG})
	stats.Add(HandResult{NetBB: 1.0, Position: game.UTG})

	if got := stats.PositionMean(game.CO); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("CO mean: expected 2.5, got %f", got)
	}
	if got := stats.PositionMean(game.UTG); math.Abs(got) > 1e-9 {
		t.Errorf("UTG mean: expected 0, got %f", got)
	}
	if got := stats.PositionMean(game.HJ); got != 0 {
		t.Errorf("Expected 0 for a position with no hands, got %f", got)
	}
	if got := stats.PositionMean(game.Position(12)); got != 0 {
		t.Errorf("Expected 0 for an out of range position, got %f", got)
	}
}

func TestStatistics_PotSizeTracking(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	stats.Add(HandResult{NetBB: 1.0, FinalPot: 40, BigBlind: 4})
	stats.Add(HandResult{NetBB: 5.0, FinalPot: 400, BigBlind: 4})
	stats.Add(HandResult{NetBB: -1.0, FinalPot: 8, BigBlind: 4})

	if stats.MaxPotChips != 400 {
		t.Errorf("Expected max pot of 400 chips, got %d", stats.MaxPotChips)
	}
	if math.Abs(stats.MaxPotBB-100.0) > 1e-9 {
		t.Errorf("Expected max pot of 100bb, got %f", stats.MaxPotBB)
	}
	if stats.BigPots != 1 {
		t.Errorf("Expected 1 big pot (>=50bb), got %d", stats.BigPots)
	}
	if math.Abs(stats.BigPotsBB-5.0) > 1e-9 {
		t.Errorf("Expected big pot BB of 5.0, got %f", stats.BigPotsBB)
	}
}

func TestStatistics_Variance(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}

	// sample variance of [1, 3, 5] is 4
	for _, v := range []float64{1, 3, 5} {
		stats.Add(HandResult{NetBB: v})
	}

	if math.Abs(stats.Variance()-4.0) > 1e-9 {
		t.Errorf("Expected variance of 4, got %f", stats.Variance())
	}
	if math.Abs(stats.StdDev()-2.0) > 1e-9 {
		t.Errorf("Expected stddev of 2, got %f", stats.StdDev())
	}
}

func TestStatistics_Merge(t *testing.T) {
	t.Parallel()
	a := &Statistics{}
	b := &Statistics{}
	a.Add(HandResult{NetBB: 1, Position: game.BTN, FinalPot: 12, BigBlind: 4, StreetReached: game.Flop})
	b.Add(HandResult{NetBB: -3, Position: game.BB, WentToShowdown: true, FinalPot: 240, BigBlind: 4, StreetReached: game.Showdown})
	b.Add(HandResult{NetBB: 4, Position: game.BB, FinalPot: 20, BigBlind: 4, StreetReached: game.Preflop})

	a.Merge(b)

	if a.Hands != 3 {
		t.Errorf("Expected 3 hands, got %d", a.Hands)
	}
	if math.Abs(a.SumBB-2) > 1e-9 {
		t.Errorf("Expected sum of 2bb, got %f", a.SumBB)
	}
	if a.PositionResults[game.BB].Hands != 2 {
		t.Errorf("Expected 2 big blind hands, got %d", a.PositionResults[game.BB].Hands)
	}
	if a.StreetCounts[game.Flop] != 1 || a.StreetCounts[game.Showdown] != 1 || a.StreetCounts[game.Preflop] != 1 {
		t.Errorf("Unexpected street counts %v", a.StreetCounts)
	}
	if a.MaxPotChips != 240 || a.BigPots != 1 {
		t.Errorf("Expected max pot 240 and 1 big pot, got %d and %d", a.MaxPotChips, a.BigPots)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Expected merged stats to validate, got %v", err)
	}
}

func TestStatistics_ValidateErrors(t *testing.T) {
	t.Parallel()

	// valid builds a consistent two-hand record that each case then breaks
	valid := func() *Statistics {
		s := &Statistics{}
		s.Add(HandResult{NetBB: 1, Position: game.BTN, WentToShowdown: true})
		s.Add(HandResult{NetBB: -1, Position: game.BB})
		return s
	}
	if err := valid().Validate(); err != nil {
		t.Fatalf("Expected the baseline to validate, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Statistics)
		want   string
	}{
		{"ledger", func(s *Statistics) { s.ShowdownBB += 0.5 }, "ledger mismatch"},
		{"no hands", func(s *Statistics) { *s = Statistics{} }, "invalid hands count"},
		{"values", func(s *Statistics) { s.Values = s.Values[:1] }, "values array length"},
		{"wins", func(s *Statistics) { s.NonShowdownWins = 2 }, "exceeds total hands"},
		{"positions", func(s *Statistics) { s.PositionResults[game.BB].Hands = 0 }, "position hands total"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := s.Validate()
			if err == nil {
				t.Fatalf("Expected %q error, got nil", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected %q error, got: %v", tt.want, err)
			}
		})
	}
}
