package simulator

import (
	"fmt"
	"io"

	"github.com/lox/holdem-sim/internal/game"
)

// PrintSummary writes a report of simulation results, one block per seat
func PrintSummary(w io.Writer, r *Result, cfg game.Config) {
	hands := r.Hands()
	fmt.Fprintf(w, "\n=== SIMULATION RESULTS ===\n")
	fmt.Fprintf(w, "Tables: %d, hands played: %d\n", len(r.Tables), hands)
	if hands > 0 {
		fmt.Fprintf(w, "Showdowns: %d (%.1f%%)\n", r.Showdowns(), float64(r.Showdowns())/float64(hands)*100)
	}
	largest := r.LargestPot()
	fmt.Fprintf(w, "Largest pot: %d chips (%.1f bb)\n", largest, largest.BB(cfg.BigBlind))

	for seat, stats := range r.Seats {
		if stats.Hands == 0 {
			continue
		}
		low, high := stats.ConfidenceInterval95()
		fmt.Fprintf(w, "\n--- Seat %d: %s ---\n", seat, cfg.SeatName(seat))
		fmt.Fprintf(w, "Mean: %.4f bb/hand (median %.4f, std dev %.4f)\n", stats.Mean(), stats.Median(), stats.StdDev())
		fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] bb/hand\n", low, high)
		fmt.Fprintf(w, "Percentiles: P5=%.3f, P25=%.3f, P75=%.3f, P95=%.3f\n",
			stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
		fmt.Fprintf(w, "Winning hands: %d showdown, %d without showdown\n", stats.ShowdownWins, stats.NonShowdownWins)
		fmt.Fprintf(w, "Showdown: %.2f bb/hand, non-showdown: %.2f bb/hand\n",
			stats.ShowdownBB/float64(stats.Hands), stats.NonShowdownBB/float64(stats.Hands))
		fmt.Fprintf(w, "Big pots (>=50bb): %d, %.2f bb total\n", stats.BigPots, stats.BigPotsBB)

		for pos, ps := range stats.PositionResults {
			if ps.Hands > 0 {
				p := game.Position(pos)
				fmt.Fprintf(w, "  %-5s %5d hands, %.3f bb/hand\n", p, ps.Hands, stats.PositionMean(p))
			}
		}
	}
}
