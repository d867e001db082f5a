package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lox/holdem-sim/internal/display"
	"github.com/lox/holdem-sim/poker"
)

type EvalCmd struct {
	Cards     []string `arg:"" help:"Two hole cards followed by 0, 3, 4 or 5 board cards (e.g. As Ks Ad Kd Kc 2h 7c)"`
	Opponents int      `short:"o" help:"Estimate equity against this many random hands (0 to skip)"`
	Samples   int      `default:"10000" help:"Monte Carlo samples for the equity estimate"`
	Seed      int64    `help:"Seed for the equity estimate, 0 picks one from the clock"`
}

func (c *EvalCmd) Run(_ *Globals) error {
	hole, board, err := parseHand(c.Cards)
	if err != nil {
		return err
	}

	r := display.NewRenderer()
	res := poker.Evaluate(hole, board)

	fmt.Printf("Hole:     %s (%s)\n", r.Cards(hole), poker.TierOf(hole[0], hole[1]))
	if len(board) > 0 {
		fmt.Printf("Board:    %s\n", r.Cards(board))
		fmt.Printf("Best:     %s\n", r.Cards(res.Best))
	}
	fmt.Printf("Hand:     %s\n", res.Category)
	fmt.Printf("Strength: %.4f\n", res.Strength)

	if c.Opponents > 0 {
		seed := c.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		eq, err := poker.EstimateEquity(context.Background(), hole, board, c.Opponents, c.Samples, uint64(seed))
		if err != nil {
			return err
		}
		fmt.Printf("Equity:   %.1f%% vs %d (win %.1f%%, tie %.1f%%, %d samples)\n",
			eq.Share*100, c.Opponents, eq.Win()*100, eq.Tie()*100, eq.Samples)
	}
	return nil
}

// parseHand splits card arguments into hole and board cards
func parseHand(args []string) (hole, board []poker.Card, err error) {
	cards, err := poker.ParseCards(strings.Join(args, " "))
	if err != nil {
		return nil, nil, err
	}
	if len(cards) < 2 {
		return nil, nil, fmt.Errorf("need two hole cards, got %d cards", len(cards))
	}
	if n := len(cards) - 2; n != 0 && (n < 3 || n > 5) {
		return nil, nil, fmt.Errorf("board must have 0, 3, 4 or 5 cards, got %d", n)
	}

	seen := map[poker.Card]bool{}
	for _, c := range cards {
		if seen[c] {
			return nil, nil, fmt.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}
	return cards[:2], cards[2:], nil
}
