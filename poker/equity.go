package poker

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Equity is the outcome of a Monte Carlo equity estimate
type Equity struct {
	Samples int
	// Wins counts samples the hero won outright
	Wins int
	// Ties counts samples the hero split with at least one opponent
	Ties int
	// Share is the hero's expected fraction of the pot, counting a split
	// between k players as 1/k of a win
	Share float64
}

// Win returns the fraction of samples won outright
func (e Equity) Win() float64 {
	if e.Samples == 0 {
		return 0
	}
	return float64(e.Wins) / float64(e.Samples)
}

// Tie returns the fraction of samples that ended in a split
func (e Equity) Tie() float64 {
	if e.Samples == 0 {
		return 0
	}
	return float64(e.Ties) / float64(e.Samples)
}

type workerResult struct {
	wins  int
	ties  int
	share float64
}

// EstimateEquity deals random opponent hands and board completions to
// estimate how often hole wins against the given number of opponents. Work
// is split across workers, each with its own source derived from seed, so
// a seed and worker count always give the same estimate.
func EstimateEquity(ctx context.Context, hole, board []Card, opponents, samples int, seed uint64) (Equity, error) {
	if len(hole) != 2 {
		return Equity{}, fmt.Errorf("need 2 hole cards, got %d", len(hole))
	}
	if len(board) > 5 {
		return Equity{}, fmt.Errorf("board has %d cards", len(board))
	}
	if opponents < 1 || 2*(opponents+1)+5 > DeckSize {
		return Equity{}, fmt.Errorf("opponents must be between 1 and %d, got %d", (DeckSize-5)/2-1, opponents)
	}
	if samples < 1 {
		return Equity{}, fmt.Errorf("samples must be positive, got %d", samples)
	}

	used := make(map[Card]bool, len(hole)+len(board))
	for _, c := range append(append([]Card(nil), hole...), board...) {
		if used[c] {
			return Equity{}, fmt.Errorf("duplicate card %s", c)
		}
		used[c] = true
	}
	var available []Card
	for _, c := range NewOrderedDeck().cards {
		if !used[c] {
			available = append(available, c)
		}
	}

	workers := min(runtime.NumCPU(), 8, samples)
	results := make([]workerResult, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := samples / workers
		if w < samples%workers {
			n++
		}
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, uint64(w)))
			res, err := sampleEquity(ctx, rng, hole, board, available, opponents, n)
			results[w] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Equity{}, err
	}

	eq := Equity{Samples: samples}
	var share float64
	for _, r := range results {
		eq.Wins += r.wins
		eq.Ties += r.ties
		share += r.share
	}
	eq.Share = share / float64(samples)
	return eq, nil
}

func sampleEquity(ctx context.Context, rng *rand.Rand, hole, board, available []Card, opponents, n int) (workerResult, error) {
	var res workerResult
	deck := append([]Card(nil), available...)
	need := 2*opponents + 5 - len(board)
	full := make([]Card, 5)
	copy(full, board)

	for i := range n {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		// partial Fisher-Yates: only the cards this sample consumes
		for j := range need {
			k := j + rng.IntN(len(deck)-j)
			deck[j], deck[k] = deck[k], deck[j]
		}
		copy(full[len(board):], deck[2*opponents:need])

		hero := Evaluate(hole, full)
		lost, tied := false, 1
		for o := range opponents {
			cmp := Compare(hero, Evaluate(deck[2*o:2*o+2], full))
			if cmp < 0 {
				lost = true
				break
			}
			if cmp == 0 {
				tied++
			}
		}
		switch {
		case lost:
		case tied == 1:
			res.wins++
			res.share++
		default:
			res.ties++
			res.share += 1 / float64(tied)
		}
	}
	return res, nil
}
