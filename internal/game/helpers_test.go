package game

import (
	"math/rand/v2"
	"testing"

	"github.com/lox/holdem-sim/internal/randutil"
	"github.com/lox/holdem-sim/poker"
)

func newTestEngine(t *testing.T, seats int, seed int64, opts ...Option) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seats = seats
	all := append([]Option{WithConfig(cfg), WithRNG(randutil.New(seed))}, opts...)
	return NewEngine(all...)
}

// scriptedDeck deals the given cards first, followed by the rest of an ordered deck
func scriptedDeck(t *testing.T, s string) Option {
	t.Helper()
	top, err := poker.ParseCards(s)
	if err != nil {
		t.Fatalf("bad scripted cards: %v", err)
	}
	used := make(map[poker.Card]bool, len(top))
	for _, c := range top {
		used[c] = true
	}
	cards := append([]poker.Card(nil), top...)
	for _, c := range poker.NewOrderedDeck().Cards() {
		if !used[c] {
			cards = append(cards, c)
		}
	}
	return WithDeckSource(func(*rand.Rand) poker.Deck {
		return poker.NewDeckFromCards(cards...)
	})
}

func mustStart(t *testing.T, e *Engine, s *State) *State {
	t.Helper()
	next, err := e.StartHand(s)
	if err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	return next
}

func mustApply(t *testing.T, e *Engine, s *State, typ ActionType, amount Chips) *State {
	t.Helper()
	next, err := e.Apply(s, Action{Type: typ, Seat: s.CurrentPlayer, Amount: amount})
	if err != nil {
		t.Fatalf("Apply(%s %d) for seat %d: %v", typ, amount, s.CurrentPlayer, err)
	}
	return next
}

// randomAction picks a legal action, favouring calls so hands reach showdown
func randomAction(rng *rand.Rand, s *State) Action {
	actions := s.ValidActions()
	roll := rng.Float64()
	pick := func(t ActionType) (ValidAction, bool) { return FindAction(actions, t) }

	var va ValidAction
	var ok bool
	switch {
	case roll < 0.15:
		va, ok = pick(ActionFold)
	case roll < 0.65:
		va, ok = pick(ActionCall)
	case roll < 0.92:
		va, ok = pick(ActionRaise)
	default:
		va, ok = pick(ActionAllIn)
	}
	if !ok {
		va, _ = pick(ActionCall)
	}

	amount := va.Min
	if va.Max > va.Min {
		amount += Chips(rng.IntN(int(va.Max-va.Min) + 1))
	}
	return Action{Type: va.Type, Seat: s.CurrentPlayer, Amount: amount}
}

func countStatus(s *State, status Status) int {
	n := 0
	for _, p := range s.Players {
		if p.Status == status {
			n++
		}
	}
	return n
}
