package game

import (
	"fmt"
	"slices"

	"github.com/lox/holdem-sim/poker"
)

// Resolve awards the pot of a hand that has reached showdown. Applying it to
// an already resolved hand returns an equal state.
func (e *Engine) Resolve(s *State) (*State, error) {
	if s.Phase != Showdown {
		return nil, fmt.Errorf("resolve during %s: %w", s.Phase, ErrIllegalPhase)
	}
	next := s.Clone()
	if next.Showdown == nil || next.Pot > 0 {
		if err := e.resolve(next); err != nil {
			return nil, err
		}
	}
	return next, nil
}

// showdown ends betting and resolves the pot
func (e *Engine) showdown(s *State) error {
	s.Phase = Showdown
	s.CurrentPlayer = NoSeat
	s.CurrentBet = 0
	for i := range s.Players {
		s.Players[i].Bet = 0
	}
	return e.resolve(s)
}

func (e *Engine) resolve(s *State) error {
	result := &ShowdownResult{Pot: s.Pot}

	contenders := make([]int, 0, len(s.Players))
	for _, p := range s.Players {
		if p.InHand() {
			contenders = append(contenders, p.ID)
		}
	}

	switch len(contenders) {
	case 0:
		return fmt.Errorf("showdown with no players in hand: %w", ErrIllegalPhase)
	case 1:
		result.Winners = contenders
	default:
		// A hand that reached showdown with live players always has a full
		// board; deal any missing cards for states built by hand.
		if missing := 5 - len(s.Community); missing > 0 {
			cards, deck, err := s.Deck.DrawN(missing)
			if err != nil {
				return mapDeckErr(err)
			}
			s.Deck = deck
			s.Community = append(s.Community, cards...)
		}

		for _, seat := range contenders {
			result.Rankings = append(result.Rankings, Ranking{
				Seat:   seat,
				Result: poker.Evaluate(s.Players[seat].HoleCards, s.Community),
			})
		}
		slices.SortStableFunc(result.Rankings, func(a, b Ranking) int {
			if c := poker.Compare(b.Result, a.Result); c != 0 {
				return c
			}
			return a.Seat - b.Seat
		})

		best := result.Rankings[0].Result
		for _, r := range result.Rankings {
			if poker.Compare(r.Result, best) == 0 {
				result.Winners = append(result.Winners, r.Seat)
			}
		}
		slices.Sort(result.Winners)
	}

	result.Payouts = SplitPot(s.Pot, result.Winners)
	for _, pay := range result.Payouts {
		s.Players[pay.Seat].Chips += pay.Amount
	}
	s.Pot = 0
	s.Showdown = result

	e.logger.Debug("pot awarded",
		"hand", s.HandNumber,
		"pot", result.Pot,
		"winners", result.Winners,
		"uncontested", result.Uncontested())
	return nil
}

// SplitPot divides pot evenly among winners. The remainder is handed out one
// chip at a time in ascending seat order, so 100 split three ways pays
// 34, 33, 33.
func SplitPot(pot Chips, winners []int) []Payout {
	if len(winners) == 0 {
		return nil
	}
	seats := slices.Clone(winners)
	slices.Sort(seats)

	share := pot / Chips(len(seats))
	remainder := pot % Chips(len(seats))

	payouts := make([]Payout, len(seats))
	for i, seat := range seats {
		amount := share
		if Chips(i) < remainder {
			amount++
		}
		payouts[i] = Payout{Seat: seat, Amount: amount}
	}
	return payouts
}
