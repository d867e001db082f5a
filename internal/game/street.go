package game

import (
	"fmt"

	"github.com/lox/holdem-sim/poker"
)

// streetCards is the number of community cards dealt entering each phase
var streetCards = map[Phase]int{
	Flop:  3,
	Turn:  1,
	River: 1,
}

// AdvancePhase closes a completed betting round and moves to the next
// street or to showdown. Apply already does this on its own; AdvancePhase
// exists for callers that build or inspect states directly.
func (e *Engine) AdvancePhase(s *State) (*State, error) {
	if !s.Phase.IsBetting() {
		return nil, fmt.Errorf("advance from %s: %w", s.Phase, ErrIllegalPhase)
	}
	if !IsRoundComplete(s) {
		return nil, fmt.Errorf("advance from %s: %w", s.Phase, ErrRoundIncomplete)
	}
	next := s.Clone()
	if err := e.advance(next); err != nil {
		return nil, err
	}
	return next, nil
}

// openRound prompts the first actor of the current street. When nobody can
// bet the board is run out instead.
func (e *Engine) openRound(s *State) error {
	if !IsRoundComplete(s) {
		if seat := FirstToAct(s.Phase, s.Dealer, s.Players); seat != NoSeat {
			s.CurrentPlayer = seat
			s.Players[seat].Status = Acting
			return nil
		}
	}
	return e.advance(s)
}

// advance moves a state whose round is complete forward until a seat must
// act or the hand reaches showdown
func (e *Engine) advance(s *State) error {
	s.CurrentPlayer = NoSeat
	if s.PlayersInHand() <= 1 || s.Phase == River {
		return e.showdown(s)
	}
	if err := e.dealStreet(s); err != nil {
		return err
	}
	return e.openRound(s)
}

// dealStreet clears the round's bets and deals the next street's cards
func (e *Engine) dealStreet(s *State) error {
	s.Phase++
	s.CurrentBet = 0
	s.MinRaise = s.BigBlind
	s.LastRaiser = NoSeat
	for i := range s.Players {
		p := &s.Players[i]
		p.Bet = 0
		if p.CanAct() {
			p.Status = Waiting
		}
	}

	cards, deck, err := s.Deck.DrawN(streetCards[s.Phase])
	if err != nil {
		return mapDeckErr(err)
	}
	s.Deck = deck
	s.Community = append(s.Community, cards...)

	e.logger.Debug("street dealt",
		"hand", s.HandNumber,
		"phase", s.Phase,
		"board", poker.FormatCards(s.Community),
		"pot", s.Pot)
	return nil
}
