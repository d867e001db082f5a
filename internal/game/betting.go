package game

import "fmt"

// ValidAction describes one legal action for the acting seat. For
// ActionCall the bounds are the chips that will be added; for ActionRaise
// and ActionAllIn they are totals to raise to.
type ValidAction struct {
	Type ActionType
	Min  Chips
	Max  Chips
}

// ValidActions lists the legal actions for the acting seat, or nil if no
// seat is acting. A call with nothing to call is a check.
func (s *State) ValidActions() []ValidAction {
	p, ok := s.ActingPlayer()
	if !ok {
		return nil
	}

	toCall := min(s.ToCall(p.ID), p.Chips)
	limit := p.Chips + p.Bet

	actions := []ValidAction{
		{Type: ActionFold},
		{Type: ActionCall, Min: toCall, Max: toCall},
	}
	if limit > s.CurrentBet {
		actions = append(actions, ValidAction{
			Type: ActionRaise,
			Min:  min(s.CurrentBet+s.MinRaise, limit),
			Max:  limit,
		})
	}
	actions = append(actions, ValidAction{Type: ActionAllIn, Min: limit, Max: limit})
	return actions
}

// FindAction returns the entry for the given type
func FindAction(actions []ValidAction, t ActionType) (ValidAction, bool) {
	for _, va := range actions {
		if va.Type == t {
			return va, true
		}
	}
	return ValidAction{}, false
}

// Apply validates and applies one action. On success the returned state has
// either prompted the next seat or, if the betting round closed, dealt the
// next street (running out the board when nobody can bet) or resolved the
// showdown. On error the input state remains authoritative.
func (e *Engine) Apply(s *State, a Action) (*State, error) {
	if !s.Phase.IsBetting() {
		return nil, fmt.Errorf("%s during %s: %w", a.Type, s.Phase, ErrIllegalPhase)
	}
	if a.Seat < 0 || a.Seat >= len(s.Players) || a.Seat != s.CurrentPlayer || s.Players[a.Seat].Status != Acting {
		return nil, fmt.Errorf("seat %d acted, seat %d to act: %w", a.Seat, s.CurrentPlayer, ErrOutOfTurn)
	}

	next := s.Clone()
	seat := a.Seat
	p := &next.Players[seat]

	switch a.Type {
	case ActionFold:
		p.Status = Folded
	case ActionCall:
		next.commit(seat, next.CurrentBet-p.Bet)
		if p.Status != AllIn {
			p.Status = Called
		}
	case ActionRaise:
		limit := p.Chips + p.Bet
		if a.Amount <= next.CurrentBet || a.Amount > limit {
			return nil, fmt.Errorf("raise to %d (valid range: %d-%d): %w",
				a.Amount, next.CurrentBet+1, limit, ErrInvalidRaise)
		}
		next.raiseTo(seat, a.Amount)
	case ActionAllIn:
		total := p.Chips + p.Bet
		if total > next.CurrentBet {
			next.raiseTo(seat, total)
		} else {
			next.commit(seat, p.Chips)
		}
	default:
		return nil, fmt.Errorf("action type %d: %w", a.Type, ErrUnknownAction)
	}

	recorded := a
	if a.Type != ActionFold {
		recorded.Amount = p.Bet
	}
	next.LastAction = &recorded

	e.logger.Debug("action applied",
		"hand", next.HandNumber,
		"phase", next.Phase,
		"seat", seat,
		"action", a.Type,
		"bet", p.Bet,
		"status", p.Status,
		"pot", next.Pot)

	if IsRoundComplete(next) {
		next.CurrentPlayer = NoSeat
		if err := e.advance(next); err != nil {
			return nil, err
		}
		return next, nil
	}

	actor := nextActor(next, seat)
	if actor == NoSeat {
		if err := e.advance(next); err != nil {
			return nil, err
		}
		return next, nil
	}
	next.CurrentPlayer = actor
	next.Players[actor].Status = Acting
	return next, nil
}

// raiseTo lifts the seat's bet to amount and reopens action for everyone
// else still able to bet
func (s *State) raiseTo(seat int, amount Chips) {
	p := &s.Players[seat]
	if inc := amount - s.CurrentBet; inc >= s.MinRaise {
		s.MinRaise = inc
	}
	s.commit(seat, amount-p.Bet)
	s.CurrentBet = amount
	s.LastRaiser = seat
	if p.Status != AllIn {
		p.Status = Raised
	}
	for i := range s.Players {
		if i != seat && s.Players[i].CanAct() {
			s.Players[i].Status = Waiting
		}
	}
}

// needsToAct reports whether a seat still owes a decision this round: it
// has not acted since the last raise or has not matched the table bet
func needsToAct(s *State, p Player) bool {
	if !p.CanAct() {
		return false
	}
	return p.Status == Waiting || p.Status == Acting || p.Bet < s.CurrentBet
}

// IsRoundComplete reports whether the current betting round is closed. A
// round closes when at most one player remains in the hand, when every
// player able to bet has acted since the last raise and matched the table
// bet, or when at most one player can still bet and owes nothing.
func IsRoundComplete(s *State) bool {
	switch {
	case s.Phase == Showdown:
		return true
	case !s.Phase.IsBetting():
		return false
	case s.PlayersInHand() <= 1:
		return true
	}

	pending := false
	for _, p := range s.Players {
		if needsToAct(s, p) {
			pending = true
			break
		}
	}
	if !pending {
		return true
	}

	if s.playersAbleToAct() == 1 {
		for _, p := range s.Players {
			if p.CanAct() && p.Bet >= s.CurrentBet {
				return true
			}
		}
	}
	return false
}

// nextActor finds the next seat clockwise from the given one that owes a decision
func nextActor(s *State, from int) int {
	n := len(s.Players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if needsToAct(s, s.Players[seat]) {
			return seat
		}
	}
	return NoSeat
}
