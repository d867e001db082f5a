package game

import (
	"slices"

	"github.com/lox/holdem-sim/poker"
)

// Chips is an amount in the smallest betting unit (half a small blind)
type Chips int

// BB expresses the amount in big blinds
func (c Chips) BB(bigBlind Chips) float64 {
	if bigBlind == 0 {
		return 0
	}
	return float64(c) / float64(bigBlind)
}

// Phase is the stage of a hand. Phases only move forward within a hand.
type Phase uint8

const (
	NotStarted Phase = iota
	Preflop
	Flop
	Turn
	River
	Showdown
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// IsBetting reports whether actions are accepted in this phase
func (p Phase) IsBetting() bool {
	return p >= Preflop && p <= River
}

// Status is a player's standing in the current betting round
type Status uint8

const (
	Waiting Status = iota
	Acting
	Folded
	Called
	Raised
	AllIn
)

func (s Status) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Acting:
		return "acting"
	case Folded:
		return "folded"
	case Called:
		return "called"
	case Raised:
		return "raised"
	case AllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// Player is one seat at the table. Seats persist across hands.
type Player struct {
	ID    int // seat index
	Name  string
	Human bool
	Chips Chips
	// StartingChips is the stack at the start of the hand, before blinds
	StartingChips Chips
	// Bet is the amount committed in the current betting round
	Bet       Chips
	HoleCards []poker.Card
	// PositionIndex is the clockwise offset from the button
	PositionIndex int
	Position      Position
	Status        Status
}

// InHand reports whether the player has not folded
func (p Player) InHand() bool {
	return p.Status != Folded
}

// CanAct reports whether the player may still take betting actions this hand
func (p Player) CanAct() bool {
	return p.Status != Folded && p.Status != AllIn
}

// ActionType is the kind of action a seat submits
type ActionType uint8

const (
	ActionFold ActionType = iota
	ActionCall
	ActionRaise
	ActionAllIn
)

func (a ActionType) String() string {
	switch a {
	case ActionFold:
		return "fold"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	case ActionAllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// Action is a single move submitted for a seat. Amount is the total bet to
// raise to and is only read for ActionRaise.
type Action struct {
	Type   ActionType
	Seat   int
	Amount Chips
	// Reasoning is free text from whoever chose the action, kept for logs
	Reasoning string
}

// Ranking is one contender's evaluated hand at showdown
type Ranking struct {
	Seat int
	poker.Result
}

// Payout is the amount a winner collected
type Payout struct {
	Seat   int
	Amount Chips
}

// ShowdownResult describes how the pot was awarded
type ShowdownResult struct {
	// Winners are seat ids in ascending order
	Winners []int
	// Rankings are ordered best hand first. Empty when the pot was uncontested.
	Rankings []Ranking
	Payouts  []Payout
	Pot      Chips
}

// Uncontested reports whether the pot was won without a showdown
func (r *ShowdownResult) Uncontested() bool {
	return len(r.Rankings) == 0
}

func (r *ShowdownResult) clone() *ShowdownResult {
	c := *r
	c.Winners = slices.Clone(r.Winners)
	c.Payouts = slices.Clone(r.Payouts)
	c.Rankings = make([]Ranking, len(r.Rankings))
	for i, rk := range r.Rankings {
		rk.Best = slices.Clone(rk.Best)
		rk.Ranks = slices.Clone(rk.Ranks)
		c.Rankings[i] = rk
	}
	return &c
}

// NoSeat marks the absence of a seat (no actor, no raiser)
const NoSeat = -1

// State is a complete snapshot of the table. Engine transitions never modify
// the State they are given; they return a new one.
type State struct {
	Phase      Phase
	HandNumber int
	Players    []Player
	Community  []poker.Card
	// Pot holds every chip committed this hand, including the current round's bets
	Pot        Chips
	CurrentBet Chips
	// MinRaise is the size of the last full raise this round
	MinRaise      Chips
	Dealer        int
	SmallBlind    Chips
	BigBlind      Chips
	Deck          poker.Deck
	CurrentPlayer int
	LastRaiser    int
	LastAction    *Action
	Showdown      *ShowdownResult
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	c := *s
	c.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		p.HoleCards = slices.Clone(p.HoleCards)
		c.Players[i] = p
	}
	c.Community = slices.Clone(s.Community)
	if s.LastAction != nil {
		a := *s.LastAction
		c.LastAction = &a
	}
	if s.Showdown != nil {
		c.Showdown = s.Showdown.clone()
	}
	return &c
}

// TotalChips returns the sum of all stacks plus the pot
func (s *State) TotalChips() Chips {
	total := s.Pot
	for _, p := range s.Players {
		total += p.Chips
	}
	return total
}

// ActingPlayer returns the seat whose turn it is
func (s *State) ActingPlayer() (Player, bool) {
	if s.CurrentPlayer < 0 || s.CurrentPlayer >= len(s.Players) {
		return Player{}, false
	}
	p := s.Players[s.CurrentPlayer]
	if p.Status != Acting {
		return Player{}, false
	}
	return p, true
}

// ToCall returns the amount the seat must add to match the table bet
func (s *State) ToCall(seat int) Chips {
	p := s.Players[seat]
	return max(0, s.CurrentBet-p.Bet)
}

// PlayersInHand counts seats that have not folded
func (s *State) PlayersInHand() int {
	n := 0
	for _, p := range s.Players {
		if p.InHand() {
			n++
		}
	}
	return n
}

func (s *State) playersAbleToAct() int {
	n := 0
	for _, p := range s.Players {
		if p.CanAct() {
			n++
		}
	}
	return n
}

// commit moves chips from a player's stack into their bet and the pot,
// capped at the stack. It returns the amount moved.
func (s *State) commit(seat int, amount Chips) Chips {
	p := &s.Players[seat]
	amount = min(amount, p.Chips)
	p.Chips -= amount
	p.Bet += amount
	s.Pot += amount
	if p.Chips == 0 {
		p.Status = AllIn
	}
	return amount
}
