package phh

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lox/holdem-sim/internal/game"
	"github.com/lox/holdem-sim/poker"
)

// VariantNoLimitHoldem is the PHH code for no-limit Texas hold'em
const VariantNoLimitHoldem = "NT"

// Recorder builds a hand history by observing successive engine states.
// Call Observe after every applied action and Finish once the hand is over.
type Recorder struct {
	hist *HandHistory
	// index maps a seat to its PHH player index
	index      []int
	order      []int
	boardLen   int
	currentBet game.Chips
}

// NewRecorder starts recording from a state returned by StartHand
func NewRecorder(s *game.State, table string, now time.Time) *Recorder {
	n := len(s.Players)
	r := &Recorder{
		index: make([]int, n),
		order: make([]int, n),
		hist: &HandHistory{
			Variant:           VariantNoLimitHoldem,
			Table:             table,
			SeatCount:         n,
			Seats:             make([]int, n),
			Antes:             make([]int, n),
			BlindsOrStraddles: make([]int, n),
			MinBet:            int(s.BigBlind),
			StartingStacks:    make([]int, n),
			Players:           make([]string, n),
			HandID:            strconv.Itoa(s.HandNumber),
		},
		currentBet: s.CurrentBet,
	}
	r.hist.SetTimestamp(now)

	sb := game.SmallBlindSeat(s.Dealer, n)
	bb := game.BigBlindSeat(s.Dealer, n)
	for pos := range n {
		seat := (sb + pos) % n
		p := s.Players[seat]
		r.order[pos] = seat
		r.index[seat] = pos

		start := p.StartingChips
		r.hist.Seats[pos] = seat + 1
		r.hist.StartingStacks[pos] = int(start)
		r.hist.Players[pos] = p.Name

		switch seat {
		case sb:
			r.hist.BlindsOrStraddles[pos] = int(min(s.SmallBlind, start))
		case bb:
			r.hist.BlindsOrStraddles[pos] = int(min(s.BigBlind, start))
		}
	}

	for pos, seat := range r.order {
		r.add("d dh p%d %s", pos+1, joinCards(s.Players[seat].HoleCards))
	}
	r.dealBoard(s.Community)
	return r
}

// Observe records the action that produced s and any board cards it dealt
func (r *Recorder) Observe(s *game.State) {
	if a := s.LastAction; a != nil && a.Seat >= 0 && a.Seat < len(r.index) {
		player := r.index[a.Seat] + 1
		switch a.Type {
		case game.ActionFold:
			r.add("p%d f", player)
		case game.ActionCall:
			r.add("p%d cc", player)
		case game.ActionRaise:
			r.add("p%d cbr %d", player, a.Amount)
		case game.ActionAllIn:
			if a.Amount > r.currentBet {
				r.add("p%d cbr %d", player, a.Amount)
			} else {
				r.add("p%d cc", player)
			}
		}
	}
	r.dealBoard(s.Community)
	r.currentBet = s.CurrentBet
}

// Finish completes the history from the final state. Hands that reached a
// showdown also record the cards shown and the chips won.
func (r *Recorder) Finish(s *game.State) *HandHistory {
	n := len(r.order)
	r.hist.FinishingStacks = make([]int, n)
	for pos, seat := range r.order {
		r.hist.FinishingStacks[pos] = int(s.Players[seat].Chips)
	}

	if sd := s.Showdown; sd != nil {
		if !sd.Uncontested() {
			shown := make(map[int]bool, len(sd.Rankings))
			for _, rk := range sd.Rankings {
				shown[rk.Seat] = true
			}
			for pos, seat := range r.order {
				if shown[seat] {
					r.add("p%d sm %s", pos+1, joinCards(s.Players[seat].HoleCards))
				}
			}
		}
		r.hist.Winnings = make([]int, n)
		for _, pay := range sd.Payouts {
			r.hist.Winnings[r.index[pay.Seat]] += int(pay.Amount)
		}
	}
	return r.hist
}

// dealBoard records community cards not yet seen, one street per action
func (r *Recorder) dealBoard(community []poker.Card) {
	for r.boardLen < len(community) {
		n := 1
		if r.boardLen == 0 {
			n = 3
		}
		end := min(r.boardLen+n, len(community))
		r.add("d db %s", joinCards(community[r.boardLen:end]))
		r.boardLen = end
	}
}

func (r *Recorder) add(format string, args ...any) {
	r.hist.Actions = append(r.hist.Actions, fmt.Sprintf(format, args...))
}

func joinCards(cards []poker.Card) string {
	if len(cards) == 0 {
		return "????"
	}
	var s string
	for _, c := range cards {
		s += c.String()
	}
	return s
}
