package bot

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-sim/internal/game"
	"github.com/lox/holdem-sim/internal/randutil"
	"github.com/lox/holdem-sim/poker"
)

// RandSource supplies uniform draws in [0,1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Policy chooses actions for computer-controlled seats
type Policy struct {
	profile Profile
	rng     RandSource
	logger  *log.Logger
}

// Option configures a Policy
type Option func(*Policy)

// WithProfile selects the threshold table
func WithProfile(p Profile) Option {
	return func(pol *Policy) {
		pol.profile = p
	}
}

// WithRand sets the random source used for mixed strategies
func WithRand(rng RandSource) Option {
	return func(pol *Policy) {
		pol.rng = rng
	}
}

// WithLogger sets the decision logger
func WithLogger(logger *log.Logger) Option {
	return func(pol *Policy) {
		pol.logger = logger
	}
}

// New creates a policy using the balanced profile unless overridden
func New(opts ...Option) *Policy {
	p := &Policy{profile: Balanced}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = randutil.New(time.Now().UnixNano())
	}
	if p.logger == nil {
		p.logger = log.New(io.Discard)
	}
	p.logger = p.logger.WithPrefix("bot")
	return p
}

// Profile returns the policy's threshold table
func (p *Policy) Profile() Profile {
	return p.profile
}

// thinking accumulates the reasons behind a decision
type thinking struct {
	thoughts []string
}

func (t *thinking) add(format string, args ...any) {
	t.thoughts = append(t.thoughts, fmt.Sprintf(format, args...))
}

func (t *thinking) String() string {
	if len(t.thoughts) == 0 {
		return "no clear reasoning"
	}
	return strings.Join(t.thoughts, ". ")
}

// Decide picks an action for seat. It reads the state without modifying it
// and always returns an action the engine accepts while the seat is acting.
func (p *Policy) Decide(s *game.State, seat int) game.Action {
	player, ok := s.ActingPlayer()
	if !ok || player.ID != seat {
		return game.Action{Type: game.ActionFold, Seat: seat, Reasoning: "not acting"}
	}

	think := &thinking{}
	valid := s.ValidActions()
	call, _ := game.FindAction(valid, game.ActionCall)
	raise, canRaise := game.FindAction(valid, game.ActionRaise)

	strength := HandStrength(player.HoleCards, s.Community)
	think.add("%s on %s, strength %.3f", poker.FormatCards(player.HoleCards), boardLabel(s.Community), strength)
	if len(s.Community) == 0 && len(player.HoleCards) == 2 {
		think.add("%s starting hand", poker.TierOf(player.HoleCards[0], player.HoleCards[1]))
	}
	if bonus := drawBonus(player.HoleCards, s.Community); bonus > 0 {
		strength = math.Min(1, strength+bonus)
		think.add("drawing, +%.2f", bonus)
	}

	adjusted := p.profile.Adjust(strength, player.Position)
	think.add("%s weight %.2f, adjusted %.3f", player.Position, p.profile.PositionWeight(player.Position), adjusted)

	toCall := call.Min
	odds := PotOdds(s.Pot, toCall)
	reRaised := facingReRaise(s, player)
	th := p.profile.thresholds(s.Phase, reRaised)
	if toCall > 0 {
		think.add("%d to call into %d, pot odds %.2f", toCall, s.Pot, odds)
	}
	if reRaised {
		think.add("facing a re-raise, tightening")
	}

	decide := func(t game.ActionType, amount game.Chips) game.Action {
		a := game.Action{Type: t, Seat: seat, Amount: amount, Reasoning: think.String()}
		p.logger.Debug("decision",
			"hand", s.HandNumber,
			"seat", seat,
			"phase", s.Phase,
			"action", t,
			"amount", amount,
			"strength", adjusted,
			"reasoning", a.Reasoning)
		return a
	}

	// Calling would commit the whole stack
	if toCall > 0 && toCall >= player.Chips {
		threshold := th.Playable + odds*p.profile.AllInOddsWeight
		if adjusted >= threshold {
			think.add("clears all-in threshold %.3f", threshold)
			return decide(game.ActionAllIn, player.Chips+player.Bet)
		}
		think.add("below all-in threshold %.3f", threshold)
		return decide(game.ActionFold, 0)
	}

	raiseOr := func(fallback game.ActionType) game.Action {
		if !canRaise {
			return decide(fallback, 0)
		}
		amount := p.raiseSize(s, adjusted, th, raise)
		return decide(game.ActionRaise, amount)
	}

	switch {
	case adjusted >= th.Strong:
		if p.rng.Float64() < th.RaiseMix {
			think.add("strong, raising")
			return raiseOr(game.ActionCall)
		}
		think.add("strong, slowplaying")
		return decide(game.ActionCall, 0)

	case adjusted >= th.Playable:
		if toCall == 0 {
			if p.rng.Float64() < th.Bluff*2 {
				think.add("playable, betting")
				return raiseOr(game.ActionCall)
			}
			think.add("playable, checking")
			return decide(game.ActionCall, 0)
		}
		if adjusted >= odds+th.OddsMargin {
			think.add("playable at this price, calling")
			return decide(game.ActionCall, 0)
		}
		think.add("price too high, folding")
		return decide(game.ActionFold, 0)

	default:
		if toCall == 0 {
			if p.rng.Float64() < th.Bluff {
				think.add("weak, bluffing")
				return raiseOr(game.ActionCall)
			}
			think.add("weak, checking")
			return decide(game.ActionCall, 0)
		}
		think.add("weak, folding")
		return decide(game.ActionFold, 0)
	}
}

// raiseSize picks a raise-to amount. Preflop opens scale with the big blind,
// later raises scale with the pot. The result is clamped to the legal range.
func (p *Policy) raiseSize(s *game.State, strength float64, th Thresholds, bounds game.ValidAction) game.Chips {
	var target float64
	switch {
	case s.Phase == game.Preflop && s.CurrentBet <= s.BigBlind:
		target = float64(s.BigBlind) * (2.5 + strength)
	case s.Phase == game.Preflop:
		target = float64(s.CurrentBet) * 3
	default:
		bet := float64(s.Pot) * th.PotFraction * (0.5 + strength)
		target = float64(s.CurrentBet) + bet
	}

	amount := game.Chips(math.Round(target))
	return min(max(amount, bounds.Min), bounds.Max)
}

// HandStrength scores hole cards against the board on [0,1]
func HandStrength(hole, board []poker.Card) float64 {
	return poker.Evaluate(hole, board).Strength
}

// PotOdds is the share of the resulting pot the caller contributes
func PotOdds(pot, toCall game.Chips) float64 {
	if toCall <= 0 {
		return 0
	}
	return float64(toCall) / float64(pot+toCall)
}

// facingReRaise reports whether the seat already put voluntary chips in this
// round and has been raised since
func facingReRaise(s *game.State, p game.Player) bool {
	if s.LastRaiser == game.NoSeat || s.LastRaiser == p.ID || p.Bet >= s.CurrentBet {
		return false
	}
	if s.Phase == game.Preflop {
		return p.Bet > s.BigBlind
	}
	return p.Bet > 0
}

func boardLabel(board []poker.Card) string {
	if len(board) == 0 {
		return "no board"
	}
	return poker.FormatCards(board)
}
