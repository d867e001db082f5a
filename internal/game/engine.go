package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-sim/internal/randutil"
	"github.com/lox/holdem-sim/poker"
)

// Engine applies the rules of no-limit hold'em to State values. It holds no
// table state of its own beyond configuration and the shuffle source, so
// one Engine can drive any number of states sequentially. An Engine is not
// safe for concurrent use because the RNG is shared.
type Engine struct {
	cfg     Config
	rng     *rand.Rand
	logger  *log.Logger
	newDeck func(rng *rand.Rand) poker.Deck
}

// Option configures an Engine during creation
type Option func(*Engine)

// WithConfig sets the table configuration
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithRNG sets the random source used to shuffle decks
func WithRNG(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithLogger sets the logger for transition events
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithDeckSource replaces the freshly shuffled deck dealt each hand.
// Useful for scripted hands in tests.
func WithDeckSource(fn func(rng *rand.Rand) poker.Deck) Option {
	return func(e *Engine) {
		e.newDeck = fn
	}
}

// NewEngine creates an engine. It panics if the configuration is invalid;
// validate user supplied configuration with Config.Validate first.
//
//	// Deterministic engine for tests
//	e := game.NewEngine(game.WithRNG(randutil.New(42)))
//	s, err := e.StartHand(e.Initialize())
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cfg:     DefaultConfig(),
		newDeck: poker.NewShuffledDeck,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid table config: %v", err))
	}
	if e.rng == nil {
		e.rng = randutil.New(time.Now().UnixNano())
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// Config returns the table configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Initialize returns a table with every seat holding the starting stack and
// no hand in progress
func (e *Engine) Initialize() *State {
	n := e.cfg.Seats
	s := &State{
		Phase:         NotStarted,
		Players:       make([]Player, n),
		SmallBlind:    e.cfg.SmallBlind,
		BigBlind:      e.cfg.BigBlind,
		MinRaise:      e.cfg.BigBlind,
		Dealer:        0,
		CurrentPlayer: NoSeat,
		LastRaiser:    NoSeat,
		Deck:          e.newDeck(e.rng),
	}
	for i := range s.Players {
		s.Players[i] = Player{
			ID:            i,
			Name:          e.cfg.SeatName(i),
			Human:         i == e.cfg.HumanSeat,
			Chips:         e.cfg.StartingStack,
			StartingChips: e.cfg.StartingStack,
			Status:        Waiting,
		}
	}
	assignPositions(s.Players, s.Dealer)
	return s
}

// StartHand begins a new hand: busted seats are replenished, the button
// moves one seat, blinds are posted, two cards are dealt to every seat and
// the first preflop actor is prompted. A new hand may start from
// NotStarted or after Showdown.
func (e *Engine) StartHand(s *State) (*State, error) {
	if s.Phase != NotStarted && s.Phase != Showdown {
		return nil, fmt.Errorf("start hand during %s: %w", s.Phase, ErrIllegalPhase)
	}

	next := s.Clone()
	e.resetTable(next)
	n := len(next.Players)

	next.HandNumber++
	for i := range next.Players {
		next.Players[i].StartingChips = next.Players[i].Chips
	}
	next.Dealer = (next.Dealer + 1) % n
	assignPositions(next.Players, next.Dealer)
	next.Deck = e.newDeck(e.rng)

	sb := SmallBlindSeat(next.Dealer, n)
	bb := BigBlindSeat(next.Dealer, n)
	next.commit(sb, next.SmallBlind)
	next.commit(bb, next.BigBlind)
	next.CurrentBet = next.BigBlind
	next.MinRaise = next.BigBlind

	// Two passes starting left of the button, one card per seat each pass
	for range 2 {
		for i := 1; i <= n; i++ {
			seat := (next.Dealer + i) % n
			card, deck, err := next.Deck.Draw()
			if err != nil {
				return nil, mapDeckErr(err)
			}
			next.Deck = deck
			next.Players[seat].HoleCards = append(next.Players[seat].HoleCards, card)
		}
	}

	next.Phase = Preflop
	e.logger.Debug("hand started",
		"hand", next.HandNumber,
		"dealer", next.Dealer,
		"sb", sb,
		"bb", bb,
		"pot", next.Pot)

	if err := e.openRound(next); err != nil {
		return nil, err
	}
	return next, nil
}

// EndHand clears the finished hand and returns the table to NotStarted.
// Busted seats are replenished to the starting stack.
func (e *Engine) EndHand(s *State) (*State, error) {
	if s.Phase != Showdown && s.Phase != NotStarted {
		return nil, fmt.Errorf("end hand during %s: %w", s.Phase, ErrIllegalPhase)
	}
	next := s.Clone()
	e.resetTable(next)
	next.Phase = NotStarted
	return next, nil
}

// resetTable clears per-hand fields and replenishes busted stacks
func (e *Engine) resetTable(s *State) {
	for i := range s.Players {
		p := &s.Players[i]
		if p.Chips <= 0 {
			e.logger.Debug("replenishing busted seat", "seat", p.ID, "stack", e.cfg.StartingStack)
			p.Chips = e.cfg.StartingStack
		}
		p.HoleCards = nil
		p.Bet = 0
		p.Status = Waiting
	}
	s.Community = nil
	s.Pot = 0
	s.CurrentBet = 0
	s.MinRaise = s.BigBlind
	s.CurrentPlayer = NoSeat
	s.LastRaiser = NoSeat
	s.LastAction = nil
	s.Showdown = nil
}

func mapDeckErr(err error) error {
	if errors.Is(err, poker.ErrDeckExhausted) {
		return fmt.Errorf("dealing: %w", ErrDeckExhausted)
	}
	return err
}
