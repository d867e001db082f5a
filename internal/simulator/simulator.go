package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-sim/internal/bot"
	"github.com/lox/holdem-sim/internal/fileutil"
	"github.com/lox/holdem-sim/internal/game"
	"github.com/lox/holdem-sim/internal/phh"
	"github.com/lox/holdem-sim/internal/randutil"
	"github.com/lox/holdem-sim/internal/statistics"
)

// ErrChipsNotConserved is returned when a hand creates or destroys chips
var ErrChipsNotConserved = errors.New("chips not conserved")

// Config holds configuration for running simulations
type Config struct {
	Table game.Config
	// Hands is the number of hands played at each table
	Hands  int
	Tables int
	Seed   int64
	// ThinkingDelay pauses before every decision
	ThinkingDelay time.Duration
	// Profiles assigns a policy profile per seat; missing seats play Balanced
	Profiles []bot.Profile
	// HistoryDir, when set, receives one PHHS file of hand histories per table
	HistoryDir string
	Clock      quartz.Clock
	Logger     *log.Logger
}

// TableResult summarises the hands played at one table
type TableResult struct {
	ID          uuid.UUID
	Hands       int
	Showdowns   int
	Uncontested int
	LargestPot  game.Chips
	// Seats holds per-seat statistics indexed by seat
	Seats []*statistics.Statistics
	Final *game.State
	// HistoryFile is the path the table's hand histories were written to
	HistoryFile string
}

// Result is the outcome of a simulation across all tables
type Result struct {
	Tables []TableResult
	// Seats merges per-seat statistics across tables
	Seats []*statistics.Statistics
}

// Hands returns the total number of hands played
func (r *Result) Hands() int {
	n := 0
	for _, t := range r.Tables {
		n += t.Hands
	}
	return n
}

// Showdowns returns the total number of hands decided by comparing cards
func (r *Result) Showdowns() int {
	n := 0
	for _, t := range r.Tables {
		n += t.Showdowns
	}
	return n
}

// LargestPot returns the biggest pot awarded at any table
func (r *Result) LargestPot() game.Chips {
	var largest game.Chips
	for _, t := range r.Tables {
		largest = max(largest, t.LargestPot)
	}
	return largest
}

// Simulator runs hands with the policy engine at every seat
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Tables < 1 {
		config.Tables = 1
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays every table concurrently. Each table owns its engine, state
// and random sources, so tables share nothing but the logger and clock.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if err := s.config.Table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table config: %w", err)
	}

	results := make([]TableResult, s.config.Tables)
	g, ctx := errgroup.WithContext(ctx)
	for i := range results {
		g.Go(func() error {
			res, err := s.runTable(ctx, i)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]*statistics.Statistics, s.config.Table.Seats)
	for seat := range merged {
		merged[seat] = &statistics.Statistics{}
		for _, t := range results {
			merged[seat].Merge(t.Seats[seat])
		}
	}
	return &Result{Tables: results, Seats: merged}, nil
}

type table struct {
	id       uuid.UUID
	engine   *game.Engine
	policies []*bot.Policy
	clock    quartz.Clock
	delay    time.Duration
	logger   *log.Logger
	result   *TableResult
	history  []*phh.HandHistory
}

func (s *Simulator) newTable(index int) *table {
	seed := randutil.Derive(s.config.Seed, uint64(index))
	id := uuid.New()
	logger := s.config.Logger.With("table", id.String()[:8])

	cfg := s.config.Table
	policies := make([]*bot.Policy, cfg.Seats)
	for seat := range policies {
		profile := bot.Balanced
		if seat < len(s.config.Profiles) {
			profile = s.config.Profiles[seat]
		}
		policies[seat] = bot.New(
			bot.WithProfile(profile),
			bot.WithRand(randutil.Stream(seed, uint64(seat))),
			bot.WithLogger(logger),
		)
	}

	seats := make([]*statistics.Statistics, cfg.Seats)
	for i := range seats {
		seats[i] = &statistics.Statistics{}
	}

	return &table{
		id: id,
		engine: game.NewEngine(
			game.WithConfig(cfg),
			game.WithRNG(randutil.New(seed)),
			game.WithLogger(logger),
		),
		policies: policies,
		clock:    s.config.Clock,
		delay:    s.config.ThinkingDelay,
		logger:   logger,
		result:   &TableResult{ID: id, Seats: seats},
	}
}

func (s *Simulator) runTable(ctx context.Context, index int) (*TableResult, error) {
	t := s.newTable(index)
	if s.config.HistoryDir != "" {
		t.history = make([]*phh.HandHistory, 0, s.config.Hands)
	}
	t.logger.Info("table started", "hands", s.config.Hands, "seats", s.config.Table.Seats)

	state := t.engine.Initialize()
	for range s.config.Hands {
		next, err := t.playHand(ctx, state)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.id, err)
		}
		state = next
	}
	t.result.Final = state

	if dir := s.config.HistoryDir; dir != "" {
		path := filepath.Join(dir, t.id.String()+".phhs")
		err := fileutil.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
			return phh.WriteSections(w, t.history, 1)
		})
		if err != nil {
			return nil, fmt.Errorf("table %s: writing hand history: %w", t.id, err)
		}
		t.result.HistoryFile = path
		t.logger.Debug("hand history written", "path", path, "hands", len(t.history))
	}

	t.logger.Info("table finished",
		"hands", t.result.Hands,
		"showdowns", t.result.Showdowns,
		"largest_pot", t.result.LargestPot)
	return t.result, nil
}

// playHand plays one hand to showdown and records the result for every seat
func (t *table) playHand(ctx context.Context, prev *game.State) (*game.State, error) {
	s, err := t.engine.StartHand(prev)
	if err != nil {
		return nil, err
	}

	baseline := s.TotalChips()
	var rec *phh.Recorder
	if t.history != nil {
		rec = phh.NewRecorder(s, t.id.String(), t.clock.Now())
	}
	// last betting phase with an action, or Showdown once cards are compared
	reached := game.Preflop

	for s.Phase != game.Showdown {
		seat := s.CurrentPlayer
		if err := t.think(ctx); err != nil {
			return nil, err
		}
		action := t.policies[seat].Decide(s, seat)
		reached = s.Phase
		next, err := t.engine.Apply(s, action)
		if err != nil {
			return nil, fmt.Errorf("hand %d: seat %d %s %d: %w",
				s.HandNumber, seat, action.Type, action.Amount, err)
		}
		s = next
		if rec != nil {
			rec.Observe(s)
		}
	}

	if got := s.TotalChips(); got != baseline {
		return nil, fmt.Errorf("hand %d: %d chips at start, %d at showdown: %w",
			s.HandNumber, baseline, got, ErrChipsNotConserved)
	}

	if !s.Showdown.Uncontested() {
		reached = game.Showdown
	}
	t.record(s, reached)
	if rec != nil {
		t.history = append(t.history, rec.Finish(s))
	}
	return s, nil
}

func (t *table) record(s *game.State, reached game.Phase) {
	sd := s.Showdown
	t.result.Hands++
	if sd.Uncontested() {
		t.result.Uncontested++
	} else {
		t.result.Showdowns++
	}
	if sd.Pot > t.result.LargestPot {
		t.result.LargestPot = sd.Pot
	}

	for i, p := range s.Players {
		t.result.Seats[i].Add(statistics.HandResult{
			HandNumber:     s.HandNumber,
			Seat:           i,
			NetBB:          (p.Chips - p.StartingChips).BB(s.BigBlind),
			Position:       p.Position,
			WentToShowdown: p.InHand() && !sd.Uncontested(),
			FinalPot:       sd.Pot,
			BigBlind:       s.BigBlind,
			StreetReached:  reached,
		})
	}

	t.logger.Debug("hand finished",
		"hand", s.HandNumber,
		"winners", sd.Winners,
		"pot", sd.Pot,
		"street", reached)
}

// think waits out the thinking delay, returning early if ctx is cancelled
func (t *table) think(ctx context.Context) error {
	if t.delay <= 0 {
		return ctx.Err()
	}

	fired := make(chan struct{})
	timer := t.clock.AfterFunc(t.delay, func() {
		close(fired)
	})
	defer timer.Stop()

	select {
	case <-fired:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
