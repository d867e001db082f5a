package main

import (
	"fmt"
	"io"
	"time"

	"github.com/lox/holdem-sim/internal/bot"
	"github.com/lox/holdem-sim/internal/display"
	"github.com/lox/holdem-sim/internal/fileutil"
	"github.com/lox/holdem-sim/internal/game"
	"github.com/lox/holdem-sim/internal/phh"
	"github.com/lox/holdem-sim/internal/randutil"
)

type DealCmd struct {
	Seats   int    `help:"Seats at the table (overrides config)"`
	Seed    int64  `help:"RNG seed, 0 picks one from the clock"`
	Play    bool   `help:"Let the bots play the hand out, printing the table after every action"`
	Reveal  bool   `help:"Show every seat's hole cards"`
	Dump    bool   `help:"Print the raw final state for debugging"`
	History string `type:"path" help:"Write the hand to this file in PHH format (requires --play)"`
}

func (c *DealCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if c.Seats > 0 {
		cfg.Table.Seats = c.Seats
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	table := cfg.Table.GameConfig()
	if table.HumanSeat == game.NoSeat {
		table.HumanSeat = 0
	}
	profiles, err := cfg.Profiles()
	if err != nil {
		return err
	}

	engine := game.NewEngine(
		game.WithConfig(table),
		game.WithRNG(randutil.New(seed)),
		game.WithLogger(logger),
	)
	opts := []display.Option{}
	if c.Reveal {
		opts = append(opts, display.WithRevealAll())
	}
	r := display.NewRenderer(opts...)

	s, err := engine.StartHand(engine.Initialize())
	if err != nil {
		return err
	}
	fmt.Println(r.Table(s))
	rec := phh.NewRecorder(s, "deal", time.Now())

	if c.Play {
		policies := make([]*bot.Policy, len(profiles))
		for seat, p := range profiles {
			policies[seat] = bot.New(
				bot.WithProfile(p),
				bot.WithRand(randutil.Stream(seed, uint64(seat))),
				bot.WithLogger(logger),
			)
		}
		for s.Phase != game.Showdown {
			seat := s.CurrentPlayer
			action := policies[seat].Decide(s, seat)
			logger.Debug("bot reasoning", "seat", seat, "reasoning", action.Reasoning)
			s, err = engine.Apply(s, action)
			if err != nil {
				return fmt.Errorf("seat %d %s: %w", seat, action.Type, err)
			}
			fmt.Println(r.Table(s))
			rec.Observe(s)
		}
	}

	if c.History != "" {
		if s.Phase != game.Showdown {
			return fmt.Errorf("--history needs a finished hand, use --play")
		}
		hand := rec.Finish(s)
		err := fileutil.WriteFileAtomic(c.History, 0o644, func(w io.Writer) error {
			return phh.Encode(w, hand)
		})
		if err != nil {
			return fmt.Errorf("writing hand history: %w", err)
		}
		logger.Info("hand history written", "path", c.History)
	}

	if c.Dump {
		fmt.Println(display.Dump(s))
	}
	return nil
}
