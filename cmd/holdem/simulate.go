package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/holdem-sim/internal/game"
	"github.com/lox/holdem-sim/internal/simulator"
)

type SimulateCmd struct {
	Hands   int           `short:"n" help:"Hands per table (overrides config)"`
	Tables  int           `short:"t" help:"Tables to run concurrently (overrides config)"`
	Seats   int           `help:"Seats per table (overrides config)"`
	Seed    int64         `help:"RNG seed, 0 picks one from the clock (overrides config)"`
	Delay   time.Duration `help:"Thinking delay before each decision (overrides config)"`
	Profile string        `help:"Profile for seats without a bot block (balanced|tight|loose)"`
	History string        `type:"path" help:"Directory to write PHH hand histories to (overrides config)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	if c.Hands > 0 {
		cfg.Simulation.Hands = c.Hands
	}
	if c.Tables > 0 {
		cfg.Simulation.Tables = c.Tables
	}
	if c.Seats > 0 {
		cfg.Table.Seats = c.Seats
	}
	if c.Seed != 0 {
		cfg.Simulation.Seed = c.Seed
	}
	if c.Delay > 0 {
		cfg.Simulation.ThinkingDelay = c.Delay.String()
	}
	if c.Profile != "" {
		cfg.Simulation.DefaultProfile = c.Profile
	}
	if c.History != "" {
		cfg.Simulation.HistoryDir = c.History
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	delay, err := cfg.Simulation.Delay()
	if err != nil {
		return err
	}
	profiles, err := cfg.Profiles()
	if err != nil {
		return err
	}

	table := cfg.Table.GameConfig()
	// every seat is played by the policy engine
	table.HumanSeat = game.NoSeat

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting simulation",
		"hands", cfg.Simulation.Hands,
		"tables", cfg.Simulation.Tables,
		"seats", table.Seats,
		"seed", seed)

	start := time.Now()
	sim := simulator.New(simulator.Config{
		Table:         table,
		Hands:         cfg.Simulation.Hands,
		Tables:        cfg.Simulation.Tables,
		Seed:          seed,
		ThinkingDelay: delay,
		Profiles:      profiles,
		HistoryDir:    cfg.Simulation.HistoryDir,
		Logger:        logger,
	})
	res, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	for seat, stats := range res.Seats {
		if err := stats.Validate(); err != nil {
			return fmt.Errorf("seat %d statistics: %w", seat, err)
		}
	}

	simulator.PrintSummary(os.Stdout, res, table)
	for _, t := range res.Tables {
		if t.HistoryFile != "" {
			logger.Info("hand history written", "table", t.ID, "path", t.HistoryFile)
		}
	}
	logger.Info("simulation complete", "hands", res.Hands(), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
