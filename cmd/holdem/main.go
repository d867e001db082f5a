package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-sim/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"holdem.hcl" help:"HCL configuration file (defaults are used if it does not exist)"`
	LogLevel string `help:"Log level (debug|info|warn|error), overrides the config file"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Run bot-vs-bot hands and print per-seat results"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate hole and board cards"`
	Deal     DealCmd          `cmd:"" help:"Deal a hand and print the table"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em rules engine, hand evaluator and bot simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load reads the configuration file and applies the global overrides
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.Simulation.LogLevel = g.LogLevel
	}
	logger, err := newLogger(cfg.Simulation.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	}), nil
}
