package config

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-sim/internal/bot"
	"github.com/lox/holdem-sim/internal/game"
)

// Config represents a complete simulation configuration file
type Config struct {
	Table      *TableConfig      `hcl:"table,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
	Bots       []BotConfig       `hcl:"bot,block"`
}

// TableConfig describes the table every simulated hand is played at.
// Blinds are in chips, the starting stack is in big blinds.
type TableConfig struct {
	Seats         int     `hcl:"seats,optional"`
	SmallBlind    int     `hcl:"small_blind,optional"`
	BigBlind      int     `hcl:"big_blind,optional"`
	StartingStack float64 `hcl:"starting_stack,optional"`
	HumanSeat     *int    `hcl:"human_seat,optional"`
}

// SimulationConfig controls the simulation driver
type SimulationConfig struct {
	Hands          int    `hcl:"hands,optional"`
	Tables         int    `hcl:"tables,optional"`
	Seed           int64  `hcl:"seed,optional"`
	ThinkingDelay  string `hcl:"thinking_delay,optional"`
	LogLevel       string `hcl:"log_level,optional"`
	DefaultProfile string `hcl:"default_profile,optional"`
	// HistoryDir receives PHH hand histories when set
	HistoryDir string `hcl:"history_dir,optional"`
}

// BotConfig assigns a policy profile to a set of seats
type BotConfig struct {
	Name    string `hcl:"name,label"`
	Profile string `hcl:"profile"`
	Seats   []int  `hcl:"seats,optional"`
}

const (
	defaultSeats         = game.MaxSeats
	defaultSmallBlind    = 2
	defaultBigBlind      = 4
	defaultStartingStack = 200
	defaultHands         = 1000
	defaultTables        = 1
	defaultLogLevel      = "info"
	defaultProfile       = "balanced"
)

// DefaultConfig returns the default simulation configuration
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. The filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Table == nil {
		c.Table = &TableConfig{}
	}
	if c.Simulation == nil {
		c.Simulation = &SimulationConfig{}
	}
	if c.Table.Seats == 0 {
		c.Table.Seats = defaultSeats
	}
	if c.Table.SmallBlind == 0 {
		c.Table.SmallBlind = defaultSmallBlind
	}
	if c.Table.BigBlind == 0 {
		c.Table.BigBlind = defaultBigBlind
	}
	if c.Table.StartingStack == 0 {
		c.Table.StartingStack = defaultStartingStack
	}
	if c.Simulation.Hands == 0 {
		c.Simulation.Hands = defaultHands
	}
	if c.Simulation.Tables == 0 {
		c.Simulation.Tables = defaultTables
	}
	if c.Simulation.LogLevel == "" {
		c.Simulation.LogLevel = defaultLogLevel
	}
	if c.Simulation.DefaultProfile == "" {
		c.Simulation.DefaultProfile = defaultProfile
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Table.GameConfig().Validate(); err != nil {
		return fmt.Errorf("table: %w", err)
	}

	if c.Simulation.Hands < 1 {
		return fmt.Errorf("simulation: hands must be positive, got %d", c.Simulation.Hands)
	}
	if c.Simulation.Tables < 1 {
		return fmt.Errorf("simulation: tables must be positive, got %d", c.Simulation.Tables)
	}
	if _, err := c.Simulation.Delay(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if _, err := log.ParseLevel(c.Simulation.LogLevel); err != nil {
		return fmt.Errorf("simulation: invalid log level %q", c.Simulation.LogLevel)
	}
	if _, err := bot.ProfileByName(c.Simulation.DefaultProfile); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	claimed := map[int]string{}
	for _, b := range c.Bots {
		if _, err := bot.ProfileByName(b.Profile); err != nil {
			return fmt.Errorf("bot %s: %w", b.Name, err)
		}
		for _, seat := range b.Seats {
			if seat < 0 || seat >= c.Table.Seats {
				return fmt.Errorf("bot %s: seat %d out of range", b.Name, seat)
			}
			if other, ok := claimed[seat]; ok {
				return fmt.Errorf("bot %s: seat %d already assigned to bot %s", b.Name, seat, other)
			}
			claimed[seat] = b.Name
		}
	}

	return nil
}

// Delay parses the thinking delay. An empty value means no delay.
func (s SimulationConfig) Delay() (time.Duration, error) {
	if strings.TrimSpace(s.ThinkingDelay) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.ThinkingDelay)
	if err != nil {
		return 0, fmt.Errorf("invalid thinking delay %q: %w", s.ThinkingDelay, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("thinking delay must not be negative, got %s", d)
	}
	return d, nil
}

// GameConfig converts the table block into an engine configuration
func (t TableConfig) GameConfig() game.Config {
	bb := game.Chips(t.BigBlind)
	human := game.NoSeat
	if t.HumanSeat != nil {
		human = *t.HumanSeat
	}
	return game.Config{
		Seats:         t.Seats,
		SmallBlind:    game.Chips(t.SmallBlind),
		BigBlind:      bb,
		StartingStack: game.Chips(math.Round(t.StartingStack * float64(bb))),
		HumanSeat:     human,
	}
}

// Profiles resolves the policy profile for every seat
func (c *Config) Profiles() ([]bot.Profile, error) {
	def, err := bot.ProfileByName(c.Simulation.DefaultProfile)
	if err != nil {
		return nil, err
	}
	profiles := make([]bot.Profile, c.Table.Seats)
	for i := range profiles {
		profiles[i] = def
	}
	for _, b := range c.Bots {
		p, err := bot.ProfileByName(b.Profile)
		if err != nil {
			return nil, fmt.Errorf("bot %s: %w", b.Name, err)
		}
		for _, seat := range b.Seats {
			if seat >= 0 && seat < len(profiles) {
				profiles[seat] = p
			}
		}
	}
	return profiles, nil
}
