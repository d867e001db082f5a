package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-sim/internal/bot"
	"github.com/lox/holdem-sim/internal/game"
)

const sampleConfig = `
table {
  seats          = 6
  small_blind    = 2
  big_blind      = 4
  starting_stack = 100
  human_seat     = 0
}

simulation {
  hands          = 500
  tables         = 4
  seed           = 42
  thinking_delay = "250ms"
  log_level      = "debug"
  history_dir    = "hands"
}

bot "rocks" {
  profile = "tight"
  seats   = [1, 2]
}

bot "maniac" {
  profile = "loose"
  seats   = [5]
}
`

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sampleConfig), "sample.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 6, cfg.Table.Seats)
	assert.Equal(t, 500, cfg.Simulation.Hands)
	assert.Equal(t, 4, cfg.Simulation.Tables)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, "balanced", cfg.Simulation.DefaultProfile)
	assert.Equal(t, "hands", cfg.Simulation.HistoryDir)
	require.Len(t, cfg.Bots, 2)
	assert.Equal(t, "rocks", cfg.Bots[0].Name)

	delay, err := cfg.Simulation.Delay()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, delay)

	gc := cfg.Table.GameConfig()
	assert.Equal(t, game.Chips(400), gc.StartingStack)
	assert.Equal(t, game.Chips(4), gc.BigBlind)
	assert.Equal(t, 0, gc.HumanSeat)
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sampleConfig), "sample.hcl")
	require.NoError(t, err)

	profiles, err := cfg.Profiles()
	require.NoError(t, err)
	require.Len(t, profiles, 6)

	assert.Equal(t, bot.Balanced.Name, profiles[0].Name)
	assert.Equal(t, bot.Tight.Name, profiles[1].Name)
	assert.Equal(t, bot.Tight.Name, profiles[2].Name)
	assert.Equal(t, bot.Balanced.Name, profiles[3].Name)
	assert.Equal(t, bot.Loose.Name, profiles[5].Name)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	gc := cfg.Table.GameConfig()
	assert.Equal(t, game.MaxSeats, gc.Seats)
	assert.Equal(t, game.Chips(2), gc.SmallBlind)
	assert.Equal(t, game.Chips(800), gc.StartingStack)
	assert.Equal(t, game.NoSeat, gc.HumanSeat, "simulations have no human seat unless configured")

	delay, err := cfg.Simulation.Delay()
	require.NoError(t, err)
	assert.Zero(t, delay)
}

func TestParseEmptyUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(""), "empty.hcl")
	require.NoError(t, err)
	def := DefaultConfig()
	assert.Equal(t, *def.Table, *cfg.Table)
	assert.Equal(t, *def.Simulation, *cfg.Simulation)
	assert.Empty(t, cfg.Bots)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(dir, "holdem.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Table.Seats)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("table {"), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = Parse([]byte(`table { seats = "many" }`), "typed.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"too many seats", `table { seats = 9 }`, "seats must be between"},
		{"odd small blind", `table { small_blind = 3 }`, "small blind"},
		{"big blind too small", "table {\n small_blind = 4\n big_blind = 4\n}", "must exceed small blind"},
		{"human seat out of range", "table {\n seats = 3\n human_seat = 3\n}", "human seat"},
		{"bad delay", `simulation { thinking_delay = "soon" }`, "invalid thinking delay"},
		{"negative delay", `simulation { thinking_delay = "-1s" }`, "must not be negative"},
		{"bad log level", `simulation { log_level = "loud" }`, "invalid log level"},
		{"bad default profile", `simulation { default_profile = "shark" }`, "simulation"},
		{"unknown profile", `bot "x" { profile = "shark" }`, "bot x"},
		{"seat out of range", "bot \"x\" {\n profile = \"tight\"\n seats = [8]\n}", "out of range"},
		{"seat claimed twice", "bot \"a\" {\n profile = \"tight\"\n seats = [1]\n}\nbot \"b\" {\n profile = \"loose\"\n seats = [1]\n}", "already assigned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse([]byte(tt.src), "test.hcl")
			require.NoError(t, err)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
