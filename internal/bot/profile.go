package bot

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/holdem-sim/internal/game"
)

// Thresholds are the decision points for one street. Strengths are compared
// against position-adjusted hand strength on the evaluator's [0,1] scale.
type Thresholds struct {
	// Strong hands raise for value
	Strong float64
	// Playable hands continue when the price is right
	Playable float64
	// RaiseMix is the chance a strong hand raises rather than calls
	RaiseMix float64
	// Bluff is the chance a weak hand bets when checked to
	Bluff float64
	// OddsMargin is the edge over pot odds needed to call
	OddsMargin float64
	// PotFraction sizes postflop raises as a share of the pot
	PotFraction float64
}

// Profile is a named table of thresholds per street plus position weights
type Profile struct {
	Name    string
	Streets map[game.Phase]Thresholds
	// ReRaiseTighten raises the thresholds when facing a re-raise
	ReRaiseTighten float64
	// PositionWeights scale hand strength by seat position
	PositionWeights map[game.Position]float64
	// Dampen blends the position weight: 0 ignores position, 1 applies it fully
	Dampen float64
	// AllInOddsWeight scales pot odds into the threshold for all-in calls
	AllInOddsWeight float64
}

var defaultPositionWeights = map[game.Position]float64{
	game.BTN:  1.00,
	game.CO:   0.96,
	game.HJ:   0.93,
	game.MP:   0.91,
	game.UTG1: 0.89,
	game.UTG:  0.87,
	game.SB:   0.90,
	game.BB:   0.92,
}

// Balanced plays a standard mix of value raises and calls
var Balanced = Profile{
	Name: "balanced",
	Streets: map[game.Phase]Thresholds{
		game.Preflop: {Strong: 0.78, Playable: 0.58, RaiseMix: 0.80, Bluff: 0.05, OddsMargin: 0.00, PotFraction: 0.75},
		game.Flop:    {Strong: 0.62, Playable: 0.30, RaiseMix: 0.70, Bluff: 0.10, OddsMargin: 0.05, PotFraction: 0.60},
		game.Turn:    {Strong: 0.66, Playable: 0.35, RaiseMix: 0.70, Bluff: 0.07, OddsMargin: 0.08, PotFraction: 0.65},
		game.River:   {Strong: 0.70, Playable: 0.40, RaiseMix: 0.60, Bluff: 0.05, OddsMargin: 0.10, PotFraction: 0.70},
	},
	ReRaiseTighten:  0.08,
	PositionWeights: defaultPositionWeights,
	Dampen:          0.5,
	AllInOddsWeight: 0.5,
}

// Tight folds more and bluffs less
var Tight = Profile{
	Name: "tight",
	Streets: map[game.Phase]Thresholds{
		game.Preflop: {Strong: 0.84, Playable: 0.66, RaiseMix: 0.85, Bluff: 0.02, OddsMargin: 0.02, PotFraction: 0.75},
		game.Flop:    {Strong: 0.66, Playable: 0.36, RaiseMix: 0.75, Bluff: 0.04, OddsMargin: 0.08, PotFraction: 0.66},
		game.Turn:    {Strong: 0.70, Playable: 0.42, RaiseMix: 0.75, Bluff: 0.03, OddsMargin: 0.10, PotFraction: 0.70},
		game.River:   {Strong: 0.74, Playable: 0.48, RaiseMix: 0.65, Bluff: 0.02, OddsMargin: 0.12, PotFraction: 0.75},
	},
	ReRaiseTighten:  0.10,
	PositionWeights: defaultPositionWeights,
	Dampen:          0.6,
	AllInOddsWeight: 0.7,
}

// Loose plays more hands and bluffs more often
var Loose = Profile{
	Name: "loose",
	Streets: map[game.Phase]Thresholds{
		game.Preflop: {Strong: 0.72, Playable: 0.48, RaiseMix: 0.70, Bluff: 0.12, OddsMargin: 0.00, PotFraction: 0.80},
		game.Flop:    {Strong: 0.58, Playable: 0.22, RaiseMix: 0.65, Bluff: 0.18, OddsMargin: 0.02, PotFraction: 0.55},
		game.Turn:    {Strong: 0.62, Playable: 0.28, RaiseMix: 0.65, Bluff: 0.14, OddsMargin: 0.04, PotFraction: 0.60},
		game.River:   {Strong: 0.66, Playable: 0.32, RaiseMix: 0.55, Bluff: 0.10, OddsMargin: 0.06, PotFraction: 0.65},
	},
	ReRaiseTighten:  0.05,
	PositionWeights: defaultPositionWeights,
	Dampen:          0.4,
	AllInOddsWeight: 0.35,
}

var profiles = map[string]Profile{
	Balanced.Name: Balanced,
	Tight.Name:    Tight,
	Loose.Name:    Loose,
}

// ProfileByName looks up a built-in profile, case-insensitively
func ProfileByName(name string) (Profile, error) {
	p, ok := profiles[strings.ToLower(name)]
	if !ok {
		return Profile{}, fmt.Errorf("unknown bot profile %q (available: %s)", name, strings.Join(ProfileNames(), ", "))
	}
	return p, nil
}

// ProfileNames lists the built-in profiles in sorted order
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// thresholds returns the street's thresholds, tightened when facing a re-raise
func (p Profile) thresholds(phase game.Phase, reRaised bool) Thresholds {
	t, ok := p.Streets[phase]
	if !ok {
		t = p.Streets[game.River]
	}
	if reRaised {
		t.Strong += p.ReRaiseTighten
		t.Playable += p.ReRaiseTighten
		t.Bluff = 0
	}
	return t
}

// PositionWeight returns the strength multiplier for a position
func (p Profile) PositionWeight(pos game.Position) float64 {
	if w, ok := p.PositionWeights[pos]; ok {
		return w
	}
	return 1
}

// Adjust applies the dampened position weight to a raw hand strength
func (p Profile) Adjust(strength float64, pos game.Position) float64 {
	factor := 1 - p.Dampen + p.Dampen*p.PositionWeight(pos)
	return strength * factor
}
