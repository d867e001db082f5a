package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sanity-io/litter"

	"github.com/lox/holdem-sim/internal/game"
	"github.com/lox/holdem-sim/poker"
)

// Styles contains all styling for rendered snapshots
type Styles struct {
	Box       lipgloss.Style
	Header    lipgloss.Style
	HandInfo  lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Hidden    lipgloss.Style
	Acting    lipgloss.Style
	Folded    lipgloss.Style
	Seat      lipgloss.Style
	Winner    lipgloss.Style
}

// DefaultStyles returns the colour scheme used on a terminal
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		HandInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Hidden: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Acting: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Folded: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Faint(true),
		Seat: lipgloss.NewStyle(),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
	}
}

// Renderer turns game states into text. It never modifies the states it is
// given.
type Renderer struct {
	styles    Styles
	revealAll bool
}

// Option configures a Renderer
type Option func(*Renderer)

// WithStyles replaces the default styles
func WithStyles(s Styles) Option {
	return func(r *Renderer) {
		r.styles = s
	}
}

// WithRevealAll shows every seat's hole cards, not just the human's
func WithRevealAll() Option {
	return func(r *Renderer) {
		r.revealAll = true
	}
}

// NewRenderer creates a renderer
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{styles: DefaultStyles()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Card renders a single card with its suit colour
func (r *Renderer) Card(c poker.Card) string {
	if c.Suit.IsRed() {
		return r.styles.RedCard.Render(c.Pretty())
	}
	return r.styles.BlackCard.Render(c.Pretty())
}

// Cards renders cards separated by spaces
func (r *Renderer) Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) holeCards(s *game.State, p game.Player) string {
	if len(p.HoleCards) == 0 {
		return ""
	}
	visible := r.revealAll || p.Human || (s.Phase == game.Showdown && p.InHand() && !s.Showdown.Uncontested())
	if !visible {
		return r.styles.Hidden.Render("?? ??")
	}
	return r.Cards(p.HoleCards)
}

// Table renders a snapshot of the whole table
func (r *Renderer) Table(s *game.State) string {
	bb := s.BigBlind
	lines := []string{
		r.styles.Header.Render(fmt.Sprintf("Hand #%d  %s", s.HandNumber, s.Phase)),
		r.styles.HandInfo.Render(fmt.Sprintf("Pot: %d (%.1f bb)  Bet: %d", s.Pot, s.Pot.BB(bb), s.CurrentBet)),
	}
	if len(s.Community) > 0 {
		lines = append(lines, "Board: "+r.Cards(s.Community))
	}
	lines = append(lines, "")

	for _, p := range s.Players {
		marker := " "
		if p.ID == s.Dealer {
			marker = "D"
		}
		row := fmt.Sprintf("%s %-5s %-8s %6d (%6.1f bb)  bet %-5d %-8s",
			marker, p.Position, p.Name, p.Chips, p.Chips.BB(bb), p.Bet, p.Status)

		style := r.styles.Seat
		switch {
		case p.ID == s.CurrentPlayer:
			style = r.styles.Acting
		case p.Status == game.Folded:
			style = r.styles.Folded
		}
		lines = append(lines, style.Render(row)+" "+r.holeCards(s, p))
	}

	if a := s.LastAction; a != nil {
		lines = append(lines, "", fmt.Sprintf("Last action: %s", r.Action(s, *a)))
	}
	if s.Phase == game.Showdown && s.Showdown != nil {
		lines = append(lines, "", r.Showdown(s))
	}

	return r.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Action describes an applied action
func (r *Renderer) Action(s *game.State, a game.Action) string {
	name := fmt.Sprintf("seat %d", a.Seat)
	if a.Seat >= 0 && a.Seat < len(s.Players) {
		name = s.Players[a.Seat].Name
	}
	switch a.Type {
	case game.ActionFold:
		return name + " folds"
	case game.ActionCall:
		if a.Amount == 0 {
			return name + " checks"
		}
		return fmt.Sprintf("%s calls (bet %d)", name, a.Amount)
	case game.ActionRaise:
		return fmt.Sprintf("%s raises to %d", name, a.Amount)
	case game.ActionAllIn:
		return fmt.Sprintf("%s is all-in for %d", name, a.Amount)
	default:
		return fmt.Sprintf("%s %s %d", name, a.Type, a.Amount)
	}
}

// Showdown describes who won the pot and with what
func (r *Renderer) Showdown(s *game.State) string {
	sd := s.Showdown
	if sd == nil {
		return ""
	}
	var lines []string
	for _, rk := range sd.Rankings {
		lines = append(lines, fmt.Sprintf("%s: %s %s",
			s.Players[rk.Seat].Name, rk.Category, r.Cards(rk.Best)))
	}
	for _, pay := range sd.Payouts {
		lines = append(lines, r.styles.Winner.Render(
			fmt.Sprintf("%s wins %d", s.Players[pay.Seat].Name, pay.Amount)))
	}
	return strings.Join(lines, "\n")
}

var dumper = litter.Options{
	HidePrivateFields: true,
	StripPackageNames: true,
	HideZeroValues:    true,
}

// Dump renders any value as Go-like source for debugging
func Dump(v any) string {
	return dumper.Sdump(v)
}
