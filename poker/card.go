package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in deck construction order
var Suits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the single-letter suit code used in card strings
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Name returns the lower-case suit name
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// Symbol returns the unicode suit glyph
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Values match pip counts, Ace is 14.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// String returns the rank character ("T" for ten)
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Label returns the rank as printed on a card ("10" for ten)
func (r Rank) Label() string {
	if r == Ten {
		return "10"
	}
	return r.String()
}

// Card is an immutable playing card value
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the compact representation (e.g., "As", "Th")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the card with its suit glyph (e.g., "A♠", "10♥")
func (c Card) Pretty() string {
	return c.Rank.Label() + c.Suit.Symbol()
}

// IsValid reports whether the card is one of the 52 standard cards
func (c Card) IsValid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit <= Spades
}

// ParseCard parses a string like "As", "Td" or "10h" into a Card
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	idx := strings.IndexByte(rankChars, upper(s[0]))
	if idx < 0 {
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}

	var suit Suit
	switch s[1] {
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 'c', 'C':
		suit = Clubs
	case 's', 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	return NewCard(Two+Rank(idx), suit), nil
}

// MustParseCard parses a card and panics on error. Intended for tests and fixtures.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses whitespace separated or concatenated cards ("As Kd" or "AsKd")
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	if len(fields) == 1 && len(fields[0]) > 3 {
		joined := fields[0]
		if len(joined)%2 != 0 {
			return nil, fmt.Errorf("invalid card list: %q", s)
		}
		fields = fields[:0]
		for i := 0; i < len(joined); i += 2 {
			fields = append(fields, joined[i:i+2])
		}
	}

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCards joins cards with spaces
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
