package poker

import (
	"errors"
	"math/rand/v2"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// ErrDeckExhausted is returned when drawing from an empty deck
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is an ordered sequence of undealt cards. Cards are drawn from the top
// (index 0). A Deck value is never modified in place: Draw returns the
// remaining deck as a new value.
type Deck struct {
	cards []Card
}

// NewOrderedDeck returns all 52 cards in suit-major order
func NewOrderedDeck() Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return Deck{cards: cards}
}

// NewShuffledDeck creates a full deck shuffled with Fisher-Yates.
// A nil rng falls back to the package-level source.
func NewShuffledDeck(rng *rand.Rand) Deck {
	d := NewOrderedDeck()
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d
}

// NewDeckFromCards builds a deck that deals the given cards in order.
// Useful for scripted hands in tests.
func NewDeckFromCards(cards ...Card) Deck {
	return Deck{cards: append([]Card(nil), cards...)}
}

// Draw removes the top card and returns it with the remaining deck
func (d Deck) Draw() (Card, Deck, error) {
	if len(d.cards) == 0 {
		return Card{}, d, ErrDeckExhausted
	}
	return d.cards[0], Deck{cards: d.cards[1:]}, nil
}

// DrawN draws n cards from the top
func (d Deck) DrawN(n int) ([]Card, Deck, error) {
	if n > len(d.cards) {
		return nil, d, ErrDeckExhausted
	}
	out := append([]Card(nil), d.cards[:n]...)
	return out, Deck{cards: d.cards[n:]}, nil
}

// Remaining returns the number of undealt cards
func (d Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards in deal order
func (d Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
