package poker

import (
	"errors"
	"testing"

	"github.com/lox/holdem-sim/internal/randutil"
)

func TestNewShuffledDeckHasAllCards(t *testing.T) {
	t.Parallel()
	deck := NewShuffledDeck(randutil.New(42))
	if deck.Remaining() != DeckSize {
		t.Fatalf("Remaining() = %d, want %d", deck.Remaining(), DeckSize)
	}

	seen := make(map[Card]bool, DeckSize)
	for _, c := range deck.Cards() {
		if !c.IsValid() {
			t.Fatalf("invalid card %v in deck", c)
		}
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestShuffleDeterministic(t *testing.T) {
	t.Parallel()
	a := NewShuffledDeck(randutil.New(7)).Cards()
	b := NewShuffledDeck(randutil.New(7)).Cards()
	c := NewShuffledDeck(randutil.New(8)).Cards()

	if FormatCards(a) != FormatCards(b) {
		t.Error("same seed produced different orders")
	}
	if FormatCards(a) == FormatCards(c) {
		t.Error("different seeds produced identical orders")
	}
}

func TestDrawDoesNotMutate(t *testing.T) {
	t.Parallel()
	deck := NewOrderedDeck()
	card, rest, err := deck.Draw()
	if err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	if deck.Remaining() != DeckSize {
		t.Errorf("original deck changed size to %d", deck.Remaining())
	}
	if rest.Remaining() != DeckSize-1 {
		t.Errorf("rest has %d cards, want %d", rest.Remaining(), DeckSize-1)
	}
	if deck.Cards()[0] != card {
		t.Errorf("drew %v, want top card %v", card, deck.Cards()[0])
	}
}

func TestDrawExhausted(t *testing.T) {
	t.Parallel()
	deck := NewDeckFromCards(MustParseCard("As"), MustParseCard("Kd"))

	cards, deck, err := deck.DrawN(2)
	if err != nil {
		t.Fatalf("DrawN(2) error: %v", err)
	}
	if len(cards) != 2 || deck.Remaining() != 0 {
		t.Fatalf("got %d cards and %d remaining", len(cards), deck.Remaining())
	}

	if _, _, err := deck.Draw(); !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("Draw() on empty deck error = %v, want ErrDeckExhausted", err)
	}
	if _, _, err := NewOrderedDeck().DrawN(53); !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("DrawN(53) error = %v, want ErrDeckExhausted", err)
	}
}
