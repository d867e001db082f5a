package phh_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lox/holdem-sim/internal/phh"
)

func sampleHand() *phh.HandHistory {
	hand := &phh.HandHistory{
		Variant:           "NT",
		Table:             "default",
		SeatCount:         3,
		Seats:             []int{1, 2, 3},
		Antes:             []int{0, 0, 0},
		BlindsOrStraddles: []int{1, 2, 0},
		MinBet:            2,
		StartingStacks:    []int{200, 200, 200},
		FinishingStacks:   []int{200, 200, 200},
		Winnings:          []int{0, 0, 0},
		Actions: []string{
			"d dh p1 AhKh",
			"d dh p2 7c2d",
			"d dh p3 QsJs",
			"p1 cbr 6",
			"p2 f",
			"p3 cc",
		},
		Players: []string{"alice-bot", "bob-bot", "charlie-bot"},
		HandID:  "hand-00042",
	}
	hand.SetTimestamp(time.Date(2025, time.November, 14, 15, 22, 0, 0, time.UTC))
	return hand
}

func TestEncodeHandHistory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := phh.Encode(&buf, sampleHand()); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	got := buf.String()
	want := "" +
		"variant = \"NT\"\n" +
		"table = \"default\"\n" +
		"seat_count = 3\n" +
		"seats = [1, 2, 3]\n" +
		"antes = [0, 0, 0]\n" +
		"blinds_or_straddles = [1, 2, 0]\n" +
		"min_bet = 2\n" +
		"starting_stacks = [200, 200, 200]\n" +
		"finishing_stacks = [200, 200, 200]\n" +
		"winnings = [0, 0, 0]\n" +
		"actions = [\"d dh p1 AhKh\", \"d dh p2 7c2d\", \"d dh p3 QsJs\", \"p1 cbr 6\", \"p2 f\", \"p3 cc\"]\n" +
		"players = [\"alice-bot\", \"bob-bot\", \"charlie-bot\"]\n" +
		"hand = \"hand-00042\"\n" +
		"time = \"15:22:00\"\n" +
		"time_zone = \"UTC\"\n" +
		"day = 14\n" +
		"month = 11\n" +
		"year = 2025\n"

	if got != want {
		t.Fatalf("Encode output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestEncodeOmitsOptionalFields(t *testing.T) {
	t.Parallel()

	hand := &phh.HandHistory{
		Variant:           "NT",
		Antes:             []int{0, 0},
		BlindsOrStraddles: []int{2, 4},
		MinBet:            4,
		StartingStacks:    []int{800, 800},
		Actions:           []string{"d dh p1 ????", "d dh p2 ????", "p1 f"},
		HandID:            "1",
	}

	got, err := phh.EncodeToBytes(hand)
	if err != nil {
		t.Fatalf("EncodeToBytes returned error: %v", err)
	}
	want := "" +
		"variant = \"NT\"\n" +
		"antes = [0, 0]\n" +
		"blinds_or_straddles = [2, 4]\n" +
		"min_bet = 4\n" +
		"starting_stacks = [800, 800]\n" +
		"actions = [\"d dh p1 ????\", \"d dh p2 ????\", \"p1 f\"]\n" +
		"hand = \"1\"\n"
	if string(got) != want {
		t.Fatalf("Encode output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestEncodeEscapesStrings(t *testing.T) {
	t.Parallel()

	hand := sampleHand()
	hand.Players = []string{`say "hi"`, `back\slash`, "plain"}

	got, err := phh.EncodeToBytes(hand)
	if err != nil {
		t.Fatalf("EncodeToBytes returned error: %v", err)
	}
	want := `players = ["say \"hi\"", "back\\slash", "plain"]` + "\n"
	if !strings.Contains(string(got), want) {
		t.Errorf("Expected escaped players line %q in:\n%s", want, got)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	hand := sampleHand()
	hand.Players[1] = "tab\tand\nnewline"

	data, err := phh.EncodeToBytes(hand)
	if err != nil {
		t.Fatalf("EncodeToBytes returned error: %v", err)
	}

	var decoded phh.HandHistory
	meta, err := toml.Decode(string(data), &decoded)
	if err != nil {
		t.Fatalf("Decode returned error: %v\n%s", err, data)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		t.Errorf("Unexpected keys %v", undecoded)
	}

	want := *hand
	want.Timestamp = time.Time{}
	if !reflect.DeepEqual(decoded, want) {
		t.Errorf("Round trip mismatch.\nGot:  %+v\nWant: %+v", decoded, want)
	}
}

func TestEncodeNil(t *testing.T) {
	t.Parallel()

	if err := phh.Encode(&bytes.Buffer{}, nil); err == nil {
		t.Error("Expected an error encoding a nil hand")
	}
}

func TestWriteSections(t *testing.T) {
	t.Parallel()

	first := sampleHand()
	second := sampleHand()
	second.HandID = "hand-00043"

	var buf bytes.Buffer
	if err := phh.WriteSections(&buf, []*phh.HandHistory{first, second}, 7); err != nil {
		t.Fatalf("WriteSections returned error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "[7]\nvariant = \"NT\"\n") {
		t.Errorf("Expected the first section header at the top, got:\n%s", out)
	}
	if !strings.Contains(out, "year = 2025\n\n[8]\nvariant") {
		t.Errorf("Expected a blank line then the second section header, got:\n%s", out)
	}
	if strings.Count(out, "hand = ") != 2 {
		t.Errorf("Expected two hands, got:\n%s", out)
	}
}

func TestSetTimestampZero(t *testing.T) {
	t.Parallel()

	var hand phh.HandHistory
	hand.SetTimestamp(time.Time{})
	if hand.Time != "" || hand.Year != 0 {
		t.Errorf("Zero timestamp should leave time fields empty, got %q %d", hand.Time, hand.Year)
	}
}
