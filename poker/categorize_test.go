package poker

import (
	"testing"
)

func TestTierOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand string
		want Tier
	}{
		{"As Ah", TierPremium},
		{"Jh Jd", TierPremium},
		{"As Ks", TierPremium},
		{"Kh Ac", TierPremium},

		{"Tc Th", TierStrong},
		{"Qs As", TierStrong},
		{"Ad Jc", TierStrong},

		{"9c 9h", TierMedium},
		{"7h 7c", TierMedium},
		{"Ks Qs", TierMedium},
		{"Qd Jd", TierMedium},
		{"Ah Th", TierMedium},

		{"6c 6h", TierWeak},
		{"2c 2h", TierWeak},
		{"7h 6h", TierWeak},
		{"5d 3d", TierWeak},

		{"7c 2h", TierTrash},
		{"Kd Qc", TierTrash},
		{"Ad Tc", TierTrash},
		{"Qh 3h", TierTrash},
		{"6s 2s", TierTrash},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			c, err := ParseCards(tt.hand)
			if err != nil {
				t.Fatalf("ParseCards(%q): %v", tt.hand, err)
			}
			if got := TierOf(c[0], c[1]); got != tt.want {
				t.Errorf("TierOf(%s) = %s, want %s", tt.hand, got, tt.want)
			}
			if got := TierOf(c[1], c[0]); got != tt.want {
				t.Errorf("TierOf is order dependent for %s: %s", tt.hand, got)
			}
		})
	}
}

func TestTierOfInvalid(t *testing.T) {
	t.Parallel()
	as := MustParseCard("As")
	if got := TierOf(Card{}, as); got != TierUnknown {
		t.Errorf("zero card tiered as %s", got)
	}
	if got := TierOf(as, as); got != TierUnknown {
		t.Errorf("duplicate card tiered as %s", got)
	}
}

func TestTierString(t *testing.T) {
	t.Parallel()
	if TierPremium.String() != "Premium" || Tier(42).String() != "Unknown" {
		t.Errorf("unexpected tier names %q %q", TierPremium, Tier(42))
	}
}
