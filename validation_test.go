package captable

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/captable/date"
)

func founders(grants ...Founder) []Founder { return grants }

func TestValidate(t *testing.T) {
	start := date.New(2024, time.January, 1)

	cases := []struct {
		name    string
		company *Company
		want    []string // substrings, one per expected violation, in order
	}{
		{
			name: "valid two founder setup",
			company: &Company{Name: "Acme", TotalShares: Q(10_000_000), Founders: founders(
				NewFounder("Alice", Q(4_000_000), start),
				NewFounder("Bob", Q(3_500_000), start),
			)},
			want: nil,
		},
		{
			name:    "empty name and no founders",
			company: &Company{Name: "   ", TotalShares: Q(1000)},
			want:    []string{"company name", "at least one founder"},
		},
		{
			name:    "zero total shares",
			company: &Company{Name: "Acme", TotalShares: Q(0), Founders: founders(NewFounder("Alice", Q(0), start))},
			want:    []string{"total shares"},
		},
		{
			name: "negative grant",
			company: &Company{Name: "Acme", TotalShares: Q(1000), Founders: founders(
				NewFounder("Alice", Q(-1), start),
			)},
			want: []string{"negative share grant"},
		},
		{
			name: "founders exceed the pool",
			company: &Company{Name: "Acme", TotalShares: Q(1000), Founders: founders(
				NewFounder("Alice", Q(600), start),
				NewFounder("Bob", Q(600), start),
			)},
			want: []string{"exceed authorized shares"},
		},
		{
			name: "duplicate founder names",
			company: &Company{Name: "Acme", TotalShares: Q(1000), Founders: founders(
				NewFounder("Alice", Q(1), start),
				NewFounder("Alice", Q(2), start),
			)},
			want: []string{"unique"},
		},
		{
			name: "single stake over the whole pool",
			company: &Company{Name: "Acme", TotalShares: Q(1000), Founders: founders(
				NewFounder("Alice", Q(2000), start),
			)},
			want: []string{"exceed authorized shares", "more than 100%"},
		},
		{
			name: "case sensitive names are distinct",
			company: &Company{Name: "Acme", TotalShares: Q(1000), Founders: founders(
				NewFounder("alice", Q(1), start),
				NewFounder("Alice", Q(2), start),
			)},
			want: nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Validate(c.company)
			if len(got) != len(c.want) {
				t.Fatalf("Validate() = %q, want %d violations", got, len(c.want))
			}
			for i, sub := range c.want {
				if !strings.Contains(got[i], sub) {
					t.Errorf("violation[%d] = %q, want it to mention %q", i, got[i], sub)
				}
			}
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	// One broken company, every rule violated at once: validation never
	// stops at the first failure.
	start := date.New(2024, time.January, 1)
	c := &Company{Name: " ", TotalShares: Q(0), Founders: founders(
		NewFounder("", Q(-5), start),
		NewFounder("", Q(10), start),
	)}

	got := Validate(c)
	if len(got) < 4 {
		t.Errorf("Validate() returned %d violations, want at least 4: %q", len(got), got)
	}
}

func TestValidateRound(t *testing.T) {
	cases := []struct {
		name  string
		round FundingRound
		want  []string
	}{
		{"valid", FundingRound{Name: "Series A", Investment: M(2_000_000, "USD"), PreMoney: M(8_000_000, "USD"), NewShares: Q(2_500_000)}, nil},
		{"empty name", FundingRound{Investment: M(1, "USD"), PreMoney: M(1, "USD"), NewShares: Q(1)}, []string{"round name"}},
		{"zero investment", FundingRound{Name: "A", PreMoney: M(1, "USD"), NewShares: Q(1)}, []string{"investment amount"}},
		{"zero pre-money", FundingRound{Name: "A", Investment: M(1, "USD"), NewShares: Q(1)}, []string{"pre-money valuation"}},
		{"zero new shares", FundingRound{Name: "A", Investment: M(1, "USD"), PreMoney: M(1, "USD")}, []string{"new shares"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ValidateRound(c.round)
			if len(got) != len(c.want) {
				t.Fatalf("ValidateRound() = %q, want %d violations", got, len(c.want))
			}
			for i, sub := range c.want {
				if !strings.Contains(got[i], sub) {
					t.Errorf("violation[%d] = %q, want it to mention %q", i, got[i], sub)
				}
			}
		})
	}
}

func TestValidateNewFounder(t *testing.T) {
	c := acmeCompany(t) // pool fully allocated
	small := NewCompany("Small", Q(1000))
	small.AddFounder(NewFounder("Alice", Q(600), date.New(2024, time.January, 1)))

	cases := []struct {
		name    string
		company *Company
		founder Founder
		want    []string
	}{
		{"fits the pool", small, NewFounder("Bob", Q(400), date.New(2024, time.June, 1)), nil},
		{"already exists", small, NewFounder("Alice", Q(1), date.New(2024, time.June, 1)), []string{"already exists"}},
		{"pool exhausted", c, NewFounder("Dave", Q(1), date.New(2024, time.June, 1)), []string{"remaining"}},
		{"zero shares", small, NewFounder("Bob", Q(0), date.New(2024, time.June, 1)), []string{"greater than 0"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateNewFounder(tc.company, tc.founder)
			if len(got) != len(tc.want) {
				t.Fatalf("ValidateNewFounder() = %q, want %d violations", got, len(tc.want))
			}
			for i, sub := range tc.want {
				if !strings.Contains(got[i], sub) {
					t.Errorf("violation[%d] = %q, want it to mention %q", i, got[i], sub)
				}
			}
		})
	}
}

func TestViolations(t *testing.T) {
	if err := Violations(nil); err != nil {
		t.Errorf("Violations(nil) = %v, want nil", err)
	}

	err := Violations([]string{"first problem", "second problem"})
	if err == nil {
		t.Fatal("Violations() = nil, want an error")
	}
	for _, sub := range []string{"first problem", "second problem"} {
		if !strings.Contains(err.Error(), sub) {
			t.Errorf("error %q does not mention %q", err, sub)
		}
	}
}
