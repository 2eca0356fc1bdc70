package captable

import (
	"testing"
	"time"

	"github.com/etnz/captable/date"
)

// acmeCompany returns the 10M-share fixture used across tests: Alice 4M,
// Bob 3.5M, Charlie 2.5M, all starting on 2024-01-01.
func acmeCompany(t *testing.T) *Company {
	t.Helper()

	c := NewCompany("Acme", Q(10_000_000))
	start := date.New(2024, time.January, 1)
	c.AddFounder(NewFounder("Alice", Q(4_000_000), start))
	c.AddFounder(NewFounder("Bob", Q(3_500_000), start))
	c.AddFounder(NewFounder("Charlie", Q(2_500_000), start))
	return c
}

// seriesA returns the funding round fixture: $2M on an $8M pre-money for
// 2.5M new shares.
func seriesA() FundingRound {
	return FundingRound{
		Name:       "Series A",
		Investment: M(2_000_000, "USD"),
		PreMoney:   M(8_000_000, "USD"),
		NewShares:  Q(2_500_000),
	}
}
