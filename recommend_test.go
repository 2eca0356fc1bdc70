package captable

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/captable/date"
)

func TestRecommendations(t *testing.T) {
	start := date.New(2024, time.January, 1)

	build := func(total int64, grants ...int64) *Company {
		c := NewCompany("Acme", Q(total))
		for i, g := range grants {
			c.AddFounder(NewFounder(string(rune('A'+i)), Q(g), start))
		}
		return c
	}

	cases := []struct {
		name    string
		company *Company
		want    []string // substrings, one per expected message, in order
	}{
		{
			name:    "solo founder",
			company: build(10_000_000, 7_000_000),
			want:    []string{"co-founders"},
		},
		{
			name:    "too many founders",
			company: build(10_000_000, 1_800_000, 1_800_000, 1_800_000, 1_800_000, 1_800_000),
			want:    []string{"coordination"},
		},
		{
			name:    "equity disparity",
			company: build(10_000_000, 8_000_000, 1_000_000),
			want:    []string{"disparities"},
		},
		{
			name:    "thin reserve",
			company: build(10_000_000, 5_000_000, 4_800_000),
			want:    []string{"reserving more shares"},
		},
		{
			name:    "pool mostly unallocated",
			company: build(10_000_000, 3_000_000, 2_500_000),
			want:    []string{"unallocated"},
		},
		{
			name:    "balanced setup",
			company: build(10_000_000, 4_000_000, 3_500_000),
			want:    nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Recommendations(c.company, OwnershipPercentages(c.company))
			if len(got) != len(c.want) {
				t.Fatalf("Recommendations() = %q, want %d messages", got, len(c.want))
			}
			for i, sub := range c.want {
				if !strings.Contains(got[i], sub) {
					t.Errorf("message[%d] = %q, want it to mention %q", i, got[i], sub)
				}
			}
		})
	}
}

func TestRecommendationsNeverFail(t *testing.T) {
	// Advisory only: even a pathological company produces messages, not
	// panics.
	c := NewCompany("", Q(0))
	got := Recommendations(c, OwnershipPercentages(c))
	for _, msg := range got {
		if msg == "" {
			t.Error("empty recommendation message")
		}
	}
}
