package date

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-01", "2024-01-01"},
		{"2024-1-1", "2024-01-01"},
		{"2025-7-31", "2025-07-31"},
	}
	for _, c := range cases {
		d, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", c.in, err)
		}
		if got := d.String(); got != c.want {
			t.Errorf("Parse(%q).String() = %q, want %q", c.in, got, c.want)
		}
	}

	if _, err := Parse("not-a-date"); err == nil {
		t.Error("Parse(\"not-a-date\") should fail")
	}
}

func TestNewNormalizes(t *testing.T) {
	// Jan 32 normalizes to Feb 1.
	if got := New(2024, time.January, 32); got != New(2024, time.February, 1) {
		t.Errorf("New(2024, Jan, 32) = %s, want 2024-02-01", got)
	}
}

func TestMonthsElapsed(t *testing.T) {
	cases := []struct {
		name string
		from string
		on   string
		want int
	}{
		{"same day", "2024-01-01", "2024-01-01", 0},
		{"same month later day", "2024-01-01", "2024-01-31", 0},
		{"next month, day ignored", "2024-01-31", "2024-02-01", 1},
		{"one year", "2024-01-01", "2025-01-01", 12},
		{"two years", "2024-01-15", "2026-01-15", 24},
		{"across year boundary", "2023-11-01", "2024-02-01", 3},
		{"reference before start clamps to zero", "2024-06-01", "2024-01-01", 0},
		{"reference years before start clamps to zero", "2024-06-01", "2020-01-01", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MonthsElapsed(MustParse(c.from), MustParse(c.on))
			if got != c.want {
				t.Errorf("MonthsElapsed(%s, %s) = %d, want %d", c.from, c.on, got, c.want)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	d := New(2024, time.January, 1).AddMonths(24)
	if d != New(2026, time.January, 1) {
		t.Errorf("AddMonths(24) = %s, want 2026-01-01", d)
	}
}
