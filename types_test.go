package captable

import "testing"

func TestQuantityCommas(t *testing.T) {
	cases := []struct {
		in   Quantity
		want string
	}{
		{Q(0), "0"},
		{Q(999), "999"},
		{Q(1000), "1,000"},
		{Q(4_000_000), "4,000,000"},
		{Q(-1234567), "-1,234,567"},
	}
	for _, c := range cases {
		if got := c.in.Commas(); got != c.want {
			t.Errorf("Commas(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPercentString(t *testing.T) {
	cases := []struct {
		in   Percent
		want string
	}{
		{P(40), "40.00%"},
		{P(32.5), "32.50%"},
		{percentOf(Q(1), Q(3)), "33.33%"},
		{percentOf(Q(2), Q(3)), "66.67%"}, // rounds half up at display time only
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestPercentSignedString(t *testing.T) {
	if got := P(8).SignedString(); got != "+8.00%" {
		t.Errorf("SignedString() = %q, want +8.00%%", got)
	}
	if got := P(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want -", got)
	}
}

func TestPercentEqualEpsilon(t *testing.T) {
	third := percentOf(Q(1), Q(3))
	if !third.Equal(P(33.33333333)) {
		t.Error("Equal should tolerate sub-0.0001 differences")
	}
	if third.Equal(P(33.34)) {
		t.Error("Equal should reject differences above the precision")
	}
}

func TestMoneyArithmetic(t *testing.T) {
	pre := M(8_000_000, "USD")
	investment := M(2_000_000, "USD")

	post := pre.Add(investment)
	if !post.Equal(M(10_000_000, "USD")) {
		t.Errorf("Add = %s, want $10,000,000.00", post)
	}

	price := pre.Div(Q(10_000_000))
	if got := price.StringFixed(4); got != "$0.8000" {
		t.Errorf("price per share = %q, want $0.8000", got)
	}
}
