package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/captable"
)

// DilutionMarkdown renders a funding round and its per-founder dilution
// table.
func DilutionMarkdown(r *captable.DilutionReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s: %s\n\n", r.Company, r.Round.Name)

	fmt.Fprintf(&b, "- Investment: %s\n", r.Round.Investment)
	fmt.Fprintf(&b, "- Pre-money valuation: %s\n", r.Round.PreMoney)
	fmt.Fprintf(&b, "- Post-money valuation: %s\n", r.PostMoney)
	fmt.Fprintf(&b, "- Price per share: %s\n", r.PricePerShare.StringFixed(4))
	fmt.Fprintf(&b, "- New shares issued: %s (%s total after the round)\n\n",
		r.Round.NewShares.Commas(), r.PostTotal.Commas())

	fmt.Fprintln(&b, "| Founder | Pre Shares | Post Shares | Pre % | Post % | Dilution |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			e.Founder,
			e.PreShares.Commas(),
			e.PostShares.Commas(),
			e.PrePercent,
			e.PostPercent,
			e.Dilution.SignedString(),
		)
	}
	return b.String()
}
