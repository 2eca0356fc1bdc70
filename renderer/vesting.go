package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/captable"
)

// VestingMarkdown renders the vesting status of every founder at the
// report's reference date.
func VestingMarkdown(r *captable.VestingReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Vesting for %s as of %s\n\n", r.Company, r.AsOf)
	fmt.Fprintf(&b, "Schedule: %d-month cliff, fully vested after %d months.\n\n",
		r.Schedule.CliffMonths, r.Schedule.VestingMonths)

	fmt.Fprintln(&b, "| Founder | Start | Total | Vested | Unvested | Vested % | Status |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|:---|")
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			e.Founder,
			e.Start,
			e.Total.Commas(),
			e.Vested.Commas(),
			e.Unvested.Commas(),
			e.VestedPercent,
			e.State,
		)
	}
	return b.String()
}
