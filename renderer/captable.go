package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/captable"
)

// CapTableMarkdown renders the cap table of a company.
func CapTableMarkdown(r *captable.CapTableReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Cap Table for %s\n\n", r.Company)
	fmt.Fprintln(&b, "| Founder | Shares | Ownership |")
	fmt.Fprintln(&b, "|:---|---:|---:|")

	for _, e := range r.Entries {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", e.Founder, e.Shares.Commas(), e.Percent)
	}
	if !r.Unallocated.IsZero() {
		fmt.Fprintf(&b, "| (unallocated) | %s | %s |\n", r.Unallocated.Commas(), r.UnallocatedPercent)
	}

	fmt.Fprintf(&b, "\nAuthorized shares: %s\n", r.TotalShares.Commas())
	return b.String()
}
