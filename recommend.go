package captable

// Advisory thresholds.
const (
	maxFounders     = 4    // above this, coordination gets hard
	disparityPoints = 40.0 // percentage points between largest and smallest stake
	reserveFloor    = 10.0 // % of the pool that should stay unallocated
	reserveCeiling  = 40.0 // % unallocated above which the pool looks unplanned
)

// Recommendations derives advisory messages from a validated company and
// its computed ownership percentages. It is purely advisory: it never
// blocks a calculation and has no failure mode; it only reads data that
// validation has already accepted.
func Recommendations(c *Company, percentages map[string]Percent) []string {
	var recs []string

	if len(c.Founders) == 1 {
		recs = append(recs, "Consider adding co-founders to distribute risk and expertise.")
	}
	if len(c.Founders) > maxFounders {
		recs = append(recs, "Large founder teams may face coordination challenges.")
	}

	if len(c.Founders) > 1 {
		min, max := percentages[c.Founders[0].Name], percentages[c.Founders[0].Name]
		for _, f := range c.Founders[1:] {
			p := percentages[f.Name]
			if p.GreaterThan(max) {
				max = p
			}
			if min.GreaterThan(p) {
				min = p
			}
		}
		if max.Sub(min).Float64() > disparityPoints {
			recs = append(recs, "Large equity disparities between founders may create future conflicts.")
		}
	}

	if c.TotalShares.IsPositive() {
		unallocated := percentOf(c.UnallocatedShares(), c.TotalShares).Float64()
		if unallocated < reserveFloor {
			recs = append(recs, "Consider reserving more shares for future employees and funding rounds.")
		}
		if unallocated > reserveCeiling {
			recs = append(recs, "A large part of the pool is unallocated; reserve it explicitly for future hires and investors.")
		}
	}

	return recs
}
