package captable

// OwnershipPercentages returns each founder's ownership of the authorized
// pool, keyed by founder name. Percentages keep full decimal precision;
// rounding is Percent.String's concern. A company with a non-positive pool
// yields zero percentages instead of dividing by zero (validation reports
// such a pool as a violation).
func OwnershipPercentages(c *Company) map[string]Percent {
	out := make(map[string]Percent, len(c.Founders))
	for _, f := range c.Founders {
		out[f.Name] = percentOf(f.Shares, c.TotalShares)
	}
	return out
}

// DilutionEntry compares one founder's position before and after a round.
// PostShares always equals PreShares: a funding round issues shares to new
// investors only, existing founders just own a smaller fraction.
type DilutionEntry struct {
	Founder     string
	PreShares   Quantity
	PostShares  Quantity
	PrePercent  Percent
	PostPercent Percent
	Dilution    Percent // PrePercent - PostPercent
}

// DilutionReport is the computed view of a funding round applied to a
// company. The company itself is left untouched.
type DilutionReport struct {
	Company       string
	Round         FundingRound
	PreTotal      Quantity
	PostTotal     Quantity // PreTotal + Round.NewShares
	PostMoney     Money
	PricePerShare Money
	Entries       []DilutionEntry
}

// ApplyFundingRound computes post-round ownership and dilution for every
// founder. Only the denominator grows, by Round.NewShares; with zero new
// shares every dilution is exactly zero, not approximately.
func ApplyFundingRound(c *Company, round FundingRound) *DilutionReport {
	preTotal := c.TotalShares
	postTotal := preTotal.Add(round.NewShares)

	report := &DilutionReport{
		Company:       c.Name,
		Round:         round,
		PreTotal:      preTotal,
		PostTotal:     postTotal,
		PostMoney:     round.PostMoneyValuation(),
		PricePerShare: round.PricePerShare(preTotal),
		Entries:       make([]DilutionEntry, 0, len(c.Founders)),
	}

	for _, f := range c.Founders {
		pre := percentOf(f.Shares, preTotal)
		post := percentOf(f.Shares, postTotal)
		report.Entries = append(report.Entries, DilutionEntry{
			Founder:     f.Name,
			PreShares:   f.Shares,
			PostShares:  f.Shares,
			PrePercent:  pre,
			PostPercent: post,
			Dilution:    pre.Sub(post),
		})
	}
	return report
}
