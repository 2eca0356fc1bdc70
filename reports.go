package captable

import "github.com/etnz/captable/date"

// CapTableEntry is one founder line of the cap table.
type CapTableEntry struct {
	Founder string
	Shares  Quantity
	Percent Percent
}

// CapTableReport lists every founder's stake against the authorized pool,
// in founder insertion order.
type CapTableReport struct {
	Company            string
	TotalShares        Quantity
	Entries            []CapTableEntry
	Unallocated        Quantity
	UnallocatedPercent Percent
}

// NewCapTableReport computes the cap table of a company.
func NewCapTableReport(c *Company) *CapTableReport {
	percentages := OwnershipPercentages(c)

	r := &CapTableReport{
		Company:            c.Name,
		TotalShares:        c.TotalShares,
		Entries:            make([]CapTableEntry, 0, len(c.Founders)),
		Unallocated:        c.UnallocatedShares(),
		UnallocatedPercent: percentOf(c.UnallocatedShares(), c.TotalShares),
	}
	for _, f := range c.Founders {
		r.Entries = append(r.Entries, CapTableEntry{
			Founder: f.Name,
			Shares:  f.Shares,
			Percent: percentages[f.Name],
		})
	}
	return r
}

// VestingEntry is one founder line of the vesting report.
type VestingEntry struct {
	Founder       string
	Start         date.Date
	Total         Quantity
	Vested        Quantity
	Unvested      Quantity
	VestedPercent Percent
	State         VestingState
}

// VestingReport is the vested/unvested split of every founder's grant at a
// reference date, under one shared schedule.
type VestingReport struct {
	Company  string
	AsOf     date.Date
	Schedule VestingSchedule
	Entries  []VestingEntry
}

// NewVestingReport computes the vesting status of every founder as of the
// given date.
func NewVestingReport(c *Company, schedule VestingSchedule, asOf date.Date) *VestingReport {
	r := &VestingReport{
		Company:  c.Name,
		AsOf:     asOf,
		Schedule: schedule,
		Entries:  make([]VestingEntry, 0, len(c.Founders)),
	}
	for _, f := range c.Founders {
		v := VestedShares(f, schedule, asOf)
		r.Entries = append(r.Entries, VestingEntry{
			Founder:       f.Name,
			Start:         f.StartDate,
			Total:         f.Shares,
			Vested:        v.Vested,
			Unvested:      v.Unvested,
			VestedPercent: v.VestedPercent,
			State:         v.State,
		})
	}
	return r
}
