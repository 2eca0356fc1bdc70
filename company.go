package captable

import "github.com/etnz/captable/date"

// Founder is a share grant to one person. A founder has no identity outside
// its company; names are unique (case-sensitive) within one.
type Founder struct {
	Name      string
	Shares    Quantity
	StartDate date.Date // beginning of this founder's vesting clock
}

// NewFounder returns a founder with the given grant.
func NewFounder(name string, shares Quantity, start date.Date) Founder {
	return Founder{Name: name, Shares: shares, StartDate: start}
}

// Company is an authorized share pool and the founders holding grants from
// it. It is built once per session and only ever grows by appending
// founders; every calculation returns a new derived view instead of
// mutating it.
type Company struct {
	Name        string
	TotalShares Quantity
	Founders    []Founder // insertion order is display and processing order
}

// NewCompany returns a company with an empty founder list.
func NewCompany(name string, totalShares Quantity) *Company {
	return &Company{Name: name, TotalShares: totalShares}
}

// AddFounder appends a founder. It does not validate the grant; callers
// that need to refuse bad grants use ValidateNewFounder first.
func (c *Company) AddFounder(f Founder) {
	c.Founders = append(c.Founders, f)
}

// TotalFounderShares sums every founder's grant.
func (c *Company) TotalFounderShares() Quantity {
	total := Q(0)
	for _, f := range c.Founders {
		total = total.Add(f.Shares)
	}
	return total
}

// UnallocatedShares is the part of the authorized pool not granted to any
// founder, available for future issuance. There is no separate entity for
// it: it is simply the remainder.
func (c *Company) UnallocatedShares() Quantity {
	return c.TotalShares.Sub(c.TotalFounderShares())
}
