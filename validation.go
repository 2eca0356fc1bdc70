package captable

import (
	"errors"
	"fmt"
	"strings"
)

// Validation collects every violated business rule as a human readable
// message instead of stopping at the first failure, so a caller can present
// all problems at once. An empty result means the configuration is valid.
// Validation never blocks the calculators themselves: they stay defensive
// about pathological input because tests may call them directly.

// Validate checks the structural and business rules of a company setup.
func Validate(c *Company) []string {
	var violations []string

	if strings.TrimSpace(c.Name) == "" {
		violations = append(violations, "company name cannot be empty")
	}
	if !c.TotalShares.IsPositive() {
		violations = append(violations, "total shares must be greater than 0")
	}
	if len(c.Founders) == 0 {
		violations = append(violations, "at least one founder must be added")
	}
	for _, f := range c.Founders {
		if strings.TrimSpace(f.Name) == "" {
			violations = append(violations, "founder name cannot be empty")
		}
		if f.Shares.IsNegative() {
			violations = append(violations, fmt.Sprintf("founder %q has a negative share grant", f.Name))
		}
	}

	total := c.TotalFounderShares()
	if total.GreaterThan(c.TotalShares) {
		violations = append(violations, fmt.Sprintf("total founder shares (%s) exceed authorized shares (%s)",
			total.Commas(), c.TotalShares.Commas()))
	}

	seen := make(map[string]bool, len(c.Founders))
	for _, f := range c.Founders {
		if seen[f.Name] {
			violations = append(violations, fmt.Sprintf("founder names must be unique: %q appears more than once", f.Name))
		}
		seen[f.Name] = true
	}

	// Sanity bound: a single stake over 100% means the pool itself is broken.
	// Caught here so the calculators never have to explain such a number.
	for _, f := range c.Founders {
		if f.Shares.IsPositive() && f.Shares.GreaterThan(c.TotalShares) {
			violations = append(violations, fmt.Sprintf("founder %q would own more than 100%% of the company", f.Name))
		}
	}

	return violations
}

// ValidateRound checks the parameters of a funding round.
func ValidateRound(r FundingRound) []string {
	var violations []string

	if strings.TrimSpace(r.Name) == "" {
		violations = append(violations, "round name cannot be empty")
	}
	if !r.Investment.IsPositive() {
		violations = append(violations, "investment amount must be greater than 0")
	}
	if !r.PreMoney.IsPositive() {
		violations = append(violations, "pre-money valuation must be greater than 0")
	}
	if !r.NewShares.IsPositive() {
		violations = append(violations, "new shares to issue must be greater than 0")
	}

	return violations
}

// ValidateNewFounder checks a grant before it is appended to the company,
// so an interactive caller can refuse it without touching the
// configuration.
func ValidateNewFounder(c *Company, f Founder) []string {
	var violations []string

	if strings.TrimSpace(f.Name) == "" {
		violations = append(violations, "founder name cannot be empty")
	}
	if !f.Shares.IsPositive() {
		violations = append(violations, "founder shares must be greater than 0")
	}
	for _, existing := range c.Founders {
		if existing.Name == f.Name {
			violations = append(violations, fmt.Sprintf("founder %q already exists", f.Name))
			break
		}
	}
	if remaining := c.UnallocatedShares(); f.Shares.GreaterThan(remaining) {
		violations = append(violations, fmt.Sprintf("cannot grant %s shares, only %s remaining",
			f.Shares.Commas(), remaining.Commas()))
	}

	return violations
}

// Violations folds a list of violation messages into a single error, or nil
// when the list is empty.
func Violations(msgs []string) error {
	var errs error
	for _, m := range msgs {
		errs = errors.Join(errs, errors.New(m))
	}
	return errs
}
