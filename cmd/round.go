package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/captable"
	"github.com/etnz/captable/renderer"
	"github.com/google/subcommands"
)

// roundCmd holds the flags for the 'round' subcommand. Flags override the
// scenario's round section, so a round can be simulated without editing
// the file.
type roundCmd struct {
	name       string
	investment float64
	preMoney   float64
	newShares  int64
}

func (*roundCmd) Name() string     { return "round" }
func (*roundCmd) Synopsis() string { return "simulate a funding round and its dilution" }
func (*roundCmd) Usage() string {
	return `cst [-f <file>] round [-name <label>] [-investment <amount>] [-pre <valuation>] [-shares <count>]

  Applies a funding round to the scenario's company and displays the
  per-founder dilution. Without flags, the scenario's own round section is
  used.
`
}

func (c *roundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Round label (e.g. \"Series A\")")
	f.Float64Var(&c.investment, "investment", 0, "Investment amount")
	f.Float64Var(&c.preMoney, "pre", 0, "Pre-money valuation")
	f.Int64Var(&c.newShares, "shares", 0, "New shares issued to investors")
}

func (c *roundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	company, s, status := validCompany()
	if status != subcommands.ExitSuccess {
		return status
	}

	round, ok := s.RoundValue()
	if !ok {
		round = captable.FundingRound{}
	}
	if c.name != "" {
		round.Name = c.name
	}
	if c.investment != 0 {
		round.Investment = captable.M(c.investment, s.Currency)
	}
	if c.preMoney != 0 {
		round.PreMoney = captable.M(c.preMoney, s.Currency)
	}
	if c.newShares != 0 {
		round.NewShares = captable.Q(c.newShares)
	}
	if !ok && c.name == "" && c.investment == 0 && c.preMoney == 0 && c.newShares == 0 {
		fmt.Fprintln(os.Stderr, "Error: the scenario has no round section and no round flags were given")
		return subcommands.ExitUsageError
	}

	if violations := captable.ValidateRound(round); len(violations) > 0 {
		printMarkdown(renderer.ViolationsMarkdown(violations))
		return subcommands.ExitFailure
	}

	report := captable.ApplyFundingRound(company, round)
	printMarkdown(renderer.DilutionMarkdown(report))
	return subcommands.ExitSuccess
}
