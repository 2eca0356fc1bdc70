package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/captable"
	"github.com/etnz/captable/date"
	"github.com/etnz/captable/renderer"
	"github.com/google/subcommands"
)

// vestingCmd holds the flags for the 'vesting' subcommand.
type vestingCmd struct {
	date string
}

func (*vestingCmd) Name() string     { return "vesting" }
func (*vestingCmd) Synopsis() string { return "display vested and unvested shares at a date" }
func (*vestingCmd) Usage() string {
	return `cst [-f <file>] vesting [-d <date>]

  Computes each founder's vested and unvested shares as of the given
  reference date, under the scenario's vesting schedule.
`
}

func (c *vestingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for the vesting computation (YYYY-MM-DD)")
}

func (c *vestingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	company, s, status := validCompany()
	if status != subcommands.ExitSuccess {
		return status
	}

	report := captable.NewVestingReport(company, s.Schedule(), asOf)
	printMarkdown(renderer.VestingMarkdown(report))
	return subcommands.ExitSuccess
}
