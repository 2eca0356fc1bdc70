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

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the scenario and list every violation" }
func (*checkCmd) Usage() string {
	return `cst [-f <file>] check

  Runs every validation rule on the scenario (company and, when present,
  funding round) and lists all violations at once. Exits non-zero when the
  scenario is invalid.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	company, s, err := loadCompany()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}

	violations := captable.Validate(company)
	if round, ok := s.RoundValue(); ok {
		violations = append(violations, captable.ValidateRound(round)...)
	}

	if len(violations) > 0 {
		printMarkdown(renderer.ViolationsMarkdown(violations))
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: scenario is valid\n", scenarioPath())
	return subcommands.ExitSuccess
}
