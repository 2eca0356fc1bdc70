package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/captable"
	"github.com/etnz/captable/renderer"
	"github.com/google/subcommands"
)

// captableCmd holds the flags for the 'captable' subcommand.
type captableCmd struct {
	skipRecommendations bool
}

func (*captableCmd) Name() string     { return "captable" }
func (*captableCmd) Synopsis() string { return "display the cap table and recommendations" }
func (*captableCmd) Usage() string {
	return `cst [-f <file>] captable [-q]

  Validates the scenario and displays each founder's share count and
  ownership percentage, with advisory recommendations.
`
}

func (c *captableCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.skipRecommendations, "q", false, "quiet: skip the recommendations section")
}

func (c *captableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	company, _, status := validCompany()
	if status != subcommands.ExitSuccess {
		return status
	}

	var sections []string
	sections = append(sections, renderer.CapTableMarkdown(captable.NewCapTableReport(company)))

	if !c.skipRecommendations {
		percentages := captable.OwnershipPercentages(company)
		if recs := captable.Recommendations(company, percentages); len(recs) > 0 {
			sections = append(sections, renderer.RecommendationsMarkdown(recs))
		}
	}

	printMarkdown(strings.Join(sections, "\n"))
	return subcommands.ExitSuccess
}
