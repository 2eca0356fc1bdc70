// Package cmd implements the cst CLI on top of the captable engine.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/captable"
	"github.com/etnz/captable/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&captableCmd{}, "reports")
	c.Register(&vestingCmd{}, "reports")
	c.Register(&roundCmd{}, "reports")

	c.Register(&checkCmd{}, "scenario")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var scenarioFile = flag.String("f", "", "Path to the company scenario file (YAML), default $CST_FILE or company.yaml")

// scenarioPath resolves the scenario file at use time, after godotenv had a
// chance to populate the environment.
func scenarioPath() string {
	if *scenarioFile != "" {
		return *scenarioFile
	}
	if f := os.Getenv("CST_FILE"); f != "" {
		return f
	}
	return "company.yaml"
}

// loadCompany loads the scenario file and returns the engine's company
// value along with the raw scenario (for its vesting and round sections).
func loadCompany() (*captable.Company, *scenario, error) {
	s, err := loadScenario(scenarioPath())
	if err != nil {
		return nil, nil, err
	}
	company, err := s.CompanyValue()
	if err != nil {
		return nil, nil, err
	}
	return company, s, nil
}

// validCompany is loadCompany plus validation: on any violation it renders
// the full list and reports failure, and the calculation is not performed.
func validCompany() (*captable.Company, *scenario, subcommands.ExitStatus) {
	company, s, err := loadCompany()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	if violations := captable.Validate(company); len(violations) > 0 {
		printMarkdown(renderer.ViolationsMarkdown(violations))
		return nil, nil, subcommands.ExitFailure
	}
	return company, s, subcommands.ExitSuccess
}
