package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/captable"
	"github.com/etnz/captable/date"
	"gopkg.in/yaml.v2"
)

// scenario is the YAML schema of a company file. The file is input only:
// nothing is ever written back.
type scenario struct {
	Company     string            `yaml:"company"`
	TotalShares int64             `yaml:"total_shares"`
	Currency    string            `yaml:"currency"`
	Founders    []scenarioFounder `yaml:"founders"`
	Vesting     *scenarioVesting  `yaml:"vesting"`
	Round       *scenarioRound    `yaml:"round"`
}

type scenarioFounder struct {
	Name   string `yaml:"name"`
	Shares int64  `yaml:"shares"`
	Start  string `yaml:"start"`
}

type scenarioVesting struct {
	CliffMonths   int `yaml:"cliff_months"`
	VestingMonths int `yaml:"vesting_months"`
}

type scenarioRound struct {
	Name       string  `yaml:"name"`
	Investment float64 `yaml:"investment"`
	PreMoney   float64 `yaml:"pre_money"`
	NewShares  int64   `yaml:"new_shares"`
}

func loadScenario(path string) (*scenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read scenario file %q: %w", path, err)
	}
	return parseScenario(content)
}

func parseScenario(content []byte) (*scenario, error) {
	var s scenario
	if err := yaml.Unmarshal(content, &s); err != nil {
		return nil, fmt.Errorf("invalid scenario file: %w", err)
	}
	if s.Currency == "" {
		s.Currency = "USD"
	}
	return &s, nil
}

// CompanyValue converts the scenario into the engine's company value. A
// founder without a start date starts today.
func (s *scenario) CompanyValue() (*captable.Company, error) {
	c := captable.NewCompany(s.Company, captable.Q(s.TotalShares))
	for _, f := range s.Founders {
		start := date.Today()
		if f.Start != "" {
			var err error
			start, err = date.Parse(f.Start)
			if err != nil {
				return nil, fmt.Errorf("founder %q: %w", f.Name, err)
			}
		}
		c.AddFounder(captable.NewFounder(f.Name, captable.Q(f.Shares), start))
	}
	return c, nil
}

// Schedule returns the scenario's vesting schedule, or the 12/48 default.
func (s *scenario) Schedule() captable.VestingSchedule {
	if s.Vesting == nil {
		return captable.DefaultSchedule()
	}
	return captable.VestingSchedule{
		CliffMonths:   s.Vesting.CliffMonths,
		VestingMonths: s.Vesting.VestingMonths,
	}
}

// RoundValue returns the scenario's funding round, if it declares one.
func (s *scenario) RoundValue() (captable.FundingRound, bool) {
	if s.Round == nil {
		return captable.FundingRound{}, false
	}
	return captable.FundingRound{
		Name:       s.Round.Name,
		Investment: captable.M(s.Round.Investment, s.Currency),
		PreMoney:   captable.M(s.Round.PreMoney, s.Currency),
		NewShares:  captable.Q(s.Round.NewShares),
	}, true
}
