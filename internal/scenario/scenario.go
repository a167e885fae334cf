// Package scenario runs named assertion scenarios and reports their outcome.
package scenario

import (
	"regexp"
	"time"

	"github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/locktopus-project/sandwich/internal/constants"
)

// Scenario is one independent case: setup, action and assertions live in Run.
type Scenario struct {
	Name string
	Run  func(g gomega.Gomega)
}

type Result struct {
	Name     string
	Passed   bool
	Failure  error
	Duration time.Duration
}

type Summary struct {
	Results []Result
	Passed  int
	Failed  int
}

func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return constants.ExitCodeFailure
	}

	return constants.ExitCodeSuccess
}

func FullName(group, name string) string {
	if group == "" {
		return name
	}

	return group + " " + name
}

// Filter keeps scenarios whose name matches pattern. Empty pattern keeps everything.
func Filter(scenarios []Scenario, pattern string) ([]Scenario, error) {
	if pattern == "" {
		return scenarios, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid scenario pattern %q", pattern)
	}

	filtered := make([]Scenario, 0, len(scenarios))

	for _, s := range scenarios {
		if re.MatchString(s.Name) {
			filtered = append(filtered, s)
		}
	}

	return filtered, nil
}
