package scenario

import (
	"time"

	"github.com/onsi/gomega"
	"github.com/pkg/errors"

	internal "github.com/locktopus-project/sandwich/internal/utils"
)

type Runner struct {
	reporter Reporter
}

func NewRunner(reporter Reporter) *Runner {
	return &Runner{
		reporter: reporter,
	}
}

// Run executes scenarios one after another. A failing scenario does not stop the rest.
func (r *Runner) Run(scenarios []Scenario) Summary {
	summary := Summary{
		Results: make([]Result, 0, len(scenarios)),
	}

	for _, s := range scenarios {
		res := runOne(s)

		if res.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}

		summary.Results = append(summary.Results, res)
		r.reporter.ScenarioFinished(res)
	}

	r.reporter.Finished(summary)

	return summary
}

// failedExpectation stops a scenario body at its first failed expectation.
type failedExpectation struct{}

func runOne(s Scenario) (res Result) {
	res.Name = s.Name

	var failure error

	g := gomega.NewGomega(func(message string, callerSkip ...int) {
		failure = errors.New(message)
		panic(failedExpectation{})
	})

	start := time.Now()

	defer func() {
		res.Duration = time.Since(start)

		if r := recover(); r != nil {
			if _, ok := r.(failedExpectation); !ok {
				failure = internal.RecoveredError(r, "scenario panicked")
			}
		}

		res.Failure = failure
		res.Passed = failure == nil
	}()

	if s.Run == nil {
		failure = errors.New("scenario has no body")
		return
	}

	s.Run(g)

	return
}
