package main

import (
	"fmt"
	"os"

	"github.com/locktopus-project/sandwich/internal/constants"
	"github.com/locktopus-project/sandwich/internal/logger"
	"github.com/locktopus-project/sandwich/internal/sandwich"
	"github.com/locktopus-project/sandwich/internal/scenario"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout))
}

// run writes everything to out, which must be a file so go-log can inspect it.
func run(args []string, getenv func(string) string, out *os.File) int {
	mainLogger := logger.NewLogger(out)
	passLogger := logger.NewLogger(out)

	params, err := parseArguments(args, getenv, out)
	if err != nil {
		mainLogger.Error(err)
		return constants.ExitCodeFailure
	}

	if params.Help {
		return constants.ExitCodeSuccess
	}

	scenarios, err := scenario.Filter(sandwich.Scenarios(), params.Run)
	if err != nil {
		mainLogger.Error(err)
		return constants.ExitCodeFailure
	}

	if params.List {
		for _, s := range scenarios {
			fmt.Fprintln(out, s.Name)
		}

		return constants.ExitCodeSuccess
	}

	if params.Quiet {
		passLogger.Disable()
	}

	if len(scenarios) == 0 && params.Format == constants.FormatText {
		mainLogger.Warnf("No scenarios match %q", params.Run)
	}

	var reporter scenario.Reporter

	switch params.Format {
	case constants.FormatJSON:
		reporter = scenario.NewJSONReporter(out)
	default:
		reporter = scenario.NewTextReporter(passLogger, mainLogger)
	}

	summary := scenario.NewRunner(reporter).Run(scenarios)

	return summary.ExitCode()
}
