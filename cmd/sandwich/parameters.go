package main

import (
	"fmt"
	"io"

	f "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	constants "github.com/locktopus-project/sandwich/internal/constants"
	internal "github.com/locktopus-project/sandwich/internal/utils"
)

type parameters struct {
	Help   bool
	List   bool
	Quiet  bool
	Run    string
	Format string
}

type arguments struct {
	Help   bool   `short:"h" long:"help" description:"Show help message and exit"`
	Run    string `short:"r" long:"run" description:"Run only scenarios whose name matches the regexp. Overrides env var SANDWICH_RUN. Default: all"`
	Format string `short:"f" long:"format" description:"Output format (text/json). Overrides env var SANDWICH_FORMAT. Default: text"`
	Quiet  string `short:"q" long:"quiet" optional:"yes" optional-value:"true" description:"Print only failures and the summary (--quiet or --quiet=true/false). Overrides env var SANDWICH_QUIET. Default: false"`
	List   string `short:"l" long:"list" optional:"yes" optional-value:"true" description:"List scenario names and exit (--list or --list=true/false). Overrides env var SANDWICH_LIST. Default: false"`
}

// parseArguments resolves every parameter from args, then env vars, then defaults.
// Help text is written to help on any error or when requested.
func parseArguments(args []string, getenv func(string) string, help io.Writer) (parameters, error) {
	var a arguments

	p := f.NewParser(&a, f.PassDoubleDash)

	if _, err := p.ParseArgs(args); err != nil {
		p.WriteHelp(help)
		return parameters{}, internal.WrapError(err, "cannot parse arguments")
	}

	if a.Help {
		p.WriteHelp(help)
		return parameters{Help: true}, nil
	}

	r := resolver{getenv: getenv}

	params := parameters{
		Run:    r.stringParameter(a.Run, "RUN", ""),
		Format: r.stringParameter(a.Format, "FORMAT", constants.DefaultFormat),
		Quiet:  r.boolParameter(a.Quiet, "QUIET", false),
		List:   r.boolParameter(a.List, "LIST", false),
	}

	if params.Format != constants.FormatText && params.Format != constants.FormatJSON {
		p.WriteHelp(help)
		return parameters{}, errors.Errorf("unknown format %q", params.Format)
	}

	return params, nil
}

type resolver struct {
	getenv func(string) string
}

func (r resolver) envVar(name string) string {
	return r.getenv(fmt.Sprintf("%v%s", constants.EnvPrefix, name))
}

func (r resolver) stringParameter(argValue, envName, def string) string {
	if argValue != "" {
		return argValue
	}

	if e := r.envVar(envName); e != "" {
		return e
	}

	return def
}

var trueStrings = []string{"true", "1", "yes", "y"}

func (r resolver) boolParameter(argValue, envName string, def bool) bool {
	if argValue != "" {
		return contains(trueStrings, argValue)
	}

	if e := r.envVar(envName); e != "" {
		return contains(trueStrings, e)
	}

	return def
}

func contains[T comparable](arr []T, s T) bool {
	for _, v := range arr {
		if v == s {
			return true
		}
	}

	return false
}
