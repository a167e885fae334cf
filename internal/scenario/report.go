package scenario

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/locktopus-project/sandwich/internal/logger"
)

type Reporter interface {
	ScenarioFinished(res Result)
	Finished(summary Summary)
}

type textReporter struct {
	passes   *logger.Logger
	failures *logger.Logger
}

// NewTextReporter writes human readable lines. Passing scenarios go to passes,
// failures and the summary go to failures.
func NewTextReporter(passes, failures *logger.Logger) Reporter {
	return &textReporter{
		passes:   passes,
		failures: failures,
	}
}

func (r *textReporter) ScenarioFinished(res Result) {
	if res.Passed {
		r.passes.Infof("PASS %s (%s)", res.Name, res.Duration)
		return
	}

	r.failures.Errorf("FAIL %s (%s): %s", res.Name, res.Duration, res.Failure)
}

func (r *textReporter) Finished(summary Summary) {
	if summary.Failed > 0 {
		r.failures.Errorf("%d passed, %d failed", summary.Passed, summary.Failed)
		return
	}

	r.failures.Infof("%d passed, %d failed", summary.Passed, summary.Failed)
}

type jsonReporter struct {
	l zerolog.Logger
}

// NewJSONReporter writes one JSON object per scenario and one for the summary.
func NewJSONReporter(w io.Writer) Reporter {
	return &jsonReporter{
		l: zerolog.New(w).With().Timestamp().Logger(),
	}
}

func (r *jsonReporter) ScenarioFinished(res Result) {
	e := r.l.Info()
	if !res.Passed {
		e = r.l.Error().Err(res.Failure)
	}

	e.Str("scenario", res.Name).
		Bool("passed", res.Passed).
		Int64("duration_ms", res.Duration.Milliseconds()).
		Msg("scenario finished")
}

func (r *jsonReporter) Finished(summary Summary) {
	r.l.Info().
		Int("passed", summary.Passed).
		Int("failed", summary.Failed).
		Msg("run finished")
}
