// Package report renders experiment results produced by the estimator
// package. It is deliberately kept outside the numerical core: the core
// returns structured results, and this package turns them into tables
// and plots.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/YuminosukeSato/reparam/estimator"
	"github.com/YuminosukeSato/reparam/pkg/errors"
)

// WriteTable writes a per-sample-size summary of both estimators to w.
// Sample sizes appear in the order configured for the run.
func WriteTable(w io.Writer, result *estimator.Result) error {
	if result == nil {
		return errors.NewValueError("WriteTable", "nil result")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "N\tscore mean\tscore var\treparam mean\treparam var\tvar ratio\n")
	for _, n := range result.SampleSizes {
		s, ok := result.Summary(n)
		if !ok {
			return errors.NewValueError("WriteTable", fmt.Sprintf("missing summary for sample size %d", n))
		}
		fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t%.6g\t%.6g\t%.3g\n",
			n, s.ScoreMean, s.ScoreVariance, s.ReparamMean, s.ReparamVariance, s.VarianceRatio())
	}
	return tw.Flush()
}
