package report

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/reparam/estimator"
	"github.com/YuminosukeSato/reparam/pkg/errors"
)

// VariancePlot renders the variance of both estimators against sample size
// on log-log axes and saves the figure to path. The output format follows
// the file extension (.png, .svg, .pdf, ...).
func VariancePlot(result *estimator.Result, path string) error {
	if result == nil {
		return errors.NewValueError("VariancePlot", "nil result")
	}
	if len(result.SampleSizes) == 0 {
		return errors.NewValueError("VariancePlot", "result has no sample sizes")
	}

	p := plot.New()
	p.Title.Text = "Gradient estimator variance"
	p.X.Label.Text = "sample size N"
	p.Y.Label.Text = "variance over trials"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true

	scorePts := make(plotter.XYs, 0, len(result.SampleSizes))
	reparamPts := make(plotter.XYs, 0, len(result.SampleSizes))
	for _, n := range result.SampleSizes {
		s, ok := result.Summary(n)
		if !ok {
			return errors.Newf("missing summary for sample size %d", n)
		}
		// Log-scale axes cannot represent non-positive values; a zero variance
		// only occurs in degenerate single-repetition runs.
		if s.ScoreVariance > 0 {
			scorePts = append(scorePts, plotter.XY{X: float64(n), Y: s.ScoreVariance})
		}
		if s.ReparamVariance > 0 {
			reparamPts = append(reparamPts, plotter.XY{X: float64(n), Y: s.ReparamVariance})
		}
	}
	if len(scorePts) == 0 && len(reparamPts) == 0 {
		return errors.New("no positive variances to plot")
	}

	if err := addLine(p, "score function", scorePts); err != nil {
		return err
	}
	if err := addLine(p, "reparameterized", reparamPts); err != nil {
		return err
	}

	// gonum/plot panics on some malformed inputs; convert those to errors.
	return errors.SafeExecute("VariancePlot", func() error {
		if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			return errors.Wrap(err, "saving variance plot")
		}
		return nil
	})
}

func addLine(p *plot.Plot, name string, pts plotter.XYs) error {
	if len(pts) == 0 {
		return nil
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return errors.Wrapf(err, "building %s line", name)
	}
	p.Add(line, points)
	p.Legend.Add(name, line, points)
	return nil
}
