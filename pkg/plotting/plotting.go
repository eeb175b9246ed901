// Package plotting renders the run's progress and result as PNG charts
// using gonum/plot. It consumes the engine's per-epoch observer
// callback and the final best candidate; it never feeds back into the
// search.
package plotting

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/wildfunctions/closedform/pkg/approx"
	"github.com/wildfunctions/closedform/pkg/expr"
)

// FitnessRecorder collects the best score per epoch through an engine
// observer and writes a fitness-over-epochs line chart.
type FitnessRecorder struct {
	pts plotter.XYs
}

// NewFitnessRecorder returns an empty recorder.
func NewFitnessRecorder() *FitnessRecorder {
	return &FitnessRecorder{}
}

// Observer returns the per-epoch callback to register with the engine.
// The engine invokes observers synchronously, so no locking is needed.
func (f *FitnessRecorder) Observer() func(epoch int, best expr.Node, score float64) {
	return func(epoch int, _ expr.Node, score float64) {
		f.pts = append(f.pts, plotter.XY{X: float64(epoch), Y: score})
	}
}

// WritePNG saves the recorded fitness curve.
func (f *FitnessRecorder) WritePNG(path string) error {
	p := plot.New()
	p.Title.Text = "Best fitness per epoch"
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "Fitness"

	line, err := plotter.NewLine(f.pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// WriteOverlayPNG saves a chart of the best candidate against the
// target function over the fit domain.
func WriteOverlayPNG(path string, best expr.Node, varName string, target func(float64) float64, lo, hi float64, n int) error {
	got, err := approx.Sample(best, varName, lo, hi, n)
	if err != nil {
		return err
	}
	want := approx.SampleFunc(target, lo, hi, n)

	step := (hi - lo) / float64(n-1)
	gotPts := make(plotter.XYs, n)
	wantPts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		gotPts[i] = plotter.XY{X: x, Y: got[i]}
		wantPts[i] = plotter.XY{X: x, Y: want[i]}
	}

	p := plot.New()
	p.Title.Text = "Best candidate vs target"
	p.X.Label.Text = varName
	p.Y.Label.Text = "value"

	gotLine, err := plotter.NewLine(gotPts)
	if err != nil {
		return err
	}
	wantLine, err := plotter.NewLine(wantPts)
	if err != nil {
		return err
	}
	wantLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(gotLine, wantLine)
	p.Legend.Add("candidate", gotLine)
	p.Legend.Add("target", wantLine)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
