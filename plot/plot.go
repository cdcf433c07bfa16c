// Package plot renders note and chord series as charts. It is a pure
// consumer: it takes parallel label/value sequences and draws them, with
// no feedback into the resolver.
package plot

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"pitchplot/chord"
	"pitchplot/model"
)

// ScaleChart draws one frequency per note as a connected line, notes on the
// X axis in the order given. logY switches the Y axis to a log scale, which
// renders the equal-tempered curve as a straight line.
func ScaleChart(names []string, freqs []float64, title string, logY bool) (*plot.Plot, error) {
	if len(names) != len(freqs) {
		return nil, errors.Errorf("got %v names but %v frequencies", len(names), len(freqs))
	}

	xys := make(plotter.XYs, len(freqs))
	for i, f := range freqs {
		xys[i].X = float64(i)
		xys[i].Y = f
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Notes"
	p.Y.Label.Text = "Frequency (hz)"
	if logY {
		p.Y.Label.Text = "Frequency (logarithmic hz)"
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, errors.Wrap(err, "could not build line")
	}
	p.Add(plotter.NewGrid(), line, points)
	p.NominalX(names...)
	return p, nil
}

// Tick pins a Y-axis label to a frequency, so chord charts can mark the
// axis in semitone offsets or note names instead of plain hz.
type Tick struct {
	Value float64
	Label string
}

// ChordChart scatters every frequency of every voicing, one X slot per
// voicing, labeled with its root-chord key. A non-empty ticks list replaces
// the default numeric Y ticks.
func ChordChart(voicings []model.Voicing, title string, yLabel string, ticks []Tick) (*plot.Plot, error) {
	if len(voicings) == 0 {
		return nil, errors.New("no voicings to chart")
	}

	var xys plotter.XYs
	labels := make([]string, len(voicings))
	for i, v := range voicings {
		labels[i] = chord.VoicingKey(v.Root, v.Chord)
		for _, f := range v.Frequencies {
			xys = append(xys, plotter.XY{X: float64(i), Y: f})
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	if len(ticks) > 0 {
		ts := make([]plot.Tick, len(ticks))
		for i, tk := range ticks {
			ts[i] = plot.Tick{Value: tk.Value, Label: tk.Label}
		}
		p.Y.Tick.Marker = plot.ConstantTicks(ts)
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, errors.Wrap(err, "could not build scatter")
	}
	p.Add(plotter.NewGrid(), scatter)
	p.NominalX(labels...)
	return p, nil
}

// Save writes the chart as a 10x6 inch image; format follows the file
// extension.
func Save(p *plot.Plot, path string) error {
	return errors.Wrapf(p.Save(10*vg.Inch, 6*vg.Inch, path), "could not save chart %v", path)
}
