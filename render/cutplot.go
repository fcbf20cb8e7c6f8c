package render

import (
	"fmt"

	"github.com/wiless/vlib"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/wiless/phasedarray/geom"
)

// CutPlot saves a PNG of a principal-plane pattern cut: dB versus signed
// polar angle (degree), floor clamped at -rangeDb. angles and db come from a
// great-circle direction grid evaluated by the engine.
func CutPlot(fname string, angles, db vlib.VectorF, rangeDb float64) error {
	if len(angles) != len(db) {
		return fmt.Errorf("render: %d angles vs %d dB samples", len(angles), len(db))
	}
	p := plot.New()
	p.Title.Text = "principal-plane cut"
	p.X.Label.Text = "polar angle (deg)"
	p.Y.Label.Text = "relative gain (dB)"
	p.Y.Min = -rangeDb
	p.Y.Max = 3

	pts := make(plotter.XYs, 0, len(angles))
	for i := 0; i < len(angles); i++ {
		y := db[i]
		if y < -rangeDb {
			y = -rangeDb
		}
		pts = append(pts, plotter.XY{X: geom.Degree(angles[i]), Y: y})
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("render: cut line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line, plotter.NewGrid())

	if err := p.Save(10*vg.Inch, 5*vg.Inch, fname); err != nil {
		return fmt.Errorf("render: save %s: %w", fname, err)
	}
	return nil
}
