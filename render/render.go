// Package render turns engine output into offline artifacts: HTML 3D views
// of the beam pattern and the excited geometry, a PNG principal-plane cut
// and a Matlab script export. It consumes the pattern and the direction grid
// strictly index-for-index; the numeric work stays in array and phasedarray.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/cmplx"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/wiless/vlib"

	"github.com/wiless/phasedarray/geom"
)

// ErrRadius reports a pattern value outside [0, 1] handed to PatternMesh.
var ErrRadius = errors.New("render: radius not in [0, 1]")

// PatternMesh scales the sphere-mesh vertices by the normalized pattern so
// the mesh radius encodes magnitude. bp01 must be aligned with mesh.Verts
// and already clipped to [0, 1].
func PatternMesh(mesh *geom.SphereMesh, bp01 vlib.VectorF) ([]vlib.Location3D, error) {
	if len(bp01) != len(mesh.Verts) {
		return nil, fmt.Errorf("render: pattern has %d samples, mesh has %d vertices", len(bp01), len(mesh.Verts))
	}
	verts := make([]vlib.Location3D, len(mesh.Verts))
	for i, v := range mesh.Verts {
		r := bp01[i]
		if r < 0 || r > 1 {
			return nil, fmt.Errorf("render: sample %d = %v: %w", i, r, ErrRadius)
		}
		verts[i] = vlib.Location3D{X: v.X * r, Y: v.Y * r, Z: v.Z * r}
	}
	return verts, nil
}

// BeamChart builds a 3D scatter of the radius-scaled beam pattern, colored
// by normalized magnitude over rangeDb of dynamic range.
func BeamChart(mesh *geom.SphereMesh, bp01 vlib.VectorF, rangeDb float64) (*charts.Scatter3D, error) {
	verts, err := PatternMesh(mesh, bp01)
	if err != nil {
		return nil, err
	}
	data := make([]opts.Chart3DData, len(verts))
	for i, v := range verts {
		data[i] = opts.Chart3DData{Value: []interface{}{v.X, v.Y, v.Z, bp01[i]}}
	}
	sc := charts.NewScatter3D()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "beam pattern", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "BEAM PATTERN",
			Subtitle: fmt.Sprintf("%d samples, %g dB display range", len(bp01), rangeDb),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min:        0,
			Max:        1,
			Calculable: opts.Bool(true),
			InRange:    &opts.VisualMapInRange{Color: []string{"#0000a0", "#00c0c0", "#ffff00", "#ff0000"}},
		}),
	)
	sc.AddSeries("pattern", data)
	return sc, nil
}

// GeometryChart builds a 3D scatter of the sensor positions, colored by the
// excitation phase mapped cyclically to [0, 1] (arg/2pi + 0.5). src must be
// aligned with positions.
func GeometryChart(positions []vlib.Location3D, src vlib.VectorC) (*charts.Scatter3D, error) {
	if src.Size() != len(positions) {
		return nil, fmt.Errorf("render: excitation has %d entries, geometry has %d sensors", src.Size(), len(positions))
	}
	data := make([]opts.Chart3DData, len(positions))
	for i, p := range positions {
		phase01 := cmplx.Phase(src[i])/(2*math.Pi) + 0.5
		data[i] = opts.Chart3DData{Value: []interface{}{p.X, p.Y, p.Z, phase01}}
	}
	sc := charts.NewScatter3D()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "transducer array", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "TRANSDUCER ARRAY",
			Subtitle: fmt.Sprintf("%d sensors, phase color 0..2pi", len(positions)),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min:        0,
			Max:        1,
			Calculable: opts.Bool(true),
			InRange:    &opts.VisualMapInRange{Color: []string{"#3b4cc0", "#ffffff", "#b40426", "#3b4cc0"}},
		}),
	)
	sc.AddSeries("sensors", data)
	return sc, nil
}

// Page writes the given charts as one HTML page, geometry and pattern side
// by side like the two linked views of the reference tool.
func Page(w io.Writer, cs ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(cs...)
	return page.Render(w)
}
