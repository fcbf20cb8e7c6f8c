package phasedarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wiless/vlib"

	"github.com/wiless/phasedarray"
	"github.com/wiless/phasedarray/array"
	"github.com/wiless/phasedarray/geom"
)

func TestScaleTo01(t *testing.T) {
	t.Run("maps linearly", func(t *testing.T) {
		v := vlib.VectorF{-30, -15, 0}
		out, err := phasedarray.ScaleTo01(v, -30, 0, true)
		require.NoError(t, err)
		require.Equal(t, vlib.VectorF{0, 0.5, 1}, out)
	})

	t.Run("clips when asked", func(t *testing.T) {
		v := vlib.VectorF{-60, -30, 0, 10}
		clipped, err := phasedarray.ScaleTo01(v, -30, 0, true)
		require.NoError(t, err)
		assert.Equal(t, 0.0, clipped[0])
		assert.Equal(t, 1.0, clipped[3])

		raw, err := phasedarray.ScaleTo01(v, -30, 0, false)
		require.NoError(t, err)
		assert.Less(t, raw[0], 0.0)
		assert.Greater(t, raw[3], 1.0)
	})

	t.Run("idempotent on clipped output", func(t *testing.T) {
		v := vlib.VectorF{-45, -20, -5, 2}
		once, err := phasedarray.ScaleTo01(v, -30, 0, true)
		require.NoError(t, err)
		twice, err := phasedarray.ScaleTo01(once, 0, 1, true)
		require.NoError(t, err)
		require.Equal(t, once, twice)
	})

	t.Run("rejects degenerate range", func(t *testing.T) {
		_, err := phasedarray.ScaleTo01(vlib.VectorF{1, 2}, 5, 5, true)
		require.ErrorIs(t, err, phasedarray.ErrDegenerateRange)
	})
}

func TestPatternDb(t *testing.T) {
	n := 10
	bp := vlib.VectorC{complex(float64(n), 0), complex(float64(n)/10, 0), complex(0, float64(n))}
	db := phasedarray.PatternDb(bp, n)
	require.Equal(t, 3, len(db))
	assert.InDelta(t, 0, db[0], 1e-9)
	assert.InDelta(t, -20, db[1], 1e-9)
	assert.InDelta(t, 0, db[2], 1e-9) // magnitude only, phase ignored
}

func TestSweepRangePoints(t *testing.T) {
	s := phasedarray.SweepRange{MinRad: -1, MaxRad: 1, Count: 5}
	pts := s.Points()
	require.Equal(t, 5, len(pts))
	assert.Equal(t, -1.0, pts[0])
	assert.Equal(t, 1.0, pts[4])
	assert.InDelta(t, 0, pts[2], 1e-12)

	one := phasedarray.SweepRange{MinRad: 0.5, MaxRad: 2, Count: 1}
	require.Equal(t, vlib.VectorF{0.5}, one.Points())
}

func TestUniformPlanarArray(t *testing.T) {
	pos := phasedarray.UniformPlanarArray(9, 9, 1, 1)
	require.Len(t, pos, 81)
	var sx, sy float64
	for _, p := range pos {
		require.Len(t, p, 3)
		assert.Equal(t, 0.0, p[2])
		sx += p[0]
		sy += p[1]
	}
	// centred at the origin
	assert.InDelta(t, 0, sx, 1e-9)
	assert.InDelta(t, 0, sy, 1e-9)
	assert.Equal(t, -0.5, pos[0][0])
	assert.Equal(t, 0.5, pos[80][0])
}

func TestScanConfigJSON(t *testing.T) {
	var c phasedarray.ScanConfig
	c.SetDefault()
	require.Equal(t, 0.25, c.WavelengthM)
	require.Equal(t, 5, c.AzScan.Count)

	err := c.Set(`{"WavelengthM": 0.5, "AzScan": {"Count": 7}}`)
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.WavelengthM)
	assert.Equal(t, 7, c.AzScan.Count)
	// untouched fields keep the defaults
	assert.Equal(t, 30.0, c.RangeDb)
	assert.Equal(t, 5, c.ElScan.Count)
}

func TestRunScanOrdering(t *testing.T) {
	positions := phasedarray.UniformPlanarArray(5, 5, 1, 1)
	mesh := geom.UVSphere(10, 20, 1)

	arr := array.New()
	require.NoError(t, arr.CreateGeom(positions))
	arr.SetDirectionGrid(mesh.Verts)

	w := phasedarray.NewScanSystem()
	w.Wavelength = 0.3

	sweep := phasedarray.SweepRange{MinRad: -math.Pi / 4, MaxRad: math.Pi / 4, Count: 5}
	elScan := sweep.Points()
	azScan := sweep.Points()

	frames, err := w.RunScan(arr, elScan, azScan)
	require.NoError(t, err)
	require.Len(t, frames, 25)

	// row-major: elevation outer, azimuth inner, matching direct calls
	// from an independent engine index-for-index
	ref := array.New()
	require.NoError(t, ref.CreateGeom(positions))
	ref.SetDirectionGrid(mesh.Verts)

	for i, el := range elScan {
		for j, az := range azScan {
			f := frames[i*len(azScan)+j]
			require.Equal(t, el, f.El)
			require.Equal(t, az, f.Az)

			theta, phi := geom.AzElToThetaPhi(az, el)
			bp, err := ref.DirectivityPatternTx(w.Wavelength, theta, phi)
			require.NoError(t, err)
			bp01, err := phasedarray.ScaleTo01(phasedarray.PatternDb(bp, ref.NSensor()), -w.RangeDb, 0, true)
			require.NoError(t, err)

			require.Equal(t, bp01, f.Bp01, "frame %d", i*len(azScan)+j)
			require.Equal(t, ref.Src(), f.Src, "frame %d", i*len(azScan)+j)
		}
	}
}
