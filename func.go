package phasedarray

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/vlib"

	"github.com/wiless/phasedarray/array"
	"github.com/wiless/phasedarray/geom"
)

// ErrDegenerateRange reports vmin == vmax in ScaleTo01.
var ErrDegenerateRange = errors.New("degenerate range: vmin == vmax")

// ScaleTo01 maps v linearly from [vmin, vmax] to [0, 1]. With clip the
// output is clamped elementwise to [0, 1]; without it values may fall
// outside. vmin must differ from vmax.
func ScaleTo01(v vlib.VectorF, vmin, vmax float64, clip bool) (vlib.VectorF, error) {
	if vmin == vmax {
		return nil, fmt.Errorf("phasedarray: scale [%v,%v]: %w", vmin, vmax, ErrDegenerateRange)
	}
	out := vlib.NewVectorF(len(v))
	for i, val := range v {
		x := (val - vmin) / (vmax - vmin)
		if clip {
			x = math.Min(math.Max(x, 0), 1)
		}
		out[i] = x
	}
	return out, nil
}

// PatternDb converts a complex array factor to dB relative to the coherent
// gain of nSensor elements: 20*log10(|bp|/N). A perfectly steered sample
// reads 0 dB.
func PatternDb(bp vlib.VectorC, nSensor int) vlib.VectorF {
	db := vlib.NewVectorF(bp.Size())
	for i, b := range bp {
		mag := cmplx.Abs(b) / float64(nSensor)
		db[i] = vlib.Db(mag * mag)
	}
	return db
}

// UniformPlanarArray returns nx*ny sensor positions on a centred rectangular
// grid in the z=0 plane spanning width x height length units. Row-major over
// x then y, matching the scenario geometry of the demos.
func UniformPlanarArray(nx, ny int, width, height float64) [][]float64 {
	axis := func(n int, span float64, i int) float64 {
		if n == 1 {
			return 0
		}
		return -span/2 + span*float64(i)/float64(n-1)
	}
	pos := make([][]float64, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			pos = append(pos, []float64{axis(nx, width, i), axis(ny, height, j), 0})
		}
	}
	return pos
}

// ScanSystem runs beam sweeps against a directivity engine.
type ScanSystem struct {
	Wavelength float64
	RangeDb    float64
}

// NewScanSystem returns a ScanSystem with the default scenario parameters.
func NewScanSystem() ScanSystem {
	var result ScanSystem
	result.Wavelength = 0.25
	result.RangeDb = 30.0
	return result
}

// FromConfig configures the system from a scan scenario.
func (w *ScanSystem) FromConfig(c ScanConfig) {
	w.Wavelength = c.WavelengthM
	w.RangeDb = c.RangeDb
}

// RunScan sweeps the steering command over every (elevation, azimuth)
// combination, elevation outer and azimuth inner, and collects one Frame per
// command in that order. The frame index doubles as the animation index of
// downstream playback, so the order is fixed. The steering-vector cache is
// built once for the whole sweep (single wavelength).
func (w *ScanSystem) RunScan(arr *array.PhasedArray, elScan, azScan vlib.VectorF) ([]Frame, error) {
	frames := make([]Frame, 0, len(elScan)*len(azScan))
	for i, el := range elScan {
		log.Infof("pre-compute beams: %d/%d", i, len(elScan))
		for _, az := range azScan {
			theta, phi := geom.AzElToThetaPhi(az, el)
			bp, err := arr.DirectivityPatternTx(w.Wavelength, theta, phi)
			if err != nil {
				return nil, err
			}
			bp01, err := ScaleTo01(PatternDb(bp, arr.NSensor()), -w.RangeDb, 0, true)
			if err != nil {
				return nil, err
			}
			frames = append(frames, Frame{
				Az: az, El: el,
				ThetaRef: theta, PhiRef: phi,
				Bp01: bp01,
				Src:  arr.Src(),
			})
		}
	}
	return frames, nil
}
