// Package array implements the far-field directivity engine of a planar
// phased array: sensor geometry, the wavelength-keyed steering-vector cache
// and the array-factor computation for a commanded steering direction.
// Elements are treated as omnidirectional; only the narrowband propagation
// phase exp(-2*pi*i/lambda * p.d) varies across the aperture.
package array

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/mat"

	"github.com/wiless/phasedarray/geom"
)

var (
	// ErrShape reports a sensor position without exactly 3 coordinates.
	ErrShape = errors.New("sensor position must have 3 coordinates")
	// ErrNotReady reports a pattern request before geometry and direction grid are set.
	ErrNotReady = errors.New("geometry or direction grid not set")
	// ErrWavelength reports a non-positive wavelength.
	ErrWavelength = errors.New("wavelength must be positive")
)

// PhasedArray holds the sensor geometry, the shared direction grid and the
// steering-vector cache. The grid is supplied by the rendering side and only
// read here; the cache and geometry are owned by the engine.
type PhasedArray struct {
	positions []vlib.Location3D
	nSensor   int

	dirGrid []vlib.Location3D

	steerVecs   *mat.CDense // nSensor x len(dirGrid), phase response per (sensor, sample)
	steerLambda float64
	rebuilds    int

	src vlib.VectorC // excitation of the last pattern request
}

// New returns an empty engine; CreateGeom and SetDirectionGrid must be
// called before the first pattern request.
func New() *PhasedArray {
	return new(PhasedArray)
}

// CreateGeom sets the sensor element positions. Every position must have
// exactly 3 coordinates (x, y, z) in the same length unit as the wavelength.
// Calling it again replaces the previous geometry and invalidates the
// steering-vector cache.
func (p *PhasedArray) CreateGeom(pos [][]float64) error {
	if len(pos) == 0 {
		return fmt.Errorf("array: empty position list: %w", ErrShape)
	}
	locs := make([]vlib.Location3D, len(pos))
	for i, v := range pos {
		if len(v) != 3 {
			return fmt.Errorf("array: pos[%d] has %d coordinates: %w", i, len(v), ErrShape)
		}
		locs[i] = vlib.Location3D{X: v[0], Y: v[1], Z: v[2]}
	}
	p.positions = locs
	p.nSensor = len(locs)
	p.invalidate()
	return nil
}

// SetDirectionGrid hands the engine the ordered far-field sample directions.
// The slice is shared with the caller and never mutated here; its order is
// the alignment contract with the pattern output. Replacing the grid
// invalidates the steering-vector cache.
func (p *PhasedArray) SetDirectionGrid(dirs []vlib.Location3D) {
	p.dirGrid = dirs
	p.invalidate()
}

func (p *PhasedArray) invalidate() {
	p.steerVecs = nil
	p.steerLambda = 0
}

// NSensor returns the number of sensor elements.
func (p *PhasedArray) NSensor() int { return p.nSensor }

// Positions returns the sensor element positions.
func (p *PhasedArray) Positions() []vlib.Location3D { return p.positions }

// DirectionGrid returns the shared direction grid.
func (p *PhasedArray) DirectionGrid() []vlib.Location3D { return p.dirGrid }

// Src returns the excitation vector of the most recent pattern request: the
// phase response of each sensor toward the reference direction. It is
// aligned index-for-index with Positions and recomputed on every call to
// DirectivityPatternTx.
func (p *PhasedArray) Src() vlib.VectorC { return p.src }

// CacheRebuilds counts steering-vector cache rebuilds since creation.
func (p *PhasedArray) CacheRebuilds() int { return p.rebuilds }

// updateSteerVecs rebuilds the steering-vector cache when the wavelength key
// differs from the cached one. The key compare is exact; a caller feeding
// wavelengths that differ only by float noise pays with a rebuild, never
// with a stale cache.
func (p *PhasedArray) updateSteerVecs(wavelength float64) {
	if p.steerVecs != nil && p.steerLambda == wavelength {
		return
	}
	k := -2.0 * math.Pi / wavelength
	sv := mat.NewCDense(p.nSensor, len(p.dirGrid), nil)
	for n, pos := range p.positions {
		for m, d := range p.dirGrid {
			sv.Set(n, m, cmplx.Exp(complex(0, k*geom.Dot(pos, d))))
		}
	}
	p.steerVecs = sv
	p.steerLambda = wavelength
	p.rebuilds++
	log.Debugf("array: steering vectors rebuilt (%dx%d, lambda=%g, rebuild #%d)",
		p.nSensor, len(p.dirGrid), wavelength, p.rebuilds)
}

// DirectivityPatternTx computes the transmit far-field directivity pattern
// when the array beams toward (thetaRef, phiRef) radian at the given
// wavelength. The returned complex array factor is aligned index-for-index
// with the direction grid; its magnitude reaches NSensor at the steered
// direction. The excitation vector of the call is retained and available
// through Src.
func (p *PhasedArray) DirectivityPatternTx(wavelength, thetaRef, phiRef float64) (vlib.VectorC, error) {
	if p.nSensor == 0 || len(p.dirGrid) == 0 {
		return nil, fmt.Errorf("array: %w", ErrNotReady)
	}
	if wavelength <= 0 {
		return nil, fmt.Errorf("array: wavelength %v: %w", wavelength, ErrWavelength)
	}

	dirRef := geom.ThetaPhiToDir(thetaRef, phiRef)
	p.updateSteerVecs(wavelength)

	k := -2.0 * math.Pi / wavelength
	src := vlib.NewVectorC(p.nSensor)
	for n, pos := range p.positions {
		src[n] = cmplx.Exp(complex(0, k*geom.Dot(pos, dirRef)))
	}
	p.src = src

	bp := vlib.NewVectorC(len(p.dirGrid))
	for m := range p.dirGrid {
		var sum complex128
		for n := 0; n < p.nSensor; n++ {
			sum += cmplx.Conj(p.steerVecs.At(n, m)) * src[n]
		}
		bp[m] = sum
	}
	return bp, nil
}
