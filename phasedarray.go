// Package phasedarray computes far-field beam patterns of planar phased
// arrays and sweeps them over steering commands. The numeric engine lives in
// the array subpackage; this package carries the scan sequencer, the display
// range normalizer and the scenario configuration types.
package phasedarray

import (
	"bytes"
	"encoding/json"
	"math"

	ms "github.com/mitchellh/mapstructure"
	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/floats"
)

// Frame is the result of one steering command in a scan: the dB pattern
// normalized to [0, 1] aligned with the direction grid, and the complex
// excitation of every sensor toward the commanded direction.
type Frame struct {
	Az, El           float64 // steering command, radian
	ThetaRef, PhiRef float64 // same command in spherical angles
	Bp01             vlib.VectorF
	Src              vlib.VectorC
}

// SweepRange is an ordered 1D grid of steering angles in radian.
type SweepRange struct {
	MinRad float64
	MaxRad float64
	Count  int
}

// Points expands the range into Count equally spaced values, both ends
// included.
func (s SweepRange) Points() vlib.VectorF {
	if s.Count <= 0 {
		return vlib.NewVectorF(0)
	}
	pts := vlib.NewVectorF(s.Count)
	if s.Count == 1 {
		pts[0] = s.MinRad
		return pts
	}
	floats.Span(pts, s.MinRad, s.MaxRad)
	return pts
}

// ScanConfig describes a full beam-scan scenario.
type ScanConfig struct {
	WavelengthM float64
	RangeDb     float64
	AzScan      SweepRange
	ElScan      SweepRange
}

// SetDefault loads the default scan scenario: quarter-unit wavelength,
// 30 dB display range, 5x5 sweep over +/- pi/4.
func (c *ScanConfig) SetDefault() {
	c.WavelengthM = 0.25
	c.RangeDb = 30.0
	c.AzScan = SweepRange{MinRad: -math.Pi / 4, MaxRad: math.Pi / 4, Count: 5}
	c.ElScan = c.AzScan
}

// Set overrides the configuration from a JSON string.
func (c *ScanConfig) Set(str string) error {
	return c.UnmarshalJSON([]byte(str))
}

// UnmarshalJSON decodes the scenario through a generic map so partial
// documents keep the defaults for everything they do not mention.
func (c *ScanConfig) UnmarshalJSON(jsondata []byte) error {
	dec := json.NewDecoder(bytes.NewBuffer(jsondata))
	customobject := make(map[string]interface{})
	if err := dec.Decode(&customobject); err != nil {
		return err
	}
	return ms.Decode(customobject, c)
}
