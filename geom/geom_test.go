package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wiless/vlib"

	"github.com/wiless/phasedarray/geom"
)

func TestAzElToThetaPhiBoresight(t *testing.T) {
	theta, _ := geom.AzElToThetaPhi(0, 0)
	require.InDelta(t, 0, theta, 1e-12)

	d := geom.ThetaPhiToDir(geom.AzElToThetaPhi(0, 0))
	require.InDelta(t, 0, d.X, 1e-12)
	require.InDelta(t, 0, d.Y, 1e-12)
	require.InDelta(t, 1, d.Z, 1e-12)
}

func TestAzElRoundTrip(t *testing.T) {
	// stay away from the degenerate poles el = +/- pi/2
	for az := -1.4; az <= 1.4; az += 0.2 {
		for el := -1.4; el <= 1.4; el += 0.2 {
			theta, phi := geom.AzElToThetaPhi(az, el)
			d := geom.ThetaPhiToDir(theta, phi)

			norm := geom.Norm(d)
			require.InDelta(t, 1, norm, 1e-12, "unit norm for az=%v el=%v", az, el)

			// invert: y carries sin(el), x carries sin(az)cos(el)
			elBack := math.Asin(d.Y)
			azBack := math.Asin(d.X / math.Cos(elBack))
			assert.InDelta(t, el, elBack, 1e-9, "el round trip az=%v el=%v", az, el)
			assert.InDelta(t, az, azBack, 1e-9, "az round trip az=%v el=%v", az, el)
		}
	}
}

func TestAzElVecToThetaPhi(t *testing.T) {
	az := vlib.VectorF{-0.5, 0, 0.3, 0.7}
	el := vlib.VectorF{0.2, -0.1, 0, 0.4}
	theta, phi := geom.AzElVecToThetaPhi(az, el)
	require.Equal(t, len(az), len(theta))
	require.Equal(t, len(az), len(phi))
	for i := range az {
		th, ph := geom.AzElToThetaPhi(az[i], el[i])
		assert.Equal(t, th, theta[i])
		assert.Equal(t, ph, phi[i])
	}
}

func TestThetaPhiToDirs(t *testing.T) {
	theta := vlib.VectorF{0, math.Pi / 4, math.Pi / 2, math.Pi}
	phi := vlib.VectorF{0, -math.Pi / 4, math.Pi / 3, 0}
	dirs := geom.ThetaPhiToDirs(theta, phi)
	require.Len(t, dirs, len(theta))
	for i, d := range dirs {
		assert.InDelta(t, 1, geom.Norm(d), 1e-12, "dir %d", i)
		assert.InDelta(t, math.Cos(theta[i]), d.Z, 1e-12, "dir %d", i)
	}
}

func TestDegreeRadian(t *testing.T) {
	assert.InDelta(t, math.Pi, geom.Radian(180), 1e-12)
	assert.InDelta(t, 180, geom.Degree(math.Pi), 1e-12)
}
