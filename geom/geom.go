// Package geom holds the spherical coordinate conventions shared by the
// directivity engine and its direction grids. A direction is a unit
// vlib.Location3D; angles are in radian unless a function says otherwise.
package geom

import (
	"math"

	"github.com/wiless/vlib"
)

// Radian converts degree to radian
func Radian(degree float64) float64 {
	return degree * math.Pi / 180.0
}

// Degree converts radian to degree
func Degree(radian float64) float64 {
	return radian * 180.0 / math.Pi
}

// AzElToThetaPhi converts an (azimuth, elevation) pair to the polar and
// azimuthal spherical angles (theta, phi). Boresight (0, 0) maps to theta=0,
// i.e. the +Z axis.
func AzElToThetaPhi(az, el float64) (theta, phi float64) {
	theta = math.Acos(math.Cos(el) * math.Cos(az))
	phi = math.Atan2(math.Tan(el), math.Sin(az))
	return theta, phi
}

// AzElVecToThetaPhi is the elementwise form of AzElToThetaPhi.
// Both inputs must have the same size.
func AzElVecToThetaPhi(az, el vlib.VectorF) (theta, phi vlib.VectorF) {
	theta = vlib.NewVectorF(len(az))
	phi = vlib.NewVectorF(len(az))
	for i := 0; i < len(az); i++ {
		theta[i], phi[i] = AzElToThetaPhi(az[i], el[i])
	}
	return theta, phi
}

// ThetaPhiToDir converts spherical angles (theta, phi) to a unit vector.
// This is the single definition of the angle convention; the reference
// direction of the engine and every direction-grid generator go through it.
func ThetaPhiToDir(theta, phi float64) vlib.Location3D {
	var e vlib.Location3D
	e.X = math.Cos(phi) * math.Sin(theta)
	e.Y = math.Sin(phi) * math.Sin(theta)
	e.Z = math.Cos(theta)
	return e
}

// ThetaPhiToDirs converts N (theta, phi) pairs to N unit vectors.
// Both inputs must have the same size.
func ThetaPhiToDirs(theta, phi vlib.VectorF) []vlib.Location3D {
	e := make([]vlib.Location3D, len(theta))
	for i := 0; i < len(theta); i++ {
		e[i] = ThetaPhiToDir(theta[i], phi[i])
	}
	return e
}

// Dot is the inner product of two 3D vectors.
func Dot(a, b vlib.Location3D) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Norm is the Euclidean length of a 3D vector.
func Norm(a vlib.Location3D) float64 {
	return math.Sqrt(Dot(a, a))
}
