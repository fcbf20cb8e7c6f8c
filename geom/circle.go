package geom

import (
	"math"

	"github.com/wiless/vlib"
)

// GreatCircle samples nb unit directions along the great circle through the
// poles at azimuthal angle phi. It returns the directions and the signed
// polar angle of each sample in (-pi, pi]: positive angles lie on the phi
// half-plane, negative ones on the phi+pi half-plane. Useful as a 1D
// direction grid for principal-plane pattern cuts.
func GreatCircle(nb int, phi float64) ([]vlib.Location3D, vlib.VectorF) {
	dirs := make([]vlib.Location3D, nb)
	angles := vlib.NewVectorF(nb)
	for i := 0; i < nb; i++ {
		t := -math.Pi + 2.0*math.Pi*float64(i+1)/float64(nb)
		theta, p := math.Abs(t), phi
		if t < 0 {
			p = phi + math.Pi
		}
		dirs[i] = ThetaPhiToDir(theta, p)
		angles[i] = t
	}
	return dirs, angles
}
