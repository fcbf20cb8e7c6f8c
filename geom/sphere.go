package geom

import (
	"math"

	"github.com/wiless/vlib"
)

// SphereMesh is a tessellated sphere used as a direction grid. Verts is the
// ordered sample sequence the engine evaluates over; Faces triangulates the
// same vertex ordering for the rendering side. The order of Verts is the
// contract between the two and must not be reshuffled.
type SphereMesh struct {
	Rows, Cols int
	Radius     float64
	Verts      []vlib.Location3D
	Faces      [][3]int
}

// UVSphere tessellates a sphere into rows latitude bands of cols vertices,
// with each band rotated by half a step against the previous one. The
// duplicate vertices at the two poles are collapsed to a single vertex each,
// so the north pole (+Z, boresight for a planar array in the XY plane) is
// Verts[0] and the south pole is Verts[len-1].
func UVSphere(rows, cols int, radius float64) *SphereMesh {
	nfull := (rows + 1) * cols
	full := make([]vlib.Location3D, 0, nfull)
	for r := 0; r <= rows; r++ {
		polar := float64(r) * math.Pi / float64(rows)
		s := radius * math.Sin(polar)
		z := radius * math.Cos(polar)
		for c := 0; c < cols; c++ {
			// half-step twist per band
			th := float64(c)*2.0*math.Pi/float64(cols) + float64(r)*math.Pi/float64(cols)
			full = append(full, vlib.Location3D{X: s * math.Cos(th), Y: s * math.Sin(th), Z: z})
		}
	}
	// collapse the redundant pole vertices
	verts := full[cols-1 : nfull-(cols-1)]

	faces := make([][3]int, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		base := r * cols
		for i := 0; i < cols; i++ {
			faces = append(faces, [3]int{base + i, base + (i+1)%cols, base + i + cols})
		}
		for i := 0; i < cols; i++ {
			faces = append(faces, [3]int{base + i + cols, base + (i+1)%cols, base + (i+1)%cols + cols})
		}
	}
	// drop the zero-area triangles touching the removed pole duplicates
	faces = faces[cols : len(faces)-cols]

	vmin := cols - 1
	vmax := len(verts) - 1
	for f := range faces {
		for k := 0; k < 3; k++ {
			idx := faces[f][k]
			if idx < vmin {
				idx = vmin
			}
			idx -= vmin
			if idx > vmax {
				idx = vmax
			}
			faces[f][k] = idx
		}
	}

	return &SphereMesh{Rows: rows, Cols: cols, Radius: radius, Verts: verts, Faces: faces}
}
