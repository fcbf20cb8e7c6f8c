package render

import (
	"io"

	"github.com/wiless/vlib"

	"github.com/wiless/phasedarray/geom"
)

// ExportMatlab writes a .m script with the radius-scaled pattern mesh, the
// triangulation and the sensor geometry, ready for trisurf inspection.
func ExportMatlab(fname string, mesh *geom.SphereMesh, bp01 vlib.VectorF, positions []vlib.Location3D, src vlib.VectorC) error {
	var matlab vlib.Matlab
	matlab.SetDefaults()
	matlab.SetFile(fname)
	matlab.Silent = true
	return exportMatlab(&matlab, mesh, bp01, positions, src)
}

// ExportMatlabTo is ExportMatlab writing to w instead of a file.
func ExportMatlabTo(w io.Writer, mesh *geom.SphereMesh, bp01 vlib.VectorF, positions []vlib.Location3D, src vlib.VectorC) error {
	var matlab vlib.Matlab
	matlab.SetDefaults()
	matlab.SetWriter(w)
	matlab.Silent = true
	return exportMatlab(&matlab, mesh, bp01, positions, src)
}

func exportMatlab(matlab *vlib.Matlab, mesh *geom.SphereMesh, bp01 vlib.VectorF, positions []vlib.Location3D, src vlib.VectorC) error {
	verts, err := PatternMesh(mesh, bp01)
	if err != nil {
		return err
	}

	px := vlib.NewVectorF(len(verts))
	py := vlib.NewVectorF(len(verts))
	pz := vlib.NewVectorF(len(verts))
	for i, v := range verts {
		px[i], py[i], pz[i] = v.X, v.Y, v.Z
	}
	sx := vlib.NewVectorF(len(positions))
	sy := vlib.NewVectorF(len(positions))
	sz := vlib.NewVectorF(len(positions))
	for i, p := range positions {
		sx[i], sy[i], sz[i] = p.X, p.Y, p.Z
	}
	// matlab indexes from 1
	faces := vlib.NewMatrixF(len(mesh.Faces), 3)
	for i, f := range mesh.Faces {
		for k := 0; k < 3; k++ {
			faces[i][k] = float64(f[k] + 1)
		}
	}

	matlab.Export("px", px)
	matlab.Export("py", py)
	matlab.Export("pz", pz)
	matlab.Export("bp01", bp01)
	matlab.Export("faces", faces)
	matlab.Export("sx", sx)
	matlab.Export("sy", sy)
	matlab.Export("sz", sz)
	matlab.Export("src", src)
	matlab.Export("nsensor", len(positions))
	matlab.Command("figure;")
	matlab.Command("trisurf(faces, px, py, pz, bp01);")
	matlab.Command("axis equal; shading interp;")
	matlab.Command("figure;")
	matlab.Command("scatter3(sx, sy, sz, 40, angle(src), 'filled');")
	matlab.Close()
	return nil
}
