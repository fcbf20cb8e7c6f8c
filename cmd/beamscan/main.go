// beamscan computes the far-field directivity pattern of a planar phased
// array, renders a static steered beam and pre-computes an az/el beam sweep
// for playback. Outputs: beam.html (pattern + geometry views), cut.png
// (principal-plane dB cut), beampattern.m and beamscan.json (ordered frames).
package main

import (
	"flag"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/vlib"

	"github.com/wiless/phasedarray"
	"github.com/wiless/phasedarray/array"
	"github.com/wiless/phasedarray/geom"
	"github.com/wiless/phasedarray/render"
)

var indir string
var outdir string

func init() {
	flag.StringVar(&indir, "in", ".", "input directory with config.json")
	flag.StringVar(&outdir, "out", ".", "output directory for artifacts")
}

func main() {
	flag.Parse()
	ReadAppConfig()

	if err := os.MkdirAll(outdir, os.ModeDir|os.ModePerm); err != nil {
		log.Fatal("Error Creating Directory ", outdir, err)
	}

	positions := phasedarray.UniformPlanarArray(NSensorX, NSensorY, Aperture, Aperture)
	arr := array.New()
	if err := arr.CreateGeom(positions); err != nil {
		log.Fatal("CreateGeom ", err)
	}
	mesh := geom.UVSphere(NbTheta, NbPhi, 1)
	arr.SetDirectionGrid(mesh.Verts)
	log.Infof("array: %d sensors, %d direction samples, %d faces",
		arr.NSensor(), len(mesh.Verts), len(mesh.Faces))

	thetaRef := geom.Radian(ThetaRefDeg)
	phiRef := geom.Radian(PhiRefDeg)

	staticBeam(arr, mesh, thetaRef, phiRef)
	cutPlane(positions, thetaRef, phiRef)
	sweep(arr)
}

// staticBeam renders one steered beam: HTML views plus the Matlab export.
func staticBeam(arr *array.PhasedArray, mesh *geom.SphereMesh, thetaRef, phiRef float64) {
	bp, err := arr.DirectivityPatternTx(Wavelength, thetaRef, phiRef)
	if err != nil {
		log.Fatal("DirectivityPatternTx ", err)
	}
	bp01, err := phasedarray.ScaleTo01(phasedarray.PatternDb(bp, arr.NSensor()), -RangeDb, 0, true)
	if err != nil {
		log.Fatal("ScaleTo01 ", err)
	}

	geomChart, err := render.GeometryChart(arr.Positions(), arr.Src())
	if err != nil {
		log.Fatal("GeometryChart ", err)
	}
	beamChart, err := render.BeamChart(mesh, bp01, RangeDb)
	if err != nil {
		log.Fatal("BeamChart ", err)
	}
	fhtml, err := os.Create(filepath.Join(outdir, "beam.html"))
	if err != nil {
		log.Fatal("Create beam.html ", err)
	}
	defer fhtml.Close()
	if err := render.Page(fhtml, geomChart, beamChart); err != nil {
		log.Fatal("Render page ", err)
	}

	if err := render.ExportMatlab(filepath.Join(outdir, "beampattern.m"),
		mesh, bp01, arr.Positions(), arr.Src()); err != nil {
		log.Fatal("ExportMatlab ", err)
	}
	log.Info("wrote beam.html, beampattern.m")
}

// cutPlane evaluates the same geometry on a great-circle grid through the
// steering plane and saves the dB cut.
func cutPlane(positions [][]float64, thetaRef, phiRef float64) {
	dirs, angles := geom.GreatCircle(720, phiRef)
	cut := array.New()
	if err := cut.CreateGeom(positions); err != nil {
		log.Fatal("CreateGeom ", err)
	}
	cut.SetDirectionGrid(dirs)
	bp, err := cut.DirectivityPatternTx(Wavelength, thetaRef, phiRef)
	if err != nil {
		log.Fatal("DirectivityPatternTx ", err)
	}
	db := phasedarray.PatternDb(bp, cut.NSensor())
	if err := render.CutPlot(filepath.Join(outdir, "cut.png"), angles, db, RangeDb); err != nil {
		log.Fatal("CutPlot ", err)
	}
	log.Info("wrote cut.png")
}

// sweep pre-computes the az/el scan and dumps the ordered frames for a
// player to index without recomputing.
func sweep(arr *array.PhasedArray) {
	scan := phasedarray.NewScanSystem()
	scan.Wavelength = Wavelength
	scan.RangeDb = RangeDb

	sr := phasedarray.SweepRange{
		MinRad: geom.Radian(ScanMinDeg),
		MaxRad: geom.Radian(ScanMaxDeg),
		Count:  ScanCount,
	}
	frames, err := scan.RunScan(arr, sr.Points(), sr.Points())
	if err != nil {
		log.Fatal("RunScan ", err)
	}
	vlib.SaveStructure(frames, filepath.Join(outdir, "beamscan.json"), true)
	log.Infof("wrote beamscan.json (%d frames)", len(frames))
}
