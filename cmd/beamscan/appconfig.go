package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Scenario parameters, overridable from config.json in the input directory.
var (
	Wavelength = 0.25
	RangeDb    = 30.0

	NSensorX = 9
	NSensorY = 9
	Aperture = 1.0 // edge length of the planar grid

	NbTheta = 60
	NbPhi   = 120

	ThetaRefDeg = 45.0
	PhiRefDeg   = -45.0

	ScanMinDeg = -45.0
	ScanMaxDeg = 45.0
	ScanCount  = 5
)

// ReadAppConfig reads all the configuration for the app
func ReadAppConfig() {
	viper.AddConfigPath(indir)
	viper.SetConfigName("config")

	err := viper.ReadInConfig()
	if err != nil {
		log.Print("ReadInConfig ", err)
	}
	// Set all the default values
	{
		viper.SetDefault("Wavelength", Wavelength)
		viper.SetDefault("RangeDb", RangeDb)
		viper.SetDefault("NSensorX", NSensorX)
		viper.SetDefault("NSensorY", NSensorY)
		viper.SetDefault("Aperture", Aperture)
		viper.SetDefault("NbTheta", NbTheta)
		viper.SetDefault("NbPhi", NbPhi)
		viper.SetDefault("ThetaRefDeg", ThetaRefDeg)
		viper.SetDefault("PhiRefDeg", PhiRefDeg)
		viper.SetDefault("ScanMinDeg", ScanMinDeg)
		viper.SetDefault("ScanMaxDeg", ScanMaxDeg)
		viper.SetDefault("ScanCount", ScanCount)
	}

	// Load from the external configuration files
	Wavelength = viper.GetFloat64("Wavelength")
	RangeDb = viper.GetFloat64("RangeDb")
	NSensorX = viper.GetInt("NSensorX")
	NSensorY = viper.GetInt("NSensorY")
	Aperture = viper.GetFloat64("Aperture")
	NbTheta = viper.GetInt("NbTheta")
	NbPhi = viper.GetInt("NbPhi")
	ThetaRefDeg = viper.GetFloat64("ThetaRefDeg")
	PhiRefDeg = viper.GetFloat64("PhiRefDeg")
	ScanMinDeg = viper.GetFloat64("ScanMinDeg")
	ScanMaxDeg = viper.GetFloat64("ScanMaxDeg")
	ScanCount = viper.GetInt("ScanCount")

	log.Printf("scenario: lambda=%g rangeDb=%g sensors=%dx%d grid=%dx%d scan=%d over [%g,%g]deg",
		Wavelength, RangeDb, NSensorX, NSensorY, NbTheta, NbPhi,
		ScanCount, ScanMinDeg, ScanMaxDeg)
}
