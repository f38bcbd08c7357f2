// Copyright 2025 Madison Tuohy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sce) JSON scenario file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/madisontuohy/paleohydraulics/dem"
)

// Scenario holds the measured quantities describing one paleoflood site.
// Heights and depths are given as pairs of DEM elevations; the accessors
// below reduce them to the differences the models need.
type Scenario struct {

	// general
	Desc    string  `json:"desc"`    // description of scenario
	DirOut  string  `json:"dirout"`  // directory for output; e.g. /tmp/paleohyd
	Encoder string  `json:"encoder"` // encoder name; e.g. "gob" "json"
	Grav    float64 `json:"grav"`    // gravity acceleration [m/s²]

	// dune field
	DuneLengths []float64 `json:"dunelengths"` // surveyed crest spacings [m]
	CrestElev   float64   `json:"crestelev"`   // dune crest elevation [m a.s.l.]
	TroughElev  float64   `json:"troughelev"`  // dune trough elevation [m a.s.l.]
	D50         float64   `json:"d50"`         // median grain size [m]
	Fr          float64   `json:"fr"`          // Froude number
	Profile     string    `json:"profile"`     // longitudinal profile file; when set, overrides dune lengths and elevations

	// scour mark and obstacle
	ScourLip  float64 `json:"scourlip"`  // elevation of undisturbed bed at scour lip [m a.s.l.]
	ScourBase float64 `json:"scourbase"` // elevation of scour base [m a.s.l.]
	ObsTop    float64 `json:"obstop"`    // obstacle top elevation [m a.s.l.]
	ObsBase   float64 `json:"obsbase"`   // obstacle base elevation [m a.s.l.]
	ObsWidth  float64 `json:"obswidth"`  // obstacle width [m]
	SigmaG    float64 `json:"sigmag"`    // sediment sorting coefficient (use ~1.5 if unknown)
	Nu        float64 `json:"nu"`        // kinematic viscosity [m²/s]

	// derived
	Key string // scenario name key derived from filename
}

// Default returns the scenario with the study-site measurements
func Default() *Scenario {
	return &Scenario{
		Desc:        "gravel dune field and boulder scour mark",
		DirOut:      "/tmp/paleohyd",
		Encoder:     "json",
		Grav:        9.81,
		DuneLengths: []float64{193, 166, 205},
		CrestElev:   245.365,
		TroughElev:  239.871,
		D50:         0.05,
		Fr:          0.6,
		ScourLip:    333.9,
		ScourBase:   331.5,
		ObsTop:      341.7,
		ObsBase:     333.5,
		ObsWidth:    16.2,
		SigmaG:      1.5,
		// TODO: confirm kinematic viscosity; 1.0e-3 is three orders of
		// magnitude above water at 10°C (1.3e-6 m²/s)
		Nu:  1.0e-3,
		Key: "default",
	}
}

// ReadScenario reads a scenario (.sce) file. Fields absent from the file
// keep the default study-site values.
func ReadScenario(scefilepath string) *Scenario {

	// start from defaults; the output directory is rederived from the
	// scenario name below
	o := Default()
	o.DirOut = ""

	// read file
	b := io.ReadFile(scefilepath)

	// decode
	err := json.Unmarshal(b, o)
	if err != nil {
		chk.Panic("ReadScenario: cannot unmarshal scenario file %q", scefilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(scefilepath)
	fn := filepath.Base(scefilepath)
	dir = os.ExpandEnv(dir)
	o.Key = io.FnKey(fn)

	// output directory
	if o.DirOut == "" {
		o.DirOut = "/tmp/paleohyd/" + o.Key
	}

	// encoder type
	if o.Encoder != "gob" && o.Encoder != "json" {
		o.Encoder = "json"
	}

	// reduce longitudinal profile, if given: the mean crest spacing is the
	// representative dune length and the mean crest-to-trough drop sets the
	// trough elevation of the mean dune form
	if o.Profile != "" {
		prof := dem.ReadProfile(filepath.Join(dir, o.Profile))
		o.DuneLengths = []float64{prof.MeanWavelength()}
		o.CrestElev = prof.MeanCrestElev()
		o.TroughElev = o.CrestElev - prof.MeanRelief()
	}
	return o
}

// DuneLength returns the representative dune length: the mean of the
// surveyed crest spacings
func (o Scenario) DuneLength() float64 {
	if len(o.DuneLengths) < 1 {
		chk.Panic("scenario %q has no dune length measurements", o.Key)
	}
	sum := 0.0
	for _, l := range o.DuneLengths {
		sum += l
	}
	return sum / float64(len(o.DuneLengths))
}

// DuneHeight returns the crest-trough relief
func (o Scenario) DuneHeight() float64 {
	return dem.Relief(o.CrestElev, o.TroughElev)
}

// ScourDepth returns the depth of the scour mark below the undisturbed bed
func (o Scenario) ScourDepth() float64 {
	return dem.Relief(o.ScourLip, o.ScourBase)
}

// ObstacleHeight returns the height of the obstacle above its base
func (o Scenario) ObstacleHeight() float64 {
	return dem.Relief(o.ObsTop, o.ObsBase)
}
