// Copyright 2025 Madison Tuohy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the printed and saved report of estimated paleoflow quantities
package out

import (
	"bytes"
	"encoding/gob"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Report holds the results of one estimation run
type Report struct {
	Desc  string  // scenario description
	H2O   float64 // water depth from dunes [m]
	U     float64 // mean flow velocity from dunes [m/s]
	Steep float64 // dune steepness H/L [-]
	Um    float64 // mean flow velocity from scour mark [m/s]
}

// Lines returns the formatted result sentences
func (o Report) Lines() []string {
	return []string{
		io.Sf("Estimated water depth (h) from dunes: %.2f m", o.H2O),
		io.Sf("Mean flow velocity (U) from dunes: %.2f m/s", o.U),
		io.Sf("Dune steepness (H/L): %.3f", o.Steep),
		io.Sf("The calculated mean flow velocity (U_m) from scour mark: %.2f m/s", o.Um),
	}
}

// Print writes the report to standard output
func (o Report) Print() {
	for _, l := range o.Lines() {
		io.Pf("%s\n", l)
	}
}

// Save encodes the report into dirout/fnkey.json or dirout/fnkey.gob
func (o Report) Save(dirout, fnkey, enctype string) {
	var b bytes.Buffer
	ext := ".json"
	switch enctype {
	case "gob":
		ext = ".gob"
		err := gob.NewEncoder(&b).Encode(o)
		if err != nil {
			chk.Panic("cannot gob-encode report: %v", err)
		}
	default:
		err := json.NewEncoder(&b).Encode(o)
		if err != nil {
			chk.Panic("cannot json-encode report: %v", err)
		}
	}
	io.WriteFileD(dirout, fnkey+ext, &b)
}

// Read decodes a report saved by Save
func Read(fnamepath, enctype string) (o Report) {
	b := io.ReadFile(fnamepath)
	var err error
	switch enctype {
	case "gob":
		err = gob.NewDecoder(bytes.NewReader(b)).Decode(&o)
	default:
		err = json.Unmarshal(b, &o)
	}
	if err != nil {
		chk.Panic("cannot decode report file %q: %v", fnamepath, err)
	}
	return
}
