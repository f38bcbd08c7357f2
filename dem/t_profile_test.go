// Copyright 2025 Madison Tuohy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_relief01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("relief01. elevation differences")

	chk.Float64(tst, "dune height", 1e-13, Relief(245.365, 239.871), 5.494)
	chk.Float64(tst, "scour depth", 1e-13, Relief(333.9, 331.5), 2.4)
	chk.Float64(tst, "obstacle height", 1e-13, Relief(341.7, 333.5), 8.2)

	func() {
		defer func() {
			if recover() == nil {
				tst.Errorf("Relief must panic when top lies below base")
			}
		}()
		Relief(239.871, 245.365)
	}()
}

func Test_profile01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("profile01. crest and trough picking")

	p := ReadProfile("data/longprofile.dat")
	io.Pforan("X = %v\n", p.X)
	io.Pforan("Z = %v\n", p.Z)
	chk.IntAssert(len(p.X), 7)
	chk.Ints(tst, "crests", p.Crests(), []int{1, 3, 5})
	chk.Ints(tst, "troughs", p.Troughs(), []int{2, 4})

	chk.Array(tst, "wavelengths", 1e-15, p.Wavelengths(), []float64{70, 65})
	chk.Float64(tst, "mean wavelength", 1e-15, p.MeanWavelength(), 67.5)
	chk.Float64(tst, "mean crest elev", 1e-12, p.MeanCrestElev(), 240.8)
	chk.Float64(tst, "mean relief", 1e-12, p.MeanRelief(), 1.35)
}

func Test_profile02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("profile02. degenerate profiles panic")

	// monotonic bed: no crests, so no dune lengths can be measured
	flat := Profile{
		X: []float64{0, 10, 20, 30},
		Z: []float64{240.0, 240.5, 241.0, 241.5},
	}
	func() {
		defer func() {
			if recover() == nil {
				tst.Errorf("Wavelengths must panic without two crests")
			}
		}()
		flat.Wavelengths()
	}()
	func() {
		defer func() {
			if recover() == nil {
				tst.Errorf("MeanRelief must panic without crests and troughs")
			}
		}()
		flat.MeanRelief()
	}()
}
