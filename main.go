// Copyright 2025 Madison Tuohy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/madisontuohy/paleohydraulics/inp"
	"github.com/madisontuohy/paleohydraulics/mdl/dune"
	"github.com/madisontuohy/paleohydraulics/mdl/scour"
	"github.com/madisontuohy/paleohydraulics/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sce", false)
	verbose := io.ArgToBool(1, true)
	saveReport := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nPaleohydraulics -- flood flow velocity from dunes and scour marks\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"scenario file path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save report", "saveReport", saveReport,
		))
	}

	// scenario data
	sce := inp.Default()
	if fnamepath != "" {
		sce = inp.ReadScenario(fnamepath)
	}

	// dune model: water depth, mean velocity and steepness from dune geometry
	var dn dune.Model
	err := dn.Init([]*dbf.P{
		&dbf.P{N: "Fr", V: sce.Fr},
		&dbf.P{N: "g", V: sce.Grav},
	})
	if err != nil {
		chk.Panic("cannot initialise dune model: %v", err)
	}
	U, h, steep := dn.Calc(sce.DuneLength(), sce.DuneHeight(), sce.D50)

	// scour model: mean velocity from scour mark, using the dune-derived
	// water depth
	var sc scour.Model
	err = sc.Init(sc.GetPrms(true))
	if err != nil {
		chk.Panic("cannot initialise scour model: %v", err)
	}
	Um := sc.Calc(sce.ScourDepth(), h, sce.D50, sce.SigmaG, sce.Grav, sce.ObstacleHeight(), sce.ObsWidth, sce.Nu)

	// report
	rep := out.Report{Desc: sce.Desc, H2O: h, U: U, Steep: steep, Um: Um}
	rep.Print()
	if saveReport {
		rep.Save(sce.DirOut, sce.Key, sce.Encoder)
	}
}
