// Copyright 2025 Madison Tuohy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/madisontuohy/paleohydraulics/inp"
	"github.com/madisontuohy/paleohydraulics/mdl/dune"
	"github.com/madisontuohy/paleohydraulics/mdl/scour"
	"github.com/madisontuohy/paleohydraulics/out"
)

func Test_pipeline01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pipeline01. dune depth feeds scour velocity")

	sce := inp.Default()

	var dn dune.Model
	err := dn.Init([]*dbf.P{
		&dbf.P{N: "Fr", V: sce.Fr},
		&dbf.P{N: "g", V: sce.Grav},
	})
	if err != nil {
		tst.Errorf("cannot initialise dune model: %v\n", err)
		return
	}
	U, h, steep := dn.Calc(sce.DuneLength(), sce.DuneHeight(), sce.D50)
	io.Pforan("h = %v, U = %v, steep = %v\n", h, U, steep)
	chk.Float64(tst, "h", 1e-13, h, 18.8)
	chk.Float64(tst, "U", 1e-12, U, 8.148256255175092)
	chk.Float64(tst, "steep", 1e-15, steep, 0.02922340425531915)

	var sc scour.Model
	err = sc.Init(nil)
	if err != nil {
		tst.Errorf("cannot initialise scour model: %v\n", err)
		return
	}
	Um := sc.Calc(sce.ScourDepth(), h, sce.D50, sce.SigmaG, sce.Grav, sce.ObstacleHeight(), sce.ObsWidth, sce.Nu)
	io.Pforan("Um = %v\n", Um)
	chk.Float64(tst, "Um", 1e-10, Um, 40.164486270567345)

	rep := out.Report{Desc: sce.Desc, H2O: h, U: U, Steep: steep, Um: Um}
	lines := rep.Lines()
	chk.String(tst, lines[0], "Estimated water depth (h) from dunes: 18.80 m")
	chk.String(tst, lines[1], "Mean flow velocity (U) from dunes: 8.15 m/s")
	chk.String(tst, lines[2], "Dune steepness (H/L): 0.029")
	chk.String(tst, lines[3], "The calculated mean flow velocity (U_m) from scour mark: 40.16 m/s")
}
