// Copyright 2025 Madison Tuohy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dune implements the gravel-dune geometry model for paleoflow velocity
package dune

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model estimates mean flood-flow velocity from gravel dune dimensions.
// Water depth is scaled from dune length:
//   h = L / 10
// and the mean velocity follows from the Froude relation:
//   U = Fr・√(g・h)
type Model struct {
	Fr   float64 // Froude number (typical range: 0.4-0.75 for gravel dunes)
	Grav float64 // gravity acceleration (positive constant)
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	o.Fr, o.Grav = 0.6, 9.81
	for _, p := range prms {
		switch p.N {
		case "Fr":
			o.Fr = p.V
		case "g":
			o.Grav = p.V
		default:
			return chk.Err("dune: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Fr", V: 0.6}, // [-]
			&dbf.P{N: "g", V: 9.81}, // [m/s²]
		}
	}
	return dbf.Params{
		&dbf.P{N: "Fr", V: o.Fr},
		&dbf.P{N: "g", V: o.Grav},
	}
}

// Calc computes mean flow velocity U, water depth h and dune steepness
// (H/L) from dune length L and dune height H, all in metres. D50 is the
// median grain size; it does not enter the depth scaling and is kept for
// signature symmetry with the scour model.
func (o Model) Calc(L, H, D50 float64) (U, h, steep float64) {
	if L <= 0 {
		chk.Panic("dune: length must be positive. L=%g is invalid", L)
	}
	h = L / 10.0 // empirical scaling for gravel dunes
	U = o.Fr * math.Sqrt(o.Grav*h)
	steep = H / L
	return
}
