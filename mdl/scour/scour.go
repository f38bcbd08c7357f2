// Copyright 2025 Madison Tuohy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package scour implements the obstacle-scour regression model for paleoflow velocity
package scour

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model estimates mean flood-flow velocity from the dimensions of a scour
// mark carved around a flow obstacle, using the regression of Herget et
// al. (2013):
//   log10(Um) = a + b・log10( ds・dw・D50・σg・g / (LA・ν) )
// where
//   LA = ho^(2/3)・wo^(1/3)
// is the equivalent length of the obstacle frontal area.
type Model struct {
	A float64 // regression intercept
	B float64 // regression slope
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	o.A, o.B = 0.46, 0.326
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "b":
			o.B = p.V
		default:
			return chk.Err("scour: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // Herget et al. (2013) fit
			&dbf.P{N: "a", V: 0.46},
			&dbf.P{N: "b", V: 0.326},
		}
	}
	return dbf.Params{
		&dbf.P{N: "a", V: o.A},
		&dbf.P{N: "b", V: o.B},
	}
}

// Calc computes mean flow velocity Um from scour depth ds, water depth dw,
// median grain size D50, sediment sorting coefficient sigg, gravity
// acceleration g, obstacle height ho, obstacle width wo, and kinematic
// viscosity nu (ν ≈ 1.3e-6 m²/s for water at 10°C)
func (o Model) Calc(ds, dw, D50, sigg, g, ho, wo, nu float64) (Um float64) {
	LA := math.Pow(ho, 2.0/3.0) * math.Pow(wo, 1.0/3.0)
	den := LA * nu
	if den <= 0 {
		chk.Panic("scour: obstacle frontal length and viscosity must be positive. LA・ν=%g is invalid", den)
	}
	arg := ds * dw * D50 * sigg * g / den
	if arg <= 0 {
		chk.Panic("scour: argument of log10 must be positive. arg=%g is invalid", arg)
	}
	return math.Pow(10.0, o.A+o.B*math.Log10(arg))
}
