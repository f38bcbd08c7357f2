// Copyright 2025 Madison Tuohy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dem reduces digital elevation model samples to the geomorphic
// measurements needed by the paleoflow models
package dem

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/maseology/mmio"
)

// Relief computes the elevation difference top minus base
func Relief(top, base float64) float64 {
	if top < base {
		chk.Panic("dem: relief is negative. top=%g lies below base=%g", top, base)
	}
	return top - base
}

// Profile holds a longitudinal bed profile sampled from a DEM
type Profile struct {
	X []float64 // station (chainage) [m]
	Z []float64 // bed elevation [m a.s.l.]
}

// ReadProfile imports a two-column (station, elevation) text file.
// Blank lines and lines starting with '#' are skipped.
func ReadProfile(fp string) (o *Profile) {
	o = new(Profile)
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		chk.Panic("dem: cannot read profile %q: %v", fp, err)
	}
	for _, ln := range lns {
		s := strings.TrimSpace(ln)
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		f := strings.Fields(s)
		if len(f) != 2 {
			chk.Panic("dem: profile %q: cannot parse line %q", fp, ln)
		}
		o.X = append(o.X, io.Atof(f[0]))
		o.Z = append(o.Z, io.Atof(f[1]))
	}
	if len(o.X) < 3 {
		chk.Panic("dem: profile %q has too few points (%d)", fp, len(o.X))
	}
	return
}

// Crests returns the indices of interior local elevation maxima
func (o Profile) Crests() (idx []int) {
	for i := 1; i < len(o.Z)-1; i++ {
		if o.Z[i] > o.Z[i-1] && o.Z[i] > o.Z[i+1] {
			idx = append(idx, i)
		}
	}
	return
}

// Troughs returns the indices of interior local elevation minima
func (o Profile) Troughs() (idx []int) {
	for i := 1; i < len(o.Z)-1; i++ {
		if o.Z[i] < o.Z[i-1] && o.Z[i] < o.Z[i+1] {
			idx = append(idx, i)
		}
	}
	return
}

// Wavelengths returns the station spacings between successive crests;
// each spacing is one measured dune length
func (o Profile) Wavelengths() (ww []float64) {
	cc := o.Crests()
	if len(cc) < 2 {
		chk.Panic("dem: at least two crests are needed to measure dune lengths; found %d", len(cc))
	}
	ww = make([]float64, len(cc)-1)
	for i := 1; i < len(cc); i++ {
		ww[i-1] = o.X[cc[i]] - o.X[cc[i-1]]
	}
	return
}

// MeanWavelength returns the mean crest spacing (representative dune length)
func (o Profile) MeanWavelength() float64 {
	sum := 0.0
	ww := o.Wavelengths()
	for _, w := range ww {
		sum += w
	}
	return sum / float64(len(ww))
}

// MeanCrestElev returns the mean elevation of the crests
func (o Profile) MeanCrestElev() float64 {
	cc := o.Crests()
	if len(cc) == 0 {
		chk.Panic("dem: profile has no crests")
	}
	sum := 0.0
	for _, c := range cc {
		sum += o.Z[c]
	}
	return sum / float64(len(cc))
}

// MeanRelief returns the mean drop from each crest to the first trough
// downstream of it (representative dune height)
func (o Profile) MeanRelief() float64 {
	cc, tt := o.Crests(), o.Troughs()
	sum, n, j := 0.0, 0, 0
	for _, c := range cc {
		for j < len(tt) && tt[j] <= c {
			j++
		}
		if j == len(tt) {
			break
		}
		sum += o.Z[c] - o.Z[tt[j]]
		n++
	}
	if n == 0 {
		chk.Panic("dem: no crest has a trough downstream of it")
	}
	return sum / float64(n)
}
