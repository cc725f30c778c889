// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	pi     = math.Pi
	IncTol = 1e-20 // minimum incident wave magnitude for S-parameter ratios
)

// Sparam computes the scattering parameter S(rec,exc): the reflected voltage
// wave at port rec divided by the incident voltage wave at the excited port
// exc, over the frequency sweep. S(1,1) is the reflection coefficient and
// S(2,1) the transmission coefficient of a two-port.
//  Note: panics if the incident wave vanishes at any swept frequency
func Sparam(rec, exc int) []complex128 {
	pr, ok := Ports[rec]
	if !ok {
		chk.Panic("port %d records are not loaded; call LoadPorts first", rec)
	}
	pe, ok := Ports[exc]
	if !ok {
		chk.Panic("port %d records are not loaded; call LoadPorts first", exc)
	}
	if !Sim.Geo.GetPort(exc).Active {
		chk.Panic("port %d is passive and cannot be the excitation reference", exc)
	}
	s := make([]complex128, len(Freqs))
	for i, f := range Freqs {
		inc := pe.Inc[i]
		if cmplx.Abs(inc) < IncTol {
			chk.Panic("incident wave at port %d vanishes at f=%g Hz; S-parameter is undefined", exc, f)
		}
		s[i] = pr.Ref[i] / inc
	}
	return s
}

// DB converts a complex spectrum to decibel magnitude: 20·log10|s|
func DB(s []complex128) (res []float64) {
	res = make([]float64, len(s))
	for i, v := range s {
		res[i] = 20.0 * math.Log10(cmplx.Abs(v))
	}
	return
}
