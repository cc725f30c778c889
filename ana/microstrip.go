// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// constants
const c0 = 299792458.0 // speed of light in vacuum [m/s]

// Microstrip implements closed-form microstrip line formulas
// (Hammerstad-Jensen)
//
//             w
//           ◄────►
//           ██████                  metal strip
//      ─────────────────────  ▲
//          εr                 │ h   substrate
//      ─────────────────────  ▼
//      █████████████████████        ground plane
type Microstrip struct {

	// input
	w  float64 // strip width [m]
	h  float64 // substrate height [m]
	εr float64 // substrate relative permittivity
}

// Init initialises this structure
//  Note: panics on unknown parameter names
func (o *Microstrip) Init(prms dbf.Params) {

	// default values
	o.w = 0.6e-3
	o.h = 0.254e-3
	o.εr = 3.66

	// parameters
	for _, p := range prms {
		switch p.N {
		case "w":
			o.w = p.V
		case "h":
			o.h = p.V
		case "epsr":
			o.εr = p.V
		default:
			chk.Panic("unknown microstrip parameter %q", p.N)
		}
	}
}

// EpsEff computes the effective relative permittivity of the quasi-TEM mode
func (o *Microstrip) EpsEff() float64 {
	u := o.w / o.h
	return (o.εr+1.0)/2.0 + (o.εr-1.0)/2.0/math.Sqrt(1.0+12.0/u)
}

// Z0 computes the characteristic impedance [Ohm]
func (o *Microstrip) Z0() float64 {
	u := o.w / o.h
	εeff := o.EpsEff()
	if u < 1.0 {
		return 60.0 / math.Sqrt(εeff) * math.Log(8.0/u+u/4.0)
	}
	return 120.0 * math.Pi / (math.Sqrt(εeff) * (u + 1.393 + 0.667*math.Log(u+1.444)))
}

// NotchFreq computes the resonance frequency [Hz] of an open quarter-wave
// stub of length lstub [m]
func (o *Microstrip) NotchFreq(lstub float64) float64 {
	return c0 / (4.0 * lstub * math.Sqrt(o.EpsEff()))
}
