// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// C0 is the speed of light in vacuum [m/s]
const C0 = 299792458.0

// boundary condition tags for the six exterior faces
var bctags = map[string]bool{
	"PEC":   true, // perfect electric conductor
	"PMC":   true, // perfect magnetic conductor
	"MUR":   true, // Mur's first-order absorbing boundary
	"PML_8": true, // 8-cell perfectly matched layer
}

// SolverData holds FDTD run parameters
type SolverData struct {
	F0          float64  `json:"f0"`          // excitation centre frequency [Hz]
	FC          float64  `json:"fc"`          // excitation half-bandwidth [Hz] (Gaussian pulse)
	EndCriteria float64  `json:"endcriteria"` // fractional energy decay terminating the run; e.g. 1e-4
	MaxSteps    int      `json:"maxsteps"`    // maximum number of timesteps
	BCs         []string `json:"bcs"`         // [6] boundary tags: xmin xmax ymin ymax zmin zmax
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.EndCriteria = 1e-4
	o.MaxSteps = 100000
	o.BCs = []string{"MUR", "MUR", "MUR", "MUR", "PEC", "MUR"}
}

// SetGaussExcite binds a Gaussian-derivative excitation spectrum
func (o *SolverData) SetGaussExcite(f0, fc float64) {
	if f0 < Ctol || fc < Ctol {
		chk.Panic("excitation frequencies must be positive. f0=%g, fc=%g are invalid", f0, fc)
	}
	o.F0 = f0
	o.FC = fc
}

// SetBoundaryCond binds one absorbing-boundary tag to each of the six exterior
// faces, in the order: xmin xmax ymin ymax zmin zmax
func (o *SolverData) SetBoundaryCond(bcs []string) {
	chk.IntAssert(len(bcs), 6)
	for _, tag := range bcs {
		if !bctags[tag] {
			chk.Panic("unknown boundary condition tag %q", tag)
		}
	}
	o.BCs = bcs
}

// PostProcess checks data after reading the json file
func (o *SolverData) PostProcess() {
	if o.F0 < Ctol || o.FC < Ctol {
		chk.Panic("excitation frequencies must be set. f0=%g, fc=%g are invalid", o.F0, o.FC)
	}
	chk.IntAssert(len(o.BCs), 6)
	for _, tag := range o.BCs {
		if !bctags[tag] {
			chk.Panic("unknown boundary condition tag %q", tag)
		}
	}
}
