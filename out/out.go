// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements solver output handling for analyses and plotting
package out

import (
	"github.com/cpmech/goems/inp"
	"github.com/cpmech/gosl/io"
)

// Global variables
var (

	// data set by Start
	Sim   *inp.Simulation // simulation input data
	Dir   string          // run directory holding solver records
	Freqs []float64       // frequency sweep for post-processing

	// records loaded by LoadPorts
	Ports map[int]*PortRes // port number => response record

	// subplots
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Start starts handling of results given a simulation input file
func Start(simfnpath string) {

	// input data
	Sim = inp.ReadSim(simfnpath, false)
	Dir = Sim.DirOut
	Freqs = Sim.FreqSweep()

	// clear previous data
	Ports = make(map[int]*PortRes)
	Splots = make([]*SplotDat, 0)
	Csplot = nil
}

// End must be called at the end to catch errors (when panics occur)
func End() {
	if err := recover(); err != nil {
		io.PfRed("ERROR: %v\n", err)
	}
}
