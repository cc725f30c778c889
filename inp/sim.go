// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Data holds global data for simulations
type Data struct {
	Desc   string  `json:"desc"`   // description of simulation
	DirOut string  `json:"dirout"` // directory for output; e.g. /tmp/goems
	Solver string  `json:"solver"` // solver command; e.g. "openEMS"
	Viewer string  `json:"viewer"` // geometry viewer command; e.g. "AppCSXCAD"
	Unit   float64 `json:"unit"`   // drawing unit [m]; e.g. 0.001 for millimetres
}

// MeshData holds mesh generation controls
type MeshData struct {
	MaxRes   float64   `json:"maxres"`   // maximum gap between adjacent lines [mm]; 0 => from excitation wavelength
	MaxRatio float64   `json:"maxratio"` // maximum ratio between consecutive gaps
	BndLo    []float64 `json:"bndlo"`    // [3] outer simulation-box minimum corner [mm]
	BndHi    []float64 `json:"bndhi"`    // [3] outer simulation-box maximum corner [mm]
}

// SweepData holds the frequency sweep for post-processing
type SweepData struct {
	Fmin float64 `json:"fmin"` // first frequency [Hz]; 0 => f0-fc
	Fmax float64 `json:"fmax"` // last frequency [Hz]; 0 => f0+fc
	Npts int     `json:"npts"` // number of points
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data       `json:"data"`   // global data
	Geo    *Geometry  `json:"geo"`    // geometry document
	MeshD  MeshData   `json:"mesh"`   // mesh generation controls
	Solver SolverData `json:"solver"` // FDTD solver data
	Sweep  SweepData  `json:"sweep"`  // frequency sweep

	// derived
	Key    string `json:"-"` // simulation key; e.g. mysim01.sim => mysim01
	DirOut string `json:"-"` // directory to save results
	Msh    *Mesh  `json:"-"` // computation mesh; set by GenMesh
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, erasefiles bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Solver.SetDefault()
	o.Data.Unit = 0.001
	o.MeshD.MaxRatio = 1.4
	o.Sweep.Npts = 201

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/goems/" + o.Key
	}

	// solver commands
	if o.Data.Solver == "" {
		o.Data.Solver = "openEMS"
	}
	if o.Data.Viewer == "" {
		o.Data.Viewer = "AppCSXCAD"
	}

	// create directory and erase previous simulation results
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
	}
	if erasefiles {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// check input
	if o.Geo == nil {
		chk.Panic("ReadSim: simulation file %q has no geometry", simfilepath)
	}
	o.Geo.Init()
	o.Geo.ActivePort()
	o.Solver.PostProcess()

	// sweep defaults
	if o.Sweep.Fmin < Ctol {
		o.Sweep.Fmin = o.Solver.F0 - o.Solver.FC
	}
	if o.Sweep.Fmax < Ctol {
		o.Sweep.Fmax = o.Solver.F0 + o.Solver.FC
	}

	// results
	return &o
}

// GenMesh derives the computation mesh from geometry edges, appends the outer
// simulation-box planes and smooths the result
func (o *Simulation) GenMesh() *Mesh {

	// maximum resolution from the highest excited frequency
	maxRes := o.MeshD.MaxRes
	if maxRes < Ctol {
		maxRes = C0 / (o.Solver.F0 + o.Solver.FC) / o.Data.Unit / 20.0
	}

	// edges and boundaries
	msh := DetectEdges(o.Geo)
	chk.IntAssert(len(o.MeshD.BndLo), 3)
	chk.IntAssert(len(o.MeshD.BndHi), 3)
	for axis := 0; axis < 3; axis++ {
		msh.AddBounds(axis, o.MeshD.BndLo[axis], o.MeshD.BndHi[axis])
	}

	// smoothing
	msh.Smooth(maxRes, o.MeshD.MaxRatio)
	if err := msh.Check(); err != nil {
		chk.Panic("GenMesh: generated mesh is invalid:\n%v", err)
	}
	o.Msh = msh
	return msh
}

// FreqSweep returns the array of frequencies for post-processing
func (o *Simulation) FreqSweep() []float64 {
	return utl.LinSpace(o.Sweep.Fmin, o.Sweep.Fmax, o.Sweep.Npts)
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
