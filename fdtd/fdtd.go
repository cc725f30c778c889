// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdtd drives the external field solver: it exports the solver-native
// descriptor, optionally renders a 3D preview of the geometry, and invokes the
// solver binary as a blocking subprocess over the exported directory
package fdtd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/cpmech/goems/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Runner holds all data to run one simulation through the external solver
type Runner struct {
	Sim      *inp.Simulation // simulation data
	Verbose  bool            // show messages
	DescPath string          // descriptor file path; set by Export
}

// NewRunner returns a new Runner structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func NewRunner(simfilepath string, erasePrev, verbose bool) (o *Runner) {
	o = new(Runner)
	o.Sim = inp.ReadSim(simfilepath, erasePrev)
	o.Verbose = verbose
	return
}

// Export serializes geometry, mesh and solver configuration to the
// solver-native descriptor file inside the output directory. The mesh is
// generated first if needed.
func (o *Runner) Export() (err error) {
	if o.Verbose {
		err = o.Sim.GetInfo(os.Stdout)
		if err != nil {
			return
		}
		io.Pf("\n")
	}
	if o.Sim.Msh == nil {
		o.Sim.GenMesh()
		if o.Verbose {
			m := o.Sim.Msh
			io.Pf("mesh: nx=%d ny=%d nz=%d ncells=%d\n", len(m.X), len(m.Y), len(m.Z), m.NumCells())
		}
	}
	o.DescPath = filepath.Join(o.Sim.DirOut, o.Sim.Key+".xml")
	buf := bytes.NewBuffer(Descriptor(o.Sim).Bytes())
	io.WriteFile(o.DescPath, buf)
	if o.Verbose {
		io.Pf("file <%s> written\n", o.DescPath)
	}
	return
}

// Preview invokes the external geometry viewer on the exported descriptor
func (o *Runner) Preview() (err error) {
	if o.DescPath == "" {
		err = o.Export()
		if err != nil {
			return
		}
	}
	cmd := exec.Command(o.Sim.Data.Viewer, o.DescPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err = cmd.Run()
	if err != nil {
		return chk.Err("preview failed (%s %s):\n%v", o.Sim.Data.Viewer, o.DescPath, err)
	}
	return
}

// Run invokes the external solver over the output directory and descriptor.
// The call blocks until the solver exits; failures propagate as errors.
func (o *Runner) Run() (err error) {
	if o.DescPath == "" {
		err = o.Export()
		if err != nil {
			return
		}
	}
	if o.Verbose {
		io.Pf("running %s in %s\n", o.Sim.Data.Solver, o.Sim.DirOut)
	}
	cputime := time.Now()
	cmd := exec.Command(o.Sim.Data.Solver, o.DescPath)
	cmd.Dir = o.Sim.DirOut
	if o.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	err = cmd.Run()
	if err != nil {
		return chk.Err("solver run failed (%s %s):\n%v", o.Sim.Data.Solver, o.DescPath, err)
	}
	if o.Verbose {
		io.Pflmag("cpu time = %v\n", time.Now().Sub(cputime))
	}
	return
}
