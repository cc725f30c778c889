// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"math/cmplx"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/hdf5"
)

// FieldDump holds a file-backed field distribution record: per-cell field
// samples over a planar mesh and a time axis
type FieldDump struct {
	X, Y, Z []float64       // mesh lines [m]
	T       []float64       // snapshot times [s]
	F       [][][][]float64 // [ntimes][nx][ny][3] field vectors over the dump plane
}

// LoadDump reads the HDF5 field-dump file written by the solver for the dump
// request named name
func LoadDump(name string) *FieldDump {

	// open file
	fnpath := filepath.Join(Dir, name+".h5")
	fil, err := hdf5.OpenFile(fnpath, hdf5.F_ACC_RDONLY)
	if err != nil {
		chk.Panic("cannot open field dump %q:\n%v", fnpath, err)
	}
	defer fil.Close()

	// mesh lines
	o := new(FieldDump)
	o.X = readH5vector(fil, "/mesh/x")
	o.Y = readH5vector(fil, "/mesh/y")
	o.Z = readH5vector(fil, "/mesh/z")

	// time-domain snapshots
	for i := 0; ; i++ {
		dset, err := fil.OpenDataset(io.Sf("/field/td/%d", i))
		if err != nil {
			break
		}
		dims, _, err := dset.Space().SimpleExtentDims()
		if err != nil || len(dims) != 3 {
			dset.Close()
			chk.Panic("field dump %q: snapshot %d has invalid dimensions", fnpath, i)
		}
		nx, ny, nc := int(dims[0]), int(dims[1]), int(dims[2])
		if nx != len(o.X) || ny != len(o.Y) || nc != 3 {
			dset.Close()
			chk.Panic("field dump %q: snapshot %d dims (%d,%d,%d) do not match mesh (%d,%d,3)", fnpath, i, nx, ny, nc, len(o.X), len(o.Y))
		}
		flat := make([]float64, nx*ny*nc)
		err = dset.Read(&flat)
		if err != nil {
			dset.Close()
			chk.Panic("cannot read snapshot %d of field dump %q:\n%v", i, fnpath, err)
		}
		var tval float64
		attr, err := dset.OpenAttribute("time")
		if err != nil {
			dset.Close()
			chk.Panic("snapshot %d of field dump %q has no time attribute", i, fnpath)
		}
		attr.Read(&tval, hdf5.T_NATIVE_DOUBLE)
		attr.Close()
		dset.Close()

		// reshape
		snap := make([][][]float64, nx)
		for ix := 0; ix < nx; ix++ {
			snap[ix] = make([][]float64, ny)
			for iy := 0; iy < ny; iy++ {
				k := (ix*ny + iy) * nc
				snap[ix][iy] = flat[k : k+nc]
			}
		}
		o.T = append(o.T, tval)
		o.F = append(o.F, snap)
	}
	if len(o.T) < 2 {
		chk.Panic("field dump %q has %d snapshots; at least 2 are required", fnpath, len(o.T))
	}
	return o
}

// AtFreq transforms the observation time-window [t0,t1] to the frequency
// domain at frequency f and returns the complex amplitude of field component
// comp (0, 1 or 2) at every planar cell
func (o *FieldDump) AtFreq(f, t0, t1 float64, comp int) [][]complex128 {

	// select snapshots within the window
	var sel []int
	for k, t := range o.T {
		if t >= t0 && t <= t1 {
			sel = append(sel, k)
		}
	}
	if len(sel) < 2 {
		chk.Panic("time window [%g,%g] selects %d snapshots; at least 2 are required", t0, t1, len(sel))
	}
	dt := o.T[sel[1]] - o.T[sel[0]]

	// per-cell transform
	nx, ny := len(o.X), len(o.Y)
	res := make([][]complex128, nx)
	for ix := 0; ix < nx; ix++ {
		res[ix] = make([]complex128, ny)
		for iy := 0; iy < ny; iy++ {
			var sum complex128
			for _, k := range sel {
				sum += complex(o.F[k][ix][iy][comp], 0) * cmplx.Exp(complex(0, -2.0*pi*f*o.T[k]))
			}
			res[ix][iy] = sum * complex(2.0*dt, 0)
		}
	}
	return res
}

// Amplitude maps a complex field distribution to sin(phase)·magnitude values
func Amplitude(w [][]complex128) [][]float64 {
	res := make([][]float64, len(w))
	for i, row := range w {
		res[i] = make([]float64, len(row))
		for j, v := range row {
			res[i][j] = math.Sin(cmplx.Phase(v)) * cmplx.Abs(v)
		}
	}
	return res
}

// readH5vector reads a 1D float64 dataset
func readH5vector(fil *hdf5.File, path string) []float64 {
	dset, err := fil.OpenDataset(path)
	if err != nil {
		chk.Panic("cannot open dataset %q:\n%v", path, err)
	}
	defer dset.Close()
	dims, _, err := dset.Space().SimpleExtentDims()
	if err != nil || len(dims) != 1 {
		chk.Panic("dataset %q is not a vector", path)
	}
	res := make([]float64, dims[0])
	err = dset.Read(&res)
	if err != nil {
		chk.Panic("cannot read dataset %q:\n%v", path, err)
	}
	return res
}
