// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/hdf5"
)

// synthDump builds an in-memory field dump with a pure sinusoid of frequency
// f0 in component 2, with per-cell amplitude amp and phase pha
func synthDump(f0 float64, amp, pha [][]float64) *FieldDump {
	nx, ny := len(amp), len(amp[0])
	o := new(FieldDump)
	o.X = make([]float64, nx)
	o.Y = make([]float64, ny)
	for i := 0; i < nx; i++ {
		o.X[i] = float64(i) * 1e-3
	}
	for j := 0; j < ny; j++ {
		o.Y[j] = float64(j) * 1e-3
	}
	o.Z = []float64{0.127e-3}
	n := 64
	dt := 1.0 / (16.0 * f0)
	for k := 0; k < n; k++ {
		t := float64(k) * dt
		snap := make([][][]float64, nx)
		for i := 0; i < nx; i++ {
			snap[i] = make([][]float64, ny)
			for j := 0; j < ny; j++ {
				snap[i][j] = []float64{0, 0, amp[i][j] * math.Sin(2.0*pi*f0*t+pha[i][j])}
			}
		}
		o.T = append(o.T, t)
		o.F = append(o.F, snap)
	}
	return o
}

// writeVector writes one 1D float64 dataset
func writeVector(grp *hdf5.Group, name string, v []float64) {
	space, err := hdf5.CreateSimpleDataspace([]uint{uint(len(v))}, nil)
	if err != nil {
		chk.Panic("cannot create dataspace for %q:\n%v", name, err)
	}
	defer space.Close()
	dset, err := grp.CreateDataset(name, hdf5.T_NATIVE_DOUBLE, space)
	if err != nil {
		chk.Panic("cannot create dataset %q:\n%v", name, err)
	}
	defer dset.Close()
	err = dset.Write(&v)
	if err != nil {
		chk.Panic("cannot write dataset %q:\n%v", name, err)
	}
}

// writeDump writes a field dump to an .h5 file with the layout produced by
// the solver: /mesh/{x,y,z} vectors and /field/td/<i> snapshots carrying a
// scalar "time" attribute
func writeDump(fnpath string, dump *FieldDump) {

	fil, err := hdf5.CreateFile(fnpath, hdf5.F_ACC_TRUNC)
	if err != nil {
		chk.Panic("cannot create dump file %q:\n%v", fnpath, err)
	}
	defer fil.Close()

	// mesh lines
	mesh, err := fil.CreateGroup("mesh")
	if err != nil {
		chk.Panic("cannot create mesh group:\n%v", err)
	}
	writeVector(mesh, "x", dump.X)
	writeVector(mesh, "y", dump.Y)
	writeVector(mesh, "z", dump.Z)
	mesh.Close()

	// snapshots
	field, err := fil.CreateGroup("field")
	if err != nil {
		chk.Panic("cannot create field group:\n%v", err)
	}
	defer field.Close()
	td, err := field.CreateGroup("td")
	if err != nil {
		chk.Panic("cannot create td group:\n%v", err)
	}
	defer td.Close()
	scalar, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		chk.Panic("cannot create scalar dataspace:\n%v", err)
	}
	defer scalar.Close()
	nx, ny := len(dump.X), len(dump.Y)
	for k := range dump.T {
		flat := make([]float64, nx*ny*3)
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				copy(flat[(i*ny+j)*3:], dump.F[k][i][j])
			}
		}
		space, err := hdf5.CreateSimpleDataspace([]uint{uint(nx), uint(ny), 3}, nil)
		if err != nil {
			chk.Panic("cannot create snapshot dataspace:\n%v", err)
		}
		dset, err := td.CreateDataset(io.Sf("%d", k), hdf5.T_NATIVE_DOUBLE, space)
		if err != nil {
			chk.Panic("cannot create snapshot %d:\n%v", k, err)
		}
		err = dset.Write(&flat)
		if err != nil {
			chk.Panic("cannot write snapshot %d:\n%v", k, err)
		}
		attr, err := dset.CreateAttribute("time", hdf5.T_NATIVE_DOUBLE, scalar)
		if err != nil {
			chk.Panic("cannot create time attribute:\n%v", err)
		}
		err = attr.Write(&dump.T[k], hdf5.T_NATIVE_DOUBLE)
		if err != nil {
			chk.Panic("cannot write time attribute:\n%v", err)
		}
		attr.Close()
		dset.Close()
		space.Close()
	}
}

func Test_field01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field01. time-window transform recovers amplitude and phase")

	f0 := 5.8e9
	amp := [][]float64{{1, 2}, {3, 4}, {0.5, 1.5}}
	pha := [][]float64{{pi, pi}, {pi, 0}, {pi, pi}}
	dump := synthDump(f0, amp, pha)

	// whole record as observation window
	w := dump.AtFreq(f0, 0, dump.T[len(dump.T)-1], 2)
	a := Amplitude(w)

	// for v(t) = A sin(2πf0 t + φ) the transform at f0 has magnitude T·A and
	// phase φ-π/2, hence sin(phase)·mag = ±T·A depending on φ
	T := 64.0 / (16.0 * f0)
	for i := 0; i < len(amp); i++ {
		for j := 0; j < len(amp[0]); j++ {
			expected := T * amp[i][j]
			if pha[i][j] == 0 {
				expected = -expected
			}
			chk.Scalar(tst, io.Sf("a[%d][%d]", i, j), 1e-15, a[i][j], expected)
		}
	}
}

func Test_field02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field02. empty observation window must be rejected")

	f0 := 5.8e9
	amp := [][]float64{{1}}
	pha := [][]float64{{0}}
	dump := synthDump(f0, amp, pha)

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("AtFreq with an empty window must panic\n")
		}
	}()
	dump.AtFreq(f0, 1, 2, 2)
}

func Test_field03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field03. dump file written and read back")

	f0 := 5.8e9
	amp := [][]float64{{1, 2}, {3, 4}}
	pha := [][]float64{{pi, 0}, {pi, pi}}
	ref := synthDump(f0, amp, pha)

	dir := "/tmp/goems/field03"
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		tst.Errorf("cannot create test directory:\n%v", err)
		return
	}
	writeDump(filepath.Join(dir, "Et.h5"), ref)

	Dir = dir
	dump := LoadDump("Et")

	// mesh and time axis survive the round trip exactly
	chk.Vector(tst, "x", 1e-17, dump.X, ref.X)
	chk.Vector(tst, "y", 1e-17, dump.Y, ref.Y)
	chk.Vector(tst, "z", 1e-17, dump.Z, ref.Z)
	chk.Vector(tst, "t", 1e-17, dump.T, ref.T)

	// per-cell samples
	for k := range ref.T {
		for i := 0; i < len(ref.X); i++ {
			for j := 0; j < len(ref.Y); j++ {
				for c := 0; c < 3; c++ {
					if dump.F[k][i][j][c] != ref.F[k][i][j][c] {
						tst.Errorf("F[%d][%d][%d][%d] changed in the round trip\n", k, i, j, c)
						return
					}
				}
			}
		}
	}

	// transform of the loaded dump matches the in-memory result
	w := dump.AtFreq(f0, 0, dump.T[len(dump.T)-1], 2)
	a := Amplitude(w)
	T := 64.0 / (16.0 * f0)
	for i := 0; i < len(amp); i++ {
		for j := 0; j < len(amp[0]); j++ {
			expected := T * amp[i][j]
			if pha[i][j] == 0 {
				expected = -expected
			}
			chk.Scalar(tst, io.Sf("a[%d][%d]", i, j), 1e-15, a[i][j], expected)
		}
	}
}
