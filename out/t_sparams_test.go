// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"math"
	"math/cmplx"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// writeRecord writes a two-column (time, value) solver record
func writeRecord(fnpath string, t, v []float64) {
	var buf bytes.Buffer
	io.Ff(&buf, "%% goems test record\n")
	for i := range t {
		io.Ff(&buf, "%23.15e %23.15e\n", t[i], v[i])
	}
	io.WriteFile(fnpath, &buf)
}

// synthRecords writes synthetic port records into Dir:
//  port 1 carries a purely incident Gaussian pulse (matched: i = u/Zref)
//  port 2 receives the same pulse delayed and halved into a matched load
func synthRecords(amp2, delay float64) (t []float64) {
	n := 240
	dt := 5e-12
	tc := 0.265e-9
	sigma := 5.3e-11
	f0 := 5.8e9
	t = make([]float64, n)
	u1 := make([]float64, n)
	i1 := make([]float64, n)
	u2 := make([]float64, n)
	i2 := make([]float64, n)
	gauss := func(x float64) float64 {
		arg := (x - tc) / sigma
		return math.Exp(-arg*arg) * math.Cos(2.0*pi*f0*x)
	}
	for j := 0; j < n; j++ {
		t[j] = float64(j) * dt
		u1[j] = gauss(t[j])
		i1[j] = u1[j] / 50.0
		u2[j] = amp2 * gauss(t[j]-delay)
		i2[j] = -u2[j] / 50.0
	}
	writeRecord(filepath.Join(Dir, "port_ut1"), t, u1)
	writeRecord(filepath.Join(Dir, "port_it1"), t, i1)
	writeRecord(filepath.Join(Dir, "port_ut2"), t, u2)
	writeRecord(filepath.Join(Dir, "port_it2"), t, i2)
	return
}

func Test_sparams01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparams01. S11 and S21 from port records")

	// start and synthesize solver records
	Start("data/msl.sim")
	amp2, delay := 0.5, 0.2e-9
	synthRecords(amp2, delay)

	// load
	LoadPorts()
	chk.IntAssert(len(Ports), 2)
	p1 := Ports[1]
	chk.IntAssert(len(p1.Uf), len(Freqs))

	// the active port carries no reflection
	s11 := Sparam(1, 1)
	for i, s := range s11 {
		if cmplx.Abs(s) > 1e-12 {
			tst.Errorf("S11 must vanish for a matched pulse. |S11(%g)|=%g\n", Freqs[i], cmplx.Abs(s))
			return
		}
	}

	// transmission: delayed and halved pulse
	s21 := Sparam(2, 1)
	for i, s := range s21 {
		if math.Abs(cmplx.Abs(s)-amp2) > 1e-6 {
			tst.Errorf("|S21(%g)|=%g must equal %g\n", Freqs[i], cmplx.Abs(s), amp2)
			return
		}
	}

	// decibel conversion
	db := DB(s21)
	io.Pforan("|S21| [dB] at f0 = %g\n", db[len(db)/2])
	for _, v := range db {
		chk.Scalar(tst, "S21 [dB]", 1e-4, v, 20.0*math.Log10(amp2))
	}
}

func Test_sparams02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparams02. passive excitation reference must be rejected")

	Start("data/msl.sim")
	synthRecords(0.5, 0.2e-9)
	LoadPorts()

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("Sparam with a passive excitation port must panic\n")
		}
	}()
	Sparam(1, 2)
}

func Test_sparams03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparams03. vanishing incident wave must be rejected")

	Start("data/msl.sim")
	t := synthRecords(0.5, 0.2e-9)

	// zero excitation => no incident wave
	zero := make([]float64, len(t))
	writeRecord(filepath.Join(Dir, "port_ut1"), t, zero)
	writeRecord(filepath.Join(Dir, "port_it1"), t, zero)
	LoadPorts()

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("Sparam with vanishing incident wave must panic\n")
		}
	}()
	Sparam(1, 1)
}
