// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bufio"
	"math/cmplx"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// PortRes holds per-port response records read back after a solver run
type PortRes struct {

	// input
	Num  int     // port number
	Zref float64 // reference impedance [Ohm]

	// time domain records
	T  []float64 // sample times [s]
	Ut []float64 // port voltage
	It []float64 // port current

	// frequency domain, at Freqs
	Uf  []complex128 // voltage spectrum
	If  []complex128 // current spectrum
	Inc []complex128 // incident voltage wave
	Ref []complex128 // reflected voltage wave
}

// LoadPorts reads the records of all declared ports from the run directory
func LoadPorts() {
	for _, port := range Sim.Geo.Ports {
		LoadPort(port.Num)
	}
}

// LoadPort reads the voltage/current records of one port from the run
// directory, transforms them to the frequency sweep and decomposes the result
// into incident and reflected waves
func LoadPort(num int) *PortRes {

	// port data and records
	port := Sim.Geo.GetPort(num)
	o := &PortRes{Num: num, Zref: port.Zref}
	o.T, o.Ut = readRecord(filepath.Join(Dir, io.Sf("port_ut%d", num)))
	tI, it := readRecord(filepath.Join(Dir, io.Sf("port_it%d", num)))
	if len(tI) != len(o.T) {
		chk.Panic("port %d: voltage and current records have different lengths: %d != %d", num, len(o.T), len(tI))
	}
	o.It = it

	// frequency domain
	o.Uf = dft(o.T, o.Ut, Freqs)
	o.If = dft(o.T, o.It, Freqs)

	// incident/reflected decomposition
	o.Inc = make([]complex128, len(Freqs))
	o.Ref = make([]complex128, len(Freqs))
	z := complex(o.Zref, 0)
	for i := range Freqs {
		o.Inc[i] = 0.5 * (o.Uf[i] + z*o.If[i])
		o.Ref[i] = o.Uf[i] - o.Inc[i]
	}

	// results
	Ports[num] = o
	return o
}

// readRecord reads a two-column (time, value) ASCII record written by the
// solver; lines starting with '%' or '#' are comments
func readRecord(fnpath string) (t, v []float64) {
	fil, err := os.Open(fnpath)
	if err != nil {
		chk.Panic("cannot open solver record %q:\n%v", fnpath, err)
	}
	defer fil.Close()
	scn := bufio.NewScanner(fil)
	for scn.Scan() {
		line := strings.TrimSpace(scn.Text())
		if line == "" || line[0] == '%' || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			chk.Panic("record %q has malformed line %q", fnpath, line)
		}
		t = append(t, io.Atof(fields[0]))
		v = append(v, io.Atof(fields[1]))
	}
	if err := scn.Err(); err != nil {
		chk.Panic("cannot read solver record %q:\n%v", fnpath, err)
	}
	if len(t) < 2 {
		chk.Panic("record %q has %d samples; at least 2 are required", fnpath, len(t))
	}
	return
}

// dft transforms a uniformly sampled time record to the given frequencies
// (single-sided spectrum)
func dft(t, v []float64, freqs []float64) []complex128 {
	dt := t[1] - t[0]
	res := make([]complex128, len(freqs))
	for k, f := range freqs {
		var sum complex128
		for j, tj := range t {
			sum += complex(v[j], 0) * cmplx.Exp(complex(0, -2.0*pi*f*tj))
		}
		res[k] = sum * complex(2.0*dt, 0)
	}
	return res
}
