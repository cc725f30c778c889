// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"bytes"
	"strings"
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

func Test_export01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export01. descriptor content")

	runner := NewRunner("data/msl.sim", true, chk.Verbose)
	err := runner.Export()
	if err != nil {
		tst.Errorf("Export failed:\n%v", err)
		return
	}

	b, err := io.ReadFile(runner.DescPath)
	if err != nil {
		tst.Errorf("cannot read descriptor:\n%v", err)
		return
	}
	s := string(b)

	// two ports and all declared boxes must be present
	chk.IntAssert(strings.Count(s, "<LumpedPort"), 2)
	chk.IntAssert(strings.Count(s, "<Material"), 1)
	chk.IntAssert(strings.Count(s, "<Metal"), 3)
	chk.IntAssert(strings.Count(s, "<DumpBox"), 1)
	chk.IntAssert(strings.Count(s, "<Box"), 7) // 4 geometry + 2 ports + 1 dump

	// boundary conditions on all six faces
	for _, attr := range []string{"xmin=", "xmax=", "ymin=", "ymax=", "zmin=", "zmax="} {
		if !strings.Contains(s, attr) {
			tst.Errorf("descriptor misses boundary condition %q\n", attr)
			return
		}
	}

	// grid must carry the generated mesh
	if !strings.Contains(s, "<XLines>") || !strings.Contains(s, "<ZLines>") {
		tst.Errorf("descriptor misses rectilinear grid lines\n")
	}
}

func Test_export02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export02. re-export is idempotent")

	ra := NewRunner("data/msl.sim", true, chk.Verbose)
	err := ra.Export()
	if err != nil {
		tst.Errorf("Export failed:\n%v", err)
		return
	}
	ba, err := io.ReadFile(ra.DescPath)
	if err != nil {
		tst.Errorf("cannot read descriptor:\n%v", err)
		return
	}

	rb := NewRunner("data/msl.sim", false, chk.Verbose)
	err = rb.Export()
	if err != nil {
		tst.Errorf("Export failed:\n%v", err)
		return
	}
	bb, err := io.ReadFile(rb.DescPath)
	if err != nil {
		tst.Errorf("cannot read descriptor:\n%v", err)
		return
	}

	if !bytes.Equal(ba, bb) {
		tst.Errorf("descriptors from identical inputs differ\n")
	}
}

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01. missing solver binary propagates")

	runner := NewRunner("data/msl.sim", true, chk.Verbose)
	runner.Sim.Data.Solver = "goems-no-such-solver"
	err := runner.Run()
	if err == nil {
		tst.Errorf("Run with a missing solver binary must fail\n")
	}
}
