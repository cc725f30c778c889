// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/goems/fdtd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	preview := io.ArgToBool(3, false)

	// message
	if verbose {
		io.PfWhite("\nGoems -- Go driver for FDTD electromagnetic simulations\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"preview model before run", "preview", preview,
		))
	}

	// driver
	runner := fdtd.NewRunner(fnamepath, erasePrev, verbose)

	// export descriptor
	err := runner.Export()
	if err != nil {
		chk.Panic("Export failed:\n%v", err)
	}

	// preview geometry
	if preview {
		err = runner.Preview()
		if err != nil {
			chk.Panic("Preview failed:\n%v", err)
		}
		return
	}

	// run simulation
	err = runner.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
