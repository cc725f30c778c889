// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Args  *plt.A    // style arguments
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Title string       // title of subplot
	Targs *plt.A       // title arguments
	Xlbl  string       // x-axis label
	Ylbl  string       // y-axis label
	Lims  []float64    // fixed axis limits {xmin, xmax, ymin, ymax}; nil => automatic
	Data  []*PltEntity // data and styles to be plotted
}

// Splot activates a new subplot window
func Splot(splotTitle string) {
	s := &SplotDat{Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig configures labels and limits of the current subplot
func SplotConfig(xlbl, ylbl string, lims []float64) {
	if Csplot != nil {
		Csplot.Xlbl = xlbl
		Csplot.Ylbl = ylbl
		Csplot.Lims = lims
	}
}

// Plot adds a curve to the current subplot
func Plot(x, y []float64, alias string, args *plt.A) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	if Csplot == nil {
		Splot("")
	}
	Csplot.Data = append(Csplot.Data, &PltEntity{Alias: alias, X: x, Y: y, Args: args})
}

// PlotSmag adds the decibel magnitude of the scattering parameter S(rec,exc)
// versus frequency in megahertz to the current subplot, with the fixed
// [-50, 5] dB range
func PlotSmag(rec, exc int, args *plt.A) {
	s := DB(Sparam(rec, exc))
	x := make([]float64, len(Freqs))
	for i, f := range Freqs {
		x[i] = f / 1e6
	}
	if args == nil {
		args = new(plt.A)
	}
	if args.L == "" {
		args.L = io.Sf("$S_{%d%d}$", rec, exc)
	}
	Plot(x, s, io.Sf("S%d%d", rec, exc), args)
	SplotConfig("$f$ [MHz]", "$|S|$ [dB]", []float64{x[0], x[len(x)-1], -50, 5})
}

// ExtraPlt defines a callback function for extra plt commands
//  Note: i and j are indices as in Subplot
type ExtraPlt func(i, j, nplots int)

// Draw draws or saves figure with all subplots
//  dirout -- directory to save figure
//  fnkey  -- filename key; e.g. myplot => myplot.png. Use "" to skip saving
//  show   -- shows figure
//  extra  -- is called just after Subplot command and before any plotting
func Draw(dirout, fnkey string, show bool, extra ExtraPlt) {
	nplots := len(Splots)
	nr, nc := utl.BestSquare(nplots)
	var k int
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			plt.Subplot(nr, nc, k+1)
			if extra != nil {
				extra(i+1, j+1, nplots)
			}
			if Splots[k].Title != "" {
				plt.Title(Splots[k].Title, Splots[k].Targs)
			}
			for _, d := range Splots[k].Data {
				if d.Args == nil {
					d.Args = new(plt.A)
				}
				if d.Args.L == "" {
					d.Args.L = d.Alias
				}
				d.Args.NoClip = true
				plt.Plot(d.X, d.Y, d.Args)
			}
			plt.Gll(Splots[k].Xlbl, Splots[k].Ylbl, nil)
			if Splots[k].Lims != nil {
				plt.AxisLims(Splots[k].Lims)
			}
			k += 1
		}
	}
	if fnkey != "" {
		err := plt.Save(dirout, fnkey)
		if err != nil {
			chk.Panic("cannot save figure:\n%v", err)
		}
	}
	if show {
		err := plt.Show()
		if err != nil {
			chk.Panic("cannot show figure:\n%v", err)
		}
	}
}

// PlotFieldMap draws a filled-contour map of the field amplitude sin(phase)·mag
// at the excitation centre frequency over the dump plane, overlaid with the
// outlines of all metal-layer boxes. Coordinates are plotted in metres and the
// window is a square spanning 1.25 times the extent of material spanMat.
//  dump   -- field dump record (mesh in metres)
//  comp   -- field component (0, 1 or 2)
//  t0, t1 -- observation time-window [s]
func PlotFieldMap(dump *FieldDump, comp int, t0, t1 float64, spanMat string) {

	// transform observation window to frequency domain
	w := dump.AtFreq(Sim.Solver.F0, t0, t1, comp)
	a := Amplitude(w)

	// cell grids
	nx, ny := len(dump.X), len(dump.Y)
	xx := utl.Alloc(nx, ny)
	yy := utl.Alloc(nx, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			xx[i][j] = dump.X[i]
			yy[i][j] = dump.Y[j]
		}
	}
	plt.ContourF(xx, yy, a, &plt.A{NoLines: true, NoLabels: true})

	// metal outlines (rescaled to metres)
	u := Sim.Data.Unit
	for _, met := range Sim.Geo.Metals {
		for _, box := range met.Boxes {
			xs := []float64{box.Lo[0], box.Hi[0], box.Hi[0], box.Lo[0], box.Lo[0]}
			ys := []float64{box.Lo[1], box.Lo[1], box.Hi[1], box.Hi[1], box.Lo[1]}
			for k := 0; k < 5; k++ {
				xs[k] *= u
				ys[k] *= u
			}
			plt.Plot(xs, ys, &plt.A{C: "k", Lw: 2, NoClip: true})
		}
	}

	// square window from material extent
	lo, hi := Sim.Geo.GetMaterial(spanMat).BoundingBox()
	span := 0.0
	for _, v := range []float64{lo[0], hi[0], lo[1], hi[1]} {
		span = utl.Max(span, math.Abs(v))
	}
	span *= 1.25 * u
	plt.AxisLims([]float64{-span, span, -span, span})
	plt.Equal()
	plt.Gll("$x$ [m]", "$y$ [m]", nil)
}
