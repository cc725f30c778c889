// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	Ctol    = 1e-8 // tolerance to compare mesh line coordinates
	MaxItSm = 10000 // maximum number of line insertions during mesh smoothing
)

// Mesh holds three independent ordered sets of cutting-plane coordinates [mm],
// one per axis. Lines must remain strictly increasing and duplicate-free.
type Mesh struct {
	X []float64 `json:"x"` // x-axis lines
	Y []float64 `json:"y"` // y-axis lines
	Z []float64 `json:"z"` // z-axis lines
}

// DetectEdges scans all box primitives (materials, metals and port regions) and
// collects every distinct corner coordinate along each axis. This guarantees
// every material boundary lies exactly on a mesh plane.
func DetectEdges(geo *Geometry) *Mesh {
	var x, y, z []float64
	add := func(lo, hi []float64) {
		x = append(x, lo[0], hi[0])
		y = append(y, lo[1], hi[1])
		z = append(z, lo[2], hi[2])
	}
	for _, mat := range geo.Materials {
		for _, box := range mat.Boxes {
			add(box.Lo, box.Hi)
		}
	}
	for _, met := range geo.Metals {
		for _, box := range met.Boxes {
			add(box.Lo, box.Hi)
		}
	}
	for _, port := range geo.Ports {
		add(port.Lo, port.Hi)
	}
	var o Mesh
	o.X = sortUnique(x)
	o.Y = sortUnique(y)
	o.Z = sortUnique(z)
	return &o
}

// Lines returns the coordinates along axis (0, 1 or 2)
func (o *Mesh) Lines(axis int) []float64 {
	switch axis {
	case 0:
		return o.X
	case 1:
		return o.Y
	case 2:
		return o.Z
	}
	chk.Panic("axis must be 0, 1 or 2. axis=%d is invalid", axis)
	return nil
}

// setLines replaces the coordinates along axis
func (o *Mesh) setLines(axis int, l []float64) {
	switch axis {
	case 0:
		o.X = l
	case 1:
		o.Y = l
	case 2:
		o.Z = l
	}
}

// AddBounds appends the two outer simulation-box planes along one axis.
// All previously collected lines are strictly preserved.
func (o *Mesh) AddBounds(axis int, lo, hi float64) {
	l := o.Lines(axis)
	if len(l) < 1 {
		o.setLines(axis, []float64{lo, hi})
		return
	}
	if lo > l[0]-Ctol {
		chk.Panic("lower bound %g along axis %d must lie below first line %g", lo, axis, l[0])
	}
	if hi < l[len(l)-1]+Ctol {
		chk.Panic("upper bound %g along axis %d must lie above last line %g", hi, axis, l[len(l)-1])
	}
	n := make([]float64, 0, len(l)+2)
	n = append(n, lo)
	n = append(n, l...)
	n = append(n, hi)
	o.setLines(axis, n)
}

// Smooth inserts additional lines along all axes such that no gap between
// adjacent lines exceeds maxRes and the ratio between consecutive gaps never
// exceeds maxRatio. Existing lines are preserved.
func (o *Mesh) Smooth(maxRes, maxRatio float64) {
	if maxRes < Ctol {
		chk.Panic("maximum resolution must be positive. maxRes=%g is invalid", maxRes)
	}
	if maxRatio < 1.0 {
		chk.Panic("maximum growth ratio must be ≥ 1. maxRatio=%g is invalid", maxRatio)
	}
	for axis := 0; axis < 3; axis++ {
		o.setLines(axis, smoothLines(o.Lines(axis), maxRes, maxRatio))
	}
}

// Check returns an error unless all lines are strictly increasing and
// duplicate-free
func (o *Mesh) Check() (err error) {
	for axis := 0; axis < 3; axis++ {
		l := o.Lines(axis)
		if len(l) < 2 {
			return chk.Err("axis %d has %d lines; at least 2 are required", axis, len(l))
		}
		for i := 0; i < len(l)-1; i++ {
			if l[i+1]-l[i] < Ctol {
				return chk.Err("lines along axis %d are not strictly increasing: l[%d]=%g, l[%d]=%g", axis, i, l[i], i+1, l[i+1])
			}
		}
	}
	return
}

// NumCells returns the total number of cells
func (o *Mesh) NumCells() int {
	if len(o.X) < 2 || len(o.Y) < 2 || len(o.Z) < 2 {
		return 0
	}
	return (len(o.X) - 1) * (len(o.Y) - 1) * (len(o.Z) - 1)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// sortUnique sorts coordinates and removes entries closer than Ctol
func sortUnique(l []float64) (res []float64) {
	if len(l) < 1 {
		return
	}
	s := make([]float64, len(l))
	copy(s, l)
	sort.Float64s(s)
	res = append(res, s[0])
	for i := 1; i < len(s); i++ {
		if s[i]-res[len(res)-1] > Ctol {
			res = append(res, s[i])
		}
	}
	return
}

// smoothLines subdivides gaps larger than maxRes and then bisects the larger of
// any two adjacent gaps whose ratio exceeds maxRatio
func smoothLines(l []float64, maxRes, maxRatio float64) (res []float64) {

	// bound cell size: uniform subdivision of large gaps
	for i := 0; i < len(l)-1; i++ {
		res = append(res, l[i])
		gap := l[i+1] - l[i]
		n := int(math.Ceil(gap / maxRes))
		for j := 1; j < n; j++ {
			res = append(res, l[i]+float64(j)*gap/float64(n))
		}
	}
	res = append(res, l[len(l)-1])

	// bound growth ratio: bisect the larger gap of offending pairs
	for it := 0; it < MaxItSm; it++ {
		changed := false
		for i := 0; i < len(res)-2; i++ {
			g1 := res[i+1] - res[i]
			g2 := res[i+2] - res[i+1]
			if g2 > g1*maxRatio+Ctol {
				res = insertLine(res, i+2, res[i+1]+g2/2.0)
				changed = true
				break
			}
			if g1 > g2*maxRatio+Ctol {
				res = insertLine(res, i+1, res[i]+g1/2.0)
				changed = true
				break
			}
		}
		if !changed {
			return
		}
	}
	chk.Panic("mesh smoothing did not converge after %d iterations (maxRes=%g, maxRatio=%g)", MaxItSm, maxRes, maxRatio)
	return
}

// insertLine inserts coordinate v at position i
func insertLine(l []float64, i int, v float64) []float64 {
	l = append(l, 0)
	copy(l[i+1:], l[i:])
	l[i] = v
	return l
}
