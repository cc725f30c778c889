// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data model for FDTD simulations read from a (.sim) JSON file
package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Box holds an axis-aligned box primitive given by two corner points [mm]
type Box struct {
	Lo   []float64 `json:"lo"`   // [3] minimum corner
	Hi   []float64 `json:"hi"`   // [3] maximum corner
	Prio int       `json:"prio"` // priority to resolve overlaps; higher wins
}

// Material holds a named dielectric property set and its box primitives
type Material struct {
	Name  string  `json:"name"`  // unique name; e.g. "substrate"
	EpsR  float64 `json:"epsr"`  // relative permittivity
	Kappa float64 `json:"kappa"` // electric conductivity [S/m]; 0 means lossless
	Boxes []*Box  `json:"boxes"` // primitives
}

// Metal holds a named perfect-conductor property set and its box primitives
type Metal struct {
	Name  string `json:"name"`  // unique name; e.g. "gnd", "line"
	Boxes []*Box `json:"boxes"` // primitives
}

// Dump holds a named field-dump request over a box region
type Dump struct {
	Name string    `json:"name"` // unique name; e.g. "Et"
	Lo   []float64 `json:"lo"`   // [3] minimum corner [mm]
	Hi   []float64 `json:"hi"`   // [3] maximum corner [mm]
}

// Geometry holds the CAD document: named property sets owning box primitives,
// field-dump requests and lumped ports
type Geometry struct {

	// from JSON
	Materials []*Material   `json:"materials"` // dielectrics
	Metals    []*Metal      `json:"metals"`    // conductors
	Dumps     []*Dump       `json:"dumps"`     // field-dump boxes
	Ports     []*LumpedPort `json:"ports"`     // lumped ports

	// derived: maps
	mat2idx  map[string]int
	met2idx  map[string]int
	port2idx map[int]int
}

// NewGeometry returns a new and empty geometry document
func NewGeometry() *Geometry {
	var o Geometry
	o.mat2idx = make(map[string]int)
	o.met2idx = make(map[string]int)
	o.port2idx = make(map[int]int)
	return &o
}

// Init builds derived maps after decoding from JSON
//  Note: panics if names/numbers are duplicated
func (o *Geometry) Init() {
	o.mat2idx = make(map[string]int)
	o.met2idx = make(map[string]int)
	o.port2idx = make(map[int]int)
	for i, mat := range o.Materials {
		if _, ok := o.mat2idx[mat.Name]; ok {
			chk.Panic("duplicate material named %q", mat.Name)
		}
		o.mat2idx[mat.Name] = i
	}
	for i, met := range o.Metals {
		if _, ok := o.met2idx[met.Name]; ok {
			chk.Panic("duplicate metal named %q", met.Name)
		}
		o.met2idx[met.Name] = i
	}
	for i, p := range o.Ports {
		if _, ok := o.port2idx[p.Num]; ok {
			chk.Panic("duplicate port number %d", p.Num)
		}
		o.port2idx[p.Num] = i
	}
}

// AddMaterial registers a new dielectric
func (o *Geometry) AddMaterial(name string, epsR, kappa float64) *Material {
	if _, ok := o.mat2idx[name]; ok {
		chk.Panic("cannot add material since another one named %q exists already", name)
	}
	mat := &Material{Name: name, EpsR: epsR, Kappa: kappa}
	o.mat2idx[name] = len(o.Materials)
	o.Materials = append(o.Materials, mat)
	return mat
}

// AddMetal registers a new perfect conductor
func (o *Geometry) AddMetal(name string) *Metal {
	if _, ok := o.met2idx[name]; ok {
		chk.Panic("cannot add metal since another one named %q exists already", name)
	}
	met := &Metal{Name: name}
	o.met2idx[name] = len(o.Metals)
	o.Metals = append(o.Metals, met)
	return met
}

// AddDump registers a new field-dump request
func (o *Geometry) AddDump(name string, lo, hi []float64) *Dump {
	chk.IntAssert(len(lo), 3)
	chk.IntAssert(len(hi), 3)
	dmp := &Dump{Name: name, Lo: lo, Hi: hi}
	o.Dumps = append(o.Dumps, dmp)
	return dmp
}

// GetMaterial returns the material named name
//  Note: panics if not found
func (o *Geometry) GetMaterial(name string) *Material {
	idx, ok := o.mat2idx[name]
	if !ok {
		chk.Panic("cannot find material named %q", name)
	}
	return o.Materials[idx]
}

// GetMetal returns the metal named name
//  Note: panics if not found
func (o *Geometry) GetMetal(name string) *Metal {
	idx, ok := o.met2idx[name]
	if !ok {
		chk.Panic("cannot find metal named %q", name)
	}
	return o.Metals[idx]
}

// AddBox appends a box primitive to this material
func (o *Material) AddBox(prio int, lo, hi []float64) *Box {
	chk.IntAssert(len(lo), 3)
	chk.IntAssert(len(hi), 3)
	box := &Box{Lo: lo, Hi: hi, Prio: prio}
	o.Boxes = append(o.Boxes, box)
	return box
}

// AddBox appends a box primitive to this metal
func (o *Metal) AddBox(prio int, lo, hi []float64) *Box {
	chk.IntAssert(len(lo), 3)
	chk.IntAssert(len(hi), 3)
	box := &Box{Lo: lo, Hi: hi, Prio: prio}
	o.Boxes = append(o.Boxes, box)
	return box
}

// BoundingBox returns the union of all box primitives of this material
//  Note: panics if the material owns no boxes
func (o *Material) BoundingBox() (lo, hi []float64) {
	if len(o.Boxes) < 1 {
		chk.Panic("material %q has no boxes to compute bounding box", o.Name)
	}
	lo = []float64{o.Boxes[0].Lo[0], o.Boxes[0].Lo[1], o.Boxes[0].Lo[2]}
	hi = []float64{o.Boxes[0].Hi[0], o.Boxes[0].Hi[1], o.Boxes[0].Hi[2]}
	for _, box := range o.Boxes {
		for j := 0; j < 3; j++ {
			lo[j] = utl.Min(lo[j], utl.Min(box.Lo[j], box.Hi[j]))
			hi[j] = utl.Max(hi[j], utl.Max(box.Lo[j], box.Hi[j]))
		}
	}
	return
}

// NumBoxes returns the total number of box primitives in the document
func (o *Geometry) NumBoxes() (n int) {
	for _, mat := range o.Materials {
		n += len(mat.Boxes)
	}
	for _, met := range o.Metals {
		n += len(met.Boxes)
	}
	return
}
