// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"bytes"
	"encoding/xml"

	"github.com/cpmech/goems/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// solver-native descriptor structures ////////////////////////////////////////////////////////////

type xmlCorner struct {
	X float64 `xml:"X,attr"`
	Y float64 `xml:"Y,attr"`
	Z float64 `xml:"Z,attr"`
}

type xmlBox struct {
	Prio int       `xml:"Priority,attr"`
	P1   xmlCorner `xml:"P1"`
	P2   xmlCorner `xml:"P2"`
}

type xmlMaterial struct {
	Name  string   `xml:"Name,attr"`
	Eps   float64  `xml:"Epsilon,attr"`
	Kappa float64  `xml:"Kappa,attr"`
	Boxes []xmlBox `xml:"Primitives>Box"`
}

type xmlMetal struct {
	Name  string   `xml:"Name,attr"`
	Boxes []xmlBox `xml:"Primitives>Box"`
}

type xmlDump struct {
	Name string `xml:"Name,attr"`
	Box  xmlBox `xml:"Primitives>Box"`
}

type xmlPort struct {
	Name   string    `xml:"Name,attr"`
	Number int       `xml:"Number,attr"`
	R      float64   `xml:"Resistance,attr"`
	Excite int       `xml:"Excite,attr"`
	Dir    xmlCorner `xml:"Direction"`
	Box    xmlBox    `xml:"Primitives>Box"`
}

type xmlExcitation struct {
	Type int     `xml:"Type,attr"`
	F0   float64 `xml:"f0,attr"`
	FC   float64 `xml:"fc,attr"`
}

type xmlBCs struct {
	Xmin string `xml:"xmin,attr"`
	Xmax string `xml:"xmax,attr"`
	Ymin string `xml:"ymin,attr"`
	Ymax string `xml:"ymax,attr"`
	Zmin string `xml:"zmin,attr"`
	Zmax string `xml:"zmax,attr"`
}

type xmlFDTD struct {
	MaxSteps int           `xml:"NumberOfTimesteps,attr"`
	EndCrit  float64       `xml:"endCriteria,attr"`
	Exc      xmlExcitation `xml:"Excitation"`
	BCs      xmlBCs        `xml:"BoundaryCond"`
}

type xmlGrid struct {
	DeltaUnit float64 `xml:"DeltaUnit,attr"`
	XLines    string  `xml:"XLines"`
	YLines    string  `xml:"YLines"`
	ZLines    string  `xml:"ZLines"`
}

type xmlProps struct {
	Materials []xmlMaterial `xml:"Material"`
	Metals    []xmlMetal    `xml:"Metal"`
	Dumps     []xmlDump     `xml:"DumpBox"`
	Ports     []xmlPort     `xml:"LumpedPort"`
}

type xmlCSX struct {
	Props xmlProps `xml:"Properties"`
	Grid  xmlGrid  `xml:"RectilinearGrid"`
}

type xmlModel struct {
	XMLName xml.Name `xml:"openEMS"`
	FDTD    xmlFDTD  `xml:"FDTD"`
	CSX     xmlCSX   `xml:"ContinuousStructure"`
}

// descriptor /////////////////////////////////////////////////////////////////////////////////////

// Descriptor builds the solver-native model from simulation data. The output
// is fully determined by the input: exporting the same simulation twice
// produces byte-identical descriptors.
func Descriptor(sim *inp.Simulation) *xmlModel {

	// mesh must be generated first
	if sim.Msh == nil {
		chk.Panic("cannot build descriptor without a mesh; call GenMesh first")
	}

	// FDTD parameters
	var m xmlModel
	m.FDTD.MaxSteps = sim.Solver.MaxSteps
	m.FDTD.EndCrit = sim.Solver.EndCriteria
	m.FDTD.Exc = xmlExcitation{Type: 0, F0: sim.Solver.F0, FC: sim.Solver.FC}
	m.FDTD.BCs = xmlBCs{
		Xmin: sim.Solver.BCs[0], Xmax: sim.Solver.BCs[1],
		Ymin: sim.Solver.BCs[2], Ymax: sim.Solver.BCs[3],
		Zmin: sim.Solver.BCs[4], Zmax: sim.Solver.BCs[5],
	}

	// properties
	for _, mat := range sim.Geo.Materials {
		x := xmlMaterial{Name: mat.Name, Eps: mat.EpsR, Kappa: mat.Kappa}
		for _, box := range mat.Boxes {
			x.Boxes = append(x.Boxes, newXmlBox(box))
		}
		m.CSX.Props.Materials = append(m.CSX.Props.Materials, x)
	}
	for _, met := range sim.Geo.Metals {
		x := xmlMetal{Name: met.Name}
		for _, box := range met.Boxes {
			x.Boxes = append(x.Boxes, newXmlBox(box))
		}
		m.CSX.Props.Metals = append(m.CSX.Props.Metals, x)
	}
	for _, dmp := range sim.Geo.Dumps {
		x := xmlDump{Name: dmp.Name}
		x.Box = newXmlBox(&inp.Box{Lo: dmp.Lo, Hi: dmp.Hi})
		m.CSX.Props.Dumps = append(m.CSX.Props.Dumps, x)
	}
	for _, port := range sim.Geo.Ports {
		excite := 0
		if port.Active {
			excite = 1
		}
		x := xmlPort{
			Name:   io.Sf("port%d", port.Num),
			Number: port.Num,
			R:      port.Zref,
			Excite: excite,
			Dir:    xmlCorner{X: port.Dir[0], Y: port.Dir[1], Z: port.Dir[2]},
			Box:    newXmlBox(&inp.Box{Lo: port.Lo, Hi: port.Hi}),
		}
		m.CSX.Props.Ports = append(m.CSX.Props.Ports, x)
	}

	// rectilinear grid
	m.CSX.Grid.DeltaUnit = sim.Data.Unit
	m.CSX.Grid.XLines = joinLines(sim.Msh.X)
	m.CSX.Grid.YLines = joinLines(sim.Msh.Y)
	m.CSX.Grid.ZLines = joinLines(sim.Msh.Z)
	return &m
}

// Bytes serializes the descriptor
func (o *xmlModel) Bytes() []byte {
	b, err := xml.MarshalIndent(o, "", "  ")
	if err != nil {
		chk.Panic("cannot marshal solver descriptor:\n%v", err)
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(b)
	buf.WriteString("\n")
	return buf.Bytes()
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func newXmlBox(box *inp.Box) xmlBox {
	return xmlBox{
		Prio: box.Prio,
		P1:   xmlCorner{X: box.Lo[0], Y: box.Lo[1], Z: box.Lo[2]},
		P2:   xmlCorner{X: box.Hi[0], Y: box.Hi[1], Z: box.Hi[2]},
	}
}

func joinLines(l []float64) string {
	var buf bytes.Buffer
	for i, x := range l {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(io.Sf("%g", x))
	}
	return buf.String()
}
