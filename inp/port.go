// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// LumpedPort holds a lumped excitation/measurement element bound to a box region.
// The registration order of ports fixes the indexing of solver result records.
type LumpedPort struct {
	Num    int       `json:"num"`    // port number used to name solver records; e.g. 1 => port_ut1
	Zref   float64   `json:"zref"`   // reference impedance [Ohm]
	Lo     []float64 `json:"lo"`     // [3] region minimum corner [mm]
	Hi     []float64 `json:"hi"`     // [3] region maximum corner [mm]
	Dir    []float64 `json:"dir"`    // [3] unit excitation direction
	Active bool      `json:"active"` // carries the excitation; all others are passive listeners
}

// AddPort registers a new lumped port
func (o *Geometry) AddPort(num int, zref float64, lo, hi, dir []float64, active bool) *LumpedPort {
	chk.IntAssert(len(lo), 3)
	chk.IntAssert(len(hi), 3)
	chk.IntAssert(len(dir), 3)
	if _, ok := o.port2idx[num]; ok {
		chk.Panic("cannot add port since port number %d exists already", num)
	}
	d := math.Sqrt(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2])
	if math.Abs(d-1.0) > 1e-10 {
		chk.Panic("port %d: direction must be a unit vector. |dir|=%g is invalid", num, d)
	}
	port := &LumpedPort{Num: num, Zref: zref, Lo: lo, Hi: hi, Dir: dir, Active: active}
	o.port2idx[num] = len(o.Ports)
	o.Ports = append(o.Ports, port)
	return port
}

// GetPort returns the port with given number
//  Note: panics if not found
func (o *Geometry) GetPort(num int) *LumpedPort {
	idx, ok := o.port2idx[num]
	if !ok {
		chk.Panic("cannot find port number %d", num)
	}
	return o.Ports[idx]
}

// ActivePort returns the unique excited port
//  Note: panics unless exactly one port is active
func (o *Geometry) ActivePort() (act *LumpedPort) {
	for _, port := range o.Ports {
		if port.Active {
			if act != nil {
				chk.Panic("ports %d and %d are both active; exactly one port must carry the excitation", act.Num, port.Num)
			}
			act = port
		}
	}
	if act == nil {
		chk.Panic("no active port found; exactly one port must carry the excitation")
	}
	return
}
