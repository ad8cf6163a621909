/*
 * source_gochem.go, part of goexport.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package export

import (
	"fmt"

	chem "github.com/rmera/gochem"
	v3 "github.com/rmera/gochem/v3"
)

// TrajSource adapts a goChem topology plus trajectory into a FrameSource, so
// anything goChem can read (DCD, XTC, STF, multi-model PDB) can be exported.
// goChem trajectories are forward-only while a FrameSource is random-access,
// so the whole trajectory is read into memory on construction. The topology
// is frame-independent; each call to Frame assembles a fresh PropertySet
// from it plus the stored coordinates.
type TrajSource struct {
	top    chem.Atomer
	coords []*v3.Matrix
	boxes  [][]float64 //9 values per frame, nil if the frame had no box
}

// NewTrajSource reads every frame of traj and returns the resulting source.
// The trajectory handle is left exhausted; closing it stays with the caller.
func NewTrajSource(top chem.Atomer, traj chem.Traj) (*TrajSource, error) {
	if top.Len() != traj.Len() {
		return nil, fmt.Errorf("goexport: topology has %d atoms but the trajectory frames have %d", top.Len(), traj.Len())
	}
	T := &TrajSource{top: top}
	for {
		c := v3.Zeros(traj.Len())
		box := make([]float64, 9)
		err := traj.Next(c, box)
		if err != nil {
			if _, ok := err.(chem.LastFrameError); ok {
				break
			}
			return nil, errDecorate(err, "NewTrajSource")
		}
		T.coords = append(T.coords, c)
		if boxIsSet(box) {
			T.boxes = append(T.boxes, box)
		} else {
			T.boxes = append(T.boxes, nil)
		}
	}
	return T, nil
}

func boxIsSet(box []float64) bool {
	for _, v := range box {
		if v != 0 {
			return true
		}
	}
	return false
}

// FrameCount returns the number of frames read from the trajectory.
func (T *TrajSource) FrameCount() int {
	return len(T.coords)
}

// Frame builds the PropertySet for frame i: positions from the trajectory,
// identifiers, types (numbered by element symbol, in order of first
// appearance), molecule ids, charges and masses from the topology.
func (T *TrajSource) Frame(i int) (*PropertySet, error) {
	if i < 0 || i >= len(T.coords) {
		return nil, &FrameOutOfRangeError{Frame: i, Total: len(T.coords)}
	}
	n := T.top.Len()
	ids := make([]int, n)
	types := make([]int, n)
	mols := make([]int, n)
	charges := make([]float64, n)
	masses := make([]float64, n)
	type2id := make(map[string]int)
	typeNames := make(map[int]string)
	for j := 0; j < n; j++ {
		at := T.top.Atom(j)
		ids[j] = at.ID
		if ids[j] == 0 {
			ids[j] = j + 1
		}
		tid, ok := type2id[at.Symbol]
		if !ok {
			tid = len(type2id) + 1
			type2id[at.Symbol] = tid
			typeNames[tid] = at.Symbol
		}
		types[j] = tid
		mols[j] = at.MolID
		charges[j] = at.Charge
		masses[j] = at.Mass
	}
	ps := NewPropertySet(n)
	if err := ps.SetVectors(PosName, T.coords[i]); err != nil {
		return nil, err
	}
	ps.SetInts(IDName, ids)        //these can only fail on a length
	ps.SetInts(TypeName, types)    //mismatch or a repeated name, neither
	ps.SetInts(MolIDName, mols)    //of which can happen here.
	ps.SetFloats(ChargeName, charges)
	ps.SetFloats(MassName, masses)
	ps.SetTypeNames(typeNames)
	if T.boxes[i] != nil {
		cell, err := NewCell(T.boxes[i], [3]float64{})
		if err == nil {
			ps.SetCell(cell)
		}
	}
	return ps, nil
}
