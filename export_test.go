/*
 * export_test.go, part of goexport.
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
	"errors"

	v3 "github.com/rmera/gochem/v3"
)

// asError is just errors.As with a shorter name, tests use it a lot.
func asError(err error, target interface{}) bool {
	return errors.As(err, target)
}

// testFrame builds a little 4-particle frame. offset displaces the
// coordinates so frames of a fake trajectory can be told apart.
func testFrame(offset float64) *PropertySet {
	ps := NewPropertySet(4)
	coords := []float64{
		0.0 + offset, 0.1, 0.2,
		1.0 + offset, 1.1, 1.2,
		2.0 + offset, 2.1, 2.2,
		3.0 + offset, 3.1, 3.2,
	}
	pos, err := v3.NewMatrix(coords)
	if err != nil {
		panic(err.Error())
	}
	if err := ps.SetVectors(PosName, pos); err != nil {
		panic(err.Error())
	}
	must := func(err error) {
		if err != nil {
			panic(err.Error())
		}
	}
	must(ps.SetInts(IDName, []int{1, 2, 3, 4}))
	must(ps.SetInts(TypeName, []int{1, 2, 2, 1}))
	must(ps.SetInts(MolIDName, []int{1, 1, 2, 2}))
	must(ps.SetFloats(ChargeName, []float64{0.5, -0.5, -0.5, 0.5}))
	must(ps.SetFloats(MassName, []float64{28.09, 16.00, 16.00, 28.09}))
	ps.SetTypeNames(map[int]string{1: "Si", 2: "O"})
	cell, err := NewCell([]float64{10, 0, 0, 0, 10, 0, 0, 0, 10}, [3]float64{})
	must(err)
	ps.SetCell(cell)
	return ps
}

// testSource builds an in-memory source with n distinguishable frames.
func testSource(n int) *SliceSource {
	frames := make([]*PropertySet, n)
	for i := range frames {
		frames[i] = testFrame(float64(i))
	}
	return NewSliceSource(frames...)
}
