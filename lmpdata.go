/*
 * lmpdata.go, part of goexport.
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
	"io"
)

// Atom styles the lammps_data writer knows. Each style is a per-atom row
// layout for the Atoms section; exactly one style applies per job.
//
//	atomic: id type x y z
//	charge: id type q x y z
//	bond:   id mol type x y z
//	full:   id mol type q x y z
var dataStyles = map[string]struct{ mol, charge bool }{
	"atomic": {false, false},
	"charge": {false, true},
	"bond":   {true, false},
	"full":   {true, true},
}

// DataWriter writes LAMMPS data (structure) files: a header block with the
// atom/bond/type counts and the box bounds, followed by keyword-delimited
// sections (Masses, Atoms, Velocities, Bonds). One structure per file.
//
// Missing per-particle data falls back the way LAMMPS tools expect:
// molecule id 1, charge 0, type 1, ids numbered from 1. Floats are written
// with %.10g, which reproduces double-precision coordinates to the last
// digit LAMMPS itself keeps.
type DataWriter struct {
	style string
}

const dataFloatFmt = "%.10g"

func newDataWriter(opt Options) (*DataWriter, error) {
	style := opt["atom_style"]
	if style == "" {
		style = "atomic"
	}
	if _, ok := dataStyles[style]; !ok {
		return nil, &UnknownStyleError{Style: style, Format: LammpsData}
	}
	return &DataWriter{style: style}, nil
}

func (D *DataWriter) Format() string { return LammpsData }

func (D *DataWriter) MultiFrame() bool { return false }

// The data format has a fixed layout per style; the column list is not
// user-selectable beyond it.
func (D *DataWriter) DefaultColumns() []string {
	cols := []string{IDName, TypeName}
	st := dataStyles[D.style]
	if st.mol {
		cols = append(cols, MolIDName)
	}
	if st.charge {
		cols = append(cols, ChargeName)
	}
	return append(cols, "Position.X", "Position.Y", "Position.Z")
}

func (D *DataWriter) MandatoryColumns() []string {
	return []string{"Position.X", "Position.Y", "Position.Z"}
}

func (D *DataWriter) Accepts(col string) bool {
	return contains(D.DefaultColumns(), col)
}

func (D *DataWriter) WriteHeader(out io.Writer) error { return nil }

func (D *DataWriter) WriteFooter(out io.Writer) error { return nil }

func (D *DataWriter) WriteFrame(out io.Writer, frame int, ps *PropertySet, cols []Field) error {
	lo, hi, err := ps.BoxBounds()
	if err != nil {
		return err
	}
	types := ps.typeIDs()
	maxType := types[len(types)-1]
	bonds := ps.Bonds()
	fmt.Fprintf(out, "LAMMPS data file written by goexport, frame %d\n\n", frame)
	fmt.Fprintf(out, "%d atoms\n", ps.Len())
	if bonds != nil {
		fmt.Fprintf(out, "%d bonds\n", len(bonds))
	}
	fmt.Fprintf(out, "%d atom types\n", maxType)
	if bonds != nil {
		fmt.Fprintf(out, "%d bond types\n", maxBondType(bonds))
	}
	fmt.Fprint(out, "\n")
	fmt.Fprintf(out, dataFloatFmt+" "+dataFloatFmt+" xlo xhi\n", lo[0], hi[0])
	fmt.Fprintf(out, dataFloatFmt+" "+dataFloatFmt+" ylo yhi\n", lo[1], hi[1])
	fmt.Fprintf(out, dataFloatFmt+" "+dataFloatFmt+" zlo zhi\n", lo[2], hi[2])
	if err := D.writeMasses(out, ps, maxType); err != nil {
		return err
	}
	if err := D.writeAtoms(out, ps); err != nil {
		return err
	}
	if err := D.writeVelocities(out, ps); err != nil {
		return err
	}
	return D.writeBonds(out, ps)
}

func maxBondType(bonds []Bond) int {
	max := 1
	for _, b := range bonds {
		if b.Type > max {
			max = b.Type
		}
	}
	return max
}

// writeMasses emits one mass per atom type, taken from the Mass property of
// the first particle of each type. No Mass property, no Masses section.
func (D *DataWriter) writeMasses(out io.Writer, ps *PropertySet, maxType int) error {
	mass := ps.Prop(MassName)
	if mass == nil {
		return nil
	}
	perType := make([]float64, maxType+1)
	for i := 0; i < ps.Len(); i++ {
		t := ps.particleType(i)
		if perType[t] == 0 {
			perType[t] = mass.Value(i, 0)
		}
	}
	fmt.Fprint(out, "\nMasses\n\n")
	for t := 1; t <= maxType; t++ {
		m := perType[t]
		if m == 0 {
			m = 1.0 //LAMMPS rejects zero masses
		}
		if _, err := fmt.Fprintf(out, "%d "+dataFloatFmt+"\n", t, m); err != nil {
			return err
		}
	}
	return nil
}

func (D *DataWriter) writeAtoms(out io.Writer, ps *PropertySet) error {
	pos := ps.Prop(PosName)
	ids := ps.Prop(IDName)
	mols := ps.Prop(MolIDName)
	charges := ps.Prop(ChargeName)
	st := dataStyles[D.style]
	fmt.Fprintf(out, "\nAtoms # %s\n\n", D.style)
	for i := 0; i < ps.Len(); i++ {
		id := i + 1
		if ids != nil {
			id = ids.Int(i)
		}
		if _, err := fmt.Fprintf(out, "%d", id); err != nil {
			return err
		}
		if st.mol {
			mol := 1
			if mols != nil {
				mol = mols.Int(i)
			}
			fmt.Fprintf(out, " %d", mol)
		}
		fmt.Fprintf(out, " %d", ps.particleType(i))
		if st.charge {
			q := 0.0
			if charges != nil {
				q = charges.Value(i, 0)
			}
			fmt.Fprintf(out, " "+dataFloatFmt, q)
		}
		if _, err := fmt.Fprintf(out, " "+dataFloatFmt+" "+dataFloatFmt+" "+dataFloatFmt+"\n",
			pos.Value(i, 0), pos.Value(i, 1), pos.Value(i, 2)); err != nil {
			return err
		}
	}
	return nil
}

func (D *DataWriter) writeVelocities(out io.Writer, ps *PropertySet) error {
	vel := ps.Prop(VelName)
	if vel == nil || vel.Kind() != Vector {
		return nil
	}
	ids := ps.Prop(IDName)
	fmt.Fprint(out, "\nVelocities\n\n")
	for i := 0; i < ps.Len(); i++ {
		id := i + 1
		if ids != nil {
			id = ids.Int(i)
		}
		if _, err := fmt.Fprintf(out, "%d "+dataFloatFmt+" "+dataFloatFmt+" "+dataFloatFmt+"\n",
			id, vel.Value(i, 0), vel.Value(i, 1), vel.Value(i, 2)); err != nil {
			return err
		}
	}
	return nil
}

// writeBonds emits the Bonds section. Bond records refer to particles by
// index; the section refers to them by identifier, so the mapping goes
// through the Particle Identifier property when there is one.
func (D *DataWriter) writeBonds(out io.Writer, ps *PropertySet) error {
	bonds := ps.Bonds()
	if bonds == nil {
		return nil
	}
	ids := ps.Prop(IDName)
	id := func(i int) int {
		if ids != nil {
			return ids.Int(i)
		}
		return i + 1
	}
	fmt.Fprint(out, "\nBonds\n\n")
	for k, b := range bonds {
		if _, err := fmt.Fprintf(out, "%d %d %d %d\n", k+1, b.Type, id(b.A), id(b.B)); err != nil {
			return err
		}
	}
	return nil
}
