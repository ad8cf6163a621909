/*
 * vasp.go, part of goexport.
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

// VASPWriter writes POSCAR-style structure files: a comment line, the
// universal scale factor, three lattice vectors, the species-name and
// per-species count lines, then the Cartesian coordinate block with the
// particles grouped by type (in ascending type-id order, keeping the
// original order within each type, as POSCAR requires). Single structure
// per file.
//
// Lattice vectors and coordinates use %21.16f, the precision VASP's own
// tooling writes.
type VASPWriter struct{}

const vaspFloatFmt = "%21.16f"

func newVASPWriter(opt Options) (*VASPWriter, error) {
	return &VASPWriter{}, nil
}

func (V *VASPWriter) Format() string { return VASP }

func (V *VASPWriter) MultiFrame() bool { return false }

func (V *VASPWriter) DefaultColumns() []string {
	return []string{"Position.X", "Position.Y", "Position.Z"}
}

func (V *VASPWriter) MandatoryColumns() []string {
	return []string{"Position.X", "Position.Y", "Position.Z"}
}

func (V *VASPWriter) Accepts(col string) bool {
	return col == TypeName || contains(V.DefaultColumns(), col)
}

func (V *VASPWriter) WriteHeader(out io.Writer) error { return nil }

func (V *VASPWriter) WriteFooter(out io.Writer) error { return nil }

func (V *VASPWriter) WriteFrame(out io.Writer, frame int, ps *PropertySet, cols []Field) error {
	vecs, _, err := ps.boxVectors()
	if err != nil {
		return err
	}
	pos := ps.Prop(PosName)
	types := ps.typeIDs()
	fmt.Fprintf(out, "POSCAR written by goexport, frame %d\n", frame)
	fmt.Fprint(out, "1.0\n")
	for i := 0; i < 3; i++ {
		fmt.Fprintf(out, vaspFloatFmt+" "+vaspFloatFmt+" "+vaspFloatFmt+"\n", vecs[3*i], vecs[3*i+1], vecs[3*i+2])
	}
	counts := make(map[int]int)
	for i := 0; i < ps.Len(); i++ {
		counts[ps.particleType(i)]++
	}
	for _, t := range types {
		name := ps.TypeName(t)
		if name == "" {
			name = fmt.Sprintf("Type%d", t)
		}
		fmt.Fprintf(out, " %s", name)
	}
	fmt.Fprint(out, "\n")
	for _, t := range types {
		fmt.Fprintf(out, " %d", counts[t])
	}
	fmt.Fprint(out, "\nCartesian\n")
	for _, t := range types {
		for i := 0; i < ps.Len(); i++ {
			if ps.particleType(i) != t {
				continue
			}
			if _, err := fmt.Fprintf(out, vaspFloatFmt+" "+vaspFloatFmt+" "+vaspFloatFmt+"\n",
				pos.Value(i, 0), pos.Value(i, 1), pos.Value(i, 2)); err != nil {
				return err
			}
		}
	}
	return nil
}
