/*
 * dump.go, part of goexport.
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
	"strconv"
)

// dumpNames maps logical column names to the field names a LAMMPS dump
// header announces. Presence in this table is what the dump writer accepts.
var dumpNames = map[string]string{
	IDName:       "id",
	TypeName:     "type",
	MolIDName:    "mol",
	ChargeName:   "q",
	MassName:     "mass",
	RadiusName:   "radius",
	"Position.X": "x",
	"Position.Y": "y",
	"Position.Z": "z",
	"Velocity.X": "vx",
	"Velocity.Y": "vy",
	"Velocity.Z": "vz",
	"Force.X":    "fx",
	"Force.Y":    "fy",
	"Force.Z":    "fz",
}

// DumpWriter writes LAMMPS dump files: one self-contained block per frame
// (timestep, particle count, box bounds, then one row per particle with
// exactly the resolved columns in order). Several frames in one file are
// just concatenated blocks, which is the native dump convention.
//
// Floats are written with %.*g at the configured precision (default 8
// significant digits), so values round-trip through re-import to better
// than one part in 1e7.
type DumpWriter struct {
	prec int
}

const dumpDefaultPrec = 8

// optPrecision reads the "precision" option, in significant digits.
func optPrecision(opt Options, def int) (int, error) {
	s, ok := opt["precision"]
	if !ok {
		return def, nil
	}
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 {
		return 0, fmt.Errorf("goexport: bad precision option %q", s)
	}
	return p, nil
}

func newDumpWriter(opt Options) (*DumpWriter, error) {
	prec, err := optPrecision(opt, dumpDefaultPrec)
	if err != nil {
		return nil, err
	}
	return &DumpWriter{prec: prec}, nil
}

func (D *DumpWriter) Format() string { return LammpsDump }

func (D *DumpWriter) MultiFrame() bool { return true }

func (D *DumpWriter) DefaultColumns() []string {
	return []string{IDName, TypeName, "Position.X", "Position.Y", "Position.Z"}
}

func (D *DumpWriter) MandatoryColumns() []string {
	return []string{"Position.X", "Position.Y", "Position.Z"}
}

func (D *DumpWriter) Accepts(col string) bool {
	_, ok := dumpNames[col]
	return ok
}

func (D *DumpWriter) WriteHeader(out io.Writer) error { return nil }

func (D *DumpWriter) WriteFooter(out io.Writer) error { return nil }

func (D *DumpWriter) WriteFrame(out io.Writer, frame int, ps *PropertySet, cols []Field) error {
	lo, hi, err := ps.BoxBounds()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "ITEM: TIMESTEP\n%d\n", frame)
	fmt.Fprintf(out, "ITEM: NUMBER OF ATOMS\n%d\n", ps.Len())
	fmt.Fprint(out, "ITEM: BOX BOUNDS pp pp pp\n")
	for j := 0; j < 3; j++ {
		fmt.Fprintf(out, "%.*g %.*g\n", D.prec, lo[j], D.prec, hi[j])
	}
	fmt.Fprint(out, "ITEM: ATOMS")
	for _, c := range cols {
		fmt.Fprintf(out, " %s", dumpNames[c.Name])
	}
	fmt.Fprint(out, "\n")
	for i := 0; i < ps.Len(); i++ {
		for k, c := range cols {
			if k > 0 {
				if _, err := fmt.Fprint(out, " "); err != nil {
					return err
				}
			}
			if c.IsInt() {
				_, err = fmt.Fprintf(out, "%d", c.Int(i))
			} else {
				_, err = fmt.Fprintf(out, "%.*g", D.prec, c.Value(i))
			}
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}
