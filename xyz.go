/*
 * xyz.go, part of goexport.
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

// XYZWriter writes XYZ coordinate files: a particle-count line, a comment
// line, then one row per particle with the resolved columns. Any column can
// be requested; the Particle Type column renders the type's display name
// (element symbol) when the frame carries one, the bare id otherwise.
// Several frames in one file are concatenated blocks, the usual multi-model
// XYZ convention.
//
// Floats use %12.6f: XYZ is an exchange format and six decimals of an
// Angstrom-scale coordinate is what the tools that read it keep.
type XYZWriter struct{}

const xyzFloatFmt = "%12.6f"

func newXYZWriter(opt Options) (*XYZWriter, error) {
	return &XYZWriter{}, nil
}

func (X *XYZWriter) Format() string { return XYZ }

func (X *XYZWriter) MultiFrame() bool { return true }

func (X *XYZWriter) DefaultColumns() []string {
	return []string{TypeName, "Position.X", "Position.Y", "Position.Z"}
}

func (X *XYZWriter) MandatoryColumns() []string {
	return []string{"Position.X", "Position.Y", "Position.Z"}
}

// XYZ rows are free-form, so any resolvable column goes.
func (X *XYZWriter) Accepts(col string) bool { return true }

func (X *XYZWriter) WriteHeader(out io.Writer) error { return nil }

func (X *XYZWriter) WriteFooter(out io.Writer) error { return nil }

func (X *XYZWriter) WriteFrame(out io.Writer, frame int, ps *PropertySet, cols []Field) error {
	fmt.Fprintf(out, "%d\n", ps.Len())
	fmt.Fprintf(out, "frame %d, written by goexport\n", frame)
	for i := 0; i < ps.Len(); i++ {
		for k, c := range cols {
			if k > 0 {
				fmt.Fprint(out, " ")
			}
			var err error
			switch {
			case c.Name == TypeName && c.IsInt() && ps.TypeName(c.Int(i)) != "":
				_, err = fmt.Fprintf(out, "%-2s", ps.TypeName(c.Int(i)))
			case c.IsInt():
				_, err = fmt.Fprintf(out, "%d", c.Int(i))
			default:
				_, err = fmt.Fprintf(out, xyzFloatFmt, c.Value(i))
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
