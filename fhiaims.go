/*
 * fhiaims.go, part of goexport.
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

// AimsWriter writes FHI-aims geometry.in files: lattice_vector lines when
// the frame has a cell, then one "atom x y z Species" line per particle.
// Species names come from the frame's type-name table; particles of a type
// with no name get the dummy species "X". Single structure per file.
//
// Coordinates use %.8f, matching what aims itself prints in relaxations.
type AimsWriter struct{}

const aimsFloatFmt = "%.8f"

func newAimsWriter(opt Options) (*AimsWriter, error) {
	return &AimsWriter{}, nil
}

func (A *AimsWriter) Format() string { return FHIAims }

func (A *AimsWriter) MultiFrame() bool { return false }

func (A *AimsWriter) DefaultColumns() []string {
	return []string{"Position.X", "Position.Y", "Position.Z"}
}

func (A *AimsWriter) MandatoryColumns() []string {
	return []string{"Position.X", "Position.Y", "Position.Z"}
}

func (A *AimsWriter) Accepts(col string) bool {
	return col == TypeName || contains(A.DefaultColumns(), col)
}

func (A *AimsWriter) WriteHeader(out io.Writer) error { return nil }

func (A *AimsWriter) WriteFooter(out io.Writer) error { return nil }

func (A *AimsWriter) WriteFrame(out io.Writer, frame int, ps *PropertySet, cols []Field) error {
	pos := ps.Prop(PosName)
	fmt.Fprintf(out, "# FHI-aims geometry written by goexport, frame %d\n", frame)
	if ps.Cell() != nil {
		vecs, _, err := ps.boxVectors()
		if err != nil {
			return err
		}
		for i := 0; i < 3; i++ {
			fmt.Fprintf(out, "lattice_vector "+aimsFloatFmt+" "+aimsFloatFmt+" "+aimsFloatFmt+"\n",
				vecs[3*i], vecs[3*i+1], vecs[3*i+2])
		}
	}
	for i := 0; i < ps.Len(); i++ {
		species := ps.TypeName(ps.particleType(i))
		if species == "" {
			species = "X"
		}
		if _, err := fmt.Fprintf(out, "atom "+aimsFloatFmt+" "+aimsFloatFmt+" "+aimsFloatFmt+" %s\n",
			pos.Value(i, 0), pos.Value(i, 1), pos.Value(i, 2), species); err != nil {
			return err
		}
	}
	return nil
}
