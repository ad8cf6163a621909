/*
 * imd.go, part of goexport.
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

// IMDWriter writes IMD checkpoint files: the #F/#C header describing the
// record layout, the box vectors on the #X/#Y/#Z lines, #E to end the
// header, then one "number type mass x y z" row per particle. IMD types are
// 0-based, so the frame's 1-based type ids are shifted down. Single
// structure per file.
//
// All floats use %.8g; IMD re-reads them as C doubles and eight significant
// digits keep the checkpoint stable through a write/read cycle.
type IMDWriter struct{}

const imdFloatFmt = "%.8g"

func newIMDWriter(opt Options) (*IMDWriter, error) {
	return &IMDWriter{}, nil
}

func (I *IMDWriter) Format() string { return IMD }

func (I *IMDWriter) MultiFrame() bool { return false }

func (I *IMDWriter) DefaultColumns() []string {
	return []string{"Position.X", "Position.Y", "Position.Z"}
}

func (I *IMDWriter) MandatoryColumns() []string {
	return []string{"Position.X", "Position.Y", "Position.Z"}
}

func (I *IMDWriter) Accepts(col string) bool {
	return col == TypeName || col == MassName || col == IDName || contains(I.DefaultColumns(), col)
}

func (I *IMDWriter) WriteHeader(out io.Writer) error { return nil }

func (I *IMDWriter) WriteFooter(out io.Writer) error { return nil }

func (I *IMDWriter) WriteFrame(out io.Writer, frame int, ps *PropertySet, cols []Field) error {
	vecs, _, err := ps.boxVectors()
	if err != nil {
		return err
	}
	pos := ps.Prop(PosName)
	ids := ps.Prop(IDName)
	mass := ps.Prop(MassName)
	fmt.Fprint(out, "#F A 1 1 1 3 0 0\n")
	fmt.Fprint(out, "#C number type mass x y z\n")
	axes := [3]string{"#X", "#Y", "#Z"}
	for i := 0; i < 3; i++ {
		fmt.Fprintf(out, "%s "+imdFloatFmt+" "+imdFloatFmt+" "+imdFloatFmt+"\n",
			axes[i], vecs[3*i], vecs[3*i+1], vecs[3*i+2])
	}
	fmt.Fprintf(out, "## frame %d, written by goexport\n", frame)
	fmt.Fprint(out, "#E\n")
	for i := 0; i < ps.Len(); i++ {
		id := i + 1
		if ids != nil {
			id = ids.Int(i)
		}
		m := 1.0
		if mass != nil {
			m = mass.Value(i, 0)
		}
		t := ps.particleType(i) - 1
		if t < 0 {
			t = 0 //type ids are 1-based; stray 0-based input must not go negative
		}
		if _, err := fmt.Fprintf(out, "%d %d "+imdFloatFmt+" "+imdFloatFmt+" "+imdFloatFmt+" "+imdFloatFmt+"\n",
			id, t, m, pos.Value(i, 0), pos.Value(i, 1), pos.Value(i, 2)); err != nil {
			return err
		}
	}
	return nil
}
