/*
 * povray.go, part of goexport.
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

// povPalette is the per-type color table, cycled when a frame has more
// types than entries.
var povPalette = [][3]float64{
	{0.9, 0.2, 0.2},
	{0.2, 0.5, 0.9},
	{0.2, 0.8, 0.3},
	{0.9, 0.8, 0.2},
	{0.7, 0.3, 0.8},
	{0.9, 0.5, 0.1},
	{0.4, 0.8, 0.8},
	{0.6, 0.6, 0.6},
}

// POVWriter writes POV-Ray scene description files: a header with the scene
// globals, then per frame a camera placed to frame the particle bounding
// box, a parallel light, and one sphere per particle colored by type. The
// sphere radius comes from the Radius property when the frame has one, else
// from the "radius" option (default 0.5). Single structure per file.
//
// Scene geometry uses %.6f; POV-Ray itself works in single precision, so
// more digits would be noise.
type POVWriter struct {
	radius float64
}

const povFloatFmt = "%.6f"

func newPOVWriter(opt Options) (*POVWriter, error) {
	radius := 0.5
	if s, ok := opt["radius"]; ok {
		r, err := strconv.ParseFloat(s, 64)
		if err != nil || r <= 0 {
			return nil, fmt.Errorf("goexport: bad povray radius option %q", s)
		}
		radius = r
	}
	return &POVWriter{radius: radius}, nil
}

func (P *POVWriter) Format() string { return POVRay }

func (P *POVWriter) MultiFrame() bool { return false }

func (P *POVWriter) DefaultColumns() []string {
	return []string{"Position.X", "Position.Y", "Position.Z"}
}

func (P *POVWriter) MandatoryColumns() []string {
	return []string{"Position.X", "Position.Y", "Position.Z"}
}

func (P *POVWriter) Accepts(col string) bool {
	return col == TypeName || col == RadiusName || contains(P.DefaultColumns(), col)
}

func (P *POVWriter) WriteHeader(out io.Writer) error {
	_, err := fmt.Fprint(out, "#version 3.5;\n// Scene written by goexport\nglobal_settings { assumed_gamma 1 }\nbackground { color rgb <1, 1, 1> }\n")
	return err
}

func (P *POVWriter) WriteFooter(out io.Writer) error { return nil }

func (P *POVWriter) WriteFrame(out io.Writer, frame int, ps *PropertySet, cols []Field) error {
	lo, hi, err := ps.BoxBounds()
	if err != nil {
		return err
	}
	pos := ps.Prop(PosName)
	radii := ps.Prop(RadiusName)
	var center, size [3]float64
	for j := 0; j < 3; j++ {
		center[j] = (lo[j] + hi[j]) / 2
		size[j] = hi[j] - lo[j]
	}
	dist := size[0]
	if size[1] > dist {
		dist = size[1]
	}
	if size[2] > dist {
		dist = size[2]
	}
	fmt.Fprintf(out, "camera {\n  location <"+povFloatFmt+", "+povFloatFmt+", "+povFloatFmt+">\n  look_at <"+povFloatFmt+", "+povFloatFmt+", "+povFloatFmt+">\n}\n",
		center[0], center[1], center[2]+2*dist, center[0], center[1], center[2])
	fmt.Fprintf(out, "light_source { <"+povFloatFmt+", "+povFloatFmt+", "+povFloatFmt+"> color rgb <1, 1, 1> parallel }\n",
		center[0]+dist, center[1]+dist, center[2]+2*dist)
	for i := 0; i < ps.Len(); i++ {
		r := P.radius
		if radii != nil {
			r = radii.Value(i, 0)
		}
		k := (ps.particleType(i) - 1) % len(povPalette)
		if k < 0 {
			k += len(povPalette)
		}
		c := povPalette[k]
		if _, err := fmt.Fprintf(out, "sphere { <"+povFloatFmt+", "+povFloatFmt+", "+povFloatFmt+">, "+povFloatFmt+" pigment { color rgb <"+povFloatFmt+", "+povFloatFmt+", "+povFloatFmt+"> } }\n",
			pos.Value(i, 0), pos.Value(i, 1), pos.Value(i, 2), r, c[0], c[1], c[2]); err != nil {
			return err
		}
	}
	return nil
}
