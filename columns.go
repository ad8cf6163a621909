/*
 * columns.go, part of goexport.
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
	"strconv"
	"strings"
)

// Column is one resolved output column: a logical name ("Position.X"), the
// per-particle property it draws from, and which component of that property.
// Columns are resolved once per job, against the first frame, and rebound to
// each later frame with bindColumns.
type Column struct {
	Name string
	Prop string
	Comp int
	kind Kind
}

// IsInt reports whether the column carries integer values, which some
// writers emit without a decimal point.
func (C *Column) IsInt() bool {
	return C.kind == Int
}

// Field is a Column bound to one frame's PropertySet, ready to be read.
type Field struct {
	Column
	prop *Property
}

// Value returns the column's value for particle i.
func (F *Field) Value(i int) float64 {
	return F.prop.Value(i, F.Comp)
}

// Int returns the column's value for particle i as an int. Only valid when
// IsInt is true.
func (F *Field) Int(i int) int {
	return F.prop.Int(i)
}

// splitColumn separates a logical column name into the property name and the
// component index: "Position.X" is component 0 of "Position", "Velocity.2"
// component 2 of "Velocity". A name without a recognized component suffix is
// component 0 of the whole name.
func splitColumn(name string) (string, int) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return name, 0
	}
	switch suffix := name[i+1:]; suffix {
	case "X":
		return name[:i], 0
	case "Y":
		return name[:i], 1
	case "Z":
		return name[:i], 2
	default:
		if n, err := strconv.Atoi(suffix); err == nil && n >= 0 {
			return name[:i], n
		}
	}
	return name, 0
}

// ResolveColumns maps the requested column names onto the writer's column
// capability and the given frame's properties, preserving the requested
// order exactly. An empty request falls back to the writer's default column
// list. The writer's mandatory columns are checked for availability even
// when not requested. Fails with *UnsupportedColumnError for columns the
// format does not understand and *UnknownPropertyError for columns whose
// property (or component) the frame doesn't have.
func ResolveColumns(requested []string, ps *PropertySet, w Writer) ([]Column, error) {
	names := requested
	if len(names) == 0 {
		names = w.DefaultColumns()
	}
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		if !w.Accepts(name) {
			return nil, &UnsupportedColumnError{Column: name, Format: w.Format()}
		}
		base, comp := splitColumn(name)
		p := ps.Prop(base)
		if p == nil {
			return nil, &UnknownPropertyError{Column: name, Property: base, Frame: -1}
		}
		if comp >= p.Components() {
			return nil, &UnknownPropertyError{Column: name, Property: base, Frame: -1}
		}
		cols = append(cols, Column{Name: name, Prop: base, Comp: comp, kind: p.Kind()})
	}
	for _, name := range w.MandatoryColumns() {
		base, _ := splitColumn(name)
		if ps.Prop(base) == nil {
			return nil, &UnknownPropertyError{Column: name, Property: base, Frame: -1}
		}
	}
	return cols, nil
}

// bindColumns binds a resolved column list to one frame. Later frames are
// expected, but not required, to expose the same properties as the frame the
// columns were resolved against; a frame missing one of them, or missing one
// of the writer's mandatory columns, fails with *UnknownPropertyError naming
// the frame, which aborts the whole job. The mandatory re-check is what lets
// the writers dereference their required properties without nil checks.
func bindColumns(cols []Column, w Writer, ps *PropertySet, frame int) ([]Field, error) {
	for _, name := range w.MandatoryColumns() {
		base, comp := splitColumn(name)
		p := ps.Prop(base)
		if p == nil || comp >= p.Components() {
			return nil, &UnknownPropertyError{Column: name, Property: base, Frame: frame}
		}
	}
	fields := make([]Field, len(cols))
	for k, c := range cols {
		p := ps.Prop(c.Prop)
		if p == nil || c.Comp >= p.Components() {
			return nil, &UnknownPropertyError{Column: c.Name, Property: c.Prop, Frame: frame}
		}
		fields[k] = Field{Column: c, prop: p}
	}
	return fields, nil
}
