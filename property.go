/*
 * property.go, part of goexport.
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
	"sort"

	v3 "github.com/rmera/gochem/v3"
	"gonum.org/v1/gonum/mat"
)

// Names of the per-particle properties the built-in writers know about.
// The PropertySet itself is name-agnostic; any name can be stored.
const (
	PosName    = "Position"
	VelName    = "Velocity"
	ForceName  = "Force"
	IDName     = "Particle Identifier"
	TypeName   = "Particle Type"
	MolIDName  = "Molecule Identifier"
	ChargeName = "Charge"
	MassName   = "Mass"
	RadiusName = "Radius"
)

// Kind tags the storage type of a per-particle property.
type Kind int

const (
	Int Kind = iota
	Float
	Vector
)

// Property is one named per-particle array. Scalars are stored as []int or
// []float64, 3-component vectors as an Nx3 v3.Matrix. All values are
// addressable as float64 through Value, whatever the kind.
type Property struct {
	name   string
	kind   Kind
	ints   []int
	floats []float64
	vecs   *v3.Matrix
}

// Name returns the property's name.
func (P *Property) Name() string {
	return P.name
}

// Kind returns the property's storage kind.
func (P *Property) Kind() Kind {
	return P.kind
}

// Components returns 3 for vector properties, 1 otherwise.
func (P *Property) Components() int {
	if P.kind == Vector {
		return 3
	}
	return 1
}

// Len returns the number of particles covered by the property.
func (P *Property) Len() int {
	switch P.kind {
	case Int:
		return len(P.ints)
	case Float:
		return len(P.floats)
	default:
		return P.vecs.NVecs()
	}
}

// Value returns component c of the value for particle i, as a float64.
// Panics if i or c are out of bounds, as this is considered a programming
// error (bounds are checked when columns are resolved).
func (P *Property) Value(i, c int) float64 {
	switch P.kind {
	case Int:
		return float64(P.ints[i])
	case Float:
		return P.floats[i]
	default:
		return P.vecs.At(i, c)
	}
}

// Int returns the value for particle i as an int. Panics if the property
// is not of Int kind.
func (P *Property) Int(i int) int {
	if P.kind != Int {
		panic("goexport: Int called on a non-integer property")
	}
	return P.ints[i]
}

// Bond is one bond record: a bond type plus the indexes (0-based, into the
// frame's particle arrays) of the two bonded particles.
type Bond struct {
	Type, A, B int
}

// Cell is the simulation cell: three cell vectors as the rows of a 3x3
// matrix, plus the cell origin.
type Cell struct {
	Vectors *mat.Dense
	Origin  [3]float64
}

// NewCell builds a Cell from 9 floats (3 consecutive vectors) and an origin.
func NewCell(vectors []float64, origin [3]float64) (*Cell, error) {
	if len(vectors) < 9 {
		return nil, fmt.Errorf("goexport: NewCell needs 9 values, got %d", len(vectors))
	}
	return &Cell{Vectors: mat.NewDense(3, 3, vectors[:9]), Origin: origin}, nil
}

// Bounds returns the lower and upper bounds of the cell along each axis,
// using the diagonal of the vector matrix. Only meaningful for orthogonal
// cells, which is what the bound-based formats can represent anyway.
func (C *Cell) Bounds() (lo, hi [3]float64) {
	for i := 0; i < 3; i++ {
		lo[i] = C.Origin[i]
		hi[i] = C.Origin[i] + C.Vectors.At(i, i)
	}
	return lo, hi
}

// PropertySet holds the complete collection of named per-particle arrays for
// one frame, plus the frame metadata some formats need: the simulation cell,
// a table of particle type names, and the bond list. Every array has exactly
// as many entries as the frame has particles, and names are unique.
//
// A PropertySet is filled once, with the Set* methods, and must not be
// modified after it is handed to the export pipeline.
type PropertySet struct {
	natoms    int
	names     []string
	props     map[string]*Property
	cell      *Cell
	typeNames map[int]string
	bonds     []Bond
}

// NewPropertySet returns an empty PropertySet for natoms particles.
func NewPropertySet(natoms int) *PropertySet {
	return &PropertySet{natoms: natoms, props: make(map[string]*Property)}
}

// Len returns the number of particles in the frame.
func (ps *PropertySet) Len() int {
	return ps.natoms
}

func (ps *PropertySet) add(p *Property) error {
	if p.Len() != ps.natoms {
		return fmt.Errorf("goexport: property %q has %d values but the frame has %d particles", p.name, p.Len(), ps.natoms)
	}
	if _, ok := ps.props[p.name]; ok {
		return fmt.Errorf("goexport: property %q already present in the frame", p.name)
	}
	ps.props[p.name] = p
	ps.names = append(ps.names, p.name)
	return nil
}

// SetInts adds an integer scalar property.
func (ps *PropertySet) SetInts(name string, vals []int) error {
	return ps.add(&Property{name: name, kind: Int, ints: vals})
}

// SetFloats adds a float scalar property.
func (ps *PropertySet) SetFloats(name string, vals []float64) error {
	return ps.add(&Property{name: name, kind: Float, floats: vals})
}

// SetVectors adds a 3-component vector property.
func (ps *PropertySet) SetVectors(name string, vecs *v3.Matrix) error {
	return ps.add(&Property{name: name, kind: Vector, vecs: vecs})
}

// Prop returns the named property, or nil if the frame doesn't have it.
func (ps *PropertySet) Prop(name string) *Property {
	return ps.props[name]
}

// Names returns the property names in insertion order.
func (ps *PropertySet) Names() []string {
	return ps.names
}

// SetCell sets the simulation cell.
func (ps *PropertySet) SetCell(c *Cell) {
	ps.cell = c
}

// Cell returns the simulation cell, or nil if none was set.
func (ps *PropertySet) Cell() *Cell {
	return ps.cell
}

// SetTypeNames sets the table mapping particle type ids to display names
// (usually element symbols).
func (ps *PropertySet) SetTypeNames(names map[int]string) {
	ps.typeNames = names
}

// TypeName returns the display name for a particle type id, or the empty
// string if no name is known.
func (ps *PropertySet) TypeName(id int) string {
	return ps.typeNames[id]
}

// SetBonds sets the bond list.
func (ps *PropertySet) SetBonds(bonds []Bond) {
	ps.bonds = bonds
}

// Bonds returns the bond list, which may be nil.
func (ps *PropertySet) Bonds() []Bond {
	return ps.bonds
}

// typeIDs returns the sorted distinct values of the Particle Type property,
// or just {1} when the frame has no type property.
func (ps *PropertySet) typeIDs() []int {
	t := ps.Prop(TypeName)
	if t == nil {
		return []int{1}
	}
	seen := make(map[int]bool)
	var ids []int
	for i := 0; i < t.Len(); i++ {
		v := t.Int(i)
		if !seen[v] {
			seen[v] = true
			ids = append(ids, v)
		}
	}
	sort.Ints(ids)
	return ids
}

// particleType returns the type id of particle i, defaulting to 1 when the
// frame carries no type property.
func (ps *PropertySet) particleType(i int) int {
	if t := ps.Prop(TypeName); t != nil {
		return t.Int(i)
	}
	return 1
}

// BoxBounds returns the lower and upper bounds of the simulation box along
// each axis. If the frame has no cell, the axis-aligned bounding box of the
// Position property is used instead, padded a little so no particle sits
// exactly on the boundary. Returns an error if there is neither cell nor
// positions to derive bounds from.
func (ps *PropertySet) BoxBounds() (lo, hi [3]float64, err error) {
	if ps.cell != nil {
		lo, hi = ps.cell.Bounds()
		return lo, hi, nil
	}
	pos := ps.Prop(PosName)
	if pos == nil || pos.Kind() != Vector || pos.Len() == 0 {
		return lo, hi, fmt.Errorf("goexport: frame has neither a cell nor positions to derive box bounds from")
	}
	const pad = 0.5
	for j := 0; j < 3; j++ {
		lo[j] = pos.Value(0, j)
		hi[j] = pos.Value(0, j)
	}
	for i := 1; i < pos.Len(); i++ {
		for j := 0; j < 3; j++ {
			v := pos.Value(i, j)
			if v < lo[j] {
				lo[j] = v
			}
			if v > hi[j] {
				hi[j] = v
			}
		}
	}
	for j := 0; j < 3; j++ {
		lo[j] -= pad
		hi[j] += pad
	}
	return lo, hi, nil
}

// boxVectors returns the cell vectors as 9 floats (3 consecutive rows),
// deriving an orthogonal cell from BoxBounds when no cell is set.
func (ps *PropertySet) boxVectors() (vecs [9]float64, origin [3]float64, err error) {
	if ps.cell != nil {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				vecs[3*i+j] = ps.cell.Vectors.At(i, j)
			}
		}
		return vecs, ps.cell.Origin, nil
	}
	lo, hi, err := ps.BoxBounds()
	if err != nil {
		return vecs, origin, err
	}
	vecs[0] = hi[0] - lo[0]
	vecs[4] = hi[1] - lo[1]
	vecs[8] = hi[2] - lo[2]
	return vecs, lo, nil
}
