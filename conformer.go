/*
 * conformer.go, part of rotagen.
 *
 *
 * Copyright 2024 Raul Mera <rmeraa{at}academicosDOTutaDOTcl>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package rotagen

import (
	"fmt"
	"strings"

	v3 "github.com/rmera/rotagen/v3"
)

// Conformer is one discrete variant of a residue: its backbone or one side chain
// (with a given protonation state). It owns its atoms and their coordinates.
type Conformer struct {
	Type       string //residue name + variant code, i.e. "GLU01", "GLUBK"
	History    History
	Occupancy  float64
	Determined bool //false if Occupancy has not been determined
	Keep       bool
	Index      int //global index, assigned by Protein.Serialize. -1 before that.

	atoms  []*Atom
	coords *v3.Matrix
	res    *Residue
	blob   *Blob
}

// NewConformer returns a conformer of type ctype with the given atoms and
// coordinates, where the ith vector of coords belongs to the ith atom. The conformer takes
// ownership of both atoms and coordinates. It panics if their sizes don't match.
func NewConformer(ctype string, atoms []*Atom, coords *v3.Matrix) *Conformer {
	if coords == nil {
		coords = v3.Zeros(len(atoms))
	}
	if coords.NVecs() != len(atoms) {
		panic(ErrCoordMismatch)
	}
	C := &Conformer{Type: strings.TrimSpace(ctype), atoms: atoms, coords: coords, Keep: true, Index: -1}
	for i, a := range atoms {
		a.conf = C
		a.index = i
	}
	return C
}

// Len returns the number of atoms in the conformer.
func (C *Conformer) Len() int { return len(C.atoms) }

// Atom returns the ith atom of the conformer.
func (C *Conformer) Atom(i int) *Atom {
	if i < 0 || i >= len(C.atoms) {
		panic(ErrAtomOutOfRange)
	}
	return C.atoms[i]
}

// Atoms returns the atoms of the conformer. The slice should not be modified.
func (C *Conformer) Atoms() []*Atom { return C.atoms }

// AtomByName returns the atom with the given name, or nil.
func (C *Conformer) AtomByName(name string) *Atom {
	for _, a := range C.atoms {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Coords returns the coordinates of the conformer. They must not be modified
// directly; use SetCoord or SetVecs, or call Touch after modifying them.
func (C *Conformer) Coords() *v3.Matrix { return C.coords }

// SetCoord sets the coordinates of the ith atom to the first vector of coord.
func (C *Conformer) SetCoord(i int, coord *v3.Matrix) {
	if i < 0 || i >= len(C.atoms) {
		panic(ErrAtomOutOfRange)
	}
	C.coords.SetRow(i, []float64{coord.At(0, 0), coord.At(0, 1), coord.At(0, 2)})
	C.blob = nil
}

// SetVecs sets the coordinates of the atoms with the indexes in list to the vectors of coords.
func (C *Conformer) SetVecs(coords *v3.Matrix, list []int) {
	C.coords.SetVecs(coords, list)
	C.blob = nil
}

// Touch invalidates the cached bounding volume. It needs to be called after
// the coordinates or the radii of the atoms are changed by other means.
func (C *Conformer) Touch() { C.blob = nil }

// Residue returns the residue that owns the conformer, or nil.
func (C *Conformer) Residue() *Residue { return C.res }

// IsBackbone returns true if the conformer is of a backbone type.
func (C *Conformer) IsBackbone() bool {
	return strings.HasSuffix(C.Type, BackboneCode)
}

// BackboneCode is the variant code of backbone conformer types.
const BackboneCode = "BK"

// Filter removes the atoms for which keep returns false. Connectivity of the
// conformer is reset.
func (C *Conformer) Filter(keep func(*Atom) bool) {
	atoms := make([]*Atom, 0, len(C.atoms))
	idx := make([]int, 0, len(C.atoms))
	for i, a := range C.atoms {
		if keep(a) {
			atoms = append(atoms, a)
			idx = append(idx, i)
		}
	}
	if len(atoms) == len(C.atoms) {
		return
	}
	coords := v3.Zeros(len(idx))
	if len(idx) > 0 {
		coords.SomeVecs(C.coords, idx)
	}
	C.atoms = atoms
	C.coords = coords
	for i, a := range C.atoms {
		a.index = i
	}
	C.ResetConnect()
	C.blob = nil
}

// ResetConnect empties the connectivity lists of every atom in the conformer.
func (C *Conformer) ResetConnect() {
	for _, a := range C.atoms {
		a.resetConnect()
	}
}

// Clone returns a deep copy of the conformer. Bonds between atoms of C are
// remapped to the new atoms, bonds to atoms in other conformers are kept,
// and the 1-3 and 1-4 lists are left empty, as they need to be rebuilt.
// The clone doesn't belong to any residue until it is added to one.
func (C *Conformer) Clone() *Conformer {
	atoms := make([]*Atom, len(C.atoms))
	for i, a := range C.atoms {
		atoms[i] = a.Copy()
	}
	N := NewConformer(C.Type, atoms, C.coords.Clone())
	N.History = C.History
	N.Occupancy = C.Occupancy
	N.Determined = C.Determined
	N.Keep = C.Keep
	for i, a := range C.atoms {
		if len(a.Connect12) == 0 {
			continue
		}
		c12 := make([]*Atom, 0, len(a.Connect12))
		for _, b := range a.Connect12 {
			if b.conf == C {
				c12 = append(c12, atoms[b.index])
			} else {
				c12 = append(c12, b)
			}
		}
		atoms[i].Connect12 = c12
	}
	return N
}

// ID returns a string that identifies the conformer, for messages.
func (C *Conformer) ID() string {
	if C.res == nil {
		return fmt.Sprintf("%s_%s", C.Type, C.History)
	}
	return fmt.Sprintf("%s%s_%s", C.Type, C.res.ID(), C.History)
}

func (C *Conformer) String() string { return C.ID() }
