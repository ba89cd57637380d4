/*
 * atom.go, part of rotagen.
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

// Atom contains the atomic information of one atom in a conformer. The
// coordinates are not here but in the conformer, at the row given by Index().
type Atom struct {
	Name    string
	Element string
	Charge  float64
	RBound  float64
	RVdw    float64
	EVdw    float64

	//Bonded, 1-3 and 1-4 partners. These do not own the atoms they point to.
	Connect12 []*Atom
	Connect13 []*Atom
	Connect14 []*Atom

	conf  *Conformer
	index int
}

// NewAtom returns an atom with the given name, element and charge.
func NewAtom(name, element string, charge float64) *Atom {
	return &Atom{Name: strings.TrimSpace(name), Element: strings.TrimSpace(element), Charge: charge}
}

// Copy returns a copy of the atom's data, without connectivity and without an owner.
func (A *Atom) Copy() *Atom {
	return &Atom{Name: A.Name, Element: A.Element, Charge: A.Charge, RBound: A.RBound, RVdw: A.RVdw, EVdw: A.EVdw}
}

// Conformer returns the conformer that owns the atom.
func (A *Atom) Conformer() *Conformer { return A.conf }

// Residue returns the residue that owns the atom, or nil.
func (A *Atom) Residue() *Residue {
	if A.conf == nil {
		return nil
	}
	return A.conf.res
}

// Index returns the row of the atom's coordinates in its conformer.
func (A *Atom) Index() int { return A.index }

// Coord returns a copy of the coordinates of the atom.
func (A *Atom) Coord() *v3.Matrix {
	if A.conf == nil {
		panic(ErrNilConformer)
	}
	return A.conf.coords.VecView(A.index).Clone()
}

// Dist2 returns the squared distance between A and B.
func (A *Atom) Dist2(B *Atom) float64 {
	a := A.conf.coords.RawRowView(A.index)
	b := B.conf.coords.RawRowView(B.index)
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dx*dx + dy*dy + dz*dz
}

// IsH returns true if the atom is a hydrogen.
func (A *Atom) IsH() bool {
	if A.Element != "" {
		return strings.EqualFold(A.Element, "H") || strings.EqualFold(A.Element, "D")
	}
	return IsHName(A.Name)
}

// IsHName returns true if the atom name is that of a hydrogen. Leading
// digits are ignored (i.e. "1HB" is a hydrogen).
func IsHName(name string) bool {
	name = strings.TrimLeft(strings.TrimSpace(name), "0123456789")
	return strings.HasPrefix(name, "H")
}

// Bonded returns true if B is in A's 1-2 list.
func (A *Atom) Bonded(B *Atom) bool { return inAtoms(A.Connect12, B) }

// Is13 returns true if B is in A's 1-3 list.
func (A *Atom) Is13(B *Atom) bool { return inAtoms(A.Connect13, B) }

// Is14 returns true if B is in A's 1-4 list.
func (A *Atom) Is14(B *Atom) bool { return inAtoms(A.Connect14, B) }

// ID returns a string that identifies the atom, for messages.
func (A *Atom) ID() string {
	if A.conf == nil {
		return A.Name
	}
	return fmt.Sprintf("%s %s", A.Name, A.conf.ID())
}

func (A *Atom) resetConnect() {
	A.Connect12 = nil
	A.Connect13 = nil
	A.Connect14 = nil
}

func inAtoms(list []*Atom, B *Atom) bool {
	for _, v := range list {
		if v == B {
			return true
		}
	}
	return false
}
