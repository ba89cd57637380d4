/*
 * protein.go, part of rotagen.
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

// Protein is an ordered set of residues. The order defines the global
// conformer indexes.
type Protein struct {
	Residues []*Residue
}

// NewProtein returns a protein with the given residues.
func NewProtein(res ...*Residue) *Protein {
	return &Protein{Residues: res}
}

// Len returns the number of residues.
func (P *Protein) Len() int { return len(P.Residues) }

// Serialize assigns the global index to every conformer, in canonical order,
// and returns the number of conformers.
func (P *Protein) Serialize() int {
	n := 0
	for _, r := range P.Residues {
		for _, c := range r.Confs {
			c.Index = n
			n++
		}
	}
	return n
}

// Conformers returns all the conformers of the protein, in canonical order.
func (P *Protein) Conformers() []*Conformer {
	ret := make([]*Conformer, 0, len(P.Residues))
	for _, r := range P.Residues {
		ret = append(ret, r.Confs...)
	}
	return ret
}

// Backbones returns the backbone conformer of each residue.
func (P *Protein) Backbones() []*Conformer {
	ret := make([]*Conformer, len(P.Residues))
	for i, r := range P.Residues {
		ret[i] = r.Confs[0]
	}
	return ret
}

// NConformers returns the total number of side chain conformers.
func (P *Protein) NConformers() int {
	n := 0
	for _, r := range P.Residues {
		n += r.NSideChains()
	}
	return n
}

// Microstate assigns a conformer (by its index within the residue) to each
// residue (by its index within the protein).
type Microstate []int

// Equal returns true if both microstates are identical.
func (M Microstate) Equal(N Microstate) bool {
	if len(M) != len(N) {
		return false
	}
	for i, v := range M {
		if N[i] != v {
			return false
		}
	}
	return true
}

// Copy returns a copy of the microstate.
func (M Microstate) Copy() Microstate {
	ret := make(Microstate, len(M))
	copy(ret, M)
	return ret
}
