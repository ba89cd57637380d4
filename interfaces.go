/*
 * interfaces.go, part of rotagen.
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

// ConnectRecord is the connectivity record for an atom in a given conformer type.
type ConnectRecord struct {
	Hybrid   string   //orbital hybridization, i.e. "sp3", "sp2", "ion"
	Partners []string //names of the bonded atoms. "?" marks a bond to an atom outside the residue.
}

// Ligated returns true if the atom can be bonded to an atom outside its residue.
func (C *ConnectRecord) Ligated() bool {
	for _, v := range C.Partners {
		if v == LigandMark {
			return true
		}
	}
	return false
}

// LigandMark is the partner name that indicates a bond to another residue.
const LigandMark = "?"

// RadiusRecord contains the radius parameters for an atom in a given conformer type.
type RadiusRecord struct {
	RBound float64
	RVdw   float64
	EVdw   float64
}

// LigandRule describes a bond between two residues. Atom1 belongs to
// the first residue of the pair it was requested for. A '*' in the atom
// names matches any one character.
type LigandRule struct {
	Atom1     string
	Atom2     string
	Distance  float64
	Tolerance float64
}

// Matches returns true if the names and the distance d fit the rule.
func (L *LigandRule) Matches(name1, name2 string, d float64) bool {
	return MatchName(name1, L.Atom1) && MatchName(name2, L.Atom2) &&
		d >= L.Distance-L.Tolerance && d <= L.Distance+L.Tolerance
}

// Topology is a read-only lookup service with the residue/atom parameters.
// It may be shared freely between goroutines.
type Topology interface {
	//Connect returns the connectivity record for the atom atomName in conformers of type confType.
	Connect(atomName, confType string) (*ConnectRecord, bool)

	//Radius returns the radius parameters of the atom atomName in conformers of type confType.
	Radius(confType, atomName string) (*RadiusRecord, bool)

	//RotateAxes returns the rotatable bonds of the residue. The second atom of each pair is the pivot.
	RotateAxes(resName string) [][2]string

	//SwapPairs returns the pairs of topologically equivalent atoms of the residue.
	SwapPairs(resName string) [][2]string

	//ConfList returns the conformer types of the residue, in canonical order.
	ConfList(resName string) []string

	//LigandRule returns the rule for a bond between residues res1 and res2, if any.
	LigandRule(res1, res2 string) (*LigandRule, bool)

	//Defined returns true if the conformer type has at least one atom (i.e. is not a dummy).
	Defined(confType string) bool
}

// MatchName returns true if name matches pattern. Both need to have the same
// length and '*' in pattern matches any character.
func MatchName(name, pattern string) bool {
	if len(name) != len(pattern) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if pattern[i] != '*' && pattern[i] != name[i] {
			return false
		}
	}
	return true
}
