/*
 * ligands.go, part of rotagen.
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

package top

import "github.com/rmera/rotagen"

// ResiduePairRule is a ligand rule for a given pair of residues.
type ResiduePairRule struct {
	Res1 string
	Res2 string
	Rule rotagen.LigandRule
}

// DefaultLigandRules are the bonds between residues that are detected
// with specific distance windows: disulfide bridges and heme ligations.
var DefaultLigandRules = []ResiduePairRule{
	{"CYD", "CYD", rotagen.LigandRule{Atom1: "SG", Atom2: "SG", Distance: 2.03, Tolerance: 0.90}},
	{"CYL", "HEC", rotagen.LigandRule{Atom1: "SG", Atom2: "CA*", Distance: 1.90, Tolerance: 1.00}},
	{"CYL", "HEM", rotagen.LigandRule{Atom1: "SG", Atom2: "CA*", Distance: 1.90, Tolerance: 1.00}},
	{"HIL", "HEM", rotagen.LigandRule{Atom1: "NE2", Atom2: "FE", Distance: 2.10, Tolerance: 0.70}},
	{"HIL", "HEA", rotagen.LigandRule{Atom1: "NE2", Atom2: "FE", Distance: 2.10, Tolerance: 0.70}},
	{"HIL", "HEB", rotagen.LigandRule{Atom1: "NE2", Atom2: "FE", Distance: 2.10, Tolerance: 0.70}},
	{"HIL", "HEC", rotagen.LigandRule{Atom1: "NE2", Atom2: "FE", Distance: 2.10, Tolerance: 0.70}},
	{"MEL", "HEM", rotagen.LigandRule{Atom1: "SD", Atom2: "FE", Distance: 2.30, Tolerance: 0.50}},
	{"MEL", "HEA", rotagen.LigandRule{Atom1: "SD", Atom2: "FE", Distance: 2.30, Tolerance: 0.50}},
	{"MEL", "HEB", rotagen.LigandRule{Atom1: "SD", Atom2: "FE", Distance: 2.30, Tolerance: 0.50}},
	{"MEL", "HEC", rotagen.LigandRule{Atom1: "SD", Atom2: "FE", Distance: 2.30, Tolerance: 0.50}},
	{"PAA", "HEM", rotagen.LigandRule{Atom1: "CAA", Atom2: "C2A", Distance: 1.60, Tolerance: 0.50}},
	{"PDD", "HEM", rotagen.LigandRule{Atom1: "CAD", Atom2: "C3D", Distance: 1.60, Tolerance: 0.50}},
	{"PAA", "HEA", rotagen.LigandRule{Atom1: "CAA", Atom2: "C2A", Distance: 1.60, Tolerance: 0.50}},
	{"PDD", "HEA", rotagen.LigandRule{Atom1: "CAD", Atom2: "C3D", Distance: 1.60, Tolerance: 0.50}},
	{"PAA", "HEB", rotagen.LigandRule{Atom1: "CAA", Atom2: "C2A", Distance: 1.60, Tolerance: 0.50}},
	{"PDD", "HEB", rotagen.LigandRule{Atom1: "CAD", Atom2: "C3D", Distance: 1.60, Tolerance: 0.50}},
	{"PAA", "HEC", rotagen.LigandRule{Atom1: "CAA", Atom2: "C2A", Distance: 1.60, Tolerance: 0.50}},
	{"PDD", "HEC", rotagen.LigandRule{Atom1: "CAD", Atom2: "C3D", Distance: 1.60, Tolerance: 0.50}},
}
