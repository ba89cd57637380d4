/*
 * fixture.go, part of rotagen.
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

// Package fixture builds small synthetic proteins and the matching topology,
// for the tests of rotagen and its sub-packages.
package fixture

import (
	"fmt"

	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/top"
	v3 "github.com/rmera/rotagen/v3"
)

// Spacing is the distance, in A, between the N atoms of consecutive residues.
const Spacing = 3.8

type atomData struct {
	name, element, parent string
	charge                float64
}

type radius struct {
	rvdw, evdw float64
}

var radii = map[string]radius{
	"C": {1.908, 0.086},
	"N": {1.824, 0.170},
	"O": {1.661, 0.210},
	"S": {2.000, 0.250},
	"H": {1.100, 0.016},
}

var backbone = []atomData{{"N", "N", "", -0.35}, {"CA", "C", "N", 0.1}, {"C", "C", "CA", 0.55}, {"O", "O", "C", -0.55}}

var backbonePos = [][3]float64{{0, 0, 0}, {1.2, 0.85, 0}, {2.5, 0.3, 0}, {2.6, -0.9, 0}}

// side chains by conformer type. The parent of each atom is the atom it grows from.
var sidechains = map[string][]atomData{
	"SER01": {{"CB", "C", "CA", 0.0}, {"OG", "O", "CB", -0.49}, {"HG", "H", "OG", 0.49}},
	"MET01": {{"CB", "C", "CA", 0.0}, {"CG", "C", "CB", 0.0}, {"SD", "S", "CG", 0.0}, {"CE", "C", "SD", 0.0}},
	"LYS01": {{"CB", "C", "CA", 0.0}, {"CG", "C", "CB", 0.0}, {"CD", "C", "CG", 0.0}, {"CE", "C", "CD", 0.0},
		{"NZ", "N", "CE", -0.3}, {"HZ1", "H", "NZ", 0.3}},
	"ASP01": {{"CB", "C", "CA", 0.0}, {"CG", "C", "CB", 0.55}, {"OD1", "O", "CG", -0.5},
		{"OD2", "O", "CG", -0.5}, {"HD2", "H", "OD2", 0.45}},
	"ASP-1": {{"CB", "C", "CA", 0.0}, {"CG", "C", "CB", 0.55}, {"OD1", "O", "CG", -0.75}, {"OD2", "O", "CG", -0.75}},
}

var conflists = map[string][]string{
	"GLY": {"GLYBK"},
	"SER": {"SERBK", "SER01"},
	"MET": {"METBK", "MET01"},
	"LYS": {"LYSBK", "LYS01"},
	"ASP": {"ASPBK", "ASP01", "ASP-1", "ASPDM"},
}

var axes = map[string][][2]string{
	"SER": {{"CA", "CB"}},
	"MET": {{"CA", "CB"}, {"CB", "CG"}},
	"LYS": {{"CA", "CB"}, {"CB", "CG"}},
	"ASP": {{"CA", "CB"}},
}

// Topology returns the topology of the fixture residues: GLY, SER, MET, LYS
// and ASP. ASP has a neutral (ASP01) and an ionized (ASP-1) type, and a dummy
// type (ASPDM) with no atoms. OD1 and OD2 of ASP are equivalent.
func Topology() *top.DB {
	T := top.NewDB()
	for name, list := range conflists {
		hasSC := len(list) > 1
		bk := name + "BK"
		T.AddConnect(bk, "N", "sp2", rotagen.LigandMark, "CA", "H")
		if hasSC {
			T.AddConnect(bk, "CA", "sp3", "N", "C", "CB")
		} else {
			T.AddConnect(bk, "CA", "sp3", "N", "C")
		}
		T.AddConnect(bk, "C", "sp2", "CA", "O", rotagen.LigandMark)
		T.AddConnect(bk, "O", "sp2", "C")
		for _, a := range backbone {
			r := radii[a.element]
			T.AddRadius(bk, a.name, 1.5, r.rvdw, r.evdw)
		}
		for _, ct := range list[1:] {
			addSideChain(T, ct, sidechains[ct])
		}
		T.SetConfList(name, list...)
		T.AddRotate(name, axes[name]...)
	}
	T.AddSwap("ASP", [2]string{"OD1", "OD2"})
	return T
}

func addSideChain(T *top.DB, ctype string, sc []atomData) {
	for _, a := range sc {
		partners := []string{a.parent}
		for _, b := range sc {
			if b.parent == a.name {
				partners = append(partners, b.name)
			}
		}
		hyb := "sp3"
		if a.element == "H" {
			hyb = "s"
		}
		T.AddConnect(ctype, a.name, hyb, partners...)
		r := radii[a.element]
		T.AddRadius(ctype, a.name, 1.5, r.rvdw, r.evdw)
	}
}

// Residue builds the residue name with its backbone and, except for GLY, one
// side chain conformer of the first side chain type, with its N atom at (x, 0, 0).
// Side chains grow along +z in a zig-zag. Radius parameters are those of the fixture topology.
func Residue(name, chain string, seq int, x float64) *rotagen.Residue {
	list, ok := conflists[name]
	if !ok {
		panic(fmt.Sprintf("fixture: unknown residue %s", name))
	}
	pos := make(map[string][3]float64)
	bkpos := make([][3]float64, len(backbone))
	for i, a := range backbone {
		p := backbonePos[i]
		bkpos[i] = [3]float64{p[0] + x, p[1], p[2]}
		pos[a.name] = bkpos[i]
	}
	R := rotagen.NewResidue(name, chain, seq, "", build(list[0], backbone, bkpos))
	if len(list) == 1 {
		return R
	}
	sc := sidechains[list[1]]
	scpos := make([][3]float64, len(sc))
	depth := make(map[string]int)
	children := make(map[string]int)
	for i, a := range sc {
		p := pos[a.parent]
		var s [3]float64
		switch {
		case a.element == "H":
			s = [3]float64{0.96, 0, 0}
		case a.parent == "CA":
			s = [3]float64{0, 0.5, 1.43}
		case children[a.parent] > 0:
			s = [3]float64{-1.05, -0.4, 0.8}
		default:
			sign := 1.0
			if depth[a.parent]%2 == 1 {
				sign = -1
			}
			s = [3]float64{0, -sign * 0.8, 1.3}
		}
		children[a.parent]++
		depth[a.name] = depth[a.parent] + 1
		scpos[i] = [3]float64{p[0] + s[0], p[1] + s[1], p[2] + s[2]}
		pos[a.name] = scpos[i]
	}
	R.Add(build(list[1], sc, scpos))
	return R
}

func build(ctype string, data []atomData, pos [][3]float64) *rotagen.Conformer {
	atoms := make([]*rotagen.Atom, len(data))
	coords := v3.Zeros(len(data))
	for i, a := range data {
		atoms[i] = rotagen.NewAtom(a.name, a.element, a.charge)
		r := radii[a.element]
		atoms[i].RBound = 1.5
		atoms[i].RVdw = r.rvdw
		atoms[i].EVdw = r.evdw
		coords.SetRow(i, pos[i][:])
	}
	return rotagen.NewConformer(ctype, atoms, coords)
}

// Protein builds a single-chain protein with the given residues, separated by Spacing.
func Protein(names ...string) *rotagen.Protein {
	res := make([]*rotagen.Residue, len(names))
	for i, n := range names {
		res[i] = Residue(n, "A", i+1, float64(i)*Spacing)
	}
	return rotagen.NewProtein(res...)
}

// Connected builds the protein with Protein and its connectivity.
func Connected(T rotagen.Topology, names ...string) *rotagen.Protein {
	P := Protein(names...)
	rotagen.Connect(P, T, nil)
	return P
}

// Place builds a conformer of type ctype with the given atoms at the given positions.
// Radius parameters are set by element. It is meant for tests that need a specific geometry.
func Place(ctype string, names, elements []string, charges []float64, pos [][3]float64) *rotagen.Conformer {
	data := make([]atomData, len(names))
	for i := range names {
		data[i] = atomData{name: names[i], element: elements[i], charge: charges[i]}
	}
	return build(ctype, data, pos)
}
