/*
 * tables.go, part of rotagen.
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

import (
	"sort"

	"github.com/rmera/rotagen"
)

// Tables is a flat representation of a DB, suitable for serialization.
type Tables struct {
	Connect  []ConnectEntry         `json:"connect"`
	Radius   []RadiusEntry          `json:"radius"`
	Rotate   map[string][][2]string `json:"rotate,omitempty"`
	Swap     map[string][][2]string `json:"swap,omitempty"`
	ConfList map[string][]string    `json:"conflist"`
	Ligands  []LigandEntry          `json:"ligands,omitempty"`
}

// ConnectEntry is the connectivity record of one atom.
type ConnectEntry struct {
	ConfType string   `json:"conftype"`
	Atom     string   `json:"atom"`
	Hybrid   string   `json:"hybrid"`
	Partners []string `json:"partners"`
}

// RadiusEntry contains the radius parameters of one atom.
type RadiusEntry struct {
	ConfType string  `json:"conftype"`
	Atom     string  `json:"atom"`
	RBound   float64 `json:"rbound"`
	RVdw     float64 `json:"rvdw"`
	EVdw     float64 `json:"evdw"`
}

// LigandEntry is a ligand rule for a pair of residues.
type LigandEntry struct {
	Res1      string  `json:"res1"`
	Res2      string  `json:"res2"`
	Atom1     string  `json:"atom1"`
	Atom2     string  `json:"atom2"`
	Distance  float64 `json:"distance"`
	Tolerance float64 `json:"tolerance"`
}

// FromTables returns a DB with the data in T. Ligand rules in T are
// added to (and override) DefaultLigandRules.
func FromTables(T *Tables) *DB {
	D := NewDB()
	for _, v := range T.Connect {
		D.AddConnect(v.ConfType, v.Atom, v.Hybrid, v.Partners...)
	}
	for _, v := range T.Radius {
		D.AddRadius(v.ConfType, v.Atom, v.RBound, v.RVdw, v.EVdw)
	}
	for k, v := range T.Rotate {
		D.AddRotate(k, v...)
	}
	for k, v := range T.Swap {
		D.AddSwap(k, v...)
	}
	for k, v := range T.ConfList {
		D.SetConfList(k, v...)
	}
	for _, v := range T.Ligands {
		D.AddLigandRule(v.Res1, v.Res2, rotagen.LigandRule{Atom1: v.Atom1, Atom2: v.Atom2, Distance: v.Distance, Tolerance: v.Tolerance})
	}
	return D
}

// Tables returns the contents of the DB as a Tables. Entries are sorted by
// conformer type and atom name, so the output is reproducible.
func (D *DB) Tables() *Tables {
	T := &Tables{
		Rotate:   make(map[string][][2]string, len(D.rotate)),
		Swap:     make(map[string][][2]string, len(D.swap)),
		ConfList: make(map[string][]string, len(D.conflist)),
	}
	for k, v := range D.connect {
		T.Connect = append(T.Connect, ConnectEntry{ConfType: k.confType, Atom: k.atom, Hybrid: v.Hybrid, Partners: append([]string(nil), v.Partners...)})
	}
	sort.Slice(T.Connect, func(i, j int) bool {
		a, b := T.Connect[i], T.Connect[j]
		return a.ConfType < b.ConfType || (a.ConfType == b.ConfType && a.Atom < b.Atom)
	})
	for k, v := range D.radius {
		T.Radius = append(T.Radius, RadiusEntry{ConfType: k.confType, Atom: k.atom, RBound: v.RBound, RVdw: v.RVdw, EVdw: v.EVdw})
	}
	sort.Slice(T.Radius, func(i, j int) bool {
		a, b := T.Radius[i], T.Radius[j]
		return a.ConfType < b.ConfType || (a.ConfType == b.ConfType && a.Atom < b.Atom)
	})
	for k, v := range D.rotate {
		T.Rotate[k] = append([][2]string(nil), v...)
	}
	for k, v := range D.swap {
		T.Swap[k] = append([][2]string(nil), v...)
	}
	for k, v := range D.conflist {
		T.ConfList[k] = append([]string(nil), v...)
	}
	for k, v := range D.ligands {
		T.Ligands = append(T.Ligands, LigandEntry{Res1: k[0], Res2: k[1], Atom1: v.Atom1, Atom2: v.Atom2, Distance: v.Distance, Tolerance: v.Tolerance})
	}
	sort.Slice(T.Ligands, func(i, j int) bool {
		a, b := T.Ligands[i], T.Ligands[j]
		return a.Res1 < b.Res1 || (a.Res1 == b.Res1 && a.Res2 < b.Res2)
	})
	return T
}
