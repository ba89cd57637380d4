/*
 * db.go, part of rotagen.
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
	"strings"

	"github.com/rmera/rotagen"
)

type atomKey struct {
	confType string
	atom     string
}

// DB is a residue topology database. It is not safe to modify it concurrently,
// but, once filled, it can be shared by any number of readers.
type DB struct {
	connect  map[atomKey]*rotagen.ConnectRecord
	radius   map[atomKey]*rotagen.RadiusRecord
	rotate   map[string][][2]string
	swap     map[string][][2]string
	conflist map[string][]string
	ligands  map[[2]string]*rotagen.LigandRule
	natoms   map[string]int //atoms with a connectivity record, per conformer type
}

// NewDB returns an empty database, with the ligand rules in DefaultLigandRules.
func NewDB() *DB {
	D := &DB{
		connect:  make(map[atomKey]*rotagen.ConnectRecord),
		radius:   make(map[atomKey]*rotagen.RadiusRecord),
		rotate:   make(map[string][][2]string),
		swap:     make(map[string][][2]string),
		conflist: make(map[string][]string),
		ligands:  make(map[[2]string]*rotagen.LigandRule),
		natoms:   make(map[string]int),
	}
	for _, v := range DefaultLigandRules {
		D.AddLigandRule(v.Res1, v.Res2, v.Rule)
	}
	return D
}

func key(confType, atom string) atomKey {
	return atomKey{strings.TrimSpace(confType), strings.TrimSpace(atom)}
}

func trimPair(p [2]string) [2]string {
	return [2]string{strings.TrimSpace(p[0]), strings.TrimSpace(p[1])}
}

// AddConnect adds the connectivity record for the atom in conformers of type confType.
func (D *DB) AddConnect(confType, atom, hybrid string, partners ...string) {
	k := key(confType, atom)
	if _, ok := D.connect[k]; !ok {
		D.natoms[k.confType]++
	}
	p := make([]string, len(partners))
	for i, v := range partners {
		p[i] = strings.TrimSpace(v)
	}
	D.connect[k] = &rotagen.ConnectRecord{Hybrid: hybrid, Partners: p}
}

// AddRadius adds the radius parameters for the atom in conformers of type confType.
func (D *DB) AddRadius(confType, atom string, rbound, rvdw, evdw float64) {
	D.radius[key(confType, atom)] = &rotagen.RadiusRecord{RBound: rbound, RVdw: rvdw, EVdw: evdw}
}

// AddRotate adds rotatable bonds to the residue.
func (D *DB) AddRotate(res string, axes ...[2]string) {
	res = strings.TrimSpace(res)
	for _, v := range axes {
		D.rotate[res] = append(D.rotate[res], trimPair(v))
	}
}

// AddSwap adds pairs of equivalent atoms to the residue.
func (D *DB) AddSwap(res string, pairs ...[2]string) {
	res = strings.TrimSpace(res)
	for _, v := range pairs {
		D.swap[res] = append(D.swap[res], trimPair(v))
	}
}

// SetConfList sets the conformer types of the residue, in canonical order.
func (D *DB) SetConfList(res string, types ...string) {
	t := make([]string, len(types))
	for i, v := range types {
		t[i] = strings.TrimSpace(v)
	}
	D.conflist[strings.TrimSpace(res)] = t
}

// AddLigandRule adds a rule for bonds between residues res1 and res2.
// rule.Atom1 belongs to res1.
func (D *DB) AddLigandRule(res1, res2 string, rule rotagen.LigandRule) {
	r := rule
	D.ligands[[2]string{strings.TrimSpace(res1), strings.TrimSpace(res2)}] = &r
}

// Connect returns the connectivity record of the atom.
func (D *DB) Connect(atomName, confType string) (*rotagen.ConnectRecord, bool) {
	r, ok := D.connect[key(confType, atomName)]
	return r, ok
}

// Radius returns the radius parameters of the atom.
func (D *DB) Radius(confType, atomName string) (*rotagen.RadiusRecord, bool) {
	r, ok := D.radius[key(confType, atomName)]
	return r, ok
}

// RotateAxes returns the rotatable bonds of the residue.
func (D *DB) RotateAxes(resName string) [][2]string {
	return D.rotate[strings.TrimSpace(resName)]
}

// SwapPairs returns the equivalent atom pairs of the residue.
func (D *DB) SwapPairs(resName string) [][2]string {
	return D.swap[strings.TrimSpace(resName)]
}

// ConfList returns the conformer types of the residue.
func (D *DB) ConfList(resName string) []string {
	return D.conflist[strings.TrimSpace(resName)]
}

// LigandRule returns the rule for bonds between res1 and res2. If the rule
// was given for the pair (res2, res1) the atoms are swapped, so Atom1 always belongs to res1.
func (D *DB) LigandRule(res1, res2 string) (*rotagen.LigandRule, bool) {
	res1, res2 = strings.TrimSpace(res1), strings.TrimSpace(res2)
	if r, ok := D.ligands[[2]string{res1, res2}]; ok {
		return r, true
	}
	if r, ok := D.ligands[[2]string{res2, res1}]; ok {
		return &rotagen.LigandRule{Atom1: r.Atom2, Atom2: r.Atom1, Distance: r.Distance, Tolerance: r.Tolerance}, true
	}
	return nil, false
}

// Defined returns true if at least one atom has a connectivity record for the conformer type.
func (D *DB) Defined(confType string) bool {
	return D.natoms[strings.TrimSpace(confType)] > 0
}
