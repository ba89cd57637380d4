/*
 * residue.go, part of rotagen.
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

import "fmt"

// Residue is a residue with all its conformers. Confs[0] is always the backbone
// conformer, which may have no atoms but is never removed.
type Residue struct {
	Name  string
	Chain string
	Seq   int
	ICode string
	Confs []*Conformer
}

// NewResidue returns a residue with the backbone conformer bk and the side chain conformers sc.
func NewResidue(name, chain string, seq int, icode string, bk *Conformer, sc ...*Conformer) *Residue {
	if bk == nil {
		panic(ErrNoBackbone)
	}
	R := &Residue{Name: name, Chain: chain, Seq: seq, ICode: icode}
	R.Confs = append(R.Confs, bk)
	bk.res = R
	R.Add(sc...)
	return R
}

// Add appends conformers to the residue.
func (R *Residue) Add(confs ...*Conformer) {
	for _, c := range confs {
		if c == nil {
			panic(ErrNilConformer)
		}
		c.res = R
		R.Confs = append(R.Confs, c)
	}
}

// SetConfs replaces the conformers of the residue. confs[0] must be the current backbone.
func (R *Residue) SetConfs(confs []*Conformer) {
	if len(confs) == 0 {
		panic(ErrNoBackbone)
	}
	if len(R.Confs) > 0 && confs[0] != R.Confs[0] {
		panic(ErrBackboneChange)
	}
	for _, c := range confs {
		c.res = R
	}
	R.Confs = confs
}

// Backbone returns the backbone conformer.
func (R *Residue) Backbone() *Conformer { return R.Confs[0] }

// SideChains returns the side chain conformers. The slice shares storage with R.Confs.
func (R *Residue) SideChains() []*Conformer { return R.Confs[1:] }

// NSideChains returns the number of side chain conformers.
func (R *Residue) NSideChains() int { return len(R.Confs) - 1 }

// Renumber assigns serial numbers to the side chain conformers, counting
// separately each combination of type and origin.
func (R *Residue) Renumber() {
	type key struct {
		t string
		o Stage
	}
	counter := make(map[key]int)
	for _, c := range R.SideChains() {
		k := key{c.Type, c.History.Origin}
		c.History.Serial = counter[k]
		counter[k]++
	}
}

// ID returns a string that identifies the residue, i.e. "A0035_".
func (R *Residue) ID() string {
	ic := R.ICode
	if ic == "" {
		ic = "_"
	}
	return fmt.Sprintf("%s%04d%s", R.Chain, R.Seq, ic)
}

// Label returns the name of the residue followed by its ID, i.e. "GLUA0035_".
func (R *Residue) Label() string {
	return R.Name + R.ID()
}
