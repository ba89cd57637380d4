/*
 * graph_test.go, part of rotagen.
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

package chemgraph

import (
	"testing"

	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/internal/fixture"
)

func atomNames(atoms []*rotagen.Atom) []string {
	ret := make([]string, len(atoms))
	for i, a := range atoms {
		ret[i] = a.Name
	}
	return ret
}

func TestAffected(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Connected(T, "LYS", "GLY")
	lys := P.Residues[0]
	sc := lys.Confs[1]
	ca := lys.Confs[0].AtomByName("CA")
	cb := sc.AtomByName("CB")
	cg := sc.AtomByName("CG")
	aff := Affected(ca, cb, false)
	want := []string{"CG", "CD", "CE", "NZ"}
	got := atomNames(aff)
	if len(got) != len(want) {
		Te.Fatalf("wrong affected atoms %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			Te.Errorf("wrong affected atoms %v, want %v", got, want)
			break
		}
	}
	withH := Affected(ca, cb, true)
	if len(withH) != 5 || withH[len(withH)-1].Name != "HZ1" {
		Te.Errorf("the hydrogen should ride along: %v", atomNames(withH))
	}
	//second axis: CB is not moved
	aff2 := Affected(cb, cg, false)
	for _, a := range aff2 {
		if a == cb || a == cg || a.Conformer() != sc {
			Te.Errorf("atom %s should not be affected", a.ID())
		}
	}
	if len(aff2) != 3 {
		Te.Errorf("expected 3 atoms, got %v", atomNames(aff2))
	}
}

func TestGraph(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Connected(T, "SER", "SER")
	res := P.Residues[0]
	res.Add(res.Confs[1].Clone())
	rotagen.Connect(P, T, nil)
	g := FromConformer(res.Confs[2])
	//side chain (3 atoms) plus backbone (4), never the other side chain conformer.
	if n := g.Nodes().Len(); n != 7 {
		Te.Errorf("expected 7 nodes, got %d", n)
	}
	ca := g.AtomNode(res.Confs[0].AtomByName("CA"))
	cb := g.AtomNode(res.Confs[2].AtomByName("CB"))
	if !g.HasEdgeBetween(ca.ID(), cb.ID()) {
		Te.Errorf("CA-CB bond missing")
	}
	if g.AtomNode(res.Confs[1].AtomByName("CB")) != nil {
		Te.Errorf("atoms of other conformers should not be in the graph")
	}
}
