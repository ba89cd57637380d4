/*
 * rotagen_test.go, part of rotagen.
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

package rotagen_test

import (
	"log"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/internal/fixture"
	v3 "github.com/rmera/rotagen/v3"
)

func names(atoms []*rotagen.Atom) string {
	s := make([]string, len(atoms))
	for i, a := range atoms {
		s[i] = a.Name
	}
	return strings.Join(s, " ")
}

func TestConnect(Te *testing.T) {
	T := fixture.Topology()
	D := rotagen.NewDiagnostics(log.New(os.Stderr, "", 0))
	P := fixture.Protein("SER", "MET", "GLY")
	rotagen.Connect(P, T, D)
	if w := D.Warnings(); len(w) != 0 {
		Te.Errorf("unexpected warnings: %v", w)
	}
	ser := P.Residues[0]
	met := P.Residues[1]
	cb := ser.Confs[1].AtomByName("CB")
	if names(cb.Connect12) != "CA OG" {
		Te.Errorf("wrong 1-2 list for CB: %s", names(cb.Connect12))
	}
	//CA is a backbone atom, so it should see the CB of every side chain
	ca := ser.Confs[0].AtomByName("CA")
	if !ca.Bonded(cb) {
		Te.Errorf("backbone CA not bonded to CB")
	}
	//peptide bond, found by distance
	c := ser.Confs[0].AtomByName("C")
	n := met.Confs[0].AtomByName("N")
	if !c.Bonded(n) || !n.Bonded(c) {
		Te.Errorf("peptide bond not found: %s / %s", names(c.Connect12), names(n.Connect12))
	}
	hg := ser.Confs[1].AtomByName("HG")
	if !hg.Is13(cb) || !cb.Is13(hg) {
		Te.Errorf("HG and CB should be 1-3")
	}
	if !hg.Is14(ca) {
		Te.Errorf("HG and CA should be 1-4: %s", names(hg.Connect14))
	}
	mcb := met.Confs[1].AtomByName("CB")
	if !mcb.Is14(c) {
		Te.Errorf("1-4 relation across the peptide bond missing: %s", names(mcb.Connect14))
	}
}

func TestConnectScope(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Protein("SER")
	res := P.Residues[0]
	res.Add(res.Confs[1].Clone())
	rotagen.Connect(P, T, nil)
	og1 := res.Confs[1].AtomByName("OG")
	og2 := res.Confs[2].AtomByName("OG")
	cb2 := res.Confs[2].AtomByName("CB")
	ca := res.Confs[0].AtomByName("CA")
	//CA sees both CBs but a side chain atom never sees the other side chain.
	if og1.Is13(ca) == false {
		Te.Errorf("OG should be 1-3 to the backbone CA")
	}
	for _, a := range append(append(og1.Connect12, og1.Connect13...), og1.Connect14...) {
		if a.Conformer() == res.Confs[2] {
			Te.Errorf("cross-conformer relation %s - %s", og1.ID(), a.ID())
		}
	}
	if !og2.Bonded(cb2) || og2.Bonded(res.Confs[1].AtomByName("CB")) {
		Te.Errorf("the clone's OG is bonded to the wrong CB")
	}
}

func TestMissingPartner(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Protein("MET")
	sc := P.Residues[0].Confs[1]
	sc.Filter(func(a *rotagen.Atom) bool { return a.Name != "SD" })
	D := rotagen.NewDiagnostics(nil)
	rotagen.Connect(P, T, D)
	w := D.Warnings()
	if len(w) != 2 {
		Te.Fatalf("expected 2 warnings (CG and CE lose SD), got %v", w)
	}
	if !strings.Contains(w[0], "SD") {
		Te.Errorf("warning should name the missing atom: %s", w[0])
	}
}

func TestClone(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Connected(T, "SER", "GLY")
	orig := P.Residues[0].Confs[1]
	cl := orig.Clone()
	if cl.Len() != orig.Len() || cl.Type != orig.Type {
		Te.Fatalf("bad clone %v", cl)
	}
	for i, a := range cl.Atoms() {
		o := orig.Atom(i)
		if a == o {
			Te.Errorf("atom %s shared between clones", a.Name)
		}
		for _, b := range a.Connect12 {
			if b.Conformer() == orig {
				Te.Errorf("clone atom %s bonded to the original conformer's %s", a.Name, b.Name)
			}
		}
		if len(a.Connect13) != 0 || len(a.Connect14) != 0 {
			Te.Errorf("1-3 and 1-4 lists must be rebuilt after a clone")
		}
	}
	//the external bond to the backbone is kept
	if !cl.AtomByName("CB").Bonded(P.Residues[0].Confs[0].AtomByName("CA")) {
		Te.Errorf("external bond lost in the clone")
	}
	moved := v3.Zeros(1)
	moved.Copy(cl.Atom(0).Coord())
	moved.Set(0, 0, moved.At(0, 0)+5)
	cl.SetCoord(0, moved)
	if orig.Coords().At(0, 0) == cl.Coords().At(0, 0) {
		Te.Errorf("clone shares coordinates with the original")
	}
}

func TestBlob(Te *testing.T) {
	atoms := []*rotagen.Atom{rotagen.NewAtom("A", "C", 0), rotagen.NewAtom("B", "C", 0)}
	atoms[0].RVdw = 1.5
	atoms[1].RVdw = 2
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 2, 0, 0})
	C := rotagen.NewConformer("XXX01", atoms, coords)
	B := C.Blob()
	if B.Center.At(0, 0) != 1 || math.Abs(B.Radius-3) > 1e-9 {
		Te.Errorf("wrong blob %v %f", B.Center, B.Radius)
	}
	nc, _ := v3.NewMatrix([]float64{4, 0, 0})
	C.SetCoord(1, nc)
	if B2 := C.Blob(); B2 == B || math.Abs(B2.Radius-4) > 1e-9 {
		Te.Errorf("blob not invalidated after a coordinate change: %f", B2.Radius)
	}
	O := rotagen.NewConformer("XXX01", []*rotagen.Atom{rotagen.NewAtom("A", "C", 0)}, v3.Zeros(1))
	O.SetCoord(0, func() *v3.Matrix { m, _ := v3.NewMatrix([]float64{100, 0, 0}); return m }())
	if !C.Blob().Apart(O.Blob(), 6) {
		Te.Errorf("far conformers should be apart")
	}
	if rotagen.NewConformer("XXXBK", nil, nil).Blob().Radius != 0 {
		Te.Errorf("empty conformer should have an empty blob")
	}
}

func TestRotateAbout(Te *testing.T) {
	ax1 := v3.Zeros(1)
	ax2, _ := v3.NewMatrix([]float64{0, 0, 1})
	p, _ := v3.NewMatrix([]float64{1, 0, 0, 1, 0, 5})
	r, err := rotagen.RotateAbout(p, ax1, ax2, math.Pi/2)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(r.At(0, 1)-1) > 1e-9 || math.Abs(r.At(0, 0)) > 1e-9 || math.Abs(r.At(1, 2)-5) > 1e-9 {
		Te.Errorf("wrong rotation %v", r)
	}
	if _, err := rotagen.RotateAbout(p, ax1, ax1, 1); err == nil {
		Te.Errorf("a zero-length axis should fail")
	}
	a, _ := v3.NewMatrix([]float64{1, 0, 0})
	b := v3.Zeros(1)
	c, _ := v3.NewMatrix([]float64{0, 3, 0})
	if d := rotagen.Rad2Deg(rotagen.AngleAt(a, b, c)); math.Abs(d-90) > 1e-9 {
		Te.Errorf("wrong angle %f", d)
	}
}

func TestHistory(Te *testing.T) {
	var h rotagen.History
	if !h.IsOriginal() {
		Te.Errorf("zero history should be original")
	}
	r := h.Derive(rotagen.Rotate)
	i := r.Derive(rotagen.Ionized)
	if i.Origin != rotagen.Rotate || !i.Stages.Has(rotagen.Ionized) || !i.Stages.Has(rotagen.Rotate) {
		Te.Errorf("wrong derived history %v", i)
	}
	if !h.Derive(rotagen.Ionized).IsOriginal() {
		Te.Errorf("ionization should keep the origin")
	}
	i.Serial = 3
	if i.String() != "R003[RI]" {
		Te.Errorf("unexpected display code %s", i.String())
	}
}

func TestRenumberAndSerialize(Te *testing.T) {
	P := fixture.Protein("SER", "GLY", "MET")
	ser := P.Residues[0]
	c := ser.Confs[1].Clone()
	c.History = c.History.Derive(rotagen.Rotate)
	ser.Add(c, c.Clone())
	ser.Renumber()
	if ser.Confs[1].History.Serial != 0 || ser.Confs[3].History.Serial != 1 {
		Te.Errorf("wrong serials %v %v", ser.Confs[1].History, ser.Confs[3].History)
	}
	if n := P.Serialize(); n != 7 {
		Te.Errorf("expected 7 conformers, got %d", n)
	}
	if P.Residues[2].Confs[1].Index != 6 {
		Te.Errorf("wrong global index %d", P.Residues[2].Confs[1].Index)
	}
	defer func() {
		if r := recover(); r == nil {
			Te.Errorf("replacing the backbone should panic")
		}
	}()
	ser.SetConfs(ser.Confs[1:])
}

func TestMatchName(Te *testing.T) {
	if !rotagen.MatchName("CAA", "CA*") || rotagen.MatchName("CA", "CA*") || rotagen.MatchName("CBA", "CA*") {
		Te.Errorf("MatchName failed")
	}
	if !rotagen.IsHName("1HB") || rotagen.IsHName("NE2") {
		Te.Errorf("IsHName failed")
	}
}
