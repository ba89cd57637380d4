/*
 * rotamer_test.go, part of rotagen.
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

package rotamer_test

import (
	"math"
	"testing"

	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/internal/fixture"
	"github.com/rmera/rotagen/rotamer"
	"gonum.org/v1/gonum/mat"
)

func TestDefaults(Te *testing.T) {
	O := rotamer.DefaultOptions()
	//calibration parameters, carried over unchanged.
	if O.Rotations != 6 || O.PhiSwing != 3 || O.SelfVDWCutoff != 10 {
		Te.Errorf("wrong generator defaults: %+v", O)
	}
	H := O.HBond
	if H.Near != 2.5 || H.Far != 3.6 || H.MinCharge != -0.2 || H.BlockingAngle != 90 || H.BondLength != 1.09 || H.SP3Angle != 109.5 {
		Te.Errorf("wrong hydrogen bond calibration: %+v", H)
	}
	E := O.Exposure
	if E.Threshold != 0.2 || E.MinGain != 0.001 || E.Points != 122 || E.Probe != 1.4 {
		Te.Errorf("wrong exposure calibration: %+v", E)
	}
	sched := []float64{60, 15, 3, 1}
	if len(E.Schedule) != len(sched) {
		Te.Fatalf("wrong swing schedule %v", E.Schedule)
	}
	for i, v := range sched {
		if E.Schedule[i] != v {
			Te.Errorf("wrong swing schedule %v", E.Schedule)
		}
	}
}

// bondLengths returns the lengths of the bonds between atoms of c, indexed by atom index pairs.
func bondLengths(c *rotagen.Conformer) map[[2]int]float64 {
	ret := make(map[[2]int]float64)
	for _, a := range c.Atoms() {
		for _, b := range a.Connect12 {
			if b.Conformer() == c {
				ret[[2]int{a.Index(), b.Index()}] = math.Sqrt(a.Dist2(b))
			}
		}
	}
	return ret
}

func checkBonds(Te *testing.T, orig, c *rotagen.Conformer) {
	Te.Helper()
	for k, d := range bondLengths(orig) {
		a, b := c.Atom(k[0]), c.Atom(k[1])
		if nd := math.Sqrt(a.Dist2(b)); math.Abs(nd-d) > 1e-6 {
			Te.Errorf("%s: bond %s-%s changed from %.4f to %.4f", c.ID(), a.Name, b.Name, d, nd)
		}
	}
}

func TestRotate(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Connected(T, "SER", "GLY", "MET")
	ser, met := P.Residues[0], P.Residues[2]
	bk := ser.Confs[0]
	bkcoords := bk.Coords().Clone()
	sc := ser.Confs[1]
	n, err := rotamer.RotateResidue(ser, T.RotateAxes("SER"), 6)
	if err != nil {
		Te.Fatal(err)
	}
	if n != 5 || ser.NSideChains() != 6 {
		Te.Errorf("one bond with 6 positions should give 5 rotamers, got %d (%d side chains)", n, ser.NSideChains())
	}
	cb := sc.AtomByName("CB")
	og := sc.AtomByName("OG")
	for _, c := range ser.SideChains()[1:] {
		if c.History.Origin != rotagen.Rotate {
			Te.Errorf("wrong history for %s", c.ID())
		}
		checkBonds(Te, sc, c)
		if d := c.Coords().Distance(cb.Index(), cb.Coord(), 0); d > 1e-9 {
			Te.Errorf("the pivot moved")
		}
		if d := c.Coords().Distance(og.Index(), og.Coord(), 0); d < 0.1 {
			Te.Errorf("OG did not move in %s", c.ID())
		}
	}
	if ser.Confs[0] != bk || !mat.EqualApprox(bk.Coords(), bkcoords, 1e-12) {
		Te.Errorf("the backbone was modified")
	}
	//the two bonds of MET compound: 6*6 side chains
	n, err = rotamer.RotateResidue(met, T.RotateAxes("MET"), 6)
	if err != nil {
		Te.Fatal(err)
	}
	if met.NSideChains() != 36 || n != 35 {
		Te.Errorf("two bonds with 6 positions should give 36 side chains, got %d", met.NSideChains())
	}
	for _, c := range met.SideChains()[1:] {
		checkBonds(Te, met.Confs[1], c)
	}
}

func TestRotateStage(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Connected(T, "SER", "GLY", "MET")
	n, err := rotamer.Rotate(P, T, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if n != 40 {
		Te.Errorf("expected 40 rotamers, got %d", n)
	}
	if P.Residues[1].NSideChains() != 0 {
		Te.Errorf("GLY got side chains")
	}
}

func TestRotateMissingAtom(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Connected(T, "MET")
	met := P.Residues[0]
	met.Confs[1].Filter(func(a *rotagen.Atom) bool { return a.Name != "CG" })
	rotagen.Connect(P, T, nil)
	_, err := rotamer.Rotate(P, T, nil)
	if err == nil {
		Te.Fatal("a rotatable bond with a missing atom should be an error")
	}
	if e, ok := err.(*rotagen.Error); !ok || !e.Critical() {
		Te.Errorf("expected a critical *rotagen.Error, got %v", err)
	}
}

func TestSwing(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Connected(T, "MET")
	met := P.Residues[0]
	c := met.Confs[1]
	before := c.Coords().Clone()
	sw, err := rotamer.SwingConformer(c, met, T.RotateAxes("MET"), 3)
	if err != nil {
		Te.Fatal(err)
	}
	//2 for the first bond, then 2 for each of the 3 conformers we have at that point.
	if len(sw) != 8 {
		Te.Errorf("expected 8 swings, got %d", len(sw))
	}
	if !mat.EqualApprox(c.Coords(), before, 1e-12) || met.NSideChains() != 1 {
		Te.Errorf("SwingConformer modified the residue")
	}
	for _, s := range sw {
		checkBonds(Te, c, s)
		if s.History.Origin != rotagen.Swing {
			Te.Errorf("wrong history %s", s.History)
		}
	}
	P = fixture.Connected(T, "SER")
	n, err := rotamer.Swing(P, T, nil)
	if err != nil || n != 2 {
		Te.Errorf("expected 2 swings for SER, got %d (%v)", n, err)
	}
	og0 := P.Residues[0].Confs[1].AtomByName("OG")
	og1 := P.Residues[0].Confs[2].AtomByName("OG")
	cb := P.Residues[0].Confs[1].AtomByName("CB")
	ca := P.Residues[0].Confs[0].AtomByName("CA")
	//OG rotates 3 degrees around the CA-CB axis, so it moves 2*r*sin(1.5 degrees)
	//where r is its distance to the axis.
	r := math.Sqrt(og0.Dist2(cb)) * math.Sin(rotagen.AngleAt(og0.Coord(), cb.Coord(), ca.Coord()))
	expected := 2 * r * math.Sin(rotagen.Deg2Rad(1.5))
	if d := math.Sqrt(og0.Dist2(og1)); math.Abs(d-expected) > 1e-6 {
		Te.Errorf("OG moved %.5f, expected %.5f", d, expected)
	}
}

func TestSwap(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Connected(T, "ASP", "MET")
	asp := P.Residues[0]
	n := rotamer.Swap(P, T)
	if n != 1 || asp.NSideChains() != 2 {
		Te.Fatalf("expected one swapped conformer, got %d", n)
	}
	o, s := asp.Confs[1], asp.Confs[2]
	od1, od2 := o.AtomByName("OD1"), o.AtomByName("OD2")
	if s.Coords().Distance(od1.Index(), od2.Coord(), 0) > 1e-12 || s.Coords().Distance(od2.Index(), od1.Coord(), 0) > 1e-12 {
		Te.Errorf("OD1 and OD2 were not swapped")
	}
	if s.History.Origin != rotagen.Swap || !o.History.IsOriginal() {
		Te.Errorf("wrong histories %s %s", o.History, s.History)
	}
	if P.Residues[1].NSideChains() != 1 {
		Te.Errorf("MET has no swap pairs")
	}
}

func TestIonize(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Connected(T, "ASP")
	asp := P.Residues[0]
	rotamer.Swap(P, T)
	D := rotagen.NewDiagnostics(nil)
	n := rotamer.Ionize(P, T, D)
	//each of the 2 ASP01 gets an ASP-1 copy, the dummy type is skipped.
	if n != 2 || asp.NSideChains() != 4 {
		Te.Fatalf("expected 2 ionized conformers, got %d", n)
	}
	types := []string{"ASP01", "ASP01", "ASP-1", "ASP-1"}
	for i, c := range asp.SideChains() {
		if c.Type != types[i] {
			Te.Errorf("side chain %d has type %s, expected %s", i, c.Type, types[i])
		}
	}
	ion := asp.Confs[3]
	if ion.AtomByName("HD2") != nil || ion.Len() != 4 {
		Te.Errorf("HD2 should be dropped from the ionized conformer")
	}
	if !ion.History.IsOriginal() || !ion.History.Stages.Has(rotagen.Ionized) {
		Te.Errorf("ionization should keep the origin: %s", ion.History)
	}
	if asp.Confs[4].History.Origin != rotagen.Swap {
		Te.Errorf("the swapped conformer lost its origin: %s", asp.Confs[4].History)
	}
	if w := D.Warnings(); len(w) != 0 {
		Te.Errorf("unexpected warnings %v", w)
	}
}

func TestCleanSelfEnergy(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Connected(T, "MET", "GLY", "LYS")
	if _, err := rotamer.Rotate(P, T, nil); err != nil {
		Te.Fatal(err)
	}
	rotagen.Connect(P, T, nil)
	total := P.NConformers()
	O := rotamer.DefaultOptions()
	O.SelfVDWCutoff = 1e9
	if n := rotamer.CleanSelfEnergy(P, O); n != 0 || P.NConformers() != total {
		Te.Errorf("nothing should be removed with a huge cutoff, %d were", n)
	}
	O.SelfVDWCutoff = -1e9
	n := rotamer.CleanSelfEnergy(P, O)
	if n != total-P.NConformers() || P.Residues[0].NSideChains() != 1 || P.Residues[2].NSideChains() != 1 {
		Te.Errorf("only the original conformers should survive, %d removed", n)
	}
	if len(P.Residues[1].Confs) != 1 {
		Te.Errorf("the GLY backbone should remain")
	}
}

// hbondProtein builds a SER side chain whose OG donates to an O atom of another residue,
// at 3.0 A. The C atom bonded to the acceptor is at c.
func hbondProtein(c [3]float64) *rotagen.Protein {
	ser := fixture.Place("SER01", []string{"CB", "OG", "HG"}, []string{"C", "O", "H"},
		[]float64{0, -0.49, 0.49}, [][3]float64{{-1.43, 0, 0}, {0, 0, 0}, {0.36, -1.03, 0}})
	cb, og, hg := ser.Atom(0), ser.Atom(1), ser.Atom(2)
	cb.Connect12 = []*rotagen.Atom{og}
	og.Connect12 = []*rotagen.Atom{cb, hg}
	hg.Connect12 = []*rotagen.Atom{og}
	acc := fixture.Place("ACC01", []string{"O", "C"}, []string{"O", "C"}, []float64{-0.5, 0.5}, [][3]float64{{0, 3, 0}, c})
	o, cc := acc.Atom(0), acc.Atom(1)
	o.Connect12 = []*rotagen.Atom{cc}
	cc.Connect12 = []*rotagen.Atom{o}
	r1 := rotagen.NewResidue("SER", "A", 1, "", rotagen.NewConformer("SERBK", nil, nil), ser)
	r2 := rotagen.NewResidue("ACC", "A", 2, "", rotagen.NewConformer("ACCBK", nil, nil), acc)
	return rotagen.NewProtein(r1, r2)
}

func TestHBond(Te *testing.T) {
	T := fixture.Topology()
	P := hbondProtein([3]float64{0, 4.2, 0})
	n := rotamer.HBond(P, T, nil)
	ser := P.Residues[0]
	if n != 1 || ser.NSideChains() != 2 || P.Residues[1].NSideChains() != 1 {
		Te.Fatalf("expected exactly one hydrogen bond conformer, got %d", n)
	}
	c := ser.Confs[2]
	if c.History.Origin != rotagen.HBond {
		Te.Errorf("wrong history %s", c.History)
	}
	og := c.AtomByName("OG").Coord()
	hg := c.AtomByName("HG").Coord()
	acc := P.Residues[1].Confs[1].AtomByName("O").Coord()
	if d := og.Distance(0, hg, 0); math.Abs(d-1.09) > 1e-6 {
		Te.Errorf("wrong O-H distance %.4f", d)
	}
	if ang := rotagen.Rad2Deg(rotagen.AngleAt(og, hg, acc)); ang <= 90 {
		Te.Errorf("donor-hydrogen-acceptor angle too small: %.2f", ang)
	}
	//tetrahedral to CB, in the CB-OG-O plane
	expected := [3]float64{-1.09 * math.Cos(rotagen.Deg2Rad(109.5)), 1.09 * math.Sin(rotagen.Deg2Rad(109.5)), 0}
	for i, v := range expected {
		if math.Abs(hg.At(0, i)-v) > 1e-6 {
			Te.Errorf("HG at %v, expected %v", hg, expected)
			break
		}
	}
	orig := ser.Confs[1].AtomByName("HG").Coord()
	if orig.At(0, 1) > 0 {
		Te.Errorf("the original conformer was modified")
	}
}

func TestHBondBlocked(Te *testing.T) {
	T := fixture.Topology()
	//the C bonded to the acceptor sits between the acceptor and the new hydrogen.
	P := hbondProtein([3]float64{0.6, 1.9, 0})
	if n := rotamer.HBond(P, T, nil); n != 0 {
		Te.Errorf("a blocked hydrogen bond produced %d conformers", n)
	}
	O := rotamer.DefaultOptions()
	O.HBond.Far = 2.9
	P = hbondProtein([3]float64{0, 4.2, 0})
	if n := rotamer.HBond(P, T, O); n != 0 {
		Te.Errorf("an acceptor out of range produced %d conformers", n)
	}
}

func TestExpose(Te *testing.T) {
	T := fixture.Topology()
	//an isolated residue is fully exposed, and swinging it can't improve that.
	P := fixture.Connected(T, "SER")
	n, err := rotamer.Expose(P, T, nil, nil)
	if err != nil || n != 0 {
		Te.Errorf("isolated residue: %d new conformers (%v)", n, err)
	}
	//non-polar residues are never optimized, even with a negative threshold.
	O := rotamer.DefaultOptions()
	O.Exposure.Threshold = -1
	O.Exposure.MinGain = -1
	P = fixture.Connected(T, "MET")
	if n, _ := rotamer.Expose(P, T, O, nil); n != 0 {
		Te.Errorf("MET should not be optimized")
	}
	//with a negative gain, any polar residue above the threshold gets a conformer.
	P = fixture.Connected(T, "SER", "LYS")
	n, err = rotamer.Expose(P, T, O, nil)
	if err != nil || n != 2 {
		Te.Errorf("expected 2 exposed conformers, got %d (%v)", n, err)
	}
	for _, r := range P.Residues {
		if c := r.Confs[len(r.Confs)-1]; c.History.Origin != rotagen.Exposed {
			Te.Errorf("wrong history for %s", c.ID())
		}
	}
}
