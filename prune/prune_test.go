/*
 * prune_test.go, part of rotagen.
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

package prune_test

import (
	"math"
	"testing"

	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/internal/fixture"
	"github.com/rmera/rotagen/prune"
	"github.com/rmera/rotagen/rotamer"
	v3 "github.com/rmera/rotagen/v3"
	"gonum.org/v1/gonum/mat"
)

func rotated(Te *testing.T, names ...string) (*rotagen.Protein, rotagen.Topology) {
	Te.Helper()
	T := fixture.Topology()
	P := fixture.Connected(T, names...)
	if _, err := rotamer.Rotate(P, T, nil); err != nil {
		Te.Fatal(err)
	}
	rotagen.Connect(P, T, nil)
	return P, T
}

func TestRMSD(Te *testing.T) {
	P := fixture.Protein("MET", "SER")
	c := P.Residues[0].Confs[1]
	if r, err := prune.RMSD(c, c); err != nil || r != 0 {
		Te.Errorf("RMSD with itself: %f %v", r, err)
	}
	moved := c.Clone()
	shift, _ := v3.NewMatrix([]float64{1, 0, 0})
	moved.Coords().AddVec(moved.Coords(), shift)
	if r, err := prune.RMSD(c, moved); err != nil || math.Abs(r-1) > 1e-9 {
		Te.Errorf("RMSD after a 1 A shift: %f %v", r, err)
	}
	if _, err := prune.RMSD(c, P.Residues[1].Confs[1]); err == nil {
		Te.Errorf("RMSD between conformers of different sizes should fail")
	}
	renamed := c.Clone()
	renamed.Atom(2).Name = "XX"
	if _, err := prune.RMSD(c, renamed); err == nil {
		Te.Errorf("RMSD with unmatched atom names should fail")
	}
}

func TestAverageLinkage(Te *testing.T) {
	x := []float64{0, 0.1, 5, 5.2, 30}
	d := mat.NewSymDense(len(x), nil)
	for i := range x {
		for j := i + 1; j < len(x); j++ {
			d.SetSym(i, j, math.Abs(x[i]-x[j]))
		}
	}
	cl := prune.AverageLinkage(d, 1)
	if len(cl) != 3 || len(cl[0]) != 2 || len(cl[1]) != 2 || cl[1][0] != 2 || cl[2][0] != 4 {
		Te.Errorf("wrong clusters %v", cl)
	}
	if cl := prune.AverageLinkage(d, 0); len(cl) != len(x) {
		Te.Errorf("a 0 cutoff should not merge anything: %v", cl)
	}
	if cl := prune.AverageLinkage(d, 1000); len(cl) != 1 || len(cl[0]) != len(x) {
		Te.Errorf("a large cutoff should give one cluster: %v", cl)
	}
	//merging is strict: a pair exactly at the cutoff stays apart.
	exact := mat.NewSymDense(3, []float64{
		0, 0.5, 2,
		0.5, 0, 2,
		2, 2, 0})
	if cl := prune.AverageLinkage(exact, 0.5); len(cl) != 3 {
		Te.Errorf("a pair exactly at the cutoff was merged: %v", cl)
	}
	if cl := prune.AverageLinkage(exact, 0.51); len(cl) != 2 || len(cl[0]) != 2 {
		Te.Errorf("a pair below the cutoff was not merged: %v", cl)
	}
	same := mat.NewSymDense(2, nil)
	if cl := prune.AverageLinkage(same, 0); len(cl) != 2 {
		Te.Errorf("a 0 cutoff merged identical points: %v", cl)
	}
	//{0,1} and {2,3} are 5.05 apart on average, and 30 is 27.425 from them on average
	if cl := prune.AverageLinkage(d, 6); len(cl) != 2 || len(cl[0]) != 4 {
		Te.Errorf("wrong clusters with cutoff 6: %v", cl)
	}
}

func TestCluster(Te *testing.T) {
	P, T := rotated(Te, "MET", "GLY", "SER")
	met := P.Residues[0]
	n := met.NSideChains()
	O := prune.DefaultOptions()
	O.RMSD = 0
	if removed, err := prune.Cluster(P, T, O, nil); err != nil || removed != 0 || met.NSideChains() != n {
		Te.Errorf("a 0 cutoff removed %d conformers (%v)", removed, err)
	}
	O.RMSD = 0.5
	if _, err := prune.Cluster(P, T, O, nil); err != nil {
		Te.Fatal(err)
	}
	after := append([]*rotagen.Conformer(nil), met.Confs...)
	removed, err := prune.Cluster(P, T, O, nil)
	if err != nil || removed != 0 {
		Te.Errorf("clustering is not idempotent: %d removed (%v)", removed, err)
	}
	for i, c := range met.Confs {
		if after[i] != c {
			Te.Errorf("conformer %d changed in the second clustering", i)
		}
	}
	O.RMSD = 1e6
	bk := P.Residues[2].Confs[0]
	if _, err := prune.Cluster(P, T, O, nil); err != nil {
		Te.Fatal(err)
	}
	for _, r := range P.Residues {
		if r.Name != "GLY" && r.NSideChains() != 1 {
			Te.Errorf("a large cutoff should leave one conformer per type in %s, got %d", r.Label(), r.NSideChains())
		}
	}
	if P.Residues[2].Confs[0] != bk {
		Te.Errorf("the backbone was replaced")
	}
}

func TestClusterTypes(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Connected(T, "ASP")
	rotamer.Ionize(P, T, nil)
	asp := P.Residues[0]
	//the ionized copy has the same heavy atom positions, but a different type.
	O := prune.DefaultOptions()
	O.RMSD = 1e6
	if removed, err := prune.Cluster(P, T, O, nil); err != nil || removed != 0 {
		Te.Errorf("conformers of different types were clustered together (%d, %v)", removed, err)
	}
	if asp.Confs[1].Type != "ASP01" || asp.Confs[2].Type != "ASP-1" {
		Te.Errorf("wrong type order %s %s", asp.Confs[1].Type, asp.Confs[2].Type)
	}
}

func TestEnergyCutoff(Te *testing.T) {
	P, _ := rotated(Te, "SER", "LYS")
	O := prune.DefaultOptions()
	O.VDW = 1e6
	if n := prune.EnergyCutoff(P, O, nil); n != 0 {
		Te.Errorf("a large window removed %d conformers", n)
	}
	O.VDW = -1
	prune.EnergyCutoff(P, O, nil)
	for _, r := range P.Residues {
		if r.NSideChains() != 1 || !r.Confs[1].History.IsOriginal() {
			Te.Errorf("only the original conformer should survive a negative window in %s", r.Label())
		}
	}
}

func TestCap(Te *testing.T) {
	P, _ := rotated(Te, "MET")
	O := prune.DefaultOptions()
	O.MaxConfs = 3
	D := rotagen.NewDiagnostics(nil)
	if n := prune.Cap(P, O, D); n != 34 {
		Te.Errorf("expected 34 conformers removed, got %d", n)
	}
	if len(P.Residues[0].Confs) != 3 || len(D.Warnings()) != 1 {
		Te.Errorf("wrong cap: %d conformers, warnings %v", len(P.Residues[0].Confs), D.Warnings())
	}
}
