/*
 * pipeline_test.go, part of rotagen.
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

package pipeline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/internal/fixture"
)

func TestDecodeOptions(Te *testing.T) {
	conf := `
[rotamer]
rotations = 4

[rotamer.hbond]
sp3_angle = 100.0
bond_length = 1

[rotamer.exposure]
schedule = [30, 5.5]

[vdw]
far = 8

[repack]
repacks = 100
seed = 7

[prune]
max_confs = 20

[stages]
no_expose = true
`
	O, err := DecodeOptions(strings.NewReader(conf))
	if err != nil {
		Te.Fatal(err)
	}
	D := DefaultOptions()
	if O.Rotamer.Rotations != 4 || O.Repack.Repacks != 100 || O.Repack.Seed != 7 || O.Prune.MaxConfs != 20 || !O.NoExpose {
		Te.Errorf("values not read: %+v %+v %+v", O.Rotamer, O.Repack, O.Prune)
	}
	if s := O.Rotamer.Exposure.Schedule; len(s) != 2 || s[0] != 30 || s[1] != 5.5 {
		Te.Errorf("wrong schedule %v", s)
	}
	if h := O.Rotamer.HBond; h.SP3Angle != 100 || h.BondLength != 1 || h.Far != D.Rotamer.HBond.Far {
		Te.Errorf("wrong hydrogen bond options %+v", h)
	}
	if O.Rotamer.VDW.Far != 8 || O.Repack.VDW.Far != 8 || O.Prune.Params.Far != 8 {
		Te.Errorf("the energy model should be shared by all stages")
	}
	if O.Prune.RMSD != D.Prune.RMSD || O.Rotamer.PhiSwing != D.Rotamer.PhiSwing || O.Repack.MaxRepeats != D.Repack.MaxRepeats || O.NoSwap {
		Te.Errorf("missing keys should keep their defaults")
	}
	if _, err := DecodeOptions(strings.NewReader("[repack]\nrepack = 3\n")); err == nil {
		Te.Errorf("an unknown key should be an error")
	}
	if _, err := DecodeOptions(strings.NewReader("[prune]\nmax_confs = \"many\"\n")); err == nil {
		Te.Errorf("a value of the wrong type should be an error")
	}
}

func runOptions() *Options {
	O := DefaultOptions()
	O.Repack.Repacks = 200
	O.Repack.Cpus = 2
	O.Repack.Seed = 3
	return O
}

func TestRun(Te *testing.T) {
	T := fixture.Topology()
	P := fixture.Protein("SER", "GLY", "MET", "ASP", "LYS")
	D := rotagen.NewDiagnostics(nil)
	O := runOptions()
	S, err := Run(P, T, O, D)
	if err != nil {
		Te.Fatal(err)
	}
	if len(S.Stages) != 10 || S.Stages[0] != StInput || S.Stages[9] != StPrune {
		Te.Fatalf("wrong stages %v", S.Stages)
	}
	in, rot, ion := S.Stage(StInput), S.Stage(StRotate), S.Stage(StIonize)
	if S.Total(in) != 4 || S.Total(rot) <= S.Total(in) {
		Te.Errorf("rotations did not add conformers: %d -> %d", S.Total(in), S.Total(rot))
	}
	if S.Counts[3][ion] < 2*S.Counts[3][S.Stage(StExpose)] {
		Te.Errorf("ASP was not ionized: %v", S.Counts[3])
	}
	if S.Total(S.Stage(StPrune)) > S.Total(ion) {
		Te.Errorf("the final set is larger than the ionized one")
	}
	if S.Counts[1][S.Stage(StPrune)] != 0 {
		Te.Errorf("GLY got side chains")
	}
	for _, r := range P.Residues {
		if !r.Confs[0].IsBackbone() || len(r.Confs) > O.Prune.MaxConfs {
			Te.Errorf("wrong conformer set for %s", r.Label())
		}
		if r.Name != "GLY" && r.NSideChains() == 0 {
			Te.Errorf("%s lost all its side chains", r.Label())
		}
		for _, c := range r.Confs {
			if c.Determined {
				Te.Errorf("occupancy of %s should be undetermined", c.ID())
			}
		}
	}
	var buf bytes.Buffer
	if _, err := S.WriteTo(&buf); err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Total") || !strings.Contains(buf.String(), P.Residues[2].Label()) {
		Te.Errorf("incomplete statistics table:\n%s", buf.String())
	}
}

func TestRunReproducible(Te *testing.T) {
	T := fixture.Topology()
	var counts [2][][]int
	for i := range counts {
		P := fixture.Protein("SER", "MET", "LYS")
		S, err := Run(P, T, runOptions(), nil)
		if err != nil {
			Te.Fatal(err)
		}
		counts[i] = S.Counts
	}
	for i := range counts[0] {
		for j := range counts[0][i] {
			if counts[0][i][j] != counts[1][i][j] {
				Te.Fatalf("runs with the same seed differ: %v %v", counts[0], counts[1])
			}
		}
	}
}

func TestStats(Te *testing.T) {
	P := fixture.Protein("SER", "GLY")
	S := NewStats(P)
	S.Record("a", P)
	P.Residues[0].Add(P.Residues[0].Confs[1].Clone())
	S.Record("b", P)
	if S.Total(0) != 1 || S.Total(1) != 2 || S.Mean(1) != 1 || S.Stage("b") != 1 || S.Stage("c") != -1 {
		Te.Errorf("wrong statistics %v", S.Counts)
	}
}
