/*
 * pipeline.go, part of rotagen.
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
	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/prune"
	"github.com/rmera/rotagen/repack"
	"github.com/rmera/rotagen/rotamer"
	"github.com/rmera/rotagen/vdw"
)

// Stage names, as used in the statistics.
const (
	StInput  = "input"
	StSwap   = "swap"
	StRotate = "rotate"
	StSwing  = "swing"
	StClean  = "clean"
	StHBond  = "hbond"
	StExpose = "expose"
	StIonize = "ionize"
	StRepack = "repack"
	StPrune  = "prune"
)

// Run generates the conformers of P. Stages run in a fixed order: swap, rotate, swing,
// self energy cleaning, hydrogen-bond directed placement, exposure optimization,
// ionization, repacking and pruning. When it returns, the conformers are renumbered,
// their occupancies are undetermined, and the connectivity and radius parameters of P are
// up to date. It returns the number of conformers per residue after each stage.
func Run(P *rotagen.Protein, T rotagen.Topology, O *Options, D *rotagen.Diagnostics) (*Stats, error) {
	if O == nil {
		O = DefaultOptions()
	}
	S := NewStats(P)
	vdw.Assign(P, T, D)
	rotagen.Connect(P, T, D)
	S.Record(StInput, P)

	if !O.NoSwap {
		n := rotamer.Swap(P, T)
		rotagen.Connect(P, T, D)
		D.Infof("Swap: %d new conformers", n)
	}
	S.Record(StSwap, P)

	n, err := rotamer.Rotate(P, T, O.Rotamer)
	if err != nil {
		return S, rotagen.ErrDecorate(err, "Run")
	}
	rotagen.Connect(P, T, D)
	D.Infof("Rotate: %d new conformers", n)
	S.Record(StRotate, P)

	n, err = rotamer.Swing(P, T, O.Rotamer)
	if err != nil {
		return S, rotagen.ErrDecorate(err, "Run")
	}
	rotagen.Connect(P, T, D)
	D.Infof("Swing: %d new conformers", n)
	S.Record(StSwing, P)

	n = rotamer.CleanSelfEnergy(P, O.Rotamer)
	D.Infof("Self energy: %d conformers removed", n)
	S.Record(StClean, P)

	if !O.NoHBond {
		n = rotamer.HBond(P, T, O.Rotamer)
		rotagen.Connect(P, T, D)
		D.Infof("Hydrogen bonds: %d new conformers", n)
	}
	S.Record(StHBond, P)

	if !O.NoExpose {
		n, err = rotamer.Expose(P, T, O.Rotamer, D)
		if err != nil {
			return S, rotagen.ErrDecorate(err, "Run")
		}
		D.Infof("Exposure: %d new conformers", n)
	}
	S.Record(StExpose, P)

	n = rotamer.Ionize(P, T, D)
	vdw.Assign(P, T, D)
	rotagen.Connect(P, T, D)
	D.Infof("Ionization: %d new conformers", n)
	S.Record(StIonize, P)

	repack.Repack(P, O.Repack, D)
	rotagen.Connect(P, T, D)
	S.Record(StRepack, P)

	if err := prune.Prune(P, T, O.Prune, D); err != nil {
		return S, rotagen.ErrDecorate(err, "Run")
	}
	rotagen.Connect(P, T, D)
	S.Record(StPrune, P)

	for _, r := range P.Residues {
		r.Renumber()
		for _, c := range r.Confs {
			c.Occupancy = 0
			c.Determined = false
		}
	}
	P.Serialize()
	return S, nil
}
