/*
 * prune.go, part of rotagen.
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

// Package prune reduces the conformer set of each residue: conformers with a
// high self and backbone energy are removed, the rest are clustered by RMSD
// within each conformer type, keeping one representative per cluster, and the
// number of conformers per residue is capped.
package prune

import (
	"fmt"
	"math"

	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/vdw"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PH2KCAL converts pH units to kcal/mol at room temperature.
const PH2KCAL = 1.364

// Options contains the options for the pruning.
type Options struct {
	VDW      float64 //energy window above the residue minimum, kcal/mol
	RMSD     float64 //clustering cutoff, A
	MaxConfs int     //largest number of conformers per residue, backbone included
	Params   vdw.Params
}

// DefaultOptions returns the default pruning options. The energy window is such that a
// conformer outside it would have an occupancy below 0.001 even with its energy scaled by 1/8.
func DefaultOptions() *Options {
	return &Options{VDW: 3 * PH2KCAL * 8, RMSD: 0.5, MaxConfs: 999, Params: vdw.DefaultParams()}
}

// RMSD returns the root mean square deviation between the conformers a and b, matching
// atoms by name. It is an error for a and b to have different numbers of atoms, or for an
// atom of a not to be present in b.
func RMSD(a, b *rotagen.Conformer) (float64, error) {
	if a.Len() != b.Len() {
		return 0, rotagen.Errorf("RMSD: conformers %s and %s have %d and %d atoms", a.ID(), b.ID(), a.Len(), b.Len())
	}
	if a.Len() == 0 {
		return 0, nil
	}
	ca, cb := a.Coords(), b.Coords()
	var sum float64
	for i, at := range a.Atoms() {
		bt := b.AtomByName(at.Name)
		if bt == nil {
			return 0, rotagen.Errorf("RMSD: atom %s of %s not found in %s", at.Name, a.ID(), b.ID())
		}
		d := floats.Distance(ca.RawRowView(i), cb.RawRowView(bt.Index()), 2)
		sum += d * d
	}
	return math.Sqrt(sum / float64(a.Len())), nil
}

// EnergyCutoff removes, from each residue, the side chain conformers whose self plus backbone
// energy exceeds the lowest one in the residue by more than O.VDW. Conformers with the heavy
// atoms of the input structure are never removed. The connectivity of P needs to be up to date.
// It returns the number of removed conformers.
func EnergyCutoff(P *rotagen.Protein, O *Options, D *rotagen.Diagnostics) int {
	removed := 0
	for _, res := range P.Residues {
		if res.NSideChains() == 0 {
			continue
		}
		energies := make([]float64, res.NSideChains())
		for i, c := range res.SideChains() {
			energies[i] = vdw.Backbone(c, P, O.Params)
		}
		emin := floats.Min(energies)
		kept := []*rotagen.Conformer{res.Confs[0]}
		for i, c := range res.SideChains() {
			if !c.History.IsOriginal() && energies[i] > emin+O.VDW {
				removed++
				continue
			}
			kept = append(kept, c)
		}
		res.SetConfs(kept)
	}
	D.Infof("Energy cutoff removed %d conformers", removed)
	return removed
}

// groups returns the side chain conformers of res grouped by type, in the order of
// the residue's conformer list. Types not in the list go last, in order of appearance.
func groups(res *rotagen.Residue, T rotagen.Topology, D *rotagen.Diagnostics) [][]*rotagen.Conformer {
	order := make(map[string]int)
	for _, t := range T.ConfList(res.Name) {
		if _, ok := order[t]; !ok {
			order[t] = len(order)
		}
	}
	var ret [][]*rotagen.Conformer
	for _, c := range res.SideChains() {
		if _, ok := order[c.Type]; !ok {
			D.Warnf("Conformer type %s is not in the conformer list of %s", c.Type, res.Label())
			order[c.Type] = len(order)
		}
	}
	slots := make([][]*rotagen.Conformer, len(order))
	for _, c := range res.SideChains() {
		i := order[c.Type]
		slots[i] = append(slots[i], c)
	}
	for _, s := range slots {
		if len(s) > 0 {
			ret = append(ret, s)
		}
	}
	return ret
}

// ClusterGroup clusters the conformers in confs, which need to have the same
// atoms, and returns one representative per cluster: the member with the lowest
// sum of RMSDs to the rest of its cluster.
func ClusterGroup(confs []*rotagen.Conformer, cutoff float64) ([]*rotagen.Conformer, error) {
	if len(confs) < 2 {
		return confs, nil
	}
	n := len(confs)
	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r, err := RMSD(confs[i], confs[j])
			if err != nil {
				return nil, rotagen.ErrDecorate(err, "ClusterGroup")
			}
			d.SetSym(i, j, r)
		}
	}
	var ret []*rotagen.Conformer
	for _, cl := range AverageLinkage(d, cutoff) {
		center := cl[0]
		minsum := math.Inf(1)
		for _, i := range cl {
			var sum float64
			for _, j := range cl {
				sum += d.At(i, j)
			}
			if sum < minsum {
				minsum = sum
				center = i
			}
		}
		ret = append(ret, confs[center])
	}
	return ret, nil
}

// Cluster replaces the side chain conformers of each residue of P by the representatives
// of their RMSD clusters. Conformers of different types are never clustered together.
// It returns the number of removed conformers.
func Cluster(P *rotagen.Protein, T rotagen.Topology, O *Options, D *rotagen.Diagnostics) (int, error) {
	removed := 0
	for _, res := range P.Residues {
		if res.NSideChains() < 2 {
			continue
		}
		kept := []*rotagen.Conformer{res.Confs[0]}
		for _, g := range groups(res, T, D) {
			reps, err := ClusterGroup(g, O.RMSD)
			if err != nil {
				return removed, rotagen.ErrDecorate(err, fmt.Sprintf("Cluster %s", res.Label()))
			}
			kept = append(kept, reps...)
		}
		removed += len(res.Confs) - len(kept)
		res.SetConfs(kept)
	}
	D.Infof("Clustering removed %d conformers", removed)
	return removed, nil
}

// Cap truncates the residues with more than O.MaxConfs conformers, with a warning.
// It returns the number of removed conformers.
func Cap(P *rotagen.Protein, O *Options, D *rotagen.Diagnostics) int {
	removed := 0
	if O.MaxConfs < 1 {
		return 0
	}
	for _, res := range P.Residues {
		if len(res.Confs) <= O.MaxConfs {
			continue
		}
		D.Warnf("Residue %s has %d conformers, the ones after the %dth are discarded", res.Label(), len(res.Confs), O.MaxConfs)
		removed += len(res.Confs) - O.MaxConfs
		res.SetConfs(res.Confs[:O.MaxConfs])
	}
	return removed
}

// Prune applies EnergyCutoff, Cluster and Cap to P. The connectivity of P needs to be up to date.
func Prune(P *rotagen.Protein, T rotagen.Topology, O *Options, D *rotagen.Diagnostics) error {
	if O == nil {
		O = DefaultOptions()
	}
	EnergyCutoff(P, O, D)
	if _, err := Cluster(P, T, O, D); err != nil {
		return rotagen.ErrDecorate(err, "Prune")
	}
	Cap(P, O, D)
	return nil
}
