/*
 * repack.go, part of rotagen.
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

package repack

import (
	"fmt"
	"math/rand"

	"github.com/rmera/rotagen"
	"gonum.org/v1/gonum/floats"
)

// Optimizer runs the restarts of the repacking for a protein.
type Optimizer struct {
	P     *rotagen.Protein
	Table *Table
	Opts  *Options
	Rand  *rand.Rand
	D     *rotagen.Diagnostics
}

// NewOptimizer returns an optimizer for P with the energy table T. If rng is nil,
// a generator seeded with O.Seed is used.
func NewOptimizer(P *rotagen.Protein, T *Table, O *Options, rng *rand.Rand, D *rotagen.Diagnostics) *Optimizer {
	if O == nil {
		O = DefaultOptions()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(O.Seed))
	}
	return &Optimizer{P: P, Table: T, Opts: O, Rand: rng, D: D}
}

// Result contains the outcome of every restart, and the occupancy of each conformer:
// Occupancy[i][j] is the fraction of outcomes in which residue i had conformer j.
type Result struct {
	Outcomes  []rotagen.Microstate
	Occupancy [][]float64
}

// energy returns the energy of conformer ic of residue ir with the backbones
// and the side chains selected in ms for the other residues.
func (O *Optimizer) energy(ir, ic int, ms rotagen.Microstate) float64 {
	c := O.P.Residues[ir].Confs[ic]
	e := O.Table.Backbone(c.Index)
	row := O.Table.pairs[c.Index]
	for jr, jc := range ms {
		if jr == ir || jc == 0 {
			continue
		}
		e += row[O.P.Residues[jr].Confs[jc].Index]
	}
	return e
}

// initial returns a random assignment, with the backbone for residues without side chains.
func (O *Optimizer) initial() rotagen.Microstate {
	ms := make(rotagen.Microstate, len(O.P.Residues))
	for ir, res := range O.P.Residues {
		if n := res.NSideChains(); n > 0 {
			ms[ir] = 1 + O.Rand.Intn(n)
		}
	}
	return ms
}

// sweep visits every residue, in random order, and assigns it the conformer with
// the lowest energy against the current assignment. It returns the total of those
// energies.
func (O *Optimizer) sweep(ms rotagen.Microstate) float64 {
	var sum float64
	for _, ir := range O.Rand.Perm(len(ms)) {
		res := O.P.Residues[ir]
		if len(res.Confs) <= 2 {
			continue
		}
		best := 1
		emin := O.energy(ir, 1, ms)
		for ic := 2; ic < len(res.Confs); ic++ {
			if e := O.energy(ir, ic, ms); e < emin {
				emin = e
				best = ic
			}
		}
		ms[ir] = best
		sum += emin
	}
	return sum
}

// Restart runs one restart: a random assignment, optimized until it doesn't change, or
// for at most Opts.MaxSteps sweeps. It returns the final assignment.
func (O *Optimizer) Restart() rotagen.Microstate {
	ms := O.initial()
	prev := ms.Copy()
	for step := 0; step < O.Opts.MaxSteps; step++ {
		O.sweep(ms)
		if ms.Equal(prev) {
			break
		}
		prev = ms.Copy()
	}
	return ms
}

// Run performs up to Opts.Repacks restarts. It stops early when Opts.MaxRepeats
// consecutive restarts converge to assignments already found.
func (O *Optimizer) Run() *Result {
	R := new(Result)
	seen := make(map[string]bool)
	repeats := 0
	for i := 0; i < O.Opts.Repacks; i++ {
		ms := O.Restart()
		key := fmt.Sprint([]int(ms))
		if seen[key] {
			repeats++
		} else {
			repeats = 0
			seen[key] = true
		}
		R.Outcomes = append(R.Outcomes, ms)
		if O.Opts.MaxRepeats > 0 && repeats >= O.Opts.MaxRepeats {
			O.D.Infof("The last %d restarts found no new assignment, stopping after %d", repeats, i+1)
			break
		}
	}
	R.Occupancy = occupancies(O.P, R.Outcomes)
	return R
}

func occupancies(P *rotagen.Protein, outcomes []rotagen.Microstate) [][]float64 {
	occ := make([][]float64, len(P.Residues))
	for ir, res := range P.Residues {
		occ[ir] = make([]float64, len(res.Confs))
	}
	if len(outcomes) == 0 {
		return occ
	}
	for _, ms := range outcomes {
		for ir, ic := range ms {
			occ[ir][ic]++
		}
	}
	for _, o := range occ {
		floats.Scale(1/float64(len(outcomes)), o)
	}
	return occ
}

// Apply sets the occupancies in R to the conformers of P, and removes the side chain conformers
// with an occupancy not larger than cutoff, except the first one. P needs to be the protein
// R was obtained for, unchanged. It returns the number of removed conformers.
func (R *Result) Apply(P *rotagen.Protein, cutoff float64) int {
	removed := 0
	for ir, res := range P.Residues {
		occ := R.Occupancy[ir]
		kept := make([]*rotagen.Conformer, 0, len(res.Confs))
		for ic, c := range res.Confs {
			c.Occupancy = occ[ic]
			c.Determined = true
			if ic < 2 || occ[ic] > cutoff {
				kept = append(kept, c)
				continue
			}
			removed++
		}
		res.SetConfs(kept)
	}
	return removed
}

// Repack builds the energy table for P, runs the optimizer and applies the result with O.Cutoff.
// The connectivity of P needs to be up to date.
func Repack(P *rotagen.Protein, O *Options, D *rotagen.Diagnostics) *Result {
	if O == nil {
		O = DefaultOptions()
	}
	T := BuildTable(P, O)
	D.Infof("Repack energy table: %d conformers, %d pairs", len(T.backbone), T.NPairs())
	R := NewOptimizer(P, T, O, nil, D).Run()
	removed := R.Apply(P, O.Cutoff)
	D.Infof("Repack: %d restarts, %d conformers removed", len(R.Outcomes), removed)
	return R
}
