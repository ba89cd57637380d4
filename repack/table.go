/*
 * table.go, part of rotagen.
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

// Package repack implements the stochastic repacking of side chains: many
// greedy optimizations of the global assignment of conformers, starting from
// random assignments, whose outcomes give an occupancy for each conformer.
// Conformers that are rarely or never selected are then discarded.
package repack

import (
	"runtime"

	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/vdw"
)

// Options contains the options for the repacking.
type Options struct {
	Repacks    int     //largest number of restarts
	Cutoff     float64 //conformers with an occupancy not larger than this are discarded
	MaxSteps   int     //largest number of sweeps per restart
	MaxRepeats int     //stop after this many consecutive restarts that found nothing new. 0 disables it
	Seed       int64
	Cpus       int     //goroutines used to build the energy table
	Negligible float64 //pair energies with absolute value below this are not stored
	VDW        vdw.Params
}

// DefaultOptions returns the default repacking options.
func DefaultOptions() *Options {
	O := new(Options)
	O.Repacks = 5000
	O.Cutoff = 0.01
	O.MaxSteps = 10
	O.MaxRepeats = 20
	O.Seed = 1
	O.Cpus = runtime.NumCPU()
	O.Negligible = 0.00001
	O.VDW = vdw.DefaultParams()
	return O
}

// Table contains the precalculated energies for the repacking, indexed by the
// global conformer index (see rotagen.Protein.Serialize). Backbone conformers have no entries.
type Table struct {
	backbone []float64
	pairs    []map[int]float64
}

// Backbone returns the self energy of the conformer with index i plus its energy with all the backbones.
func (T *Table) Backbone(i int) float64 {
	return T.backbone[i]
}

// Pair returns the energy between the side chain conformers with indexes i and j.
func (T *Table) Pair(i, j int) float64 {
	return T.pairs[i][j]
}

// NPairs returns the number of stored (non-negligible) pairs, each counted once.
func (T *Table) NPairs() int {
	n := 0
	for _, v := range T.pairs {
		n += len(v)
	}
	return n / 2
}

type pairEnergy struct {
	i, j int
	e    float64
}

// row is the work done for one residue: the backbone terms of its side
// chains and their pairs with the side chains of the following residues.
type row struct {
	backbone []pairEnergy //j is not used
	pairs    []pairEnergy
}

func residueRow(P *rotagen.Protein, ir int, O *Options) *row {
	r := new(row)
	res := P.Residues[ir]
	for _, c := range res.SideChains() {
		r.backbone = append(r.backbone, pairEnergy{i: c.Index, e: vdw.Backbone(c, P, O.VDW)})
		for _, res2 := range P.Residues[ir+1:] {
			for _, c2 := range res2.SideChains() {
				e := vdw.Conformers(c, c2, O.VDW)
				if e > O.Negligible || e < -O.Negligible {
					r.pairs = append(r.pairs, pairEnergy{i: c.Index, j: c2.Index, e: e})
				}
			}
		}
	}
	return r
}

// BuildTable calculates the energy table for P, using O.Cpus goroutines.
// It serializes P and needs its connectivity to be up to date.
// The result doesn't depend on the number of goroutines.
func BuildTable(P *rotagen.Protein, O *Options) *Table {
	if O == nil {
		O = DefaultOptions()
	}
	n := P.Serialize()
	T := &Table{backbone: make([]float64, n), pairs: make([]map[int]float64, n)}
	for i := range T.pairs {
		T.pairs[i] = make(map[int]float64)
	}
	//the blobs are cached lazily, so we build them before going concurrent.
	for _, c := range P.Conformers() {
		c.Blob()
	}
	cpus := O.Cpus
	if cpus < 1 {
		cpus = 1
	}
	jobs := make(chan int)
	results := make(chan *row)
	for w := 0; w < cpus; w++ {
		go func() {
			for ir := range jobs {
				results <- residueRow(P, ir, O)
			}
		}()
	}
	go func() {
		for ir := range P.Residues {
			jobs <- ir
		}
		close(jobs)
	}()
	for range P.Residues {
		r := <-results
		for _, b := range r.backbone {
			T.backbone[b.i] = b.e
		}
		for _, p := range r.pairs {
			T.pairs[p.i][p.j] = p.e
			T.pairs[p.j][p.i] = p.e
		}
	}
	return T
}
