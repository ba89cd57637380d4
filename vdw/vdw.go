/*
 * vdw.go, part of rotagen.
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

// Package vdw implements the van der Waals energy model used to score conformers:
// a modified Lennard-Jones potential with bonded exclusions, 1-4 scaling and a
// cheap rejection of distant conformer pairs.
package vdw

import (
	"math"

	"github.com/rmera/rotagen"
)

// Params are the parameters of the energy model. Distances in A, energies in kcal/mol.
type Params struct {
	Near    float64 //atom pairs closer than this get the UpLimit penalty
	Far     float64 //atom pairs farther than this don't interact
	Scale14 float64 //scaling for 1-4 pairs
	UpLimit float64 //largest energy for a conformer pair
	Margin  float64 //added to the sum of the blob radii to decide that 2 conformers are apart
}

// DefaultParams returns the default parameters of the energy model.
func DefaultParams() Params {
	return Params{Near: 1, Far: 10, Scale14: 0.5, UpLimit: 999, Margin: 6}
}

// Atoms returns the VDW energy between the atoms a and b. Pairs that are 1-2
// or 1-3 in either direction are excluded, and 1-4 pairs are scaled.
func Atoms(a, b *rotagen.Atom, p Params) float64 {
	if a == b || a.Bonded(b) || b.Bonded(a) || a.Is13(b) || b.Is13(a) {
		return 0
	}
	d2 := a.Dist2(b)
	if d2 > p.Far*p.Far {
		return 0
	}
	if d2 < p.Near*p.Near {
		return p.UpLimit
	}
	scale := 1.0
	if a.Is14(b) || b.Is14(a) {
		scale = p.Scale14
	}
	r0 := a.RVdw + b.RVdw
	eps := math.Sqrt(a.EVdw * b.EVdw)
	sd2 := r0 * r0 / d2
	sd6 := sd2 * sd2 * sd2
	sd12 := sd6 * sd6
	return scale * eps * (sd12 - 2*sd6)
}

// Conformers returns the VDW energy between conformers a and b. If a and b are
// the same conformer, the self energy (each pair counted once) is returned.
// The energy is capped at p.UpLimit and is never NaN or infinite.
func Conformers(a, b *rotagen.Conformer, p Params) float64 {
	if a.Len() == 0 || b.Len() == 0 {
		return 0
	}
	if a.Blob().Apart(b.Blob(), p.Margin) {
		return 0
	}
	var e float64
	for _, at1 := range a.Atoms() {
		for _, at2 := range b.Atoms() {
			e += Atoms(at1, at2, p)
		}
	}
	if math.IsNaN(e) || math.IsInf(e, 0) || e >= p.UpLimit {
		e = p.UpLimit
	}
	if a == b {
		e *= 0.5
	}
	return e
}

// Backbone returns the self energy of c plus its energy with the backbone
// conformers of all the residues of P.
func Backbone(c *rotagen.Conformer, P *rotagen.Protein, p Params) float64 {
	e := Conformers(c, c, p)
	for _, bk := range P.Backbones() {
		e += Conformers(c, bk, p)
	}
	return e
}

// BackboneExceeds is like Backbone, but it stops adding backbone terms as
// soon as the energy exceeds cutoff, and returns whether it did.
func BackboneExceeds(c *rotagen.Conformer, P *rotagen.Protein, p Params, cutoff float64) bool {
	e := Conformers(c, c, p)
	for _, bk := range P.Backbones() {
		e += Conformers(c, bk, p)
		if e > cutoff {
			return true
		}
	}
	return e > cutoff
}

// Assign sets the radius parameters of every atom in P from the topology.
// Atoms without parameters keep their current values, and a warning is issued.
func Assign(P *rotagen.Protein, T rotagen.Topology, D *rotagen.Diagnostics) {
	for _, r := range P.Residues {
		for _, c := range r.Confs {
			AssignConformer(c, T, D)
		}
	}
}

// AssignConformer sets the radius parameters of the atoms in c.
func AssignConformer(c *rotagen.Conformer, T rotagen.Topology, D *rotagen.Diagnostics) {
	for _, a := range c.Atoms() {
		rec, ok := T.Radius(c.Type, a.Name)
		if !ok {
			D.Warnf("No radius parameters for atom %s", a.ID())
			continue
		}
		a.RBound = rec.RBound
		a.RVdw = rec.RVdw
		a.EVdw = rec.EVdw
	}
	c.Touch()
}
