/*
 * hbond.go, part of rotagen.
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

package rotamer

import (
	"math"
	"strings"

	"github.com/rmera/rotagen"
	v3 "github.com/rmera/rotagen/v3"
)

// polar returns true if a can be a donor or an acceptor.
func (H *HBondOptions) polar(a *rotagen.Atom) bool {
	return !a.IsH() && a.Charge < H.MinCharge && !H.excluded(a.Element)
}

type acceptor struct {
	atom  *rotagen.Atom
	coord *v3.Matrix
}

// donor is a heavy atom of a side chain conformer that can have its
// hydrogens redirected.
type donor struct {
	atom   *rotagen.Atom
	heavy  []*rotagen.Atom //bonded heavy atoms
	hs     []int           //indexes of the bonded hydrogens in the conformer
	coord  *v3.Matrix
	record *rotagen.ConnectRecord
}

// newDonor returns the donor data for a, or nil if a can't be a donor:
// it needs to be sp3, to have at most one heavy atom bonded, and to have
// its hydrogens present.
func newDonor(a *rotagen.Atom, T rotagen.Topology) *donor {
	c := a.Conformer()
	rec, ok := T.Connect(a.Name, c.Type)
	if !ok || !strings.EqualFold(rec.Hybrid, "sp3") {
		return nil
	}
	hpartners := false
	for _, p := range rec.Partners {
		if p != rotagen.LigandMark && rotagen.IsHName(p) {
			hpartners = true
			break
		}
	}
	if !hpartners {
		return nil
	}
	d := &donor{atom: a, coord: a.Coord(), record: rec}
	for _, b := range a.Connect12 {
		if !b.IsH() {
			d.heavy = append(d.heavy, b)
		}
	}
	if len(d.heavy) > 1 {
		return nil
	}
	for _, h := range c.Atoms() {
		if h.IsH() && (h.Bonded(a) || a.Bonded(h)) {
			d.hs = append(d.hs, h.Index())
		}
	}
	if len(d.hs) == 0 {
		return nil
	}
	return d
}

// HBond adds, for each side chain conformer with a donor close enough to an
// acceptor of another residue, a copy of the conformer with the donor's hydrogens
// placed in tetrahedral positions so that one of them points to the acceptor.
// Placements blocked by atoms bonded to the acceptor are discarded.
// The connectivity of P needs to be up to date. It returns the number of new conformers.
func HBond(P *rotagen.Protein, T rotagen.Topology, O *Options) int {
	O = orDefault(O)
	H := &O.HBond
	var accs []acceptor
	for _, c := range P.Conformers() {
		for _, a := range c.Atoms() {
			if H.polar(a) {
				accs = append(accs, acceptor{atom: a, coord: a.Coord()})
			}
		}
	}
	newconfs := make([][]*rotagen.Conformer, len(P.Residues))
	total := 0
	for ir, res := range P.Residues {
		for _, c := range res.SideChains() {
			for _, a := range c.Atoms() {
				if !H.polar(a) {
					continue
				}
				d := newDonor(a, T)
				if d == nil {
					continue
				}
				for _, acc := range accs {
					if acc.atom.Residue() == res {
						continue
					}
					dist := d.coord.Distance(0, acc.coord, 0)
					if dist <= H.Near || dist >= H.Far {
						continue
					}
					pos := H.place(d, acc)
					if pos == nil {
						continue
					}
					N := c.Clone()
					N.History = c.History.Derive(rotagen.HBond)
					for i, idx := range d.hs {
						if i >= len(pos) {
							break
						}
						N.SetCoord(idx, pos[i])
					}
					newconfs[ir] = append(newconfs[ir], N)
					total++
				}
			}
		}
	}
	for ir, res := range P.Residues {
		res.Add(newconfs[ir]...)
	}
	return total
}

// place returns the positions for the hydrogens of d, with the first one
// pointing to acc, or nil if the hydrogen bond is blocked.
func (H *HBondOptions) place(d *donor, acc acceptor) []*v3.Matrix {
	bl := H.BondLength
	theta := rotagen.Deg2Rad(H.SP3Angle)
	var first *v3.Matrix
	var rest []*v3.Matrix
	if len(d.heavy) == 1 {
		//the first hydrogen goes in the plane of the heavy neighbour, the donor and the acceptor.
		pos := tetrahedral(d.coord, d.heavy[0].Coord(), acc.coord, bl, theta)
		if pos == nil {
			return nil
		}
		first, rest = pos[0], pos[1:]
	} else {
		toacc := v3.Zeros(1)
		toacc.Sub(acc.coord, d.coord)
		u, ok := unit(toacc)
		if !ok {
			return nil
		}
		first = v3.Zeros(1)
		first.Scale(bl, u)
		first.Add(first, d.coord)
		rest = tetrahedral(d.coord, first, nil, bl, theta)
	}
	if H.blocked(d, acc, first) {
		return nil
	}
	return append([]*v3.Matrix{first}, rest...)
}

// blocked returns true if the donor-hydrogen-acceptor angle is too small, or if
// an atom bonded to the acceptor lies between the acceptor and the hydrogen h.
func (H *HBondOptions) blocked(d *donor, acc acceptor, h *v3.Matrix) bool {
	limit := rotagen.Deg2Rad(H.BlockingAngle)
	if rotagen.AngleAt(d.coord, h, acc.coord) <= limit {
		return true
	}
	for _, q := range acc.atom.Connect12 {
		if rotagen.AngleAt(q.Coord(), acc.coord, h) < limit {
			return true
		}
	}
	return false
}

func unit(v *v3.Matrix) (*v3.Matrix, bool) {
	if v.Norm2() <= 1e-6 {
		return nil, false
	}
	u := v3.Zeros(1)
	u.Unit(v)
	return u, true
}

// tetrahedral returns the 3 positions at distance bl from r0 that complete a
// tetrahedral center with the bond r0-r1, theta being the angle between the
// bonds. If ref is not nil, the first position lies in the plane of r1, r0 and ref,
// on the side of ref. It returns nil if ref is aligned with the r0-r1 bond.
func tetrahedral(r0, r1, ref *v3.Matrix, bl, theta float64) []*v3.Matrix {
	b := v3.Zeros(1)
	b.Sub(r1, r0)
	uz, ok := unit(b)
	if !ok {
		return nil
	}
	if ref == nil {
		//any direction not parallel to the bond will do.
		ref = r0.Clone()
		if math.Abs(uz.At(0, 0)) < 0.9 {
			ref.Set(0, 0, ref.At(0, 0)+1)
		} else {
			ref.Set(0, 1, ref.At(0, 1)+1)
		}
	}
	toref := v3.Zeros(1)
	toref.Sub(ref, r0)
	perp := v3.Zeros(1)
	perp.Cross(uz, toref)
	perp.Cross(perp, uz)
	ux, ok := unit(perp)
	if !ok {
		return nil
	}
	uy := v3.Zeros(1)
	uy.Cross(uz, ux)
	ret := make([]*v3.Matrix, 3)
	for k := range ret {
		phi := 2 * math.Pi * float64(k) / 3
		p := v3.Zeros(1)
		for _, t := range []struct {
			c float64
			v *v3.Matrix
		}{{math.Cos(theta), uz}, {math.Sin(theta) * math.Cos(phi), ux}, {math.Sin(theta) * math.Sin(phi), uy}} {
			tmp := v3.Zeros(1)
			tmp.Scale(bl*t.c, t.v)
			p.Add(p, tmp)
		}
		p.Add(p, r0)
		ret[k] = p
	}
	return ret
}
