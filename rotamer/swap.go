/*
 * swap.go, part of rotagen.
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
	"github.com/rmera/rotagen"
)

// Swap adds, for each pair of equivalent atoms declared for a residue, a copy of
// each side chain conformer with the coordinates, charges and radii of the two atoms
// exchanged. Conformers produced for a pair are also swapped for the following pairs.
// Conformers that lack one of the atoms of a pair are skipped. It returns the number
// of new conformers.
func Swap(P *rotagen.Protein, T rotagen.Topology) int {
	total := 0
	for _, res := range P.Residues {
		total += SwapResidue(res, T.SwapPairs(res.Name))
	}
	return total
}

// SwapResidue applies the given swap pairs to the side chain conformers of res.
func SwapResidue(res *rotagen.Residue, pairs [][2]string) int {
	total := 0
	for _, pair := range pairs {
		var newconfs []*rotagen.Conformer
		for _, c := range res.SideChains() {
			a, b := c.AtomByName(pair[0]), c.AtomByName(pair[1])
			if a == nil || b == nil {
				continue
			}
			newconfs = append(newconfs, swapped(c, a.Index(), b.Index()))
		}
		res.Add(newconfs...)
		total += len(newconfs)
	}
	return total
}

func swapped(c *rotagen.Conformer, i, j int) *rotagen.Conformer {
	N := c.Clone()
	N.History = c.History.Derive(rotagen.Swap)
	N.Coords().SwapVecs(i, j)
	N.Touch()
	a, b := N.Atom(i), N.Atom(j)
	a.Charge, b.Charge = b.Charge, a.Charge
	a.RBound, b.RBound = b.RBound, a.RBound
	a.RVdw, b.RVdw = b.RVdw, a.RVdw
	a.EVdw, b.EVdw = b.EVdw, a.EVdw
	return N
}
