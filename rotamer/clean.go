/*
 * clean.go, part of rotagen.
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
	"github.com/rmera/rotagen/vdw"
)

// CleanSelfEnergy removes the conformers produced by rotations or swings whose self
// energy plus their energy with all the backbones exceeds O.SelfVDWCutoff.
// The backbone and the first side chain conformer of each residue are never removed.
// The connectivity of P needs to be up to date. It returns the number of removed conformers.
func CleanSelfEnergy(P *rotagen.Protein, O *Options) int {
	O = orDefault(O)
	removed := 0
	for _, res := range P.Residues {
		if len(res.Confs) <= 2 {
			continue
		}
		kept := append(make([]*rotagen.Conformer, 0, len(res.Confs)), res.Confs[:2]...)
		for _, c := range res.Confs[2:] {
			o := c.History.Origin
			if (o == rotagen.Rotate || o == rotagen.Swing) && vdw.BackboneExceeds(c, P, O.VDW, O.SelfVDWCutoff) {
				removed++
				continue
			}
			kept = append(kept, c)
		}
		res.SetConfs(kept)
	}
	return removed
}
