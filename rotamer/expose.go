/*
 * expose.go, part of rotagen.
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
	"github.com/rmera/rotagen/sas"
)

// Expose looks for a more exposed conformer for each polar residue whose first side chain
// conformer is more exposed than O.Exposure.Threshold, in a reference structure made of the
// backbones and the first side chain conformers of all residues. Starting from the first side
// chain conformer, it swings the conformer around its rotatable bonds and keeps the most exposed
// result, while that improves the exposure, for each of the angles in O.Exposure.Schedule.
// The final conformer is added if its exposure is larger than that of the start by more than
// O.Exposure.MinGain. It returns the number of new conformers.
func Expose(P *rotagen.Protein, T rotagen.Topology, O *Options, D *rotagen.Diagnostics) (int, error) {
	O = orDefault(O)
	E := &O.Exposure
	surf := sas.NewSurface(E.Points, E.Probe)
	ref := sas.NewReference(P)
	total := 0
	for _, res := range P.Residues {
		if res.NSideChains() == 0 || E.nonPolar(res.Name) {
			continue
		}
		axes := T.RotateAxes(res.Name)
		if len(axes) == 0 {
			continue
		}
		start := res.Confs[1]
		e0 := surf.Exposure(start, res, ref)
		if e0 <= E.Threshold {
			continue
		}
		best, ebest := start, e0
		for _, phi := range E.Schedule {
			for iter := 0; iter < E.MaxIter; iter++ {
				cands, err := SwingConformer(best, res, axes, phi)
				if err != nil {
					return total, rotagen.ErrDecorate(err, "Expose")
				}
				improved := false
				for _, c := range cands {
					if e := surf.Exposure(c, res, ref); e > ebest {
						best, ebest = c, e
						improved = true
					}
				}
				if !improved {
					break
				}
			}
		}
		if ebest-e0 <= E.MinGain {
			continue
		}
		if best == start {
			best = start.Clone()
		}
		best.History = best.History.Derive(rotagen.Exposed)
		res.Add(best)
		total++
		D.Infof("Exposure of %s increased from %.3f to %.3f", res.Label(), e0, ebest)
	}
	return total, nil
}
