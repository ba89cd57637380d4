/*
 * rotate.go, part of rotagen.
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
	"fmt"
	"math"

	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/chemgraph"
	v3 "github.com/rmera/rotagen/v3"
)

// axis is a resolved rotatable bond for one conformer: the atom that,
// with the pivot, defines the axis, the pivot, and the indexes in the
// conformer of the atoms that move.
type axis struct {
	atom1, pivot *rotagen.Atom
	moved        []int
}

// findAtom looks for name in c and then in the backbone of res.
func findAtom(c *rotagen.Conformer, res *rotagen.Residue, name string) *rotagen.Atom {
	if a := c.AtomByName(name); a != nil {
		return a
	}
	if res != nil {
		return res.Backbone().AtomByName(name)
	}
	return nil
}

// resolveAxis finds the atoms of the rule in c and the atoms moved by a
// rotation around it. The pivot needs to belong to c, and the first atom
// needs to be bonded to it.
func resolveAxis(c *rotagen.Conformer, res *rotagen.Residue, rule [2]string) (*axis, error) {
	pivot := c.AtomByName(rule[1])
	atom1 := findAtom(c, res, rule[0])
	if pivot == nil || atom1 == nil {
		return nil, rotagen.Errorf("residue %s, conformer %s: atoms of rotatable bond %s-%s not found", res.Label(), c.ID(), rule[0], rule[1])
	}
	if !pivot.Bonded(atom1) && !atom1.Bonded(pivot) {
		return nil, rotagen.Errorf("residue %s, conformer %s: atoms of rotatable bond %s-%s are not bonded", res.Label(), c.ID(), rule[0], rule[1])
	}
	ax := &axis{atom1: atom1, pivot: pivot}
	for _, a := range chemgraph.Affected(atom1, pivot, true) {
		if a.Conformer() == c {
			ax.moved = append(ax.moved, a.Index())
		}
	}
	return ax, nil
}

// rotated returns a clone of c with the moved atoms of ax rotated by angle
// radians, and its history derived with st. The axis atoms need to be those of c,
// or of its backbone.
func rotated(c *rotagen.Conformer, ax *axis, angle float64, st rotagen.Stage) (*rotagen.Conformer, error) {
	N := c.Clone()
	N.History = c.History.Derive(st)
	if len(ax.moved) == 0 {
		return N, nil
	}
	sub := v3.Zeros(len(ax.moved))
	if err := sub.SomeVecsSafe(c.Coords(), ax.moved); err != nil {
		return nil, rotagen.ErrDecorate(err, fmt.Sprintf("rotated %s", c.ID()))
	}
	rot, err := rotagen.RotateAbout(sub, ax.atom1.Coord(), ax.pivot.Coord(), angle)
	if err != nil {
		return nil, rotagen.ErrDecorate(err, "rotated")
	}
	N.SetVecs(rot, ax.moved)
	return N, nil
}

// Rotate generates, for each rotatable bond of each residue of P, O.Rotations-1
// evenly spaced rotations of every side chain conformer, including those produced
// by the previous bonds, so the rotamers of the different bonds compound.
// The new conformers are added to their residues. It returns the number of new
// conformers. A rotatable bond with atoms missing in a conformer is a fatal error.
func Rotate(P *rotagen.Protein, T rotagen.Topology, O *Options) (int, error) {
	O = orDefault(O)
	total := 0
	for _, res := range P.Residues {
		n, err := RotateResidue(res, T.RotateAxes(res.Name), O.Rotations)
		total += n
		if err != nil {
			return total, rotagen.ErrDecorate(err, "Rotate")
		}
	}
	return total, nil
}

// RotateResidue applies the rotations for the given rotatable bonds to the side chain
// conformers of res, with steps positions per bond (the original one included).
func RotateResidue(res *rotagen.Residue, axes [][2]string, steps int) (int, error) {
	if res.NSideChains() == 0 || steps < 2 {
		return 0, nil
	}
	total := 0
	delta := 2 * math.Pi / float64(steps)
	for _, rule := range axes {
		var newconfs []*rotagen.Conformer
		for _, c := range res.SideChains() {
			ax, err := resolveAxis(c, res, rule)
			if err != nil {
				return total, err
			}
			for i := 1; i < steps; i++ {
				N, err := rotated(c, ax, float64(i)*delta, rotagen.Rotate)
				if err != nil {
					return total, rotagen.ErrDecorate(err, "RotateResidue")
				}
				newconfs = append(newconfs, N)
			}
		}
		res.Add(newconfs...)
		total += len(newconfs)
	}
	return total, nil
}

// SwingConformer returns the conformers obtained by rotating c by +phi and -phi
// degrees around each of the given rotatable bonds. Each bond is applied to c and to
// the conformers produced by the previous bonds. c is not modified and the new
// conformers are not added to res, which is only used to find the backbone atoms.
func SwingConformer(c *rotagen.Conformer, res *rotagen.Residue, axes [][2]string, phi float64) ([]*rotagen.Conformer, error) {
	var ret []*rotagen.Conformer
	rad := rotagen.Deg2Rad(phi)
	for _, rule := range axes {
		base := append([]*rotagen.Conformer{c}, ret...)
		for _, b := range base {
			ax, err := resolveAxis(b, res, rule)
			if err != nil {
				return nil, err
			}
			for _, sign := range []float64{1, -1} {
				N, err := rotated(b, ax, sign*rad, rotagen.Swing)
				if err != nil {
					return nil, rotagen.ErrDecorate(err, "SwingConformer")
				}
				ret = append(ret, N)
			}
		}
	}
	return ret, nil
}

// Swing adds, to each residue of P, the swings by O.PhiSwing of every side chain
// conformer present when the residue is processed. It returns the number of new conformers.
func Swing(P *rotagen.Protein, T rotagen.Topology, O *Options) (int, error) {
	O = orDefault(O)
	total := 0
	for _, res := range P.Residues {
		axes := T.RotateAxes(res.Name)
		if len(axes) == 0 {
			continue
		}
		var newconfs []*rotagen.Conformer
		for _, c := range res.SideChains() {
			sw, err := SwingConformer(c, res, axes, O.PhiSwing)
			if err != nil {
				return total, rotagen.ErrDecorate(err, "Swing")
			}
			newconfs = append(newconfs, sw...)
		}
		res.Add(newconfs...)
		total += len(newconfs)
	}
	return total, nil
}
