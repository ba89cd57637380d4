/*
 * sas.go, part of rotagen.
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

// Package sas estimates solvent accessible surfaces by point sampling, and the
// exposure of a conformer: the ratio between its accessible surface in the protein
// and that of the isolated residue.
package sas

import (
	"math"

	"github.com/rmera/rotagen"
	v3 "github.com/rmera/rotagen/v3"
)

// DefaultPoints is the default number of sampling points per atom.
const DefaultPoints = 122

// DefaultProbe is the default probe radius in A.
const DefaultProbe = 1.4

const areaK = 4 * math.Pi

// Sphere returns n points distributed evenly on the unit sphere, using a
// Fibonacci lattice. n must be larger than 1.
func Sphere(n int) *v3.Matrix {
	if n < 2 {
		panic("sas: at least 2 points are needed")
	}
	ret := v3.Zeros(n)
	phi := math.Pi * (3 - math.Sqrt(5)) //golden angle
	for i := 0; i < n; i++ {
		y := 1 - (float64(i)/float64(n-1))*2
		r := math.Sqrt(1 - y*y)
		theta := phi * float64(i)
		ret.Set(i, 0, math.Cos(theta)*r)
		ret.Set(i, 1, y)
		ret.Set(i, 2, math.Sin(theta)*r)
	}
	return ret
}

// Surface computes accessible surfaces with a fixed set of sampling points.
// It can be used concurrently.
type Surface struct {
	points *v3.Matrix
	probe  float64
}

// NewSurface returns a Surface with the given number of points per atom and probe radius.
func NewSurface(points int, probe float64) *Surface {
	return &Surface{points: Sphere(points), probe: probe}
}

type sphere struct {
	atom *rotagen.Atom
	x    [3]float64
	r    float64
}

func radius(a *rotagen.Atom) float64 {
	el := a.Element
	if el == "" {
		el = rotagen.ElementFromName(a.Name)
	}
	return rotagen.ElementRadius(el)
}

func spheres(atoms []*rotagen.Atom) []sphere {
	ret := make([]sphere, len(atoms))
	for i, a := range atoms {
		c := a.Conformer().Coords().RawRowView(a.Index())
		ret[i] = sphere{atom: a, x: [3]float64{c[0], c[1], c[2]}, r: radius(a)}
	}
	return ret
}

// Area returns the accessible surface of atoms, occluded by themselves and by env.
func (S *Surface) Area(atoms, env []*rotagen.Atom) float64 {
	target := spheres(atoms)
	all := append(spheres(env), target...)
	return S.area(target, inRange(target, all, S.probe))
}

func (S *Surface) area(target, occluders []sphere) float64 {
	n := S.points.NVecs()
	var total float64
	for _, t := range target {
		rext := t.r + S.probe
		free := n
		for i := 0; i < n; i++ {
			p := S.points.RawRowView(i)
			px, py, pz := p[0]*rext+t.x[0], p[1]*rext+t.x[1], p[2]*rext+t.x[2]
			for _, o := range occluders {
				if o.atom == t.atom {
					continue
				}
				dx, dy, dz := px-o.x[0], py-o.x[1], pz-o.x[2]
				r2 := o.r + S.probe
				if dx*dx+dy*dy+dz*dz < r2*r2 {
					free--
					break
				}
			}
		}
		total += areaK * rext * rext * float64(free) / float64(n)
	}
	return total
}

// inRange returns the spheres in all that are close enough to the bounding box of target
// to occlude any of its points.
func inRange(target, all []sphere, probe float64) []sphere {
	if len(target) == 0 {
		return nil
	}
	lo := target[0].x
	hi := target[0].x
	for _, t := range target[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], t.x[k])
			hi[k] = math.Max(hi[k], t.x[k])
		}
	}
	ret := make([]sphere, 0, len(all))
	for _, s := range all {
		m := 2*probe + s.r + 2
		in := true
		for k := 0; k < 3; k++ {
			if s.x[k] <= lo[k]-m || s.x[k] >= hi[k]+m {
				in = false
				break
			}
		}
		if in {
			ret = append(ret, s)
		}
	}
	return ret
}

// Reference is the structure against which exposures are measured: the backbone
// and the first side chain conformer of every residue.
type Reference struct {
	byRes map[*rotagen.Residue][]*rotagen.Atom
	order []*rotagen.Residue
}

// NewReference builds the reference structure of P.
func NewReference(P *rotagen.Protein) *Reference {
	R := &Reference{byRes: make(map[*rotagen.Residue][]*rotagen.Atom, len(P.Residues))}
	for _, r := range P.Residues {
		atoms := append([]*rotagen.Atom(nil), r.Confs[0].Atoms()...)
		if len(r.Confs) > 1 {
			atoms = append(atoms, r.Confs[1].Atoms()...)
		}
		R.byRes[r] = atoms
		R.order = append(R.order, r)
	}
	return R
}

// Environment returns the reference atoms that don't belong to res.
func (R *Reference) Environment(res *rotagen.Residue) []*rotagen.Atom {
	var ret []*rotagen.Atom
	for _, r := range R.order {
		if r != res {
			ret = append(ret, R.byRes[r]...)
		}
	}
	return ret
}

// Exposure returns the ratio between the accessible surface of the conformer c plus the
// backbone of its residue, in the reference structure, and that of the same atoms isolated.
// The other side chain conformers of the residue are not part of the environment.
// res is the residue c belongs (or would belong) to.
func (S *Surface) Exposure(c *rotagen.Conformer, res *rotagen.Residue, ref *Reference) float64 {
	if c.Len() == 0 {
		return 0
	}
	atoms := append(append([]*rotagen.Atom(nil), c.Atoms()...), res.Confs[0].Atoms()...)
	target := spheres(atoms)
	naked := S.area(target, target)
	if naked == 0 {
		return 0
	}
	env := spheres(ref.Environment(res))
	inprot := S.area(target, inRange(target, append(env, target...), S.probe))
	return inprot / naked
}
