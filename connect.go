/*
 * connect.go, part of rotagen.
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

package rotagen

import "math"

// BondDistanceScaling multiplies the sum of the VDW radii of two atoms to
// obtain the largest distance at which they are considered bonded.
const BondDistanceScaling = 0.54

// Connect rebuilds the 1-2, 1-3 and 1-4 connectivity of every atom in P.
// The radius parameters need to be assigned before calling it.
func Connect(P *Protein, T Topology, D *Diagnostics) {
	ResetConnect(P)
	Connect12(P, T, D)
	Connect13(P)
	Connect14(P)
}

// ResetConnect empties all the connectivity lists in P.
func ResetConnect(P *Protein) {
	for _, r := range P.Residues {
		for _, c := range r.Confs {
			c.ResetConnect()
		}
	}
}

// Connect12 builds the 1-2 (bonded) lists of every atom in P, from the
// topology and, for bonds between residues, from the distances between atoms.
// Missing heavy atom partners are reported to D. Missing hydrogens are ignored.
func Connect12(P *Protein, T Topology, D *Diagnostics) {
	for ir, res := range P.Residues {
		for _, conf := range res.Confs {
			for _, atom := range conf.atoms {
				rec, ok := T.Connect(atom.Name, conf.Type)
				if !ok {
					D.Warnf("No connectivity record for atom %s", atom.ID())
					continue
				}
				for _, partner := range rec.Partners {
					if partner == LigandMark {
						if !ligate(P, T, ir, atom) {
							terminusLigate(P, ir, atom)
						}
						continue //ligand bonds are optional
					}
					if bondNamed(P, ir, conf, atom, partner) {
						continue
					}
					if !IsHName(partner) && !atom.IsH() {
						D.Warnf("Atom %s bonded to %s was not found", partner, atom.ID())
					}
				}
			}
		}
	}
}

// bondCutoff2 returns the squared largest bonding distance between a and b.
func bondCutoff2(a, b *Atom) float64 {
	r := (a.RVdw + b.RVdw) * BondDistanceScaling
	return r * r
}

func appendUnique(list []*Atom, a *Atom) []*Atom {
	if inAtoms(list, a) {
		return list
	}
	return append(list, a)
}

func ligated(T Topology, a *Atom) bool {
	rec, ok := T.Connect(a.Name, a.conf.Type)
	return ok && rec.Ligated()
}

// ligate looks for a ligand bond of atom in other residues. Ligated atoms
// within bonding distance are bonded. Otherwise, the residue-pair rules
// from the topology are tried, and bonds found that way are reciprocal.
// The search stops at the first residue where a partner is found.
func ligate(P *Protein, T Topology, ir int, atom *Atom) bool {
	res := P.Residues[ir]
	found := false
	for _, res2 := range P.Residues {
		if res2 == res {
			continue
		}
		for _, conf2 := range res2.Confs {
			for _, atom2 := range conf2.atoms {
				if !ligated(T, atom2) {
					continue
				}
				d2 := atom.Dist2(atom2)
				if d2 < bondCutoff2(atom, atom2) && !inAtoms(atom.Connect12, atom2) {
					atom.Connect12 = append(atom.Connect12, atom2)
					found = true
					continue
				}
				rule, ok := T.LigandRule(res.Name, res2.Name)
				if !ok {
					continue
				}
				if rule.Matches(atom.Name, atom2.Name, math.Sqrt(d2)) {
					atom.Connect12 = appendUnique(atom.Connect12, atom2)
					atom2.Connect12 = appendUnique(atom2.Connect12, atom)
					found = true
				}
			}
		}
		if found {
			break
		}
	}
	return found
}

// terminusLigate handles the ligand bonds of split terminal residues and
// of chain ends. It returns true if the bond was resolved.
func terminusLigate(P *Protein, ir int, atom *Atom) bool {
	res := P.Residues[ir]
	found := false
	//the CA of a split N-terminus bonds the CB of the next residue
	if (res.Name == "NTR" || res.Name == "NTG") && atom.Name == "CA" && ir+1 < len(P.Residues) {
		for _, conf2 := range P.Residues[ir+1].SideChains() {
			for _, atom2 := range conf2.atoms {
				if atom2.Name == "CB" && atom.Dist2(atom2) < bondCutoff2(atom, atom2) {
					atom.Connect12 = appendUnique(atom.Connect12, atom2)
					found = true
				}
			}
		}
	}
	//N of the first residue of a chain.
	if !found && atom.Name == "N" && (ir == 0 || P.Residues[ir-1].Chain != res.Chain) {
		found = true
	}
	if !found && res.Name == "CTR" && atom.Name == "C" && ir > 0 {
		for _, atom2 := range P.Residues[ir-1].Confs[0].atoms {
			if atom2.Name == "CA" && atom.Dist2(atom2) < bondCutoff2(atom, atom2) {
				atom.Connect12 = appendUnique(atom.Connect12, atom2)
				found = true
			}
		}
	}
	//no C-terminus after this residue
	if !found && atom.Name == "C" {
		found = true
	}
	return found
}

// bondNamed bonds atom, in conformer conf of the residue ir, to the atom called partner.
// It returns true if the partner was found.
func bondNamed(P *Protein, ir int, conf *Conformer, atom *Atom, partner string) bool {
	res := P.Residues[ir]
	firstIn := func(c *Conformer) bool {
		if a := c.AtomByName(partner); a != nil {
			atom.Connect12 = appendUnique(atom.Connect12, a)
			return true
		}
		return false
	}
	//in all side chains of a residue
	allIn := func(r *Residue) bool {
		found := false
		for _, c := range r.SideChains() {
			if firstIn(c) {
				found = true
			}
		}
		return found
	}
	if firstIn(res.Confs[0]) || firstIn(conf) {
		return true
	}
	if conf.IsBackbone() && allIn(res) {
		return true
	}
	//split termini: the partner is in the previous (NTR) or next (CTR) residue.
	if ir > 0 && ((atom.Name == "CB" && partner == "CA") || (atom.Name == "C" && partner == "CA")) {
		if allIn(P.Residues[ir-1]) {
			return true
		}
	}
	if atom.Name == "CA" && partner == "C" {
		if ir+1 >= len(P.Residues) {
			return true
		}
		if allIn(P.Residues[ir+1]) {
			return true
		}
	}
	if ir > 0 && atom.Name == "CB" && partner == "CA" {
		found := false
		for _, c := range P.Residues[ir-1].Confs {
			for _, a := range c.atoms {
				if a.Name == "CA" && atom.Dist2(a) < bondCutoff2(atom, a) {
					atom.Connect12 = appendUnique(atom.Connect12, a)
					found = true
					break
				}
			}
		}
		if found {
			return true
		}
	}
	return false
}

// inScope returns true if a relation from a to b through the bonded network
// can be recorded: b is a backbone atom, or belongs to another residue, or to a's conformer.
func inScope(a, b *Atom) bool {
	if b.conf == a.conf {
		return true
	}
	br := b.conf.res
	if br == nil || br != a.conf.res {
		return true
	}
	return br.Confs[0] == b.conf
}

// Connect13 builds the 1-3 lists of every atom in P from the 1-2 lists.
func Connect13(P *Protein) {
	for _, r := range P.Residues {
		for _, c := range r.Confs {
			for _, atom := range c.atoms {
				atom.Connect13 = nil
				for _, a2 := range atom.Connect12 {
					if a2 == atom {
						continue
					}
					for _, a3 := range a2.Connect12 {
						if a3 == atom || inAtoms(atom.Connect12, a3) || inAtoms(atom.Connect13, a3) {
							continue
						}
						if inScope(atom, a3) {
							atom.Connect13 = append(atom.Connect13, a3)
						}
					}
				}
			}
		}
	}
}

// Connect14 builds the 1-4 lists of every atom in P. Connect13 must have been called before.
func Connect14(P *Protein) {
	for _, r := range P.Residues {
		for _, c := range r.Confs {
			for _, atom := range c.atoms {
				atom.Connect14 = nil
				for _, a3 := range atom.Connect13 {
					if a3 == atom {
						continue
					}
					for _, a4 := range a3.Connect12 {
						if a4 == atom || inAtoms(atom.Connect12, a4) || inAtoms(atom.Connect13, a4) || inAtoms(atom.Connect14, a4) {
							continue
						}
						if inScope(atom, a4) {
							atom.Connect14 = append(atom.Connect14, a4)
						}
					}
				}
			}
		}
	}
}
