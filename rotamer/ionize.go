/*
 * ionize.go, part of rotagen.
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
	"sort"
	"strings"

	"github.com/rmera/rotagen"
)

// Ionize propagates the ionization (and other) variants of each residue: every side chain
// conformer is copied once for each variant type of the residue, other than its own,
// that is not a backbone or a dummy (atomless) type. Atoms not defined for the new type
// are dropped from the copy. The side chain conformers are then sorted in the order of
// the residue's conformer type list, the original order being kept within a type.
// It returns the number of new conformers. The connectivity needs to be rebuilt afterwards.
func Ionize(P *rotagen.Protein, T rotagen.Topology, D *rotagen.Diagnostics) int {
	total := 0
	for _, res := range P.Residues {
		total += IonizeResidue(res, T, D)
	}
	return total
}

// IonizeResidue propagates the variants of res.
func IonizeResidue(res *rotagen.Residue, T rotagen.Topology, D *rotagen.Diagnostics) int {
	if res.NSideChains() == 0 {
		return 0
	}
	list := T.ConfList(res.Name)
	var variants []string
	for _, t := range list {
		if strings.HasSuffix(t, rotagen.BackboneCode) || !T.Defined(t) {
			continue
		}
		variants = append(variants, t)
	}
	var newconfs []*rotagen.Conformer
	for _, c := range res.SideChains() {
		for _, v := range variants {
			if v == c.Type {
				continue
			}
			newconfs = append(newconfs, retype(c, v, T))
		}
	}
	res.Add(newconfs...)
	order := make(map[string]int, len(list))
	for i, t := range list {
		order[t] = i
	}
	for _, c := range res.SideChains() {
		if _, ok := order[c.Type]; !ok {
			D.Warnf("Conformer type %s is not in the conformer list of %s", c.Type, res.Label())
			order[c.Type] = len(order)
		}
	}
	confs := append([]*rotagen.Conformer(nil), res.Confs...)
	sc := confs[1:]
	sort.SliceStable(sc, func(i, j int) bool {
		return order[sc[i].Type] < order[sc[j].Type]
	})
	res.SetConfs(confs)
	return len(newconfs)
}

func retype(c *rotagen.Conformer, ctype string, T rotagen.Topology) *rotagen.Conformer {
	N := c.Clone()
	N.Type = ctype
	N.History = c.History.Derive(rotagen.Ionized)
	N.Filter(func(a *rotagen.Atom) bool {
		_, ok := T.Connect(a.Name, ctype)
		return ok
	})
	return N
}
