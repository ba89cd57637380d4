/*
 * graph.go, part of rotagen.
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

// Package chemgraph represents the bonded network of a conformer as a gonum graph,
// and uses it to find the atoms moved by a rotation around a bond.
package chemgraph

import (
	"sort"

	"github.com/rmera/rotagen"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Atom is a graph node wrapping a rotagen atom.
type Atom struct {
	*rotagen.Atom
	id int64
}

// ID returns the node ID of the atom.
func (A *Atom) ID() int64 {
	return A.id
}

// Topology is an undirected graph with the atoms of a side chain conformer and
// of the backbone of its residue as nodes, and their 1-2 relations as edges.
// Bonds to atoms outside that set are not included.
type Topology struct {
	*simple.UndirectedGraph
	nodes map[*rotagen.Atom]*Atom
}

// FromConformer builds the graph of c and the backbone of its residue, if any.
func FromConformer(c *rotagen.Conformer) *Topology {
	T := &Topology{UndirectedGraph: simple.NewUndirectedGraph(), nodes: make(map[*rotagen.Atom]*Atom)}
	confs := []*rotagen.Conformer{c}
	if r := c.Residue(); r != nil && r.Confs[0] != c {
		confs = append(confs, r.Confs[0])
	}
	var id int64
	for _, cc := range confs {
		for _, a := range cc.Atoms() {
			n := &Atom{Atom: a, id: id}
			id++
			T.nodes[a] = n
			T.AddNode(n)
		}
	}
	for a, n := range T.nodes {
		for _, b := range a.Connect12 {
			m, ok := T.nodes[b]
			if !ok || m == n || T.HasEdgeBetween(n.ID(), m.ID()) {
				continue
			}
			T.SetEdge(simple.Edge{F: n, T: m})
		}
	}
	return T
}

// AtomNode returns the node for the atom a, or nil if a is not in the graph.
func (T *Topology) AtomNode(a *rotagen.Atom) *Atom {
	return T.nodes[a]
}

// Affected returns the heavy atoms that move when the bonded network is rotated
// around the axis from axis to pivot: those reached from pivot without crossing
// axis. The axis atoms are not included. If withH is true, the hydrogens bonded to
// the affected atoms or to the pivot are included. The atoms are returned in
// conformer order (backbone atoms last).
func (T *Topology) Affected(axis, pivot *rotagen.Atom, withH bool) []*rotagen.Atom {
	from, ok := T.nodes[pivot]
	if !ok {
		return nil
	}
	blocked := func(n graph.Node) bool {
		a := n.(*Atom).Atom
		return a == axis || a.IsH()
	}
	bf := traverse.BreadthFirst{
		Traverse: func(e graph.Edge) bool {
			return !blocked(e.From()) && !blocked(e.To())
		},
	}
	var ret []*rotagen.Atom
	bf.Walk(T, from, func(n graph.Node, _ int) bool {
		if a := n.(*Atom).Atom; a != pivot {
			ret = append(ret, a)
		}
		return false
	})
	if withH {
		heavy := append([]*rotagen.Atom{pivot}, ret...)
		for _, h := range heavy {
			n := T.nodes[h]
			to := graph.NodesOf(T.From(n.ID()))
			for _, m := range to {
				if a := m.(*Atom).Atom; a.IsH() && a != axis {
					ret = append(ret, a)
				}
			}
		}
	}
	sort.Slice(ret, func(i, j int) bool {
		return T.nodes[ret[i]].id < T.nodes[ret[j]].id
	})
	return ret
}

// Affected is a convenience function that builds the graph for the conformer of pivot
// and returns the atoms affected by a rotation around the axis-pivot bond.
func Affected(axis, pivot *rotagen.Atom, withH bool) []*rotagen.Atom {
	return FromConformer(pivot.Conformer()).Affected(axis, pivot, withH)
}
