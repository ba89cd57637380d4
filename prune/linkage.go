/*
 * linkage.go, part of rotagen.
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

package prune

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// AverageLinkage clusters the n elements whose distances are given in d with the
// average linkage (UPGMA) method. Clusters are merged, closest pair first, while their
// distance is smaller than cutoff. It returns the clusters, each with its members in
// increasing order, sorted by their first member.
func AverageLinkage(d *mat.SymDense, cutoff float64) [][]int {
	n := d.SymmetricDim()
	if n < 2 {
		if n == 1 {
			return [][]int{{0}}
		}
		return nil
	}
	members := make([][]int, n)
	alive := make([]bool, n)
	//dist is the working distance matrix between clusters. A cluster
	//is stored in the slot of the first of the two merged.
	dist := mat.NewSymDense(n, nil)
	dist.CopySym(d)
	for i := range members {
		members[i] = []int{i}
		alive[i] = true
	}
	for {
		bi, bj := -1, -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !alive[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if alive[j] && dist.At(i, j) < best {
					best = dist.At(i, j)
					bi, bj = i, j
				}
			}
		}
		if bi < 0 || !(best < cutoff) {
			break
		}
		ni, nj := float64(len(members[bi])), float64(len(members[bj]))
		for k := 0; k < n; k++ {
			if !alive[k] || k == bi || k == bj {
				continue
			}
			//Lance-Williams update for average linkage
			dist.SetSym(bi, k, (ni*dist.At(bi, k)+nj*dist.At(bj, k))/(ni+nj))
		}
		members[bi] = merge(members[bi], members[bj])
		members[bj] = nil
		alive[bj] = false
	}
	var ret [][]int
	for i, m := range members {
		if alive[i] {
			ret = append(ret, m)
		}
	}
	return ret
}

// merge returns the union of the sorted slices a and b, sorted.
func merge(a, b []int) []int {
	ret := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			ret = append(ret, a[i])
			i++
		} else {
			ret = append(ret, b[j])
			j++
		}
	}
	ret = append(ret, a[i:]...)
	return append(ret, b[j:]...)
}
