/*
 * blob.go, part of rotagen.
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

import (
	"math"

	v3 "github.com/rmera/rotagen/v3"
)

// Blob is a sphere that covers all the atoms of a conformer, including their
// VDW radii. Conformers whose blobs are far apart don't interact.
type Blob struct {
	Center *v3.Matrix
	Radius float64
}

// Blob returns the bounding volume of the conformer. It is computed the
// first time it is requested after any change in the coordinates.
func (C *Conformer) Blob() *Blob {
	if C.blob == nil {
		C.blob = NewBlob(C)
	}
	return C.blob
}

// NewBlob computes the bounding volume of C. The radius is the distance from
// the centroid to the farthest atom plus the largest VDW radius in the conformer.
func NewBlob(C *Conformer) *Blob {
	B := &Blob{Center: v3.Zeros(1)}
	n := C.Len()
	if n == 0 {
		return B
	}
	c := B.Center.RawRowView(0)
	for i := 0; i < n; i++ {
		r := C.coords.RawRowView(i)
		c[0] += r[0]
		c[1] += r[1]
		c[2] += r[2]
	}
	c[0] /= float64(n)
	c[1] /= float64(n)
	c[2] /= float64(n)
	rmax := 0.0
	dfar2 := 0.0
	for i, a := range C.atoms {
		if a.RVdw > rmax {
			rmax = a.RVdw
		}
		r := C.coords.RawRowView(i)
		dx, dy, dz := r[0]-c[0], r[1]-c[1], r[2]-c[2]
		if d2 := dx*dx + dy*dy + dz*dz; d2 > dfar2 {
			dfar2 = d2
		}
	}
	B.Radius = math.Sqrt(dfar2) + rmax
	return B
}

// Apart returns true if the distance between the centers of both blobs
// is larger than the sum of their radii plus margin.
func (B *Blob) Apart(O *Blob, margin float64) bool {
	d := B.Center.Distance(0, O.Center, 0)
	return d > B.Radius+O.Radius+margin
}
