/*
 * geometric.go, part of rotagen.
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
	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Deg2Rad converts degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

// Angle takes 2 vectors and calculate the angle in radians between them
// It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm2() * v2.Norm2()
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

// AngleAt returns the angle, in radians, between the vectors b->a and b->c.
func AngleAt(a, b, c *v3.Matrix) float64 {
	ba := v3.Zeros(1)
	ba.Sub(a, b)
	bc := v3.Zeros(1)
	bc.Sub(c, b)
	return Angle(ba, bc)
}

// Rotator returns the matrix that, multiplied to the right of a set of row
// vectors, rotates them by angle radians around axis, which passes through the origin.
// It uses the Rodrigues rotation formula.
func Rotator(axis *v3.Matrix, angle float64) (*v3.Matrix, error) {
	if axis.Norm2() <= appzero {
		return nil, NewError("Rotator: zero-length rotation axis", true)
	}
	k := v3.Zeros(1)
	k.Unit(axis)
	x, y, z := k.At(0, 0), k.At(0, 1), k.At(0, 2)
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	//R rotates column vectors. We return its transpose, which rotates row vectors.
	R := mat.NewDense(3, 3, []float64{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c,
	})
	ret := v3.Zeros(3)
	ret.Copy(R.T())
	return ret, nil
}

// RotateAbout rotates the coordinates in coordsorig by angle radians around the axis
// given by the vectors ax1 and ax2. It returns the rotated coordinates. The original ones are not affected.
func RotateAbout(coordsorig, ax1, ax2 *v3.Matrix, angle float64) (*v3.Matrix, error) {
	axis := v3.Zeros(1)
	axis.Sub(ax2, ax1)
	rot, err := Rotator(axis, angle)
	if err != nil {
		return nil, errDecorate(err, "RotateAbout")
	}
	n := coordsorig.NVecs()
	coords := v3.Zeros(n)
	if n == 0 {
		return coords, nil
	}
	translation := ax1.Clone()
	coords.SubVec(coordsorig, translation)
	rotated := v3.Zeros(n)
	rotated.Mul(coords.Dense, rot.Dense)
	rotated.AddVec(rotated, translation)
	return rotated, nil
}
