/*
 * v3_test.go, part of rotagen.
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

package v3

import (
	"math"
	"testing"
)

func TestVecView(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("view did not write through: %v", A)
	}
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	if err = B.SomeVecsSafe(A, cind); err != nil {
		Te.Fatal(err)
	}
	if B.At(2, 2) != 18 || B.At(0, 0) != 4 {
		Te.Errorf("wrong vectors selected: %v", B)
	}
	C := Zeros(2)
	if err = C.SomeVecsSafe(A, cind); err == nil {
		Te.Errorf("expected a shape error")
	}
	B.Scale(0, B)
	A.SetVecs(B, cind)
	if A.At(3, 1) != 0 || A.At(0, 0) != 1 {
		Te.Errorf("SetVecs failed: %v", A)
	}
}

func TestCrossUnit(Te *testing.T) {
	x, _ := NewMatrix([]float64{2, 0, 0})
	y, _ := NewMatrix([]float64{0, 3, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 6 || z.At(0, 0) != 0 {
		Te.Errorf("wrong cross product %v", z)
	}
	z.Unit(z)
	if math.Abs(z.Norm2()-1) > 1e-12 {
		Te.Errorf("Unit did not normalize %v", z)
	}
	if x.Dot(y) != 0 {
		Te.Errorf("orthogonal vectors with non-zero dot product")
	}
	if d := x.Distance(0, y, 0); math.Abs(d-math.Sqrt(13)) > 1e-12 {
		Te.Errorf("wrong distance %f", d)
	}
}

func TestSubAddVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	v, _ := NewMatrix([]float64{1, 1, 1})
	A.SubVec(A, v)
	if A.At(0, 0) != 0 || A.At(1, 2) != 1 {
		Te.Errorf("SubVec failed %v", A)
	}
	A.AddVec(A, v)
	if A.At(1, 1) != 2 {
		Te.Errorf("AddVec failed %v", A)
	}
	if Zeros(0).NVecs() != 0 {
		Te.Errorf("empty matrix should have no vectors")
	}
}
