/*
 * mat33.go, part of gocryst
 *
 * Copyright 2024 The gocryst developers
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package cryst

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//Mat33 is a row-major 3x3 matrix. It covers the few fixed-size operations this
//library needs (cell transforms, symmetry rotations, the second-moment matrix of a
//point set); general linear algebra is left to gonum.
type Mat33 [3][3]float64

//MulVec returns m*v.
func (m *Mat33) MulVec(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

//Det returns the determinant of the matrix.
func (m *Mat33) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

//SymEigenvalues returns the three (real) eigenvalues of the matrix, which must be
//symmetric, using the closed-form trigonometric solution rather than an iterative
//factorization. The first returned value is the largest and the last the smallest.
func (m *Mat33) SymEigenvalues() [3]float64 {
	p1 := m[0][1]*m[0][1] + m[0][2]*m[0][2] + m[1][2]*m[1][2]
	if p1 == 0 { //the matrix is diagonal
		e := [3]float64{m[0][0], m[1][1], m[2][2]}
		if e[0] < e[1] {
			e[0], e[1] = e[1], e[0]
		}
		if e[1] < e[2] {
			e[1], e[2] = e[2], e[1]
		}
		if e[0] < e[1] {
			e[0], e[1] = e[1], e[0]
		}
		return e
	}
	q := (m[0][0] + m[1][1] + m[2][2]) / 3
	p2 := sq(m[0][0]-q) + sq(m[1][1]-q) + sq(m[2][2]-q) + 2*p1
	p := math.Sqrt(p2 / 6)
	var b Mat33 //b = (1/p)(m - q*I)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = m[i][j]
			if i == j {
				b[i][j] -= q
			}
			b[i][j] /= p
		}
	}
	r := b.Det() / 2
	//r is in [-1,1] for an exactly symmetric matrix; clamp the floating-point rest
	if r < -1 {
		r = -1
	} else if r > 1 {
		r = 1
	}
	phi := math.Acos(r) / 3
	e1 := q + 2*p*math.Cos(phi)
	e3 := q + 2*p*math.Cos(phi+2*math.Pi/3)
	return [3]float64{e1, 3*q - e1 - e3, e3}
}

//SymEigenvector returns the normalized eigenvector of the (symmetric) matrix for
//the given eigenvalue, computed from cross products of the rows of m-eigval*I. If
//the eigenvalue is degenerate the result is NaN; point sets that produce such
//moment matrices (e.g. perfectly spherical ones) have no unique best plane anyway.
func (m *Mat33) SymEigenvector(eigval float64) r3.Vec {
	r0 := r3.Vec{X: m[0][0] - eigval, Y: m[0][1], Z: m[0][2]}
	r1 := r3.Vec{X: m[0][1], Y: m[1][1] - eigval, Z: m[1][2]}
	r2 := r3.Vec{X: m[0][2], Y: m[1][2], Z: m[2][2] - eigval}
	best := r3.Cross(r0, r1)
	if c := r3.Cross(r0, r2); r3.Norm2(c) > r3.Norm2(best) {
		best = c
	}
	if c := r3.Cross(r1, r2); r3.Norm2(c) > r3.Norm2(best) {
		best = c
	}
	return r3.Unit(best)
}

func sq(x float64) float64 { return x * x }
