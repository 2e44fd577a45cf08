/*
 * cell.go, part of gocryst
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//Fractional is a position expressed in fractions of the unit-cell vectors.
type Fractional struct {
	X, Y, Z float64
}

//Wrap returns the equivalent fractional position with every component wrapped
//into [0,1).
func (f Fractional) Wrap() Fractional {
	return Fractional{
		X: f.X - math.Floor(f.X),
		Y: f.Y - math.Floor(f.Y),
		Z: f.Z - math.Floor(f.Z),
	}
}

//FTransform is a symmetry operation in fractional space: a rotation part and a
//translation part, so that the image of f is Rot*f + Trans.
type FTransform struct {
	Rot   Mat33
	Trans Fractional
}

//Apply returns the image of f under the transform.
func (t FTransform) Apply(f Fractional) Fractional {
	return Fractional{
		X: t.Rot[0][0]*f.X + t.Rot[0][1]*f.Y + t.Rot[0][2]*f.Z + t.Trans.X,
		Y: t.Rot[1][0]*f.X + t.Rot[1][1]*f.Y + t.Rot[1][2]*f.Z + t.Trans.Y,
		Z: t.Rot[2][0]*f.X + t.Rot[2][1]*f.Y + t.Rot[2][2]*f.Z + t.Trans.Z,
	}
}

//UnitCell holds the cell parameters (lengths in Å, angles in degrees), the
//orthogonalization/fractionalization transforms derived from them, and the list of
//symmetry images applicable to the cell (excluding identity). How the images are
//derived from a space-group symbol is outside this module: whoever builds the cell
//fills Images. A UnitCell is meant to be built once per structure and shared by
//reference; nothing in this library mutates it after construction.
type UnitCell struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
	Volume             float64
	Images             []FTransform
	orth, frac         Mat33
}

//NewUnitCell returns a unit cell with the given lengths and angles, with the
//transform matrices already computed. It returns an error for non-positive lengths
//or angles outside (0,180).
func NewUnitCell(a, b, c, alpha, beta, gamma float64) (*UnitCell, error) {
	if a <= 0 || b <= 0 || c <= 0 ||
		alpha <= 0 || alpha >= 180 || beta <= 0 || beta >= 180 || gamma <= 0 || gamma >= 180 {
		return nil, CError{fmt.Sprintf("cryst: invalid cell parameters %g %g %g %g %g %g",
			a, b, c, alpha, beta, gamma), []string{"NewUnitCell"}}
	}
	u := &UnitCell{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma}
	u.calculateMatrices()
	return u, nil
}

//TrivialCell returns the dummy 1x1x1 orthogonal cell used for isolated-molecule
//models that have no crystallographic periodicity.
func TrivialCell() *UnitCell {
	u, _ := NewUnitCell(1, 1, 1, 90, 90, 90) //hardcoded parameters, can't fail
	return u
}

//IsCrystal reports whether the cell is a genuine crystallographic cell, as opposed
//to the trivial placeholder returned by TrivialCell.
func (u *UnitCell) IsCrystal() bool {
	return !(u.A == 1 && u.B == 1 && u.C == 1 && u.Alpha == 90 && u.Beta == 90 && u.Gamma == 90)
}

//cosdeg and sindeg return exact values at the right angles so that orthogonal and
//monoclinic cells don't pick up spurious 1e-17 off-diagonal terms.
func cosdeg(x float64) float64 {
	if x == 90 {
		return 0
	}
	return math.Cos(x * Deg2Rad)
}

func sindeg(x float64) float64 {
	if x == 90 {
		return 1
	}
	return math.Sin(x * Deg2Rad)
}

func (u *UnitCell) calculateMatrices() {
	ca, cb, cg := cosdeg(u.Alpha), cosdeg(u.Beta), cosdeg(u.Gamma)
	sg := sindeg(u.Gamma)
	//v is the volume of a cell with unit-length edges and the same angles.
	v := math.Sqrt(1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg)
	u.Volume = u.A * u.B * u.C * v
	u.orth = Mat33{
		{u.A, u.B * cg, u.C * cb},
		{0, u.B * sg, u.C * (ca - cb*cg) / sg},
		{0, 0, u.C * v / sg},
	}
	//the fractionalization matrix is the closed-form inverse of the upper-triangular
	//orthogonalization matrix.
	u.frac = Mat33{
		{1 / u.A, -cg / (u.A * sg), (ca*cg - cb) / (u.A * v * sg)},
		{0, 1 / (u.B * sg), (cb*cg - ca) / (u.B * v * sg)},
		{0, 0, sg / (u.C * v)},
	}
}

//Fractionalize converts a Cartesian position to fractional coordinates.
func (u *UnitCell) Fractionalize(p r3.Vec) Fractional {
	v := u.frac.MulVec(p)
	return Fractional{X: v.X, Y: v.Y, Z: v.Z}
}

//Orthogonalize converts fractional coordinates back to a Cartesian position.
func (u *UnitCell) Orthogonalize(f Fractional) r3.Vec {
	return u.orth.MulVec(r3.Vec{X: f.X, Y: f.Y, Z: f.Z})
}

//DistanceSq returns the squared distance between p1 and p2 under the periodic
//minimum-image convention (plain Euclidean distance for a non-crystal cell).
//Symmetry mates are not considered here; proximity across symmetry images is the
//business of the subcell engine.
func (u *UnitCell) DistanceSq(p1, p2 r3.Vec) float64 {
	d := r3.Sub(p1, p2)
	if !u.IsCrystal() {
		return r3.Norm2(d)
	}
	f := u.Fractionalize(d)
	f.X -= math.Round(f.X)
	f.Y -= math.Round(f.Y)
	f.Z -= math.Round(f.Z)
	return r3.Norm2(u.Orthogonalize(f))
}

//Distance returns the minimum-image distance between p1 and p2.
func (u *UnitCell) Distance(p1, p2 r3.Vec) float64 {
	return math.Sqrt(u.DistanceSq(p1, p2))
}
