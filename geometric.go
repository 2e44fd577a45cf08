/*
 * geometric.go, part of gocryst
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

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything closer to +-1 than this is clamped before acos.

//Angle returns the angle, in radians and within [0,pi], defined at p1 by the
//points p0 and p2.
func Angle(p0, p1, p2 r3.Vec) float64 {
	a := r3.Sub(p0, p1)
	b := r3.Sub(p2, p1)
	argument := r3.Dot(a, b) / math.Sqrt(r3.Norm2(a)*r3.Norm2(b))
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	return math.Acos(argument)
}

//Dihedral returns the torsion angle, in radians and within (-pi,pi], defined by
//the points p0,p1,p2,p3: the angle between the plane through p0,p1,p2 and the
//plane through p1,p2,p3. The atan2 formulation is numerically stable near 0 and
//180 degrees, where an arccosine of normalized dot products degrades.
//See https://stackoverflow.com/questions/20305272/ for the derivation.
func Dihedral(p0, p1, p2, p3 r3.Vec) float64 {
	b0 := r3.Sub(p1, p0)
	b1 := r3.Sub(p2, p1)
	b2 := r3.Sub(p3, p2)
	u := r3.Cross(b1, b0)
	w := r3.Cross(b2, b1)
	y := r3.Dot(r3.Cross(u, w), b1)
	x := r3.Dot(u, w) * r3.Norm(b1)
	return math.Atan2(y, x)
}

//DihedralAtoms is the nil-safe form of Dihedral: if any of the four atoms is
//absent (a missing neighbor at a chain terminus, a missing linked residue) it
//returns NaN instead of failing. The NaN deliberately contaminates any naive
//arithmetic downstream, so callers have to filter explicitly.
func DihedralAtoms(a, b, c, d *Atom) float64 {
	if a == nil || b == nil || c == nil || d == nil {
		return math.NaN()
	}
	return Dihedral(a.Pos, b.Pos, c.Pos, d.Pos)
}

//ChiralVolume returns the signed volume spanned by the three vectors from center
//to a1, a2 and a3 (their scalar triple product). The sign encodes the handedness
//of the center, which is what chirality restraints check.
func ChiralVolume(center, a1, a2, a3 r3.Vec) float64 {
	return r3.Dot(r3.Sub(a1, center), r3.Cross(r3.Sub(a2, center), r3.Sub(a3, center)))
}

//BestFitPlane returns the coefficients (a,b,c,d) of the least-squares plane
//a*x+b*y+c*z+d=0 through the given points, with (a,b,c) unit-length. The normal is
//the eigenvector, for the eigenvalue of smallest magnitude, of the second-moment
//matrix of the centered points, solved in closed form. The sign is normalized so
//that a >= 0, which makes repeated calls with permuted input deterministic. An
//empty point set is a precondition violation and returns an error.
func BestFitPlane(points []r3.Vec) ([4]float64, error) {
	if len(points) == 0 {
		return [4]float64{}, CError{"cryst: empty point set given for plane fitting", []string{"BestFitPlane"}}
	}
	var mean r3.Vec
	for _, p := range points {
		mean = r3.Add(mean, p)
	}
	mean = r3.Scale(1/float64(len(points)), mean)
	var m Mat33
	for _, p := range points {
		d := r3.Sub(p, mean)
		m[0][0] += d.X * d.X
		m[0][1] += d.X * d.Y
		m[0][2] += d.X * d.Z
		m[1][1] += d.Y * d.Y
		m[1][2] += d.Y * d.Z
		m[2][2] += d.Z * d.Z
	}
	m[1][0] = m[0][1]
	m[2][0] = m[0][2]
	m[2][1] = m[1][2]
	evals := m.SymEigenvalues()
	smallest := evals[0]
	for _, e := range evals[1:] {
		if math.Abs(e) < math.Abs(smallest) {
			smallest = e
		}
	}
	normal := m.SymEigenvector(smallest)
	if normal.X < 0 {
		normal = r3.Scale(-1, normal)
	}
	return [4]float64{normal.X, normal.Y, normal.Z, -r3.Dot(normal, mean)}, nil
}

//DistanceFromPlane returns the signed distance from p to the plane with the given
//coefficients, as produced by BestFitPlane.
func DistanceFromPlane(p r3.Vec, coeff [4]float64) float64 {
	return coeff[0]*p.X + coeff[1]*p.Y + coeff[2]*p.Z + coeff[3]
}
