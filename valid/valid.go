/*
 * valid.go, part of gocryst
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

//Package valid scores a model against ideal-geometry restraints. Each restraint
//compares a measured quantity (a bond length, an angle, a torsion, a chiral
//volume sign, the flatness of a ring) against its library value and reports the
//deviation in sigma units (the Z score). The package aggregates per-kind RMS(Z)
//and RMS(deviation) and lists the restraints past a cutoff; deriving the
//restraint list from a monomer library is the caller's problem.
package valid

import (
	"fmt"
	"math"
	"strings"

	cryst "github.com/gocryst/gocryst"
	"gonum.org/v1/gonum/spatial/r3"
)

//Kind labels the restraint families.
type Kind int

const (
	Bond Kind = iota
	Angle
	Torsion
	Chirality
	Plane
)

func (k Kind) String() string {
	switch k {
	case Bond:
		return "bond"
	case Angle:
		return "angle"
	case Torsion:
		return "torsion"
	case Chirality:
		return "chirality"
	case Plane:
		return "plane"
	}
	return "unknown"
}

//Handedness is the expected sign of a chiral volume. Both accepts either sign,
//for centers that the library does not resolve.
type Handedness int

const (
	Positive Handedness = iota
	Negative
	Both
)

//Restraint is one ideal-geometry item bound to concrete atoms of a model.
//Value is the measured quantity; it is NaN when an atom the restraint needs is
//missing from the model, and such restraints are skipped by Validate. Z is the
//signed deviation in sigma units, except for chirality where it is 0 (correct
//hand) or 1 (wrong hand), mirroring how sign checks have no natural sigma.
type Restraint interface {
	Kind() Kind
	Label() string
	Sigma() float64
	Value() float64
	Z() float64
}

//BondRestraint restrains the distance between two atoms.
type BondRestraint struct {
	Name   string
	Atoms  [2]*cryst.Atom
	Ideal  float64 //Å
	Esd    float64 //Å
}

func (b *BondRestraint) Kind() Kind { return Bond }
func (b *BondRestraint) Label() string { return b.Name }
func (b *BondRestraint) Sigma() float64 { return b.Esd }

func (b *BondRestraint) Value() float64 {
	if b.Atoms[0] == nil || b.Atoms[1] == nil {
		return math.NaN()
	}
	return r3.Norm(r3.Sub(b.Atoms[0].Pos, b.Atoms[1].Pos))
}

func (b *BondRestraint) Z() float64 {
	return (b.Value() - b.Ideal) / b.Esd
}

//AngleRestraint restrains the angle at the middle of three atoms. Ideal and Esd
//are in degrees, as monomer libraries give them.
type AngleRestraint struct {
	Name  string
	Atoms [3]*cryst.Atom
	Ideal float64 //degrees
	Esd   float64 //degrees
}

func (a *AngleRestraint) Kind() Kind { return Angle }
func (a *AngleRestraint) Label() string { return a.Name }
func (a *AngleRestraint) Sigma() float64 { return a.Esd }

func (a *AngleRestraint) Value() float64 {
	if a.Atoms[0] == nil || a.Atoms[1] == nil || a.Atoms[2] == nil {
		return math.NaN()
	}
	return cryst.Angle(a.Atoms[0].Pos, a.Atoms[1].Pos, a.Atoms[2].Pos) * cryst.Rad2Deg
}

func (a *AngleRestraint) Z() float64 {
	return angleDiff(a.Value()-a.Ideal, 360) / a.Esd
}

//TorsionRestraint restrains a torsion angle, with the periodicity of the
//library value: a Period of 3 means the ideal repeats every 120 degrees, so an
//observation near any of the three symmetric positions scores the same.
type TorsionRestraint struct {
	Name   string
	Atoms  [4]*cryst.Atom
	Ideal  float64 //degrees
	Esd    float64 //degrees
	Period int
}

func (t *TorsionRestraint) Kind() Kind { return Torsion }
func (t *TorsionRestraint) Label() string { return t.Name }
func (t *TorsionRestraint) Sigma() float64 { return t.Esd }

func (t *TorsionRestraint) Value() float64 {
	return cryst.DihedralAtoms(t.Atoms[0], t.Atoms[1], t.Atoms[2], t.Atoms[3]) * cryst.Rad2Deg
}

func (t *TorsionRestraint) Z() float64 {
	full := 360.0
	if t.Period > 1 {
		full /= float64(t.Period)
	}
	return angleDiff(t.Value()-t.Ideal, full) / t.Esd
}

//ChiralityRestraint restrains the handedness of a center: the sign of the
//volume spanned by its three substituents.
type ChiralityRestraint struct {
	Name   string
	Center *cryst.Atom
	Atoms  [3]*cryst.Atom
	Sign   Handedness
}

func (c *ChiralityRestraint) Kind() Kind { return Chirality }
func (c *ChiralityRestraint) Label() string { return c.Name }
func (c *ChiralityRestraint) Sigma() float64 { return 0 }

//Value returns the signed chiral volume at the center.
func (c *ChiralityRestraint) Value() float64 {
	if c.Center == nil || c.Atoms[0] == nil || c.Atoms[1] == nil || c.Atoms[2] == nil {
		return math.NaN()
	}
	return cryst.ChiralVolume(c.Center.Pos, c.Atoms[0].Pos, c.Atoms[1].Pos, c.Atoms[2].Pos)
}

//Correct reports whether the measured volume has the expected sign.
func (c *ChiralityRestraint) Correct() bool {
	v := c.Value()
	switch c.Sign {
	case Positive:
		return v > 0
	case Negative:
		return v < 0
	}
	return true //Both
}

func (c *ChiralityRestraint) Z() float64 {
	if c.Correct() {
		return 0
	}
	return 1
}

//PlaneRestraint restrains a group of atoms to be coplanar. The plane itself is
//not a library value: it is re-fit to the atoms, and the score is the worst
//atom's distance from the fitted plane in sigma units.
type PlaneRestraint struct {
	Name  string
	Atoms []*cryst.Atom
	Esd   float64 //Å
}

func (p *PlaneRestraint) Kind() Kind { return Plane }
func (p *PlaneRestraint) Label() string { return p.Name }
func (p *PlaneRestraint) Sigma() float64 { return p.Esd }

//Value returns the largest absolute distance of a member atom from the best-fit
//plane through all member atoms.
func (p *PlaneRestraint) Value() float64 {
	pts := make([]r3.Vec, 0, len(p.Atoms))
	for _, at := range p.Atoms {
		if at == nil {
			return math.NaN()
		}
		pts = append(pts, at.Pos)
	}
	coeff, err := cryst.BestFitPlane(pts)
	if err != nil {
		return math.NaN()
	}
	max := 0.0
	for _, pt := range pts {
		if d := math.Abs(cryst.DistanceFromPlane(pt, coeff)); d > max {
			max = d
		}
	}
	return max
}

func (p *PlaneRestraint) Z() float64 {
	return p.Value() / p.Esd
}

//angleDiff reduces a difference of angles (degrees) into (-full/2, full/2].
func angleDiff(diff, full float64) float64 {
	diff = math.Mod(diff, full)
	if diff > full/2 {
		diff -= full
	} else if diff <= -full/2 {
		diff += full
	}
	return diff
}

//RMS accumulates a root-mean-square incrementally.
type RMS struct {
	N     int
	sumSq float64
}

//Put adds one value to the accumulator.
func (r *RMS) Put(x float64) {
	r.N++
	r.sumSq += x * x
}

//Value returns the RMS of everything Put so far, 0 if nothing was.
func (r *RMS) Value() float64 {
	if r.N == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.N))
}

//Violation is one restraint whose |Z| exceeded the validation cutoff.
type Violation struct {
	Restraint Restraint
	Z         float64 //absolute value
}

//Report is the aggregate outcome of a validation run: RMS of Z and of the plain
//deviation (Z*sigma, in the restraint's own unit) per restraint kind, chirality
//counters, and the list of violations in input order.
type Report struct {
	ZBond, ZAngle, ZTorsion, ZPlane RMS
	DBond, DAngle, DTorsion, DPlane RMS
	WrongChirality, AllChiralities  int
	Violations                      []Violation
}

//Validate scores every restraint and aggregates the results. Restraints whose
//measured value is NaN (missing atoms) are skipped entirely. Chirality
//restraints feed the counters, not the RMS aggregates nor the cutoff: a wrong
//hand is always reported as a violation regardless of cutoff.
func Validate(restraints []Restraint, cutoff float64) *Report {
	rep := new(Report)
	for _, r := range restraints {
		v := r.Value()
		if math.IsNaN(v) {
			continue
		}
		if r.Kind() == Chirality {
			rep.AllChiralities++
			if r.Z() != 0 {
				rep.WrongChirality++
				rep.Violations = append(rep.Violations, Violation{r, 1})
			}
			continue
		}
		z := math.Abs(r.Z())
		var zr, dr *RMS
		switch r.Kind() {
		case Bond:
			zr, dr = &rep.ZBond, &rep.DBond
		case Angle:
			zr, dr = &rep.ZAngle, &rep.DAngle
		case Torsion:
			zr, dr = &rep.ZTorsion, &rep.DTorsion
		case Plane:
			zr, dr = &rep.ZPlane, &rep.DPlane
		}
		zr.Put(z)
		dr.Put(z * r.Sigma())
		if z > cutoff {
			rep.Violations = append(rep.Violations, Violation{r, z})
		}
	}
	return rep
}

//String formats the report the way refinement programs summarize geometry.
func (rep *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rmsZ: bond: %.3f, angle: %.3f, torsion: %.3f, planarity: %.3f\n",
		rep.ZBond.Value(), rep.ZAngle.Value(), rep.ZTorsion.Value(), rep.ZPlane.Value())
	fmt.Fprintf(&b, "rmsD: bond: %.3f, angle: %.3f, torsion: %.3f, planarity: %.3f\n",
		rep.DBond.Value(), rep.DAngle.Value(), rep.DTorsion.Value(), rep.DPlane.Value())
	fmt.Fprintf(&b, "wrong chirality: %d of %d\n", rep.WrongChirality, rep.AllChiralities)
	for _, viol := range rep.Violations {
		if viol.Restraint.Kind() == Chirality {
			fmt.Fprintf(&b, "wrong chirality of %s\n", viol.Restraint.Label())
		} else {
			fmt.Fprintf(&b, "%s %s: |Z|=%.1f\n", viol.Restraint.Kind(), viol.Restraint.Label(), viol.Z)
		}
	}
	return b.String()
}
