package cryst

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

//residues with synthetic backbone coordinates chosen for known torsions, not
//taken from any real peptide.
func twoResidues() (*Residue, *Residue) {
	r1 := &Residue{Name: "GLY", ID: 1, Atoms: []*Atom{
		{Name: "N", Pos: r3.Vec{X: -1, Y: 1, Z: 0}},
		{Name: "CA", Pos: r3.Vec{X: 0, Y: 1, Z: 0}},
		{Name: "C", Pos: r3.Vec{X: 0, Y: 0, Z: 0}},
	}}
	r2 := &Residue{Name: "GLY", ID: 2, Atoms: []*Atom{
		{Name: "N", Pos: r3.Vec{X: 1, Y: 0, Z: 0}},
		{Name: "CA", Pos: r3.Vec{X: 1, Y: -1, Z: 0}},
		{Name: "C", Pos: r3.Vec{X: 2, Y: -1, Z: 0}},
	}}
	return r1, r2
}

func TestOmega(t *testing.T) {
	r1, r2 := twoResidues()
	//CA-C-N-CA all in a plane, CA atoms on opposite sides: trans, omega=pi
	om := Omega(r1, r2)
	if !scalar.EqualWithinAbs(math.Abs(om), math.Pi, 1e-12) {
		t.Errorf("got %v, want +-pi", om)
	}
}

func TestOmegaMissingAtom(t *testing.T) {
	r1, r2 := twoResidues()
	r2.Atoms = r2.Atoms[1:] //drop N
	if om := Omega(r1, r2); !math.IsNaN(om) {
		t.Errorf("missing N should give NaN, got %v", om)
	}
}

func TestPhiPsi(t *testing.T) {
	r1, r2 := twoResidues()
	phi, psi := PhiPsi(r1, r2, nil)
	if math.IsNaN(phi) {
		t.Error("phi should be defined with a previous residue present")
	}
	if !math.IsNaN(psi) {
		t.Errorf("psi with no next residue should be NaN, got %v", psi)
	}
	phi, psi = PhiPsi(nil, r1, r2)
	if !math.IsNaN(phi) {
		t.Errorf("phi with no previous residue should be NaN, got %v", phi)
	}
	if math.IsNaN(psi) {
		t.Error("psi should be defined with a next residue present")
	}
	//psi of r1 is the torsion N-CA-C-N(next): all four atoms coplanar here
	if !scalar.EqualWithinAbs(math.Abs(psi), math.Pi, 1e-12) {
		t.Errorf("got psi %v, want +-pi", psi)
	}
}

func TestPhiPsiNilResidue(t *testing.T) {
	phi, psi := PhiPsi(nil, nil, nil)
	if !math.IsNaN(phi) || !math.IsNaN(psi) {
		t.Errorf("nil residue should give NaN/NaN, got %v %v", phi, psi)
	}
}
