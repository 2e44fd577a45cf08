package cryst

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestAddAtom(t *testing.T) {
	st := new(Structure)
	st.AddAtom("A", "GLY", 1, &Atom{Name: "N", Symbol: "N"})
	st.AddAtom("A", "GLY", 1, &Atom{Name: "CA", Symbol: "C"})
	st.AddAtom("A", "ALA", 2, &Atom{Name: "N", Symbol: "N"})
	st.AddAtom("B", "HOH", 1, &Atom{Name: "O", Symbol: "O"})

	want := &Structure{Chains: []*Chain{
		{Name: "A", Residues: []*Residue{
			{Name: "GLY", ID: 1, Atoms: []*Atom{
				{Name: "N", Symbol: "N"}, {Name: "CA", Symbol: "C"},
			}},
			{Name: "ALA", ID: 2, Atoms: []*Atom{{Name: "N", Symbol: "N"}}},
		}},
		{Name: "B", Residues: []*Residue{
			{Name: "HOH", ID: 1, Atoms: []*Atom{{Name: "O", Symbol: "O"}}},
		}},
	}}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("structure mismatch (-want +got):\n%s", diff)
	}
	if n := st.NumAtomSites(); n != 4 {
		t.Errorf("NumAtomSites: got %d", n)
	}
}

func TestAddAtomNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding a nil atom should panic")
		}
	}()
	new(Structure).AddAtom("A", "GLY", 1, nil)
}

func TestResidueGet(t *testing.T) {
	r := &Residue{Name: "ALA", ID: 1, Atoms: []*Atom{
		{Name: "N"}, {Name: "CA"}, {Name: "CB"},
	}}
	if at := r.Get("CA"); at == nil || at.Name != "CA" {
		t.Errorf("Get(CA): got %v", at)
	}
	if at := r.Get("OXT"); at != nil {
		t.Errorf("Get of a missing atom should be nil, got %v", at)
	}
	if at := r.Atom(2); at.Name != "CB" {
		t.Errorf("Atom(2): got %v", at)
	}
}

func TestResidueAtomPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("out-of-bounds Atom should panic")
		}
	}()
	r := &Residue{Atoms: []*Atom{{Name: "N"}}}
	r.Atom(3)
}

func TestAtomCopy(t *testing.T) {
	a := &Atom{Name: "CA", Symbol: "C", Occupancy: 0.5, Bfactor: 20, Pos: r3.Vec{X: 1}}
	b := a.Copy()
	b.Pos.X = 9
	if a.Pos.X != 1 {
		t.Error("Copy did not detach the position")
	}
	if diff := cmp.Diff(a, &Atom{Name: "CA", Symbol: "C", Occupancy: 0.5, Bfactor: 20, Pos: r3.Vec{X: 1}}); diff != "" {
		t.Errorf("original changed:\n%s", diff)
	}
}

func TestOccupanciesAndBox(t *testing.T) {
	st := new(Structure)
	st.AddAtom("A", "GLY", 1, &Atom{Name: "N", Occupancy: 1, Pos: r3.Vec{X: -1, Y: 2, Z: 0}})
	st.AddAtom("A", "GLY", 1, &Atom{Name: "CA", Occupancy: 0.5, Pos: r3.Vec{X: 4, Y: -3, Z: 7}})
	if s := st.SumOccupancies(); s != 1.5 {
		t.Errorf("SumOccupancies: got %v", s)
	}
	min, max := st.BoundingBox()
	if min.X != -1 || min.Y != -3 || min.Z != 0 || max.X != 4 || max.Y != 2 || max.Z != 7 {
		t.Errorf("BoundingBox: got %v %v", min, max)
	}
	empty := new(Structure)
	min, max = empty.BoundingBox()
	if min != (r3.Vec{}) || max != (r3.Vec{}) {
		t.Errorf("empty box: got %v %v", min, max)
	}
}
