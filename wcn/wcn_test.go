package wcn

import (
	"math"
	"math/rand"
	"testing"

	cryst "github.com/gocryst/gocryst"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestWeight(t *testing.T) {
	if w := Weight(4, 2); w != 0.25 {
		t.Errorf("inverse-square: got %v", w)
	}
	if w := Weight(4, 0); w != 1 {
		t.Errorf("unweighted: got %v", w)
	}
	if w := Weight(4, 1); !scalar.EqualWithinAbs(w, 0.5, 1e-12) {
		t.Errorf("exponent 1: got %v", w)
	}
	if w := Weight(9, 4); !scalar.EqualWithinAbs(w, 1.0/81, 1e-12) {
		t.Errorf("exponent 4: got %v", w)
	}
}

func TestRanks(t *testing.T) {
	got := Ranks([]float64{3, 1, 2, 1})
	want := []float64{4, 1, 3, 2} //ties ranked in input order
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestOptions(t *testing.T) {
	o := DefaultOptions()
	if o.MinDist() != 0.8 || o.MaxDist() != 15 || o.Exp() != 2 || !o.SameResidue() {
		t.Error("unexpected defaults")
	}
	old := o.MaxDist(10)
	if old != 15 || o.MaxDist() != 10 {
		t.Errorf("accessor: old %v, new %v", old, o.MaxDist())
	}
	o.MaxDist(-1) //invalid, ignored
	if o.MaxDist() != 10 {
		t.Error("invalid value should be ignored")
	}
	o.Exp(0)
	if o.Exp() != 0 {
		t.Error("exponent 0 is a valid setting")
	}
}

func TestTwoAtomContacts(t *testing.T) {
	st := new(cryst.Structure)
	st.AddAtom("A", "GLY", 1, &cryst.Atom{Name: "CA", Symbol: "C", Occupancy: 1, Bfactor: 10, Pos: r3.Vec{X: 0}})
	st.AddAtom("A", "GLY", 2, &cryst.Atom{Name: "CA", Symbol: "C", Occupancy: 1, Bfactor: 20, Pos: r3.Vec{X: 3}})
	res, err := Correlate(st, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.WCN) != 2 {
		t.Fatalf("got %d atoms", len(res.WCN))
	}
	//each atom has one contact at 3 angstrom: wcn = 1/9, predicted B = 9
	for i := range res.WCN {
		if !scalar.EqualWithinAbs(res.WCN[i], 1.0/9, 1e-6) {
			t.Errorf("atom %d: wcn %v, want 1/9", i, res.WCN[i])
		}
		if !scalar.EqualWithinAbs(res.BPredict[i], 9, 1e-4) {
			t.Errorf("atom %d: predicted B %v, want 9", i, res.BPredict[i])
		}
	}
	if !scalar.EqualWithinAbs(res.MeanWCN(), 1.0/9, 1e-6) {
		t.Errorf("mean wcn: got %v", res.MeanWCN())
	}
}

func TestOccupancyWeighting(t *testing.T) {
	st := new(cryst.Structure)
	st.AddAtom("A", "GLY", 1, &cryst.Atom{Name: "CA", Symbol: "C", Occupancy: 1, Pos: r3.Vec{X: 0}})
	st.AddAtom("A", "GLY", 2, &cryst.Atom{Name: "CA", Symbol: "C", Occupancy: 0.5, Pos: r3.Vec{X: 3}})
	res, err := Correlate(st, nil)
	if err != nil {
		t.Fatal(err)
	}
	//the half-occupied neighbor contributes half a contact
	if !scalar.EqualWithinAbs(res.WCN[0], 0.5/9, 1e-6) {
		t.Errorf("wcn of atom 0: got %v, want 1/18", res.WCN[0])
	}
	if !scalar.EqualWithinAbs(res.WCN[1], 1.0/9, 1e-6) {
		t.Errorf("wcn of atom 1: got %v, want 1/9", res.WCN[1])
	}
}

func TestFilters(t *testing.T) {
	st := new(cryst.Structure)
	st.AddAtom("A", "GLY", 1, &cryst.Atom{Name: "CA", Symbol: "C", Occupancy: 1, Pos: r3.Vec{X: 0}})
	st.AddAtom("A", "GLY", 1, &cryst.Atom{Name: "HA", Symbol: "H", Occupancy: 1, Pos: r3.Vec{X: 1}})
	st.AddAtom("A", "GLY", 2, &cryst.Atom{Name: "CA", Symbol: "C", Occupancy: 1, Pos: r3.Vec{X: 3}})
	st.AddAtom("W", "HOH", 1, &cryst.Atom{Name: "O", Symbol: "O", Occupancy: 1, Pos: r3.Vec{X: 6}})
	res, err := Correlate(st, nil)
	if err != nil {
		t.Fatal(err)
	}
	//hydrogens and non-amino-acid residues never get their own entry
	if len(res.Atoms) != 2 {
		t.Fatalf("got %d scored atoms, want 2", len(res.Atoms))
	}
	for _, cra := range res.Atoms {
		if cryst.IsHydrogen(cra.Atom.Symbol) || !cryst.IsAminoAcid(cra.Residue.Name) {
			t.Errorf("filter let %s of %s through", cra.Atom.Name, cra.Residue.Name)
		}
	}
	//hydrogens and water don't count as contacts either: atom 0 sees only the
	//CA at 3
	if !scalar.EqualWithinAbs(res.WCN[0], 1.0/9, 1e-6) {
		t.Errorf("wcn of atom 0: got %v, want 1/9", res.WCN[0])
	}
}

func TestMinDistCutoff(t *testing.T) {
	st := new(cryst.Structure)
	st.AddAtom("A", "GLY", 1, &cryst.Atom{Name: "CA", Symbol: "C", Occupancy: 1, Pos: r3.Vec{X: 0}})
	st.AddAtom("A", "GLY", 2, &cryst.Atom{Name: "CA", Symbol: "C", Occupancy: 1, Pos: r3.Vec{X: 0.5}})
	st.AddAtom("A", "GLY", 3, &cryst.Atom{Name: "CA", Symbol: "C", Occupancy: 1, Pos: r3.Vec{X: 3}})
	res, err := Correlate(st, nil)
	if err != nil {
		t.Fatal(err)
	}
	//the 0.5-angstrom neighbor is below MinDist and ignored for atom 0
	if !scalar.EqualWithinAbs(res.WCN[0], 1.0/9, 1e-6) {
		t.Errorf("wcn of atom 0: got %v, want 1/9", res.WCN[0])
	}
}

func TestTooFewAtoms(t *testing.T) {
	st := new(cryst.Structure)
	st.AddAtom("A", "GLY", 1, &cryst.Atom{Name: "CA", Symbol: "C", Occupancy: 1, Pos: r3.Vec{}})
	if _, err := Correlate(st, nil); err == nil {
		t.Error("a single atom cannot be correlated")
	}
}

//TestSelfConsistency feeds the predicted B-factors back in as experimental ones;
//the correlation of the prediction with itself must be 1.
func TestSelfConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	st := new(cryst.Structure)
	for i := 0; i < 30; i++ {
		at := &cryst.Atom{
			Name: "CA", Symbol: "C", Occupancy: 1, Bfactor: 10 + rng.Float64()*40,
			Pos: r3.Vec{X: rng.Float64() * 12, Y: rng.Float64() * 12, Z: rng.Float64() * 12},
		}
		st.AddAtom("A", "ALA", i+1, at)
	}
	first, err := Correlate(st, nil)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(first.CC) || first.CC < -1 || first.CC > 1 {
		t.Fatalf("correlation out of range: %v", first.CC)
	}
	for i, cra := range first.Atoms {
		cra.Atom.Bfactor = first.BPredict[i]
	}
	second, err := Correlate(st, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(second.CC, 1, 1e-9) {
		t.Errorf("self correlation: got %v, want 1", second.CC)
	}
	if !scalar.EqualWithinAbs(second.RankCC, 1, 1e-9) {
		t.Errorf("self rank correlation: got %v, want 1", second.RankCC)
	}
}
