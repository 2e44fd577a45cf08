/*
 * model.go, part of gocryst
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

/**Note: several functions and methods here panic instead of returning errors. This is
 * because they are "fundamental" functions: if something goes wrong in them, the program
 * is way-most likely wrong and should crash. The panics are related to using a function
 * on a nil object or trying to access out-of-bounds fields.**/

//Atom contains one atom site of a structure: its identity and the per-site data
//(position, occupancy, isotropic B-factor, alternate-location code). The zero Altloc
//byte means "no alternate conformation".
type Atom struct {
	Name      string //atom name, e.g. "CA"
	Symbol    string //element symbol, e.g. "C"
	Altloc    byte
	Occupancy float64
	Bfactor   float64
	Pos       r3.Vec
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("cryst: attempted to copy a nil Atom")
	}
	newat := new(Atom)
	*newat = *A
	return newat
}

//Residue is an ordered set of atoms sharing a residue name and number.
type Residue struct {
	Name  string
	ID    int
	Atoms []*Atom
}

//Get returns the first atom in the residue with the given name, or nil if
//the residue has no such atom.
func (R *Residue) Get(name string) *Atom {
	for _, at := range R.Atoms {
		if at.Name == name {
			return at
		}
	}
	return nil
}

//Atom returns the i-th atom of the residue. Panics if out of range.
func (R *Residue) Atom(i int) *Atom {
	if i < 0 || i >= len(R.Atoms) {
		panic("cryst: requested Atom out of bounds")
	}
	return R.Atoms[i]
}

//Chain is an ordered set of residues.
type Chain struct {
	Name     string
	Residues []*Residue
}

//Structure is an ordered chain->residue->atom hierarchy for one model of a
//macromolecule (or of a small molecule, in which case there is typically a single
//chain with a single residue).
type Structure struct {
	Name   string
	Chains []*Chain
}

//CRA bundles pointers to a chain, one of its residues and one of that residue's
//atoms. It is what you get back when dereferencing a subcell.Mark.
type CRA struct {
	Chain   *Chain
	Residue *Residue
	Atom    *Atom
}

//AddAtom appends at to the residue identified by the chain name, residue name and
//residue ID given, appending new chains/residues at the end of the hierarchy as
//needed. It is a convenience for assembling structures in memory; readers of actual
//coordinate files live outside this module. Panics if at is nil.
func (S *Structure) AddAtom(chain, resname string, resid int, at *Atom) {
	if at == nil {
		panic("cryst: attempted to add a nil Atom")
	}
	var ch *Chain
	for _, c := range S.Chains {
		if c.Name == chain {
			ch = c
			break
		}
	}
	if ch == nil {
		ch = &Chain{Name: chain}
		S.Chains = append(S.Chains, ch)
	}
	var res *Residue
	for _, r := range ch.Residues {
		if r.ID == resid && r.Name == resname {
			res = r
			break
		}
	}
	if res == nil {
		res = &Residue{Name: resname, ID: resid}
		ch.Residues = append(ch.Residues, res)
	}
	res.Atoms = append(res.Atoms, at)
}

//NumAtomSites returns the total number of atom sites in the structure.
func (S *Structure) NumAtomSites() int {
	sum := 0
	for _, ch := range S.Chains {
		for _, res := range ch.Residues {
			sum += len(res.Atoms)
		}
	}
	return sum
}

//SumOccupancies returns the sum of the occupancies of all atom sites.
func (S *Structure) SumOccupancies() float64 {
	sum := 0.0
	for _, ch := range S.Chains {
		for _, res := range ch.Residues {
			for _, at := range res.Atoms {
				sum += at.Occupancy
			}
		}
	}
	return sum
}

//BoundingBox returns the corners of the axis-aligned box enclosing all atoms of the
//structure. For an empty structure it returns two zero vectors.
func (S *Structure) BoundingBox() (min, max r3.Vec) {
	min = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	empty := true
	for _, ch := range S.Chains {
		for _, res := range ch.Residues {
			for _, at := range res.Atoms {
				empty = false
				min.X = math.Min(min.X, at.Pos.X)
				min.Y = math.Min(min.Y, at.Pos.Y)
				min.Z = math.Min(min.Z, at.Pos.Z)
				max.X = math.Max(max.X, at.Pos.X)
				max.Y = math.Max(max.Y, at.Pos.Y)
				max.Z = math.Max(max.Z, at.Pos.Z)
			}
		}
	}
	if empty {
		return r3.Vec{}, r3.Vec{}
	}
	return min, max
}
