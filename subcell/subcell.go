/*
 * subcell.go, part of gocryst
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

//Package subcell implements the cell-linked-lists method for atom searching
//(a.k.a. grid search, binning, bucketing, cell technique for neighbor search).
//It answers "which atoms lie within radius R of this point", including
//crystallographic symmetry copies and periodic images, without ever building a
//symmetry-expanded copy of the structure.
package subcell

import (
	"fmt"
	"math"

	cryst "github.com/gocryst/gocryst"
	"gonum.org/v1/gonum/spatial/r3"
)

//Mark is one placement of one atom in the grid: either the atom itself (ImageIdx
//0) or one of its symmetry copies (ImageIdx i+1 for the i-th image of the cell).
//The position stored is the wrapped, single-precision Cartesian position of that
//placement. A Mark never owns or aliases the structure it came from; it keeps
//weak back-references (chain, residue, atom indexes) instead, so that markers
//survive structure copies without dangling pointers. Dereferencing them with
//ToCRA is only valid while the structure has not reordered or resized its
//chains/residues/atoms since the engine was built. That is a documented caller
//contract, not something checked at runtime.
type Mark struct {
	X, Y, Z    float32
	Altloc     byte
	Symbol     string
	ImageIdx   int
	ChainIdx   int
	ResidueIdx int
	AtomIdx    int
}

//Pos returns the (wrapped) Cartesian position of the mark.
func (m *Mark) Pos() r3.Vec {
	return r3.Vec{X: float64(m.X), Y: float64(m.Y), Z: float64(m.Z)}
}

//DistSq returns the squared Euclidean distance from the mark to p.
func (m *Mark) DistSq(p r3.Vec) float64 {
	dx := p.X - float64(m.X)
	dy := p.Y - float64(m.Y)
	dz := p.Z - float64(m.Z)
	return dx*dx + dy*dy + dz*dz
}

//ToCRA dereferences the mark back into the live structure, returning the chain,
//residue and atom it was built from. The structure must be unchanged since the
//engine was constructed; if it is not, this panics with an index-out-of-range
//error (a precondition violation, not a recoverable condition).
func (m *Mark) ToCRA(st *cryst.Structure) cryst.CRA {
	c := st.Chains[m.ChainIdx]
	r := c.Residues[m.ResidueIdx]
	a := r.Atoms[m.AtomIdx]
	return cryst.CRA{Chain: c, Residue: r, Atom: a}
}

//SameConformer reports whether two alternate-location codes are compatible: they
//are if either is the zero "no alternate" sentinel, or if they are equal.
func SameConformer(alt1, alt2 byte) bool {
	return alt1 == 0 || alt2 == 0 || alt1 == alt2
}

//SubCells is the spatial proximity engine: a binned grid over one unit cell with
//every atom of a structure, and every symmetry copy of every atom, placed in its
//wrapped bin. It is immutable after construction, so queries may run concurrently
//from several goroutines as long as the callbacks themselves are safe and nobody
//mutates the underlying structure. It must be rebuilt if the structure's
//positions or composition change.
type SubCells struct {
	Grid      *Grid
	cell      *cryst.UnitCell
	maxRadius float64
}

//New builds the engine for st with the given cell and maximum query radius. If
//the cell is a genuine crystal cell it is adopted as-is (including its symmetry
//images); otherwise an orthogonal non-periodic cell is synthesized from the
//bounding box of the atoms, expanded by 4*maxRadius so that periodic wraparound
//can never spuriously connect atoms of an isolated molecule. Construction visits
//every atom once per image, so it costs O(atoms * (1+images)); afterwards every
//original atom has exactly 1+len(Images) marks in the grid.
func New(st *cryst.Structure, cell *cryst.UnitCell, maxRadius float64) (*SubCells, error) {
	if maxRadius <= 0 {
		return nil, fmt.Errorf("subcell: max radius must be positive, got %g", maxRadius)
	}
	gcell := cell
	if cell == nil || !cell.IsCrystal() {
		min, max := st.BoundingBox()
		size := r3.Sub(max, min)
		margin := 4 * maxRadius
		var err error
		gcell, err = cryst.NewUnitCell(size.X+margin, size.Y+margin, size.Z+margin, 90, 90, 90)
		if err != nil {
			return nil, err
		}
	}
	sc := &SubCells{
		Grid:      newGrid(gcell.A, gcell.B, gcell.C, maxRadius),
		cell:      gcell,
		maxRadius: maxRadius,
	}
	for nch, chain := range st.Chains {
		for nres, res := range chain.Residues {
			for natom, atom := range res.Atoms {
				frac0 := gcell.Fractionalize(atom.Pos)
				sc.put(frac0, atom, 0, nch, nres, natom)
				for nim, im := range gcell.Images {
					sc.put(im.Apply(frac0), atom, nim+1, nch, nres, natom)
				}
			}
		}
	}
	return sc, nil
}

//put wraps the fractional position into [0,1), recovers the wrapped Cartesian
//position, and appends a mark to the bin the wrapped position falls in.
func (sc *SubCells) put(fr cryst.Fractional, atom *cryst.Atom, image, nch, nres, natom int) {
	fr = fr.Wrap()
	pos := sc.cell.Orthogonalize(fr)
	g := sc.Grid
	//IndexN instead of IndexQ to absorb the fr.X==0.9999... -> Nu edge case
	idx := g.IndexN(int(fr.X*float64(g.Nu)), int(fr.Y*float64(g.Nv)), int(fr.Z*float64(g.Nw)))
	g.Bins[idx] = append(g.Bins[idx], Mark{
		X: float32(pos.X), Y: float32(pos.Y), Z: float32(pos.Z),
		Altloc: atom.Altloc, Symbol: atom.Symbol,
		ImageIdx: image, ChainIdx: nch, ResidueIdx: nres, AtomIdx: natom,
	})
}

//Cell returns the cell the grid is built on: the one given to New for a crystal,
//or the synthesized bounding-box cell otherwise.
func (sc *SubCells) Cell() *cryst.UnitCell { return sc.cell }

//MaxRadius returns the maximum query radius the engine was built for.
func (sc *SubCells) MaxRadius() float64 { return sc.maxRadius }

//ForEach calls f for every mark within radius of pos whose alternate-location
//code is compatible with altloc, passing the squared distance along. radius must
//not exceed the engine's MaxRadius; that precondition is not checked and larger
//radii silently miss neighbors. Each qualifying mark is seen exactly once, but
//marks are not deduplicated across symmetry images: an atom reachable through two
//different images is reported twice, by design. Callers that need uniqueness must
//deduplicate on (ChainIdx,ResidueIdx,AtomIdx,ImageIdx) themselves.
//
//The scan walks the 3x3x3 bin neighborhood of the query's home bin. For neighbor
//bins that fall outside the grid it records the whole-cell translation that wraps
//them back in, and compares against the query's periodic copy reconstructed from
//home-fractional plus that translation, which is what makes distances across a
//periodic boundary come out unwrapped.
func (sc *SubCells) ForEach(pos r3.Vec, altloc byte, radius float64, f func(m *Mark, distSq float64)) {
	g := sc.Grid
	fr := sc.cell.Fractionalize(pos).Wrap()
	u0 := int(fr.X * float64(g.Nu))
	v0 := int(fr.Y * float64(g.Nv))
	w0 := int(fr.Z * float64(g.Nw))
	radiusSq := radius * radius
	for w := w0 - 1; w < w0+2; w++ {
		dw := 0
		if w >= g.Nw {
			dw = -1
		} else if w < 0 {
			dw = 1
		}
		for v := v0 - 1; v < v0+2; v++ {
			dv := 0
			if v >= g.Nv {
				dv = -1
			} else if v < 0 {
				dv = 1
			}
			for u := u0 - 1; u < u0+2; u++ {
				du := 0
				if u >= g.Nu {
					du = -1
				} else if u < 0 {
					du = 1
				}
				idx := g.IndexQ(u+du*g.Nu, v+dv*g.Nv, w+dw*g.Nw)
				p := sc.cell.Orthogonalize(cryst.Fractional{
					X: fr.X + float64(du),
					Y: fr.Y + float64(dv),
					Z: fr.Z + float64(dw),
				})
				bin := g.Bins[idx]
				for i := range bin {
					m := &bin[i]
					if d := m.DistSq(p); d < radiusSq && SameConformer(altloc, m.Altloc) {
						f(m, d)
					}
				}
			}
		}
	}
}

//FindAtoms collects the marks a ForEach call with the same arguments would
//stream. The returned pointers refer into the engine's grid and must not be used
//after the engine is discarded.
func (sc *SubCells) FindAtoms(pos r3.Vec, altloc byte, radius float64) []*Mark {
	var out []*Mark
	sc.ForEach(pos, altloc, radius, func(m *Mark, _ float64) {
		out = append(out, m)
	})
	return out
}

//DistSq returns the squared minimum-image distance between two positions in the
//engine's cell.
func (sc *SubCells) DistSq(p1, p2 r3.Vec) float64 {
	return sc.cell.DistanceSq(p1, p2)
}

//Dist returns the minimum-image distance between two positions in the engine's
//cell.
func (sc *SubCells) Dist(p1, p2 r3.Vec) float64 {
	return math.Sqrt(sc.DistSq(p1, p2))
}
