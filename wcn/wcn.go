/*
 * wcn.go, part of gocryst
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

//Package wcn computes per-atom weighted contact numbers (a crystal-packing-aware
//density measure) and correlates the B-factors they predict with the experimental
//ones. A high correlation over a structure suggests its B-factors mostly reflect
//packing; atoms that deviate strongly are the interesting ones.
package wcn

import (
	"fmt"
	"math"
	"sort"

	cryst "github.com/gocryst/gocryst"
	"github.com/gocryst/gocryst/subcell"
	"gonum.org/v1/gonum/stat"
)

//Options holds the knobs of the contact-number calculation.
type Options struct {
	minDist float64
	maxDist float64
	exp     float64
	sameRes bool
}

//DefaultOptions returns an Options with the default values: contacts counted
//between 0.8 and 15 Å, inverse-square weighting, intra-residue contacts included.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.minDist = 0.8
	ret.maxDist = 15.0
	ret.exp = 2.0
	ret.sameRes = true
	return ret
}

//Returns the lower distance cutoff below which a contact is ignored (contacts that
//close are bonds or disorder artifacts, not packing) and sets it, if a valid value
//is given.
func (o *Options) MinDist(min ...float64) float64 {
	ret := o.minDist
	if len(min) > 0 && min[0] >= 0 {
		o.minDist = min[0]
	}
	return ret
}

//Returns the upper distance cutoff of the contact search and sets it, if a valid
//value is given.
func (o *Options) MaxDist(max ...float64) float64 {
	ret := o.maxDist
	if len(max) > 0 && max[0] > 0 {
		o.maxDist = max[0]
	}
	return ret
}

//Returns the exponent of the distance weighting (weight = d^-exp) and sets it, if
//given. 0 means plain unweighted contact counting.
func (o *Options) Exp(exp ...float64) float64 {
	ret := o.exp
	if len(exp) > 0 {
		o.exp = exp[0]
	}
	return ret
}

//Returns whether contacts within the same residue are counted, and sets it, if
//given.
func (o *Options) SameResidue(same ...bool) bool {
	ret := o.sameRes
	if len(same) > 0 {
		o.sameRes = same[0]
	}
	return ret
}

//Weight returns the contribution of a contact at squared distance d2 under the
//given exponent. The common cases (inverse-square and unweighted) skip the
//general power.
func Weight(d2, exp float64) float64 {
	switch exp {
	case 2:
		return 1 / d2
	case 0:
		return 1
	}
	return math.Pow(d2, -0.5*exp)
}

//Result holds the per-atom outcome of a Correlate run, with the atoms in structure
//order (only the atoms that passed the filter appear).
type Result struct {
	Atoms    []cryst.CRA
	WCN      []float64 //weighted contact number per atom
	BPredict []float64 //1/WCN, the packing-predicted B-factor up to scale
	BExper   []float64 //the B-factor the model reports
	CC       float64   //Pearson correlation between BPredict and BExper
	RankCC   float64   //the same correlation on ranks (Spearman with averaged-tie caveat, see Ranks)
}

//Correlate computes the weighted contact number of every non-hydrogen amino-acid
//atom of st and correlates the predicted B-factors against the experimental ones.
//Only non-hydrogen amino-acid atoms count as contacts too: waters, ligands and
//hydrogens contribute nothing to the packing density.
//Occupancies weight both sides: a half-occupied neighbor contributes half a
//contact. Atoms with no contacts at all are left out, as they have no defined
//prediction. cell may be nil for a non-crystal model. Returns an error if fewer
//than two atoms survive, since no correlation exists then.
func Correlate(st *cryst.Structure, cell *cryst.UnitCell, options ...*Options) (*Result, error) {
	var o *Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	sc, err := subcell.New(st, cell, o.maxDist)
	if err != nil {
		return nil, err
	}
	minSq := o.minDist * o.minDist
	res := new(Result)
	for nch, chain := range st.Chains {
		for nres, r := range chain.Residues {
			if !cryst.IsAminoAcid(r.Name) {
				continue
			}
			for _, atom := range r.Atoms {
				if cryst.IsHydrogen(atom.Symbol) {
					continue
				}
				wcn := 0.0
				sc.ForEach(atom.Pos, atom.Altloc, o.maxDist, func(m *subcell.Mark, d2 float64) {
					if d2 <= minSq {
						return //the atom itself, its bonded neighbors, or junk
					}
					if !o.sameRes && m.ImageIdx == 0 && m.ChainIdx == nch && m.ResidueIdx == nres {
						return
					}
					if cryst.IsHydrogen(m.Symbol) {
						return
					}
					cra := m.ToCRA(st)
					if !cryst.IsAminoAcid(cra.Residue.Name) {
						return
					}
					wcn += cra.Atom.Occupancy * Weight(d2, o.exp)
				})
				if wcn == 0 { //no contacts at all, nothing to predict from
					continue
				}
				res.Atoms = append(res.Atoms, cryst.CRA{Chain: chain, Residue: r, Atom: atom})
				res.WCN = append(res.WCN, wcn)
				res.BPredict = append(res.BPredict, 1/wcn)
				res.BExper = append(res.BExper, atom.Bfactor)
			}
		}
	}
	if len(res.WCN) < 2 {
		return nil, fmt.Errorf("wcn: only %d atoms passed the filter, nothing to correlate", len(res.WCN))
	}
	res.CC = stat.Correlation(res.BPredict, res.BExper, nil)
	res.RankCC = stat.Correlation(Ranks(res.BPredict), Ranks(res.BExper), nil)
	return res, nil
}

//Ranks returns the 1-based ranks of the values in data, in the same order as data.
//Ties get consecutive ranks in input order rather than averaged ranks, so the rank
//correlation computed from them is a close approximation to Spearman's coefficient
//rather than the textbook quantity. B-factor data has few exact ties, so the
//difference is negligible in practice.
func Ranks(data []float64) []float64 {
	idx := make([]int, len(data))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return data[idx[a]] < data[idx[b]] })
	ranks := make([]float64, len(data))
	for rank, i := range idx {
		ranks[i] = float64(rank + 1)
	}
	return ranks
}

//MeanWCN returns the average contact number over the result's atoms.
func (r *Result) MeanWCN() float64 {
	return stat.Mean(r.WCN, nil)
}
