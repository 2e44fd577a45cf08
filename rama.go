package cryst

import "math"

//Backbone torsions for protein residues. These are the classic consumers of
//DihedralAtoms: at chain termini, or around a gap in the model, one of the four
//atoms is missing and the result is NaN rather than an error.

//Omega returns the omega torsion (CA-C-N'-CA') between a residue and the next one,
//in radians. Close to pi for the usual trans peptide bond.
func Omega(res, next *Residue) float64 {
	return DihedralAtoms(res.Get("CA"), res.Get("C"), next.Get("N"), next.Get("CA"))
}

//PhiPsi returns the phi (C-1,N,CA,C) and psi (N,CA,C,N+1) torsions of res, in
//radians. prev and next may be nil (first/last residue of a chain), in which case
//the corresponding angle is NaN.
func PhiPsi(prev, res, next *Residue) (phi, psi float64) {
	phi, psi = math.NaN(), math.NaN()
	if res == nil {
		return phi, psi
	}
	n := res.Get("N")
	ca := res.Get("CA")
	c := res.Get("C")
	if prev != nil {
		phi = DihedralAtoms(prev.Get("C"), n, ca, c)
	}
	if next != nil {
		psi = DihedralAtoms(n, ca, c, next.Get("N"))
	}
	return phi, psi
}
