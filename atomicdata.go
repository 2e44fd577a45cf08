/*
 * atomicdata.go, part of gocryst
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

//The small chemical lookup tables the analysis code needs. Only identity checks
//live here; masses, radii and the like belong to whoever needs them.

//standard amino acids plus the common modified ones found in PDB entries.
var aminoAcids = map[string]bool{
	"ALA": true, "ARG": true, "ASN": true, "ASP": true, "CYS": true,
	"GLN": true, "GLU": true, "GLY": true, "HIS": true, "ILE": true,
	"LEU": true, "LYS": true, "MET": true, "PHE": true, "PRO": true,
	"SER": true, "THR": true, "TRP": true, "TYR": true, "VAL": true,
	"MSE": true, "SEC": true, "PYL": true,
}

//IsAminoAcid reports whether resname is the 3-letter code of an amino acid
//(including selenomethionine and the 21st/22nd proteinogenic ones).
func IsAminoAcid(resname string) bool {
	return aminoAcids[resname]
}

//IsHydrogen reports whether the element symbol is hydrogen or one of its
//isotopes, which is how neutron structures label them.
func IsHydrogen(symbol string) bool {
	return symbol == "H" || symbol == "D" || symbol == "T"
}

//IsWater reports whether resname is one of the residue names commonly used for
//water molecules.
func IsWater(resname string) bool {
	return resname == "HOH" || resname == "WAT" || resname == "SOL" || resname == "H2O"
}
