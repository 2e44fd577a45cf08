/*
 * doc.go, part of gocryst
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

//Package cryst provides the geometric core of a macromolecular-structure toolkit:
//a hierarchical structure model (chains, residues, atoms), a unit-cell service with
//fractional/Cartesian transforms and symmetry images, and closed-form geometric
//primitives (angles, dihedrals, chiral volumes, least-squares planes).
//
//Reading and writing of structure files, the derivation of symmetry operators from
//space-group symbols, and restraint dictionaries are deliberately not part of this
//module; they are expected from external collaborators that hand cryst a ready-made
//Structure, UnitCell and restraint list.
//
//The spatial proximity engine built on this package lives in the subcell
//subpackage; the two bundled analysis consumers live in wcn and valid.
package cryst
