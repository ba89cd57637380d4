/*
 * doc.go, part of rotagen.
 *
 *
 * Copyright 2024 Raul Mera <rmeraa{at}academicosDOTutaDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

// Package rotagen provides the data model for side-chain conformer generation:
// atoms, conformers, residues and proteins, together with the connectivity
// builder, bounding volumes ("blobs") and the geometric primitives used by the
// rotamer generators.
//
// The model follows a topology/coordinates split. A Conformer owns its atoms and
// an Nx3 v3.Matrix with their cartesian coordinates, where row i belongs to atom i.
// Coordinates should only be changed through the Conformer methods (SetCoord,
// SetVecs, Touch), so the cached bounding volume stays valid.
//
// Ownership is strictly Residue -> Conformer -> Atom. The connectivity lists of
// an atom (1-2, 1-3, 1-4) are non-owning references and are rebuilt, never copied,
// when a conformer is cloned.
//
// Many functions here panic instead of returning errors. Those panics are
// related to using a function on a nil object or out of range indexes, that is,
// to programming errors. Problems in the input (topology inconsistent with the
// structure, etc.) are reported with errors or with warnings to a Diagnostics.
package rotagen
