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

/*
Package top is an in-memory residue topology database. It stores, per
conformer type, the connectivity and radius parameters of each atom and, per
residue, the rotatable bonds, the topologically equivalent atom pairs and the
canonical list of conformer types. A DB implements rotagen.Topology.

It can be filled record by record (AddConnect, AddRadius, etc.) or from a
Tables value, which is the form used for serialization.
*/
package top
