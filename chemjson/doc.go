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

// Package chemjson implements serialization and unserialization of
// rotagen proteins and topologies to and from JSON. It's planned use
// is the communication of rotagen with the programs that read the
// structure and parameter files, and with those that consume the
// conformers, which can be written in any language. Files with names ending
// in ".zst" are compressed with z-standard.
//
// Coordinates are stored per atom. Connectivity is not stored, as it
// is rebuilt from the topology, and an undetermined occupancy is written as null.
package chemjson
