/*
 * atomicdata.go, part of rotagen.
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

package rotagen

import "strings"

// A map for assigning radii to elements when computing solvent accessible surfaces.
// Note that just common "bio-elements" are present
var symbolSASRadius = map[string]float64{
	"H":  1.2,
	"C":  1.7,
	"N":  1.55,
	"O":  1.52,
	"F":  1.47,
	"P":  1.8,
	"S":  1.8,
	"CL": 1.75,
	"CU": 1.4,
	"B":  1.92,
	"AL": 1.84,
	"NA": 2.27,
	"MG": 1.73,
	"SI": 2.1,
	"CA": 2.31,
	"K":  2.75,
	"FE": 1.63,
	"ZN": 1.39,
	"BR": 1.85,
}

// DefaultSASRadius is used for elements not in the table.
const DefaultSASRadius = 1.8

// ElementRadius returns the radius of the element used to compute
// solvent accessible surfaces. The element symbol is case-insensitive.
func ElementRadius(element string) float64 {
	if r, ok := symbolSASRadius[strings.ToUpper(strings.TrimSpace(element))]; ok {
		return r
	}
	return DefaultSASRadius
}

// ElementFromName guesses the element of an atom from its name, when
// the element is not given. It only considers the common bio-elements.
func ElementFromName(name string) string {
	name = strings.TrimLeft(strings.TrimSpace(name), "0123456789")
	if name == "" {
		return ""
	}
	up := strings.ToUpper(name)
	for _, two := range []string{"CL", "BR", "FE", "ZN", "MG", "NA", "CU"} {
		if up == two {
			return two
		}
	}
	return up[:1]
}
