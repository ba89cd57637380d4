/*
 * options.go, part of rotagen.
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

// Package rotamer implements the generators that expand the conformer set of
// each residue: atom swaps, rotations around rotatable bonds, small swings,
// hydrogen-bond directed hydrogen placement, exposure optimization and
// ionization. It also contains the self-energy filter applied after the
// rotations. Generators never modify an existing conformer, they clone it
// and add the modified copy to the residue.
package rotamer

import (
	"strings"

	"github.com/rmera/rotagen/vdw"
)

// HBondOptions contains the parameters of the hydrogen-bond directed placement.
// Distances in A, angles in degrees.
type HBondOptions struct {
	Near          float64  //donor-acceptor pairs closer than this are ignored
	Far           float64  //donor-acceptor pairs farther than this are ignored
	MinCharge     float64  //donors and acceptors need a charge lower than this
	BlockingAngle float64  //an acceptor neighbour at less than this angle from the hydrogen blocks the bond
	BondLength    float64  //X-H bond length
	SP3Angle      float64  //tetrahedral angle
	Excluded      []string //elements that are never donors or acceptors
}

// ExposureOptions contains the parameters for the exposure optimization.
type ExposureOptions struct {
	Threshold float64   //only residues more exposed than this are optimized
	Schedule  []float64 //swing angles, in degrees, from coarse to fine
	MinGain   float64   //smallest exposure gain for a new conformer to be added
	MaxIter   int       //largest number of swing rounds per angle
	Points    int       //sampling points per atom
	Probe     float64   //probe radius, A
	NonPolar  []string  //residues that are never optimized
}

// Options contains the options for the generators.
type Options struct {
	Rotations     int     //positions per rotatable bond, including the original one
	PhiSwing      float64 //swing angle, degrees
	SelfVDWCutoff float64 //largest self+backbone energy for a rotamer to survive
	VDW           vdw.Params
	HBond         HBondOptions
	Exposure      ExposureOptions
}

// DefaultOptions returns the options used by default in a run.
func DefaultOptions() *Options {
	O := new(Options)
	O.Rotations = 6
	O.PhiSwing = 3
	O.SelfVDWCutoff = 10
	O.VDW = vdw.DefaultParams()
	O.HBond = HBondOptions{
		Near:          2.5,
		Far:           3.6,
		MinCharge:     -0.2,
		BlockingAngle: 90,
		BondLength:    1.09,
		SP3Angle:      109.5,
		Excluded:      []string{"C", "P", "CL", "BR", "I"},
	}
	O.Exposure = ExposureOptions{
		Threshold: 0.2,
		Schedule:  []float64{60, 15, 3, 1},
		MinGain:   0.001,
		MaxIter:   100,
		Points:    122,
		Probe:     1.4,
		NonPolar:  []string{"ALA", "VAL", "LEU", "ILE", "GLY", "MET", "MEL", "TRY", "PHE", "HIL", "CYD", "CYL"},
	}
	return O
}

func (H *HBondOptions) excluded(element string) bool {
	for _, v := range H.Excluded {
		if strings.EqualFold(v, element) {
			return true
		}
	}
	return false
}

func (E *ExposureOptions) nonPolar(resname string) bool {
	for _, v := range E.NonPolar {
		if v == resname {
			return true
		}
	}
	return false
}

func orDefault(O *Options) *Options {
	if O == nil {
		return DefaultOptions()
	}
	return O
}
