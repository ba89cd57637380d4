/*
 * history.go, part of rotagen.
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

import (
	"fmt"
	"strings"
)

// Stage identifies a step of the conformer generation pipeline.
type Stage uint8

const (
	Original Stage = iota
	Swap
	Rotate
	Swing
	HBond
	Exposed
	Ionized
)

var stageCodes = [...]byte{'O', 'W', 'R', 'S', 'H', 'X', 'I'}

var stageNames = [...]string{"original", "swap", "rotate", "swing", "hbond", "exposed", "ionized"}

func (s Stage) String() string {
	if int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", s)
	}
	return stageNames[s]
}

// Code returns the one-letter code of the stage.
func (s Stage) Code() byte {
	if int(s) >= len(stageCodes) {
		return '?'
	}
	return stageCodes[s]
}

// StageSet is a set of stages.
type StageSet uint16

// Has returns true if st is in the set.
func (S StageSet) Has(st Stage) bool {
	return S&(1<<st) != 0
}

// With returns a set with the stages in S plus st.
func (S StageSet) With(st Stage) StageSet {
	return S | (1 << st)
}

// History records how a conformer was produced. Origin is the stage that
// produced the current heavy atom positions, Stages is every stage the conformer
// went through, and Serial numbers the conformers with the same type and origin
// within a residue. The history is informative only: String is meant for
// display and no decision is taken by parsing it.
type History struct {
	Origin Stage
	Stages StageSet
	Serial int
}

// Derive returns the history of a conformer produced from one with history H
// by the stage st. Ionization keeps the origin, since it changes the type and
// not the heavy atom positions.
func (H History) Derive(st Stage) History {
	ret := History{Origin: H.Origin, Stages: H.Stages.With(st)}
	if st != Ionized {
		ret.Origin = st
	}
	return ret
}

// IsOriginal returns true if the heavy atoms of the conformer are those of the input structure.
func (H History) IsOriginal() bool {
	return H.Origin == Original
}

// String returns a compact code such as "R003[RS]": the origin, the serial number
// and the stages the conformer went through.
func (H History) String() string {
	var b strings.Builder
	b.WriteByte(H.Origin.Code())
	fmt.Fprintf(&b, "%03d", H.Serial%1000)
	if H.Stages != 0 {
		b.WriteByte('[')
		for st := Original; st <= Ionized; st++ {
			if H.Stages.Has(st) {
				b.WriteByte(st.Code())
			}
		}
		b.WriteByte(']')
	}
	return b.String()
}
