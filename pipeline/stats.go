/*
 * stats.go, part of rotagen.
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

package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/rmera/rotagen"
	"gonum.org/v1/gonum/stat"
)

// Stats records the number of side chain conformers of each residue after each stage.
type Stats struct {
	Stages   []string
	Residues []string //residue labels
	Counts   [][]int  //Counts[i][j] is the count for residue i after stage j
}

// NewStats returns an empty record for the residues of P.
func NewStats(P *rotagen.Protein) *Stats {
	S := &Stats{Residues: make([]string, P.Len()), Counts: make([][]int, P.Len())}
	for i, r := range P.Residues {
		S.Residues[i] = r.Label()
	}
	return S
}

// Record adds a column with the current counts in P, under the name stage.
// P needs to have the same residues it had when S was created.
func (S *Stats) Record(stage string, P *rotagen.Protein) {
	if P.Len() != len(S.Residues) {
		panic(rotagen.PanicMsg(fmt.Sprintf("Stats.Record: %d residues recorded, got %d", len(S.Residues), P.Len())))
	}
	S.Stages = append(S.Stages, stage)
	for i, r := range P.Residues {
		S.Counts[i] = append(S.Counts[i], r.NSideChains())
	}
}

func (S *Stats) column(stage int) []float64 {
	ret := make([]float64, len(S.Counts))
	for i, c := range S.Counts {
		ret[i] = float64(c[stage])
	}
	return ret
}

// Total returns the total number of side chain conformers after the given stage.
func (S *Stats) Total(stage int) int {
	t := 0
	for _, c := range S.Counts {
		t += c[stage]
	}
	return t
}

// Mean returns the mean number of side chain conformers per residue after the given stage.
func (S *Stats) Mean(stage int) float64 {
	if len(S.Counts) == 0 {
		return 0
	}
	return stat.Mean(S.column(stage), nil)
}

// Stage returns the index of the stage with the given name, or -1.
func (S *Stats) Stage(name string) int {
	for i, v := range S.Stages {
		if v == name {
			return i
		}
	}
	return -1
}

// WriteTo writes the table of counts, followed by the totals and means, to w.
func (S *Stats) WriteTo(w io.Writer) (int64, error) {
	b := new(strings.Builder)
	fmt.Fprintf(b, "%-12s", "Residue")
	for _, st := range S.Stages {
		fmt.Fprintf(b, " %8s", st)
	}
	b.WriteString("\n")
	for i, r := range S.Residues {
		fmt.Fprintf(b, "%-12s", r)
		for _, c := range S.Counts[i] {
			fmt.Fprintf(b, " %8d", c)
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("-", 12+9*len(S.Stages)) + "\n")
	fmt.Fprintf(b, "%-12s", "Total")
	for j := range S.Stages {
		fmt.Fprintf(b, " %8d", S.Total(j))
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "%-12s", "Mean")
	for j := range S.Stages {
		fmt.Fprintf(b, " %8.2f", S.Mean(j))
	}
	b.WriteString("\n")
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
