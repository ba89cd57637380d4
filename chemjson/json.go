/*
 * json.go, part of rotagen.
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

package chemjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/top"
	v3 "github.com/rmera/rotagen/v3"
)

// Error is an easily JSON-serializable error type.
type Error struct {
	deco     []string
	Function string // which go function gave the error
	Message  string // the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	if len(J.deco) == 0 {
		return J.Function + ": " + J.Message
	}
	return strings.Join(J.deco, ": ") + ": " + J.Function + ": " + J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// NewError takes an error and the name of the function where it happened, and returns a JSON-serializable error.
func NewError(function string, err error) *Error {
	return &Error{Function: function, Message: err.Error()}
}

// A ready-to-serialize container for an atom.
type Atom struct {
	Name    string     `json:"name"`
	Element string     `json:"element,omitempty"`
	Charge  float64    `json:"charge"`
	RBound  float64    `json:"rbound,omitempty"`
	RVdw    float64    `json:"rvdw,omitempty"`
	EVdw    float64    `json:"evdw,omitempty"`
	Coords  [3]float64 `json:"coords"`
}

// The history of a conformer, with the stages given by name.
type History struct {
	Origin string   `json:"origin"`
	Stages []string `json:"stages,omitempty"`
	Serial int      `json:"serial"`
}

// A ready-to-serialize container for a conformer. A nil occupancy means it has not been determined.
type Conformer struct {
	Type      string   `json:"type"`
	History   History  `json:"history"`
	Occupancy *float64 `json:"occupancy"`
	Atoms     []Atom   `json:"atoms"`
}

// A ready-to-serialize container for a residue. The first conformer is the backbone.
type Residue struct {
	Name  string      `json:"name"`
	Chain string      `json:"chain"`
	Seq   int         `json:"seq"`
	ICode string      `json:"icode,omitempty"`
	Confs []Conformer `json:"confs"`
}

// A ready-to-serialize container for a protein.
type Protein struct {
	Residues []Residue `json:"residues"`
}

var stagesByName = func() map[string]rotagen.Stage {
	ret := make(map[string]rotagen.Stage)
	for st := rotagen.Original; st <= rotagen.Ionized; st++ {
		ret[st.String()] = st
	}
	return ret
}()

func encodeHistory(H rotagen.History) History {
	ret := History{Origin: H.Origin.String(), Serial: H.Serial}
	for st := rotagen.Original; st <= rotagen.Ionized; st++ {
		if H.Stages.Has(st) {
			ret.Stages = append(ret.Stages, st.String())
		}
	}
	return ret
}

func (J History) decode() (rotagen.History, error) {
	var ret rotagen.History
	ok := true
	if J.Origin != "" {
		ret.Origin, ok = stagesByName[J.Origin]
		if !ok {
			return ret, fmt.Errorf("unknown stage %q", J.Origin)
		}
	}
	for _, v := range J.Stages {
		st, ok := stagesByName[v]
		if !ok {
			return ret, fmt.Errorf("unknown stage %q", v)
		}
		ret.Stages = ret.Stages.With(st)
	}
	ret.Serial = J.Serial
	return ret, nil
}

// EncodeConformer returns a serializable version of the conformer c.
func EncodeConformer(c *rotagen.Conformer) Conformer {
	J := Conformer{Type: c.Type, History: encodeHistory(c.History), Atoms: make([]Atom, c.Len())}
	if c.Determined {
		occ := c.Occupancy
		J.Occupancy = &occ
	}
	coords := c.Coords()
	for i, a := range c.Atoms() {
		J.Atoms[i] = Atom{Name: a.Name, Element: a.Element, Charge: a.Charge, RBound: a.RBound, RVdw: a.RVdw, EVdw: a.EVdw}
		copy(J.Atoms[i].Coords[:], coords.RawRowView(i))
	}
	return J
}

// Decode returns the rotagen conformer corresponding to J.
func (J *Conformer) Decode() (*rotagen.Conformer, error) {
	atoms := make([]*rotagen.Atom, len(J.Atoms))
	data := make([]float64, 0, 3*len(J.Atoms))
	for i, a := range J.Atoms {
		at := rotagen.NewAtom(a.Name, a.Element, a.Charge)
		if at.Element == "" {
			at.Element = rotagen.ElementFromName(at.Name)
		}
		at.RBound, at.RVdw, at.EVdw = a.RBound, a.RVdw, a.EVdw
		atoms[i] = at
		data = append(data, a.Coords[:]...)
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		return nil, NewError("Conformer.Decode", fmt.Errorf("conformer %s: %w", J.Type, err))
	}
	c := rotagen.NewConformer(J.Type, atoms, coords)
	h, err := J.History.decode()
	if err != nil {
		return nil, NewError("Conformer.Decode", fmt.Errorf("conformer %s: %w", J.Type, err))
	}
	c.History = h
	if J.Occupancy != nil {
		c.Occupancy = *J.Occupancy
		c.Determined = true
	}
	return c, nil
}

// EncodeProtein returns a serializable version of P.
func EncodeProtein(P *rotagen.Protein) *Protein {
	J := &Protein{Residues: make([]Residue, len(P.Residues))}
	for i, r := range P.Residues {
		jr := Residue{Name: r.Name, Chain: r.Chain, Seq: r.Seq, ICode: r.ICode, Confs: make([]Conformer, len(r.Confs))}
		for j, c := range r.Confs {
			jr.Confs[j] = EncodeConformer(c)
		}
		J.Residues[i] = jr
	}
	return J
}

// Decode returns the rotagen protein corresponding to J. Every residue needs at least its backbone conformer.
func (J *Protein) Decode() (*rotagen.Protein, error) {
	res := make([]*rotagen.Residue, len(J.Residues))
	for i, jr := range J.Residues {
		if len(jr.Confs) == 0 {
			return nil, NewError("Protein.Decode", fmt.Errorf("residue %s %s%d has no conformers", jr.Name, jr.Chain, jr.Seq))
		}
		confs := make([]*rotagen.Conformer, len(jr.Confs))
		for j := range jr.Confs {
			c, err := jr.Confs[j].Decode()
			if err != nil {
				err.(*Error).Decorate("Protein.Decode")
				return nil, err
			}
			confs[j] = c
		}
		res[i] = rotagen.NewResidue(jr.Name, jr.Chain, jr.Seq, jr.ICode, confs[0], confs[1:]...)
	}
	return rotagen.NewProtein(res...), nil
}

// WriteProtein encodes P as JSON and writes it to out.
func WriteProtein(out io.Writer, P *rotagen.Protein) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(EncodeProtein(P)); err != nil {
		return NewError("WriteProtein", err)
	}
	return nil
}

// ReadProtein decodes a JSON protein from in.
func ReadProtein(in io.Reader) (*rotagen.Protein, error) {
	J := new(Protein)
	if err := json.NewDecoder(in).Decode(J); err != nil {
		return nil, NewError("ReadProtein", err)
	}
	P, err := J.Decode()
	if err != nil {
		err.(*Error).Decorate("ReadProtein")
		return nil, err
	}
	return P, nil
}

// WriteTopology encodes the topology database T as JSON and writes it to out.
func WriteTopology(out io.Writer, T *top.DB) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", " ")
	if err := enc.Encode(T.Tables()); err != nil {
		return NewError("WriteTopology", err)
	}
	return nil
}

// ReadTopology decodes a JSON topology database from in.
func ReadTopology(in io.Reader) (*top.DB, error) {
	T := new(top.Tables)
	if err := json.NewDecoder(in).Decode(T); err != nil {
		return nil, NewError("ReadTopology", err)
	}
	return top.FromTables(T), nil
}
