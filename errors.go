/*
 * errors.go, part of rotagen.
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

// Error is the error type of rotagen and its sub-packages. The Decorate method
// allows to add information to the error as it is passed up, without wrapping it.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// NewError returns a new Error with the given message. If critical is true,
// the error should abort the current residue/stage.
func NewError(message string, critical bool, deco ...string) *Error {
	return &Error{message: message, deco: deco, critical: critical}
}

// Errorf is like NewError, with a formatted message. The error is always critical.
func Errorf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), critical: true}
}

// Error returns the error message, preceded by the decoration, in calling order.
func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return err.message
	}
	d := make([]string, len(err.deco))
	for i, v := range err.deco {
		d[len(d)-1-i] = v
	}
	return strings.Join(d, ": ") + ": " + err.message
}

// Decorate adds dec to the decoration of the error and returns the
// resulting decoration slice. An empty string just returns the current value.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

// errDecorate decorates err with the caller's name if it is an *Error,
// and wraps it otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
		return e
	}
	return fmt.Errorf("%s: %w", caller, err)
}

// ErrDecorate is the exported version of errDecorate, for the use of the sub-packages.
func ErrDecorate(err error, caller string) error {
	return errDecorate(err, caller)
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilConformer   = PanicMsg("rotagen: nil conformer")
	ErrNoBackbone     = PanicMsg("rotagen: a residue needs at least its backbone conformer")
	ErrBackboneChange = PanicMsg("rotagen: the backbone conformer of a residue can't be replaced")
	ErrAtomOutOfRange = PanicMsg("rotagen: atom index out of range")
	ErrCoordMismatch  = PanicMsg("rotagen: number of atoms and coordinates differ")
)
