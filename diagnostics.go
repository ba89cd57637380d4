/*
 * diagnostics.go, part of rotagen.
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
	"log"
	"sync"
)

// Diagnostics collects the non-fatal problems found during a run (missing
// bond partners, truncated residues, etc.). It also forwards every message to a
// logger, if one is given. A nil *Diagnostics is valid and discards everything.
type Diagnostics struct {
	mu       sync.Mutex
	warnings []string
	Log      *log.Logger
}

// NewDiagnostics returns a Diagnostics that forwards to l, which can be nil.
func NewDiagnostics(l *log.Logger) *Diagnostics {
	return &Diagnostics{Log: l}
}

// Warnf records a warning.
func (D *Diagnostics) Warnf(format string, args ...interface{}) {
	if D == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	D.mu.Lock()
	D.warnings = append(D.warnings, msg)
	D.mu.Unlock()
	if D.Log != nil {
		D.Log.Print("WARNING: " + msg)
	}
}

// Infof only logs the message.
func (D *Diagnostics) Infof(format string, args ...interface{}) {
	if D == nil || D.Log == nil {
		return
	}
	D.Log.Printf(format, args...)
}

// Warnings returns a copy of the warnings recorded so far.
func (D *Diagnostics) Warnings() []string {
	if D == nil {
		return nil
	}
	D.mu.Lock()
	defer D.mu.Unlock()
	ret := make([]string, len(D.warnings))
	copy(ret, D.warnings)
	return ret
}
