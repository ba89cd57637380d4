/*
 * files.go, part of rotagen.
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
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/top"
)

// Compressed returns true if a file with the given name is z-standard compressed.
func Compressed(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".zst")
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// create opens name for writing, through a z-standard compressor if the name requires it.
// Both returned closers need to be closed, in order.
func create(name string) (io.WriteCloser, *os.File, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	if !Compressed(name) {
		return nopCloser{f}, f, nil
	}
	z, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return z, f, nil
}

func open(name string) (io.Reader, func(), error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	if !Compressed(name) {
		return bufio.NewReader(f), func() { f.Close() }, nil
	}
	z, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return z, func() { z.Close(); f.Close() }, nil
}

func writeFile(name string, write func(io.Writer) error) error {
	w, f, err := create(name)
	if err != nil {
		return NewError("writeFile", err)
	}
	if err := write(w); err != nil {
		w.Close()
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return NewError("writeFile", err)
	}
	if err := f.Close(); err != nil {
		return NewError("writeFile", err)
	}
	return nil
}

// WriteProteinFile writes P to the file name, compressed if the name ends in ".zst".
func WriteProteinFile(name string, P *rotagen.Protein) error {
	return writeFile(name, func(w io.Writer) error { return WriteProtein(w, P) })
}

// ReadProteinFile reads a protein from the file name, which is decompressed if it ends in ".zst".
func ReadProteinFile(name string) (*rotagen.Protein, error) {
	r, closer, err := open(name)
	if err != nil {
		return nil, NewError("ReadProteinFile", err)
	}
	defer closer()
	return ReadProtein(r)
}

// WriteTopologyFile writes the topology T to the file name, compressed if the name ends in ".zst".
func WriteTopologyFile(name string, T *top.DB) error {
	return writeFile(name, func(w io.Writer) error { return WriteTopology(w, T) })
}

// ReadTopologyFile reads a topology from the file name, which is decompressed if it ends in ".zst".
func ReadTopologyFile(name string) (*top.DB, error) {
	r, closer, err := open(name)
	if err != nil {
		return nil, NewError("ReadTopologyFile", err)
	}
	defer closer()
	return ReadTopology(r)
}
