/*
 * main.go, part of rotagen.
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

// Command rotagen generates the side chain conformers of a protein, given as a JSON
// structure, and writes the resulting conformer set, also as JSON. Files ending in
// ".zst" are read and written z-standard compressed.
//
// Usage:
//
//	rotagen -tpl top.json -in structure.json -out confs.json.zst [-config run.toml] [-stat rot_stat] [-seed N]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rmera/rotagen"
	"github.com/rmera/rotagen/chemjson"
	"github.com/rmera/rotagen/pipeline"
)

func main() {
	tpl := flag.String("tpl", "", "Topology database, JSON")
	in := flag.String("in", "", "Input structure, JSON")
	out := flag.String("out", "", "Output conformer set, JSON")
	config := flag.String("config", "", "Run parameters, TOML. Missing values take their defaults")
	statfile := flag.String("stat", "", "Write the per-residue conformer statistics to this file")
	seed := flag.Int64("seed", -1, "Seed for the repacking. A negative value keeps the one in the config file")
	quiet := flag.Bool("quiet", false, "Print only warnings")
	flag.Parse()
	if *tpl == "" || *in == "" || *out == "" {
		flag.Usage()
		os.Exit(1)
	}
	logger := log.New(os.Stderr, "rotagen: ", log.LstdFlags)
	D := rotagen.NewDiagnostics(logger)
	if *quiet {
		D = rotagen.NewDiagnostics(nil)
	}
	O := pipeline.DefaultOptions()
	var err error
	if *config != "" {
		O, err = pipeline.ReadOptions(*config)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *seed >= 0 {
		O.Repack.Seed = *seed
	}
	T, err := chemjson.ReadTopologyFile(*tpl)
	if err != nil {
		log.Fatal(err)
	}
	P, err := chemjson.ReadProteinFile(*in)
	if err != nil {
		log.Fatal(err)
	}
	S, err := pipeline.Run(P, T, O, D)
	if err != nil {
		log.Fatal(err)
	}
	if err := chemjson.WriteProteinFile(*out, P); err != nil {
		log.Fatal(err)
	}
	if *statfile != "" {
		f, err := os.Create(*statfile)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := S.WriteTo(f); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
	if *quiet {
		for _, w := range D.Warnings() {
			fmt.Fprintln(os.Stderr, "WARNING:", w)
		}
	}
	D.Infof("Done: %d conformers written to %s", P.NConformers(), *out)
}
