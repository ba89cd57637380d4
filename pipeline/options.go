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

// Package pipeline runs the whole conformer generation: the generators of package
// rotamer in their fixed order, the repacking and the pruning, keeping the
// connectivity and radius parameters up to date between stages and recording
// how many conformers each residue has after every stage.
package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/rmera/rotagen/prune"
	"github.com/rmera/rotagen/repack"
	"github.com/rmera/rotagen/rotamer"
)

// Options aggregates the options of every stage.
type Options struct {
	Rotamer  *rotamer.Options
	Repack   *repack.Options
	Prune    *prune.Options
	NoSwap   bool //skip the swap stage
	NoHBond  bool //skip the hydrogen-bond directed placement
	NoExpose bool //skip the exposure optimization
}

// DefaultOptions returns the default options of every stage.
func DefaultOptions() *Options {
	return &Options{Rotamer: rotamer.DefaultOptions(), Repack: repack.DefaultOptions(), Prune: prune.DefaultOptions()}
}

// ReadOptions reads the options from a TOML file. Keys not present in the file keep
// their default values.
func ReadOptions(name string) (*Options, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("ReadOptions: %w", err)
	}
	defer f.Close()
	O, err := DecodeOptions(f)
	if err != nil {
		return nil, fmt.Errorf("ReadOptions %s: %w", name, err)
	}
	return O, nil
}

// DecodeOptions reads TOML-formatted options from r. Keys not present keep
// their default values, and unknown keys are an error, so typos don't go unnoticed.
// The recognized tables are [rotamer], [rotamer.hbond], [rotamer.exposure], [vdw],
// [repack], [prune] and [stages].
func DecodeOptions(r io.Reader) (*Options, error) {
	t, err := toml.LoadReader(r)
	if err != nil {
		return nil, err
	}
	O := DefaultOptions()
	d := &decoder{tree: t, used: make(map[string]bool)}
	R := O.Rotamer
	d.int("rotamer.rotations", &R.Rotations)
	d.float("rotamer.phi_swing", &R.PhiSwing)
	d.float("rotamer.self_vdw_cutoff", &R.SelfVDWCutoff)
	d.float("rotamer.hbond.near", &R.HBond.Near)
	d.float("rotamer.hbond.far", &R.HBond.Far)
	d.float("rotamer.hbond.min_charge", &R.HBond.MinCharge)
	d.float("rotamer.hbond.blocking_angle", &R.HBond.BlockingAngle)
	d.float("rotamer.hbond.bond_length", &R.HBond.BondLength)
	d.float("rotamer.hbond.sp3_angle", &R.HBond.SP3Angle)
	d.strings("rotamer.hbond.excluded", &R.HBond.Excluded)
	d.float("rotamer.exposure.threshold", &R.Exposure.Threshold)
	d.floats("rotamer.exposure.schedule", &R.Exposure.Schedule)
	d.float("rotamer.exposure.min_gain", &R.Exposure.MinGain)
	d.int("rotamer.exposure.max_iter", &R.Exposure.MaxIter)
	d.int("rotamer.exposure.points", &R.Exposure.Points)
	d.float("rotamer.exposure.probe", &R.Exposure.Probe)
	d.strings("rotamer.exposure.non_polar", &R.Exposure.NonPolar)
	d.float("vdw.near", &R.VDW.Near)
	d.float("vdw.far", &R.VDW.Far)
	d.float("vdw.scale14", &R.VDW.Scale14)
	d.float("vdw.up_limit", &R.VDW.UpLimit)
	d.float("vdw.margin", &R.VDW.Margin)
	//the energy model is the same for every stage.
	O.Repack.VDW = R.VDW
	O.Prune.Params = R.VDW
	P := O.Repack
	d.int("repack.repacks", &P.Repacks)
	d.float("repack.cutoff", &P.Cutoff)
	d.int("repack.max_steps", &P.MaxSteps)
	d.int("repack.max_repeats", &P.MaxRepeats)
	var seed int
	if d.int("repack.seed", &seed) {
		P.Seed = int64(seed)
	}
	d.int("repack.cpus", &P.Cpus)
	d.float("repack.negligible", &P.Negligible)
	d.float("prune.vdw", &O.Prune.VDW)
	d.float("prune.rmsd", &O.Prune.RMSD)
	d.int("prune.max_confs", &O.Prune.MaxConfs)
	d.bool("stages.no_swap", &O.NoSwap)
	d.bool("stages.no_hbond", &O.NoHBond)
	d.bool("stages.no_expose", &O.NoExpose)
	if d.err != nil {
		return nil, d.err
	}
	if err := d.unknown(t, ""); err != nil {
		return nil, err
	}
	return O, nil
}

// decoder sets values from a TOML tree, only for the keys present in it.
// It keeps the first error found.
type decoder struct {
	tree *toml.Tree
	used map[string]bool
	err  error
}

func (d *decoder) get(key string) (interface{}, bool) {
	d.used[key] = true
	if d.err != nil || !d.tree.Has(key) {
		return nil, false
	}
	return d.tree.Get(key), true
}

func (d *decoder) fail(key string, v interface{}, want string) {
	d.err = fmt.Errorf("key %s: expected %s, got %v", key, want, v)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func (d *decoder) float(key string, dst *float64) bool {
	v, ok := d.get(key)
	if !ok {
		return false
	}
	f, ok := toFloat(v)
	if !ok {
		d.fail(key, v, "a number")
		return false
	}
	*dst = f
	return true
}

func (d *decoder) int(key string, dst *int) bool {
	v, ok := d.get(key)
	if !ok {
		return false
	}
	n, ok := v.(int64)
	if !ok {
		d.fail(key, v, "an integer")
		return false
	}
	*dst = int(n)
	return true
}

func (d *decoder) bool(key string, dst *bool) bool {
	v, ok := d.get(key)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		d.fail(key, v, "a boolean")
		return false
	}
	*dst = b
	return true
}

func (d *decoder) floats(key string, dst *[]float64) bool {
	v, ok := d.get(key)
	if !ok {
		return false
	}
	list, ok := v.([]interface{})
	if !ok {
		d.fail(key, v, "an array of numbers")
		return false
	}
	ret := make([]float64, len(list))
	for i, e := range list {
		if ret[i], ok = toFloat(e); !ok {
			d.fail(key, v, "an array of numbers")
			return false
		}
	}
	*dst = ret
	return true
}

func (d *decoder) strings(key string, dst *[]string) bool {
	v, ok := d.get(key)
	if !ok {
		return false
	}
	list, ok := v.([]interface{})
	if !ok {
		d.fail(key, v, "an array of strings")
		return false
	}
	ret := make([]string, len(list))
	for i, e := range list {
		if ret[i], ok = e.(string); !ok {
			d.fail(key, v, "an array of strings")
			return false
		}
	}
	*dst = ret
	return true
}

// unknown returns an error naming the first key in t, under prefix, that was never requested.
func (d *decoder) unknown(t *toml.Tree, prefix string) error {
	for _, k := range t.Keys() {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if sub, ok := t.Get(k).(*toml.Tree); ok {
			if err := d.unknown(sub, full); err != nil {
				return err
			}
			continue
		}
		if !d.used[full] {
			return fmt.Errorf("unknown key %s", full)
		}
	}
	return nil
}
