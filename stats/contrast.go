// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/emer/rsa/rdm"
	"gonum.org/v1/gonum/stat"
)

// ZScore returns a z-normalized copy of the RDM: subtract the mean and divide
// by the population standard deviation, both computed over the whole vector.
func ZScore(v rdm.Vector) (rdm.Vector, error) {
	if err := checkVals("ZScore", "rdm", v, 2); err != nil {
		return nil, err
	}
	mean, std := stat.PopMeanStdDev(v, nil)
	if err := checkSpread("ZScore", "rdm", std); err != nil {
		return nil, err
	}
	z := make(rdm.Vector, len(v))
	for i, x := range v {
		z[i] = stat.StdScore(x, mean, std)
	}
	if i := nonFinite(z); i >= 0 {
		return nil, invalid("ZScore", "z[%d] is %v", i, z[i])
	}
	return z, nil
}

// GroupContrast returns the mean z-scored dissimilarity of pairs not sharing
// the feature (mask false, between-group) minus that of pairs sharing it
// (mask true, within-group).  Positive values mean stimuli sharing the feature
// are more similar than those that do not, i.e., the feature structures the
// representational space.  Averaging over runs is up to the caller.
func GroupContrast(v rdm.Vector, mask rdm.Mask) (float64, error) {
	if len(v) != len(mask) {
		return 0, invalid("GroupContrast", "rdm length %d != mask length %d", len(v), len(mask))
	}
	same, diff := mask.Counts()
	if same == 0 || diff == 0 {
		return 0, invalid("GroupContrast", "mask needs both within (%d) and between (%d) pairs", same, diff)
	}
	z, err := ZScore(v)
	if err != nil {
		return 0, &InvalidInputError{Op: "GroupContrast", Reason: err.(*InvalidInputError).Reason}
	}
	var within, between float64
	for i, zv := range z {
		if mask[i] {
			within += zv
		} else {
			between += zv
		}
	}
	return between/float64(diff) - within/float64(same), nil
}
