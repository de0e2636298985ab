// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/emer/rsa/rdm"
	"github.com/emer/rsa/stats"
)

// FeatureContrast returns the between minus within feature-group distance of
// the z-scored neural ROI, DCNN layer and behavioral RDMs, computed per run
// with that run's feature mask and averaged across runs.
// Larger values mean a clearer division between feature groups.
func FeatureContrast(ctx context.Context, ld Loader, pr *Params) (Results, error) {
	if err := pr.Update(); err != nil {
		return nil, err
	}
	nruns := ld.NRuns()
	sources := []struct {
		desc string
		load func(run int) (rdm.Vector, error)
	}{
		{fmt.Sprintf("neural ROI %s", pr.ROI), func(run int) (rdm.Vector, error) {
			return ld.Neural(pr.ROI, rdm.Run(run))
		}},
		{fmt.Sprintf("layer %s in %s", pr.Layer, pr.DCNN), func(run int) (rdm.Vector, error) {
			return ld.DCNN(pr.DCNN, pr.Layer, rdm.Run(run))
		}},
		{"behavioral task", func(run int) (rdm.Vector, error) {
			return ld.Behavioral(run)
		}},
	}
	rs := make(Results, 0, len(sources))
	for _, src := range sources {
		desc := fmt.Sprintf("in feature %s: %s", pr.Feature, src.desc)
		diff, n, err := MeanOverRuns(ctx, pr, nruns, "Diff "+desc, func(run int) (float64, error) {
			rv, err := src.load(run)
			if err != nil {
				return 0, err
			}
			mk, err := ld.FeatureMask(pr.Feature, run)
			if err != nil {
				return 0, err
			}
			return stats.GroupContrast(rv, mk)
		})
		if err != nil {
			return nil, err
		}
		rs = append(rs, Result{Analysis: "Diff (between-within)", Desc: desc, Run: "mean", NRuns: n, Value: diff, P: math.NaN()})
	}
	return rs, nil
}
