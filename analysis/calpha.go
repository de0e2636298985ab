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

// NoiseCeilings returns the Cronbach's alpha noise ceilings of the neural ROI
// and of the behavioral arrangement task, each computed per run and averaged
// across runs, and of the neural ROI over all stimuli.
func NoiseCeilings(ctx context.Context, ld Loader, pr *Params) (Results, error) {
	nruns := ld.NRuns()
	roi := fmt.Sprintf("neural ROI %s", pr.ROI)

	neur, nn, err := MeanOverRuns(ctx, pr, nruns, "CAlpha "+roi, func(run int) (float64, error) {
		st, err := ld.NeuralStack(pr.ROI, rdm.Run(run))
		if err != nil {
			return 0, err
		}
		return stats.CronbachAlpha(st)
	})
	if err != nil {
		return nil, err
	}

	behav, nb, err := MeanOverRuns(ctx, pr, nruns, "CAlpha behavioral task", func(run int) (float64, error) {
		st, err := ld.BehavioralStack(run)
		if err != nil {
			return 0, err
		}
		return stats.CronbachAlpha(st)
	})
	if err != nil {
		return nil, err
	}

	st, err := ld.NeuralStack(pr.ROI, rdm.AllRuns())
	if err != nil {
		return nil, err
	}
	all, err := stats.CronbachAlpha(st)
	if err != nil {
		return nil, fmt.Errorf("CAlpha %s all stimuli: %w", roi, err)
	}

	return Results{
		{Analysis: "CAlpha", Desc: roi, Run: "mean", NRuns: nn, Value: neur, P: math.NaN()},
		{Analysis: "CAlpha", Desc: "behavioral task", Run: "mean", NRuns: nb, Value: behav, P: math.NaN()},
		{Analysis: "CAlpha", Desc: roi, Run: "all", Value: all, P: math.NaN()},
	}, nil
}
