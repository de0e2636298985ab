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

// correlate returns the RSA result for a pair of RDMs.
func correlate(pr *Params, desc string, sel rdm.RunSelector, a, b rdm.Vector) (Result, error) {
	res := Result{Analysis: "RSA", Desc: desc, Run: sel.String(), P: math.NaN()}
	var err error
	if pr.Sig {
		res.Value, res.P, err = stats.CorrelateSig(a, b)
	} else {
		res.Value, err = stats.Correlate(a, b)
	}
	if err != nil {
		return res, fmt.Errorf("RSA %s run %s: %w", desc, sel, err)
	}
	return res, nil
}

// RSA correlates the DCNN layer RDM with the subject-average neural RDM of the ROI
// over all stimuli, and within run pr.Run correlates each pair of the DCNN layer,
// neural and rater-average behavioral RDMs.
func RSA(ctx context.Context, ld Loader, pr *Params) (Results, error) {
	if err := pr.Update(); err != nil {
		return nil, err
	}
	if pr.Run < 0 || pr.Run >= ld.NRuns() {
		return nil, fmt.Errorf("RSA: run %d out of range [0, %d)", pr.Run, ld.NRuns())
	}
	all := rdm.AllRuns()
	run := rdm.Run(pr.Run)

	neur, err := ld.Neural(pr.ROI, all)
	if err != nil {
		return nil, err
	}
	dcnn, err := ld.DCNN(pr.DCNN, pr.Layer, all)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	neurRun, err := ld.Neural(pr.ROI, run)
	if err != nil {
		return nil, err
	}
	dcnnRun, err := ld.DCNN(pr.DCNN, pr.Layer, run)
	if err != nil {
		return nil, err
	}
	behavRun, err := ld.Behavioral(pr.Run)
	if err != nil {
		return nil, err
	}

	lay := fmt.Sprintf("layer %s in %s", pr.Layer, pr.DCNN)
	roi := fmt.Sprintf("neural ROI %s", pr.ROI)
	behav := fmt.Sprintf("behavioral run number %d", pr.Run)
	pairs := []struct {
		desc string
		sel  rdm.RunSelector
		a, b rdm.Vector
	}{
		{lay + " & " + roi, all, dcnn, neur},
		{lay + " & " + roi, run, dcnnRun, neurRun},
		{lay + " & " + behav, run, dcnnRun, behavRun},
		{roi + " & " + behav, run, neurRun, behavRun},
	}
	rs := make(Results, 0, len(pairs))
	for _, pa := range pairs {
		res, err := correlate(pr, pa.desc, pa.sel, pa.a, pa.b)
		if err != nil {
			return nil, err
		}
		rs = append(rs, res)
	}
	return rs, nil
}
