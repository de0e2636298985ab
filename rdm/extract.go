// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdm

import "fmt"

// ExtractRun returns the RDM of run number run, taking runSize consecutive
// stimuli starting at run * runSize, from the full RDM.
// runSize is 59 or 58 depending on the data source.
func ExtractRun(full Vector, run, runSize int) (Vector, error) {
	if run < 0 {
		return nil, &InvalidShapeError{Len: len(full), Reason: fmt.Sprintf("negative run index %d", run)}
	}
	return ExtractBlock(full, run*runSize, runSize)
}

// ExtractBlock rebuilds the square form of the full RDM, slices out the
// size x size block of stimuli starting at start, and re-vectorizes it.
func ExtractBlock(full Vector, start, size int) (Vector, error) {
	sm, err := full.Square()
	if err != nil {
		return nil, err
	}
	n, _ := sm.Dims()
	switch {
	case size < 1:
		return nil, &InvalidShapeError{Len: len(full), Reason: fmt.Sprintf("run size %d must be positive", size)}
	case start < 0 || start+size > n:
		return nil, &InvalidShapeError{Len: len(full), Reason: fmt.Sprintf("stimuli [%d, %d) exceed the %d stimuli of the RDM", start, start+size, n)}
	}
	return vectorize(sm.SliceSym(start, start+size), size), nil
}

// Layout describes how the stimulus set is partitioned into consecutive runs.
// All runs have RunSize stimuli except the last, which takes whatever remains.
type Layout struct {
	NStim   int `def:"707" desc:"total number of stimuli across all runs"`
	NRuns   int `def:"12" desc:"number of runs"`
	RunSize int `def:"59" desc:"number of stimuli per run -- the last run can be shorter (58 for the standard 707 stimuli)"`
}

func (ly *Layout) Defaults() {
	ly.NStim = 707
	ly.NRuns = 12
	ly.RunSize = 59
}

// Validate checks that the runs exactly cover the stimuli, with a non-empty last run.
func (ly *Layout) Validate() error {
	if ly.NRuns < 1 || ly.RunSize < 1 {
		return &InvalidShapeError{Len: TriLen(ly.NStim), Reason: fmt.Sprintf("layout NRuns %d and RunSize %d must be positive", ly.NRuns, ly.RunSize)}
	}
	last := ly.NStim - (ly.NRuns-1)*ly.RunSize
	if last < 1 || last > ly.RunSize {
		return &InvalidShapeError{Len: TriLen(ly.NStim), Reason: fmt.Sprintf("layout of %d runs of %d does not cover %d stimuli", ly.NRuns, ly.RunSize, ly.NStim)}
	}
	return nil
}

// CheckFull returns an error if the layout is invalid or ln is not the
// length of a full RDM over all NStim stimuli.
func (ly *Layout) CheckFull(ln int) error {
	if err := ly.Validate(); err != nil {
		return err
	}
	if ln != TriLen(ly.NStim) {
		return &InvalidShapeError{Len: ln, Reason: fmt.Sprintf("expected a full RDM over %d stimuli (length %d)", ly.NStim, TriLen(ly.NStim))}
	}
	return nil
}

// RunStart returns the index of the first stimulus of given run
func (ly *Layout) RunStart(run int) int { return run * ly.RunSize }

// RunLen returns the number of stimuli in given run
func (ly *Layout) RunLen(run int) (int, error) {
	if run < 0 || run >= ly.NRuns {
		return 0, &InvalidShapeError{Len: TriLen(ly.NStim), Reason: fmt.Sprintf("run %d out of range [0, %d)", run, ly.NRuns)}
	}
	return min(ly.RunSize, ly.NStim-ly.RunStart(run)), nil
}

// Extract returns the RDM for given run from the full RDM over all NStim stimuli.
func (ly *Layout) Extract(full Vector, run int) (Vector, error) {
	if err := ly.CheckFull(len(full)); err != nil {
		return nil, err
	}
	rl, err := ly.RunLen(run)
	if err != nil {
		return nil, err
	}
	return ExtractBlock(full, ly.RunStart(run), rl)
}
