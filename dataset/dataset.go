// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dataset loads the persisted RDMs and feature masks of the face
perception study from NumPy files, and hands them to package rdm
as full-stimulus or single-run RDMs.

All paths are relative to the data directory Dir:

	neural_RDMs/<roi>_RDMs.npy          subjects x 249571 neural RDMs per ROI
	DCNN_RDMs/<dcnn>_RDMs.npz           one 249571 RDM per layer, keyed by layer name
	behavioral_RDMs/<run:02d>.npy       raters x run-length behavioral RDMs for one run
	feature_masks/<feature>_<run:02d>.npy  run-length bool mask for one run

Arrays may be float32 or float64 and are converted to float64 on load.
Nothing is cached: every call reads its file again.
*/
package dataset

import (
	"fmt"
	"path/filepath"

	"github.com/emer/rsa/rdm"
)

// Dataset resolves and loads the RDMs of the study from a data directory.
type Dataset struct {

	// root data directory
	Dir string

	// derives single-run RDMs from full-stimulus RDMs
	Acc rdm.Accessor
}

// New returns a dataset for given data directory with the standard
// 707 stimulus, 12 run layout.
func New(dir string) *Dataset {
	ds := &Dataset{Dir: dir}
	ds.Acc.Layout.Defaults()
	return ds
}

// NRuns returns the number of runs in the stimulus layout
func (ds *Dataset) NRuns() int { return ds.Acc.Layout.NRuns }

// NeuralPath returns the file holding the neural RDMs of given ROI
func (ds *Dataset) NeuralPath(roi string) string {
	return filepath.Join(ds.Dir, "neural_RDMs", roi+"_RDMs.npy")
}

// DCNNPath returns the archive holding the layer RDMs of given DCNN
func (ds *Dataset) DCNNPath(dcnn string) string {
	return filepath.Join(ds.Dir, "DCNN_RDMs", dcnn+"_RDMs.npz")
}

// BehavioralPath returns the file holding the behavioral RDMs of given run
func (ds *Dataset) BehavioralPath(run int) string {
	return filepath.Join(ds.Dir, "behavioral_RDMs", fmt.Sprintf("%02d.npy", run))
}

// FeatureMaskPath returns the file holding the mask of given feature and run
func (ds *Dataset) FeatureMaskPath(feature string, run int) string {
	return filepath.Join(ds.Dir, "feature_masks", fmt.Sprintf("%s_%02d.npy", feature, run))
}

// readStack reads a 2D subjects x elements array as a subject stack.
func readStack(path string) (*rdm.Stack, error) {
	shape, vals, err := readFloats(path)
	if err != nil {
		return nil, err
	}
	if len(shape) != 2 {
		return nil, fmt.Errorf("dataset: %s: shape %v, need subjects x elements", path, shape)
	}
	st, err := rdm.NewStackFromValues(shape[0], shape[1], vals)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return st, nil
}

// runTriLen returns the length of a single-run RDM for given run.
func (ds *Dataset) runTriLen(run int) (int, error) {
	if err := ds.Acc.Layout.Validate(); err != nil {
		return 0, err
	}
	rl, err := ds.Acc.Layout.RunLen(run)
	if err != nil {
		return 0, err
	}
	return rdm.TriLen(rl), nil
}

// NeuralStack returns the per-subject neural RDMs of given ROI,
// for all stimuli or a single run.
func (ds *Dataset) NeuralStack(roi string, sel rdm.RunSelector) (*rdm.Stack, error) {
	if err := checkName("ROI", roi, ROIs); err != nil {
		return nil, err
	}
	st, err := readStack(ds.NeuralPath(roi))
	if err != nil {
		return nil, err
	}
	return ds.Acc.Stack(st, sel)
}

// Neural returns the subject-average neural RDM of given ROI,
// for all stimuli or a single run.
func (ds *Dataset) Neural(roi string, sel rdm.RunSelector) (rdm.Vector, error) {
	st, err := ds.NeuralStack(roi, sel)
	if err != nil {
		return nil, err
	}
	return st.Mean(), nil
}

// DCNN returns the RDM of given layer of given DCNN, for all stimuli or a single run.
func (ds *Dataset) DCNN(dcnn, layer string, sel rdm.RunSelector) (rdm.Vector, error) {
	lays, err := LayerNames(dcnn)
	if err != nil {
		return nil, err
	}
	if err := checkName(dcnn+" layer", layer, lays); err != nil {
		return nil, err
	}
	vals, err := readNpzFloats(ds.DCNNPath(dcnn), layer)
	if err != nil {
		return nil, err
	}
	return ds.Acc.RDM(rdm.Vector(vals), sel)
}

// BehavioralStack returns the per-rater behavioral RDMs of given run.
// Behavioral RDMs only exist per run.
func (ds *Dataset) BehavioralStack(run int) (*rdm.Stack, error) {
	tl, err := ds.runTriLen(run)
	if err != nil {
		return nil, err
	}
	st, err := readStack(ds.BehavioralPath(run))
	if err != nil {
		return nil, err
	}
	if st.NElems() != tl {
		return nil, &rdm.InvalidShapeError{Len: st.NElems(), Reason: fmt.Sprintf("behavioral run %d RDMs must have %d elements", run, tl)}
	}
	return st, nil
}

// Behavioral returns the rater-average behavioral RDM of given run.
func (ds *Dataset) Behavioral(run int) (rdm.Vector, error) {
	st, err := ds.BehavioralStack(run)
	if err != nil {
		return nil, err
	}
	return st.Mean(), nil
}

// FeatureMask returns the mask of given feature for given run:
// true where both stimuli of the pair have the same feature value.
func (ds *Dataset) FeatureMask(feature string, run int) (rdm.Mask, error) {
	if err := checkName("feature", feature, Features); err != nil {
		return nil, err
	}
	tl, err := ds.runTriLen(run)
	if err != nil {
		return nil, err
	}
	path := ds.FeatureMaskPath(feature, run)
	_, vals, err := readBools(path)
	if err != nil {
		return nil, err
	}
	if len(vals) != tl {
		return nil, &rdm.InvalidShapeError{Len: len(vals), Reason: fmt.Sprintf("%s: run %d mask must have %d elements", path, run, tl)}
	}
	return rdm.Mask(vals), nil
}
