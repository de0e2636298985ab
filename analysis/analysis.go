// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package analysis runs the representational similarity analyses of the face
perception study over RDMs provided by a Loader (normally a *dataset.Dataset):

  - RSA: correlations between DCNN layer, neural ROI and behavioral RDMs,
    for all stimuli and for a single run.
  - NoiseCeilings: Cronbach's alpha of the neural and behavioral subject stacks,
    computed in each run and averaged across runs, plus the all-stimuli neural alpha.
  - FeatureContrast: between minus within feature-group distance in the
    z-scored neural, DCNN layer and behavioral RDMs, averaged across runs.

Per-run statistics are computed concurrently, one goroutine per run.
*/
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"

	"github.com/emer/rsa/dataset"
	"github.com/emer/rsa/rdm"
	"github.com/emer/rsa/stats"
	"golang.org/x/sync/errgroup"
)

// Loader loads RDMs, subject stacks and feature masks by name.
// It is implemented by *dataset.Dataset.
type Loader interface {

	// NRuns returns the number of runs
	NRuns() int

	// NeuralStack returns the per-subject neural RDMs of an ROI
	NeuralStack(roi string, sel rdm.RunSelector) (*rdm.Stack, error)

	// Neural returns the subject-average neural RDM of an ROI
	Neural(roi string, sel rdm.RunSelector) (rdm.Vector, error)

	// DCNN returns the RDM of a DCNN layer
	DCNN(dcnn, layer string, sel rdm.RunSelector) (rdm.Vector, error)

	// BehavioralStack returns the per-rater behavioral RDMs of a run
	BehavioralStack(run int) (*rdm.Stack, error)

	// Behavioral returns the rater-average behavioral RDM of a run
	Behavioral(run int) (rdm.Vector, error)

	// FeatureMask returns the same-feature mask of a run
	FeatureMask(feature string, run int) (rdm.Mask, error)
}

// Params select the sources to analyze and how runs are processed.
type Params struct {

	// region of interest for neural RDMs: raFFA or laFFA
	ROI string `default:"raFFA"`

	// deep convolutional network: Face_ArcFace, Face_AlexNet, Face_VGG16, Object_AlexNet, Object_VGG16
	DCNN string `default:"Face_ArcFace"`

	// layer of the DCNN -- empty for its output (last) layer
	Layer string

	// face feature for the group contrast: age, ethnicity, expression, head_orientation, perceived_gender
	Feature string `default:"age"`

	// run used for the single-run RSA
	Run int `default:"0"`

	// compute two-sided p values for RSA correlations
	Sig bool

	// skip runs where a statistic is undefined (e.g., a mask with only one group)
	// instead of failing -- skipped runs are logged and left out of the average
	SkipDegenerate bool

	// maximum number of runs processed concurrently -- 0 = number of CPUs
	NThreads int
}

func (pr *Params) Defaults() {
	pr.ROI = "raFFA"
	pr.DCNN = "Face_ArcFace"
	pr.Layer = ""
	pr.Feature = "age"
	pr.Run = 0
	pr.NThreads = 0
}

// Update resolves an empty Layer to the last layer of the DCNN.
func (pr *Params) Update() error {
	if pr.Layer != "" {
		return nil
	}
	lay, err := dataset.LastLayer(pr.DCNN)
	if err != nil {
		return err
	}
	pr.Layer = lay
	return nil
}

func (pr *Params) threads() int {
	if pr.NThreads > 0 {
		return pr.NThreads
	}
	return runtime.NumCPU()
}

// RunFunc computes one statistic for one run.
type RunFunc func(run int) (float64, error)

// MeanOverRuns computes fun for each of nruns runs concurrently and returns
// the average, along with the number of runs that contributed.
// If pr.SkipDegenerate is set, runs failing with *stats.InvalidInputError are
// logged and skipped; any other error aborts the whole computation.
func MeanOverRuns(ctx context.Context, pr *Params, nruns int, name string, fun RunFunc) (float64, int, error) {
	vals := make([]float64, nruns)
	skipped := make([]bool, nruns)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(pr.threads())
	for run := 0; run < nruns; run++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := fun(run)
			var ie *stats.InvalidInputError
			switch {
			case err == nil:
				vals[run] = v
			case pr.SkipDegenerate && errors.As(err, &ie):
				log.Printf("analysis: %s: skipping run %d: %v\n", name, run, err)
				skipped[run] = true
			default:
				return fmt.Errorf("%s run %d: %w", name, run, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	var sum float64
	n := 0
	for run, v := range vals {
		if skipped[run] {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, 0, fmt.Errorf("%s: no runs with a defined value", name)
	}
	return sum / float64(n), n, nil
}
