// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stats provides the statistics of representational similarity analysis
over vectorized RDMs:

  - Correlate: Pearson correlation between two RDMs (RSA).
  - CronbachAlpha: internal-consistency reliability of a stack of per-subject RDMs,
    used as the noise ceiling for cross-source correlations.
  - GroupContrast: between-group minus within-group mean of the z-scored RDM,
    for a feature mask marking pairs of stimuli sharing the feature value.

All functions are pure: they never modify their inputs and hold no state,
so they can be called concurrently for different runs, ROIs or layers.
Preconditions are checked up front and violations are returned as
*InvalidInputError -- no value is ever substituted for an undefined result.
Variances and standard deviations are population (divide by N) values.
*/
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// InvalidInputError reports a violated statistical precondition:
// mismatched lengths, too few samples, zero variance, or a degenerate mask.
type InvalidInputError struct {

	// Op is the name of the function that rejected its input
	Op string

	// Reason describes the violated precondition
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("stats.%s: invalid input: %s", e.Op, e.Reason)
}

func invalid(op, format string, args ...any) error {
	return &InvalidInputError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// checkVals returns an error if vals has fewer than minN values,
// has any NaN or Inf values, or is constant (zero variance).
func checkVals(op, name string, vals []float64, minN int) error {
	if len(vals) < minN {
		return invalid(op, "%s has %d values, need at least %d", name, len(vals), minN)
	}
	if i := nonFinite(vals); i >= 0 {
		return invalid(op, "%s[%d] is %v", name, i, vals[i])
	}
	if floats.Max(vals) == floats.Min(vals) {
		return invalid(op, "%s has zero variance", name)
	}
	return nil
}

// checkSpread returns an error if a computed variance or standard deviation
// of vals cannot be divided by: zero (also after underflow), NaN or Inf.
func checkSpread(op, name string, spread float64) error {
	if spread == 0 || math.IsNaN(spread) || math.IsInf(spread, 0) {
		return invalid(op, "%s has degenerate variance (%v)", name, spread)
	}
	return nil
}

// nonFinite returns the index of the first NaN or Inf value, or -1 if all are finite.
func nonFinite(vals []float64) int {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}
