// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CronbachAlpha returns the internal-consistency reliability of a stack of
// RDMs, with one row per subject (item) and one column per RDM element:
//
//	alpha = k/(k-1) * (1 - sum_i var(row_i) / var(sum_i row_i))
//
// where variances are across the m elements.  Requires k >= 2 subjects,
// m >= 2 elements, and a summed RDM with non-zero variance.
// Higher values indicate subjects agree more; alpha serves as the noise
// ceiling against which cross-source correlations are judged.
// An *rdm.Stack can be passed directly.
func CronbachAlpha(subjects mat.Matrix) (float64, error) {
	k, m := subjects.Dims()
	if k < 2 {
		return 0, invalid("CronbachAlpha", "%d subjects, need at least 2", k)
	}
	if m < 2 {
		return 0, invalid("CronbachAlpha", "%d elements, need at least 2", m)
	}
	row := make([]float64, m)
	sum := make([]float64, m)
	var rowVar float64
	for i := 0; i < k; i++ {
		mat.Row(row, i, subjects)
		if j := nonFinite(row); j >= 0 {
			return 0, invalid("CronbachAlpha", "subject %d element %d is %v", i, j, row[j])
		}
		_, v := stat.PopMeanVariance(row, nil)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, invalid("CronbachAlpha", "subject %d variance is %v", i, v)
		}
		rowVar += v
		floats.Add(sum, row)
	}
	if math.IsInf(rowVar, 0) {
		return 0, invalid("CronbachAlpha", "summed subject variances overflow")
	}
	if j := nonFinite(sum); j >= 0 {
		return 0, invalid("CronbachAlpha", "summed RDM element %d is %v", j, sum[j])
	}
	_, sumVar := stat.PopMeanVariance(sum, nil)
	if err := checkSpread("CronbachAlpha", "summed RDM", sumVar); err != nil {
		return 0, err
	}
	kf := float64(k)
	alpha := (kf / (kf - 1)) * (1 - rowVar/sumVar)
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return 0, invalid("CronbachAlpha", "alpha is %v", alpha)
	}
	return alpha, nil
}

// CronbachAlphaRows is CronbachAlpha for subjects given as a slice of rows,
// which must all have the same length.
func CronbachAlphaRows(subjects [][]float64) (float64, error) {
	if len(subjects) == 0 {
		return 0, invalid("CronbachAlpha", "0 subjects, need at least 2")
	}
	m := len(subjects[0])
	if m == 0 {
		return 0, invalid("CronbachAlpha", "0 elements, need at least 2")
	}
	dm := mat.NewDense(len(subjects), m, nil)
	for i, row := range subjects {
		if len(row) != m {
			return 0, invalid("CronbachAlpha", "subject %d has %d elements, subject 0 has %d", i, len(row), m)
		}
		dm.SetRow(i, row)
	}
	return CronbachAlpha(dm)
}
