// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/emer/rsa/rdm"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Correlate returns the Pearson correlation between two RDMs of equal length >= 2,
// each with non-zero variance.  This is the basic RSA similarity statistic.
func Correlate(a, b rdm.Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, invalid("Correlate", "lengths differ: %d vs %d", len(a), len(b))
	}
	if err := checkVals("Correlate", "a", a, 2); err != nil {
		return 0, err
	}
	if err := checkVals("Correlate", "b", b, 2); err != nil {
		return 0, err
	}
	for _, v := range []struct {
		name string
		vals rdm.Vector
	}{{"a", a}, {"b", b}} {
		_, std := stat.PopMeanStdDev(v.vals, nil)
		if err := checkSpread("Correlate", v.name, std); err != nil {
			return 0, err
		}
	}
	r := stat.Correlation(a, b, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, invalid("Correlate", "correlation is %v", r)
	}
	return r, nil
}

// CorrelateSig returns the Pearson correlation and its two-sided p value
// under the null hypothesis of zero correlation, using a Student's t
// distribution with len(a)-2 degrees of freedom.
// With only 2 values p is always 1.
func CorrelateSig(a, b rdm.Vector) (r, p float64, err error) {
	r, err = Correlate(a, b)
	if err != nil {
		return 0, 0, err
	}
	df := float64(len(a) - 2)
	switch {
	case df == 0:
		return r, 1, nil
	case math.Abs(r) >= 1:
		return r, 0, nil
	}
	t := r * math.Sqrt(df/(1-r*r))
	st := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p = math.Min(1, 2*st.Survival(math.Abs(t)))
	return r, p, nil
}
