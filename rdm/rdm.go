// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rdm provides the representational dissimilarity matrix (RDM) data model:
pairwise dissimilarities between stimuli stored in compact vectorized
upper-triangle form, the run layout of the stimulus set, single-run extraction,
subject stacks, and feature masks.

A vectorized RDM over n stimuli has n*(n-1)/2 elements: the above-diagonal
entries of the symmetric, zero-diagonal n x n matrix in row-major order
(the same ordering as scipy squareform).  Single-run RDMs are obtained by
rebuilding the square matrix, slicing out the run's block, and re-vectorizing
that block -- they are not a slice of the full vector.

All types here are treated as read-only once constructed.
*/
package rdm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vector is an RDM in vectorized upper-triangle form.
type Vector []float64

// Mask is a boolean vector aligned with an RDM, true where the pair of stimuli
// shares a categorical feature value.
type Mask []bool

// TriLen returns the length of the vectorized upper triangle of an n x n matrix.
func TriLen(n int) int { return n * (n - 1) / 2 }

// NStim returns the number of stimuli n such that TriLen(n) == ln,
// or an InvalidShapeError if ln is not a triangular number.
func NStim(ln int) (int, error) {
	if ln < 0 {
		return 0, &InvalidShapeError{Len: ln, Reason: "negative length"}
	}
	n := int(math.Round((1 + math.Sqrt(1+8*float64(ln))) / 2))
	if TriLen(n) != ln {
		return 0, &InvalidShapeError{Len: ln, Reason: "not a triangular number"}
	}
	return n, nil
}

// NStim returns the number of stimuli the RDM is defined over.
func (v Vector) NStim() (int, error) { return NStim(len(v)) }

// Index returns the position in a vectorized RDM over n stimuli of the pair (i, j), i < j.
func Index(n, i, j int) int {
	return n*i - i*(i+1)/2 + (j - i - 1)
}

// Square rebuilds the full symmetric, zero-diagonal dissimilarity matrix.
func (v Vector) Square() (*mat.SymDense, error) {
	n, err := v.NStim()
	if err != nil {
		return nil, err
	}
	sm := mat.NewSymDense(n, nil)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sm.SetSym(i, j, v[k])
			k++
		}
	}
	return sm, nil
}

// FromSquare vectorizes the upper triangle of a square matrix, which must be
// exactly symmetric with a zero diagonal.
func FromSquare(m mat.Matrix) (Vector, error) {
	r, c := m.Dims()
	if r != c {
		return nil, &InvalidShapeError{Len: r * c, Reason: "matrix is not square"}
	}
	for i := 0; i < r; i++ {
		if m.At(i, i) != 0 {
			return nil, &InvalidShapeError{Len: r * c, Reason: "diagonal is not zero"}
		}
		for j := i + 1; j < r; j++ {
			if m.At(i, j) != m.At(j, i) {
				return nil, &InvalidShapeError{Len: r * c, Reason: "matrix is not symmetric"}
			}
		}
	}
	return vectorize(m, r), nil
}

// vectorize copies the upper triangle of the first n rows / cols of m.
func vectorize(m mat.Matrix, n int) Vector {
	v := make(Vector, 0, TriLen(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v = append(v, m.At(i, j))
		}
	}
	return v
}

// Counts returns the number of true (same feature) and false (different feature) entries.
func (mk Mask) Counts() (same, diff int) {
	for _, b := range mk {
		if b {
			same++
		}
	}
	return same, len(mk) - same
}
