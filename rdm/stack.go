// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdm

import (
	"fmt"

	"github.com/emer/etable/v2/etensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Stack is an ordered set of same-length RDMs, one per subject (or rater),
// stored as a 2D subjects x elements tensor.  Stack implements mat.Matrix
// with subjects as rows.
type Stack struct {
	Tsr *etensor.Float64 `desc:"subjects x elements RDM values"`
}

// NewStack returns a stack of copies of given RDMs, which must all have the same length.
func NewStack(rdms ...Vector) (*Stack, error) {
	if len(rdms) == 0 {
		return nil, &InvalidShapeError{Len: 0, Reason: "stack has no subjects"}
	}
	ne := len(rdms[0])
	vals := make([]float64, 0, len(rdms)*ne)
	for si, rv := range rdms {
		if len(rv) != ne {
			return nil, &InvalidShapeError{Len: len(rv), Reason: fmt.Sprintf("subject %d length differs from subject 0 length %d", si, ne)}
		}
		vals = append(vals, rv...)
	}
	return NewStackFromValues(len(rdms), ne, vals)
}

// NewStackFromValues returns a stack over row-major subjects x elements values.
// The values are copied.
func NewStackFromValues(nsubj, nelem int, vals []float64) (*Stack, error) {
	if nsubj < 1 {
		return nil, &InvalidShapeError{Len: len(vals), Reason: "stack has no subjects"}
	}
	if nsubj*nelem != len(vals) {
		return nil, &InvalidShapeError{Len: len(vals), Reason: fmt.Sprintf("%d values do not fill %d subjects x %d elements", len(vals), nsubj, nelem)}
	}
	if _, err := NStim(nelem); err != nil {
		return nil, err
	}
	tsr := etensor.NewFloat64([]int{nsubj, nelem}, nil, []string{"Subject", "Pair"})
	copy(tsr.Values, vals)
	return &Stack{Tsr: tsr}, nil
}

// NSubjects returns the number of subjects (rows)
func (st *Stack) NSubjects() int { return st.Tsr.Dim(0) }

// NElems returns the number of RDM elements per subject
func (st *Stack) NElems() int { return st.Tsr.Dim(1) }

// Row returns the RDM of subject si, sharing storage with the stack -- do not modify.
func (st *Stack) Row(si int) Vector {
	ne := st.NElems()
	return Vector(st.Tsr.Values[si*ne : (si+1)*ne : (si+1)*ne])
}

// Mean returns the average RDM across subjects.
func (st *Stack) Mean() Vector {
	mv := make(Vector, st.NElems())
	ns := st.NSubjects()
	for si := 0; si < ns; si++ {
		floats.Add(mv, st.Row(si))
	}
	floats.Scale(1/float64(ns), mv)
	return mv
}

// Dims is the mat.Matrix interface: subjects x elements.
func (st *Stack) Dims() (r, c int) { return st.NSubjects(), st.NElems() }

// At is the mat.Matrix interface.
func (st *Stack) At(i, j int) float64 {
	return st.Tsr.Values[i*st.NElems()+j]
}

// T is the mat.Matrix interface.
func (st *Stack) T() mat.Matrix { return mat.Transpose{Matrix: st} }
