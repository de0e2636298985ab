// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdm

// Accessor derives full-stimulus or single-run RDMs, per subject or averaged
// across subjects, from RDM arrays that are already in memory.
// It holds no state beyond the run Layout.
type Accessor struct {
	Layout Layout `desc:"run layout of the full stimulus set"`
}

// NewAccessor returns an accessor with the default 707 stimulus, 12 run layout.
func NewAccessor() *Accessor {
	ac := &Accessor{}
	ac.Layout.Defaults()
	return ac
}

// RDM returns the full RDM itself for AllRuns (checking its length against
// the Layout), or the single-run RDM for a specific run.
func (ac *Accessor) RDM(full Vector, sel RunSelector) (Vector, error) {
	run, ok := sel.Index()
	if !ok {
		if err := ac.Layout.CheckFull(len(full)); err != nil {
			return nil, err
		}
		return full, nil
	}
	return ac.Layout.Extract(full, run)
}

// Stack returns the subject stack itself for AllRuns (checking it covers all
// stimuli), or a new stack of
// each subject's single-run RDM for a specific run.
func (ac *Accessor) Stack(st *Stack, sel RunSelector) (*Stack, error) {
	if sel.All() {
		if err := ac.Layout.CheckFull(st.NElems()); err != nil {
			return nil, err
		}
		return st, nil
	}
	ns := st.NSubjects()
	rdms := make([]Vector, ns)
	for si := 0; si < ns; si++ {
		rv, err := ac.RDM(st.Row(si), sel)
		if err != nil {
			return nil, err
		}
		rdms[si] = rv
	}
	return NewStack(rdms...)
}

// Mean returns the subject-average RDM, for the full set or a single run.
func (ac *Accessor) Mean(st *Stack, sel RunSelector) (Vector, error) {
	rs, err := ac.Stack(st, sel)
	if err != nil {
		return nil, err
	}
	return rs.Mean(), nil
}
