// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdm

import "strconv"

// RunSelector selects either all stimuli or one specific run.
// The zero value selects all stimuli.
type RunSelector struct {
	run      int
	specific bool
}

// AllRuns selects the full stimulus set.
func AllRuns() RunSelector { return RunSelector{} }

// Run selects a single run by index.
func Run(run int) RunSelector { return RunSelector{run: run, specific: true} }

// All returns true if the selector is for the full stimulus set.
func (rs RunSelector) All() bool { return !rs.specific }

// Index returns the run index, and false if all runs are selected.
func (rs RunSelector) Index() (int, bool) { return rs.run, rs.specific }

func (rs RunSelector) String() string {
	if !rs.specific {
		return "all"
	}
	return strconv.Itoa(rs.run)
}
