// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRunAllEqual(t *testing.T) {
	full := Vector{2, 2, 2, 2, 2, 2} // 4 x 4, all distances 2
	rv, err := ExtractRun(full, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, Vector{2}, rv)
}

func TestExtractRunBlocks(t *testing.T) {
	full := pairRDM(6)

	rv, err := ExtractRun(full, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, Vector{2003}, rv)

	rv, err = ExtractRun(full, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, Vector{3004, 3005, 4005}, rv)

	// pure: same inputs, same output, input untouched
	again, err := ExtractRun(full, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, rv, again)
	assert.Equal(t, pairRDM(6), full)
}

func TestExtractRunErrors(t *testing.T) {
	var se *InvalidShapeError
	full := pairRDM(6)

	_, err := ExtractRun(full, 2, 3) // stimuli [6, 9)
	assert.ErrorAs(t, err, &se)

	_, err = ExtractRun(full, -1, 3)
	assert.ErrorAs(t, err, &se)

	_, err = ExtractRun(full, 0, 0)
	assert.ErrorAs(t, err, &se)

	_, err = ExtractRun(full[:len(full)-1], 0, 2)
	assert.ErrorAs(t, err, &se)
}

func TestLayoutDefaults(t *testing.T) {
	ly := Layout{}
	ly.Defaults()
	require.NoError(t, ly.Validate())

	for run := 0; run < 11; run++ {
		rl, err := ly.RunLen(run)
		require.NoError(t, err)
		assert.Equal(t, 59, rl)
	}
	rl, err := ly.RunLen(11)
	require.NoError(t, err)
	assert.Equal(t, 58, rl)
	assert.Equal(t, 649, ly.RunStart(11))

	_, err = ly.RunLen(12)
	var se *InvalidShapeError
	assert.ErrorAs(t, err, &se)
}

func TestLayoutExtract(t *testing.T) {
	ly := Layout{}
	ly.Defaults()
	full := pairRDM(ly.NStim)
	require.Len(t, full, 249571)

	rv, err := ly.Extract(full, 0)
	require.NoError(t, err)
	assert.Len(t, rv, 1711)
	assert.Equal(t, float64(1), rv[0])

	rv, err = ly.Extract(full, 11)
	require.NoError(t, err)
	assert.Len(t, rv, 1653)
	assert.Equal(t, float64(649650), rv[0])
	assert.Equal(t, float64(705706), rv[len(rv)-1])

	_, err = ly.Extract(full[:1711], 0)
	var se *InvalidShapeError
	assert.ErrorAs(t, err, &se)
}

func TestLayoutValidate(t *testing.T) {
	assert.Error(t, (&Layout{NStim: 707, NRuns: 12, RunSize: 58}).Validate())
	assert.Error(t, (&Layout{NStim: 707, NRuns: 13, RunSize: 59}).Validate())
	assert.Error(t, (&Layout{NStim: 10, NRuns: 0, RunSize: 5}).Validate())
	assert.NoError(t, (&Layout{NStim: 5, NRuns: 2, RunSize: 3}).Validate())

	// runs of 58 would leave the last 11 stimuli out
	ly := Layout{NStim: 707, NRuns: 12, RunSize: 58}
	var se *InvalidShapeError
	_, err := ly.Extract(pairRDM(707), 0)
	assert.ErrorAs(t, err, &se)
	ac := &Accessor{Layout: ly}
	_, err = ac.RDM(pairRDM(707), AllRuns())
	assert.ErrorAs(t, err, &se)
}
