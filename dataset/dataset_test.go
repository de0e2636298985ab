// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emer/rsa/rdm"
	"github.com/sbinet/npyio"
	"github.com/sbinet/npyio/npz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// pairRDM returns an RDM over n stimuli where each pair (i, j) has value i*1000 + j + off.
func pairRDM(n int, off float64) rdm.Vector {
	v := make(rdm.Vector, rdm.TriLen(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v[rdm.Index(n, i, j)] = float64(i*1000+j) + off
		}
	}
	return v
}

func writeNpy(t *testing.T, path string, val any) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, npyio.Write(f, val))
}

// testDataset writes a small dataset: 5 stimuli in runs of 3 and 2.
func testDataset(t *testing.T) *Dataset {
	dir := t.TempDir()
	ds := New(dir)
	ds.Acc.Layout = rdm.Layout{NStim: 5, NRuns: 2, RunSize: 3}

	// 2 subjects, second is offset by 1
	neur := append(pairRDM(5, 0), pairRDM(5, 1)...)
	writeNpy(t, ds.NeuralPath("raFFA"), mat.NewDense(2, 10, neur))

	require.NoError(t, os.MkdirAll(filepath.Dir(ds.DCNNPath("Face_AlexNet")), 0o755))
	zw, err := npz.Create(ds.DCNNPath("Face_AlexNet"))
	require.NoError(t, err)
	require.NoError(t, zw.Write("fc2", []float64(pairRDM(5, 0))))
	require.NoError(t, zw.Write("conv1", []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
	require.NoError(t, zw.Close())

	writeNpy(t, ds.BehavioralPath(0), mat.NewDense(2, 3, []float64{1, 2, 3, 3, 4, 5}))
	writeNpy(t, ds.BehavioralPath(1), mat.NewDense(3, 1, []float64{1, 2, 6}))

	writeNpy(t, ds.FeatureMaskPath("perceived_gender", 0), []bool{true, false, false})
	writeNpy(t, ds.FeatureMaskPath("perceived_gender", 1), []bool{true})
	return ds
}

func TestLayerNames(t *testing.T) {
	lays, err := LayerNames("Face_ArcFace")
	require.NoError(t, err)
	assert.Len(t, lays, 52)
	assert.Equal(t, "_plus0", lays[1])

	last, err := LastLayer("Object_VGG16")
	require.NoError(t, err)
	assert.Equal(t, "fc2", last)

	lays, err = LayerNames("Face_AlexNet")
	require.NoError(t, err)
	assert.Len(t, lays, 11)
	lays[0] = "changed"
	again, _ := LayerNames("Object_AlexNet")
	assert.Equal(t, "input", again[0])

	_, err = LayerNames("ResNet")
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	ds := New("data")
	assert.Equal(t, 12, ds.NRuns())
	assert.Equal(t, filepath.Join("data", "neural_RDMs", "laFFA_RDMs.npy"), ds.NeuralPath("laFFA"))
	assert.Equal(t, filepath.Join("data", "DCNN_RDMs", "Face_VGG16_RDMs.npz"), ds.DCNNPath("Face_VGG16"))
	assert.Equal(t, filepath.Join("data", "behavioral_RDMs", "07.npy"), ds.BehavioralPath(7))
	assert.Equal(t, filepath.Join("data", "feature_masks", "age_11.npy"), ds.FeatureMaskPath("age", 11))
}

func TestNeural(t *testing.T) {
	ds := testDataset(t)

	st, err := ds.NeuralStack("raFFA", rdm.AllRuns())
	require.NoError(t, err)
	assert.Equal(t, 2, st.NSubjects())
	assert.Equal(t, 10, st.NElems())

	rst, err := ds.NeuralStack("raFFA", rdm.Run(0))
	require.NoError(t, err)
	assert.Equal(t, rdm.Vector{2, 3, 1003}, rst.Row(1))

	mv, err := ds.Neural("raFFA", rdm.Run(1))
	require.NoError(t, err)
	assert.Equal(t, rdm.Vector{3004.5}, mv)

	_, err = ds.Neural("rOFA", rdm.AllRuns())
	assert.Error(t, err)

	_, err = ds.Neural("laFFA", rdm.AllRuns()) // no file
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDCNN(t *testing.T) {
	ds := testDataset(t)

	full, err := ds.DCNN("Face_AlexNet", "fc2", rdm.AllRuns())
	require.NoError(t, err)
	assert.Equal(t, pairRDM(5, 0), full)

	rv, err := ds.DCNN("Face_AlexNet", "fc2", rdm.Run(0))
	require.NoError(t, err)
	assert.Equal(t, rdm.Vector{1, 2, 1002}, rv)

	f32, err := ds.DCNN("Face_AlexNet", "conv1", rdm.Run(1))
	require.NoError(t, err)
	assert.Equal(t, rdm.Vector{10}, f32)

	_, err = ds.DCNN("Face_AlexNet", "block1_conv1", rdm.AllRuns())
	assert.Error(t, err)
	_, err = ds.DCNN("LeNet", "fc2", rdm.AllRuns())
	assert.Error(t, err)
}

func TestBehavioral(t *testing.T) {
	ds := testDataset(t)

	st, err := ds.BehavioralStack(0)
	require.NoError(t, err)
	assert.Equal(t, 2, st.NSubjects())

	mv, err := ds.Behavioral(0)
	require.NoError(t, err)
	assert.Equal(t, rdm.Vector{2, 3, 4}, mv)

	mv, err = ds.Behavioral(1)
	require.NoError(t, err)
	assert.Equal(t, rdm.Vector{3}, mv)

	var se *rdm.InvalidShapeError
	_, err = ds.Behavioral(2)
	assert.ErrorAs(t, err, &se)

	writeNpy(t, ds.BehavioralPath(1), mat.NewDense(1, 3, []float64{1, 2, 3}))
	_, err = ds.Behavioral(1)
	assert.ErrorAs(t, err, &se)
}

func TestFeatureMask(t *testing.T) {
	ds := testDataset(t)

	mk, err := ds.FeatureMask("perceived_gender", 0)
	require.NoError(t, err)
	assert.Equal(t, rdm.Mask{true, false, false}, mk)

	_, err = ds.FeatureMask("hair_color", 0)
	assert.Error(t, err)

	writeNpy(t, ds.FeatureMaskPath("age", 0), []bool{true, false})
	var se *rdm.InvalidShapeError
	_, err = ds.FeatureMask("age", 0)
	assert.ErrorAs(t, err, &se)

	writeNpy(t, ds.FeatureMaskPath("expression", 0), []float64{1, 0, 0})
	_, err = ds.FeatureMask("expression", 0)
	assert.Error(t, err)
}
