// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"slices"
)

// ROIs are the regions of interest with neural RDMs.
var ROIs = []string{"raFFA", "laFFA"}

// DCNNs are the deep convolutional networks with layer RDMs.
var DCNNs = []string{"Face_ArcFace", "Face_AlexNet", "Face_VGG16", "Object_AlexNet", "Object_VGG16"}

// Features are the face features with masks.
var Features = []string{"age", "ethnicity", "expression", "head_orientation", "perceived_gender"}

var alexNetLayers = []string{"input", "conv1", "pool1", "conv2", "pool2", "conv3", "conv4", "conv5", "pool5", "fc1", "fc2"}

var vgg16Layers = []string{"input",
	"block1_conv1", "block1_conv2", "block1_pool",
	"block2_conv1", "block2_conv2", "block2_pool",
	"block3_conv1", "block3_conv2", "block3_conv3", "block3_pool",
	"block4_conv1", "block4_conv2", "block4_conv3", "block4_pool",
	"block5_conv1", "block5_conv2", "block5_conv3", "block5_pool",
	"fc1", "fc2"}

func arcFaceLayers() []string {
	lays := []string{"input"}
	for i := 0; i < 49; i++ {
		lays = append(lays, fmt.Sprintf("_plus%d", i))
	}
	return append(lays, "pre_fc1", "fc1")
}

// LayerNames returns the names of the layers of given DCNN, from input to output.
func LayerNames(dcnn string) ([]string, error) {
	switch dcnn {
	case "Face_ArcFace":
		return arcFaceLayers(), nil
	case "Face_AlexNet", "Object_AlexNet":
		return slices.Clone(alexNetLayers), nil
	case "Face_VGG16", "Object_VGG16":
		return slices.Clone(vgg16Layers), nil
	}
	return nil, fmt.Errorf("dataset: unknown DCNN %q, must be one of %v", dcnn, DCNNs)
}

// LastLayer returns the output layer of given DCNN.
func LastLayer(dcnn string) (string, error) {
	lays, err := LayerNames(dcnn)
	if err != nil {
		return "", err
	}
	return lays[len(lays)-1], nil
}

func checkName(kind, name string, valid []string) error {
	if !slices.Contains(valid, name) {
		return fmt.Errorf("dataset: unknown %s %q, must be one of %v", kind, name, valid)
	}
	return nil
}
