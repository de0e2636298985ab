// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdm

import "fmt"

// InvalidShapeError reports an RDM whose length does not correspond to a
// valid triangular number, a square matrix that is not a valid dissimilarity
// matrix, or a run block that falls outside the stimulus extent.
type InvalidShapeError struct {

	// Len is the offending length (vector length, or rows*cols for a matrix)
	Len int

	// Reason describes what is wrong with the shape
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("rdm: invalid shape (length %d): %s", e.Len, e.Reason)
}
