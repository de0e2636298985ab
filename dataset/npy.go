// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/sbinet/npyio"
	"github.com/sbinet/npyio/npz"
)

// logLoad reports a loaded array and its in-memory size
func logLoad(path string, shape []int, nbytes int) {
	log.Printf("dataset: loaded %s shape %v (%s)\n", path, shape, datasize.ByteSize(nbytes).HumanReadable())
}

// openNpy opens a .npy file and reads its header, rejecting Fortran ordered arrays.
func openNpy(path string) (*os.File, *npyio.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	r, err := npyio.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	if r.Header.Descr.Fortran {
		f.Close()
		return nil, nil, fmt.Errorf("dataset: %s: Fortran-ordered arrays are not supported", path)
	}
	return f, r, nil
}

// readFloats reads a float32 or float64 .npy file as float64 values,
// returning the array shape and row-major values.
func readFloats(path string) ([]int, []float64, error) {
	f, r, err := openNpy(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	descr := r.Header.Descr
	var vals []float64
	switch {
	case strings.HasSuffix(descr.Type, "f8"):
		err = r.Read(&vals)
	case strings.HasSuffix(descr.Type, "f4"):
		var f32 []float32
		err = r.Read(&f32)
		vals = toFloat64(f32)
	default:
		err = fmt.Errorf("unsupported dtype %q, need float32 or float64", descr.Type)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	logLoad(path, descr.Shape, 8*len(vals))
	return descr.Shape, vals, nil
}

// readBools reads a boolean .npy file.
func readBools(path string) ([]int, []bool, error) {
	f, r, err := openNpy(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	descr := r.Header.Descr
	if !strings.HasSuffix(descr.Type, "b1") {
		return nil, nil, fmt.Errorf("dataset: %s: unsupported dtype %q, need bool", path, descr.Type)
	}
	var vals []bool
	if err := r.Read(&vals); err != nil {
		return nil, nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	logLoad(path, descr.Shape, len(vals))
	return descr.Shape, vals, nil
}

// readNpzFloats reads the named float32 or float64 array from a .npz archive.
func readNpzFloats(path, name string) ([]float64, error) {
	zr, err := npz.Open(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	var vals []float64
	if err := zr.Read(name, &vals); err != nil {
		var f32 []float32
		if err32 := zr.Read(name, &f32); err32 != nil {
			return nil, fmt.Errorf("dataset: %s[%s]: %w", path, name, err)
		}
		vals = toFloat64(f32)
	}
	logLoad(path+"["+name+"]", []int{len(vals)}, 8*len(vals))
	return vals, nil
}

func toFloat64(f32 []float32) []float64 {
	vals := make([]float64, len(f32))
	for i, v := range f32 {
		vals[i] = float64(v)
	}
	return vals
}
