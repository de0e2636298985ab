// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
)

// LogPrec is precision for saving float values in result tables
const LogPrec = 6

// Result is one computed statistic.
type Result struct {

	// which analysis: RSA, CAlpha or Diff
	Analysis string

	// what was compared or measured, e.g. "layer fc1 in Face_ArcFace & neural ROI raFFA"
	Desc string

	// run the value is for: "all" stimuli, a run index, or "mean" across runs
	Run string

	// number of runs averaged into Value -- 0 for a single RDM
	NRuns int

	// the statistic: r, alpha, or between - within difference
	Value float64

	// two-sided p value for RSA correlations, NaN if not computed
	P float64
}

// Symbol returns the name of the statistic as printed
func (rs *Result) Symbol() string {
	switch rs.Analysis {
	case "RSA":
		return "r"
	case "CAlpha":
		return "calpha"
	}
	return "diff"
}

func (rs *Result) String() string {
	var hdr string
	switch {
	case rs.Analysis == "Diff (between-within)":
		hdr = fmt.Sprintf("%s %s", rs.Analysis, rs.Desc)
	case rs.Run == "mean":
		hdr = fmt.Sprintf("%s (mean of runs): %s", rs.Analysis, rs.Desc)
	case rs.Run == "all" && rs.Analysis == "CAlpha":
		hdr = fmt.Sprintf("%s (all stimuli): %s", rs.Analysis, rs.Desc)
	case rs.Run == "all":
		hdr = fmt.Sprintf("%s: %s", rs.Analysis, rs.Desc)
	default:
		hdr = fmt.Sprintf("%s of run number %s: %s", rs.Analysis, rs.Run, rs.Desc)
	}
	s := fmt.Sprintf("--- %s ---\n  %s = %v", hdr, rs.Symbol(), rs.Value)
	if !math.IsNaN(rs.P) {
		s += fmt.Sprintf(", p = %v", rs.P)
	}
	return s
}

// Results is an ordered list of computed statistics.
type Results []Result

// Table returns the results as an etable.Table with one row per result.
func (rs Results) Table() *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "Results")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{"Analysis", etensor.STRING, nil, nil},
		{"Desc", etensor.STRING, nil, nil},
		{"Run", etensor.STRING, nil, nil},
		{"NRuns", etensor.INT64, nil, nil},
		{"Value", etensor.FLOAT64, nil, nil},
		{"P", etensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, len(rs))
	for row, r := range rs {
		dt.SetCellString("Analysis", row, r.Analysis)
		dt.SetCellString("Desc", row, r.Desc)
		dt.SetCellString("Run", row, r.Run)
		dt.SetCellFloat("NRuns", row, float64(r.NRuns))
		dt.SetCellFloat("Value", row, r.Value)
		dt.SetCellFloat("P", row, r.P)
	}
	return dt
}

// WriteTSV writes the results table as tab-separated values with a header row.
func (rs Results) WriteTSV(w io.Writer) error {
	return rs.Table().WriteCSV(w, etable.Tab, true)
}

// SaveTSV saves the results table to given file as tab-separated values.
func (rs Results) SaveTSV(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := rs.WriteTSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
