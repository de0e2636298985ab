// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rsa is the overall repository for representational similarity analysis
(RSA) of the face perception study: comparing the representational
dissimilarity matrices (RDMs) of neural regions of interest, DCNN layers and a
behavioral arrangement task over a set of 707 face stimuli shown in 12 runs.

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* rdm: the RDM data model -- vectorized upper-triangle RDMs, the run layout
of the stimulus set, single-run extraction, subject stacks, feature masks,
and the RunSelector used to request all stimuli or one run.

* stats: the statistics -- Pearson correlation (with optional p value),
Cronbach's alpha over subject RDMs, and the between minus within group
contrast of a z-scored RDM.

* dataset: loading of the persisted neural, DCNN and behavioral RDMs and
feature masks from NumPy .npy / .npz files.

* analysis: the RSA, noise ceiling and feature contrast analyses, with
per-run statistics computed concurrently and averaged across runs.

* examples: these compile into runnable programs, one per analysis
(examples/rsa, examples/calpha, examples/features), configured by
config.toml files and command-line args.
*/
package rsa
