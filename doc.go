// Package cxlib is your in-process toolbox for measuring how hard a labeled
// tabular dataset is to classify — from class balance and feature overlap up
// to neighborhood, linearity and network structure.
//
// 🚀 What is cxlib?
//
//	A deterministic, pure-computation library that brings together:
//		• Dataset normalization: tables, categorical labels, formula binding
//		• A canonical registry of six measure groups with prefix selectors
//		• A dispatcher that runs groups sequentially or fanned out in parallel
//		• One flat, ordered <group>.<submeasure> result per call
//		• The measures themselves: overlapping, neighborhood, linearity,
//		  dimensionality, balance and network families
//
// ✨ Why choose cxlib?
//
//   - Predictable – canonical ordering, fixed seeds, no time-based randomness
//   - Strict – sentinel errors for every invalid input, no partial results
//   - Pure Go – no cgo, no numeric megadeps, nothing global
//   - Extensible – add a registry entry, ship a new measure group
//
// Under the hood, everything is organized under focused subpackages:
//
//	dataset/        — feature tables, categorical labels, formulas, CSV
//	complexity/     — registry, selector resolution, dispatch, aggregation
//	overlapping/    — feature-overlap measures (F1, F1v, F2, F3, F4)
//	neighborhood/   — nearest-neighbor measures (N1..N4, T1, LSC)
//	linearity/      — linear-separability measures (L1, L2, L3)
//	dimensionality/ — dimensionality measures (T2, T3, T4)
//	balance/        — class-balance measures (C1, C2)
//	network/        — epsilon-NN graph measures (Density, ClsCoef, Hubs)
//	distance/       — Gower / Euclidean distance matrices
//	linalg/         — covariance, Jacobi eigen, SPD pseudo-inverse
//	synth/          — seeded synthetic datasets for demos and tests
//
// Quick taste:
//
//	ds := synth.Blobs(3, 50, 4, 7)
//	res, _ := complexity.ComputeDataset(ds)
//	for i := 0; i < res.Len(); i++ {
//	    name, value := res.At(i)
//	    fmt.Printf("%s = %.4f\n", name, value)
//	}
//
// Dive into the examples/ directory for runnable walkthroughs, and into each
// subpackage's documentation for contracts, complexity notes and edge cases.
package cxlib
