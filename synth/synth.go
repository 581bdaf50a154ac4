// SPDX-License-Identifier: MIT

// Package synth generates small labeled datasets with known geometry:
// separable Gaussian blobs, concentric rings and the XOR layout. They
// feed examples and tests that need a dataset whose difficulty is
// obvious by construction. Same seed, same dataset; generators draw
// from decoupled streams, so adding one never reshuffles another.
package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/measure"
)

const (
	// blobSpacing is the Euclidean distance between adjacent class centers.
	blobSpacing = 6.0
	// blobSigma is the per-coordinate noise inside a blob.
	blobSigma = 1.0

	// circleInner and circleOuter are the two ring radii.
	circleInner = 0.5
	circleOuter = 1.0

	rngStreamBlobs   = 0x426C
	rngStreamCircles = 0x4369
	rngStreamXOR     = 0x584F
)

// Blobs samples classes Gaussian clusters of perClass points in dims
// dimensions. Centers sit on the main diagonal, blobSpacing apart, so
// with unit noise the classes barely touch. Rows come out class-major.
// Panics when classes or perClass is below 2 or dims is below 1.
func Blobs(classes, perClass, dims int, seed uint64) *dataset.Dataset {
	if classes < 2 {
		panic(fmt.Sprintf("synth: Blobs: need at least 2 classes, got %d", classes))
	}
	if perClass < 2 {
		panic(fmt.Sprintf("synth: Blobs: need at least 2 points per class, got %d", perClass))
	}
	if dims < 1 {
		panic(fmt.Sprintf("synth: Blobs: need at least 1 dimension, got %d", dims))
	}

	var (
		rng    = measure.NewRNG(seed, rngStreamBlobs)
		step   = blobSpacing / math.Sqrt(float64(dims)) // per-coordinate center offset
		rows   = make([][]float64, 0, classes*perClass)
		labels = make([]int, 0, classes*perClass)
	)
	for c := 0; c < classes; c++ {
		center := float64(c) * step
		for i := 0; i < perClass; i++ {
			row := make([]float64, dims)
			for j := range row {
				row[j] = center + rng.NormFloat64()*blobSigma
			}
			rows = append(rows, row)
			labels = append(labels, c)
		}
	}

	return build(rows, labels)
}

// Circles samples two concentric noisy rings of perClass points each:
// class 0 on the inner radius, class 1 on the outer. Angles are drawn
// uniformly; noise perturbs the radius. Panics when perClass is below
// 2 or noise is negative or not finite.
func Circles(perClass int, noise float64, seed uint64) *dataset.Dataset {
	if perClass < 2 {
		panic(fmt.Sprintf("synth: Circles: need at least 2 points per class, got %d", perClass))
	}
	if math.IsNaN(noise) || math.IsInf(noise, 0) || noise < 0 {
		panic(fmt.Sprintf("synth: Circles: noise must be finite and non-negative, got %v", noise))
	}

	var (
		rng    = measure.NewRNG(seed, rngStreamCircles)
		radii  = [2]float64{circleInner, circleOuter}
		rows   = make([][]float64, 0, 2*perClass)
		labels = make([]int, 0, 2*perClass)
	)
	for c, radius := range radii {
		for i := 0; i < perClass; i++ {
			angle := 2 * math.Pi * rng.Float64()
			r := radius + rng.NormFloat64()*noise
			rows = append(rows, []float64{r * math.Cos(angle), r * math.Sin(angle)})
			labels = append(labels, c)
		}
	}

	return build(rows, labels)
}

// XOR samples the checkerboard layout: perQuadrant uniform points in
// each quadrant of the unit square, labeled 0 where the coordinate
// signs agree and 1 where they differ. No linear model separates it.
// Panics when perQuadrant is below 1.
func XOR(perQuadrant int, seed uint64) *dataset.Dataset {
	if perQuadrant < 1 {
		panic(fmt.Sprintf("synth: XOR: need at least 1 point per quadrant, got %d", perQuadrant))
	}

	var (
		rng    = measure.NewRNG(seed, rngStreamXOR)
		signs  = [4][2]float64{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
		quads  = [4]int{0, 0, 1, 1}
		rows   = make([][]float64, 0, 4*perQuadrant)
		labels = make([]int, 0, 4*perQuadrant)
	)
	for q, sign := range signs {
		for i := 0; i < perQuadrant; i++ {
			rows = append(rows, []float64{sign[0] * rng.Float64(), sign[1] * rng.Float64()})
			labels = append(labels, quads[q])
		}
	}

	return build(rows, labels)
}

// build wraps table and dataset construction. Generators control their
// arguments, so a failure here is a bug in this package.
func build(rows [][]float64, labels []int) *dataset.Dataset {
	t, err := dataset.NewTable(nil, rows)
	if err != nil {
		panic(fmt.Sprintf("synth: %v", err))
	}
	ds, err := dataset.New(t, dataset.LabelsFromInts(labels))
	if err != nil {
		panic(fmt.Sprintf("synth: %v", err))
	}

	return ds
}
