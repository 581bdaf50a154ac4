package neighborhood

import (
	"math"

	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/distance"
)

// mstParents builds a minimum spanning tree over the complete distance
// graph with the dense Prim variant and returns it in parent form
// (parent[0] = -1).
//
// Steps:
//  1. seed the tree with instance 0;
//  2. adopt the cheapest frontier instance, lowest index on ties;
//  3. relax the remaining keys through the adopted instance.
//
// The complete graph makes the adjacency-list-and-heap formulation
// pointless: scanning keys directly is O(n²) total and allocation-free.
func mstParents(dm *distance.Dense) []int {
	n := dm.Rows()
	parent := make([]int, n)
	key := make([]float64, n)
	inTree := make([]bool, n)
	for i := range key {
		parent[i] = -1
		key[i] = math.Inf(1)
	}
	key[0] = 0

	for t := 0; t < n; t++ {
		// Step 2 - cheapest frontier instance; strict < keeps the
		// lowest index among equals.
		u := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (u < 0 || key[v] < key[u]) {
				u = v
			}
		}
		inTree[u] = true

		// Step 3 - relax through u.
		row := dm.Row(u)
		for v := 0; v < n; v++ {
			if !inTree[v] && row[v] < key[v] {
				key[v] = row[v]
				parent[v] = u
			}
		}
	}

	return parent
}

// n1 is the fraction of instances incident to an MST edge that joins
// two classes. Such instances sit on or near the class boundary.
func n1(ds *dataset.Dataset, dm *distance.Dense) float64 {
	parent := mstParents(dm)
	n := ds.Rows()

	boundary := make([]bool, n)
	for v := 1; v < n; v++ {
		u := parent[v]
		if ds.Label(u) != ds.Label(v) {
			boundary[u] = true
			boundary[v] = true
		}
	}

	count := 0
	for _, b := range boundary {
		if b {
			count++
		}
	}

	return float64(count) / float64(n)
}
