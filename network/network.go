package network

import (
	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/distance"
	"github.com/katalvlaran/cxlib/measure"
)

// Compute returns the graph submeasures Density, ClsCoef and Hubs.
// It never fails on a validated dataset; the error return satisfies
// the measure.Func contract.
func Compute(ds *dataset.Dataset, opts measure.Options) (*measure.Values, error) {
	opts = opts.Normalize()
	g := buildGraph(ds, opts)

	out := measure.NewValues()
	out.Add("Density", g.density())
	out.Add("ClsCoef", g.clusteringComplement())
	out.Add("Hubs", g.hubComplement())

	return out, nil
}

// graph is the same-class ε-neighborhood graph in both adjacency and
// neighbor-list form.
type graph struct {
	n         int
	edges     int
	adj       []bool  // n×n, row-major
	neighbors [][]int // ascending per vertex
}

// buildGraph connects same-class instances strictly closer than
// NetworkEps. Vertices keep instance indices, so loops stay in input
// order.
func buildGraph(ds *dataset.Dataset, opts measure.Options) *graph {
	dm := distance.Matrix(ds, distance.WithMetric(opts.Metric))
	n := ds.Rows()
	g := &graph{
		n:         n,
		adj:       make([]bool, n*n),
		neighbors: make([][]int, n),
	}

	for i := 0; i < n; i++ {
		row := dm.Row(i)
		for j := i + 1; j < n; j++ {
			if ds.Label(i) != ds.Label(j) || row[j] >= opts.NetworkEps {
				continue
			}
			g.adj[i*n+j] = true
			g.adj[j*n+i] = true
			g.neighbors[i] = append(g.neighbors[i], j)
			g.neighbors[j] = append(g.neighbors[j], i)
			g.edges++
		}
	}

	return g
}

// connected reports whether u and v share an edge.
func (g *graph) connected(u, v int) bool { return g.adj[u*g.n+v] }

// density is 1 − |E| / (n(n−1)/2).
func (g *graph) density() float64 {
	possible := g.n * (g.n - 1) / 2

	return 1 - float64(g.edges)/float64(possible)
}

// clusteringComplement is 1 minus the mean local clustering
// coefficient. A vertex with fewer than two neighbors has no pairs to
// close and counts as zero.
func (g *graph) clusteringComplement() float64 {
	var sum float64
	for v := 0; v < g.n; v++ {
		nb := g.neighbors[v]
		deg := len(nb)
		if deg < 2 {
			continue
		}
		links := 0
		for a := 0; a < deg-1; a++ {
			for b := a + 1; b < deg; b++ {
				if g.connected(nb[a], nb[b]) {
					links++
				}
			}
		}
		sum += float64(links) / float64(deg*(deg-1)/2)
	}

	return 1 - sum/float64(g.n)
}
