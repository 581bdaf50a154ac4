package network

const (
	// hubIters bounds the power iteration.
	hubIters = 128
	// hubTol is the L∞ change below which the iteration stops.
	hubTol = 1e-12
)

// hubComplement is 1 minus the mean hub score. Scores come from power
// iteration on the adjacency matrix, rescaled each step so the largest
// entry is 1; vertices outside the dominant component decay to 0. An
// edgeless graph short-circuits to all-zero scores.
func (g *graph) hubComplement() float64 {
	scores := g.hubScores()

	var sum float64
	for _, s := range scores {
		sum += s
	}

	return 1 - sum/float64(g.n)
}

// hubScores runs the max-normalized power iteration on A+I. The
// identity shift keeps the principal eigenvector while making the
// iteration aperiodic, so bipartite components cannot oscillate.
func (g *graph) hubScores() []float64 {
	v := make([]float64, g.n)
	if g.edges == 0 {
		return v
	}
	for i := range v {
		v[i] = 1
	}

	next := make([]float64, g.n)
	for it := 0; it < hubIters; it++ {
		var max float64
		for u := 0; u < g.n; u++ {
			s := v[u]
			for _, w := range g.neighbors[u] {
				s += v[w]
			}
			next[u] = s
			if s > max {
				max = s
			}
		}

		var diff float64
		for u := range next {
			next[u] /= max
			if d := next[u] - v[u]; d > diff {
				diff = d
			} else if -d > diff {
				diff = -d
			}
		}
		v, next = next, v
		if diff <= hubTol {
			break
		}
	}

	return v
}
