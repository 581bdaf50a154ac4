package overlapping

import "github.com/katalvlaran/cxlib/dataset"

// span is the per-feature bounding box of a set of instances.
type span struct {
	lo, hi []float64
}

// spanOf computes the box of the given instance rows. rows must not be
// empty.
func spanOf(ds *dataset.Dataset, rows []int) span {
	m := ds.Cols()
	s := span{lo: make([]float64, m), hi: make([]float64, m)}
	for j := 0; j < m; j++ {
		s.lo[j] = ds.Value(rows[0], j)
		s.hi[j] = s.lo[j]
		for _, i := range rows[1:] {
			v := ds.Value(i, j)
			if v < s.lo[j] {
				s.lo[j] = v
			}
			if v > s.hi[j] {
				s.hi[j] = v
			}
		}
	}

	return s
}

// interval returns the closed overlap interval of feature j between two
// boxes; lo > hi means the classes do not overlap on j.
func interval(a, b span, j int) (lo, hi float64) {
	lo = a.lo[j]
	if b.lo[j] > lo {
		lo = b.lo[j]
	}
	hi = a.hi[j]
	if b.hi[j] < hi {
		hi = b.hi[j]
	}

	return lo, hi
}

// f2 is the volume of the jointly claimed region: the product over
// features of overlap length divided by joint range. A feature both
// classes hold constant at the same value overlaps completely and
// contributes factor 1.
func f2(sub *dataset.Dataset) float64 {
	s0 := spanOf(sub, sub.ClassRows(0))
	s1 := spanOf(sub, sub.ClassRows(1))

	prod := 1.0
	for j := 0; j < sub.Cols(); j++ {
		lo, hi := interval(s0, s1, j)
		overlap := hi - lo
		if overlap < 0 {
			overlap = 0
		}

		top := s0.hi[j]
		if s1.hi[j] > top {
			top = s1.hi[j]
		}
		bottom := s0.lo[j]
		if s1.lo[j] < bottom {
			bottom = s1.lo[j]
		}
		if rng := top - bottom; rng > 0 {
			prod *= overlap / rng
		}
	}

	return prod
}

// f3 is the fraction of the pair inside the least ambiguous feature's
// overlap interval (closed on both ends). The best single feature
// discriminates everything outside it.
func f3(sub *dataset.Dataset) float64 {
	s0 := spanOf(sub, sub.ClassRows(0))
	s1 := spanOf(sub, sub.ClassRows(1))

	n := sub.Rows()
	minInside := n
	for j := 0; j < sub.Cols(); j++ {
		lo, hi := interval(s0, s1, j)
		inside := 0
		if lo <= hi {
			for i := 0; i < n; i++ {
				if v := sub.Value(i, j); v >= lo && v <= hi {
					inside++
				}
			}
		}
		if inside < minInside {
			minInside = inside
		}
	}

	return float64(minInside) / float64(n)
}

// f4 is the fraction of the pair surviving greedy collective
// discrimination: each round the unused feature discriminating the
// most remaining instances (ties to the lower index) claims everything
// outside its current overlap interval, and intervals are recomputed
// on what is left. The loop stops when no feature removes anything.
func f4(sub *dataset.Dataset) float64 {
	n, m := sub.Rows(), sub.Cols()
	remaining := make([]bool, n)
	for i := range remaining {
		remaining[i] = true
	}
	left := n
	usable := make([]bool, m)
	for j := range usable {
		usable[j] = true
	}

	for left > 0 {
		// Split the survivors by class; a lone class is fully
		// discriminable, so nothing ambiguous remains.
		var rows0, rows1 []int
		for i := 0; i < n; i++ {
			if !remaining[i] {
				continue
			}
			if sub.Label(i) == 0 {
				rows0 = append(rows0, i)
			} else {
				rows1 = append(rows1, i)
			}
		}
		if len(rows0) == 0 || len(rows1) == 0 {
			left = 0
			break
		}
		s0 := spanOf(sub, rows0)
		s1 := spanOf(sub, rows1)

		bestJ, bestRemoved := -1, 0
		for j := 0; j < m; j++ {
			if !usable[j] {
				continue
			}
			lo, hi := interval(s0, s1, j)
			removed := 0
			for i := 0; i < n; i++ {
				if !remaining[i] {
					continue
				}
				if v := sub.Value(i, j); lo > hi || v < lo || v > hi {
					removed++
				}
			}
			if removed > bestRemoved {
				bestJ, bestRemoved = j, removed
			}
		}
		if bestRemoved == 0 {
			break
		}

		usable[bestJ] = false
		lo, hi := interval(s0, s1, bestJ)
		for i := 0; i < n; i++ {
			if !remaining[i] {
				continue
			}
			if v := sub.Value(i, bestJ); lo > hi || v < lo || v > hi {
				remaining[i] = false
				left--
			}
		}
	}

	return float64(left) / float64(n)
}
