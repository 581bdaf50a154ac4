package linearity

import "github.com/katalvlaran/cxlib/linalg"

// model is a linear decision function over standardized features.
type model struct {
	w []float64
	b float64
}

// decide returns the signed decision value for x.
func (m *model) decide(x []float64) float64 {
	return linalg.Dot(m.w, x) + m.b
}

// predict maps the decision value to a class sign; the boundary itself
// goes to +1 so predictions are total.
func (m *model) predict(x []float64) float64 {
	if m.decide(x) >= 0 {
		return 1
	}

	return -1
}

// fit trains the model on rows x with targets y ∈ {+1, −1} by iters
// rounds of full-batch subgradient descent on
//
//	λ/2·‖w‖² + (1/n)·Σ max(0, 1 − y_i(w·x_i + b)).
//
// Instances are visited in index order every round, so the fit is a
// pure function of its inputs.
func fit(x [][]float64, y []float64, iters int, rate, lambda float64) *model {
	n := len(x)
	m := &model{w: make([]float64, len(x[0]))}

	grad := make([]float64, len(m.w))
	for it := 0; it < iters; it++ {
		for j := range grad {
			grad[j] = lambda * m.w[j]
		}
		gradB := 0.0
		for i := 0; i < n; i++ {
			if y[i]*m.decide(x[i]) >= 1 {
				continue
			}
			scale := y[i] / float64(n)
			for j, v := range x[i] {
				grad[j] -= scale * v
			}
			gradB -= scale
		}
		for j := range m.w {
			m.w[j] -= rate * grad[j]
		}
		m.b -= rate * gradB
	}

	return m
}
