package chain

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Solution of a value-iteration run over a chain model.
type Solution struct {
	// Values holds the converged state values.
	Values []float64
	// Policy holds the greedy action for every state.
	Policy []int
	// Sweeps is the number of sweeps performed before convergence or cutoff.
	Sweeps int
}

// SolveValueIteration computes state values and a greedy policy for the
// model by iterating the Bellman optimality update until the sup-norm
// change drops below tolerance or maxSweeps is reached. The model is used
// exactly as exposed; nothing is sampled.
func SolveValueIteration(m *Model, discount, tolerance float64, maxSweeps int) *Solution {
	n := m.NumStates()
	values := make([]float64, n)
	next := make([]float64, n)

	sweeps := 0
	for ; sweeps < maxSweeps; sweeps++ {
		for s := 0; s < n; s++ {
			next[s] = actionValue(m, s, Forward, discount, values)
			if v := actionValue(m, s, Backward, discount, values); v > next[s] {
				next[s] = v
			}
		}
		diff := floats.Distance(next, values, math.Inf(1))
		copy(values, next)
		if diff < tolerance {
			sweeps++
			break
		}
	}

	policy := make([]int, n)
	for s := 0; s < n; s++ {
		forward := actionValue(m, s, Forward, discount, values)
		backward := actionValue(m, s, Backward, discount, values)
		if backward > forward {
			policy[s] = Backward
		} else {
			policy[s] = Forward
		}
	}

	return &Solution{
		Values: values,
		Policy: policy,
		Sweeps: sweeps,
	}
}

func actionValue(m *Model, s, a int, discount float64, values []float64) float64 {
	q := float64(0)
	for _, t := range m.Outcomes(s, a) {
		q += t.Prob * (t.Reward + discount*values[t.NextState])
	}
	return q
}
