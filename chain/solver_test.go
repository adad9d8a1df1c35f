package chain

import "testing"

func TestValueIterationPrefersForwardWhenFarsighted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Slip = 0
	sol := SolveValueIteration(NewModel(cfg), 0.95, 1e-9, 10000)

	for s, a := range sol.Policy {
		if a != Forward {
			t.Errorf("state %d: expected forward under high discount, got %d", s, a)
		}
	}
	for s := 0; s < cfg.Length-1; s++ {
		if sol.Values[s] >= sol.Values[s+1] {
			t.Errorf("values should increase along the chain: V[%d]=%f V[%d]=%f",
				s, sol.Values[s], s+1, sol.Values[s+1])
		}
	}
}

func TestValueIterationPrefersBackwardWhenMyopic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Slip = 0
	sol := SolveValueIteration(NewModel(cfg), 0, 1e-9, 10000)

	// With no discounting only the immediate reward counts: backward pays 2
	// everywhere except at the end of the chain, where forward pays 10.
	for s := 0; s < cfg.Length-1; s++ {
		if sol.Policy[s] != Backward {
			t.Errorf("state %d: expected backward under zero discount, got %d", s, sol.Policy[s])
		}
	}
	if sol.Policy[cfg.Length-1] != Forward {
		t.Errorf("terminal state: expected forward, got %d", sol.Policy[cfg.Length-1])
	}
}

func TestValueIterationConverges(t *testing.T) {
	sol := SolveValueIteration(NewModel(DefaultConfig()), 0.9, 1e-8, 10000)
	if sol.Sweeps >= 10000 {
		t.Errorf("value iteration did not converge within the sweep budget")
	}
	if len(sol.Values) != 5 || len(sol.Policy) != 5 {
		t.Errorf("solution has wrong shape: %d values, %d actions", len(sol.Values), len(sol.Policy))
	}
}
