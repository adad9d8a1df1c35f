package chain

import (
	"math"
	"testing"
)

func TestModelShapeAndProbabilities(t *testing.T) {
	cfg := DefaultConfig()
	m := NewModel(cfg)

	if m.NumStates() != cfg.Length {
		t.Fatalf("expected %d states, got %d", cfg.Length, m.NumStates())
	}
	for s := 0; s < cfg.Length; s++ {
		for a := 0; a < NumActions; a++ {
			outcomes := m.Outcomes(s, a)
			total := outcomes[0].Prob + outcomes[1].Prob
			if math.Abs(total-1) > 1e-12 {
				t.Errorf("outcome probabilities for (%d, %d) sum to %f", s, a, total)
			}
			for _, o := range outcomes {
				if o.NextState < 0 || o.NextState >= cfg.Length {
					t.Errorf("(%d, %d) transitions out of bounds to %d", s, a, o.NextState)
				}
			}
		}
	}
}

func TestModelMirrorsStepDynamics(t *testing.T) {
	cfg := DefaultConfig()
	m := NewModel(cfg)

	for s := 0; s < cfg.Length-1; s++ {
		forward := m.Outcomes(s, Forward)
		if forward[0].Prob != 1-cfg.Slip || forward[0].NextState != s+1 || forward[0].Reward != 0 {
			t.Errorf("state %d forward main outcome: %+v", s, forward[0])
		}
		if forward[1].Prob != cfg.Slip || forward[1].NextState != 0 || forward[1].Reward != cfg.SmallReward {
			t.Errorf("state %d forward slip outcome: %+v", s, forward[1])
		}
	}

	terminal := cfg.Length - 1
	forward := m.Outcomes(terminal, Forward)
	if forward[0].NextState != terminal || forward[0].Reward != cfg.LargeReward {
		t.Errorf("terminal forward main outcome: %+v", forward[0])
	}

	backward := m.Outcomes(2, Backward)
	if backward[0].Prob != 1-cfg.Slip || backward[0].NextState != 0 || backward[0].Reward != cfg.SmallReward {
		t.Errorf("backward main outcome: %+v", backward[0])
	}
	if backward[1].Prob != cfg.Slip || backward[1].NextState != 3 || backward[1].Reward != 0 {
		t.Errorf("backward slip outcome: %+v", backward[1])
	}
}
