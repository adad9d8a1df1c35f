package policies

import (
	"testing"

	"github.com/zeu5/nchain-rl-testing/core"
)

type testState string

func (s testState) Hash() string { return string(s) }

func (s testState) Actions() []core.Action {
	return []core.Action{testAction("a"), testAction("b")}
}

type testAction string

func (a testAction) Hash() string { return string(a) }

func TestEGreedyUpdateMovesTowardReward(t *testing.T) {
	p := NewEGreedyPolicy(0.5, 0.9, 0)

	state := testState("s")
	next := testState("s'")
	p.UpdateStep(nil, state, testAction("a"), &core.StepResult{
		State:  next,
		Reward: 10,
		Done:   true,
	})

	// Terminal transition: no bootstrap, so q = alpha * reward.
	if v := p.qTable.Get("s", "a", 0); v != 5 {
		t.Errorf("expected q value 5, got %f", v)
	}

	p.UpdateStep(nil, next, testAction("b"), &core.StepResult{
		State:  state,
		Reward: 0,
		Done:   false,
	})
	// Bootstraps from max_a q(s, a) = 5.
	if v := p.qTable.Get("s'", "b", 0); v != 0.5*0.9*5 {
		t.Errorf("expected bootstrapped value %f, got %f", 0.5*0.9*5, v)
	}
}

func TestEGreedyExploitsBestAction(t *testing.T) {
	p := NewEGreedyPolicy(0.5, 0.9, 0)
	state := testState("s")
	actions := state.Actions()

	p.qTable.Set("s", "a", 1)
	p.qTable.Set("s", "b", 4)

	for i := 0; i < 20; i++ {
		picked := p.PickAction(nil, state, actions)
		if picked.Hash() != "b" {
			t.Fatalf("greedy policy picked %s over the better action", picked.Hash())
		}
	}
}

func TestEGreedyResetClearsTable(t *testing.T) {
	p := NewEGreedyPolicy(0.5, 0.9, 0)
	p.qTable.Set("s", "a", 4)
	p.Reset()
	if p.qTable.HasState("s") {
		t.Errorf("reset did not clear the q table")
	}
}
