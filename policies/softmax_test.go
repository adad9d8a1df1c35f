package policies

import (
	"testing"

	"github.com/zeu5/nchain-rl-testing/core"
)

func TestSoftMaxUpdateUsesObservedReward(t *testing.T) {
	p := NewSoftMaxPolicy(0.5, 0.9, 1)

	state := testState("s")
	next := testState("s'")
	p.UpdateStep(nil, state, testAction("a"), &core.StepResult{
		State:  next,
		Reward: 2,
		Done:   false,
	})
	if v := p.QTable["s"]["a"]; v != 1 {
		t.Errorf("expected q value 1, got %f", v)
	}

	// Second update bootstraps from the successor's best value.
	p.QTable["s'"] = map[string]float64{"a": 4}
	p.UpdateStep(nil, state, testAction("a"), &core.StepResult{
		State:  next,
		Reward: 2,
		Done:   false,
	})
	expected := (1-0.5)*1 + 0.5*(2+0.9*4)
	if v := p.QTable["s"]["a"]; v != expected {
		t.Errorf("expected q value %f, got %f", expected, v)
	}
}

func TestSoftMaxPicksAmongGivenActions(t *testing.T) {
	p := NewSoftMaxPolicy(0.3, 0.9, 1)
	state := testState("s")
	actions := state.Actions()

	for i := 0; i < 50; i++ {
		picked := p.PickAction(nil, state, actions)
		if picked == nil {
			t.Fatalf("softmax returned no action")
		}
		if h := picked.Hash(); h != "a" && h != "b" {
			t.Fatalf("softmax picked unknown action %s", h)
		}
	}
}
