package analysis

import (
	"context"
	"strconv"
	"testing"

	"github.com/zeu5/nchain-rl-testing/core"
)

type stubState int

func (s stubState) Hash() string { return strconv.Itoa(int(s)) }

func (s stubState) Actions() []core.Action { return nil }

func traceWithRewards(rewards ...float64) *core.Trace {
	trace := core.NewTrace()
	for i, r := range rewards {
		trace.AddStep(&core.Step{
			State:     stubState(i),
			NextState: stubState(i + 1),
			Reward:    r,
		})
	}
	return trace
}

func episodeContext(episode int) *core.EpisodeContext {
	eCtx := core.NewEpisodeContext(context.Background())
	eCtx.Episode = episode
	return eCtx
}

func TestReturnAnalyzerRecordsEpisodeReturns(t *testing.T) {
	a := NewReturnAnalyzer()

	a.Analyze(episodeContext(0), traceWithRewards(2, 0, 10))
	a.Analyze(episodeContext(1), traceWithRewards(0, 0))

	dataset := a.DataSet().(*returnDataset)
	if len(dataset.Returns) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(dataset.Returns))
	}
	if dataset.Returns[0] != 12 || dataset.Returns[1] != 0 {
		t.Errorf("unexpected returns %v", dataset.Returns)
	}
	if dataset.MeanReturn != 6 {
		t.Errorf("expected mean 6, got %f", dataset.MeanReturn)
	}
}

func TestCoverageAnalyzerCountsUniqueStates(t *testing.T) {
	a := NewCoverageAnalyzer()

	a.Analyze(episodeContext(0), traceWithRewards(0, 0, 0))
	dataset := a.DataSet().(*coverageDataset)
	if len(dataset.UniqueStates) != 1 || dataset.UniqueStates[0] != 3 {
		t.Errorf("expected 3 unique states, got %v", dataset.UniqueStates)
	}

	// The same states again: cumulative timesteps grow, coverage does not.
	a.Analyze(episodeContext(1), traceWithRewards(0, 0, 0))
	dataset = a.DataSet().(*coverageDataset)
	if dataset.Timesteps[1] != 6 {
		t.Errorf("expected cumulative timesteps 6, got %d", dataset.Timesteps[1])
	}
	if dataset.UniqueStates[1] != 3 {
		t.Errorf("expected coverage to stay at 3, got %d", dataset.UniqueStates[1])
	}
}
