package nchain

import (
	"github.com/zeu5/nchain-rl-testing/analysis"
	"github.com/zeu5/nchain-rl-testing/benchmarks/common"
	"github.com/zeu5/nchain-rl-testing/core"
	"github.com/zeu5/nchain-rl-testing/policies"
)

// PrepareComparison wires the standard NChain benchmark: a random baseline
// against the two Q-learning policies, with coverage and return analyses.
func PrepareComparison(flags *common.Flags) *core.ParallelComparison {
	cmp := core.NewParallelComparison()

	envConstructor := NewChainEnvConstructor(flags.ChainConfig(), flags.Seed)

	cmp.AddAnalysis("Coverage", analysis.NewCoverageAnalyzerConstructor(), analysis.NewCoverageComparatorConstructor(flags.SavePath))
	cmp.AddAnalysis("Returns", analysis.NewReturnAnalyzerConstructor(), analysis.NewReturnComparatorConstructor(flags.SavePath))

	cmp.AddExperiment(&core.ParallelExperiment{
		Name:        "Random",
		Environment: envConstructor,
		Policy:      &policies.RandomPolicyConstructor{},
	})
	cmp.AddExperiment(&core.ParallelExperiment{
		Name:        "EGreedy",
		Environment: envConstructor,
		Policy:      policies.NewEGreedyPolicyConstructor(0.2, 0.95, 0.05),
	})
	cmp.AddExperiment(&core.ParallelExperiment{
		Name:        "SoftMax",
		Environment: envConstructor,
		Policy:      policies.NewSoftMaxPolicyConstructor(0.3, 0.95, 1),
	})
	return cmp
}
