package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/zeu5/nchain-rl-testing/benchmarks/common"
)

var (
	flags           *common.Flags = common.DefaultFlags()
	savePath        string
	length          int
	slip            float64
	smallReward     float64
	largeReward     float64
	maxEpisodeSteps int
	seed            uint64

	numRuns                int
	episodes               int
	horizon                int
	maxConsecutiveErrors   int
	maxConsecutiveTimeouts int
	episodeTimeout         int
	parallelism            int
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().IntVar(&length, "length", flags.Length, "Number of states in the chain")
	cmd.PersistentFlags().Float64Var(&slip, "slip", flags.Slip, "Probability of executing the opposite action")
	cmd.PersistentFlags().Float64Var(&smallReward, "small-reward", flags.SmallReward, "Reward for the backward action")
	cmd.PersistentFlags().Float64Var(&largeReward, "large-reward", flags.LargeReward, "Reward for forward at the end of the chain")
	cmd.PersistentFlags().IntVar(&maxEpisodeSteps, "max-episode-steps", flags.MaxEpisodeSteps, "Step budget before the environment ends the episode")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Base seed for per-instance environment RNGs")

	cmd.PersistentFlags().IntVar(&numRuns, "num-runs", flags.NumRuns, "Number of runs")
	cmd.PersistentFlags().IntVar(&episodes, "episodes", flags.Episodes, "Number of episodes")
	cmd.PersistentFlags().IntVar(&horizon, "horizon", flags.Horizon, "Horizon")
	cmd.PersistentFlags().IntVar(&maxConsecutiveErrors, "max-consecutive-errors", flags.MaxConsecutiveErrors, "Maximum number of consecutive errors")
	cmd.PersistentFlags().IntVar(&maxConsecutiveTimeouts, "max-consecutive-timeouts", flags.MaxConsecutiveTimeouts, "Maximum number of consecutive timeouts")
	cmd.PersistentFlags().IntVar(&episodeTimeout, "episode-timeout", int(flags.EpisodeTimeout.Seconds()), "Episode timeout")
	cmd.PersistentFlags().IntVar(&parallelism, "parallelism", flags.Parallelism, "Number of parallel workers")
}

func UpdateFlags() {
	flags.SavePath = savePath
	flags.Length = length
	flags.Slip = slip
	flags.SmallReward = smallReward
	flags.LargeReward = largeReward
	flags.MaxEpisodeSteps = maxEpisodeSteps
	flags.Seed = seed

	flags.NumRuns = numRuns
	flags.Episodes = episodes
	flags.Horizon = horizon
	flags.MaxConsecutiveErrors = maxConsecutiveErrors
	flags.MaxConsecutiveTimeouts = maxConsecutiveTimeouts
	flags.EpisodeTimeout = time.Duration(episodeTimeout) * time.Second
	flags.Parallelism = parallelism
}
