package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/spf13/cobra"
	"github.com/zeu5/nchain-rl-testing/benchmarks/nchain"
	"github.com/zeu5/nchain-rl-testing/chain"
	"github.com/zeu5/nchain-rl-testing/core"
	"github.com/zeu5/nchain-rl-testing/util"
)

func NChainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nchain",
		Short: "Run NChain benchmarks",
	}

	cmd.AddCommand(
		nchainRunCommand(),
		nchainSolveCommand(),
	)

	return cmd
}

func nchainRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compare exploration policies on the chain",
		Run: func(cmd *cobra.Command, args []string) {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt) // channel for interrupts from os

			doneCh := make(chan struct{}) // channel for done signal from application

			ctx, cancel := context.WithCancel(context.Background())
			go func() { // start a go-routine
				select { // can wait on multiple channels
				case <-sigCh:
				case <-doneCh:
				}
				cancel()
			}()

			cmp := nchain.PrepareComparison(flags)
			cmp.Run(ctx, flags.NumRuns, &core.RunConfig{
				Episodes:                     flags.Episodes,
				Horizon:                      flags.Horizon,
				ThresholdConsecutiveErrors:   flags.MaxConsecutiveErrors,
				ThresholdConsecutiveTimeouts: flags.MaxConsecutiveTimeouts,
				EpisodeTimeout:               flags.EpisodeTimeout,
			}, flags.Parallelism)
			close(doneCh)
		},
	}

	return cmd
}

func nchainSolveCommand() *cobra.Command {
	var discount float64
	var tolerance float64
	var maxSweeps int

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the chain model exactly with value iteration",
		Run: func(cmd *cobra.Command, args []string) {
			model := chain.NewModel(flags.ChainConfig())
			sol := chain.SolveValueIteration(model, discount, tolerance, maxSweeps)

			actionNames := []string{"Forward", "Backward"}
			fmt.Printf("Converged after %d sweeps\n", sol.Sweeps)
			for s := 0; s < model.NumStates(); s++ {
				fmt.Printf("state %d: value %.4f, greedy action %s\n", s, sol.Values[s], actionNames[sol.Policy[s]])
			}

			util.SaveJson(path.Join(flags.SavePath, "solution.json"), sol)
		},
	}
	cmd.PersistentFlags().Float64Var(&discount, "discount", 0.95, "Discount factor")
	cmd.PersistentFlags().Float64Var(&tolerance, "tolerance", 1e-9, "Convergence threshold on the value sup-norm")
	cmd.PersistentFlags().IntVar(&maxSweeps, "max-sweeps", 10000, "Maximum number of sweeps")

	return cmd
}
