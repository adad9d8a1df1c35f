package main

import (
	"fmt"

	"github.com/zeu5/nchain-rl-testing/benchmarks/cmd"
)

// main entry point to all the benchmarks
func main() {
	rootCommand := cmd.RootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
