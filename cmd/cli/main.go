package main

import (
	"fmt"
	"os"

	"github.com/greensphere/payoff/pkg/runtime/terminal"
	"github.com/greensphere/payoff/pkg/services/payoff"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Calculator: payoff.NewCalculator(),
		Output:     os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
