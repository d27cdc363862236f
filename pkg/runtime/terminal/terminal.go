package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/greensphere/payoff/pkg/runtime/terminal/commands"
	"github.com/greensphere/payoff/pkg/runtime/terminal/export"
	"github.com/greensphere/payoff/pkg/services/payoff"
)

// CLI represents the command-line interface
type CLI struct {
	calculator payoff.Calculator
	reporters  map[string]commands.ReportHandler
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Calculator payoff.Calculator
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Calculator == nil {
		opts.Calculator = payoff.NewCalculator()
	}

	cli := &CLI{
		calculator: opts.Calculator,
		reporters: map[string]commands.ReportHandler{
			"table": export.NewReporter(opts.Output),
			"plain": NewReporter(opts.Output),
		},
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args, used by tests
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "payoff",
		Short:         "Renewable energy cost and carbon payback calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(commands.NewSourcesCmd(cli.calculator))
	cmd.AddCommand(commands.NewComputeCmd(cli.calculator, cli.reporters))
	cmd.AddCommand(commands.NewReportCmd(cli.calculator, cli.reporters))

	return cmd
}
