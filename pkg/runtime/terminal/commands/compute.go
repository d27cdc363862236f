package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greensphere/payoff/pkg/adapters"
	"github.com/greensphere/payoff/pkg/models/domain"
	"github.com/greensphere/payoff/pkg/services/payoff"
)

type ComputeCmd struct {
	source     string
	count      int
	format     string
	calculator payoff.Calculator
	reporters  map[string]ReportHandler
}

func NewComputeCmd(calculator payoff.Calculator, reporters map[string]ReportHandler) *cobra.Command {
	cc := &ComputeCmd{calculator: calculator, reporters: reporters}
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the payoff of a single energy source",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.source, "source", "", "Energy source id (see 'payoff sources')")
	cmd.Flags().IntVar(&cc.count, "count", 1, "Number of installed units")
	cmd.Flags().StringVar(&cc.format, "format", "table", "Output format: table or plain")

	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func (cc *ComputeCmd) run(_ *cobra.Command, _ []string) error {
	reporter, err := pickReporter(cc.reporters, cc.format)
	if err != nil {
		return err
	}

	res, err := cc.calculator.Compute(domain.SourceID(cc.source), cc.count)
	if err != nil {
		return fmt.Errorf("failed to compute payoff: %w", err)
	}

	return reporter.Handle(adapters.MapPayoffResultToReport(res))
}
