package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greensphere/payoff/pkg/adapters"
	"github.com/greensphere/payoff/pkg/services/payoff"
)

type SourcesCmd struct {
	calculator payoff.Calculator
}

func NewSourcesCmd(calculator payoff.Calculator) *cobra.Command {
	sc := &SourcesCmd{calculator: calculator}
	return &cobra.Command{
		Use:   "sources",
		Short: "List supported energy sources",
		RunE:  sc.run,
	}
}

func (sc *SourcesCmd) run(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, p := range sc.calculator.Profiles() {
		fmt.Fprintf(out, "%-26s %-18s unit cost %s %s\n",
			p.ID,
			p.Category,
			adapters.Currency,
			adapters.FormatAmount(p.ProductCost+p.Installation+p.Maintenance))
	}
	return nil
}
