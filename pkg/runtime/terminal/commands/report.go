package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greensphere/payoff/pkg/adapters"
	"github.com/greensphere/payoff/pkg/models/domain"
	"github.com/greensphere/payoff/pkg/services/payoff"
	"github.com/greensphere/payoff/pkg/services/selection"
)

type ReportCmd struct {
	inline     string
	planPath   string
	building   string
	format     string
	calculator payoff.Calculator
	reporters  map[string]ReportHandler
}

func NewReportCmd(calculator payoff.Calculator, reporters map[string]ReportHandler) *cobra.Command {
	rc := &ReportCmd{calculator: calculator, reporters: reporters}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate cost and carbon payback over a selection of sources",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.inline, "select", "", "Inline selection, e.g. solarPanels=2,heatPump=1")
	cmd.Flags().StringVar(&rc.planPath, "plan", "", "Path to an INI site plan")
	cmd.Flags().StringVar(&rc.building, "building", "", "Building section of the site plan (default: first)")
	cmd.Flags().StringVar(&rc.format, "format", "table", "Output format: table or plain")

	cmd.MarkFlagsMutuallyExclusive("select", "plan")
	cmd.MarkFlagsOneRequired("select", "plan")

	return cmd
}

func (rc *ReportCmd) run(_ *cobra.Command, _ []string) error {
	reporter, err := pickReporter(rc.reporters, rc.format)
	if err != nil {
		return err
	}

	sel, err := rc.selection()
	if err != nil {
		return err
	}

	results, err := rc.calculator.ComputeSelection(sel)
	if err != nil {
		return fmt.Errorf("failed to compute selection: %w", err)
	}

	return reporter.Handle(adapters.MapAggregateReportToReport(payoff.Aggregate(results)))
}

func (rc *ReportCmd) selection() (domain.Selection, error) {
	if rc.inline != "" {
		return selection.Parse(rc.inline)
	}

	plan, err := selection.LoadPlan(rc.planPath)
	if err != nil {
		return nil, err
	}

	building := rc.building
	if building == "" {
		buildings := plan.Buildings()
		if len(buildings) == 0 {
			return nil, fmt.Errorf("site plan %s has no buildings", rc.planPath)
		}
		building = buildings[0]
	}
	return plan.Selection(building)
}
