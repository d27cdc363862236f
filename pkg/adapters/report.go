package adapters

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/greensphere/payoff/pkg/models/domain"
)

const (
	Currency      = "INR"
	notApplicable = "n/a"
)

// FormatAmount renders a money amount with two decimal places.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatPeriod renders a payback period in years.
func FormatPeriod(p domain.Period) string {
	years, err := p.Years()
	if err != nil {
		return notApplicable
	}
	return decimal.NewFromFloat(years).StringFixed(2)
}

func MapPayoffResultToReport(r domain.PayoffResult) *domain.Report {
	return &domain.Report{
		Title:       fmt.Sprintf("Payoff for %d x %s", r.Count, r.Source),
		Currency:    Currency,
		TotalAmount: FormatAmount(r.TotalCost),
		Sections:    []domain.ReportSection{resultSection(r)},
	}
}

func MapAggregateReportToReport(r domain.AggregateReport) *domain.Report {
	report := &domain.Report{
		Title:       "Techno-economic analysis",
		Currency:    Currency,
		TotalAmount: FormatAmount(r.GrandTotalCost),
	}

	report.Sections = append(report.Sections, domain.ReportSection{
		Title: "Totals",
		Summary: map[string]interface{}{
			"Sources": len(r.Results),
		},
		Details: []domain.ReportDetail{
			{Name: "Product cost", Value: FormatAmount(r.TotalProductCost), Unit: Currency},
			{Name: "Installation cost", Value: FormatAmount(r.TotalInstallationCost), Unit: Currency},
			{Name: "Maintenance cost", Value: FormatAmount(r.TotalMaintenanceCost), Unit: Currency},
			{Name: "Grand total", Value: FormatAmount(r.GrandTotalCost), Unit: Currency},
			{Name: "Annual savings", Value: FormatAmount(r.TotalAnnualSavings), Unit: Currency},
			{Name: "Payback period", Value: FormatPeriod(r.PaybackPeriod), Unit: "years"},
			{Name: "Carbon emissions", Value: r.TotalCarbonEmissions, Unit: "t CO2"},
			{
				Name:        "Carbon payback period",
				Value:       FormatPeriod(r.CarbonPaybackPeriod),
				Unit:        "years",
				Description: "emissions / annual carbon savings",
			},
			{
				Name:        "Carbon payback (summed)",
				Value:       FormatPeriod(r.CarbonPaybackSum),
				Unit:        "years",
				Description: "sum of per-source carbon payback",
			},
		},
	})

	if len(r.EmissionsByCategory) > 0 {
		section := domain.ReportSection{Title: "Emissions by category"}
		for _, e := range r.EmissionsByCategory {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:  e.Category.String(),
				Value: e.Emissions,
				Unit:  "t CO2",
			})
		}
		report.Sections = append(report.Sections, section)
	}

	for _, res := range r.Results {
		report.Sections = append(report.Sections, resultSection(res))
	}

	return report
}

func resultSection(r domain.PayoffResult) domain.ReportSection {
	return domain.ReportSection{
		Title: string(r.Source),
		Summary: map[string]interface{}{
			"Category": r.Category.String(),
			"Units":    r.Count,
		},
		Details: []domain.ReportDetail{
			{Name: "Product cost", Value: FormatAmount(r.TotalProductCost), Unit: Currency},
			{Name: "Installation cost", Value: FormatAmount(r.TotalInstallationCost), Unit: Currency},
			{Name: "Maintenance cost", Value: FormatAmount(r.TotalMaintenanceCost), Unit: Currency},
			{Name: "Total cost", Value: FormatAmount(r.TotalCost), Unit: Currency},
			{Name: "Annual energy", Value: r.TotalAnnualEnergy, Unit: "kWh"},
			{Name: "Annual savings", Value: FormatAmount(r.AnnualSavings), Unit: Currency},
			{Name: "Payback period", Value: FormatPeriod(r.PaybackPeriod), Unit: "years"},
			{Name: "Carbon emissions", Value: r.TotalCarbonEmissions, Unit: "t CO2"},
			{Name: "Carbon payback period", Value: FormatPeriod(r.CarbonPaybackPeriod), Unit: "years"},
		},
	}
}
