package payoff

import "github.com/greensphere/payoff/pkg/models/domain"

// Aggregate sums per-source results into a report. Sources without savings count towards
// cost and emission totals but not towards the payback figures.
func Aggregate(results []domain.PayoffResult) domain.AggregateReport {
	report := domain.AggregateReport{
		Results: append([]domain.PayoffResult(nil), results...),
	}

	var (
		paybackCost      float64
		paybackSavings   float64
		carbonEmissions  float64
		carbonSum        float64
		carbonSumDefined bool
	)
	emissions := make(map[domain.Category]float64)

	for _, r := range results {
		report.TotalProductCost += r.TotalProductCost
		report.TotalInstallationCost += r.TotalInstallationCost
		report.TotalMaintenanceCost += r.TotalMaintenanceCost
		report.TotalCarbonEmissions += r.TotalCarbonEmissions
		report.TotalAnnualEnergy += r.TotalAnnualEnergy
		report.TotalAnnualSavings += r.AnnualSavings
		emissions[r.Category] += r.TotalCarbonEmissions

		if r.PaybackPeriod.Defined() {
			paybackCost += r.TotalCost
			paybackSavings += r.AnnualSavings
		}
		if years, err := r.CarbonPaybackPeriod.Years(); err == nil {
			carbonEmissions += r.TotalCarbonEmissions
			report.TotalCarbonSavings += r.AnnualCarbonSavings
			carbonSum += years
			carbonSumDefined = true
		}
	}

	report.GrandTotalCost = report.TotalProductCost + report.TotalInstallationCost + report.TotalMaintenanceCost
	report.PaybackPeriod = ratio(paybackCost, paybackSavings)
	report.CarbonPaybackPeriod = ratio(carbonEmissions, report.TotalCarbonSavings)
	if carbonSumDefined {
		report.CarbonPaybackSum = domain.Years(carbonSum)
	}

	for _, c := range domain.Categories() {
		if v := emissions[c]; v != 0 {
			report.EmissionsByCategory = append(report.EmissionsByCategory, domain.CategoryEmissions{
				Category:  c,
				Emissions: v,
			})
		}
	}

	return report
}
