package adapters

import (
	"github.com/greensphere/payoff/pkg/models/api"
	"github.com/greensphere/payoff/pkg/models/domain"
)

func MapProfileDomainToApi(p domain.EnergySourceProfile) api.SourceProfile {
	return api.SourceProfile{
		ID:               string(p.ID),
		Category:         p.Category.String(),
		ProductCost:      p.ProductCost,
		Installation:     p.Installation,
		Maintenance:      p.Maintenance,
		CarbonEmissions:  p.CarbonEmissions,
		EnergyProduction: p.EnergyProduction,
		ElectricityCost:  p.ElectricityCost,
	}
}

func MapPayoffResultDomainToApi(r domain.PayoffResult) api.PayoffResult {
	return api.PayoffResult{
		Source:                string(r.Source),
		Category:              r.Category.String(),
		Count:                 r.Count,
		TotalProductCost:      r.TotalProductCost,
		TotalInstallationCost: r.TotalInstallationCost,
		TotalMaintenanceCost:  r.TotalMaintenanceCost,
		TotalCost:             r.TotalCost,
		TotalAnnualEnergy:     r.TotalAnnualEnergy,
		AnnualSavings:         r.AnnualSavings,
		TotalCarbonEmissions:  r.TotalCarbonEmissions,
		AnnualCarbonSavings:   r.AnnualCarbonSavings,
		PaybackPeriod:         r.PaybackPeriod.Ptr(),
		CarbonPaybackPeriod:   r.CarbonPaybackPeriod.Ptr(),
	}
}

func MapAggregateReportDomainToApi(r domain.AggregateReport) api.AggregateReport {
	apiReport := api.AggregateReport{
		TotalProductCost:      r.TotalProductCost,
		TotalInstallationCost: r.TotalInstallationCost,
		TotalMaintenanceCost:  r.TotalMaintenanceCost,
		GrandTotalCost:        r.GrandTotalCost,
		TotalCarbonEmissions:  r.TotalCarbonEmissions,
		TotalAnnualEnergy:     r.TotalAnnualEnergy,
		TotalAnnualSavings:    r.TotalAnnualSavings,
		TotalCarbonSavings:    r.TotalCarbonSavings,
		PaybackPeriod:         r.PaybackPeriod.Ptr(),
		CarbonPaybackPeriod:   r.CarbonPaybackPeriod.Ptr(),
		CarbonPaybackSum:      r.CarbonPaybackSum.Ptr(),
		EmissionsByCategory:   []api.CategoryEmissions{},
		Results:               []api.PayoffResult{},
	}

	for _, e := range r.EmissionsByCategory {
		apiReport.EmissionsByCategory = append(apiReport.EmissionsByCategory, api.CategoryEmissions{
			Type:      e.Category.String(),
			Emissions: e.Emissions,
		})
	}
	for _, res := range r.Results {
		apiReport.Results = append(apiReport.Results, MapPayoffResultDomainToApi(res))
	}

	return apiReport
}

func MapSelectionApiToDomain(selection map[string]int) domain.Selection {
	out := make(domain.Selection, len(selection))
	for id, count := range selection {
		out[domain.SourceID(id)] = count
	}
	return out
}
