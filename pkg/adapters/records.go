package adapters

import (
	"github.com/greensphere/payoff/pkg/models/api"
	"github.com/greensphere/payoff/pkg/models/domain"
	"github.com/greensphere/payoff/pkg/models/store"
)

// MapAggregateReportToRecords builds the records persisted when a user saves an analysis.
// Energy usage gets one entry per category with non-zero emissions.
func MapAggregateReportToRecords(userID string, r domain.AggregateReport) domain.SavedAnalysis {
	saved := domain.SavedAnalysis{
		Cost: []domain.CostAnalysis{{
			UserID:                userID,
			TotalProductCost:      r.TotalProductCost,
			TotalInstallationCost: r.TotalInstallationCost,
			TotalMaintenanceCost:  r.TotalMaintenanceCost,
			GrandTotal:            r.GrandTotalCost,
		}},
		Carbon: []domain.CarbonAnalysis{{
			UserID:              userID,
			CarbonPaybackPeriod: r.CarbonPaybackPeriod,
			TotalCarbonEmission: r.TotalCarbonEmissions,
		}},
	}

	for _, e := range r.EmissionsByCategory {
		saved.EnergyUsage = append(saved.EnergyUsage, domain.EnergyUsage{
			UserID:    userID,
			Type:      e.Category,
			Emissions: e.Emissions,
		})
	}

	return saved
}

func MapCostAnalysisDomainToStore(c domain.CostAnalysis) store.CostAnalysis {
	return store.CostAnalysis{
		ID:                    c.ID,
		UserID:                c.UserID,
		TotalProductCost:      c.TotalProductCost,
		TotalInstallationCost: c.TotalInstallationCost,
		TotalMaintenanceCost:  c.TotalMaintenanceCost,
		GrandTotal:            c.GrandTotal,
		CreatedAt:             c.CreatedAt,
	}
}

func MapCostAnalysisStoreToDomain(c store.CostAnalysis) domain.CostAnalysis {
	return domain.CostAnalysis{
		ID:                    c.ID,
		UserID:                c.UserID,
		TotalProductCost:      c.TotalProductCost,
		TotalInstallationCost: c.TotalInstallationCost,
		TotalMaintenanceCost:  c.TotalMaintenanceCost,
		GrandTotal:            c.GrandTotal,
		CreatedAt:             c.CreatedAt,
	}
}

func MapCarbonAnalysisDomainToStore(c domain.CarbonAnalysis) store.CarbonAnalysis {
	return store.CarbonAnalysis{
		ID:                  c.ID,
		UserID:              c.UserID,
		CarbonPaybackPeriod: c.CarbonPaybackPeriod.Ptr(),
		TotalCarbonEmission: c.TotalCarbonEmission,
		CreatedAt:           c.CreatedAt,
	}
}

func MapCarbonAnalysisStoreToDomain(c store.CarbonAnalysis) domain.CarbonAnalysis {
	return domain.CarbonAnalysis{
		ID:                  c.ID,
		UserID:              c.UserID,
		CarbonPaybackPeriod: domain.PeriodFromPtr(c.CarbonPaybackPeriod),
		TotalCarbonEmission: c.TotalCarbonEmission,
		CreatedAt:           c.CreatedAt,
	}
}

func MapEnergyUsageDomainToStore(e domain.EnergyUsage) store.EnergyUsage {
	return store.EnergyUsage{
		ID:        e.ID,
		UserID:    e.UserID,
		Type:      e.Type.String(),
		Emissions: e.Emissions,
		CreatedAt: e.CreatedAt,
	}
}

func MapEnergyUsageStoreToDomain(e store.EnergyUsage) domain.EnergyUsage {
	category, _ := domain.ParseCategory(e.Type)
	return domain.EnergyUsage{
		ID:        e.ID,
		UserID:    e.UserID,
		Type:      category,
		Emissions: e.Emissions,
		CreatedAt: e.CreatedAt,
	}
}

func MapSavedAnalysisDomainToApi(s domain.SavedAnalysis) api.SavedAnalysis {
	out := api.SavedAnalysis{
		CostAnalyses:   []api.CostAnalysis{},
		CarbonAnalyses: []api.CarbonPaybackPeriodAnalysis{},
		EnergyUsage:    []api.EnergyUsageBySource{},
	}

	for _, c := range s.Cost {
		out.CostAnalyses = append(out.CostAnalyses, api.CostAnalysis{
			UserID:                c.UserID,
			TotalProductCost:      c.TotalProductCost,
			TotalInstallationCost: c.TotalInstallationCost,
			TotalMaintenanceCost:  c.TotalMaintenanceCost,
			GrandTotal:            c.GrandTotal,
		})
	}
	for _, c := range s.Carbon {
		out.CarbonAnalyses = append(out.CarbonAnalyses, api.CarbonPaybackPeriodAnalysis{
			UserID:              c.UserID,
			CarbonPaybackPeriod: c.CarbonPaybackPeriod.Ptr(),
			TotalCarbonEmission: c.TotalCarbonEmission,
		})
	}
	for _, e := range s.EnergyUsage {
		out.EnergyUsage = append(out.EnergyUsage, api.EnergyUsageBySource{
			UserID:    e.UserID,
			Type:      e.Type.String(),
			Emissions: e.Emissions,
		})
	}

	return out
}

func MapSavedAnalysisApiToDomain(s api.SavedAnalysis) domain.SavedAnalysis {
	var out domain.SavedAnalysis

	for _, c := range s.CostAnalyses {
		out.Cost = append(out.Cost, domain.CostAnalysis{
			UserID:                c.UserID,
			TotalProductCost:      c.TotalProductCost,
			TotalInstallationCost: c.TotalInstallationCost,
			TotalMaintenanceCost:  c.TotalMaintenanceCost,
			GrandTotal:            c.GrandTotal,
		})
	}
	for _, c := range s.CarbonAnalyses {
		out.Carbon = append(out.Carbon, domain.CarbonAnalysis{
			UserID:              c.UserID,
			CarbonPaybackPeriod: domain.PeriodFromPtr(c.CarbonPaybackPeriod),
			TotalCarbonEmission: c.TotalCarbonEmission,
		})
	}
	for _, e := range s.EnergyUsage {
		category, _ := domain.ParseCategory(e.Type)
		out.EnergyUsage = append(out.EnergyUsage, domain.EnergyUsage{
			UserID:    e.UserID,
			Type:      category,
			Emissions: e.Emissions,
		})
	}

	return out
}

func MapFeedbackDomainToStore(f domain.Feedback) store.Feedback {
	return store.Feedback{
		ID:        f.ID,
		UserID:    f.UserID,
		Rating:    f.Rating,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
	}
}

func MapFeedbackStoreToDomain(f store.Feedback) domain.Feedback {
	return domain.Feedback{
		ID:        f.ID,
		UserID:    f.UserID,
		Rating:    f.Rating,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
	}
}

func MapFeedbackDomainToApi(f domain.Feedback) api.Feedback {
	return api.Feedback{
		ID:        f.ID,
		UserID:    f.UserID,
		Rating:    f.Rating,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
	}
}
