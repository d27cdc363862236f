package payoff

import (
	"fmt"

	"github.com/greensphere/payoff/pkg/models/domain"
)

// Calculator computes the techno-economic payoff of installing units of a source
type Calculator interface {
	// Compute returns the payoff of count units of the given source
	Compute(id domain.SourceID, count int) (domain.PayoffResult, error)
	// ComputeSelection computes every entry of the selection in catalog order
	ComputeSelection(selection domain.Selection) ([]domain.PayoffResult, error)
	// Profiles returns a copy of the catalog in display order
	Profiles() []domain.EnergySourceProfile
	// Profile looks up a single source
	Profile(id domain.SourceID) (domain.EnergySourceProfile, error)
}

type calculator struct {
	order    []domain.SourceID
	profiles map[domain.SourceID]domain.EnergySourceProfile
}

// NewCalculator creates a calculator over the default catalog
func NewCalculator() Calculator {
	c, err := NewCalculatorWithProfiles(DefaultProfiles()...)
	if err != nil {
		panic(err)
	}
	return c
}

func NewCalculatorWithProfiles(profiles ...domain.EnergySourceProfile) (Calculator, error) {
	c := &calculator{profiles: make(map[domain.SourceID]domain.EnergySourceProfile)}

	for _, p := range profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("profile id cannot be empty")
		}
		if _, exists := c.profiles[p.ID]; exists {
			return nil, fmt.Errorf("duplicate profile for source: %s", p.ID)
		}
		c.profiles[p.ID] = p
		c.order = append(c.order, p.ID)
	}

	if len(c.profiles) == 0 {
		return nil, fmt.Errorf("at least one profile must be provided")
	}

	return c, nil
}

func (c *calculator) Profiles() []domain.EnergySourceProfile {
	out := make([]domain.EnergySourceProfile, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.profiles[id])
	}
	return out
}

func (c *calculator) Profile(id domain.SourceID) (domain.EnergySourceProfile, error) {
	p, ok := c.profiles[id]
	if !ok {
		return domain.EnergySourceProfile{}, &UnknownSourceError{ID: id}
	}
	return p, nil
}

func (c *calculator) Compute(id domain.SourceID, count int) (domain.PayoffResult, error) {
	profile, err := c.Profile(id)
	if err != nil {
		return domain.PayoffResult{}, err
	}
	if count < 0 {
		return domain.PayoffResult{}, fmt.Errorf("%s: %w", id, ErrNegativeCount)
	}
	return compute(profile, count), nil
}

func (c *calculator) ComputeSelection(selection domain.Selection) ([]domain.PayoffResult, error) {
	for id := range selection {
		if _, ok := c.profiles[id]; !ok {
			return nil, &UnknownSourceError{ID: id}
		}
	}

	results := make([]domain.PayoffResult, 0, len(selection))
	for _, id := range c.order {
		count, ok := selection[id]
		if !ok {
			continue
		}
		res, err := c.Compute(id, count)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func compute(p domain.EnergySourceProfile, count int) domain.PayoffResult {
	n := float64(count)

	totalProductCost := p.ProductCost * n
	totalInstallationCost := p.Installation * n
	totalMaintenanceCost := p.Maintenance * n
	totalCost := totalProductCost + totalInstallationCost + totalMaintenanceCost

	totalAnnualEnergy := p.EnergyProduction * n
	annualSavings := totalAnnualEnergy * p.ElectricityCost

	totalCarbonEmissions := p.CarbonEmissions * n
	annualCarbonSavings := (totalAnnualEnergy * GridCarbonIntensity) / 1000

	return domain.PayoffResult{
		Source:                p.ID,
		Category:              p.Category,
		Count:                 count,
		TotalProductCost:      totalProductCost,
		TotalInstallationCost: totalInstallationCost,
		TotalMaintenanceCost:  totalMaintenanceCost,
		TotalCost:             totalCost,
		TotalAnnualEnergy:     totalAnnualEnergy,
		AnnualSavings:         annualSavings,
		TotalCarbonEmissions:  totalCarbonEmissions,
		AnnualCarbonSavings:   annualCarbonSavings,
		PaybackPeriod:         ratio(totalCost, annualSavings),
		CarbonPaybackPeriod:   ratio(totalCarbonEmissions, annualCarbonSavings),
	}
}

// ratio divides cost by a yearly saving; no saving means the cost is never paid back.
func ratio(cost, perYear float64) domain.Period {
	if perYear <= 0 {
		return domain.NotApplicable
	}
	return domain.Years(cost / perYear)
}
