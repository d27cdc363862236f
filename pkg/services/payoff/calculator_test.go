package payoff

import (
	"testing"

	"github.com/greensphere/payoff/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Compute_SolarPanels(t *testing.T) {
	calc := NewCalculator()

	res, err := calc.Compute(domain.SolarPanels, 2)
	require.NoError(t, err)

	assert.Equal(t, 70000.0, res.TotalProductCost)
	assert.Equal(t, 300000.0, res.TotalInstallationCost)
	assert.Equal(t, 13000.0, res.TotalMaintenanceCost)
	assert.Equal(t, 383000.0, res.TotalCost)
	assert.Equal(t, 1278.0, res.TotalAnnualEnergy)
	assert.Equal(t, 15336.0, res.AnnualSavings)
	assert.InDelta(t, 9.8, res.TotalCarbonEmissions, 1e-9)
	assert.InDelta(t, 0.883098, res.AnnualCarbonSavings, 1e-9)

	payback, err := res.PaybackPeriod.Years()
	require.NoError(t, err)
	assert.Equal(t, 383000.0/15336.0, payback)
	assert.InDelta(t, 24.97, payback, 0.01)

	carbon, err := res.CarbonPaybackPeriod.Years()
	require.NoError(t, err)
	assert.InDelta(t, 11.10, carbon, 0.01)
}

func TestCalculator_Compute_VerticalFarming(t *testing.T) {
	calc := NewCalculator()

	res, err := calc.Compute(domain.VerticalFarming, 1)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.AnnualSavings)
	assert.Equal(t, 0.0, res.AnnualCarbonSavings)
	assert.InDelta(t, 2.2, res.TotalCarbonEmissions, 1e-9)
	assert.False(t, res.PaybackPeriod.Defined())
	assert.False(t, res.CarbonPaybackPeriod.Defined())

	_, err = res.CarbonPaybackPeriod.Years()
	assert.ErrorIs(t, err, domain.ErrNotApplicable)
}

func TestCalculator_Compute_ZeroCount(t *testing.T) {
	calc := NewCalculator()

	for _, p := range calc.Profiles() {
		t.Run(string(p.ID), func(t *testing.T) {
			res, err := calc.Compute(p.ID, 0)
			require.NoError(t, err)
			assert.Equal(t, 0.0, res.TotalCost)
			assert.Equal(t, 0.0, res.TotalCarbonEmissions)
			assert.False(t, res.PaybackPeriod.Defined())
			assert.False(t, res.CarbonPaybackPeriod.Defined())
		})
	}
}

func TestCalculator_Compute_CostInvariants(t *testing.T) {
	calc := NewCalculator()

	for _, p := range calc.Profiles() {
		unit := p.ProductCost + p.Installation + p.Maintenance
		prev, err := calc.Compute(p.ID, 0)
		require.NoError(t, err)

		for n := 1; n <= 25; n++ {
			res, err := calc.Compute(p.ID, n)
			require.NoError(t, err)

			assert.Equal(t, res.TotalProductCost+res.TotalInstallationCost+res.TotalMaintenanceCost, res.TotalCost)
			assert.Equal(t, p.EnergyProduction*float64(n)*p.ElectricityCost, res.AnnualSavings)
			assert.GreaterOrEqual(t, res.TotalCost, prev.TotalCost)
			assert.Equal(t, unit, res.TotalCost-prev.TotalCost, "%s n=%d", p.ID, n)
			prev = res
		}
	}
}

func TestCalculator_Compute_Errors(t *testing.T) {
	calc := NewCalculator()

	t.Run("unknown source", func(t *testing.T) {
		_, err := calc.Compute("windmill", 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownSource)

		var unknown *UnknownSourceError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, domain.SourceID("windmill"), unknown.ID)
	})

	t.Run("negative count", func(t *testing.T) {
		_, err := calc.Compute(domain.HeatPump, -1)
		assert.ErrorIs(t, err, ErrNegativeCount)
	})
}

func TestCalculator_ComputeSelection(t *testing.T) {
	calc := NewCalculator()

	t.Run("catalog order", func(t *testing.T) {
		results, err := calc.ComputeSelection(domain.Selection{
			domain.HeatPump:    1,
			domain.SolarPanels: 1,
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, domain.SolarPanels, results[0].Source)
		assert.Equal(t, domain.HeatPump, results[1].Source)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := calc.ComputeSelection(domain.Selection{"tidal": 1})
		assert.ErrorIs(t, err, ErrUnknownSource)
	})
}

func TestNewCalculatorWithProfiles(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		p := domain.EnergySourceProfile{ID: domain.HeatPump}
		_, err := NewCalculatorWithProfiles(p, p)
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewCalculatorWithProfiles()
		assert.Error(t, err)
	})

	t.Run("profiles are copies", func(t *testing.T) {
		calc := NewCalculator()
		profiles := calc.Profiles()
		profiles[0].ProductCost = 1

		p, err := calc.Profile(domain.SolarPanels)
		require.NoError(t, err)
		assert.Equal(t, 35000.0, p.ProductCost)
	})
}

func TestDefaultProfiles(t *testing.T) {
	profiles := DefaultProfiles()
	require.Len(t, profiles, 9)

	seen := map[domain.SourceID]bool{}
	for _, p := range profiles {
		assert.False(t, seen[p.ID], "duplicate %s", p.ID)
		seen[p.ID] = true
		assert.NotEqual(t, "Unknown", p.Category.String())
	}
}
