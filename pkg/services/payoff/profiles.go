package payoff

import "github.com/greensphere/payoff/pkg/models/domain"

// GridCarbonIntensity is the regional grid emission factor in kg CO2 per kWh.
const GridCarbonIntensity = 0.691

// DefaultProfiles is the reference catalog shipped with the simulator, in display order.
func DefaultProfiles() []domain.EnergySourceProfile {
	return []domain.EnergySourceProfile{
		{
			ID:               domain.SolarPanels,
			Category:         domain.CategorySolar,
			ProductCost:      35000,
			Installation:     150000,
			Maintenance:      6500,
			CarbonEmissions:  4.9,
			EnergyProduction: 639,
			ElectricityCost:  12,
		},
		{
			ID:               domain.SolarWaterHeating,
			Category:         domain.CategorySolar,
			ProductCost:      25000,
			Installation:     5000,
			Maintenance:      1500,
			CarbonEmissions:  0.8,
			EnergyProduction: 1500,
			ElectricityCost:  12,
		},
		{
			ID:               domain.SmallWindTurbines,
			Category:         domain.CategoryWind,
			ProductCost:      120000,
			Installation:     30000,
			Maintenance:      5000,
			CarbonEmissions:  2.5,
			EnergyProduction: 2400,
			ElectricityCost:  12,
		},
		{
			ID:               domain.VerticalAxisWindTurbines,
			Category:         domain.CategoryWind,
			ProductCost:      90000,
			Installation:     25000,
			Maintenance:      4000,
			CarbonEmissions:  1.8,
			EnergyProduction: 1500,
			ElectricityCost:  12,
		},
		{
			ID:               domain.MicroHydroPowerSystem,
			Category:         domain.CategoryHydro,
			ProductCost:      250000,
			Installation:     80000,
			Maintenance:      10000,
			CarbonEmissions:  6,
			EnergyProduction: 25000,
			ElectricityCost:  12,
		},
		{
			ID:               domain.PicoHydroPower,
			Category:         domain.CategoryHydro,
			ProductCost:      40000,
			Installation:     10000,
			Maintenance:      2000,
			CarbonEmissions:  0.9,
			EnergyProduction: 4000,
			ElectricityCost:  12,
		},
		{
			ID:               domain.SolarRoofTiles,
			Category:         domain.CategorySolar,
			ProductCost:      60000,
			Installation:     40000,
			Maintenance:      3000,
			CarbonEmissions:  3.2,
			EnergyProduction: 450,
			ElectricityCost:  12,
		},
		{
			ID:               domain.HeatPump,
			Category:         domain.CategoryGeothermal,
			ProductCost:      150000,
			Installation:     50000,
			Maintenance:      5000,
			CarbonEmissions:  3.5,
			EnergyProduction: 3000,
			ElectricityCost:  12,
		},
		{
			// Produces food, not electricity.
			ID:               domain.VerticalFarming,
			Category:         domain.CategoryAgriculture,
			ProductCost:      200000,
			Installation:     60000,
			Maintenance:      15000,
			CarbonEmissions:  2.2,
			EnergyProduction: 0,
			ElectricityCost:  12,
		},
	}
}
