package domain

// SourceID identifies a renewable-energy source in the profile catalog.
type SourceID string

const (
	SolarPanels              SourceID = "solarPanels"
	SolarWaterHeating        SourceID = "solarWaterHeating"
	SmallWindTurbines        SourceID = "smallWindTurbines"
	VerticalAxisWindTurbines SourceID = "verticalAxisWindTurbines"
	MicroHydroPowerSystem    SourceID = "microHydroPowerSystem"
	PicoHydroPower           SourceID = "picoHydroPower"
	SolarRoofTiles           SourceID = "solarRoofTiles"
	HeatPump                 SourceID = "heatPump"
	VerticalFarming          SourceID = "verticalFarming"
)

// Category groups sources for the emissions breakdown.
type Category int

const (
	CategorySolar Category = iota + 1
	CategoryWind
	CategoryHydro
	CategoryGeothermal
	CategoryAgriculture
)

var categoryLabels = map[Category]string{
	CategorySolar:       "Solar Energy",
	CategoryWind:        "Wind Energy",
	CategoryHydro:       "Hydro Energy",
	CategoryGeothermal:  "Geothermal Energy",
	CategoryAgriculture: "Vertical Farming",
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategorySolar,
		CategoryWind,
		CategoryHydro,
		CategoryGeothermal,
		CategoryAgriculture,
	}
}

func (c Category) String() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Unknown"
}

// ParseCategory maps a label back to its category.
func ParseCategory(label string) (Category, bool) {
	for c, l := range categoryLabels {
		if l == label {
			return c, true
		}
	}
	return 0, false
}

// EnergySourceProfile holds the per-unit reference data of a source.
type EnergySourceProfile struct {
	ID               SourceID
	Category         Category
	ProductCost      float64 // per unit
	Installation     float64 // per unit
	Maintenance      float64 // per unit, annual
	CarbonEmissions  float64 // metric tons embodied per unit
	EnergyProduction float64 // kWh per unit per year
	ElectricityCost  float64 // local price per kWh
}

// Selection maps a source to the number of placed units.
type Selection map[SourceID]int
