package api

import "time"

type SourceProfile struct {
	ID               string  `json:"id"`
	Category         string  `json:"category"`
	ProductCost      float64 `json:"productCost"`
	Installation     float64 `json:"installation"`
	Maintenance      float64 `json:"maintenance"`
	CarbonEmissions  float64 `json:"carbonEmissions"`
	EnergyProduction float64 `json:"energyProduction"`
	ElectricityCost  float64 `json:"electricityCost"`
}

// PayoffResult uses null for payback periods that are never reached.
type PayoffResult struct {
	Source                string   `json:"source"`
	Category              string   `json:"category"`
	Count                 int      `json:"count"`
	TotalProductCost      float64  `json:"totalProductCost"`
	TotalInstallationCost float64  `json:"totalInstallationCost"`
	TotalMaintenanceCost  float64  `json:"totalMaintenanceCost"`
	TotalCost             float64  `json:"totalCost"`
	TotalAnnualEnergy     float64  `json:"totalAnnualEnergy"`
	AnnualSavings         float64  `json:"annualSavings"`
	TotalCarbonEmissions  float64  `json:"totalCarbonEmissions"`
	AnnualCarbonSavings   float64  `json:"annualCarbonSavings"`
	PaybackPeriod         *float64 `json:"paybackPeriod"`
	CarbonPaybackPeriod   *float64 `json:"carbonPaybackPeriod"`
}

type CategoryEmissions struct {
	Type      string  `json:"type"`
	Emissions float64 `json:"emissions"`
}

type AggregateReport struct {
	TotalProductCost      float64             `json:"totalProductCost"`
	TotalInstallationCost float64             `json:"totalInstallationCost"`
	TotalMaintenanceCost  float64             `json:"totalMaintenanceCost"`
	GrandTotalCost        float64             `json:"grandTotalCost"`
	TotalCarbonEmissions  float64             `json:"totalCarbonEmissions"`
	TotalAnnualEnergy     float64             `json:"totalAnnualEnergy"`
	TotalAnnualSavings    float64             `json:"totalAnnualSavings"`
	TotalCarbonSavings    float64             `json:"totalCarbonSavings"`
	PaybackPeriod         *float64            `json:"paybackPeriod"`
	CarbonPaybackPeriod   *float64            `json:"carbonPaybackPeriod"`
	CarbonPaybackSum      *float64            `json:"carbonPaybackSum"`
	EmissionsByCategory   []CategoryEmissions `json:"emissionsByCategory"`
	Results               []PayoffResult      `json:"results"`
}

type SelectionRequest struct {
	Selection map[string]int `json:"selection"`
}

type CostAnalysis struct {
	UserID                string  `json:"user_id"`
	TotalProductCost      float64 `json:"TotalProductCost"`
	TotalInstallationCost float64 `json:"TotalInstallationCost"`
	TotalMaintenanceCost  float64 `json:"TotalMaintenanceCost"`
	GrandTotal            float64 `json:"GrandTotal"`
}

type CarbonPaybackPeriodAnalysis struct {
	UserID              string   `json:"user_id"`
	CarbonPaybackPeriod *float64 `json:"CarbonPaybackPeriod"`
	TotalCarbonEmission float64  `json:"TotalCarbonEmission"`
}

type EnergyUsageBySource struct {
	UserID    string  `json:"user_id"`
	Type      string  `json:"Type"`
	Emissions float64 `json:"Emissions"`
}

type SavedAnalysis struct {
	CostAnalyses   []CostAnalysis                `json:"costAnalyses"`
	CarbonAnalyses []CarbonPaybackPeriodAnalysis `json:"carbonAnalyses"`
	EnergyUsage    []EnergyUsageBySource         `json:"energyUsage"`
}

type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
