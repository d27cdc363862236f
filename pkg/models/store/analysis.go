package store

import "time"

type CostAnalysis struct {
	ID                    string
	UserID                string
	TotalProductCost      float64
	TotalInstallationCost float64
	TotalMaintenanceCost  float64
	GrandTotal            float64
	CreatedAt             time.Time
}

type CarbonAnalysis struct {
	ID                  string
	UserID              string
	CarbonPaybackPeriod *float64 // NULL when not applicable
	TotalCarbonEmission float64
	CreatedAt           time.Time
}

type EnergyUsage struct {
	ID        string
	UserID    string
	Type      string
	Emissions float64
	CreatedAt time.Time
}

type Feedback struct {
	ID        string
	UserID    string
	Rating    int
	Message   string
	CreatedAt time.Time
}
