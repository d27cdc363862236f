package domain

import (
	"errors"
	"time"
)

// ErrNotApplicable is returned when reading the years of an undefined period.
var ErrNotApplicable = errors.New("payback period not applicable")

// Period is a payback duration in years, or NotApplicable when nothing is ever paid back.
type Period struct {
	years   float64
	defined bool
}

// NotApplicable is the zero Period.
var NotApplicable = Period{}

func Years(v float64) Period {
	return Period{years: v, defined: true}
}

func (p Period) Defined() bool {
	return p.defined
}

// Years returns the period length or ErrNotApplicable.
func (p Period) Years() (float64, error) {
	if !p.defined {
		return 0, ErrNotApplicable
	}
	return p.years, nil
}

// Ptr returns nil for an undefined period, suitable for nullable columns and JSON.
func (p Period) Ptr() *float64 {
	if !p.defined {
		return nil
	}
	v := p.years
	return &v
}

// PeriodFromPtr is the inverse of Ptr.
func PeriodFromPtr(v *float64) Period {
	if v == nil {
		return NotApplicable
	}
	return Years(*v)
}

type PayoffResult struct {
	Source                SourceID
	Category              Category
	Count                 int
	TotalProductCost      float64
	TotalInstallationCost float64
	TotalMaintenanceCost  float64
	TotalCost             float64
	TotalAnnualEnergy     float64 // kWh
	AnnualSavings         float64
	TotalCarbonEmissions  float64 // metric tons
	AnnualCarbonSavings   float64 // metric tons per year
	PaybackPeriod         Period
	CarbonPaybackPeriod   Period
}

type CategoryEmissions struct {
	Category  Category
	Emissions float64
}

type AggregateReport struct {
	TotalProductCost      float64
	TotalInstallationCost float64
	TotalMaintenanceCost  float64
	GrandTotalCost        float64
	TotalCarbonEmissions  float64
	TotalAnnualEnergy     float64
	TotalAnnualSavings    float64
	TotalCarbonSavings    float64
	PaybackPeriod         Period
	CarbonPaybackPeriod   Period // weighted over sources that save carbon
	CarbonPaybackSum      Period // sum of per-source carbon payback periods
	EmissionsByCategory   []CategoryEmissions
	Results               []PayoffResult
}

// Analysis is an evaluated selection.
type Analysis struct {
	Selection Selection
	Report    AggregateReport
}

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
	CarbonPaybackPeriod Period
	TotalCarbonEmission float64
	CreatedAt           time.Time
}

type EnergyUsage struct {
	ID        string
	UserID    string
	Type      Category
	Emissions float64
	CreatedAt time.Time
}

// SavedAnalysis groups the records written for one save.
type SavedAnalysis struct {
	Cost        []CostAnalysis
	Carbon      []CarbonAnalysis
	EnergyUsage []EnergyUsage
}

type Feedback struct {
	ID        string
	UserID    string
	Rating    int
	Message   string
	CreatedAt time.Time
}
