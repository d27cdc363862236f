package analysis

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/greensphere/payoff/pkg/models/domain"
	"github.com/greensphere/payoff/pkg/services/payoff"
	"github.com/greensphere/payoff/pkg/store/duckdb"
	analysisstore "github.com/greensphere/payoff/pkg/store/duckdb/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) Service {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := analysisstore.NewStore(db)
	require.NoError(t, err)

	return NewService(db, payoff.NewCalculator(), store)
}

func TestService_Evaluate(t *testing.T) {
	svc := setupService(t)

	analysis, err := svc.Evaluate(context.Background(), domain.Selection{
		domain.SolarPanels: 1,
		domain.HeatPump:    1,
	})
	require.NoError(t, err)

	solar, err := svc.Compute(context.Background(), domain.SolarPanels, 1)
	require.NoError(t, err)
	heat, err := svc.Compute(context.Background(), domain.HeatPump, 1)
	require.NoError(t, err)

	assert.Equal(t, solar.TotalCost+heat.TotalCost, analysis.Report.GrandTotalCost)
}

func TestService_Evaluate_UnknownSource(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Evaluate(context.Background(), domain.Selection{"coal": 1})
	assert.ErrorIs(t, err, payoff.ErrUnknownSource)
}

func TestService_SaveAndList(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, "user-1", domain.Selection{
		domain.SolarPanels:     2,
		domain.VerticalFarming: 1,
	})
	require.NoError(t, err)
	require.Len(t, saved.Cost, 1)
	require.Len(t, saved.Carbon, 1)
	require.Len(t, saved.EnergyUsage, 2)
	assert.NotEmpty(t, saved.Cost[0].ID)

	listed, err := svc.ListSaved(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, listed.Cost, 1)
	assert.Equal(t, saved.Cost[0].GrandTotal, listed.Cost[0].GrandTotal)
	require.Len(t, listed.Carbon, 1)
	assert.Equal(t, saved.Carbon[0].CarbonPaybackPeriod, listed.Carbon[0].CarbonPaybackPeriod)
	assert.Len(t, listed.EnergyUsage, 2)

	other, err := svc.ListSaved(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other.Cost)
}

func TestService_Save_Validation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, "", domain.Selection{domain.SolarPanels: 1})
	assert.ErrorIs(t, err, ErrMissingUser)

	_, err = svc.Save(ctx, "user-1", domain.Selection{domain.SolarPanels: 0})
	assert.ErrorIs(t, err, ErrEmptySelection)

	_, err = svc.Save(ctx, "user-1", domain.Selection{domain.SolarPanels: 1, domain.HeatPump: -2})
	assert.ErrorIs(t, err, payoff.ErrNegativeCount)
}

func TestService_Save_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cost_analyses")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO carbon_analyses")).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	store, err := analysisstore.NewStore(db)
	require.NoError(t, err)
	svc := NewService(db, payoff.NewCalculator(), store)

	_, err = svc.Save(context.Background(), "user-1", domain.Selection{domain.SolarPanels: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert carbon analysis")

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
