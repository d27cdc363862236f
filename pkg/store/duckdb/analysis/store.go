package analysis

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/greensphere/payoff/pkg/models/store"
	"github.com/greensphere/payoff/pkg/store/duckdb"
)

// Store persists saved analyses keyed by user id.
// Create* calls join the transaction bound to ctx via duckdb.WithTransaction, if any.
type Store interface {
	CreateCostAnalysis(ctx context.Context, record store.CostAnalysis) (store.CostAnalysis, error)
	CreateCarbonAnalysis(ctx context.Context, record store.CarbonAnalysis) (store.CarbonAnalysis, error)
	CreateEnergyUsageEntry(ctx context.Context, record store.EnergyUsage) (store.EnergyUsage, error)
	ListCostAnalyses(ctx context.Context, userID string) ([]store.CostAnalysis, error)
	ListCarbonAnalyses(ctx context.Context, userID string) ([]store.CarbonAnalysis, error)
	ListEnergyUsage(ctx context.Context, userID string) ([]store.EnergyUsage, error)
}

type analysisStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &analysisStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}, nil
}

func (s *analysisStore) stamp(userID string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, fmt.Errorf("user id is required")
	}
	return uuid.NewString(), s.now(), nil
}

func (s *analysisStore) CreateCostAnalysis(ctx context.Context, record store.CostAnalysis) (store.CostAnalysis, error) {
	id, createdAt, err := s.stamp(record.UserID)
	if err != nil {
		return store.CostAnalysis{}, err
	}
	record.ID, record.CreatedAt = id, createdAt

	_, err = duckdb.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO cost_analyses (
			id, user_id, total_product_cost, total_installation_cost,
			total_maintenance_cost, grand_total, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.UserID,
		record.TotalProductCost,
		record.TotalInstallationCost,
		record.TotalMaintenanceCost,
		record.GrandTotal,
		record.CreatedAt,
	)
	if err != nil {
		return store.CostAnalysis{}, fmt.Errorf("insert cost analysis: %w", err)
	}
	return record, nil
}

func (s *analysisStore) CreateCarbonAnalysis(ctx context.Context, record store.CarbonAnalysis) (store.CarbonAnalysis, error) {
	id, createdAt, err := s.stamp(record.UserID)
	if err != nil {
		return store.CarbonAnalysis{}, err
	}
	record.ID, record.CreatedAt = id, createdAt

	var payback any
	if record.CarbonPaybackPeriod != nil {
		payback = *record.CarbonPaybackPeriod
	}

	_, err = duckdb.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO carbon_analyses (
			id, user_id, carbon_payback_period, total_carbon_emission, created_at
		) VALUES (?, ?, ?, ?, ?)`,
		record.ID,
		record.UserID,
		payback,
		record.TotalCarbonEmission,
		record.CreatedAt,
	)
	if err != nil {
		return store.CarbonAnalysis{}, fmt.Errorf("insert carbon analysis: %w", err)
	}
	return record, nil
}

func (s *analysisStore) CreateEnergyUsageEntry(ctx context.Context, record store.EnergyUsage) (store.EnergyUsage, error) {
	id, createdAt, err := s.stamp(record.UserID)
	if err != nil {
		return store.EnergyUsage{}, err
	}
	record.ID, record.CreatedAt = id, createdAt

	_, err = duckdb.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO energy_usage (id, user_id, type, emissions, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		record.ID,
		record.UserID,
		record.Type,
		record.Emissions,
		record.CreatedAt,
	)
	if err != nil {
		return store.EnergyUsage{}, fmt.Errorf("insert energy usage: %w", err)
	}
	return record, nil
}

func (s *analysisStore) ListCostAnalyses(ctx context.Context, userID string) ([]store.CostAnalysis, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, total_product_cost, total_installation_cost,
			total_maintenance_cost, grand_total, created_at
		FROM cost_analyses
		WHERE user_id = ?
		ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query cost analyses: %w", err)
	}
	defer rows.Close()

	records := make([]store.CostAnalysis, 0)
	for rows.Next() {
		var r store.CostAnalysis
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.TotalProductCost, &r.TotalInstallationCost,
			&r.TotalMaintenanceCost, &r.GrandTotal, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *analysisStore) ListCarbonAnalyses(ctx context.Context, userID string) ([]store.CarbonAnalysis, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, carbon_payback_period, total_carbon_emission, created_at
		FROM carbon_analyses
		WHERE user_id = ?
		ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query carbon analyses: %w", err)
	}
	defer rows.Close()

	records := make([]store.CarbonAnalysis, 0)
	for rows.Next() {
		var (
			r       store.CarbonAnalysis
			payback sql.NullFloat64
		)
		if err := rows.Scan(&r.ID, &r.UserID, &payback, &r.TotalCarbonEmission, &r.CreatedAt); err != nil {
			return nil, err
		}
		if payback.Valid {
			v := payback.Float64
			r.CarbonPaybackPeriod = &v
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *analysisStore) ListEnergyUsage(ctx context.Context, userID string) ([]store.EnergyUsage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, type, emissions, created_at
		FROM energy_usage
		WHERE user_id = ?
		ORDER BY created_at DESC, type`, userID)
	if err != nil {
		return nil, fmt.Errorf("query energy usage: %w", err)
	}
	defer rows.Close()

	records := make([]store.EnergyUsage, 0)
	for rows.Next() {
		var r store.EnergyUsage
		if err := rows.Scan(&r.ID, &r.UserID, &r.Type, &r.Emissions, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
