package analysis

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/greensphere/payoff/pkg/adapters"
	"github.com/greensphere/payoff/pkg/models/domain"
	"github.com/greensphere/payoff/pkg/services/payoff"
	"github.com/greensphere/payoff/pkg/store/duckdb"
	analysisstore "github.com/greensphere/payoff/pkg/store/duckdb/analysis"
)

var (
	ErrMissingUser    = errors.New("user id is required")
	ErrEmptySelection = errors.New("selection has no units")
)

// Service evaluates selections and manages a user's saved analyses
type Service interface {
	Sources() []domain.EnergySourceProfile
	Compute(ctx context.Context, id domain.SourceID, count int) (domain.PayoffResult, error)
	Evaluate(ctx context.Context, selection domain.Selection) (*domain.Analysis, error)
	// Save evaluates the selection and persists cost, carbon and per-category energy usage
	// records in a single transaction
	Save(ctx context.Context, userID string, selection domain.Selection) (*domain.SavedAnalysis, error)
	ListSaved(ctx context.Context, userID string) (*domain.SavedAnalysis, error)
}

type service struct {
	db         *sql.DB
	calculator payoff.Calculator
	store      analysisstore.Store
}

func NewService(db *sql.DB, calculator payoff.Calculator, store analysisstore.Store) Service {
	return &service{
		db:         db,
		calculator: calculator,
		store:      store,
	}
}

func (s *service) Sources() []domain.EnergySourceProfile {
	return s.calculator.Profiles()
}

func (s *service) Compute(_ context.Context, id domain.SourceID, count int) (domain.PayoffResult, error) {
	return s.calculator.Compute(id, count)
}

func (s *service) Evaluate(ctx context.Context, selection domain.Selection) (*domain.Analysis, error) {
	results, err := s.calculator.ComputeSelection(selection)
	if err != nil {
		return nil, err
	}

	report := payoff.Aggregate(results)
	zerolog.Ctx(ctx).Debug().
		Int("sources", len(results)).
		Float64("grand_total", report.GrandTotalCost).
		Msg("evaluated selection")

	return &domain.Analysis{Selection: selection, Report: report}, nil
}

func (s *service) Save(ctx context.Context, userID string, selection domain.Selection) (*domain.SavedAnalysis, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	if units(selection) == 0 {
		return nil, ErrEmptySelection
	}

	analysis, err := s.Evaluate(ctx, selection)
	if err != nil {
		return nil, err
	}
	records := adapters.MapAggregateReportToRecords(userID, analysis.Report)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	saved, err := s.persist(duckdb.WithTransaction(ctx, tx), records)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zerolog.Ctx(ctx).Error().Err(rbErr).Msg("failed to rollback analysis")
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit analysis: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("user_id", userID).
		Int("energy_usage_entries", len(saved.EnergyUsage)).
		Msg("saved analysis")

	return saved, nil
}

func (s *service) persist(ctx context.Context, records domain.SavedAnalysis) (*domain.SavedAnalysis, error) {
	saved := &domain.SavedAnalysis{}

	for _, c := range records.Cost {
		rec, err := s.store.CreateCostAnalysis(ctx, adapters.MapCostAnalysisDomainToStore(c))
		if err != nil {
			return nil, err
		}
		saved.Cost = append(saved.Cost, adapters.MapCostAnalysisStoreToDomain(rec))
	}
	for _, c := range records.Carbon {
		rec, err := s.store.CreateCarbonAnalysis(ctx, adapters.MapCarbonAnalysisDomainToStore(c))
		if err != nil {
			return nil, err
		}
		saved.Carbon = append(saved.Carbon, adapters.MapCarbonAnalysisStoreToDomain(rec))
	}
	for _, e := range records.EnergyUsage {
		rec, err := s.store.CreateEnergyUsageEntry(ctx, adapters.MapEnergyUsageDomainToStore(e))
		if err != nil {
			return nil, err
		}
		saved.EnergyUsage = append(saved.EnergyUsage, adapters.MapEnergyUsageStoreToDomain(rec))
	}

	return saved, nil
}

func (s *service) ListSaved(ctx context.Context, userID string) (*domain.SavedAnalysis, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}

	costs, err := s.store.ListCostAnalyses(ctx, userID)
	if err != nil {
		return nil, err
	}
	carbon, err := s.store.ListCarbonAnalyses(ctx, userID)
	if err != nil {
		return nil, err
	}
	usage, err := s.store.ListEnergyUsage(ctx, userID)
	if err != nil {
		return nil, err
	}

	saved := &domain.SavedAnalysis{}
	for _, c := range costs {
		saved.Cost = append(saved.Cost, adapters.MapCostAnalysisStoreToDomain(c))
	}
	for _, c := range carbon {
		saved.Carbon = append(saved.Carbon, adapters.MapCarbonAnalysisStoreToDomain(c))
	}
	for _, e := range usage {
		saved.EnergyUsage = append(saved.EnergyUsage, adapters.MapEnergyUsageStoreToDomain(e))
	}
	return saved, nil
}

func units(selection domain.Selection) int {
	total := 0
	for _, n := range selection {
		if n > 0 {
			total += n
		}
	}
	return total
}
