package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const CostAnalysisSchema = `
	CREATE TABLE IF NOT EXISTS cost_analyses (
		id VARCHAR NOT NULL PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		total_product_cost DOUBLE NOT NULL,
		total_installation_cost DOUBLE NOT NULL,
		total_maintenance_cost DOUBLE NOT NULL,
		grand_total DOUBLE NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
`
const CarbonAnalysisSchema = `
	CREATE TABLE IF NOT EXISTS carbon_analyses (
		id VARCHAR NOT NULL PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		carbon_payback_period DOUBLE NULL,
		total_carbon_emission DOUBLE NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
`
const EnergyUsageSchema = `
	CREATE TABLE IF NOT EXISTS energy_usage (
		id VARCHAR NOT NULL PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		type VARCHAR NOT NULL,
		emissions DOUBLE NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
`
const FeedbackSchema = `
	CREATE TABLE IF NOT EXISTS feedback (
		id VARCHAR NOT NULL PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		rating INTEGER NOT NULL,
		message VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
`

var bootQueries = []string{
	CostAnalysisSchema,
	CarbonAnalysisSchema,
	EnergyUsageSchema,
	FeedbackSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
