package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openisa/nps-stub/internal/domain/model"
	pkgpostgres "github.com/openisa/nps-stub/pkg/postgres"
)

// ReportStore is the PostgreSQL implementation of port.ReportStore.
// Results are stored as a jsonb document per (reference, tax year, month).
type ReportStore struct {
	pool *pgxpool.Pool
}

// NewReportStore creates a new ReportStore backed by the given pool.
func NewReportStore(pool *pgxpool.Pool) *ReportStore {
	return &ReportStore{pool: pool}
}

// FindByKey retrieves the full report for a key, or (nil, nil) when no
// report exists.
func (s *ReportStore) FindByKey(ctx context.Context, key model.ReportKey) (*model.MonthlyReport, error) {
	query := `
		SELECT results
		FROM monthly_reports
		WHERE reference = $1 AND tax_year = $2 AND month = $3
	`

	var raw []byte
	err := s.pool.QueryRow(ctx, query, key.Reference, key.TaxYear, key.Month).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly report: %w", err)
	}

	var results []model.ReturnResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal return results: %w", err)
	}

	return &model.MonthlyReport{Key: key, Results: results}, nil
}

// Save replaces the stored report for the key. Delete and insert run in
// one transaction so a concurrent reader never observes a partial report.
func (s *ReportStore) Save(ctx context.Context, report model.MonthlyReport) error {
	raw, err := json.Marshal(report.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal return results: %w", err)
	}

	return pkgpostgres.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		deleteQuery := `
			DELETE FROM monthly_reports
			WHERE reference = $1 AND tax_year = $2 AND month = $3
		`
		if _, err := tx.Exec(ctx, deleteQuery, report.Key.Reference, report.Key.TaxYear, report.Key.Month); err != nil {
			return fmt.Errorf("failed to delete existing monthly report: %w", err)
		}

		insertQuery := `
			INSERT INTO monthly_reports (reference, tax_year, month, results)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.Exec(ctx, insertQuery, report.Key.Reference, report.Key.TaxYear, report.Key.Month, raw); err != nil {
			return fmt.Errorf("failed to insert monthly report: %w", err)
		}

		return nil
	})
}

// Ping verifies database connectivity.
func (s *ReportStore) Ping(ctx context.Context) error {
	return pkgpostgres.HealthCheck(ctx, s.pool)
}
