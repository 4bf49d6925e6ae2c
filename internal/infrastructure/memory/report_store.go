package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/openisa/nps-stub/internal/domain/model"
)

// ReportStore is an in-memory implementation of port.ReportStore. It is
// the default backend so the stub runs with no external dependencies,
// and doubles as the test fake.
type ReportStore struct {
	mu      sync.RWMutex
	reports map[model.ReportKey]model.MonthlyReport
}

// NewReportStore creates an empty in-memory ReportStore.
func NewReportStore() *ReportStore {
	return &ReportStore{
		reports: make(map[model.ReportKey]model.MonthlyReport),
	}
}

// FindByKey returns the report for the key, or (nil, nil) when absent.
func (s *ReportStore) FindByKey(_ context.Context, key model.ReportKey) (*model.MonthlyReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[key]
	if !ok {
		return nil, nil
	}

	// Copy the result slice so callers can never mutate stored state.
	results := make([]model.ReturnResult, len(report.Results))
	copy(results, report.Results)
	report.Results = results
	return &report, nil
}

// Save stores a report, replacing any existing report with the same key.
func (s *ReportStore) Save(_ context.Context, report model.MonthlyReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]model.ReturnResult, len(report.Results))
	copy(results, report.Results)
	report.Results = results
	s.reports[report.Key] = report
	return nil
}

// Ping always succeeds for the in-memory backend.
func (s *ReportStore) Ping(_ context.Context) error {
	return nil
}

// DefaultReports returns the compiled-in seed fixtures. They make the
// fetch path exercisable out of the box: one small report with a flagged
// result on every record, and one large report spanning several pages.
func DefaultReports() []model.MonthlyReport {
	small := model.MonthlyReport{
		Key: model.ReportKey{Reference: "Z1234", TaxYear: "2025-26", Month: "APR"},
		Results: []model.ReturnResult{
			{
				AccountNumber: "ISA1000001",
				NINO:          "AA000001A",
				IssueIdentified: model.IssueIdentified{
					Code:    "NINO_MISMATCH",
					Message: "NINO does not match the subscriber record",
				},
			},
			{
				AccountNumber: "ISA1000002",
				NINO:          "AA000002B",
				IssueIdentified: model.IssueIdentified{
					Code:    "OVERSUBSCRIBED",
					Message: "Subscription exceeds the annual allowance",
				},
			},
			{
				AccountNumber: "ISA1000003",
				NINO:          "AA000003C",
				IssueIdentified: model.IssueIdentified{
					Code:    "CLOSED_ACCOUNT",
					Message: "Return received for a closed account",
				},
			},
		},
	}

	large := model.MonthlyReport{
		Key: model.ReportKey{Reference: "Z5678", TaxYear: "2025-26", Month: "MAY"},
	}
	for i := 0; i < 60; i++ {
		large.Results = append(large.Results, model.ReturnResult{
			AccountNumber: fmt.Sprintf("ISA2%06d", i+1),
			NINO:          fmt.Sprintf("BB%06dA", i+1),
			IssueIdentified: model.IssueIdentified{
				Code:    "NINO_MISMATCH",
				Message: "NINO does not match the subscriber record",
			},
		})
	}

	return []model.MonthlyReport{small, large}
}
