package port

import (
	"context"

	"github.com/openisa/nps-stub/internal/domain/event"
	"github.com/openisa/nps-stub/internal/domain/model"
)

// ReportStore defines the lookup port for stored monthly reports.
//
// FindByKey returns (nil, nil) when no report exists for the key; any
// non-nil error is an unexpected store failure and is converted to an
// internal error at the boundary, never surfaced raw.
type ReportStore interface {
	FindByKey(ctx context.Context, key model.ReportKey) (*model.MonthlyReport, error)

	// Save persists a report, replacing any existing report with the
	// same key. Used for seeding; the request path never writes.
	Save(ctx context.Context, report model.MonthlyReport) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// AuditPublisher defines the port for emitting audit events.
type AuditPublisher interface {
	Publish(ctx context.Context, events ...event.AuditEvent) error
}
