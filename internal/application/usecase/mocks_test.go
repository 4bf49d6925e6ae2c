package usecase_test

import (
	"context"
	"log/slog"

	"github.com/openisa/nps-stub/internal/domain/event"
	"github.com/openisa/nps-stub/internal/domain/model"
)

type mockReportStore struct {
	findByKey func(ctx context.Context, key model.ReportKey) (*model.MonthlyReport, error)
	calls     int
}

func (m *mockReportStore) FindByKey(ctx context.Context, key model.ReportKey) (*model.MonthlyReport, error) {
	m.calls++
	if m.findByKey != nil {
		return m.findByKey(ctx, key)
	}
	return nil, nil
}

func (m *mockReportStore) Save(ctx context.Context, report model.MonthlyReport) error {
	return nil
}

func (m *mockReportStore) Ping(ctx context.Context) error {
	return nil
}

type mockAuditPublisher struct {
	publish   func(ctx context.Context, events ...event.AuditEvent) error
	published []event.AuditEvent
}

func (m *mockAuditPublisher) Publish(ctx context.Context, events ...event.AuditEvent) error {
	m.published = append(m.published, events...)
	if m.publish != nil {
		return m.publish(ctx, events...)
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
