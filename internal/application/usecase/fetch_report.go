package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openisa/nps-stub/internal/application/dto"
	"github.com/openisa/nps-stub/internal/domain/event"
	"github.com/openisa/nps-stub/internal/domain/model"
	"github.com/openisa/nps-stub/internal/domain/port"
	"github.com/openisa/nps-stub/internal/domain/service"
)

// FetchReportUseCase serves one page of a stored monthly report. The
// reserved-reference short-circuit is applied before any store lookup.
type FetchReportUseCase struct {
	store  port.ReportStore
	audit  port.AuditPublisher
	logger *slog.Logger
}

// NewFetchReportUseCase creates a new FetchReportUseCase.
func NewFetchReportUseCase(store port.ReportStore, audit port.AuditPublisher, logger *slog.Logger) *FetchReportUseCase {
	return &FetchReportUseCase{
		store:  store,
		audit:  audit,
		logger: logger,
	}
}

// Execute retrieves the requested page of return results.
//
// Failure modes, in evaluation order: the fixed internal-failure outcome
// for a reserved reference, a wrapped store failure, ErrReportNotFound
// when no report exists for the key, and service.PageNotFoundError when
// the page index is out of range.
func (uc *FetchReportUseCase) Execute(ctx context.Context, req dto.FetchReportRequest) (dto.FetchReportResponse, error) {
	if d, ok := service.Dispatch(service.OperationFetch, req.Reference); ok {
		uc.logger.Info("report fetch short-circuited",
			"reference", req.Reference,
			"outcome", d.Code,
		)
		return dto.FetchReportResponse{}, &DispositionError{Disposition: d}
	}

	key := model.ReportKey{
		Reference: req.Reference,
		TaxYear:   req.TaxYear,
		Month:     req.Month,
	}

	report, err := uc.store.FindByKey(ctx, key)
	if err != nil {
		uc.logger.Error("report lookup failed",
			"reference", req.Reference,
			"tax_year", req.TaxYear,
			"month", req.Month,
			"error", err,
		)
		return dto.FetchReportResponse{}, fmt.Errorf("report lookup failed: %w", err)
	}
	if report == nil {
		uc.logger.Info("report not found",
			"reference", req.Reference,
			"tax_year", req.TaxYear,
			"month", req.Month,
		)
		return dto.FetchReportResponse{}, ErrReportNotFound
	}

	page, err := service.Paginate(*report, req.Skip, req.Take)
	if err != nil {
		uc.logger.Info("page not found",
			"reference", req.Reference,
			"skip", req.Skip,
			"take", req.Take,
			"total_records", report.TotalRecords(),
		)
		return dto.FetchReportResponse{}, err
	}

	uc.logger.Info("report page served",
		"reference", req.Reference,
		"tax_year", req.TaxYear,
		"month", req.Month,
		"skip", req.Skip,
		"take", req.Take,
		"records", len(page.Results),
		"total_records", page.TotalRecords,
		"outcome", "ok",
	)

	evt := event.NewReportRetrieved(req.Reference, req.TaxYear, req.Month, req.Skip, len(page.Results))
	if err := uc.audit.Publish(ctx, evt); err != nil {
		uc.logger.Error("failed to publish audit event",
			"event_type", evt.EventType(),
			"reference", req.Reference,
			"error", err,
		)
	}

	return dto.FetchReportResponse{
		TotalRecords:  page.TotalRecords,
		ReturnResults: page.Results,
	}, nil
}
