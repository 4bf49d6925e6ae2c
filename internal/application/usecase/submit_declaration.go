package usecase

import (
	"context"
	"log/slog"

	"github.com/openisa/nps-stub/internal/application/dto"
	"github.com/openisa/nps-stub/internal/domain/event"
	"github.com/openisa/nps-stub/internal/domain/port"
	"github.com/openisa/nps-stub/internal/domain/service"
)

// SubmitDeclarationUseCase handles declaration submissions.
type SubmitDeclarationUseCase struct {
	audit  port.AuditPublisher
	logger *slog.Logger
}

// NewSubmitDeclarationUseCase creates a new SubmitDeclarationUseCase.
func NewSubmitDeclarationUseCase(audit port.AuditPublisher, logger *slog.Logger) *SubmitDeclarationUseCase {
	return &SubmitDeclarationUseCase{
		audit:  audit,
		logger: logger,
	}
}

// Execute processes a declaration submission. A nil return means the
// declaration was acknowledged with no content.
func (uc *SubmitDeclarationUseCase) Execute(ctx context.Context, req dto.SubmitDeclarationRequest) error {
	if d, ok := service.Dispatch(service.OperationDeclare, req.Reference); ok {
		uc.logger.Info("declaration submission short-circuited",
			"reference", req.Reference,
			"outcome", d.Code,
		)
		return &DispositionError{Disposition: d}
	}

	uc.logger.Info("declaration submission accepted",
		"reference", req.Reference,
		"tax_year", req.TaxYear,
		"month", req.Month,
		"outcome", "accepted",
	)

	evt := event.NewDeclarationSubmitted(req.Reference, req.TaxYear, req.Month)
	if err := uc.audit.Publish(ctx, evt); err != nil {
		uc.logger.Error("failed to publish audit event",
			"event_type", evt.EventType(),
			"reference", req.Reference,
			"error", err,
		)
	}

	return nil
}
