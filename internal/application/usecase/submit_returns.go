package usecase

import (
	"context"
	"log/slog"

	"github.com/openisa/nps-stub/internal/application/dto"
	"github.com/openisa/nps-stub/internal/domain/event"
	"github.com/openisa/nps-stub/internal/domain/port"
	"github.com/openisa/nps-stub/internal/domain/service"
)

// SubmitReturnsUseCase handles monthly returns submissions. Reserved
// reference numbers short-circuit to their fixed outcome; everything
// else is acknowledged without inspecting the payload.
type SubmitReturnsUseCase struct {
	audit  port.AuditPublisher
	logger *slog.Logger
}

// NewSubmitReturnsUseCase creates a new SubmitReturnsUseCase.
func NewSubmitReturnsUseCase(audit port.AuditPublisher, logger *slog.Logger) *SubmitReturnsUseCase {
	return &SubmitReturnsUseCase{
		audit:  audit,
		logger: logger,
	}
}

// Execute processes a monthly returns submission. A nil return means the
// submission was acknowledged with no content.
func (uc *SubmitReturnsUseCase) Execute(ctx context.Context, req dto.SubmitReturnsRequest) error {
	if d, ok := service.Dispatch(service.OperationSubmit, req.Reference); ok {
		uc.logger.Info("monthly returns submission short-circuited",
			"reference", req.Reference,
			"outcome", d.Code,
		)
		return &DispositionError{Disposition: d}
	}

	uc.logger.Info("monthly returns submission accepted",
		"reference", req.Reference,
		"tax_year", req.TaxYear,
		"month", req.Month,
		"outcome", "accepted",
	)

	evt := event.NewReturnsSubmitted(req.Reference, req.TaxYear, req.Month)
	if err := uc.audit.Publish(ctx, evt); err != nil {
		// Audit transport failures must not change the stub's
		// deterministic response.
		uc.logger.Error("failed to publish audit event",
			"event_type", evt.EventType(),
			"reference", req.Reference,
			"error", err,
		)
	}

	return nil
}
