package grpc

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/openisa/nps-stub/internal/application/dto"
	"github.com/openisa/nps-stub/internal/application/usecase"
	"github.com/openisa/nps-stub/internal/domain/service"
)

// ---------------------------------------------------------------------------
// Request / Response types (stand-in for proto-generated messages)
// ---------------------------------------------------------------------------

// SubmitReturnsRequest represents the proto SubmitReturnsRequest message.
type SubmitReturnsRequest struct {
	Reference string `json:"reference"`
	TaxYear   string `json:"tax_year"`
	Month     string `json:"month"`
}

// SubmitReturnsResponse represents the proto SubmitReturnsResponse message.
type SubmitReturnsResponse struct{}

// SubmitDeclarationRequest represents the proto SubmitDeclarationRequest message.
type SubmitDeclarationRequest struct {
	Reference string `json:"reference"`
	TaxYear   string `json:"tax_year"`
	Month     string `json:"month"`
}

// SubmitDeclarationResponse represents the proto SubmitDeclarationResponse message.
type SubmitDeclarationResponse struct{}

// GetReturnResultsRequest represents the proto GetReturnResultsRequest message.
type GetReturnResultsRequest struct {
	Reference string `json:"reference"`
	TaxYear   string `json:"tax_year"`
	Month     string `json:"month"`
	Skip      int32  `json:"skip"`
	Take      int32  `json:"take"`
}

// GetReturnResultsResponse represents the proto GetReturnResultsResponse message.
type GetReturnResultsResponse = dto.FetchReportResponse

// ---------------------------------------------------------------------------
// StubHandler
// ---------------------------------------------------------------------------

// StubHandler handles gRPC requests for the stub service, mirroring the
// HTTP surface for in-process test harnesses.
type StubHandler struct {
	UnimplementedStubServiceServer

	submitReturns     *usecase.SubmitReturnsUseCase
	submitDeclaration *usecase.SubmitDeclarationUseCase
	fetchReport       *usecase.FetchReportUseCase
}

// NewStubHandler creates a new StubHandler.
func NewStubHandler(
	submitReturns *usecase.SubmitReturnsUseCase,
	submitDeclaration *usecase.SubmitDeclarationUseCase,
	fetchReport *usecase.FetchReportUseCase,
) *StubHandler {
	return &StubHandler{
		submitReturns:     submitReturns,
		submitDeclaration: submitDeclaration,
		fetchReport:       fetchReport,
	}
}

// SubmitReturns handles a monthly returns submission.
func (h *StubHandler) SubmitReturns(ctx context.Context, req *SubmitReturnsRequest) (*SubmitReturnsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	err := h.submitReturns.Execute(ctx, dto.SubmitReturnsRequest{
		Reference: req.Reference,
		TaxYear:   req.TaxYear,
		Month:     req.Month,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &SubmitReturnsResponse{}, nil
}

// SubmitDeclaration handles a declaration submission.
func (h *StubHandler) SubmitDeclaration(ctx context.Context, req *SubmitDeclarationRequest) (*SubmitDeclarationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	err := h.submitDeclaration.Execute(ctx, dto.SubmitDeclarationRequest{
		Reference: req.Reference,
		TaxYear:   req.TaxYear,
		Month:     req.Month,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &SubmitDeclarationResponse{}, nil
}

// GetReturnResults handles a paginated report fetch.
func (h *StubHandler) GetReturnResults(ctx context.Context, req *GetReturnResultsRequest) (*GetReturnResultsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Skip < 0 || req.Take < 0 {
		return nil, status.Error(codes.InvalidArgument, "skip and take must be non-negative")
	}

	resp, err := h.fetchReport.Execute(ctx, dto.FetchReportRequest{
		Reference: req.Reference,
		TaxYear:   req.TaxYear,
		Month:     req.Month,
		Skip:      int(req.Skip),
		Take:      int(req.Take),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// toStatusError maps application errors onto gRPC status codes, keeping
// the stable stub messages as the status message.
func toStatusError(err error) error {
	var de *usecase.DispositionError
	var pnf *service.PageNotFoundError

	switch {
	case errors.As(err, &de):
		return status.Error(codeForHTTPStatus(de.Disposition.HTTPStatus), de.Disposition.Message)
	case errors.Is(err, usecase.ErrReportNotFound):
		return status.Error(codes.NotFound, "Report not found")
	case errors.As(err, &pnf):
		return status.Error(codes.NotFound, pnf.Error())
	default:
		d := service.InternalDisposition()
		return status.Error(codeForHTTPStatus(d.HTTPStatus), err.Error())
	}
}

func codeForHTTPStatus(httpStatus int) codes.Code {
	switch httpStatus {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}
