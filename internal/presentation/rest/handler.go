package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/openisa/nps-stub/internal/application/dto"
	"github.com/openisa/nps-stub/internal/application/usecase"
	"github.com/openisa/nps-stub/internal/domain/service"
	"github.com/openisa/nps-stub/pkg/observability"
)

// Default page size when the take query parameter is omitted.
const defaultTake = 25

// StubHandler exposes the three stub operations over HTTP.
type StubHandler struct {
	submitReturns     *usecase.SubmitReturnsUseCase
	submitDeclaration *usecase.SubmitDeclarationUseCase
	fetchReport       *usecase.FetchReportUseCase
	metrics           *observability.StubMetrics
	logger            *slog.Logger
}

// NewStubHandler creates a new StubHandler.
func NewStubHandler(
	submitReturns *usecase.SubmitReturnsUseCase,
	submitDeclaration *usecase.SubmitDeclarationUseCase,
	fetchReport *usecase.FetchReportUseCase,
	metrics *observability.StubMetrics,
	logger *slog.Logger,
) *StubHandler {
	return &StubHandler{
		submitReturns:     submitReturns,
		submitDeclaration: submitDeclaration,
		fetchReport:       fetchReport,
		metrics:           metrics,
		logger:            logger,
	}
}

// RegisterRoutes registers the stub API routes on the given mux.
func (h *StubHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /nps/isa-manager/{reference}/returns/{taxYear}/{month}", h.handleSubmitReturns)
	mux.HandleFunc("POST /nps/isa-manager/{reference}/returns/{taxYear}/{month}/declaration", h.handleSubmitDeclaration)
	mux.HandleFunc("GET /nps/isa-manager/{reference}/returns/{taxYear}/{month}/results", h.handleGetResults)
}

func (h *StubHandler) handleSubmitReturns(w http.ResponseWriter, r *http.Request) {
	req := dto.SubmitReturnsRequest{
		Reference: r.PathValue("reference"),
		TaxYear:   r.PathValue("taxYear"),
		Month:     r.PathValue("month"),
	}

	if err := h.submitReturns.Execute(r.Context(), req); err != nil {
		h.respondError(w, string(service.OperationSubmit), err)
		return
	}

	h.metrics.ObserveOutcome(string(service.OperationSubmit), "NO_CONTENT")
	w.WriteHeader(http.StatusNoContent)
}

func (h *StubHandler) handleSubmitDeclaration(w http.ResponseWriter, r *http.Request) {
	req := dto.SubmitDeclarationRequest{
		Reference: r.PathValue("reference"),
		TaxYear:   r.PathValue("taxYear"),
		Month:     r.PathValue("month"),
	}

	if err := h.submitDeclaration.Execute(r.Context(), req); err != nil {
		h.respondError(w, string(service.OperationDeclare), err)
		return
	}

	h.metrics.ObserveOutcome(string(service.OperationDeclare), "NO_CONTENT")
	w.WriteHeader(http.StatusNoContent)
}

func (h *StubHandler) handleGetResults(w http.ResponseWriter, r *http.Request) {
	skip, ok := queryInt(r, "skip", 0)
	if !ok {
		h.metrics.ObserveOutcome(string(service.OperationFetch), service.CodeBadRequest)
		writeError(w, http.StatusBadRequest, service.CodeBadRequest, "Bad request")
		return
	}
	take, ok := queryInt(r, "take", defaultTake)
	if !ok {
		h.metrics.ObserveOutcome(string(service.OperationFetch), service.CodeBadRequest)
		writeError(w, http.StatusBadRequest, service.CodeBadRequest, "Bad request")
		return
	}

	req := dto.FetchReportRequest{
		Reference: r.PathValue("reference"),
		TaxYear:   r.PathValue("taxYear"),
		Month:     r.PathValue("month"),
		Skip:      skip,
		Take:      take,
	}

	resp, err := h.fetchReport.Execute(r.Context(), req)
	if err != nil {
		h.respondError(w, string(service.OperationFetch), err)
		return
	}

	h.metrics.ObserveOutcome(string(service.OperationFetch), "OK")
	writeJSON(w, http.StatusOK, resp)
}

// respondError maps application errors onto the stub's fixed HTTP
// outcomes. Anything unrecognised is an unexpected store failure and is
// returned as an internal error whose message carries the failure
// description, never the raw error value.
func (h *StubHandler) respondError(w http.ResponseWriter, operation string, err error) {
	var de *usecase.DispositionError
	var pnf *service.PageNotFoundError

	switch {
	case errors.As(err, &de):
		h.metrics.ObserveOutcome(operation, de.Disposition.Code)
		writeError(w, de.Disposition.HTTPStatus, de.Disposition.Code, de.Disposition.Message)
	case errors.Is(err, usecase.ErrReportNotFound):
		h.metrics.ObserveOutcome(operation, service.CodeReportNotFound)
		writeError(w, http.StatusNotFound, service.CodeReportNotFound, "Report not found")
	case errors.As(err, &pnf):
		h.metrics.ObserveOutcome(operation, service.CodePageNotFound)
		writeError(w, http.StatusNotFound, service.CodePageNotFound, pnf.Error())
	default:
		h.logger.Error("request failed", "operation", operation, "error", err)
		d := service.InternalDisposition()
		h.metrics.ObserveOutcome(operation, d.Code)
		writeError(w, d.HTTPStatus, d.Code, err.Error())
	}
}

// queryInt parses a non-negative integer query parameter, applying the
// fallback when absent. ok is false for non-integer or negative values.
func queryInt(r *http.Request, name string, fallback int) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Code: code, Message: message})
}
