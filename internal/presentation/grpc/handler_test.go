package grpc_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/openisa/nps-stub/internal/application/usecase"
	"github.com/openisa/nps-stub/internal/domain/event"
	"github.com/openisa/nps-stub/internal/domain/model"
	"github.com/openisa/nps-stub/internal/infrastructure/memory"
	grpchandler "github.com/openisa/nps-stub/internal/presentation/grpc"
)

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...event.AuditEvent) error { return nil }

type failingStore struct{ err error }

func (s failingStore) FindByKey(context.Context, model.ReportKey) (*model.MonthlyReport, error) {
	return nil, s.err
}
func (s failingStore) Save(context.Context, model.MonthlyReport) error { return nil }
func (s failingStore) Ping(context.Context) error                      { return s.err }

func newHandler(t *testing.T) *grpchandler.StubHandler {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	store := memory.NewReportStore()
	for _, r := range memory.DefaultReports() {
		if err := store.Save(context.Background(), r); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}

	return grpchandler.NewStubHandler(
		usecase.NewSubmitReturnsUseCase(noopPublisher{}, logger),
		usecase.NewSubmitDeclarationUseCase(noopPublisher{}, logger),
		usecase.NewFetchReportUseCase(store, noopPublisher{}, logger),
	)
}

func wantStatus(t *testing.T, err error, code codes.Code, message string) {
	t.Helper()

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("error %v is not a status error", err)
	}
	if st.Code() != code {
		t.Errorf("code = %s, want %s", st.Code(), code)
	}
	if message != "" && st.Message() != message {
		t.Errorf("message = %q, want %q", st.Message(), message)
	}
}

func TestSubmitReturns(t *testing.T) {
	h := newHandler(t)

	resp, err := h.SubmitReturns(context.Background(), &grpchandler.SubmitReturnsRequest{
		Reference: "Z1111", TaxYear: "2025-26", Month: "APR",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected a response")
	}

	_, err = h.SubmitReturns(context.Background(), &grpchandler.SubmitReturnsRequest{
		Reference: "Z1400", TaxYear: "2025-26", Month: "APR",
	})
	wantStatus(t, err, codes.InvalidArgument, "Bad request")

	_, err = h.SubmitReturns(context.Background(), &grpchandler.SubmitReturnsRequest{
		Reference: "Z1503", TaxYear: "2025-26", Month: "APR",
	})
	wantStatus(t, err, codes.Unavailable, "Service unavailable")

	_, err = h.SubmitReturns(context.Background(), nil)
	wantStatus(t, err, codes.InvalidArgument, "")
}

func TestSubmitDeclaration(t *testing.T) {
	h := newHandler(t)

	resp, err := h.SubmitDeclaration(context.Background(), &grpchandler.SubmitDeclarationRequest{
		Reference: "Z1111", TaxYear: "2025-26", Month: "APR",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected a response")
	}

	_, err = h.SubmitDeclaration(context.Background(), &grpchandler.SubmitDeclarationRequest{
		Reference: "Z1500", TaxYear: "2025-26", Month: "APR",
	})
	wantStatus(t, err, codes.Internal, "Internal issue, try again later")
}

func TestGetReturnResults(t *testing.T) {
	h := newHandler(t)

	resp, err := h.GetReturnResults(context.Background(), &grpchandler.GetReturnResultsRequest{
		Reference: "Z1234", TaxYear: "2025-26", Month: "APR", Skip: 0, Take: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TotalRecords != 3 {
		t.Errorf("totalRecords = %d, want 3", resp.TotalRecords)
	}
	if len(resp.ReturnResults) != 2 {
		t.Errorf("len(returnResults) = %d, want 2", len(resp.ReturnResults))
	}
}

func TestGetReturnResults_Errors(t *testing.T) {
	h := newHandler(t)

	_, err := h.GetReturnResults(context.Background(), &grpchandler.GetReturnResultsRequest{
		Reference: "Z1500", TaxYear: "2025-26", Month: "APR", Take: 10,
	})
	wantStatus(t, err, codes.Internal, "Internal issue, try again later")

	_, err = h.GetReturnResults(context.Background(), &grpchandler.GetReturnResultsRequest{
		Reference: "Z9999", TaxYear: "2025-26", Month: "APR", Take: 10,
	})
	wantStatus(t, err, codes.NotFound, "Report not found")

	_, err = h.GetReturnResults(context.Background(), &grpchandler.GetReturnResultsRequest{
		Reference: "Z1234", TaxYear: "2025-26", Month: "APR", Skip: 2, Take: 2,
	})
	wantStatus(t, err, codes.NotFound, "No page 2 found")

	_, err = h.GetReturnResults(context.Background(), &grpchandler.GetReturnResultsRequest{
		Reference: "Z1234", TaxYear: "2025-26", Month: "APR", Skip: -1, Take: 2,
	})
	wantStatus(t, err, codes.InvalidArgument, "")
}

func TestGetReturnResults_StoreFailure(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	h := grpchandler.NewStubHandler(
		usecase.NewSubmitReturnsUseCase(noopPublisher{}, logger),
		usecase.NewSubmitDeclarationUseCase(noopPublisher{}, logger),
		usecase.NewFetchReportUseCase(failingStore{err: errors.New("connection refused")}, noopPublisher{}, logger),
	)

	_, err := h.GetReturnResults(context.Background(), &grpchandler.GetReturnResultsRequest{
		Reference: "Z1234", TaxYear: "2025-26", Month: "APR", Take: 10,
	})

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("error %v is not a status error", err)
	}
	if st.Code() != codes.Internal {
		t.Errorf("code = %s, want %s", st.Code(), codes.Internal)
	}
	if !strings.Contains(st.Message(), "connection refused") {
		t.Errorf("message = %q, want the store failure description embedded", st.Message())
	}
}
