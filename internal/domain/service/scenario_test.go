package service_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openisa/nps-stub/internal/domain/service"
)

func TestDispatch_ReservedReferences(t *testing.T) {
	tests := []struct {
		name       string
		op         service.Operation
		reference  string
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "submit Z1400 is a bad request",
			op:         service.OperationSubmit,
			reference:  "Z1400",
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantMsg:    "Bad request",
		},
		{
			name:       "submit Z1503 is service unavailable",
			op:         service.OperationSubmit,
			reference:  "Z1503",
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "SERVICE_UNAVAILABLE",
			wantMsg:    "Service unavailable",
		},
		{
			name:       "declare Z1500 is an internal failure",
			op:         service.OperationDeclare,
			reference:  "Z1500",
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal issue, try again later",
		},
		{
			name:       "fetch Z1500 is an internal failure",
			op:         service.OperationFetch,
			reference:  "Z1500",
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal issue, try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := service.Dispatch(tt.op, tt.reference)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, d.HTTPStatus)
			assert.Equal(t, tt.wantCode, d.Code)
			assert.Equal(t, tt.wantMsg, d.Message)
		})
	}
}

func TestDispatch_ReservedValuesAreOperationScoped(t *testing.T) {
	// Z1500 is reserved for declare and fetch only.
	_, ok := service.Dispatch(service.OperationSubmit, "Z1500")
	assert.False(t, ok)

	// Z1400 and Z1503 are submission-only.
	_, ok = service.Dispatch(service.OperationDeclare, "Z1400")
	assert.False(t, ok)
	_, ok = service.Dispatch(service.OperationDeclare, "Z1503")
	assert.False(t, ok)
	_, ok = service.Dispatch(service.OperationFetch, "Z1400")
	assert.False(t, ok)
	_, ok = service.Dispatch(service.OperationFetch, "Z1503")
	assert.False(t, ok)
}

func TestDispatch_NormalReferences(t *testing.T) {
	for _, ref := range []string{"Z1111", "Z9999", "z1400", "Z14000", " Z1400", ""} {
		for _, op := range []service.Operation{service.OperationSubmit, service.OperationDeclare, service.OperationFetch} {
			_, ok := service.Dispatch(op, ref)
			assert.False(t, ok, "reference %q should not be reserved for %s", ref, op)
		}
	}
}

func TestInternalDisposition(t *testing.T) {
	d := service.InternalDisposition()
	assert.Equal(t, http.StatusInternalServerError, d.HTTPStatus)
	assert.Equal(t, service.CodeInternalError, d.Code)
	assert.Equal(t, "Internal issue, try again later", d.Message)
}
