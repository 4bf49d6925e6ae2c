package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openisa/nps-stub/internal/application/dto"
	"github.com/openisa/nps-stub/internal/application/usecase"
	"github.com/openisa/nps-stub/internal/domain/event"
	"github.com/openisa/nps-stub/internal/domain/service"
)

func TestSubmitDeclaration_AcceptsNormalReference(t *testing.T) {
	audit := &mockAuditPublisher{}
	uc := usecase.NewSubmitDeclarationUseCase(audit, testLogger())

	err := uc.Execute(context.Background(), dto.SubmitDeclarationRequest{
		Reference: "Z1111",
		TaxYear:   "2025-26",
		Month:     "APR",
	})

	require.NoError(t, err)
	require.Len(t, audit.published, 1)
	evt, ok := audit.published[0].(event.DeclarationSubmitted)
	require.True(t, ok)
	assert.Equal(t, "declaration.submitted", evt.EventType())
}

func TestSubmitDeclaration_InternalErrorReference(t *testing.T) {
	audit := &mockAuditPublisher{}
	uc := usecase.NewSubmitDeclarationUseCase(audit, testLogger())

	err := uc.Execute(context.Background(), dto.SubmitDeclarationRequest{
		Reference: service.RefInternalError,
		TaxYear:   "2025-26",
		Month:     "APR",
	})

	var de *usecase.DispositionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, http.StatusInternalServerError, de.Disposition.HTTPStatus)
	assert.Equal(t, service.CodeInternalError, de.Disposition.Code)
	assert.Equal(t, "Internal issue, try again later", de.Disposition.Message)
	assert.Empty(t, audit.published, "reserved references must not emit audit events")
}

func TestSubmitDeclaration_SubmitOnlyReferencesAreAccepted(t *testing.T) {
	// Z1400 and Z1503 are reserved for submit only; a declaration for
	// either is acknowledged like any other reference.
	for _, ref := range []string{service.RefBadRequest, service.RefServiceUnavailable} {
		audit := &mockAuditPublisher{}
		uc := usecase.NewSubmitDeclarationUseCase(audit, testLogger())

		err := uc.Execute(context.Background(), dto.SubmitDeclarationRequest{
			Reference: ref,
			TaxYear:   "2025-26",
			Month:     "APR",
		})

		require.NoError(t, err, "reference %s", ref)
		assert.Len(t, audit.published, 1, "reference %s", ref)
	}
}
