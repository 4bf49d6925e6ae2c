package usecase

import (
	"errors"
	"fmt"

	"github.com/openisa/nps-stub/internal/domain/service"
)

// ErrReportNotFound indicates that no report exists for the requested
// reference, tax year and month. Distinct from a missing page within an
// existing report.
var ErrReportNotFound = errors.New("report not found")

// DispositionError carries a fixed terminal outcome selected by the
// scenario table. Presentation layers translate it directly into the
// corresponding response.
type DispositionError struct {
	Disposition service.Disposition
}

func (e *DispositionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Disposition.Code, e.Disposition.Message)
}
