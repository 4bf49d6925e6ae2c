package service

import "net/http"

// Operation names one of the three inbound operation kinds.
type Operation string

const (
	OperationSubmit  Operation = "submit"
	OperationDeclare Operation = "declare"
	OperationFetch   Operation = "fetch"
)

// Stable machine-readable error codes returned by the stub.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_SERVER_ERROR"
	CodeReportNotFound     = "REPORT_NOT_FOUND"
	CodePageNotFound       = "PAGE_NOT_FOUND"
)

// Reserved ISA manager reference numbers. Matching is exact-string and
// operation-scoped: the same value can mean different things per operation.
const (
	RefBadRequest         = "Z1400"
	RefInternalError      = "Z1500"
	RefServiceUnavailable = "Z1503"
)

// Disposition is a fixed terminal outcome selected for a reserved
// reference number. Dispositions are structural, not exceptional: they
// are deterministic given the input and are never retried.
type Disposition struct {
	HTTPStatus int
	Code       string
	Message    string
}

var (
	dispositionBadRequest = Disposition{
		HTTPStatus: http.StatusBadRequest,
		Code:       CodeBadRequest,
		Message:    "Bad request",
	}
	dispositionServiceUnavailable = Disposition{
		HTTPStatus: http.StatusServiceUnavailable,
		Code:       CodeServiceUnavailable,
		Message:    "Service unavailable",
	}
	dispositionInternalError = Disposition{
		HTTPStatus: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "Internal issue, try again later",
	}
)

// scenarios is the full simulation table: (operation, reference) pairs
// that short-circuit to a fixed outcome. Everything else proceeds to
// normal processing.
var scenarios = map[Operation]map[string]Disposition{
	OperationSubmit: {
		RefBadRequest:         dispositionBadRequest,
		RefServiceUnavailable: dispositionServiceUnavailable,
	},
	OperationDeclare: {
		RefInternalError: dispositionInternalError,
	},
	OperationFetch: {
		RefInternalError: dispositionInternalError,
	},
}

// Dispatch reports whether the given reference number is reserved for
// the operation, and if so which fixed outcome it selects. Reserved
// paths never consult the report store.
func Dispatch(op Operation, reference string) (Disposition, bool) {
	d, ok := scenarios[op][reference]
	return d, ok
}

// InternalDisposition returns the fixed internal-failure outcome. It is
// also used when an unexpected store failure is converted at the boundary.
func InternalDisposition() Disposition {
	return dispositionInternalError
}
