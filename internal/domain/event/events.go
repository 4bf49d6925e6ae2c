package event

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent is the interface all audit events must implement.
type AuditEvent interface {
	EventID() uuid.UUID
	EventType() string
	Reference() string
	OccurredAt() time.Time
}

// ReturnsSubmitted is emitted when a monthly returns submission is accepted.
type ReturnsSubmitted struct {
	ID           uuid.UUID `json:"id"`
	ISAReference string    `json:"isa_manager_reference"`
	TaxYear      string    `json:"tax_year"`
	Month        string    `json:"month"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewReturnsSubmitted creates a ReturnsSubmitted event stamped with the current time.
func NewReturnsSubmitted(reference, taxYear, month string) ReturnsSubmitted {
	return ReturnsSubmitted{
		ID:           uuid.New(),
		ISAReference: reference,
		TaxYear:      taxYear,
		Month:        month,
		Timestamp:    time.Now().UTC(),
	}
}

func (e ReturnsSubmitted) EventID() uuid.UUID { return e.ID }
func (e ReturnsSubmitted) EventType() string { return "returns.submitted" }
func (e ReturnsSubmitted) Reference() string { return e.ISAReference }
func (e ReturnsSubmitted) OccurredAt() time.Time { return e.Timestamp }

// DeclarationSubmitted is emitted when a declaration is accepted.
type DeclarationSubmitted struct {
	ID           uuid.UUID `json:"id"`
	ISAReference string    `json:"isa_manager_reference"`
	TaxYear      string    `json:"tax_year"`
	Month        string    `json:"month"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewDeclarationSubmitted creates a DeclarationSubmitted event stamped with the current time.
func NewDeclarationSubmitted(reference, taxYear, month string) DeclarationSubmitted {
	return DeclarationSubmitted{
		ID:           uuid.New(),
		ISAReference: reference,
		TaxYear:      taxYear,
		Month:        month,
		Timestamp:    time.Now().UTC(),
	}
}

func (e DeclarationSubmitted) EventID() uuid.UUID { return e.ID }
func (e DeclarationSubmitted) EventType() string { return "declaration.submitted" }
func (e DeclarationSubmitted) Reference() string { return e.ISAReference }
func (e DeclarationSubmitted) OccurredAt() time.Time { return e.Timestamp }

// ReportRetrieved is emitted when a page of return results is served.
type ReportRetrieved struct {
	ID           uuid.UUID `json:"id"`
	ISAReference string    `json:"isa_manager_reference"`
	TaxYear      string    `json:"tax_year"`
	Month        string    `json:"month"`
	Page         int       `json:"page"`
	Records      int       `json:"records"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewReportRetrieved creates a ReportRetrieved event stamped with the current time.
func NewReportRetrieved(reference, taxYear, month string, page, records int) ReportRetrieved {
	return ReportRetrieved{
		ID:           uuid.New(),
		ISAReference: reference,
		TaxYear:      taxYear,
		Month:        month,
		Page:         page,
		Records:      records,
		Timestamp:    time.Now().UTC(),
	}
}

func (e ReportRetrieved) EventID() uuid.UUID { return e.ID }
func (e ReportRetrieved) EventType() string { return "report.retrieved" }
func (e ReportRetrieved) Reference() string { return e.ISAReference }
func (e ReportRetrieved) OccurredAt() time.Time { return e.Timestamp }
