package dto

import "github.com/openisa/nps-stub/internal/domain/model"

// SubmitReturnsRequest holds the input for a monthly returns submission.
// The submitted payload itself is accepted without inspection.
type SubmitReturnsRequest struct {
	Reference string
	TaxYear   string
	Month     string
}

// SubmitDeclarationRequest holds the input for a declaration submission.
type SubmitDeclarationRequest struct {
	Reference string
	TaxYear   string
	Month     string
}

// FetchReportRequest holds the input for a paginated report fetch.
// Skip is a zero-based page index; Take is the page size.
type FetchReportRequest struct {
	Reference string
	TaxYear   string
	Month     string
	Skip      int
	Take      int
}

// FetchReportResponse holds one page of return results together with the
// full-report total.
type FetchReportResponse struct {
	TotalRecords  int                  `json:"totalRecords"`
	ReturnResults []model.ReturnResult `json:"returnResults"`
}
