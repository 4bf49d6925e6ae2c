package model

// ReportKey identifies one monthly report: the submitting ISA manager,
// the tax year (e.g. "2025-26") and the month (e.g. "APR").
type ReportKey struct {
	Reference string
	TaxYear   string
	Month     string
}

// IssueIdentified describes a problem flagged against a single return result.
type IssueIdentified struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ReturnResult is one account-level record within a monthly report.
// The stub never inspects its content; results are only counted and sliced.
type ReturnResult struct {
	AccountNumber   string          `json:"accountNumber"`
	NINO            string          `json:"nino"`
	IssueIdentified IssueIdentified `json:"issueIdentified"`
}

// MonthlyReport is the full, ordered set of return results for one
// ISA manager, tax year and month. It is immutable once retrieved from
// the store; the domain layer only reads and slices it.
type MonthlyReport struct {
	Key     ReportKey      `json:"-"`
	Results []ReturnResult `json:"returnResults"`
}

// TotalRecords returns the number of results in the full report.
func (r MonthlyReport) TotalRecords() int {
	return len(r.Results)
}

// ReportPage is one bounded page of a monthly report. TotalRecords is
// always the size of the full report, not the slice.
type ReportPage struct {
	TotalRecords int            `json:"totalRecords"`
	Results      []ReturnResult `json:"returnResults"`
}
