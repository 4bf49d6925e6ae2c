package service

import (
	"fmt"

	"github.com/openisa/nps-stub/internal/domain/model"
)

// PageNotFoundError reports that the requested page index does not exist
// within the report. It carries the requested index for diagnostics.
type PageNotFoundError struct {
	Skip int
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("No page %d found", e.Skip)
}

// Paginate computes one page of a monthly report.
//
// skip is a zero-based page index, not a record offset; take is the page
// size. The slice covers [skip*take, min(skip*take+take, total)). A start
// at or beyond the total yields PageNotFoundError, which makes a report
// with zero results have no valid page at any index. take of zero against
// a non-empty report is a valid, empty page.
//
// The returned page owns a fresh slice and reports the unsliced total.
func Paginate(report model.MonthlyReport, skip, take int) (model.ReportPage, error) {
	// Negative inputs are rejected at the transport edge; no page exists
	// for them here either.
	if skip < 0 || take < 0 {
		return model.ReportPage{}, &PageNotFoundError{Skip: skip}
	}

	total := report.TotalRecords()
	start := skip * take
	end := start + take
	if end > total {
		end = total
	}

	if start >= total {
		return model.ReportPage{}, &PageNotFoundError{Skip: skip}
	}

	results := make([]model.ReturnResult, end-start)
	copy(results, report.Results[start:end])

	return model.ReportPage{
		TotalRecords: total,
		Results:      results,
	}, nil
}
