package testutil

import (
	"fmt"

	"github.com/openisa/nps-stub/internal/domain/model"
)

// Well-known reference numbers for deterministic testing. The Z14/Z15
// values are the reserved scenario selectors; the others are ordinary.
const (
	RefNormal             = "Z1111"
	RefBadRequest         = "Z1400"
	RefInternalError      = "Z1500"
	RefServiceUnavailable = "Z1503"

	TaxYear = "2025-26"
	Month   = "APR"
)

// Report builds a monthly report with n synthetic return results for the
// given reference, using the standard test tax year and month.
func Report(reference string, n int) model.MonthlyReport {
	report := model.MonthlyReport{
		Key: model.ReportKey{Reference: reference, TaxYear: TaxYear, Month: Month},
	}
	for i := 0; i < n; i++ {
		report.Results = append(report.Results, model.ReturnResult{
			AccountNumber: fmt.Sprintf("ISA%07d", i+1),
			NINO:          fmt.Sprintf("QQ%06dC", i+1),
			IssueIdentified: model.IssueIdentified{
				Code:    "NINO_MISMATCH",
				Message: "NINO does not match the subscriber record",
			},
		})
	}
	return report
}
