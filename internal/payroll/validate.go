package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adpgen-dev/adpgen/internal/model"
)

// Warning flags a data-quality problem for human review.
type Warning struct {
	Text   string
	Detail string
}

// Report collects advisory diagnostics for one run. It never blocks
// output generation — the file is always produced and discrepancies
// are left to human judgment.
type Report struct {
	Warnings []Warning
	Infos    []string
}

// Validate cross-checks the aggregation and matching results: missing
// employee ids, the matched-tips total, unmatched ledger names, and
// the spread-of-hours summary.
func Validate(employees *model.EmployeeSet, ledger, matched *model.TipsMap, unmatched []string, spreadRate decimal.Decimal) Report {
	var rep Report

	var noID []string
	for _, emp := range employees.All() {
		if emp.EmployeeNumber == "" {
			noID = append(noID, emp.FullName())
		}
	}
	if len(noID) > 0 {
		rep.Warnings = append(rep.Warnings, Warning{
			Text:   fmt.Sprintf("%d employee(s) are missing an employee number; the Employee Id column will be blank for:", len(noID)),
			Detail: strings.Join(noID, ", "),
		})
	}

	if ledger.Len() > 0 {
		if matched.Len() > 0 {
			rep.Infos = append(rep.Infos, fmt.Sprintf(
				"CREDTIPP total: $%s across %d recognized employee(s)",
				matched.Total().StringFixed(2), matched.Len()))
		}
		if len(unmatched) > 0 {
			rep.Warnings = append(rep.Warnings, Warning{
				Text:   fmt.Sprintf("%d name(s) in the tips file could not be matched to any timesheet employee; no CREDTIPP row was created for:", len(unmatched)),
				Detail: strings.Join(unmatched, ", "),
			})
		}
	}

	spreadTotal := decimal.Zero
	spreadCount := 0
	for _, emp := range employees.All() {
		if emp.SpreadCredits.IsPositive() {
			spreadCount++
			spreadTotal = spreadTotal.Add(emp.SpreadCredits)
		}
	}
	if spreadCount > 0 {
		dollars := spreadTotal.Mul(spreadRate).Round(2)
		rep.Infos = append(rep.Infos, fmt.Sprintf(
			"Spread hours (OTH2): %s credit(s) across %d employee(s) = $%s",
			spreadTotal.String(), spreadCount, dollars.StringFixed(2)))
	}

	return rep
}
