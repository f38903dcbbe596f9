// Package payroll turns aggregated timesheet data and a tips ledger
// into ADP earnings rows with validation diagnostics.
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/adpgen-dev/adpgen/internal/model"
	"github.com/adpgen-dev/adpgen/internal/tips"
)

// RunConfig carries the fixed parameters stamped on every generated
// row.
type RunConfig struct {
	InstitutionID string
	PeriodStart   string // M/D/YYYY
	PeriodEnd     string // M/D/YYYY
	PayFrequency  string
	RateCode      string
	SpreadRate    decimal.Decimal // dollars per spread-of-hours credit
}

// GenerateResult is the output of row generation: the ordered rows,
// the ledger keys claimed by employees, and the keys nobody claimed.
type GenerateResult struct {
	Rows      []model.EarningsRow
	Matched   *model.TipsMap
	Unmatched []string
}

// Generate walks employees in aggregation order and emits, per
// employee, whichever earnings rows apply: REG and OVT when the
// respective hours are positive, CREDTIPP when the ledger has a
// positive amount for the employee's name, OTH2 when spread credits
// are positive. Matched ledger keys are claimed exactly once; the
// residue comes back in ledger order.
func Generate(employees *model.EmployeeSet, ledger *model.TipsMap, cfg RunConfig) GenerateResult {
	matched := model.NewTipsMap()
	var rows []model.EarningsRow

	for _, emp := range employees.All() {
		empID := emp.EmployeeNumber

		if emp.RegularHours.IsPositive() {
			rows = append(rows, cfg.row(empID, model.CodeRegular, FormatAmount(emp.RegularHours), ""))
		}

		if emp.OvertimeHours.IsPositive() {
			rows = append(rows, cfg.row(empID, model.CodeOvertime, FormatAmount(emp.OvertimeHours), ""))
		}

		if key, amount, ok := tips.Match(emp.FirstName, emp.LastName, ledger); ok && amount.IsPositive() {
			rows = append(rows, cfg.row(empID, model.CodeTipCredit, "", FormatAmount(amount)))
			if !matched.Has(key) {
				matched.Add(key, amount)
			}
			emp.MatchedTip = amount
		}

		if emp.SpreadCredits.IsPositive() {
			dollars := emp.SpreadCredits.Mul(cfg.SpreadRate).Round(2)
			rows = append(rows, cfg.row(empID, model.CodeSpread, "", FormatAmount(dollars)))
		}
	}

	var unmatched []string
	for _, key := range ledger.Keys() {
		if !matched.Has(key) {
			unmatched = append(unmatched, key)
		}
	}

	return GenerateResult{Rows: rows, Matched: matched, Unmatched: unmatched}
}

func (c RunConfig) row(empID, code, hours, dollars string) model.EarningsRow {
	return model.EarningsRow{
		InstitutionID: c.InstitutionID,
		PayFrequency:  c.PayFrequency,
		PeriodStart:   c.PeriodStart,
		PeriodEnd:     c.PeriodEnd,
		EmployeeID:    empID,
		Code:          code,
		Hours:         hours,
		Dollars:       dollars,
		RateCode:      c.RateCode,
	}
}
