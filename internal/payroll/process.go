package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/adpgen-dev/adpgen/internal/model"
	"github.com/adpgen-dev/adpgen/internal/timesheet"
	"github.com/adpgen-dev/adpgen/internal/tips"
)

// RunInput is everything one processing run consumes. All state is
// transient; a new run builds everything fresh from a new RunInput.
type RunInput struct {
	Shifts []timesheet.ShiftRecord

	// Tips is nil when no ledger was supplied; the run then produces
	// no CREDTIPP rows and no tips diagnostics.
	Tips      *tips.Table
	NameCol   int
	AmountCol int

	Config RunConfig
}

// Stats summarizes a run for display. Dollar totals are computed from
// the generated rows, so they reflect exactly what the file says.
type Stats struct {
	Employees     int
	RegularHours  decimal.Decimal
	TipDollars    decimal.Decimal
	SpreadDollars decimal.Decimal
}

// RunOutput is everything a run produces.
type RunOutput struct {
	Rows       []model.EarningsRow
	Employees  *model.EmployeeSet
	Ledger     *model.TipsMap
	TipsTotal  decimal.Decimal
	Validation Report
	Stats      Stats
}

// Process runs the full pipeline: aggregate shifts, extract the
// ledger, generate earnings rows, validate. It is pure — identical
// inputs produce identical outputs.
func Process(in RunInput) RunOutput {
	employees := timesheet.Aggregate(in.Shifts)

	ledger := model.NewTipsMap()
	tipsTotal := decimal.Zero
	if in.Tips != nil {
		ledger, tipsTotal = tips.Extract(in.Tips, in.NameCol, in.AmountCol)
	}

	gen := Generate(employees, ledger, in.Config)
	report := Validate(employees, ledger, gen.Matched, gen.Unmatched, in.Config.SpreadRate)

	return RunOutput{
		Rows:       gen.Rows,
		Employees:  employees,
		Ledger:     ledger,
		TipsTotal:  tipsTotal,
		Validation: report,
		Stats:      buildStats(employees, gen.Rows),
	}
}

func buildStats(employees *model.EmployeeSet, rows []model.EarningsRow) Stats {
	st := Stats{Employees: employees.Len()}
	for _, emp := range employees.All() {
		st.RegularHours = st.RegularHours.Add(emp.RegularHours)
	}
	for _, row := range rows {
		switch row.Code {
		case model.CodeTipCredit:
			st.TipDollars = st.TipDollars.Add(tips.ParseCurrency(row.Dollars))
		case model.CodeSpread:
			st.SpreadDollars = st.SpreadDollars.Add(tips.ParseCurrency(row.Dollars))
		}
	}
	return st
}
