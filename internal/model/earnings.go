package model

// Earnings codes emitted per employee, in the order they appear in the
// output for a single employee.
const (
	CodeRegular   = "REG"
	CodeOvertime  = "OVT"
	CodeTipCredit = "CREDTIPP"
	CodeSpread    = "OTH2"
)

// EarningsRow is one line of the ADP generic import: 11 fields, all
// strings, dates preformatted. Exactly one of Hours and Dollars is set
// depending on the earnings code; SeparateCheck and Department stay
// empty.
type EarningsRow struct {
	InstitutionID string
	PayFrequency  string
	PeriodStart   string
	PeriodEnd     string
	EmployeeID    string
	Code          string
	Hours         string
	Dollars       string
	SeparateCheck string
	Department    string
	RateCode      string
}

// Fields returns the row's fields in interchange column order.
func (r EarningsRow) Fields() []string {
	return []string{
		r.InstitutionID,
		r.PayFrequency,
		r.PeriodStart,
		r.PeriodEnd,
		r.EmployeeID,
		r.Code,
		r.Hours,
		r.Dollars,
		r.SeparateCheck,
		r.Department,
		r.RateCode,
	}
}
