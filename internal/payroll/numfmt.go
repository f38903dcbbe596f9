package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders hours or dollars the way the import expects:
// rounded to two decimal places with trailing zeros and any trailing
// point stripped, so 5.00 -> "5" and 5.50 -> "5.5". Zero renders as
// the empty string, which keeps zero-valued rows out of the file.
func FormatAmount(d decimal.Decimal) string {
	r := d.Round(2)
	if r.IsZero() {
		return ""
	}
	s := strings.TrimRight(r.StringFixed(2), "0")
	return strings.TrimRight(s, ".")
}
