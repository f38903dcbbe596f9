package tips

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adpgen-dev/adpgen/internal/model"
)

// Match resolves an employee's name to a ledger entry. Tip-sheet names
// are free text, so three normalized forms are tried as exact keys in
// priority order, then a substring scan over the ledger keys.
//
// Candidates shorter than three characters are discarded to keep a
// single initial from matching half the ledger. The substring fallback
// takes the first key, in ledger order, containing both name tokens;
// "anna" will land inside "susanna". That is accepted — collisions
// surface in the validation report for human review rather than being
// second-guessed here.
func Match(firstName, lastName string, tm *model.TipsMap) (string, decimal.Decimal, bool) {
	fn := model.NormalizeName(firstName)
	ln := model.NormalizeName(lastName)

	candidates := []string{
		model.NormalizeName(fn + " " + ln),
		model.NormalizeName(ln + " " + fn),
		model.NormalizeName(ln + ", " + fn),
	}
	for _, c := range candidates {
		if len(c) <= 2 {
			continue
		}
		if amt, ok := tm.Amount(c); ok {
			return c, amt, true
		}
	}

	if fn != "" && ln != "" {
		for _, key := range tm.Keys() {
			if strings.Contains(key, fn) && strings.Contains(key, ln) {
				amt, _ := tm.Amount(key)
				return key, amt, true
			}
		}
	}

	return "", decimal.Zero, false
}
