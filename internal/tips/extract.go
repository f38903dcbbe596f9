package tips

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/adpgen-dev/adpgen/internal/model"
)

// Extract folds ledger rows into a TipsMap keyed by normalized name,
// plus the ledger-wide total. Rows with a blank name or a non-positive
// amount are skipped; rows sharing a normalized name sum together. The
// total covers every included row, independent of whether the name
// later matches an employee.
func Extract(t *Table, nameCol, amountCol int) (*model.TipsMap, decimal.Decimal) {
	tm := model.NewTipsMap()
	total := decimal.Zero

	for _, row := range t.Rows {
		name := strings.TrimSpace(cellAt(row, nameCol))
		if name == "" {
			continue
		}
		amount := ParseCurrency(cellAt(row, amountCol))
		if !amount.IsPositive() {
			continue
		}
		tm.Add(model.NormalizeName(name), amount)
		total = total.Add(amount)
	}

	return tm, total
}

// cellAt returns the cell at col, or "" when the row is short or col
// is out of range. Ledger rows are often ragged.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// ParseCurrency parses a dollar cell, tolerating $ signs, thousands
// separators, and stray whitespace. Unparsable values come back zero.
func ParseCurrency(s string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if r == '$' || r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
