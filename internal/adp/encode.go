// Package adp serializes earnings rows into the ADP generic import
// format.
package adp

import (
	"fmt"
	"io"
	"strings"

	"github.com/adpgen-dev/adpgen/internal/model"
	"github.com/adpgen-dev/adpgen/internal/period"
)

// Headers is the fixed interchange column-header row.
var Headers = []string{
	"ADP IID", "Pay Frequency", "Pay Period Start", "Pay Period End",
	"Employee Id", "Earnings Code", "Pay Hours", "Dollars",
	"Separate Check", "Department", "Rate Code",
}

// genericMarker opens every import file; the receiving system keys on
// it to recognize the layout version.
const genericMarker = "##GENERIC## V1.0"

const bom = "\uFEFF"

// Encode writes rows in the generic import layout: a UTF-8 BOM, the
// marker line padded to 11 fields, the column headers, then one line
// per row. Lines are joined with CRLF and the last line carries no
// terminator.
func Encode(w io.Writer, rows []model.EarningsRow) error {
	lines := make([]string, 0, len(rows)+2)

	marker := make([]string, len(Headers))
	marker[0] = genericMarker
	lines = append(lines, strings.Join(marker, ","))
	lines = append(lines, strings.Join(Headers, ","))

	for _, row := range rows {
		fields := row.Fields()
		escaped := make([]string, len(fields))
		for i, f := range fields {
			escaped[i] = escapeField(f)
		}
		lines = append(lines, strings.Join(escaped, ","))
	}

	_, err := io.WriteString(w, bom+strings.Join(lines, "\r\n"))
	return err
}

// escapeField quotes a field only when it contains a comma, quote, or
// newline, doubling embedded quotes. Empty fields stay empty.
func escapeField(s string) string {
	if !strings.ContainsAny(s, `",`+"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Filename builds the import file name for a location and pay week,
// e.g. ADP_Import_West_Village_2025-12-01.csv. Non-alphanumerics in
// the location become underscores.
func Filename(location string, wk period.Week) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, location)
	return fmt.Sprintf("ADP_Import_%s_%s.csv", slug, wk.Slug())
}
