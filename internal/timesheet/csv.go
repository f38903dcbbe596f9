// Package timesheet reads Square shift exports and aggregates them
// per employee.
package timesheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Column names in the Square shift export.
const (
	colEmployeeNumber = "Employee number"
	colFirstName      = "First name"
	colLastName       = "Last name"
	colRegularHours   = "Regular hours"
	colOvertimeHours  = "Overtime hours"
	colSpreadCredit   = "Spread of hours credit"
	colClockinDate    = "Clockin date"
	colLocation       = "Location"
)

// RequiredColumns must be present in the export header. Their absence
// is a structural error; the name columns are tolerated missing and
// read as blank.
var RequiredColumns = []string{
	colRegularHours,
	colOvertimeHours,
	colSpreadCredit,
	colClockinDate,
}

// ShiftRecord is one shift row, typed and validated at ingestion.
// Numeric cells that fail to parse come through as zero; clock-in
// dates that fail to parse come through as the zero time.
type ShiftRecord struct {
	EmployeeNumber string
	FirstName      string
	LastName       string
	RegularHours   decimal.Decimal
	OvertimeHours  decimal.Decimal
	SpreadCredits  decimal.Decimal
	ClockinDate    time.Time
	Location       string
}

// Parse reads a Square shift export CSV. It fails only on structural
// problems: unreadable CSV, an empty file, or missing required
// columns.
func Parse(r io.Reader) ([]ShiftRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading timesheet CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("timesheet appears to be empty")
	}

	idx := headerIndex(records[0])
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("timesheet is missing column: %q", col)
		}
	}

	shifts := make([]ShiftRecord, 0, len(records)-1)
	for _, rec := range records[1:] {
		shifts = append(shifts, ShiftRecord{
			EmployeeNumber: strings.TrimSpace(cell(rec, idx, colEmployeeNumber)),
			FirstName:      strings.TrimSpace(cell(rec, idx, colFirstName)),
			LastName:       strings.TrimSpace(cell(rec, idx, colLastName)),
			RegularHours:   parseHours(cell(rec, idx, colRegularHours)),
			OvertimeHours:  parseHours(cell(rec, idx, colOvertimeHours)),
			SpreadCredits:  parseHours(cell(rec, idx, colSpreadCredit)),
			ClockinDate:    parseClockinDate(cell(rec, idx, colClockinDate)),
			Location:       strings.TrimSpace(cell(rec, idx, colLocation)),
		})
	}
	return shifts, nil
}

// headerIndex maps trimmed header names to their column positions.
// Exports saved from Excel often lead with a UTF-8 BOM; it is stripped
// so the first column still matches by name.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

// cell returns the raw cell under a named column, or "" when the
// column is absent or the row is short.
func cell(rec []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// parseHours parses a numeric cell, treating anything unparsable as
// zero. Manual timesheet entry is messy; a bad cell degrades the row,
// never the run.
func parseHours(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseClockinDate parses Square's M/D/YY or M/D/YYYY clock-in dates.
// Returns the zero time when the cell does not parse.
func parseClockinDate(s string) time.Time {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}
	}
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
