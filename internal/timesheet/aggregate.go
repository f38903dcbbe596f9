package timesheet

import (
	"strings"

	"github.com/adpgen-dev/adpgen/internal/model"
	"github.com/adpgen-dev/adpgen/internal/period"
)

// Aggregate folds shift records into one accumulator per employee.
// The key is the trimmed employee number when present, otherwise the
// normalized full name; records where both are blank are skipped.
// Every matching record adds its numeric fields into the accumulator;
// the first occurrence supplies the employee's names.
func Aggregate(records []ShiftRecord) *model.EmployeeSet {
	set := model.NewEmployeeSet()

	for _, rec := range records {
		empNum := strings.TrimSpace(rec.EmployeeNumber)
		key := empNum
		if key == "" {
			key = model.NormalizeName(rec.FirstName + " " + rec.LastName)
		}
		if key == "" {
			continue
		}

		emp := set.Get(key)
		if emp == nil {
			emp = &model.Employee{
				EmployeeNumber: empNum,
				FirstName:      strings.TrimSpace(rec.FirstName),
				LastName:       strings.TrimSpace(rec.LastName),
			}
			set.Add(key, emp)
		}

		emp.RegularHours = emp.RegularHours.Add(rec.RegularHours)
		emp.OvertimeHours = emp.OvertimeHours.Add(rec.OvertimeHours)
		emp.SpreadCredits = emp.SpreadCredits.Add(rec.SpreadCredits)
	}

	return set
}

// FilterWeek keeps records whose clock-in date falls inside the pay
// week. Records with an unparsable date are dropped.
func FilterWeek(records []ShiftRecord, wk period.Week) []ShiftRecord {
	end := wk.End()
	var out []ShiftRecord
	for _, rec := range records {
		if rec.ClockinDate.IsZero() {
			continue
		}
		if rec.ClockinDate.Before(wk.Start) || rec.ClockinDate.After(end) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Locations returns the distinct non-blank Location values across the
// records, in first-seen order. More than one usually means the wrong
// export was uploaded.
func Locations(records []ShiftRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range records {
		if rec.Location == "" || seen[rec.Location] {
			continue
		}
		seen[rec.Location] = true
		out = append(out, rec.Location)
	}
	return out
}
