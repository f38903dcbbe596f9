// Package period models the Monday-through-Sunday pay week.
package period

import (
	"fmt"
	"time"
)

const startLayout = "2006-01-02"

// Week is one pay period. Start is always a Monday.
type Week struct {
	Start time.Time
}

// ParseWeekStart parses a YYYY-MM-DD pay-week start date and rejects
// anything that is not a Monday.
func ParseWeekStart(s string) (Week, error) {
	t, err := time.Parse(startLayout, s)
	if err != nil {
		return Week{}, fmt.Errorf("parsing week start %q: %w", s, err)
	}
	if t.Weekday() != time.Monday {
		return Week{}, fmt.Errorf("week start %s is a %s; pay weeks start on Monday", s, t.Weekday())
	}
	return Week{Start: t}, nil
}

// End returns the Sunday that closes the week.
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, 6)
}

// StartADP renders the period start as M/D/YYYY.
func (w Week) StartADP() string {
	return FormatADP(w.Start)
}

// EndADP renders the period end as M/D/YYYY.
func (w Week) EndADP() string {
	return FormatADP(w.End())
}

// Slug renders the period start as YYYY-MM-DD for output filenames.
func (w Week) Slug() string {
	return w.Start.Format(startLayout)
}

// FormatADP renders a date the way the import expects: M/D/YYYY with
// no zero padding.
func FormatADP(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}
