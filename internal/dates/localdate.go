package dates

import (
	"fmt"
	"math"
	"time"
)

// LocalDate is a calendar day in the user's local timezone, stored as
// YYYY-MM-DD. It carries no time-of-day or zone information; parsing always
// happens in time.Local so day boundaries match what the user sees. Full
// instants (log entry dates, creation timestamps) stay time.Time — the two
// are deliberately distinct types.
type LocalDate string

const layout = "2006-01-02"

// Today returns the local calendar day containing now.
func Today(now time.Time) LocalDate {
	return LocalDate(now.In(time.Local).Format(layout))
}

// Parse validates a YYYY-MM-DD string as a local date.
func Parse(s string) (LocalDate, error) {
	if _, err := time.ParseInLocation(layout, s, time.Local); err != nil {
		return "", fmt.Errorf("parsing local date %q: %w", s, err)
	}
	return LocalDate(s), nil
}

// IsZero reports whether the date is unset.
func (d LocalDate) IsZero() bool { return d == "" }

// Time returns midnight local time on the date. Unset or malformed dates
// map to the zero time.Time.
func (d LocalDate) Time() time.Time {
	if d == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(layout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DayStart returns 00:00:00.000 local on the date, for inclusive range
// lower bounds.
func (d LocalDate) DayStart() time.Time { return d.Time() }

// DayEnd returns 23:59:59.999 local on the date, for inclusive range upper
// bounds.
func (d LocalDate) DayEnd() time.Time {
	return d.Time().AddDate(0, 0, 1).Add(-time.Millisecond)
}

// DaysOpen is the number of days between the date and now, rounded up.
// Same-day yields 1 once any time has elapsed past midnight.
func (d LocalDate) DaysOpen(now time.Time) int {
	diff := now.Sub(d.Time())
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}
