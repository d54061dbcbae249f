package entity

import (
	"FinTrack/internal/api/report"
	"time"
)

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Period is a resolved [Start, End] timestamp range scoping a report. It is
// built per request and never persisted. All boundaries are UTC.
type Period struct {
	Label string
	Start time.Time
	End   time.Time
	Year  int
	Month int
}

// ResolvePeriod turns a symbolic period token into a concrete range ending at
// now. An unrecognized token falls back to a trailing 30-day window; that is
// deliberate, callers treat any token as a best-effort hint rather than an
// error.
func ResolvePeriod(token string, now time.Time) Period {
	now = now.UTC()

	var start time.Time
	switch token {
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	case PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		start = now.AddDate(0, 0, -30)
	}

	return Period{
		Label: token,
		Start: start,
		End:   now,
	}
}

// AllTime spans from the zero time through now, covering a user's entire
// transaction history.
func AllTime(now time.Time) Period {
	return Period{
		Label: "all",
		End:   now.UTC(),
	}
}

// MonthPeriod resolves an explicit year/month pair into the full calendar
// month, first day 00:00:00 through last day 23:59:59 inclusive.
func MonthPeriod(year int, month int) (Period, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return Period{}, report.ErrInvalidPeriod
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month), DaysInMonth(year, month), 23, 59, 59, 0, time.UTC)

	return Period{
		Label: PeriodMonth,
		Start: start,
		End:   end,
		Year:  year,
		Month: month,
	}, nil
}

// DaysInMonth handles month length including leap years: day 0 of the next
// month normalizes to the last day of the requested one.
func DaysInMonth(year int, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
