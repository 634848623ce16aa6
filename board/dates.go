package board

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Day-granularity calendar date
// =============================================================================

const dateFormat = "2006-01-02"
const dateFormatUS = "01/02/2006"

// Date is a calendar date with day granularity. Everything in this system
// (assignment boundaries, archive dates, viewing dates) is a whole day;
// hours and time zones never enter the domain.
type Date struct {
	t time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD wire date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	return Date{t: t}, nil
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Comparison
func (d Date) Before(other Date) bool       { return d.t.Before(other.t) }
func (d Date) After(other Date) bool        { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool        { return d.t.Equal(other.t) }
func (d Date) SameOrBefore(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) SameOrAfter(other Date) bool  { return d.After(other) || d.Equal(other) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
func (d Date) IsWorkday() bool { return !d.IsWeekend() }

func (d Date) StartOfMonth() Date { return NewDate(d.Year(), d.Month(), 1) }
func (d Date) EndOfMonth() Date   { return d.StartOfMonth().AddMonths(1).AddDays(-1) }

// String returns the YYYY-MM-DD wire form.
func (d Date) String() string { return d.t.Format(dateFormat) }

// FormatUS returns the MM/DD/YYYY display form used in history lines.
func (d Date) FormatUS() string { return d.t.Format(dateFormatUS) }

// =============================================================================
// DATE RANGE UTILITIES
// =============================================================================

// DaysBetween returns the inclusive day count between two dates:
// DaysBetween(2019-12-01, 2019-12-31) = 31. Both endpoints count.
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours()/24) + 1
}

// HighlightWorkday resolves the calendar-highlight date nearest to d:
//   - a weekend date snaps to the nearest workday (Saturday back to Friday,
//     Sunday forward to Monday)
//   - a result that collides with today shifts by one workday, backward when
//     today falls in the final ISO week of its month, forward otherwise
func HighlightWorkday(d, today Date) Date {
	switch d.Weekday() {
	case time.Saturday:
		d = d.AddDays(-1)
	case time.Sunday:
		d = d.AddDays(1)
	}

	if d.Equal(today) {
		if inFinalISOWeekOfMonth(today) {
			d = prevWorkday(d)
		} else {
			d = nextWorkday(d)
		}
	}
	return d
}

func prevWorkday(d Date) Date {
	d = d.AddDays(-1)
	for !d.IsWorkday() {
		d = d.AddDays(-1)
	}
	return d
}

func nextWorkday(d Date) Date {
	d = d.AddDays(1)
	for !d.IsWorkday() {
		d = d.AddDays(1)
	}
	return d
}

// inFinalISOWeekOfMonth reports whether d shares its ISO week with the last
// day of its month.
func inFinalISOWeekOfMonth(d Date) bool {
	y, w := d.t.ISOWeek()
	ly, lw := d.EndOfMonth().t.ISOWeek()
	return y == ly && w == lw
}
