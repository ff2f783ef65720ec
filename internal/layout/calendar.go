package layout

import (
	"math"
	"time"
)

// DateLayout is the YYYY-MM-DD form used for reference dates and dot dates.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Calendar is the year being drawn and the day to highlight.
type Calendar struct {
	Year      int
	Reference time.Time
}

// NewCalendar returns a calendar for year with ref reduced to its UTC date.
func NewCalendar(year int, ref time.Time) Calendar {
	return Calendar{Year: year, Reference: utcDate(ref)}
}

// IsLeapYear reports whether y is a Gregorian leap year.
func IsLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(y int) int {
	if IsLeapYear(y) {
		return 366
	}
	return 365
}

func (c Calendar) DaysInYear() int { return DaysInYear(c.Year) }

// Jan1 is midnight UTC on the first day of the year.
func (c Calendar) Jan1() time.Time {
	return time.Date(c.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// rawIndex is the signed whole-day offset of the reference date from Jan 1.
func (c Calendar) rawIndex() int64 {
	ref := utcDate(c.Reference)
	return (ref.Unix() - c.Jan1().Unix()) / secondsPerDay
}

// DayIndex is the 0-based day of the reference date, clamped into the year.
func (c Calendar) DayIndex() int {
	raw := c.rawIndex()
	if raw < 0 {
		return 0
	}
	if last := int64(c.DaysInYear() - 1); raw > last {
		return int(last)
	}
	return int(raw)
}

// InYear reports whether the reference date falls inside the year.
func (c Calendar) InYear() bool {
	raw := c.rawIndex()
	return raw >= 0 && raw < int64(c.DaysInYear())
}

func (c Calendar) DaysCompleted() int { return c.DayIndex() + 1 }

func (c Calendar) DaysRemaining() int { return c.DaysInYear() - c.DaysCompleted() }

// PercentComplete is the share of completed days, rounded to one decimal.
func (c Calendar) PercentComplete() float64 {
	return math.Round(float64(c.DaysCompleted())/float64(c.DaysInYear())*1000) / 10
}

// Date returns the calendar date of day i (Jan 1 + i days).
func (c Calendar) Date(i int) time.Time {
	return c.Jan1().AddDate(0, 0, i)
}

// ReferenceString formats the reference date as YYYY-MM-DD.
func (c Calendar) ReferenceString() string {
	return utcDate(c.Reference).Format(DateLayout)
}

func utcDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
