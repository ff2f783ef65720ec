package layout

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{
		2024: true,
		2023: false,
		2000: true,
		1900: false,
		2100: false,
		2400: true,
		1996: true,
	}
	for year, want := range cases {
		if got := IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
		wantDays := 365
		if want {
			wantDays = 366
		}
		if got := DaysInYear(year); got != wantDays {
			t.Errorf("DaysInYear(%d) = %d, want %d", year, got, wantDays)
		}
	}
}

func TestCalendarFirstDay(t *testing.T) {
	c := NewCalendar(2024, date(t, "2024-01-01"))
	if c.DayIndex() != 0 {
		t.Errorf("day index: got %d", c.DayIndex())
	}
	if c.DaysCompleted() != 1 {
		t.Errorf("days completed: got %d", c.DaysCompleted())
	}
	if c.DaysRemaining() != 365 {
		t.Errorf("days remaining: got %d", c.DaysRemaining())
	}
	if c.PercentComplete() != 0.3 {
		t.Errorf("percent: got %v", c.PercentComplete())
	}
	if !c.InYear() {
		t.Error("Jan 1 reported outside the year")
	}
}

func TestCalendarLastDay(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		c := NewCalendar(year, time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
		if got, want := c.DayIndex(), DaysInYear(year)-1; got != want {
			t.Errorf("%d: day index %d, want %d", year, got, want)
		}
		if c.DaysRemaining() != 0 {
			t.Errorf("%d: days remaining %d", year, c.DaysRemaining())
		}
		if c.PercentComplete() != 100 {
			t.Errorf("%d: percent %v", year, c.PercentComplete())
		}
	}
}

func TestCalendarClampsOutsideYear(t *testing.T) {
	before := NewCalendar(2024, date(t, "2023-06-15"))
	if before.DayIndex() != 0 {
		t.Errorf("before: day index %d", before.DayIndex())
	}
	if before.InYear() {
		t.Error("before: reported in year")
	}

	after := NewCalendar(2024, date(t, "2025-02-01"))
	if after.DayIndex() != 365 {
		t.Errorf("after: day index %d", after.DayIndex())
	}
	if after.DaysRemaining() != 0 {
		t.Errorf("after: remaining %d", after.DaysRemaining())
	}

	// Centuries away must not overflow.
	far := NewCalendar(2024, date(t, "2999-01-01"))
	if far.DayIndex() != 365 {
		t.Errorf("far: day index %d", far.DayIndex())
	}
}

func TestCalendarReferenceUsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 2024-03-02 05:00 at +09:00 is still 2024-03-01 in UTC.
	ref := time.Date(2024, time.March, 2, 5, 0, 0, 0, loc)
	c := NewCalendar(2024, ref)
	if got := c.ReferenceString(); got != "2024-03-01" {
		t.Errorf("reference: got %s", got)
	}
	if c.DayIndex() != 60 {
		t.Errorf("day index: got %d", c.DayIndex())
	}
}

func TestPercentCompleteRange(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		c := NewCalendar(year, time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC))
		for i := 0; i < DaysInYear(year); i++ {
			c.Reference = c.Date(i)
			p := c.PercentComplete()
			if p < 0.1 || p > 100 {
				t.Fatalf("%d day %d: percent %v out of range", year, i, p)
			}
		}
	}
}

func TestCalendarDate(t *testing.T) {
	c := NewCalendar(2024, date(t, "2024-01-01"))
	if got := c.Date(59).Format(DateLayout); got != "2024-02-29" {
		t.Errorf("day 59: got %s", got)
	}
	if got := c.Date(365).Format(DateLayout); got != "2024-12-31" {
		t.Errorf("day 365: got %s", got)
	}
}
