package dateutil

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for local calendar dates.
const DateFormat = "2006-01-02"

// MonthFormat is the wire format for visible-month anchors.
const MonthFormat = "2006-01"

// Calendar converts between instants and local calendar days in a fixed
// timezone. All date/timezone semantics of the service live here.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a Calendar for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewCalendar(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// StartOfDay returns midnight at the start of the given instant's day.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// NextDay returns midnight of the day after the given instant's day.
// An event created from a date-only draft spans [StartOfDay, NextDay).
func (c *Calendar) NextDay(t time.Time) time.Time {
	return c.StartOfDay(t).AddDate(0, 0, 1)
}

// SameDay reports whether two instants fall on the same local calendar day.
func (c *Calendar) SameDay(a, b time.Time) bool {
	return c.LocalDate(a) == c.LocalDate(b)
}

// LocalDate returns the local calendar day of an instant as YYYY-MM-DD.
func (c *Calendar) LocalDate(t time.Time) string {
	return t.In(c.location).Format(DateFormat)
}

// ParseDate parses a YYYY-MM-DD string into local midnight of that day.
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseMonth parses a YYYY-MM anchor into local midnight of the 1st.
func (c *Calendar) ParseMonth(s string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthFormat, s, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return t, nil
}

// MonthWindow returns the [start, end) window covering the anchor's month.
func (c *Calendar) MonthWindow(anchor time.Time) (time.Time, time.Time) {
	anchor = anchor.In(c.location)
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, c.location)
	return start, start.AddDate(0, 1, 0)
}

// BeforeToday reports whether t falls on a local day strictly before now's.
func (c *Calendar) BeforeToday(t, now time.Time) bool {
	return c.StartOfDay(t).Before(c.StartOfDay(now))
}
