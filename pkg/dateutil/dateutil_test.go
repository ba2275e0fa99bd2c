package dateutil_test

import (
	"testing"
	"time"

	"ai-calendar-assistant/pkg/dateutil"
)

func TestNewCalendar(t *testing.T) {
	_, err := dateutil.NewCalendar("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid calendar: %v", err)
	}

	_, err = dateutil.NewCalendar("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestStartOfDayAndNextDay(t *testing.T) {
	cal, _ := dateutil.NewCalendar("UTC")
	at := time.Date(2025, 3, 5, 15, 30, 45, 0, time.UTC)

	start := cal.StartOfDay(at)
	if !start.Equal(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDay = %v", start)
	}

	next := cal.NextDay(at)
	if !next.Equal(time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("NextDay = %v", next)
	}
	if got := next.Sub(start); got != 24*time.Hour {
		t.Errorf("day span = %v, want 24h", got)
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	cal, _ := dateutil.NewCalendar("UTC")
	morning := time.Date(2025, 3, 5, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 3, 5, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)

	if !cal.SameDay(morning, night) {
		t.Errorf("expected %v and %v on the same day", morning, night)
	}
	if cal.SameDay(night, nextDay) {
		t.Errorf("expected %v and %v on different days", night, nextDay)
	}
}

func TestSameDayAcrossTimezone(t *testing.T) {
	cal, _ := dateutil.NewCalendar("Asia/Ho_Chi_Minh")
	// 2025-03-05 20:00 UTC is already 2025-03-06 03:00 in UTC+7.
	utcEvening := time.Date(2025, 3, 5, 20, 0, 0, 0, time.UTC)
	localMorning := time.Date(2025, 3, 6, 8, 0, 0, 0, cal.Location())

	if !cal.SameDay(utcEvening, localMorning) {
		t.Errorf("expected same local day for %v and %v", utcEvening, localMorning)
	}
	if cal.LocalDate(utcEvening) != "2025-03-06" {
		t.Errorf("LocalDate = %s, want 2025-03-06", cal.LocalDate(utcEvening))
	}
}

func TestParseDate(t *testing.T) {
	cal, _ := dateutil.NewCalendar("UTC")

	got, err := cal.ParseDate("2025-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate = %v", got)
	}

	if _, err := cal.ParseDate("not-a-date"); err == nil {
		t.Errorf("expected error for malformed date")
	}
}

func TestMonthWindow(t *testing.T) {
	cal, _ := dateutil.NewCalendar("UTC")
	anchor := time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC)

	start, end := cal.MonthWindow(anchor)
	if !start.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("window start = %v", start)
	}
	if !end.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("window end = %v", end)
	}
}

func TestMonthWindowLeapFebruary(t *testing.T) {
	cal, _ := dateutil.NewCalendar("UTC")

	start, end := cal.MonthWindow(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	if got := end.Sub(start); got != 29*24*time.Hour {
		t.Errorf("leap February window = %v, want 29 days", got)
	}
}

func TestBeforeToday(t *testing.T) {
	cal, _ := dateutil.NewCalendar("UTC")
	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	if !cal.BeforeToday(now.AddDate(0, 0, -1), now) {
		t.Errorf("yesterday should be before today")
	}
	// Earlier the same day is not "before today".
	if cal.BeforeToday(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), now) {
		t.Errorf("same day should not be before today")
	}
	if cal.BeforeToday(now.AddDate(0, 0, 1), now) {
		t.Errorf("tomorrow should not be before today")
	}
}
