package intent

import (
	"testing"
	"time"
)

func TestExtractAddEvent(t *testing.T) {
	utc := time.UTC
	policy := PolicyV1()

	tcs := map[string]struct {
		message   string
		wantOK    bool
		wantTitle string
		wantStart time.Time
	}{
		"full phrase with minutes": {
			message:   "add event Lunch with Sarah on March 5, 2025 at 2:30pm",
			wantOK:    true,
			wantTitle: "Lunch with Sarah",
			wantStart: time.Date(2025, time.March, 5, 14, 30, 0, 0, utc),
		},
		"bare morning hour stays am": {
			message:   "add event Standup on March 5, 2025 at 9am",
			wantOK:    true,
			wantTitle: "Standup",
			wantStart: time.Date(2025, time.March, 5, 9, 0, 0, 0, utc),
		},
		"noon keeps twelve": {
			message:   "add event Lunch on March 5, 2025 at 12pm",
			wantOK:    true,
			wantTitle: "Lunch",
			wantStart: time.Date(2025, time.March, 5, 12, 0, 0, 0, utc),
		},
		"midnight wraps to zero": {
			message:   "add event Countdown on December 31, 2025 at 12am",
			wantOK:    true,
			wantTitle: "Countdown",
			wantStart: time.Date(2025, time.December, 31, 0, 0, 0, 0, utc),
		},
		"no clock time": {
			message:   "add event Holiday on July 4, 2026",
			wantOK:    true,
			wantTitle: "Holiday",
			wantStart: time.Date(2026, time.July, 4, 0, 0, 0, 0, utc),
		},
		"date without comma": {
			message:   "add event Review on March 5 2025",
			wantOK:    true,
			wantTitle: "Review",
			wantStart: time.Date(2025, time.March, 5, 0, 0, 0, 0, utc),
		},
		"lowercase month": {
			message:   "add event Demo on march 5, 2025",
			wantOK:    true,
			wantTitle: "Demo",
			wantStart: time.Date(2025, time.March, 5, 0, 0, 0, 0, utc),
		},
		"empty title falls back": {
			message:   "add event on March 5, 2025",
			wantOK:    true,
			wantTitle: "New Event",
			wantStart: time.Date(2025, time.March, 5, 0, 0, 0, 0, utc),
		},
		"general query falls through": {
			message: "what's on my calendar today",
			wantOK:  false,
		},
		"add without event falls through": {
			message: "add Lunch on March 5, 2025",
			wantOK:  false,
		},
		"missing year falls through": {
			message: "add event Lunch on March 5",
			wantOK:  false,
		},
		"invalid month word falls through": {
			message: "add event Lunch on Marchtember 5, 2025",
			wantOK:  false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, ok := policy.Extract(tc.message, utc)
			if ok != tc.wantOK {
				t.Fatalf("Extract(%q) ok = %v, want %v", tc.message, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if got.Title != tc.wantTitle {
				t.Errorf("title = %q, want %q", got.Title, tc.wantTitle)
			}
			if !got.Start().Equal(tc.wantStart) {
				t.Errorf("start = %v, want %v", got.Start(), tc.wantStart)
			}
		})
	}
}

func TestExtractHonorsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	got, ok := PolicyV1().Extract("add event Call on March 5, 2025 at 8am", loc)
	if !ok {
		t.Fatal("expected match")
	}
	want := time.Date(2025, time.March, 5, 8, 0, 0, 0, loc)
	if !got.Start().Equal(want) {
		t.Errorf("start = %v, want %v", got.Start(), want)
	}
}
