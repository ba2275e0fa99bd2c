package intent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Extraction is the structured result of matching an add-event phrase.
type Extraction struct {
	Title   string
	Date    time.Time // local midnight of the extracted day
	HasTime bool
	Hour    int
	Minute  int
}

// Start returns the event start instant, applying the extracted clock
// time when one was present.
func (e Extraction) Start() time.Time {
	if !e.HasTime {
		return e.Date
	}
	return e.Date.Add(time.Duration(e.Hour)*time.Hour + time.Duration(e.Minute)*time.Minute)
}

// Policy is a versioned grammar for recognizing add-event phrases in
// chat messages. Messages that do not match fall through to the
// generative path, so matching is deliberately conservative.
type Policy struct {
	version string
}

// PolicyV1 matches phrases like
// "add event Lunch with Sarah on March 5, 2025 at 2:30pm".
func PolicyV1() *Policy {
	return &Policy{version: "v1"}
}

func (p *Policy) Version() string {
	return p.version
}

var (
	dateRe     = regexp.MustCompile(`(?i)([A-Za-z]+)\s+(\d{1,2}),?\s+(\d{4})`)
	clockRe    = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)?`)
	bareHourRe = regexp.MustCompile(`(?i)(\d{1,2})\s*(am|pm)`)
	leadRe     = regexp.MustCompile(`(?i)^\s*add\s+(?:an?\s+)?event[:,]?\s*`)
	trailRe    = regexp.MustCompile(`(?i)(?:^|\s+)on\s+.*$`)
)

// Extract matches message against the policy grammar. The boolean is
// false when the message is not an add-event phrase; extraction never
// fails with an error.
func (p *Policy) Extract(message string, loc *time.Location) (Extraction, bool) {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "add") || !strings.Contains(lower, "event") {
		return Extraction{}, false
	}

	dm := dateRe.FindStringSubmatch(message)
	if dm == nil {
		return Extraction{}, false
	}
	date, ok := parseDate(dm[1], dm[2], dm[3], loc)
	if !ok {
		return Extraction{}, false
	}

	res := Extraction{Date: date}
	if hour, minute, ok := parseClock(message); ok {
		res.HasTime = true
		res.Hour = hour
		res.Minute = minute
	}

	res.Title = parseTitle(message)
	return res, true
}

// parseDate validates the month word against the calendar; "Marchtember 5, 2025"
// must not produce an event.
func parseDate(month, day, year string, loc *time.Location) (time.Time, bool) {
	canonical := fmt.Sprintf("%s %s, %s", capitalize(month), day, year)
	for _, layout := range []string{"January 2, 2006", "Jan 2, 2006"} {
		t, err := time.ParseInLocation(layout, canonical, loc)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseClock(message string) (int, int, bool) {
	var hour, minute int
	var meridiem string
	if m := clockRe.FindStringSubmatch(message); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		meridiem = strings.ToLower(m[3])
	} else if m := bareHourRe.FindStringSubmatch(message); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute = 0
		meridiem = strings.ToLower(m[2])
	} else {
		return 0, 0, false
	}

	if meridiem == "pm" && hour != 12 {
		hour += 12
	}
	if meridiem == "am" && hour == 12 {
		hour = 0
	}
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

func parseTitle(message string) string {
	title := leadRe.ReplaceAllString(message, "")
	title = trailRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	if title == "" {
		return "New Event"
	}
	return title
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
