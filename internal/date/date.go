// Package date provides calendar-day and time-of-day helpers.
//
// Tasks carry their due date as a plain YYYY-MM-DD string and their time
// window as HH:MM strings, compared by string equality and minute-of-day
// arithmetic. Loaded data is trusted, so the lenient helpers never fail;
// the strict Parse functions exist for validating interactive input.
package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DayFormat is the layout for calendar-day strings.
	DayFormat = "2006-01-02"
	// ClockFormat is the layout for time-of-day strings.
	ClockFormat = "15:04"

	minutesPerHour = 60
)

// Day formats a time as a YYYY-MM-DD day string.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// Today returns the day string for the given instant.
func Today(now time.Time) string {
	return Day(now)
}

// Tomorrow returns the day string for the calendar day after the given instant.
func Tomorrow(now time.Time) string {
	return Day(now.AddDate(0, 0, 1))
}

// ParseDay validates a YYYY-MM-DD string.
func ParseDay(s string) (string, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Day(t), nil
}

// ParseClock validates an HH:MM string and returns it normalized.
func ParseClock(s string) (string, error) {
	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Format(ClockFormat), nil
}

// MinuteOfDay converts an HH:MM string to minutes since midnight.
// It is lenient: malformed input returns ok=false instead of an error,
// because persisted data is trusted and never validated on load.
func MinuteOfDay(s string) (int, bool) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return hour*minutesPerHour + minute, true
}

// NowMinute returns the minute of day for the given instant.
func NowMinute(now time.Time) int {
	return now.Hour()*minutesPerHour + now.Minute()
}

// FormatOverlap renders an overlap duration in minutes as "Xh", "Ymin" or
// "XhYmin", omitting zero units. Non-positive durations render as the empty
// string; this is the guard against ever emitting "0min".
func FormatOverlap(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	hours := minutes / minutesPerHour
	rest := minutes % minutesPerHour

	var b strings.Builder
	if hours > 0 {
		b.WriteString(strconv.Itoa(hours))
		b.WriteString("h")
	}
	if rest > 0 {
		b.WriteString(strconv.Itoa(rest))
		b.WriteString("min")
	}
	return b.String()
}
