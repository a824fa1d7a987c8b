package timetable

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// CanonicalDate formats a moment as the canonical YYYY-MM-DD key. Every
// date used to index the dataset tables must pass through here so map
// lookups never drift on formatting.
func CanonicalDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a canonical YYYY-MM-DD string in local time.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	if CanonicalDate(t) != raw {
		return time.Time{}, fmt.Errorf("date %q is not in canonical form", raw)
	}
	return t, nil
}

// ValidClock reports whether raw is a zero-padded 24-hour HH:MM string.
func ValidClock(raw string) bool {
	if len(raw) != 5 || raw[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	h := int(raw[0]-'0')*10 + int(raw[1]-'0')
	m := int(raw[3]-'0')*10 + int(raw[4]-'0')
	return h < 24 && m < 60
}

// MinuteOf converts a validated HH:MM string to minutes since midnight.
func MinuteOf(clock string) int {
	h := int(clock[0]-'0')*10 + int(clock[1]-'0')
	m := int(clock[3]-'0')*10 + int(clock[4]-'0')
	return h*60 + m
}

// secondsIntoDay returns the wall-clock second count since local midnight.
func secondsIntoDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
