// utils/dates.go
package utils

import "time"

// DateTimeLayout is the combined timestamp format appointments are stored with.
const DateTimeLayout = "2006-01-02T15:04:05"

// DateLayout is the calendar-date half of a slot.
const DateLayout = "2006-01-02"

// ParseDateTime parses a combined appointment timestamp.
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(DateTimeLayout, s)
}

// DatePart returns the YYYY-MM-DD component of a combined timestamp.
func DatePart(dateTime string) string {
	if len(dateTime) < 10 {
		return ""
	}
	return dateTime[:10]
}

// TimePart returns the HH:MM component of a combined timestamp.
func TimePart(dateTime string) string {
	if len(dateTime) < 16 {
		return ""
	}
	return dateTime[11:16]
}
