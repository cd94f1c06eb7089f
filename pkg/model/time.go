package model

import "time"

// TimestampLayout is the ISO-8601 layout used for every generatedAt value
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DateLayout is the full-date layout of the JSON Schema "date" format
const DateLayout = "2006-01-02"

// FormatTimestamp renders t in UTC using TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatDate renders the UTC calendar date of t
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
