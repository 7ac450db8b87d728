// utils/dates.go
package utils

import "time"

// TimestampLayout is the second-precision format used for all persisted
// invoice and load sheet timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// FileStampLayout names generated artifacts ({user}_loadsheet_{stamp}).
const FileStampLayout = "20060102_150405"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// HumanNow formats the current time at second precision.
func HumanNow() string {
	return time.Now().Format(TimestampLayout)
}
