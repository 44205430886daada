package utils

import "time"

// DateLayout is the calendar-date form used everywhere in the pipeline.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// SpanDays counts the inclusive number of calendar days between start and end.
// A same-day trip spans 1 day.
func SpanDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// DateAtIndex renders start + dayIndex days as a calendar date string.
func DateAtIndex(start time.Time, dayIndex int) string {
	return start.AddDate(0, 0, dayIndex).Format(DateLayout)
}
