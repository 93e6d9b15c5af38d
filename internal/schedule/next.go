// Package schedule holds the deterministic scheduling arithmetic for the
// recurring pub night and the guard that decides whether a qualifying
// Discord scheduled event already exists.
package schedule

import "time"

// NextOccurrence computes the next wall-clock instant of the configured
// weekday/hour/minute. The weekday uses the ferry service's convention:
// 0 is Monday, 6 is Sunday.
//
// The comparison against "now" is strict: calling exactly at the scheduled
// minute on the scheduled day rolls over to next week. That boundary is
// deliberate and covered by tests; do not relax it to <=.
//
// All comparisons happen in loc so the result is correct across DST
// transitions.
func NextOccurrence(now time.Time, weekday, hour, minute int, loc *time.Location) time.Time {
	now = now.In(loc)
	wd := mondayIndexed(now.Weekday())

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var monday time.Time
	if wd < weekday || (wd == weekday && beforeTimeOfDay(now, hour, minute)) {
		// The pub has not yet happened this week.
		monday = today.AddDate(0, 0, -wd)
	} else {
		// The pub has already started or happened, look at next week.
		monday = today.AddDate(0, 0, 7-wd)
	}
	day := monday.AddDate(0, 0, weekday)

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
}

func beforeTimeOfDay(now time.Time, hour, minute int) bool {
	if now.Hour() != hour {
		return now.Hour() < hour
	}
	return now.Minute() < minute
}

// mondayIndexed converts Go's Sunday-first weekday to the 0=Monday scheme.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}
