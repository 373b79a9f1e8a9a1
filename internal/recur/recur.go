// Package recur implements annual recurrence arithmetic over month/day
// patterns. All functions are pure: "today" is always an explicit argument,
// and the stored year of a subject date is ignored by the scheduling logic.
package recur

import (
	"math"
	"time"
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsAnniversaryToday reports whether subject's month and day equal now's.
// The comparison is literal: a Feb 29 subject matches only on an actual
// Feb 29, never on Feb 28 or Mar 1.
func IsAnniversaryToday(subject, now time.Time) bool {
	return subject.Month() == now.Month() && subject.Day() == now.Day()
}

// NextOccurrence returns the next calendar date on which subject's month/day
// falls, relative to now. The candidate is subject's month/day in now's year;
// if that lies strictly before the start of now's day, the year advances by
// one. The result's start-of-day is therefore never before now's.
//
// A Feb 29 subject in a non-leap target year normalizes to Mar 1, which is
// the behavior of time.Date and the documented fallback rule of this package.
func NextOccurrence(subject, now time.Time) time.Time {
	loc := now.Location()
	todayStart := StartOfDay(now)

	candidate := time.Date(now.Year(), subject.Month(), subject.Day(), 0, 0, 0, 0, loc)
	if candidate.Before(todayStart) {
		candidate = time.Date(now.Year()+1, subject.Month(), subject.Day(), 0, 0, 0, 0, loc)
	}
	return candidate
}

// DaysUntil returns the whole-day count from the start of now's day to the
// start of the next occurrence's day. It is never negative, and for non-leap-day
// subjects it is zero exactly when IsAnniversaryToday holds. A Feb 29 subject
// resolves to Mar 1 in a non-leap year, so DaysUntil is 0 on that Mar 1 even
// though IsAnniversaryToday stays false: the fallback day is the scheduled
// celebration day, not a literal anniversary.
//
// The division rounds to tolerate DST transitions, which make some civil
// days 23 or 25 hours long.
func DaysUntil(subject, now time.Time) int {
	from := StartOfDay(now)
	to := StartOfDay(NextOccurrence(subject, now))
	return int(math.Round(to.Sub(from).Hours() / 24))
}
