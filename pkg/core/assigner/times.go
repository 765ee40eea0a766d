package assigner

import "time"

const (
	// MatchDuration is the fixed duration a duty team is occupied per match
	MatchDuration = 90 * time.Minute

	// MaxShiftGap is the largest allowed gap between the end of one duty
	// match and the start of the next within the same shift
	MaxShiftGap = 120 * time.Minute
)

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// WeekendOf returns the Saturday 00:00 and Monday 00:00 bracketing the
// weekend that contains t. The second return is false when t is a weekday.
func WeekendOf(t time.Time) (time.Time, bool) {
	switch t.Weekday() {
	case time.Saturday:
		return StartOfDay(t), true
	case time.Sunday:
		return StartOfDay(t).AddDate(0, 0, -1), true
	default:
		return time.Time{}, false
	}
}

// WeekendEnd returns the exclusive end (Monday 00:00) for a weekend start
func WeekendEnd(weekendStart time.Time) time.Time {
	return weekendStart.AddDate(0, 0, 2)
}

// ISOWeek returns the ISO year and week number of t's calendar date
func ISOWeek(t time.Time) (int, int) {
	return t.ISOWeek()
}
