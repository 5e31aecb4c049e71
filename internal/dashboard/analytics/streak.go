package analytics

import (
	"sort"
	"time"
)

// streakTolerance absorbs same-day duplicate entries and minor time-of-day
// skew without a strict day-boundary walk: a gap in (0, 1.5] days extends
// the streak, a gap over 1.5 days breaks it, a zero gap (duplicate day)
// neither extends nor breaks it.
const streakTolerance = 1.5

// CurrentStreak returns the length of the consecutive-day activity streak
// ending at "today" or "yesterday", relative to the given now. A streak whose
// most recent entry is older than yesterday is not current, so it counts as 0.
// The input may be unordered and may contain duplicates.
func CurrentStreak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].After(sorted[j])
	})

	// the streak is current only when it ends today or yesterday
	today := calendarDay(now)
	lastDay := calendarDay(sorted[0])
	if lastDay.Before(today.AddDate(0, 0, -1)) {
		return 0
	}

	streak := 1
	for i := 1; i < len(sorted); i++ {
		gap := daysBetween(sorted[i], sorted[i-1])
		if gap > streakTolerance {
			break
		}
		if gap > 0 {
			streak++
		}
	}
	return streak
}

func daysBetween(earlier, later time.Time) float64 {
	return later.Sub(earlier).Hours() / 24
}

func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
