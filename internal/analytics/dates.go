package analytics

import (
	"math"
	"time"
)

func dateOnly(value time.Time) time.Time {
	y, m, d := value.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, value.Location())
}

// calendarDaysBetween counts whole calendar days from a to b, ignoring
// clock time and DST shifts in either location.
func calendarDaysBetween(a time.Time, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}
