package analytics

import (
	"sort"
	"time"

	"github.com/terraincognita07/endotrack/internal/models"
)

const DefaultCycleDays = models.DefaultCycleLength

type CycleStats struct {
	AverageCycleDays int        `json:"average_cycle_days"`
	LastCycleDate    *time.Time `json:"last_cycle_date"`
	NextCycleDate    *time.Time `json:"next_cycle_date"`
}

// ComputeCycleStats averages the gaps between consecutive cycle entries and
// projects the next cycle from the latest one. Entries are sorted internally,
// so callers may pass them in any order.
//
// reference is reserved for days-until presentation; the prediction itself
// does not depend on it.
func ComputeCycleStats(cycles []models.CycleEntry, reference time.Time) CycleStats {
	stats := CycleStats{AverageCycleDays: DefaultCycleDays}
	if len(cycles) < 2 {
		return stats
	}

	sorted := make([]models.CycleEntry, 0, len(cycles))
	sorted = append(sorted, cycles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	total := 0
	for i := 1; i < len(sorted); i++ {
		total += calendarDaysBetween(sorted[i-1].Date, sorted[i].Date)
	}
	stats.AverageCycleDays = roundHalfUp(float64(total) / float64(len(sorted)-1))

	last := dateOnly(sorted[len(sorted)-1].Date)
	next := last.AddDate(0, 0, stats.AverageCycleDays)
	stats.LastCycleDate = &last
	stats.NextCycleDate = &next
	return stats
}

// DaysUntil reports calendar days from reference to target. The second
// result is false when there is no target.
func DaysUntil(target *time.Time, reference time.Time) (int, bool) {
	if target == nil {
		return 0, false
	}
	return calendarDaysBetween(reference, *target), true
}
