package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/endotrack/internal/models"
)

const maxUpcomingDoses = 6

type UpcomingDose struct {
	MedicationID   uint      `json:"medication_id"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage"`
	ScheduledTime  time.Time `json:"scheduled_time"`
}

// ComputeUpcomingDoses lists the remaining doses of today for every active
// medication, earliest first, capped at six.
//
// Each medication's schedule restarts at its start time every day: the
// cursor walks from start time in frequency steps and stops at midnight
// instead of carrying the remainder into the next day.
func ComputeUpcomingDoses(medications []models.Medication, now time.Time) []UpcomingDose {
	doses := make([]UpcomingDose, 0)
	for _, medication := range medications {
		if !medication.Active {
			continue
		}
		for _, scheduled := range DailyDoseTimes(medication, now) {
			if !scheduled.After(now) {
				continue
			}
			doses = append(doses, UpcomingDose{
				MedicationID:   medication.ID,
				MedicationName: medication.Name,
				Dosage:         medication.Dosage,
				ScheduledTime:  scheduled,
			})
		}
	}

	sort.SliceStable(doses, func(i, j int) bool {
		return doses[i].ScheduledTime.Before(doses[j].ScheduledTime)
	})

	if len(doses) > maxUpcomingDoses {
		doses = doses[:maxUpcomingDoses]
	}
	return doses
}

// DailyDoseTimes returns every dose instant of the medication on the calendar
// day of day, in day's location. It returns nil for a schedule that cannot be
// walked (non-positive frequency or malformed start time).
func DailyDoseTimes(medication models.Medication, day time.Time) []time.Time {
	if medication.FrequencyHours <= 0 {
		return nil
	}
	hour, minute, ok := ParseClock(medication.StartTime)
	if !ok {
		return nil
	}

	year, month, date := day.Date()
	location := day.Location()
	cursor := time.Date(year, month, date, hour, minute, 0, 0, location)
	endOfDay := time.Date(year, month, date+1, 0, 0, 0, 0, location)
	step := time.Duration(medication.FrequencyHours) * time.Hour

	times := make([]time.Time, 0)
	for cursor.Before(endOfDay) {
		times = append(times, cursor)
		cursor = cursor.Add(step)
	}
	return times
}

// ParseClock parses an HH:MM time of day.
func ParseClock(raw string) (int, int, bool) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(raw))
	if err != nil {
		return 0, 0, false
	}
	return parsed.Hour(), parsed.Minute(), true
}
