package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/endotrack/internal/analytics"
	"github.com/terraincognita07/endotrack/internal/db"
	"github.com/terraincognita07/endotrack/internal/models"
)

var ErrActivityFailed = errors.New("activity load failed")

type SymptomActivitySource interface {
	ListRecentByUser(ctx context.Context, userID uint, options db.ListOptions) ([]models.Symptom, error)
}

type AppointmentActivitySource interface {
	ListRecentByUser(ctx context.Context, userID uint, options db.ListOptions) ([]models.Appointment, error)
}

// ActivitySources groups the collections the activity feed reads from.
type ActivitySources struct {
	Symptoms     SymptomActivitySource
	Cycles       CycleRepository
	Logs         MedicationLogRepository
	Appointments AppointmentActivitySource
}

// ActivityRecords is the raw input of one activity feed.
type ActivityRecords struct {
	Symptoms     []models.Symptom
	Cycles       []models.CycleEntry
	Logs         []models.MedicationLog
	Appointments []models.Appointment
}

type ActivityService struct {
	sources  ActivitySources
	location *time.Location
}

func NewActivityService(sources ActivitySources, location *time.Location) *ActivityService {
	if location == nil {
		location = time.UTC
	}
	return &ActivityService{sources: sources, location: location}
}

// Feed returns the merged activity between from (inclusive) and to
// (exclusive), most recent first. A positive limit is pushed down to every
// collection: the newest limit items overall are always among the newest
// limit items of each kind.
func (service *ActivityService) Feed(ctx context.Context, userID uint, from *time.Time, to *time.Time, limit int) ([]analytics.ActivityItem, error) {
	records, err := service.Load(ctx, userID, db.ListOptions{From: from, To: to, Descending: true, Limit: limit})
	if err != nil {
		return nil, err
	}
	return analytics.MergeActivity(records.Symptoms, records.Cycles, records.Logs, records.Appointments, limit), nil
}

// Load reads every collection within the storage-day bounds of options.
// Cycles are matched on their calendar date, the rest on created_at.
func (service *ActivityService) Load(ctx context.Context, userID uint, options db.ListOptions) (ActivityRecords, error) {
	instants := CreatedAtBounds(options, service.location)

	symptoms, err := service.sources.Symptoms.ListRecentByUser(ctx, userID, instants)
	if err != nil {
		return ActivityRecords{}, fmt.Errorf("%w: symptoms: %v", ErrActivityFailed, err)
	}
	cycles, err := service.sources.Cycles.ListByUser(ctx, userID, options)
	if err != nil {
		return ActivityRecords{}, fmt.Errorf("%w: cycles: %v", ErrActivityFailed, err)
	}
	logs, err := service.sources.Logs.ListByUser(ctx, userID, instants)
	if err != nil {
		return ActivityRecords{}, fmt.Errorf("%w: medication logs: %v", ErrActivityFailed, err)
	}
	appointments, err := service.sources.Appointments.ListRecentByUser(ctx, userID, instants)
	if err != nil {
		return ActivityRecords{}, fmt.Errorf("%w: appointments: %v", ErrActivityFailed, err)
	}

	return ActivityRecords{
		Symptoms:     symptoms,
		Cycles:       cycles,
		Logs:         logs,
		Appointments: appointments,
	}, nil
}
