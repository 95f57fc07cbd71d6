package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/endotrack/internal/analytics"
	"github.com/terraincognita07/endotrack/internal/db"
)

var ErrInvalidReportPeriod = errors.New("invalid report period")

const defaultReportMonths = 1

// ReportPeriods lists the month windows a report can cover.
var ReportPeriods = []int{1, 3, 6}

type ReportCounts struct {
	Symptoms          int `json:"symptoms"`
	CycleDays         int `json:"cycle_days"`
	MedicationDoses   int `json:"medication_doses"`
	Appointments      int `json:"appointments"`
	ActiveMedications int `json:"active_medications"`
}

type Report struct {
	Months     int                      `json:"months"`
	From       string                   `json:"from"`
	To         string                   `json:"to"`
	Cycle      analytics.CycleStats     `json:"cycle"`
	Trends     []analytics.SymptomTrend `json:"trends"`
	PainChange int                      `json:"pain_change"`
	Counts     ReportCounts             `json:"counts"`
	Activity   []analytics.ActivityItem `json:"activity"`

	records ActivityRecords
}

type ReportService struct {
	activity    *ActivityService
	medications MedicationRepository
	location    *time.Location
}

func NewReportService(activity *ActivityService, medications MedicationRepository, location *time.Location) *ReportService {
	if location == nil {
		location = time.UTC
	}
	return &ReportService{activity: activity, medications: medications, location: location}
}

// ParseReportMonths accepts an empty value as the one-month default.
func ParseReportMonths(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultReportMonths, nil
	}
	months, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidReportPeriod
	}
	for _, allowed := range ReportPeriods {
		if months == allowed {
			return months, nil
		}
	}
	return 0, ErrInvalidReportPeriod
}

// ReportWindow returns the inclusive start and exclusive end of a report
// covering the last months calendar months up to and including today.
func ReportWindow(months int, now time.Time, location *time.Location) (time.Time, time.Time) {
	today := StorageDay(now, location)
	return today.AddDate(0, -months, 0), today.AddDate(0, 0, 1)
}

func (service *ReportService) Build(ctx context.Context, userID uint, months int, now time.Time) (Report, error) {
	if months <= 0 {
		return Report{}, ErrInvalidReportPeriod
	}
	from, to := ReportWindow(months, now, service.location)

	records, err := service.activity.Load(ctx, userID, db.ListOptions{From: &from, To: &to})
	if err != nil {
		return Report{}, err
	}
	active, err := service.medications.ListByUser(ctx, userID, true)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrMedicationListFailed, err)
	}

	return Report{
		Months:     months,
		From:       from.Format(dayLayout),
		To:         to.AddDate(0, 0, -1).Format(dayLayout),
		Cycle:      analytics.ComputeCycleStats(records.Cycles, now),
		Trends:     analytics.ComputeSymptomTrends(records.Symptoms),
		PainChange: analytics.ComputePainChange(chronologicalSymptoms(records)),
		Counts: ReportCounts{
			Symptoms:          len(records.Symptoms),
			CycleDays:         len(records.Cycles),
			MedicationDoses:   len(records.Logs),
			Appointments:      len(records.Appointments),
			ActiveMedications: len(active),
		},
		Activity: analytics.MergeActivity(records.Symptoms, records.Cycles, records.Logs, records.Appointments, 0),
		records:  records,
	}, nil
}
