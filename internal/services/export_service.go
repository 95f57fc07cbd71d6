package services

import (
	"sort"
	"strconv"
	"time"

	"github.com/terraincognita07/endotrack/internal/analytics"
	"github.com/terraincognita07/endotrack/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{
	"Date",
	"Type",
	"Item",
	"Intensity",
	"Flow",
	"Status",
	"Notes",
}

// ExportEntry is one exported record. Fields that do not apply to the
// record kind stay empty.
type ExportEntry struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	Item      string `json:"item"`
	Intensity *int   `json:"intensity,omitempty"`
	Flow      string `json:"flow,omitempty"`
	Status    string `json:"status,omitempty"`
	Notes     string `json:"notes,omitempty"`

	sortKey time.Time
	order   int
}

type ExportDocument struct {
	ExportedAt string                   `json:"exported_at"`
	From       string                   `json:"from"`
	To         string                   `json:"to"`
	Cycle      analytics.CycleStats     `json:"cycle"`
	Trends     []analytics.SymptomTrend `json:"trends"`
	PainChange int                      `json:"pain_change"`
	Counts     ReportCounts             `json:"counts"`
	Entries    []ExportEntry            `json:"entries"`
}

type ExportService struct {
	location *time.Location
}

func NewExportService(location *time.Location) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{location: location}
}

func (service *ExportService) BuildDocument(report Report, now time.Time) ExportDocument {
	return ExportDocument{
		ExportedAt: now.In(service.location).Format(time.RFC3339),
		From:       report.From,
		To:         report.To,
		Cycle:      report.Cycle,
		Trends:     report.Trends,
		PainChange: report.PainChange,
		Counts:     report.Counts,
		Entries:    service.BuildEntries(report),
	}
}

// BuildEntries flattens the report records oldest first. Records on the
// same instant keep the kind order symptoms, cycles, doses, appointments.
func (service *ExportService) BuildEntries(report Report) []ExportEntry {
	records := report.records
	entries := make([]ExportEntry, 0, len(records.Symptoms)+len(records.Cycles)+len(records.Logs)+len(records.Appointments))

	for _, symptom := range records.Symptoms {
		intensity := symptom.Intensity
		entries = append(entries, ExportEntry{
			Date:      symptom.Date.Format(exportDateLayout),
			Type:      analytics.ActivitySymptom,
			Item:      symptom.SymptomName,
			Intensity: &intensity,
			Notes:     symptom.Notes,
			sortKey:   symptom.Date,
			order:     0,
		})
	}
	for _, cycle := range records.Cycles {
		entries = append(entries, ExportEntry{
			Date:    cycle.Date.Format(exportDateLayout),
			Type:    analytics.ActivityMenstruation,
			Item:    "menstruation",
			Flow:    cycle.FlowIntensity,
			Notes:   cycle.Notes,
			sortKey: cycle.Date,
			order:   1,
		})
	}
	for _, entry := range records.Logs {
		day := StorageDay(entry.CreatedAt, service.location)
		entries = append(entries, ExportEntry{
			Date:    day.Format(exportDateLayout),
			Type:    analytics.ActivityMedication,
			Item:    entry.MedicationName,
			Status:  "taken",
			sortKey: day,
			order:   2,
		})
	}
	for _, appointment := range records.Appointments {
		entries = append(entries, ExportEntry{
			Date:    appointment.Date.Format(exportDateLayout),
			Type:    analytics.ActivityAppointment,
			Item:    appointmentItem(appointment),
			Status:  appointment.Status,
			Notes:   appointment.Notes,
			sortKey: appointment.Date,
			order:   3,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].sortKey.Equal(entries[j].sortKey) {
			return entries[i].sortKey.Before(entries[j].sortKey)
		}
		return entries[i].order < entries[j].order
	})
	return entries
}

func (entry ExportEntry) Columns() []string {
	intensity := ""
	if entry.Intensity != nil {
		intensity = strconv.Itoa(*entry.Intensity)
	}
	return []string{
		entry.Date,
		entry.Type,
		entry.Item,
		intensity,
		csvFlowLabel(entry.Flow),
		entry.Status,
		entry.Notes,
	}
}

func appointmentItem(appointment models.Appointment) string {
	name := appointment.Professional.Name
	if name == "" {
		name = "profissional"
	}
	return name + " " + appointment.Time
}

func csvFlowLabel(flow string) string {
	switch flow {
	case models.FlowLight:
		return "Light"
	case models.FlowMedium:
		return "Medium"
	case models.FlowHeavy:
		return "Heavy"
	default:
		return ""
	}
}

func chronologicalSymptoms(records ActivityRecords) []models.Symptom {
	symptoms := make([]models.Symptom, 0, len(records.Symptoms))
	symptoms = append(symptoms, records.Symptoms...)
	sort.SliceStable(symptoms, func(i, j int) bool {
		if !symptoms[i].Date.Equal(symptoms[j].Date) {
			return symptoms[i].Date.Before(symptoms[j].Date)
		}
		return symptoms[i].CreatedAt.Before(symptoms[j].CreatedAt)
	})
	return symptoms
}
