package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/endotrack/internal/models"
)

const (
	ActivitySymptom      = "symptom"
	ActivityMedication   = "medication"
	ActivityMenstruation = "menstruation"
	ActivityAppointment  = "appointment"
)

const DefaultActivityLimit = 5

type ActivityItem struct {
	Kind        string    `json:"kind"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// MergeActivity maps every record to an activity item and returns them most
// recent first. A limit of zero or less keeps every item.
func MergeActivity(symptoms []models.Symptom, cycles []models.CycleEntry, logs []models.MedicationLog, appointments []models.Appointment, limit int) []ActivityItem {
	items := make([]ActivityItem, 0, len(symptoms)+len(cycles)+len(logs)+len(appointments))

	for _, symptom := range symptoms {
		items = append(items, ActivityItem{
			Kind:        ActivitySymptom,
			Date:        symptom.CreatedAt,
			Description: fmt.Sprintf("%s • Intensidade %d/10", symptom.SymptomName, symptom.Intensity),
		})
	}
	for _, cycle := range cycles {
		items = append(items, ActivityItem{
			Kind:        ActivityMenstruation,
			Date:        cycle.Date,
			Description: cycleDescription(cycle.FlowIntensity),
		})
	}
	for _, entry := range logs {
		items = append(items, ActivityItem{
			Kind:        ActivityMedication,
			Date:        entry.CreatedAt,
			Description: fmt.Sprintf("%s • Medicamento tomado", entry.MedicationName),
		})
	}
	for _, appointment := range appointments {
		items = append(items, ActivityItem{
			Kind:        ActivityAppointment,
			Date:        appointment.CreatedAt,
			Description: fmt.Sprintf("Consulta com %s • %s", professionalName(appointment), appointment.Status),
		})
	}

	return SortActivity(items, limit)
}

// SortActivity orders items most recent first, keeping the relative order of
// items with equal dates, and truncates to limit when limit is positive.
func SortActivity(items []ActivityItem, limit int) []ActivityItem {
	sorted := make([]ActivityItem, 0, len(items))
	sorted = append(sorted, items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func cycleDescription(flow string) string {
	switch strings.TrimSpace(flow) {
	case models.FlowLight:
		return "Menstruação • Fluxo leve"
	case models.FlowMedium:
		return "Menstruação • Fluxo moderado"
	case models.FlowHeavy:
		return "Menstruação • Fluxo intenso"
	default:
		return "Menstruação registrada"
	}
}

func professionalName(appointment models.Appointment) string {
	name := strings.TrimSpace(appointment.Professional.Name)
	if name == "" {
		return "profissional"
	}
	return name
}
