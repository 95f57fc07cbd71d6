package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/terraincognita07/endotrack/internal/models"
)

func TestMergeActivityDescriptionsAndOrder(t *testing.T) {
	base := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	symptoms := []models.Symptom{
		{SymptomName: "Dor pélvica", Intensity: 6, CreatedAt: base.Add(-2 * time.Hour)},
	}
	cycles := []models.CycleEntry{
		{Date: mustParseDay("2024-02-14"), FlowIntensity: models.FlowHeavy},
	}
	logs := []models.MedicationLog{
		{MedicationName: "Ibuprofeno", CreatedAt: base.Add(-1 * time.Hour)},
	}
	appointments := []models.Appointment{
		{Professional: models.Professional{Name: "Dra. Ana Silva"}, Status: models.AppointmentScheduled, CreatedAt: base},
	}

	items := MergeActivity(symptoms, cycles, logs, appointments, 0)
	expected := []ActivityItem{
		{Kind: ActivityAppointment, Date: base, Description: "Consulta com Dra. Ana Silva • agendada"},
		{Kind: ActivityMedication, Date: base.Add(-1 * time.Hour), Description: "Ibuprofeno • Medicamento tomado"},
		{Kind: ActivitySymptom, Date: base.Add(-2 * time.Hour), Description: "Dor pélvica • Intensidade 6/10"},
		{Kind: ActivityMenstruation, Date: mustParseDay("2024-02-14"), Description: "Menstruação • Fluxo intenso"},
	}
	if !reflect.DeepEqual(items, expected) {
		t.Fatalf("unexpected activity feed:\n got %#v\nwant %#v", items, expected)
	}
}

func TestMergeActivityKeepsKindOrderForEqualDates(t *testing.T) {
	at := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	items := MergeActivity(
		[]models.Symptom{{SymptomName: "Fadiga", Intensity: 3, CreatedAt: at}},
		[]models.CycleEntry{{Date: at}},
		[]models.MedicationLog{{MedicationName: "Vitamina D", CreatedAt: at}},
		[]models.Appointment{{Status: models.AppointmentConfirmed, CreatedAt: at}},
		0,
	)

	kinds := make([]string, 0, len(items))
	for _, item := range items {
		kinds = append(kinds, item.Kind)
	}
	expected := []string{ActivitySymptom, ActivityMenstruation, ActivityMedication, ActivityAppointment}
	if !reflect.DeepEqual(kinds, expected) {
		t.Fatalf("expected kinds %v, got %v", expected, kinds)
	}
	if items[1].Description != "Menstruação registrada" {
		t.Fatalf("expected placeholder cycle description, got %q", items[1].Description)
	}
	if items[3].Description != "Consulta com profissional • confirmada" {
		t.Fatalf("expected fallback professional name, got %q", items[3].Description)
	}
}

func TestMergeActivityLimit(t *testing.T) {
	symptoms := make([]models.Symptom, 0)
	for hour := 0; hour < 8; hour++ {
		symptoms = append(symptoms, models.Symptom{
			SymptomName: "Cólicas",
			Intensity:   hour + 1,
			CreatedAt:   time.Date(2024, 2, 15, hour, 0, 0, 0, time.UTC),
		})
	}

	limited := MergeActivity(symptoms, nil, nil, nil, DefaultActivityLimit)
	if len(limited) != 5 {
		t.Fatalf("expected 5 items, got %d", len(limited))
	}
	if limited[0].Date.Hour() != 7 {
		t.Fatalf("expected most recent first, got hour %d", limited[0].Date.Hour())
	}

	unlimited := MergeActivity(symptoms, nil, nil, nil, 0)
	if len(unlimited) != 8 {
		t.Fatalf("expected 8 items without a limit, got %d", len(unlimited))
	}
}

func TestSortActivityIsIdempotent(t *testing.T) {
	at := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	merged := MergeActivity(
		[]models.Symptom{
			{SymptomName: "Fadiga", Intensity: 3, CreatedAt: at},
			{SymptomName: "Náusea", Intensity: 5, CreatedAt: at.Add(time.Hour)},
		},
		[]models.CycleEntry{{Date: at}},
		[]models.MedicationLog{{MedicationName: "Vitamina D", CreatedAt: at}},
		nil,
		0,
	)

	again := SortActivity(merged, 0)
	if !reflect.DeepEqual(merged, again) {
		t.Fatalf("expected re-sorting to be a no-op:\n first %#v\nsecond %#v", merged, again)
	}
}
