package analytics

import (
	"testing"

	"github.com/terraincognita07/endotrack/internal/models"
)

func TestComputePainChange(t *testing.T) {
	tests := []struct {
		name        string
		intensities []int
		want        int
	}{
		{name: "empty", intensities: nil, want: 0},
		{name: "four entries stay at zero", intensities: []int{8, 8, 2, 2}, want: 0},
		{name: "reduction", intensities: []int{8, 8, 2, 2, 2}, want: 75},
		{name: "increase", intensities: []int{2, 2, 4, 4, 4}, want: -100},
		{name: "unchanged", intensities: []int{5, 5, 5, 5, 5, 5}, want: 0},
		{name: "rounds half up", intensities: []int{8, 8, 8, 8, 8, 8, 8, 8, 7, 7, 7, 7, 7, 7, 7, 7}, want: 13},
		{name: "zero first half", intensities: []int{0, 0, 3, 3, 3}, want: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := ComputePainChange(symptomsWithIntensities(testCase.intensities)); got != testCase.want {
				t.Fatalf("expected %d, got %d", testCase.want, got)
			}
		})
	}
}

func TestComputePainChangeUsesCallerOrder(t *testing.T) {
	ascending := symptomsWithIntensities([]int{8, 8, 2, 2, 2})
	descending := symptomsWithIntensities([]int{2, 2, 2, 8, 8})

	if ComputePainChange(ascending) <= 0 {
		t.Fatal("expected improvement for decreasing intensities")
	}
	if ComputePainChange(descending) >= 0 {
		t.Fatal("expected worsening when the caller reverses the order")
	}
}

func symptomsWithIntensities(values []int) []models.Symptom {
	symptoms := make([]models.Symptom, 0, len(values))
	for _, value := range values {
		symptoms = append(symptoms, models.Symptom{SymptomName: "Dor", Intensity: value})
	}
	return symptoms
}
