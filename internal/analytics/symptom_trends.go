package analytics

import (
	"sort"

	"github.com/terraincognita07/endotrack/internal/models"
)

const maxSymptomTrends = 5

type SymptomTrend struct {
	Name              string  `json:"name"`
	Count             int     `json:"count"`
	AvgIntensity      float64 `json:"avg_intensity"`
	PercentageOfTotal float64 `json:"percentage_of_total"`
}

// ComputeSymptomTrends groups symptoms by exact name and returns the five most
// frequent groups. Groups with equal counts keep the order in which their
// first entry appeared.
func ComputeSymptomTrends(symptoms []models.Symptom) []SymptomTrend {
	if len(symptoms) == 0 {
		return []SymptomTrend{}
	}

	indexByName := make(map[string]int)
	sums := make([]int, 0)
	trends := make([]SymptomTrend, 0)
	for _, symptom := range symptoms {
		index, ok := indexByName[symptom.SymptomName]
		if !ok {
			index = len(trends)
			indexByName[symptom.SymptomName] = index
			trends = append(trends, SymptomTrend{Name: symptom.SymptomName})
			sums = append(sums, 0)
		}
		trends[index].Count++
		sums[index] += symptom.Intensity
	}

	total := float64(len(symptoms))
	for index := range trends {
		trends[index].AvgIntensity = float64(sums[index]) / float64(trends[index].Count)
		trends[index].PercentageOfTotal = float64(trends[index].Count) / total * 100
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].Count > trends[j].Count
	})

	if len(trends) > maxSymptomTrends {
		trends = trends[:maxSymptomTrends]
	}
	return trends
}
