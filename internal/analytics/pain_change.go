package analytics

import "github.com/terraincognita07/endotrack/internal/models"

const minPainChangeSamples = 5

// ComputePainChange compares mean intensity between the two halves of the
// sample as given: indexes [0, n/2) are the first half, the rest the second.
// The input is never re-sorted, so the caller decides which half is recent.
// A positive result means intensity went down.
func ComputePainChange(symptoms []models.Symptom) int {
	if len(symptoms) < minPainChangeSamples {
		return 0
	}

	mid := len(symptoms) / 2
	firstMean := meanIntensity(symptoms[:mid])
	secondMean := meanIntensity(symptoms[mid:])
	if firstMean == 0 {
		return 0
	}

	return roundHalfUp((firstMean - secondMean) / firstMean * 100)
}

func meanIntensity(symptoms []models.Symptom) float64 {
	if len(symptoms) == 0 {
		return 0
	}
	total := 0
	for _, symptom := range symptoms {
		total += symptom.Intensity
	}
	return float64(total) / float64(len(symptoms))
}
