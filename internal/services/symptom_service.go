package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/endotrack/internal/analytics"
	"github.com/terraincognita07/endotrack/internal/db"
	"github.com/terraincognita07/endotrack/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSymptomSelectionRequired = errors.New("symptom selection required")
	ErrInvalidSymptomName       = errors.New("invalid symptom name")
	ErrSymptomIntensityRange    = errors.New("symptom intensity out of range")
	ErrSymptomNotFound          = errors.New("symptom not found")
	ErrCreateSymptomFailed      = errors.New("create symptom failed")
	ErrDeleteSymptomFailed      = errors.New("delete symptom failed")
	ErrListSymptomsFailed       = errors.New("list symptoms failed")
)

const maxSymptomNameLength = 80

type SymptomRepository interface {
	ListByUser(ctx context.Context, userID uint, options db.ListOptions) ([]models.Symptom, error)
	CreateBatch(ctx context.Context, symptoms []models.Symptom) error
	FindByIDForUser(ctx context.Context, symptomID uint, userID uint) (models.Symptom, error)
	Delete(ctx context.Context, symptom *models.Symptom) error
}

// SymptomInput is one submission of the symptom form: every selected symptom
// is logged at the same intensity. An empty Date means today.
type SymptomInput struct {
	Symptoms  []string `json:"symptoms"`
	Intensity int      `json:"intensity"`
	Date      string   `json:"date"`
	Notes     string   `json:"notes"`
}

type SymptomSummary struct {
	Trends     []analytics.SymptomTrend `json:"trends"`
	PainChange int                      `json:"pain_change"`
	Total      int                      `json:"total"`
}

type SymptomService struct {
	symptoms SymptomRepository
	location *time.Location
}

func NewSymptomService(symptoms SymptomRepository, location *time.Location) *SymptomService {
	if location == nil {
		location = time.UTC
	}
	return &SymptomService{symptoms: symptoms, location: location}
}

func (service *SymptomService) CommonSymptoms() []string {
	return models.DefaultCommonSymptoms()
}

func (service *SymptomService) Log(ctx context.Context, userID uint, input SymptomInput, now time.Time) ([]models.Symptom, error) {
	names, err := normalizeSymptomSelection(input.Symptoms)
	if err != nil {
		return nil, err
	}
	if input.Intensity < models.MinSymptomIntensity || input.Intensity > models.MaxSymptomIntensity {
		return nil, ErrSymptomIntensityRange
	}

	day := StorageDay(now, service.location)
	if strings.TrimSpace(input.Date) != "" {
		day, err = ParseDay(input.Date)
		if err != nil {
			return nil, err
		}
	}

	notes := strings.TrimSpace(input.Notes)
	records := make([]models.Symptom, 0, len(names))
	for _, name := range names {
		records = append(records, models.Symptom{
			UserID:      userID,
			SymptomName: name,
			Intensity:   input.Intensity,
			Date:        day,
			Notes:       notes,
		})
	}

	if err := service.symptoms.CreateBatch(ctx, records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateSymptomFailed, err)
	}
	return records, nil
}

func (service *SymptomService) List(ctx context.Context, userID uint, options db.ListOptions) ([]models.Symptom, error) {
	symptoms, err := service.symptoms.ListByUser(ctx, userID, options)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListSymptomsFailed, err)
	}
	return symptoms, nil
}

func (service *SymptomService) Delete(ctx context.Context, userID uint, symptomID uint) error {
	symptom, err := service.symptoms.FindByIDForUser(ctx, symptomID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSymptomNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteSymptomFailed, err)
	}
	if err := service.symptoms.Delete(ctx, &symptom); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteSymptomFailed, err)
	}
	return nil
}

// Summary aggregates symptoms logged since the given day. Pain change is
// computed over the entries in chronological order, oldest first.
func (service *SymptomService) Summary(ctx context.Context, userID uint, since *time.Time) (SymptomSummary, error) {
	symptoms, err := service.List(ctx, userID, db.ListOptions{From: since})
	if err != nil {
		return SymptomSummary{}, err
	}
	return SymptomSummary{
		Trends:     analytics.ComputeSymptomTrends(symptoms),
		PainChange: analytics.ComputePainChange(symptoms),
		Total:      len(symptoms),
	}, nil
}

func normalizeSymptomSelection(raw []string) ([]string, error) {
	names := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, value := range raw {
		name := strings.TrimSpace(value)
		if name == "" {
			continue
		}
		if len([]rune(name)) > maxSymptomNameLength {
			return nil, ErrInvalidSymptomName
		}
		if _, duplicate := seen[name]; duplicate {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, ErrSymptomSelectionRequired
	}
	return names, nil
}
