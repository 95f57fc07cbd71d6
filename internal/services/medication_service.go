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
	ErrMedicationInvalidInput    = errors.New("medication invalid input")
	ErrMedicationInvalidSchedule = errors.New("medication invalid schedule")
	ErrMedicationNotFound        = errors.New("medication not found")
	ErrMedicationSaveFailed      = errors.New("medication save failed")
	ErrMedicationDeleteFailed    = errors.New("medication delete failed")
	ErrMedicationListFailed      = errors.New("medication list failed")
	ErrMedicationLogFailed       = errors.New("medication log failed")
)

const (
	maxMedicationNameLength   = 120
	maxMedicationDosageLength = 60
	maxFrequencyHours         = 24 * 7
)

type MedicationRepository interface {
	ListByUser(ctx context.Context, userID uint, activeOnly bool) ([]models.Medication, error)
	FindByIDForUser(ctx context.Context, medicationID uint, userID uint) (models.Medication, error)
	Create(ctx context.Context, medication *models.Medication) error
	Save(ctx context.Context, medication *models.Medication) error
	SetActive(ctx context.Context, medicationID uint, userID uint, active bool) error
	Delete(ctx context.Context, medication *models.Medication) error
}

type MedicationLogRepository interface {
	ListByUser(ctx context.Context, userID uint, options db.ListOptions) ([]models.MedicationLog, error)
	Create(ctx context.Context, entry *models.MedicationLog) error
}

type MedicationInput struct {
	Name           string `json:"name"`
	Dosage         string `json:"dosage"`
	FrequencyHours int    `json:"frequency_hours"`
	StartTime      string `json:"start_time"`
}

// MedicationSchedule pairs a medication with its dose times of a day.
type MedicationSchedule struct {
	models.Medication
	DailyTimes []string `json:"daily_times"`
}

type MedicationService struct {
	medications MedicationRepository
	logs        MedicationLogRepository
	location    *time.Location
}

func NewMedicationService(medications MedicationRepository, logs MedicationLogRepository, location *time.Location) *MedicationService {
	if location == nil {
		location = time.UTC
	}
	return &MedicationService{medications: medications, logs: logs, location: location}
}

func (service *MedicationService) List(ctx context.Context, userID uint, now time.Time) ([]MedicationSchedule, error) {
	medications, err := service.medications.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMedicationListFailed, err)
	}

	day := now.In(service.location)
	schedules := make([]MedicationSchedule, 0, len(medications))
	for _, medication := range medications {
		times := make([]string, 0)
		for _, at := range analytics.DailyDoseTimes(medication, day) {
			times = append(times, at.Format("15:04"))
		}
		schedules = append(schedules, MedicationSchedule{Medication: medication, DailyTimes: times})
	}
	return schedules, nil
}

func (service *MedicationService) Create(ctx context.Context, userID uint, input MedicationInput) (models.Medication, error) {
	normalized, err := normalizeMedicationInput(input)
	if err != nil {
		return models.Medication{}, err
	}

	medication := models.Medication{
		UserID:         userID,
		Name:           normalized.Name,
		Dosage:         normalized.Dosage,
		FrequencyHours: normalized.FrequencyHours,
		StartTime:      normalized.StartTime,
		Active:         true,
	}
	if err := service.medications.Create(ctx, &medication); err != nil {
		return models.Medication{}, fmt.Errorf("%w: %v", ErrMedicationSaveFailed, err)
	}
	return medication, nil
}

func (service *MedicationService) Update(ctx context.Context, userID uint, medicationID uint, input MedicationInput) (models.Medication, error) {
	normalized, err := normalizeMedicationInput(input)
	if err != nil {
		return models.Medication{}, err
	}

	medication, err := service.find(ctx, userID, medicationID)
	if err != nil {
		return models.Medication{}, err
	}
	medication.Name = normalized.Name
	medication.Dosage = normalized.Dosage
	medication.FrequencyHours = normalized.FrequencyHours
	medication.StartTime = normalized.StartTime

	if err := service.medications.Save(ctx, &medication); err != nil {
		return models.Medication{}, fmt.Errorf("%w: %v", ErrMedicationSaveFailed, err)
	}
	return medication, nil
}

func (service *MedicationService) ToggleActive(ctx context.Context, userID uint, medicationID uint) (models.Medication, error) {
	medication, err := service.find(ctx, userID, medicationID)
	if err != nil {
		return models.Medication{}, err
	}
	if err := service.medications.SetActive(ctx, medication.ID, userID, !medication.Active); err != nil {
		return models.Medication{}, fmt.Errorf("%w: %v", ErrMedicationSaveFailed, err)
	}
	return service.find(ctx, userID, medicationID)
}

func (service *MedicationService) Delete(ctx context.Context, userID uint, medicationID uint) error {
	medication, err := service.find(ctx, userID, medicationID)
	if err != nil {
		return err
	}
	if err := service.medications.Delete(ctx, &medication); err != nil {
		return fmt.Errorf("%w: %v", ErrMedicationDeleteFailed, err)
	}
	return nil
}

// MarkTaken records a dose of the medication. The log keeps the medication
// name so it survives the medication being deleted.
func (service *MedicationService) MarkTaken(ctx context.Context, userID uint, medicationID uint) (models.MedicationLog, error) {
	medication, err := service.find(ctx, userID, medicationID)
	if err != nil {
		return models.MedicationLog{}, err
	}

	entry := models.MedicationLog{
		UserID:         userID,
		MedicationID:   &medication.ID,
		MedicationName: medication.Name,
	}
	if err := service.logs.Create(ctx, &entry); err != nil {
		return models.MedicationLog{}, fmt.Errorf("%w: %v", ErrMedicationLogFailed, err)
	}
	return entry, nil
}

// Logs lists taken doses. Day bounds in options are local calendar days.
func (service *MedicationService) Logs(ctx context.Context, userID uint, options db.ListOptions) ([]models.MedicationLog, error) {
	logs, err := service.logs.ListByUser(ctx, userID, CreatedAtBounds(options, service.location))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMedicationListFailed, err)
	}
	return logs, nil
}

func (service *MedicationService) Upcoming(ctx context.Context, userID uint, now time.Time) ([]analytics.UpcomingDose, error) {
	medications, err := service.medications.ListByUser(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMedicationListFailed, err)
	}
	return analytics.ComputeUpcomingDoses(medications, now.In(service.location)), nil
}

func (service *MedicationService) find(ctx context.Context, userID uint, medicationID uint) (models.Medication, error) {
	medication, err := service.medications.FindByIDForUser(ctx, medicationID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Medication{}, ErrMedicationNotFound
	}
	if err != nil {
		return models.Medication{}, fmt.Errorf("%w: %v", ErrMedicationListFailed, err)
	}
	return medication, nil
}

func normalizeMedicationInput(input MedicationInput) (MedicationInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Dosage = strings.TrimSpace(input.Dosage)
	input.StartTime = strings.TrimSpace(input.StartTime)

	if input.Name == "" || len([]rune(input.Name)) > maxMedicationNameLength {
		return MedicationInput{}, ErrMedicationInvalidInput
	}
	if input.Dosage == "" || len([]rune(input.Dosage)) > maxMedicationDosageLength {
		return MedicationInput{}, ErrMedicationInvalidInput
	}
	if input.FrequencyHours <= 0 || input.FrequencyHours > maxFrequencyHours {
		return MedicationInput{}, ErrMedicationInvalidSchedule
	}
	hour, minute, ok := analytics.ParseClock(input.StartTime)
	if !ok {
		return MedicationInput{}, ErrMedicationInvalidSchedule
	}
	input.StartTime = fmt.Sprintf("%02d:%02d", hour, minute)
	return input, nil
}
