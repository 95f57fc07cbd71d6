package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/endotrack/internal/db"
	"github.com/terraincognita07/endotrack/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAppointmentDateTimeRequired = errors.New("appointment date and time required")
	ErrAppointmentSlotUnavailable  = errors.New("appointment time is not a bookable slot")
	ErrAppointmentDateInPast       = errors.New("appointment date in past")
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentClosed           = errors.New("appointment already closed")
	ErrProfessionalNotFound        = errors.New("professional not found")
	ErrAppointmentSaveFailed       = errors.New("appointment save failed")
	ErrAppointmentListFailed       = errors.New("appointment list failed")
)

type AppointmentRepository interface {
	ListByUser(ctx context.Context, userID uint, options db.ListOptions) ([]models.Appointment, error)
	FindByIDForUser(ctx context.Context, appointmentID uint, userID uint) (models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	UpdateByIDForUser(ctx context.Context, appointmentID uint, userID uint, updates map[string]any) error
}

type ProfessionalFinder interface {
	FindByID(ctx context.Context, professionalID uint) (models.Professional, error)
}

type AppointmentInput struct {
	ProfessionalID uint   `json:"professional_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Notes          string `json:"notes"`
}

type AppointmentOverview struct {
	Upcoming []models.Appointment `json:"upcoming"`
	Past     []models.Appointment `json:"past"`
}

type AppointmentService struct {
	appointments  AppointmentRepository
	professionals ProfessionalFinder
	location      *time.Location
}

func NewAppointmentService(appointments AppointmentRepository, professionals ProfessionalFinder, location *time.Location) *AppointmentService {
	if location == nil {
		location = time.UTC
	}
	return &AppointmentService{appointments: appointments, professionals: professionals, location: location}
}

// Book creates a confirmed appointment. Booking is the point where the
// consultation is paid for, so it skips the scheduled state.
func (service *AppointmentService) Book(ctx context.Context, userID uint, input AppointmentInput, now time.Time) (models.Appointment, error) {
	day, slot, err := service.parseSlot(input.Date, input.Time, now)
	if err != nil {
		return models.Appointment{}, err
	}

	if _, err := service.professionals.FindByID(ctx, input.ProfessionalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Appointment{}, ErrProfessionalNotFound
		}
		return models.Appointment{}, fmt.Errorf("%w: %v", ErrAppointmentSaveFailed, err)
	}

	appointment := models.Appointment{
		UserID:         userID,
		ProfessionalID: input.ProfessionalID,
		Date:           day,
		Time:           slot,
		Status:         models.AppointmentConfirmed,
		Notes:          strings.TrimSpace(input.Notes),
	}
	if err := service.appointments.Create(ctx, &appointment); err != nil {
		return models.Appointment{}, fmt.Errorf("%w: %v", ErrAppointmentSaveFailed, err)
	}
	return service.find(ctx, userID, appointment.ID)
}

// Reschedule moves an open appointment to a new slot and resets it to the
// scheduled state.
func (service *AppointmentService) Reschedule(ctx context.Context, userID uint, appointmentID uint, date string, clock string, now time.Time) (models.Appointment, error) {
	day, slot, err := service.parseSlot(date, clock, now)
	if err != nil {
		return models.Appointment{}, err
	}
	if _, err := service.findOpen(ctx, userID, appointmentID); err != nil {
		return models.Appointment{}, err
	}

	if err := service.appointments.UpdateByIDForUser(ctx, appointmentID, userID, map[string]any{
		"date":   day,
		"time":   slot,
		"status": models.AppointmentScheduled,
	}); err != nil {
		return models.Appointment{}, fmt.Errorf("%w: %v", ErrAppointmentSaveFailed, err)
	}
	return service.find(ctx, userID, appointmentID)
}

func (service *AppointmentService) Cancel(ctx context.Context, userID uint, appointmentID uint) (models.Appointment, error) {
	return service.close(ctx, userID, appointmentID, models.AppointmentCancelled)
}

func (service *AppointmentService) Complete(ctx context.Context, userID uint, appointmentID uint) (models.Appointment, error) {
	return service.close(ctx, userID, appointmentID, models.AppointmentCompleted)
}

// Overview splits appointments into open ones from today on, soonest first,
// and the rest, most recent first.
func (service *AppointmentService) Overview(ctx context.Context, userID uint, now time.Time) (AppointmentOverview, error) {
	appointments, err := service.appointments.ListByUser(ctx, userID, db.ListOptions{})
	if err != nil {
		return AppointmentOverview{}, fmt.Errorf("%w: %v", ErrAppointmentListFailed, err)
	}

	today := StorageDay(now, service.location)
	overview := AppointmentOverview{
		Upcoming: make([]models.Appointment, 0),
		Past:     make([]models.Appointment, 0),
	}
	for _, appointment := range appointments {
		if isOpenAppointment(appointment) && !appointment.Date.Before(today) {
			overview.Upcoming = append(overview.Upcoming, appointment)
			continue
		}
		overview.Past = append(overview.Past, appointment)
	}

	sort.SliceStable(overview.Upcoming, func(i, j int) bool {
		return appointmentKey(overview.Upcoming[i]) < appointmentKey(overview.Upcoming[j])
	})
	sort.SliceStable(overview.Past, func(i, j int) bool {
		return appointmentKey(overview.Past[i]) > appointmentKey(overview.Past[j])
	})
	return overview, nil
}

func (service *AppointmentService) close(ctx context.Context, userID uint, appointmentID uint, status string) (models.Appointment, error) {
	if _, err := service.findOpen(ctx, userID, appointmentID); err != nil {
		return models.Appointment{}, err
	}
	if err := service.appointments.UpdateByIDForUser(ctx, appointmentID, userID, map[string]any{"status": status}); err != nil {
		return models.Appointment{}, fmt.Errorf("%w: %v", ErrAppointmentSaveFailed, err)
	}
	return service.find(ctx, userID, appointmentID)
}

func (service *AppointmentService) parseSlot(rawDate string, rawTime string, now time.Time) (time.Time, string, error) {
	rawDate = strings.TrimSpace(rawDate)
	slot := strings.TrimSpace(rawTime)
	if rawDate == "" || slot == "" {
		return time.Time{}, "", ErrAppointmentDateTimeRequired
	}
	day, err := ParseDay(rawDate)
	if err != nil {
		return time.Time{}, "", err
	}
	if day.Before(StorageDay(now, service.location)) {
		return time.Time{}, "", ErrAppointmentDateInPast
	}
	if !slices.Contains(models.BookableTimeSlots(), slot) {
		return time.Time{}, "", ErrAppointmentSlotUnavailable
	}
	return day, slot, nil
}

func (service *AppointmentService) find(ctx context.Context, userID uint, appointmentID uint) (models.Appointment, error) {
	appointment, err := service.appointments.FindByIDForUser(ctx, appointmentID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Appointment{}, ErrAppointmentNotFound
	}
	if err != nil {
		return models.Appointment{}, fmt.Errorf("%w: %v", ErrAppointmentListFailed, err)
	}
	return appointment, nil
}

func (service *AppointmentService) findOpen(ctx context.Context, userID uint, appointmentID uint) (models.Appointment, error) {
	appointment, err := service.find(ctx, userID, appointmentID)
	if err != nil {
		return models.Appointment{}, err
	}
	if !isOpenAppointment(appointment) {
		return models.Appointment{}, ErrAppointmentClosed
	}
	return appointment, nil
}

func isOpenAppointment(appointment models.Appointment) bool {
	return appointment.Status == models.AppointmentScheduled || appointment.Status == models.AppointmentConfirmed
}

func appointmentKey(appointment models.Appointment) string {
	return appointment.Date.Format(dayLayout) + " " + appointment.Time
}
