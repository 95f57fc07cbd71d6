package db

import (
	"context"

	"github.com/terraincognita07/endotrack/internal/models"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	database *gorm.DB
}

func NewAppointmentRepository(database *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{database: database}
}

// ListByUser filters and orders on the appointment date.
func (repo *AppointmentRepository) ListByUser(ctx context.Context, userID uint, options ListOptions) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	query := repo.database.WithContext(ctx).Preload("Professional").Where("user_id = ?", userID)
	if err := options.apply(query, "date").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListRecentByUser filters and orders on creation time.
func (repo *AppointmentRepository) ListRecentByUser(ctx context.Context, userID uint, options ListOptions) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	query := repo.database.WithContext(ctx).Preload("Professional").Where("user_id = ?", userID)
	if err := options.apply(query, "created_at").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) FindByIDForUser(ctx context.Context, appointmentID uint, userID uint) (models.Appointment, error) {
	appointment := models.Appointment{}
	if err := repo.database.WithContext(ctx).
		Preload("Professional").
		Where("id = ? AND user_id = ?", appointmentID, userID).
		First(&appointment).Error; err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

func (repo *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return repo.database.WithContext(ctx).Omit("Professional").Create(appointment).Error
}

func (repo *AppointmentRepository) UpdateByIDForUser(ctx context.Context, appointmentID uint, userID uint, updates map[string]any) error {
	return repo.database.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		Updates(updates).Error
}
