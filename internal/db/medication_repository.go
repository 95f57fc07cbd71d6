package db

import (
	"context"

	"github.com/terraincognita07/endotrack/internal/models"
	"gorm.io/gorm"
)

type MedicationRepository struct {
	database *gorm.DB
}

func NewMedicationRepository(database *gorm.DB) *MedicationRepository {
	return &MedicationRepository{database: database}
}

func (repo *MedicationRepository) ListByUser(ctx context.Context, userID uint, activeOnly bool) ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	query := repo.database.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("created_at DESC").Order("id DESC").Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) FindByIDForUser(ctx context.Context, medicationID uint, userID uint) (models.Medication, error) {
	medication := models.Medication{}
	if err := repo.database.WithContext(ctx).Where("id = ? AND user_id = ?", medicationID, userID).First(&medication).Error; err != nil {
		return models.Medication{}, err
	}
	return medication, nil
}

func (repo *MedicationRepository) Create(ctx context.Context, medication *models.Medication) error {
	return repo.database.WithContext(ctx).Create(medication).Error
}

// Save writes every column, including a false active flag.
func (repo *MedicationRepository) Save(ctx context.Context, medication *models.Medication) error {
	return repo.database.WithContext(ctx).Save(medication).Error
}

func (repo *MedicationRepository) SetActive(ctx context.Context, medicationID uint, userID uint, active bool) error {
	return repo.database.WithContext(ctx).Model(&models.Medication{}).
		Where("id = ? AND user_id = ?", medicationID, userID).
		Update("active", active).Error
}

func (repo *MedicationRepository) Delete(ctx context.Context, medication *models.Medication) error {
	return repo.database.WithContext(ctx).Delete(medication).Error
}

type MedicationLogRepository struct {
	database *gorm.DB
}

func NewMedicationLogRepository(database *gorm.DB) *MedicationLogRepository {
	return &MedicationLogRepository{database: database}
}

func (repo *MedicationLogRepository) ListByUser(ctx context.Context, userID uint, options ListOptions) ([]models.MedicationLog, error) {
	logs := make([]models.MedicationLog, 0)
	query := repo.database.WithContext(ctx).Where("user_id = ?", userID)
	if err := options.apply(query, "created_at").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *MedicationLogRepository) Create(ctx context.Context, entry *models.MedicationLog) error {
	return repo.database.WithContext(ctx).Create(entry).Error
}
