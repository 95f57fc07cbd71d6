package db

import (
	"context"

	"github.com/terraincognita07/endotrack/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

// ListByUser filters and orders on the symptom's calendar date.
func (repo *SymptomRepository) ListByUser(ctx context.Context, userID uint, options ListOptions) ([]models.Symptom, error) {
	symptoms := make([]models.Symptom, 0)
	query := repo.database.WithContext(ctx).Where("user_id = ?", userID)
	if err := options.apply(query, "date").Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

// ListRecentByUser orders on creation time, the timestamp the activity feed uses.
func (repo *SymptomRepository) ListRecentByUser(ctx context.Context, userID uint, options ListOptions) ([]models.Symptom, error) {
	symptoms := make([]models.Symptom, 0)
	query := repo.database.WithContext(ctx).Where("user_id = ?", userID)
	if err := options.apply(query, "created_at").Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomRepository) CreateBatch(ctx context.Context, symptoms []models.Symptom) error {
	if len(symptoms) == 0 {
		return nil
	}
	return repo.database.WithContext(ctx).Create(&symptoms).Error
}

func (repo *SymptomRepository) FindByIDForUser(ctx context.Context, symptomID uint, userID uint) (models.Symptom, error) {
	symptom := models.Symptom{}
	if err := repo.database.WithContext(ctx).Where("id = ? AND user_id = ?", symptomID, userID).First(&symptom).Error; err != nil {
		return models.Symptom{}, err
	}
	return symptom, nil
}

func (repo *SymptomRepository) Delete(ctx context.Context, symptom *models.Symptom) error {
	return repo.database.WithContext(ctx).Delete(symptom).Error
}
