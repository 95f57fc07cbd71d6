package db

import (
	"context"

	"github.com/terraincognita07/endotrack/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) ListByUser(ctx context.Context, userID uint, options ListOptions) ([]models.CycleEntry, error) {
	cycles := make([]models.CycleEntry, 0)
	query := repo.database.WithContext(ctx).Where("user_id = ?", userID)
	if err := options.apply(query, "date").Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) Create(ctx context.Context, cycle *models.CycleEntry) error {
	return repo.database.WithContext(ctx).Create(cycle).Error
}

func (repo *CycleRepository) FindByIDForUser(ctx context.Context, cycleID uint, userID uint) (models.CycleEntry, error) {
	cycle := models.CycleEntry{}
	if err := repo.database.WithContext(ctx).Where("id = ? AND user_id = ?", cycleID, userID).First(&cycle).Error; err != nil {
		return models.CycleEntry{}, err
	}
	return cycle, nil
}

func (repo *CycleRepository) Delete(ctx context.Context, cycle *models.CycleEntry) error {
	return repo.database.WithContext(ctx).Delete(cycle).Error
}
