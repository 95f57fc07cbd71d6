package db

import (
	"context"
	"strings"

	"github.com/terraincognita07/endotrack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfessionalRepository struct {
	database *gorm.DB
}

func NewProfessionalRepository(database *gorm.DB) *ProfessionalRepository {
	return &ProfessionalRepository{database: database}
}

// List filters by exact specialty and by a case-insensitive search over
// name and specialty. Empty filters match everything.
func (repo *ProfessionalRepository) List(ctx context.Context, specialty string, search string) ([]models.Professional, error) {
	professionals := make([]models.Professional, 0)
	query := repo.database.WithContext(ctx)
	if specialty = strings.TrimSpace(specialty); specialty != "" {
		query = query.Where("specialty = ?", specialty)
	}
	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("lower(name) LIKE ? OR lower(specialty) LIKE ?", pattern, pattern)
	}
	if err := query.Order("rating DESC").Order("id ASC").Find(&professionals).Error; err != nil {
		return nil, err
	}
	return professionals, nil
}

func (repo *ProfessionalRepository) FindByID(ctx context.Context, professionalID uint) (models.Professional, error) {
	var professional models.Professional
	if err := repo.database.WithContext(ctx).First(&professional, professionalID).Error; err != nil {
		return models.Professional{}, err
	}
	return professional, nil
}

func (repo *ProfessionalRepository) ListFavoriteIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	if err := repo.database.WithContext(ctx).Model(&models.ProfessionalFavorite{}).
		Where("user_id = ?", userID).
		Order("professional_id ASC").
		Pluck("professional_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *ProfessionalRepository) IsFavorite(ctx context.Context, userID uint, professionalID uint) (bool, error) {
	var count int64
	if err := repo.database.WithContext(ctx).Model(&models.ProfessionalFavorite{}).
		Where("user_id = ? AND professional_id = ?", userID, professionalID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *ProfessionalRepository) AddFavorite(ctx context.Context, userID uint, professionalID uint) error {
	favorite := models.ProfessionalFavorite{UserID: userID, ProfessionalID: professionalID}
	return repo.database.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite).Error
}

func (repo *ProfessionalRepository) RemoveFavorite(ctx context.Context, userID uint, professionalID uint) error {
	return repo.database.WithContext(ctx).
		Where("user_id = ? AND professional_id = ?", userID, professionalID).
		Delete(&models.ProfessionalFavorite{}).Error
}
