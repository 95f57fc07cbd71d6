package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/terraincognita07/endotrack/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProfessionalListFailed = errors.New("professional list failed")
	ErrFavoriteUpdateFailed   = errors.New("favorite update failed")
)

type ProfessionalRepository interface {
	List(ctx context.Context, specialty string, search string) ([]models.Professional, error)
	FindByID(ctx context.Context, professionalID uint) (models.Professional, error)
	ListFavoriteIDs(ctx context.Context, userID uint) ([]uint, error)
	IsFavorite(ctx context.Context, userID uint, professionalID uint) (bool, error)
	AddFavorite(ctx context.Context, userID uint, professionalID uint) error
	RemoveFavorite(ctx context.Context, userID uint, professionalID uint) error
}

type ProfessionalView struct {
	models.Professional
	Favorite bool `json:"favorite"`
}

type ProfessionalService struct {
	professionals ProfessionalRepository
}

func NewProfessionalService(professionals ProfessionalRepository) *ProfessionalService {
	return &ProfessionalService{professionals: professionals}
}

// List returns the catalog for a specialty ("" for all) narrowed by a free
// text search, marking the user's favorites. favoritesOnly keeps only those.
func (service *ProfessionalService) List(ctx context.Context, userID uint, specialty string, search string, favoritesOnly bool) ([]ProfessionalView, error) {
	professionals, err := service.professionals.List(ctx, specialty, search)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfessionalListFailed, err)
	}
	favoriteIDs, err := service.professionals.ListFavoriteIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfessionalListFailed, err)
	}

	favorites := make(map[uint]struct{}, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favorites[id] = struct{}{}
	}

	views := make([]ProfessionalView, 0, len(professionals))
	for _, professional := range professionals {
		_, favorite := favorites[professional.ID]
		if favoritesOnly && !favorite {
			continue
		}
		views = append(views, ProfessionalView{Professional: professional, Favorite: favorite})
	}
	return views, nil
}

func (service *ProfessionalService) Get(ctx context.Context, userID uint, professionalID uint) (ProfessionalView, error) {
	professional, err := service.professionals.FindByID(ctx, professionalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ProfessionalView{}, ErrProfessionalNotFound
	}
	if err != nil {
		return ProfessionalView{}, fmt.Errorf("%w: %v", ErrProfessionalListFailed, err)
	}
	favorite, err := service.professionals.IsFavorite(ctx, userID, professionalID)
	if err != nil {
		return ProfessionalView{}, fmt.Errorf("%w: %v", ErrProfessionalListFailed, err)
	}
	return ProfessionalView{Professional: professional, Favorite: favorite}, nil
}

// ToggleFavorite flips the favorite mark and returns the new state.
func (service *ProfessionalService) ToggleFavorite(ctx context.Context, userID uint, professionalID uint) (bool, error) {
	view, err := service.Get(ctx, userID, professionalID)
	if err != nil {
		return false, err
	}

	if view.Favorite {
		err = service.professionals.RemoveFavorite(ctx, userID, professionalID)
	} else {
		err = service.professionals.AddFavorite(ctx, userID, professionalID)
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrFavoriteUpdateFailed, err)
	}
	return !view.Favorite, nil
}

func (service *ProfessionalService) Slots() []string {
	return models.BookableTimeSlots()
}
