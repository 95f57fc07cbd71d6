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
	ErrInvalidFlow       = errors.New("invalid flow intensity")
	ErrCycleNotFound     = errors.New("cycle not found")
	ErrCreateCycleFailed = errors.New("create cycle failed")
	ErrDeleteCycleFailed = errors.New("delete cycle failed")
	ErrListCyclesFailed  = errors.New("list cycles failed")
	ErrCycleDateRequired = errors.New("cycle date required")
	ErrCycleDateInFuture = errors.New("cycle date in future")
)

type CycleRepository interface {
	ListByUser(ctx context.Context, userID uint, options db.ListOptions) ([]models.CycleEntry, error)
	Create(ctx context.Context, cycle *models.CycleEntry) error
	FindByIDForUser(ctx context.Context, cycleID uint, userID uint) (models.CycleEntry, error)
	Delete(ctx context.Context, cycle *models.CycleEntry) error
}

type CycleInput struct {
	Date          string `json:"date"`
	FlowIntensity string `json:"flow_intensity"`
	Notes         string `json:"notes"`
}

type CycleOverview struct {
	analytics.CycleStats
	DaysUntilNext *int `json:"days_until_next"`
}

type CycleService struct {
	cycles   CycleRepository
	location *time.Location
}

func NewCycleService(cycles CycleRepository, location *time.Location) *CycleService {
	if location == nil {
		location = time.UTC
	}
	return &CycleService{cycles: cycles, location: location}
}

func (service *CycleService) Log(ctx context.Context, userID uint, input CycleInput, now time.Time) (models.CycleEntry, error) {
	if strings.TrimSpace(input.Date) == "" {
		return models.CycleEntry{}, ErrCycleDateRequired
	}
	day, err := ParseDay(input.Date)
	if err != nil {
		return models.CycleEntry{}, err
	}
	if day.After(StorageDay(now, service.location)) {
		return models.CycleEntry{}, ErrCycleDateInFuture
	}

	flow := strings.ToLower(strings.TrimSpace(input.FlowIntensity))
	if !models.IsValidFlow(flow) {
		return models.CycleEntry{}, ErrInvalidFlow
	}

	cycle := models.CycleEntry{
		UserID:        userID,
		Date:          day,
		FlowIntensity: flow,
		Notes:         strings.TrimSpace(input.Notes),
	}
	if err := service.cycles.Create(ctx, &cycle); err != nil {
		return models.CycleEntry{}, fmt.Errorf("%w: %v", ErrCreateCycleFailed, err)
	}
	return cycle, nil
}

func (service *CycleService) List(ctx context.Context, userID uint, options db.ListOptions) ([]models.CycleEntry, error) {
	cycles, err := service.cycles.ListByUser(ctx, userID, options)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListCyclesFailed, err)
	}
	return cycles, nil
}

func (service *CycleService) Delete(ctx context.Context, userID uint, cycleID uint) error {
	cycle, err := service.cycles.FindByIDForUser(ctx, cycleID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCycleNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteCycleFailed, err)
	}
	if err := service.cycles.Delete(ctx, &cycle); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteCycleFailed, err)
	}
	return nil
}

func (service *CycleService) Overview(ctx context.Context, userID uint, now time.Time) (CycleOverview, error) {
	cycles, err := service.List(ctx, userID, db.ListOptions{})
	if err != nil {
		return CycleOverview{}, err
	}
	return BuildCycleOverview(cycles, now.In(service.location)), nil
}

func BuildCycleOverview(cycles []models.CycleEntry, now time.Time) CycleOverview {
	overview := CycleOverview{CycleStats: analytics.ComputeCycleStats(cycles, now)}
	if days, ok := analytics.DaysUntil(overview.NextCycleDate, now); ok {
		overview.DaysUntilNext = &days
	}
	return overview
}
