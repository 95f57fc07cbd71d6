package services

import (
	"context"
	"time"

	"github.com/terraincognita07/endotrack/internal/analytics"
)

// trendWindowDays is how far back the home screen looks for symptom trends.
const trendWindowDays = 30

type Dashboard struct {
	Cycle               CycleOverview            `json:"cycle"`
	Trends              []analytics.SymptomTrend `json:"trends"`
	PainChange          int                      `json:"pain_change"`
	UpcomingDoses       []analytics.UpcomingDose `json:"upcoming_doses"`
	RecentActivity      []analytics.ActivityItem `json:"recent_activity"`
	UnreadNotifications int64                    `json:"unread_notifications"`
}

type DashboardService struct {
	cycles        *CycleService
	symptoms      *SymptomService
	medications   *MedicationService
	activity      *ActivityService
	notifications *NotificationService
	location      *time.Location
}

func NewDashboardService(cycles *CycleService, symptoms *SymptomService, medications *MedicationService, activity *ActivityService, notifications *NotificationService, location *time.Location) *DashboardService {
	if location == nil {
		location = time.UTC
	}
	return &DashboardService{
		cycles:        cycles,
		symptoms:      symptoms,
		medications:   medications,
		activity:      activity,
		notifications: notifications,
		location:      location,
	}
}

func (service *DashboardService) Build(ctx context.Context, userID uint, now time.Time) (Dashboard, error) {
	now = now.In(service.location)

	cycle, err := service.cycles.Overview(ctx, userID, now)
	if err != nil {
		return Dashboard{}, err
	}

	since := StorageDay(now, service.location).AddDate(0, 0, -trendWindowDays)
	summary, err := service.symptoms.Summary(ctx, userID, &since)
	if err != nil {
		return Dashboard{}, err
	}

	doses, err := service.medications.Upcoming(ctx, userID, now)
	if err != nil {
		return Dashboard{}, err
	}

	activity, err := service.activity.Feed(ctx, userID, nil, nil, analytics.DefaultActivityLimit)
	if err != nil {
		return Dashboard{}, err
	}

	unread, err := service.notifications.UnreadCount(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Cycle:               cycle,
		Trends:              summary.Trends,
		PainChange:          summary.PainChange,
		UpcomingDoses:       doses,
		RecentActivity:      activity,
		UnreadNotifications: unread,
	}, nil
}
