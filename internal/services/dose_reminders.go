package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/terraincognita07/endotrack/internal/analytics"
	"github.com/terraincognita07/endotrack/internal/models"
)

const (
	defaultReminderInterval = 5 * time.Minute
	defaultReminderLead     = 30 * time.Minute
)

type ReminderUserSource interface {
	ListWithMedicationNotifications(ctx context.Context) ([]models.User, error)
}

type ReminderMedicationSource interface {
	ListByUser(ctx context.Context, userID uint, activeOnly bool) ([]models.Medication, error)
}

type ReminderConfig struct {
	Interval         time.Duration
	Lead             time.Duration
	TelegramBotToken string
	// TelegramEndpoint overrides the Bot API base URL.
	TelegramEndpoint string
}

// DoseReminderService writes a notification for every dose that falls within
// the lead window. When a bot is configured, the reminder is also sent to the
// Telegram chat the user linked in their profile, and never anywhere else.
// Reminders are keyed by medication and scheduled instant in the
// notifications table, so restarts and overlapping runs do not repeat them.
type DoseReminderService struct {
	users         ReminderUserSource
	medications   ReminderMedicationSource
	notifications NotificationRepository
	location      *time.Location
	interval      time.Duration
	lead          time.Duration
	botToken      string
	endpoint      string
	client        *http.Client
	now           func() time.Time
}

func NewDoseReminderService(users ReminderUserSource, medications ReminderMedicationSource, notifications NotificationRepository, location *time.Location, config ReminderConfig) *DoseReminderService {
	if location == nil {
		location = time.Local
	}
	interval := config.Interval
	if interval <= 0 {
		interval = defaultReminderInterval
	}
	lead := config.Lead
	if lead <= 0 {
		lead = defaultReminderLead
	}
	endpoint := strings.TrimRight(strings.TrimSpace(config.TelegramEndpoint), "/")
	if endpoint == "" {
		endpoint = "https://api.telegram.org"
	}

	return &DoseReminderService{
		users:         users,
		medications:   medications,
		notifications: notifications,
		location:      location,
		interval:      interval,
		lead:          lead,
		botToken:      strings.TrimSpace(config.TelegramBotToken),
		endpoint:      endpoint,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
		now: time.Now,
	}
}

func (service *DoseReminderService) TelegramEnabled() bool {
	return service.botToken != ""
}

// Start runs the worker until ctx is cancelled.
func (service *DoseReminderService) Start(ctx context.Context) {
	ticker := time.NewTicker(service.interval)
	go func() {
		defer ticker.Stop()

		service.RunOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce scans every user with medication notifications on and returns how
// many new reminders were written.
func (service *DoseReminderService) RunOnce(ctx context.Context) int {
	users, err := service.users.ListWithMedicationNotifications(ctx)
	if err != nil {
		log.Printf("reminders: fetch users failed: %v", err)
		return 0
	}

	now := service.now().In(service.location)
	created := 0
	for _, user := range users {
		if ctx.Err() != nil {
			return created
		}

		medications, err := service.medications.ListByUser(ctx, user.ID, true)
		if err != nil {
			log.Printf("reminders: fetch medications failed for user %d: %v", user.ID, err)
			continue
		}

		for _, dose := range analytics.ComputeUpcomingDoses(medications, now) {
			if dose.ScheduledTime.Sub(now) > service.lead {
				break
			}
			if service.remind(ctx, user, dose) {
				created++
			}
		}
	}
	return created
}

func (service *DoseReminderService) remind(ctx context.Context, user models.User, dose analytics.UpcomingDose) bool {
	key := fmt.Sprintf("dose:%d:%s", dose.MedicationID, dose.ScheduledTime.UTC().Format(time.RFC3339))
	clock := dose.ScheduledTime.In(service.location).Format("15:04")
	notification := models.Notification{
		UserID:    user.ID,
		Kind:      models.NotificationMedication,
		Title:     "Hora do medicamento",
		Message:   fmt.Sprintf("%s %s às %s", dose.MedicationName, dose.Dosage, clock),
		DedupeKey: &key,
	}

	created, err := service.notifications.CreateIfAbsent(ctx, &notification)
	if err != nil {
		log.Printf("reminders: store reminder failed for user %d: %v", user.ID, err)
		return false
	}
	if !created {
		return false
	}

	if chatID := userTelegramChat(user); service.TelegramEnabled() && chatID != "" {
		if err := service.sendTelegram(ctx, chatID, notification.Title+": "+notification.Message); err != nil {
			log.Printf("reminders: send telegram reminder failed for user %d: %v", user.ID, err)
		}
	}
	return true
}

func userTelegramChat(user models.User) string {
	if user.TelegramChatID == nil {
		return ""
	}
	return strings.TrimSpace(*user.TelegramChatID)
}

func (service *DoseReminderService) sendTelegram(ctx context.Context, chatID string, message string) error {
	values := url.Values{}
	values.Set("chat_id", chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", service.endpoint, service.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := service.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
