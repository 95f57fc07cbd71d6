package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/terraincognita07/endotrack/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProfileInvalidInput   = errors.New("profile invalid input")
	ErrProfileUpdateFailed   = errors.New("profile update failed")
	ErrAccountDeletionFailed = errors.New("account deletion failed")
)

// A Telegram chat is addressed by its numeric id or a public @username.
var telegramChatIDPattern = regexp.MustCompile(`^(-?[0-9]{1,20}|@[A-Za-z0-9_]{5,32})$`)

const (
	maxProfileNameLength  = 120
	maxProfilePhoneLength = 32
)

type ProfileRepository interface {
	FindByID(ctx context.Context, userID uint) (models.User, error)
	UpdateByID(ctx context.Context, userID uint, updates map[string]any) error
	DeleteAccountAndRelatedData(ctx context.Context, userID uint) error
}

// ProfileInput carries a partial profile update. Nil fields are left as is.
// An empty BirthDate or TelegramChatID clears the stored value.
type ProfileInput struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	BirthDate         *string `json:"birth_date"`
	TelegramChatID    *string `json:"telegram_chat_id"`
	NotifyMedications *bool   `json:"notify_medications"`
	NotifyCycle       *bool   `json:"notify_cycle"`
	NotifySymptoms    *bool   `json:"notify_symptoms"`
	NotifyArticles    *bool   `json:"notify_articles"`
}

type ProfileService struct {
	users ProfileRepository
	now   func() time.Time
}

func NewProfileService(users ProfileRepository) *ProfileService {
	return &ProfileService{users: users, now: time.Now}
}

func (service *ProfileService) Get(ctx context.Context, userID uint) (models.User, error) {
	user, err := service.users.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrAuthUserNotFound
	}
	return user, err
}

func (service *ProfileService) Update(ctx context.Context, userID uint, input ProfileInput) (models.User, error) {
	updates, err := service.buildUpdates(input)
	if err != nil {
		return models.User{}, err
	}
	if len(updates) > 0 {
		if err := service.users.UpdateByID(ctx, userID, updates); err != nil {
			return models.User{}, fmt.Errorf("%w: %v", ErrProfileUpdateFailed, err)
		}
	}
	return service.Get(ctx, userID)
}

func (service *ProfileService) Delete(ctx context.Context, userID uint) error {
	if err := service.users.DeleteAccountAndRelatedData(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrAccountDeletionFailed, err)
	}
	return nil
}

func (service *ProfileService) buildUpdates(input ProfileInput) (map[string]any, error) {
	updates := make(map[string]any)

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len([]rune(name)) > maxProfileNameLength {
			return nil, ErrProfileInvalidInput
		}
		updates["name"] = name
	}
	if input.Phone != nil {
		phone := strings.TrimSpace(*input.Phone)
		if len(phone) > maxProfilePhoneLength {
			return nil, ErrProfileInvalidInput
		}
		updates["phone"] = phone
	}
	if input.BirthDate != nil {
		raw := strings.TrimSpace(*input.BirthDate)
		if raw == "" {
			updates["birth_date"] = nil
		} else {
			birthDate, err := ParseDay(raw)
			if err != nil || birthDate.After(service.now()) {
				return nil, ErrProfileInvalidInput
			}
			updates["birth_date"] = birthDate
		}
	}
	if input.TelegramChatID != nil {
		chatID := strings.TrimSpace(*input.TelegramChatID)
		if chatID == "" {
			updates["telegram_chat_id"] = nil
		} else {
			if !telegramChatIDPattern.MatchString(chatID) {
				return nil, ErrProfileInvalidInput
			}
			updates["telegram_chat_id"] = chatID
		}
	}

	flags := map[string]*bool{
		"notify_medications": input.NotifyMedications,
		"notify_cycle":       input.NotifyCycle,
		"notify_symptoms":    input.NotifySymptoms,
		"notify_articles":    input.NotifyArticles,
	}
	for column, value := range flags {
		if value != nil {
			updates[column] = *value
		}
	}
	return updates, nil
}
