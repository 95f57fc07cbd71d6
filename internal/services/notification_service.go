package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/terraincognita07/endotrack/internal/models"
)

var (
	ErrNotificationNotFound     = errors.New("notification not found")
	ErrNotificationUpdateFailed = errors.New("notification update failed")
	ErrNotificationListFailed   = errors.New("notification list failed")
)

const defaultNotificationLimit = 50

type NotificationRepository interface {
	ListByUser(ctx context.Context, userID uint, unreadOnly bool, limit int) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	CreateIfAbsent(ctx context.Context, notification *models.Notification) (bool, error)
	MarkRead(ctx context.Context, notificationID uint, userID uint) (bool, error)
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
}

type NotificationList struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int64                 `json:"unread"`
}

type NotificationService struct {
	notifications NotificationRepository
}

func NewNotificationService(notifications NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (service *NotificationService) List(ctx context.Context, userID uint, unreadOnly bool) (NotificationList, error) {
	notifications, err := service.notifications.ListByUser(ctx, userID, unreadOnly, defaultNotificationLimit)
	if err != nil {
		return NotificationList{}, fmt.Errorf("%w: %v", ErrNotificationListFailed, err)
	}
	unread, err := service.UnreadCount(ctx, userID)
	if err != nil {
		return NotificationList{}, err
	}
	return NotificationList{Notifications: notifications, Unread: unread}, nil
}

func (service *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	unread, err := service.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotificationListFailed, err)
	}
	return unread, nil
}

func (service *NotificationService) MarkRead(ctx context.Context, userID uint, notificationID uint) error {
	found, err := service.notifications.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationUpdateFailed, err)
	}
	if !found {
		return ErrNotificationNotFound
	}
	return nil
}

func (service *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	updated, err := service.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotificationUpdateFailed, err)
	}
	return updated, nil
}
