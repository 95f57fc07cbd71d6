package models

import "time"

const (
	NotificationMedication = "medication"
	NotificationCycle      = "cycle"
	NotificationArticle    = "article"
	NotificationReminder   = "reminder"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_notification_dedupe" json:"user_id"`
	Kind      string    `gorm:"not null" json:"kind"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `gorm:"not null" json:"message"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	DedupeKey *string   `gorm:"uniqueIndex:uidx_notification_dedupe" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
