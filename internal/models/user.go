package models

import "time"

type User struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string     `gorm:"not null" json:"-"`
	Name               string     `gorm:"not null;default:''" json:"name"`
	BirthDate          *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Phone              string     `gorm:"not null;default:''" json:"phone"`
	OIDCSubject        *string    `gorm:"column:oidc_subject;uniqueIndex" json:"-"`
	TelegramChatID     *string    `gorm:"column:telegram_chat_id" json:"telegram_chat_id,omitempty"`
	NotifyMedications  bool       `gorm:"not null;default:true" json:"notify_medications"`
	NotifyCycle        bool       `gorm:"not null;default:true" json:"notify_cycle"`
	NotifySymptoms     bool       `gorm:"not null;default:false" json:"notify_symptoms"`
	NotifyArticles     bool       `gorm:"not null;default:true" json:"notify_articles"`
	MustChangePassword bool       `gorm:"not null;default:false" json:"must_change_password"`
	CreatedAt          time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
