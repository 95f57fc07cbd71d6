package models

import "time"

type Medication struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	Name           string    `gorm:"not null" json:"name"`
	Dosage         string    `gorm:"not null" json:"dosage"`
	FrequencyHours int       `gorm:"not null" json:"frequency_hours"`
	StartTime      string    `gorm:"not null" json:"start_time"`
	Active         bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MedicationLog records a dose the user marked as taken.
type MedicationLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	MedicationID   *uint     `gorm:"index" json:"medication_id,omitempty"`
	MedicationName string    `gorm:"not null" json:"medication_name"`
	CreatedAt      time.Time `json:"created_at"`
}
