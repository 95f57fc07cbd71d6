package models

import "time"

const (
	AppointmentScheduled = "agendada"
	AppointmentConfirmed = "confirmada"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelada"
)

type Appointment struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UserID         uint         `gorm:"not null;index" json:"user_id"`
	ProfessionalID uint         `gorm:"not null;index" json:"professional_id"`
	Professional   Professional `gorm:"foreignKey:ProfessionalID" json:"professional"`
	Date           time.Time    `gorm:"type:date;not null" json:"date"`
	Time           string       `gorm:"not null" json:"time"`
	Status         string       `gorm:"not null;default:agendada" json:"status"`
	Notes          string       `json:"notes"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func IsValidAppointmentStatus(status string) bool {
	switch status {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	default:
		return false
	}
}

// BookableTimeSlots lists the times a professional can be booked at.
func BookableTimeSlots() []string {
	return []string{
		"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
		"11:00", "11:30", "14:00", "14:30", "15:00", "15:30",
		"16:00", "16:30", "17:00", "17:30",
	}
}
