package models

import "time"

const (
	MinSymptomIntensity = 1
	MaxSymptomIntensity = 10
)

type Symptom struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	SymptomName string    `gorm:"not null" json:"symptom_name"`
	Intensity   int       `gorm:"not null" json:"intensity"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

func DefaultCommonSymptoms() []string {
	return []string{
		"Dor Pélvica",
		"Cólicas",
		"Fadiga",
		"Náusea",
		"Dor nas costas",
		"Inchaço",
		"Dor de cabeça",
		"Alteração no intestino",
	}
}
