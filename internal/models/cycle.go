package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

const DefaultCycleLength = 28

// CycleEntry marks a day of menstruation logged by the user.
type CycleEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	Date          time.Time `gorm:"type:date;not null" json:"date"`
	FlowIntensity string    `gorm:"not null;default:''" json:"flow_intensity"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

func (CycleEntry) TableName() string {
	return "menstruation_cycles"
}

func IsValidFlow(flow string) bool {
	switch flow {
	case "", FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}
