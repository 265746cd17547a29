package models

import (
	"time"
)

// ScheduleEntry is one weekly availability window for a veterinarian.
// DayOfWeek runs 0 (Sunday) through 6. Times are "HH:MM" 24-hour strings.
// The set for a vet is only ever written as a whole (full replace).
type ScheduleEntry struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	VetID       string    `json:"vet_id" gorm:"index"`
	DayOfWeek   int       `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ScheduleEntry) TableName() string {
	return "veterinarian_schedules"
}
