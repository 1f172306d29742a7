package models

import (
	"time"
)

// MaxSchedulesPerDay caps how many schedule slots a single date can hold.
const MaxSchedulesPerDay = 3

// DefaultMaxCapacity is the seat capacity a schedule gets when none is supplied.
const DefaultMaxCapacity = 30

// Schedule defines a replacement slot based on the 'schedules' table.
// At most one schedule exists per (schedule_date, shift) pair and at most
// MaxSchedulesPerDay share the same date.
type Schedule struct {
	ID              int64     `json:"id" db:"id"`
	ScheduleDate    time.Time `json:"scheduleDate" db:"schedule_date"`
	Shift           Shift     `json:"shift" db:"shift"`
	MaxCapacity     int       `json:"maxCapacity" db:"max_capacity"`
	CreatedByUserID int64     `json:"createdByUserId" db:"created_by_user_id"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
