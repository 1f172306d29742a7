package models

import (
	"time"
)

// Replacement defines an attendance record based on the 'replacements' table,
// linking a student to a schedule slot with a justification.
type Replacement struct {
	ID             int64         `json:"id" db:"id"`
	StudentID      int64         `json:"studentId" db:"student_id"`
	ScheduleID     int64         `json:"scheduleId" db:"schedule_id"`
	Justification  Justification `json:"justification" db:"justification"`
	IsPresent      bool          `json:"isPresent" db:"is_present"`
	PreceptorAddBy int64         `json:"preceptorAddBy" db:"preceptor_add_by"` // User who registered the record
	ScheduleAt     time.Time     `json:"scheduleAt" db:"schedule_at"`
}
