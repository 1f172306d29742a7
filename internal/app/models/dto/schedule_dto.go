package dto

import (
	"time"

	"github.com/reposapp/backend/internal/app/models"
)

// ScheduleDateFormat is the wire format for schedule dates
const ScheduleDateFormat = "2006-01-02"

// CreateScheduleRequest represents a schedule slot creation request
type CreateScheduleRequest struct {
	ScheduleDate string       `json:"scheduleDate" binding:"required,datetime=2006-01-02"`
	Shift        models.Shift `json:"shift" binding:"required,oneof=Manhã Tarde Noite"`
	MaxCapacity  *int         `json:"maxCapacity,omitempty" binding:"omitempty,min=1"`
}

// Date parses the wire date. Callers must validate the request first.
func (r *CreateScheduleRequest) Date() (time.Time, error) {
	return time.Parse(ScheduleDateFormat, r.ScheduleDate)
}

// UpdateScheduleRequest represents a partial schedule update. Only supplied
// fields overwrite existing values.
type UpdateScheduleRequest struct {
	ScheduleDate *string       `json:"scheduleDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Shift        *models.Shift `json:"shift,omitempty" binding:"omitempty,oneof=Manhã Tarde Noite"`
	MaxCapacity  *int          `json:"maxCapacity,omitempty" binding:"omitempty,min=1"`
}

// IsEmpty reports whether the update carries no fields at all
func (r *UpdateScheduleRequest) IsEmpty() bool {
	return r.ScheduleDate == nil && r.Shift == nil && r.MaxCapacity == nil
}

// Date parses the wire date when supplied
func (r *UpdateScheduleRequest) Date() (*time.Time, error) {
	if r.ScheduleDate == nil {
		return nil, nil
	}
	t, err := time.Parse(ScheduleDateFormat, *r.ScheduleDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
